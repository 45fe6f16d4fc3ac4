package syscolor

import (
	"strconv"
	"strings"
)

// Index identifies one of the system-defined UI color roles. The set is
// open: future revisions may add values, and Get reports values it does
// not know as unavailable rather than panicking.
type Index int32

const (
	ThreeDDarkShadow Index = iota
	ActiveBorder
	ActiveCaption
	AppWorkspace
	Background
	ButtonFace
	ButtonHighlight
	ButtonShadow
	ButtonText
	CaptionText
	GradientActiveCaption
	GradientInactiveCaption
	GrayText
	Highlight
	HighlightText
	HotLight
	InactiveBorder
	InactiveCaption
	InactiveCaptionText
	InfoBackground
	InfoText
	Menu
	MenuText
	ScrollBar
	Window
	WindowFrame
	WindowText

	numIndices
)

// entry pairs an Index with its winuser.h COLOR_* constant and the
// latch caching whether the system defines a brush for it.
type entry struct {
	native int32
	name   string

	present onceBool
}

// colors is built at definition time and never mutated; the latches
// inside it are the only mutable state in the package.
var colors = [numIndices]entry{
	ThreeDDarkShadow:        {native: 21, name: "ThreeDDarkShadow"},
	ActiveBorder:            {native: 10, name: "ActiveBorder"},
	ActiveCaption:           {native: 2, name: "ActiveCaption"},
	AppWorkspace:            {native: 12, name: "AppWorkspace"},
	Background:              {native: 1, name: "Background"},
	ButtonFace:              {native: 15, name: "ButtonFace"},
	ButtonHighlight:         {native: 20, name: "ButtonHighlight"},
	ButtonShadow:            {native: 16, name: "ButtonShadow"},
	ButtonText:              {native: 18, name: "ButtonText"},
	CaptionText:             {native: 9, name: "CaptionText"},
	GradientActiveCaption:   {native: 27, name: "GradientActiveCaption"},
	GradientInactiveCaption: {native: 28, name: "GradientInactiveCaption"},
	GrayText:                {native: 17, name: "GrayText"},
	Highlight:               {native: 13, name: "Highlight"},
	HighlightText:           {native: 14, name: "HighlightText"},
	HotLight:                {native: 26, name: "HotLight"},
	InactiveBorder:          {native: 11, name: "InactiveBorder"},
	InactiveCaption:         {native: 3, name: "InactiveCaption"},
	InactiveCaptionText:     {native: 19, name: "InactiveCaptionText"},
	InfoBackground:          {native: 24, name: "InfoBackground"},
	InfoText:                {native: 23, name: "InfoText"},
	Menu:                    {native: 4, name: "Menu"},
	MenuText:                {native: 7, name: "MenuText"},
	ScrollBar:               {native: 0, name: "ScrollBar"},
	Window:                  {native: 5, name: "Window"},
	WindowFrame:             {native: 6, name: "WindowFrame"},
	WindowText:              {native: 8, name: "WindowText"},
}

// String returns the name of the index, or "Index(n)" for values this
// version of the package does not know.
func (i Index) String() string {
	if i < 0 || i >= numIndices {
		return "Index(" + strconv.Itoa(int(i)) + ")"
	}
	return colors[i].name
}

// ParseIndex resolves a color name, case-insensitively, to its Index.
func ParseIndex(name string) (Index, bool) {
	for i := range colors {
		if strings.EqualFold(colors[i].name, name) {
			return Index(i), true
		}
	}
	return 0, false
}

// Indices returns every index known to this version of the package, in
// a fresh slice the caller may modify.
func Indices() []Index {
	all := make([]Index, numIndices)
	for i := range all {
		all[i] = Index(i)
	}
	return all
}
