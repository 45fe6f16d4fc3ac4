// Package syscolor reads the operating system's UI colors.
//
// It wraps the Win32 GetSysColor call. Whether the system defines a
// given color index is probed once per process through GetSysColorBrush
// and cached forever; the color value itself is fetched live on every
// call, so theme changes made while the process runs are visible
// immediately. All of the package is safe for concurrent use and none
// of it blocks.
//
// On platforms other than Windows every index reports unavailable.
package syscolor

import (
	"io"

	"golang.org/x/exp/slog"
)

var log = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger sets the logger the package records probe activity on. Pass
// nil to silence it again.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log = l
}

// Get returns the live value of a system color, or false when the
// system defines no color for index. Absence is an expected outcome,
// not an error: older or differently-configured systems lack some
// indices, non-Windows systems lack all of them, and Index values from
// a newer revision of this package report absent as well.
//
// Whether an index is supported is resolved at most once per process
// and remembered; the value is never cached. Get may be called from any
// goroutine, including concurrently for the same index.
func Get(index Index) (Color, bool) {
	if index < 0 || index >= numIndices {
		return 0, false
	}
	e := &colors[index]
	return getColor(e.native, &e.present, probeBrush, fetchColor)
}

// getColor runs the probe-then-fetch protocol: the probe result is
// latched forever, the fetch happens on every call that finds the index
// present.
func getColor(native int32, present *onceBool, probe func(int32) bool, fetch func(int32) uint32) (Color, bool) {
	ok := present.getOrInit(func() bool {
		ok := probe(native)
		log.Debug("probed system color brush", "native", native, "present", ok)
		return ok
	})
	if !ok {
		return 0, false
	}
	return Color(fetch(native)), true
}
