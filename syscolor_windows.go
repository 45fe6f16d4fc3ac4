//go:build windows

package syscolor

import "golang.org/x/sys/windows"

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetSysColor      = user32.NewProc("GetSysColor")
	procGetSysColorBrush = user32.NewProc("GetSysColorBrush")
)

// probeBrush asks the system for the brush that paints a color index. A
// null handle means the index has no color on this system.
func probeBrush(native int32) bool {
	h, _, _ := procGetSysColorBrush.Call(uintptr(native))
	return h != 0
}

// fetchColor reads the current packed value for a color index. Only
// meaningful once probeBrush has reported the index present.
func fetchColor(native int32) uint32 {
	v, _, _ := procGetSysColor.Call(uintptr(native))
	return uint32(v)
}
