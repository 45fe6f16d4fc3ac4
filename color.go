package syscolor

import "fmt"

// Color is a packed system color in COLORREF layout: red in the low
// byte, then green, then blue. The high byte is reserved and preserved
// as the platform returned it. Two Colors are equal iff their packed
// values are equal, and ordering Colors with < follows the packed
// integer, giving a total order.
type Color uint32

// Raw returns the packed value.
func (c Color) Raw() uint32 {
	return uint32(c)
}

// Red returns the red component.
func (c Color) Red() uint8 {
	return uint8(c)
}

// Green returns the green component.
func (c Color) Green() uint8 {
	return uint8(c >> 8)
}

// Blue returns the blue component.
func (c Color) Blue() uint8 {
	return uint8(c >> 16)
}

// RGB returns the channels in red, green, blue order.
func (c Color) RGB() (r, g, b uint8) {
	return c.Red(), c.Green(), c.Blue()
}

// Bytes returns the channels as an array in red, green, blue order.
func (c Color) Bytes() [3]uint8 {
	return [3]uint8{c.Red(), c.Green(), c.Blue()}
}

// String renders the color as an uppercase "#RRGGBB" string.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.Red(), c.Green(), c.Blue())
}
