package world

import "fmt"

// Color is a packed 0xRRGGBBAA value.
type Color uint32

func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

func (c Color) R() uint8 { return uint8(c >> 24) }
func (c Color) G() uint8 { return uint8(c >> 16) }
func (c Color) B() uint8 { return uint8(c >> 8) }
func (c Color) A() uint8 { return uint8(c) }

func (c Color) WithAlpha(a uint8) Color {
	return c&0xffffff00 | Color(a)
}

// Lerp blends each channel, truncating toward zero.
func (c Color) Lerp(o Color, f float64) Color {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-f) + float64(b)*f)
	}
	return RGBA(mix(c.R(), o.R()), mix(c.G(), o.G()), mix(c.B(), o.B()), mix(c.A(), o.A()))
}

func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}
