package utils

type ColorFloat [4]float32

var (
	ColorWhite     = ColorFloat{1, 1, 1, 1}
	ColorHighlight = ColorFloat{1, 1, 0, 1}
)

func (c ColorFloat) RGBA8() [4]uint8 {
	return [4]uint8{
		uint8(clamp01(c[0])*255 + 0.5),
		uint8(clamp01(c[1])*255 + 0.5),
		uint8(clamp01(c[2])*255 + 0.5),
		uint8(clamp01(c[3])*255 + 0.5),
	}
}

func clamp01(f float32) float32 {
	if f < 0 {
		return 0
	} else if f > 1 {
		return 1
	}
	return f
}
