package utils

import "testing"

func TestColorFloatRGBA8(t *testing.T) {
	var tests = []struct {
		in  ColorFloat
		out [4]uint8
	}{
		{ColorWhite, [4]uint8{255, 255, 255, 255}},
		{ColorHighlight, [4]uint8{255, 255, 0, 255}},
		{ColorFloat{0.5, 0, 0, 0.8}, [4]uint8{128, 0, 0, 204}},
		{ColorFloat{-1, 2, 0, 1}, [4]uint8{0, 255, 0, 255}},
	}
	for _, test := range tests {
		if r := test.in.RGBA8(); r != test.out {
			t.Errorf("%v.RGBA8()=%v; expected %v", test.in, r, test.out)
		}
	}
}
