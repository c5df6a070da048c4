package svg

import (
	"math"
	"strconv"
	"strings"
)

// FormatCoord renders v with exactly precision decimals. Values that round
// to zero are written without a sign.
func FormatCoord(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}

// round returns the value FormatCoord writes for v, so bounds computed
// from rounded points agree with the emitted digits.
func round(v float64, precision int) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', precision, 64), 64)
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// ColorHex converts a linear RGB(A) color to an sRGB "#rrggbb" string.
// Alpha is ignored; missing channels count as 0.
func ColorHex(rgba []float64) string {
	var b strings.Builder
	b.WriteByte('#')
	for i := range 3 {
		var ch float64
		if i < len(rgba) {
			ch = rgba[i]
		}
		b.WriteString(channelHex(ch))
	}
	return b.String()
}

func channelHex(linear float64) string {
	var srgb float64
	switch {
	case linear < 0:
		srgb = 0
	case linear < 0.0031308:
		srgb = linear * 12.92
	default:
		srgb = math.Pow(linear, 1/2.4)*1.055 - 0.055
	}
	v := int(srgb*255 + 0.5)
	v = min(max(v, 0), 255)
	const digits = "0123456789abcdef"
	return string([]byte{digits[v>>4], digits[v&0x0f]})
}
