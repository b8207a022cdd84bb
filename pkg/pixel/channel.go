package pixel

import "math"

// Channel is a numeric type a pixel stores its channels in.
type Channel interface {
	~uint8 | ~uint16 | ~float32 | ~float64
}

// Max returns the largest value a channel of type C represents: 255 for
// 8-bit, 65535 for 16-bit and 1 for floating point channels.
func Max[C Channel]() C {
	var c C
	// unsigned types wrap around to their maximum
	c--
	if c < 0 {
		return 1
	}
	return c
}

func isFloat[C Channel]() bool {
	var c C = 1
	c /= 2
	return c != 0
}

// FromFloat converts v, given on the channel's native scale, to a channel
// value. Out of range values saturate at 0 and Max; NaN becomes 0. Integer
// channels round half away from zero.
func FromFloat[C Channel](v float64) C {
	m := Max[C]()
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= float64(m):
		return m
	case isFloat[C]():
		return C(v)
	}
	return C(math.Round(v))
}
