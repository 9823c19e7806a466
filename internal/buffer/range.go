package buffer

import (
	"strconv"
	"strings"
)

// ParseRange parses a 1-based inclusive line range against a buffer of n
// lines. Accepted forms:
//
//	""     whole buffer: (1, n)
//	"5"    single line: (5, 5)
//	"3-7"  explicit range
//	"3-"   from 3 to the last line
//	"-7"   from the first line to 7
//
// The upper bound is clamped to n. A non-numeric token, a zero bound, or
// lo > hi is an error, never silently repaired.
func ParseRange(s string, n int) (int, int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, n, nil
	}
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		left, right := s[:idx], s[idx+1:]
		lo := 1
		if left != "" {
			v, err := strconv.Atoi(left)
			if err != nil {
				return 0, 0, ErrInvalidRange
			}
			lo = v
		}
		hi := n
		if right != "" {
			v, err := strconv.Atoi(right)
			if err != nil {
				return 0, 0, ErrInvalidRange
			}
			hi = v
		}
		if lo <= 0 || hi <= 0 || lo > hi {
			return 0, 0, ErrInvalidRange
		}
		if hi > n {
			hi = n
		}
		return lo, hi, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, 0, ErrInvalidRange
	}
	hi := v
	if hi > n {
		hi = n
	}
	return v, hi, nil
}
