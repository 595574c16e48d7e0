package wire

import (
	"encoding/hex"
	"strings"
)

// Hex2bytes converts a hex string into bytes.  Characters which aren't hex
// digits are ignored, so formatted dumps like "00 | 02 | 000c" can be pasted
// in directly.  Panics if the remaining digits are odd in number.
func Hex2bytes(s string) []byte {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
