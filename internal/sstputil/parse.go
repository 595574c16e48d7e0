package sstputil

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"github.com/ansel1/merry"
)

var ErrInvalidHexString = errors.New("invalid hex string")

// ParseUint8 parses a byte value from a string.  The string
// may be a decimal number, or a hex string prefixed with "0x".
func ParseUint8(s string) (uint8, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		b, err := hex.DecodeString(s[2:])
		if err != nil {
			return 0, merry.Here(ErrInvalidHexString).WithCause(err)
		}
		if len(b) != 1 {
			return 0, merry.Here(ErrInvalidHexString).Append("must be 1 byte (2 hex characters)")
		}
		return b[0], nil
	}
	i, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, merry.Wrap(err)
	}
	return uint8(i), nil
}
