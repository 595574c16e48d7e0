package sstp

import (
	"errors"
	"fmt"

	"github.com/ansel1/merry"
	"github.com/gemalto/sstp-go/wire"
)

func Is(err error, originals ...error) bool {
	return merry.Is(err, originals...)
}

func Details(err error) string {
	return merry.Details(err)
}

// ErrBufferUnderrun is returned, unmodified, when the incoming buffer runs
// out of bytes mid-attribute.
var ErrBufferUnderrun = wire.ErrBufferUnderrun

var ErrLengthOutOfRange = errors.New("attribute length out of range")
var ErrUnknownAttributeID = errors.New("unknown attribute id")
var ErrUnsupportedAttribute = errors.New("attribute id has no record layout")

type errKey int

const (
	errorKeyAttributeID errKey = iota
)

func init() {
	merry.RegisterDetail("Attribute ID", errorKeyAttributeID)
}

func WithAttributeID(err error, id AttributeID) error {
	return merry.WithValue(err, errorKeyAttributeID, id)
}

// GetAttributeID returns the attribute id attached to err with WithAttributeID.
func GetAttributeID(err error) (AttributeID, bool) {
	v := merry.Value(err, errorKeyAttributeID)
	switch t := v.(type) {
	case nil:
		return 0, false
	case AttributeID:
		return t, true
	default:
		panic(fmt.Sprintf("err attribute id value was wrong type, expected AttributeID, got %T", v))
	}
}
