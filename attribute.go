package sstp

import (
	"fmt"
	"math"

	"github.com/ansel1/merry"
	"github.com/gemalto/sstp-go/wire"
)

const lenHeader = 4 // reserved + id + length

// MaxLength is the largest total length any attribute may declare.
const MaxLength = math.MaxInt16

var reserved = [3]byte{}

// LengthRange is a closed interval of valid total lengths.
type LengthRange struct {
	Min, Max uint16
}

func (r LengthRange) Contains(n uint16) bool {
	return n >= r.Min && n <= r.Max
}

func (r LengthRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// Attribute is implemented by the four attribute record types.  The set is
// closed: only types in this package implement it.
type Attribute interface {
	ID() AttributeID
	// ValidLengthRange is constant for each record type.
	ValidLengthRange() LengthRange
	// TotalLength is the length cached by the last Update or Read,
	// header included.
	TotalLength() uint16
	// Read consumes the length field and body.  The reserved byte and
	// the id byte must already have been consumed.
	Read(r wire.Reader) error
	// Write emits the header and body.  Update must be called first.
	Write(w wire.Writer)
	// Update recomputes the cached total length from the current fields.
	Update()

	fmt.Stringer

	attribute()
}

// header holds the cached total length shared by every record.
type header struct {
	length uint16
}

func (h *header) TotalLength() uint16 {
	return h.length
}

func (*header) attribute() {}

func readHeader(r wire.Reader, h *header) error {
	l, err := r.GetShort()
	if err != nil {
		return err
	}
	h.length = l
	return nil
}

func writeHeader(w wire.Writer, id AttributeID, h *header) {
	w.Put(0)
	w.Put(byte(id))
	w.PutShort(h.length)
}

// CheckLength returns ErrLengthOutOfRange if a's cached total length is
// outside its valid range.
func CheckLength(a Attribute) error {
	r := a.ValidLengthRange()
	if r.Contains(a.TotalLength()) {
		return nil
	}
	err := merry.Here(ErrLengthOutOfRange).Appendf("%v length %d not in %v", a.ID(), a.TotalLength(), r)
	return WithAttributeID(err, a.ID())
}

// NewAttribute returns a record with default values for id.
func NewAttribute(id AttributeID) (Attribute, error) {
	switch id {
	case AttributeIDEncapsulatedProtocolID:
		return NewEncapsulatedProtocolID(), nil
	case AttributeIDStatusInfo:
		return NewStatusInfo(), nil
	case AttributeIDCryptoBinding:
		return NewCryptoBinding(), nil
	case AttributeIDCryptoBindingRequest:
		return NewCryptoBindingRequest(), nil
	case AttributeIDNoError:
		return nil, WithAttributeID(merry.Here(ErrUnsupportedAttribute), id)
	default:
		return nil, merry.Here(ErrUnknownAttributeID).Appendf("0x%02x", byte(id))
	}
}
