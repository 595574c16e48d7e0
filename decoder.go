package sstp

import (
	"github.com/ansel1/merry"
	"github.com/gemalto/flume"
	"github.com/gemalto/sstp-go/wire"
)

var decoderLog = flume.New("sstp_decoder")

// ReadAttribute reads one attribute, starting at its reserved byte.
//
// Buffer errors are returned as-is.  If the decoded total length is outside
// the record's valid range, the record is returned along with an
// ErrLengthOutOfRange error.
func ReadAttribute(r wire.Reader) (Attribute, error) {
	if err := r.Move(1); err != nil {
		return nil, err
	}
	b, err := r.GetByte()
	if err != nil {
		return nil, err
	}
	id, ok := AttributeIDFromByte(b)
	if !ok {
		return nil, merry.Here(ErrUnknownAttributeID).Appendf("0x%02x", b)
	}
	a, err := NewAttribute(id)
	if err != nil {
		return nil, err
	}
	if err := a.Read(r); err != nil {
		return nil, err
	}
	if err := CheckLength(a); err != nil {
		return a, err
	}
	return a, nil
}

// Unmarshal decodes the single attribute at the start of b.
func Unmarshal(b []byte) (Attribute, error) {
	return ReadAttribute(wire.NewIncomingBuffer(b))
}

// Decoder reads a run of attributes, such as the attribute list of a
// control message.
type Decoder struct {
	r wire.Reader

	// AllowInvalidLength makes Decode return records whose total length
	// is outside the valid range instead of failing.  Either way the
	// violation is logged.
	AllowInvalidLength bool
}

func NewDecoder(r wire.Reader) *Decoder {
	return &Decoder{r: r}
}

func (dec *Decoder) Decode() (Attribute, error) {
	a, err := ReadAttribute(dec.r)
	switch {
	case err == nil:
		decoderLog.Debug("decoded attribute", "attribute", a.ID(), "length", a.TotalLength())
		return a, nil
	case a != nil && merry.Is(err, ErrLengthOutOfRange):
		decoderLog.Error("attribute length out of range",
			"attribute", a.ID(),
			"length", a.TotalLength(),
			"validRange", a.ValidLengthRange().String(),
		)
		if dec.AllowInvalidLength {
			return a, nil
		}
		return a, err
	default:
		decoderLog.Debug("attribute decode failed", "error", err.Error())
		return nil, err
	}
}

// DecodeAll decodes n attributes.  It stops at the first error, returning
// the attributes decoded before it.
func (dec *Decoder) DecodeAll(n int) ([]Attribute, error) {
	attrs := make([]Attribute, 0, n)
	for i := 0; i < n; i++ {
		a, err := dec.Decode()
		if err != nil {
			return attrs, merry.Prependf(err, "attribute %d of %d", i+1, n)
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}
