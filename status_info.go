package sstp

import "github.com/gemalto/sstp-go/wire"

// MaxAttributeInfoLen is the most AttributeInfo bytes StatusInfo will write.
const MaxAttributeInfoLen = 64

// StatusInfo reports the status of an attribute the peer sent, usually one
// it rejected.  AttributeInfo holds the offending attribute.
type StatusInfo struct {
	header
	TargetID      AttributeID
	Status        uint32
	AttributeInfo []byte
}

func NewStatusInfo() *StatusInfo {
	return &StatusInfo{}
}

var statusInfoRange = LengthRange{Min: 12, Max: MaxLength}

func (a *StatusInfo) ID() AttributeID {
	return AttributeIDStatusInfo
}

func (a *StatusInfo) ValidLengthRange() LengthRange {
	return statusInfoRange
}

// Read consumes every AttributeInfo byte the length field declares, even past
// MaxAttributeInfoLen.
func (a *StatusInfo) Read(r wire.Reader) error {
	if err := readHeader(r, &a.header); err != nil {
		return err
	}
	if err := r.Move(len(reserved)); err != nil {
		return err
	}
	target, err := r.GetByte()
	if err != nil {
		return err
	}
	a.TargetID = AttributeID(target)
	if a.Status, err = r.GetInt(); err != nil {
		return err
	}

	a.AttributeInfo = nil
	// a length under the minimum has no info bytes, CheckLength reports it
	if n := int(a.length) - int(statusInfoRange.Min); n > 0 {
		info := make([]byte, n)
		if err := r.GetBytes(info); err != nil {
			return err
		}
		a.AttributeInfo = info
	}
	return nil
}

// Write emits at most the first MaxAttributeInfoLen bytes of AttributeInfo.
func (a *StatusInfo) Write(w wire.Writer) {
	writeHeader(w, a.ID(), &a.header)
	w.PutBytes(reserved[:])
	w.Put(byte(a.TargetID))
	w.PutInt(a.Status)
	w.PutBytes(a.info())
}

func (a *StatusInfo) Update() {
	a.length = statusInfoRange.Min + uint16(len(a.info()))
}

func (a *StatusInfo) info() []byte {
	if len(a.AttributeInfo) > MaxAttributeInfoLen {
		return a.AttributeInfo[:MaxAttributeInfoLen]
	}
	return a.AttributeInfo
}

func (a *StatusInfo) String() string {
	return sprint(a)
}
