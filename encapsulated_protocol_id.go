package sstp

import "github.com/gemalto/sstp-go/wire"

// ProtocolIDPPP is the only encapsulated protocol SSTP defines.
const ProtocolIDPPP uint16 = 1

// EncapsulatedProtocolID names the protocol carried by the tunnel.
type EncapsulatedProtocolID struct {
	header
	ProtocolID uint16
}

func NewEncapsulatedProtocolID() *EncapsulatedProtocolID {
	return &EncapsulatedProtocolID{ProtocolID: ProtocolIDPPP}
}

var encapsulatedProtocolIDRange = LengthRange{Min: 6, Max: 6}

func (a *EncapsulatedProtocolID) ID() AttributeID {
	return AttributeIDEncapsulatedProtocolID
}

func (a *EncapsulatedProtocolID) ValidLengthRange() LengthRange {
	return encapsulatedProtocolIDRange
}

func (a *EncapsulatedProtocolID) Read(r wire.Reader) error {
	if err := readHeader(r, &a.header); err != nil {
		return err
	}
	v, err := r.GetShort()
	if err != nil {
		return err
	}
	a.ProtocolID = v
	return nil
}

func (a *EncapsulatedProtocolID) Write(w wire.Writer) {
	writeHeader(w, a.ID(), &a.header)
	w.PutShort(a.ProtocolID)
}

func (a *EncapsulatedProtocolID) Update() {
	a.length = encapsulatedProtocolIDRange.Min
}

func (a *EncapsulatedProtocolID) String() string {
	return sprint(a)
}
