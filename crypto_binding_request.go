package sstp

import "github.com/gemalto/sstp-go/wire"

// Hash protocol bits of CryptoBindingRequest.Bitmask.
const (
	BitmaskSHA1   byte = 0x01
	BitmaskSHA256 byte = 0x02
)

// CryptoBindingRequest asks the client for a CryptoBinding, offering the
// hash protocols in Bitmask.
type CryptoBindingRequest struct {
	header
	Bitmask byte
	Nonce   [32]byte
}

func NewCryptoBindingRequest() *CryptoBindingRequest {
	return &CryptoBindingRequest{Bitmask: BitmaskSHA1 | BitmaskSHA256}
}

var cryptoBindingRequestRange = LengthRange{Min: 40, Max: 40}

func (a *CryptoBindingRequest) ID() AttributeID {
	return AttributeIDCryptoBindingRequest
}

func (a *CryptoBindingRequest) ValidLengthRange() LengthRange {
	return cryptoBindingRequestRange
}

// Supports reports whether Bitmask offers p.
func (a *CryptoBindingRequest) Supports(p HashProtocol) bool {
	switch p {
	case HashProtocolSHA1:
		return a.Bitmask&BitmaskSHA1 != 0
	case HashProtocolSHA256:
		return a.Bitmask&BitmaskSHA256 != 0
	}
	return false
}

func (a *CryptoBindingRequest) Read(r wire.Reader) error {
	if err := readHeader(r, &a.header); err != nil {
		return err
	}
	if err := r.Move(len(reserved)); err != nil {
		return err
	}
	m, err := r.GetByte()
	if err != nil {
		return err
	}
	a.Bitmask = m
	return r.GetBytes(a.Nonce[:])
}

func (a *CryptoBindingRequest) Write(w wire.Writer) {
	writeHeader(w, a.ID(), &a.header)
	w.PutBytes(reserved[:])
	w.Put(a.Bitmask)
	w.PutBytes(a.Nonce[:])
}

func (a *CryptoBindingRequest) Update() {
	a.length = cryptoBindingRequestRange.Min
}

func (a *CryptoBindingRequest) String() string {
	return sprint(a)
}
