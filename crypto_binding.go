package sstp

import "github.com/gemalto/sstp-go/wire"

// CryptoBinding binds the tunnel to the inner authentication.  The codec
// carries the hash and MAC values as-is and never checks them.
type CryptoBinding struct {
	header
	HashProtocol HashProtocol
	Nonce        [32]byte
	CertHash     [32]byte
	CompoundMAC  [32]byte
}

func NewCryptoBinding() *CryptoBinding {
	return &CryptoBinding{HashProtocol: HashProtocolSHA256}
}

var cryptoBindingRange = LengthRange{Min: 104, Max: 104}

func (a *CryptoBinding) ID() AttributeID {
	return AttributeIDCryptoBinding
}

func (a *CryptoBinding) ValidLengthRange() LengthRange {
	return cryptoBindingRange
}

func (a *CryptoBinding) Read(r wire.Reader) error {
	if err := readHeader(r, &a.header); err != nil {
		return err
	}
	if err := r.Move(len(reserved)); err != nil {
		return err
	}
	p, err := r.GetByte()
	if err != nil {
		return err
	}
	a.HashProtocol = HashProtocol(p)
	for _, f := range [][]byte{a.Nonce[:], a.CertHash[:], a.CompoundMAC[:]} {
		if err := r.GetBytes(f); err != nil {
			return err
		}
	}
	return nil
}

func (a *CryptoBinding) Write(w wire.Writer) {
	writeHeader(w, a.ID(), &a.header)
	w.PutBytes(reserved[:])
	w.Put(byte(a.HashProtocol))
	w.PutBytes(a.Nonce[:])
	w.PutBytes(a.CertHash[:])
	w.PutBytes(a.CompoundMAC[:])
}

func (a *CryptoBinding) Update() {
	a.length = cryptoBindingRange.Min
}

func (a *CryptoBinding) String() string {
	return sprint(a)
}
