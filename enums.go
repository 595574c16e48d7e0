package sstp

import (
	"fmt"
	"strings"

	"github.com/ansel1/merry"
	"github.com/gemalto/sstp-go/internal/sstputil"
)

// AttributeID identifies the record type of an attribute.
type AttributeID byte

const (
	AttributeIDNoError                AttributeID = 0x00
	AttributeIDEncapsulatedProtocolID AttributeID = 0x01
	AttributeIDStatusInfo             AttributeID = 0x02
	AttributeIDCryptoBinding          AttributeID = 0x03
	AttributeIDCryptoBindingRequest   AttributeID = 0x04
)

var _AttributeIDValueToNameMap = map[AttributeID]string{
	AttributeIDNoError:                "NoError",
	AttributeIDEncapsulatedProtocolID: "EncapsulatedProtocolID",
	AttributeIDStatusInfo:             "StatusInfo",
	AttributeIDCryptoBinding:          "CryptoBinding",
	AttributeIDCryptoBindingRequest:   "CryptoBindingRequest",
}

var _AttributeIDNameToValueMap = map[string]AttributeID{}

// HashProtocol is the certificate hash protocol named in a CryptoBinding.
type HashProtocol byte

const (
	HashProtocolSHA1   HashProtocol = 0x01
	HashProtocolSHA256 HashProtocol = 0x02
)

var _HashProtocolValueToNameMap = map[HashProtocol]string{
	HashProtocolSHA1:   "SHA1",
	HashProtocolSHA256: "SHA256",
}

var _HashProtocolNameToValueMap = map[string]HashProtocol{}

func init() {
	for v, name := range _AttributeIDValueToNameMap {
		_AttributeIDNameToValueMap[nameKey(name)] = v
	}
	for v, name := range _HashProtocolValueToNameMap {
		_HashProtocolNameToValueMap[nameKey(name)] = v
	}
}

func nameKey(s string) string {
	return strings.ToLower(sstputil.NormalizeName(s))
}

// AttributeIDFromByte resolves a raw identifier byte.  ok is false if b
// isn't a known attribute id.
func AttributeIDFromByte(b byte) (id AttributeID, ok bool) {
	_, ok = _AttributeIDValueToNameMap[AttributeID(b)]
	return AttributeID(b), ok
}

// ParseAttributeID parses a name ("crypto binding", "CryptoBinding"), a
// decimal number, or a "0x" prefixed hex byte.
func ParseAttributeID(s string) (AttributeID, error) {
	if v, ok := _AttributeIDNameToValueMap[nameKey(s)]; ok {
		return v, nil
	}
	b, err := sstputil.ParseUint8(s)
	if err != nil {
		return 0, merry.Prependf(err, "invalid attribute id %q", s)
	}
	id, ok := AttributeIDFromByte(b)
	if !ok {
		return 0, merry.Here(ErrUnknownAttributeID).Appendf("0x%02x", b)
	}
	return id, nil
}

// String returns the canonical name of the id, or its hex value
// (e.g. "0x09") if it isn't known.
func (i AttributeID) String() string {
	if s, ok := _AttributeIDValueToNameMap[i]; ok {
		return s
	}
	return fmt.Sprintf("0x%02x", byte(i))
}

func (i AttributeID) MarshalText() (text []byte, err error) {
	return []byte(i.String()), nil
}

func (i *AttributeID) UnmarshalText(text []byte) (err error) {
	*i, err = ParseAttributeID(string(text))
	return
}

// HashProtocolFromByte resolves a raw hash protocol byte.  ok is false if b
// isn't a known protocol.
func HashProtocolFromByte(b byte) (p HashProtocol, ok bool) {
	_, ok = _HashProtocolValueToNameMap[HashProtocol(b)]
	return HashProtocol(b), ok
}

func ParseHashProtocol(s string) (HashProtocol, error) {
	// also accepts the protocol document names, e.g. CERT_HASH_PROTOCOL_SHA256
	key := strings.TrimPrefix(nameKey(s), "certhashprotocol")
	if v, ok := _HashProtocolNameToValueMap[key]; ok {
		return v, nil
	}
	b, err := sstputil.ParseUint8(s)
	if err != nil {
		return 0, merry.Prependf(err, "invalid hash protocol %q", s)
	}
	p, ok := HashProtocolFromByte(b)
	if !ok {
		return 0, merry.Errorf("unknown hash protocol 0x%02x", b)
	}
	return p, nil
}

func (p HashProtocol) String() string {
	if s, ok := _HashProtocolValueToNameMap[p]; ok {
		return s
	}
	return fmt.Sprintf("0x%02x", byte(p))
}

func (p HashProtocol) MarshalText() (text []byte, err error) {
	return []byte(p.String()), nil
}

func (p *HashProtocol) UnmarshalText(text []byte) (err error) {
	*p, err = ParseHashProtocol(string(text))
	return
}
