// Package sstp encodes and decodes the attributes carried inside SSTP control
// messages.
//
// Every attribute starts with the same 4 byte header:
//
//	| reserved (1) | attribute id (1) | total length (2) | body ...
//
// The total length counts the header.  Multi-byte values are big-endian.
//
// Attributes
//
// The four record types, EncapsulatedProtocolID, StatusInfo, CryptoBinding and
// CryptoBindingRequest, all implement Attribute.  A record is created with its
// defaults by its constructor (or NewAttribute), filled in, and then written:
//
//	a := sstp.NewCryptoBindingRequest()
//	copy(a.Nonce[:], nonce)
//	b, err := sstp.Marshal(a)
//
// Marshal calls Update before Write.  Callers driving Write directly must
// call Update first, and again after every change to StatusInfo.AttributeInfo,
// since Update is what caches the total length.
//
// StatusInfo writes at most 64 bytes of AttributeInfo, but reads however many
// bytes the peer's length field declares.
//
// Decoding
//
// ReadAttribute reads the reserved byte and the attribute id, picks the
// record type, and reads the rest.  The decoded total length is checked with
// CheckLength; a length outside the record's valid range is reported as
// ErrLengthOutOfRange alongside the decoded record.  Decoder does the same for
// a run of attributes and logs what it decodes.
package sstp
