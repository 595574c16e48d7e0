// Package wire holds the byte buffers the attribute codec reads from and
// writes to.  All multi-byte values are big-endian.
package wire

import (
	"errors"

	"github.com/ansel1/merry"
	"golang.org/x/crypto/cryptobyte"
)

var ErrBufferUnderrun = errors.New("buffer underrun")

// Reader is a sequential big-endian reader over an inbound buffer.  A failed
// read consumes nothing.
type Reader interface {
	GetByte() (byte, error)
	GetShort() (uint16, error)
	GetInt() (uint32, error)
	// GetBytes fills p completely.
	GetBytes(p []byte) error
	// Move skips n bytes.
	Move(n int) error
}

// Writer is a sequential big-endian writer.  Each call appends at the
// current position.
type Writer interface {
	Put(b byte)
	PutShort(v uint16)
	PutInt(v uint32)
	PutBytes(p []byte)
}

// IncomingBuffer implements Reader over bytes received from the network.
type IncomingBuffer struct {
	s cryptobyte.String
}

func NewIncomingBuffer(b []byte) *IncomingBuffer {
	return &IncomingBuffer{s: cryptobyte.String(b)}
}

// Remaining returns the number of unread bytes.
func (b *IncomingBuffer) Remaining() int {
	return len(b.s)
}

func (b *IncomingBuffer) underrun(n int) error {
	return merry.Here(ErrBufferUnderrun).Appendf("need %d bytes, %d remaining", n, len(b.s))
}

func (b *IncomingBuffer) GetByte() (byte, error) {
	var v uint8
	if !b.s.ReadUint8(&v) {
		return 0, b.underrun(1)
	}
	return v, nil
}

func (b *IncomingBuffer) GetShort() (uint16, error) {
	var v uint16
	if !b.s.ReadUint16(&v) {
		return 0, b.underrun(2)
	}
	return v, nil
}

func (b *IncomingBuffer) GetInt() (uint32, error) {
	var v uint32
	if !b.s.ReadUint32(&v) {
		return 0, b.underrun(4)
	}
	return v, nil
}

func (b *IncomingBuffer) GetBytes(p []byte) error {
	if !b.s.CopyBytes(p) {
		return b.underrun(len(p))
	}
	return nil
}

func (b *IncomingBuffer) Move(n int) error {
	if n < 0 {
		return merry.Errorf("invalid skip count %d", n)
	}
	if !b.s.Skip(n) {
		return b.underrun(n)
	}
	return nil
}

// OutgoingBuffer implements Writer.  The zero value is ready to use.
type OutgoingBuffer struct {
	b cryptobyte.Builder
}

func NewOutgoingBuffer(buf []byte) *OutgoingBuffer {
	return &OutgoingBuffer{b: *cryptobyte.NewBuilder(buf)}
}

func (o *OutgoingBuffer) Put(b byte) {
	o.b.AddUint8(b)
}

func (o *OutgoingBuffer) PutShort(v uint16) {
	o.b.AddUint16(v)
}

func (o *OutgoingBuffer) PutInt(v uint32) {
	o.b.AddUint32(v)
}

func (o *OutgoingBuffer) PutBytes(p []byte) {
	o.b.AddBytes(p)
}

// Bytes returns everything written so far.
func (o *OutgoingBuffer) Bytes() ([]byte, error) {
	b, err := o.b.Bytes()
	if err != nil {
		return nil, merry.Wrap(err)
	}
	return b, nil
}
