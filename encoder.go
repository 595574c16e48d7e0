package sstp

import "github.com/gemalto/sstp-go/wire"

// WriteAttribute updates a's cached length, then writes it.
func WriteAttribute(w wire.Writer, a Attribute) {
	a.Update()
	a.Write(w)
}

// Marshal updates and encodes a.
func Marshal(a Attribute) ([]byte, error) {
	return MarshalAll(a)
}

// MarshalAll updates and encodes attrs back to back.
func MarshalAll(attrs ...Attribute) ([]byte, error) {
	var buf wire.OutgoingBuffer
	for _, a := range attrs {
		WriteAttribute(&buf, a)
	}
	return buf.Bytes()
}
