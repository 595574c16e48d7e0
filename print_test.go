package sstp

import (
	"bytes"
	"testing"

	"github.com/gemalto/sstp-go/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		a    Attribute
		exp  string
	}{
		{
			name: "EncapsulatedProtocolID",
			a:    NewEncapsulatedProtocolID(),
			exp: `EncapsulatedProtocolID (6):
  ProtocolID: 1`,
		},
		{
			name: "StatusInfo",
			a:    statusInfo([]byte{0x00, 0x04}),
			exp: `StatusInfo (14):
  TargetID: CryptoBinding
  Status: 0x00000004
  AttributeInfo: 0x0004`,
		},
		{
			name: "CryptoBindingRequest",
			a:    fullCryptoBindingRequest(),
			exp: `CryptoBindingRequest (40):
  Bitmask: 0x02
  Nonce: 0xa0a1a2a3a4a5a6a7a8a9aaabacadaeafb0b1b2b3b4b5b6b7b8b9babbbcbdbebf`,
		},
		{
			name: "CryptoBinding",
			a:    fullCryptoBinding(),
			exp: `CryptoBinding (104):
  HashProtocol: SHA1
  Nonce: 0x000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f
  CertHash: 0x404142434445464748494a4b4c4d4e4f505152535455565758595a5b5c5d5e5f
  CompoundMAC: 0x808182838485868788898a8b8c8d8e8f909192939495969798999a9b9c9d9e9f`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.a.Update()
			buf := &bytes.Buffer{}
			require.NoError(t, Print(buf, "", "  ", tc.a))
			assert.Equal(t, tc.exp, buf.String())
			assert.Equal(t, tc.exp, tc.a.String())
		})
	}
}

func TestPrint_invalidLength(t *testing.T) {
	a, err := Unmarshal(wire.Hex2bytes("00 01 0005 0001"))
	require.Error(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, Print(buf, "> ", "  ", a))
	assert.Equal(t, `> EncapsulatedProtocolID (5): (length out of range [6, 6])
>   ProtocolID: 1`, buf.String())
}

func TestPrintPrettyHex(t *testing.T) {
	b, err := MarshalAll(NewEncapsulatedProtocolID(), statusInfo(nil))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, PrintPrettyHex(buf, "", b))
	assert.Equal(t, `00 | 01 | 0006 | 0001
00 | 02 | 000c | 0000000300000004`, buf.String())

	// output is valid hex input
	assert.Equal(t, b, wire.Hex2bytes(buf.String()))

	// should tolerate a truncated header
	buf.Reset()
	require.NoError(t, PrintPrettyHex(buf, "", append(b[:6], 0x00, 0x02)))
	assert.Equal(t, `00 | 01 | 0006 | 0001
0002`, buf.String())

	// and a length running past the end
	buf.Reset()
	require.NoError(t, PrintPrettyHex(buf, "", wire.Hex2bytes("00 02 000c 0000")))
	assert.Equal(t, `00 | 02 | 000c | 0000`, buf.String())

	// and a length too short to hold the header
	buf.Reset()
	require.NoError(t, PrintPrettyHex(buf, "", wire.Hex2bytes("00 02 0002 0000")))
	assert.Equal(t, `000200020000`, buf.String())
}
