package sstp_test

import (
	"fmt"

	"github.com/gemalto/sstp-go"
	"github.com/gemalto/sstp-go/wire"
)

func ExampleMarshal() {
	a := sstp.NewStatusInfo()
	a.TargetID = sstp.AttributeIDCryptoBinding
	a.Status = 4
	a.AttributeInfo = make([]byte, 100)

	b, _ := sstp.Marshal(a)
	fmt.Println(len(b), a.TotalLength())

	// Output:
	// 76 76
}

func ExampleUnmarshal() {
	a, _ := sstp.Unmarshal(wire.Hex2bytes("00 01 0006 0001"))
	fmt.Println(a)

	// Output:
	// EncapsulatedProtocolID (6):
	//   ProtocolID: 1
}

func ExampleCheckLength() {
	a, err := sstp.Unmarshal(wire.Hex2bytes("00 02 000b 000000 00 00000000"))
	fmt.Println(a.TotalLength(), a.ValidLengthRange(), sstp.Is(err, sstp.ErrLengthOutOfRange))

	// Output:
	// 11 [12, 32767] true
}
