package sstp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Print writes a human readable form of a, one field per line:
//
//	CryptoBindingRequest (40):
//	  Bitmask: 0x03
//	  Nonce: 0x0000...
//
// A total length outside the valid range is noted after the length.
func Print(w io.Writer, prefix, indent string, a Attribute) error {
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "%s%v (%d):", prefix, a.ID(), a.TotalLength())
	if CheckLength(a) != nil {
		fmt.Fprintf(buf, " (length out of range %v)", a.ValidLengthRange())
	}

	field := func(name string, format string, v interface{}) {
		fmt.Fprintf(buf, "\n%s%s%s: "+format, prefix, indent, name, v)
	}

	switch t := a.(type) {
	case *EncapsulatedProtocolID:
		field("ProtocolID", "%d", t.ProtocolID)
	case *StatusInfo:
		field("TargetID", "%v", t.TargetID)
		field("Status", "0x%08x", t.Status)
		field("AttributeInfo", "%#x", t.AttributeInfo)
	case *CryptoBinding:
		field("HashProtocol", "%v", t.HashProtocol)
		field("Nonce", "%#x", t.Nonce[:])
		field("CertHash", "%#x", t.CertHash[:])
		field("CompoundMAC", "%#x", t.CompoundMAC[:])
	case *CryptoBindingRequest:
		field("Bitmask", "0x%02x", t.Bitmask)
		field("Nonce", "%#x", t.Nonce[:])
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func sprint(a Attribute) string {
	buf := bytes.NewBuffer(nil)
	_ = Print(buf, "", "  ", a)
	return buf.String()
}

// PrintPrettyHex writes the raw attributes in b as hex, one attribute per
// line, with the header fields split out:
//
//	00 | 01 | 0006 | 0001
//
// Bytes which can't be split into attributes, like a truncated header, are
// written as plain hex on a final line.
func PrintPrettyHex(w io.Writer, prefix string, b []byte) error {
	buf := bytes.NewBuffer(nil)
	for len(b) > 0 {
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		if len(b) < lenHeader {
			fmt.Fprintf(buf, "%s%x", prefix, b)
			break
		}
		declared := binary.BigEndian.Uint16(b[2:4])
		l := int(declared)
		if l < lenHeader {
			fmt.Fprintf(buf, "%s%x", prefix, b)
			break
		}
		if l > len(b) {
			l = len(b)
		}
		fmt.Fprintf(buf, "%s%02x | %02x | %04x", prefix, b[0], b[1], declared)
		if l > lenHeader {
			fmt.Fprintf(buf, " | %x", b[lenHeader:l])
		}
		b = b[l:]
	}
	_, err := w.Write(buf.Bytes())
	return err
}
