package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/gemalto/flume"
	"github.com/gemalto/sstp-go"
	"github.com/gemalto/sstp-go/wire"
)

const FormatText = "text"
const FormatHex = "hex"
const FormatPrettyHex = "prettyhex"

func main() {

	flag.Usage = func() {
		s := `ppsstp - sstp attribute pretty printer

Usage:  ppsstp [options] [input]

Pretty prints a run of SSTP control message attributes, given in hex.
Any non-hex characters in the input, such as whitespace or the '|'
separators of the 'prettyhex' format, are ignored.

The input argument should be a string.  If not present, input will
be read from standard in.

Attributes whose length field is out of range for their type are
still printed, flagged with the valid range.

Examples:

    ppsstp 00010006000100040028000000030000000000000000000000000000000000000000000000000000000000000000

Output (in 'text' format):

    EncapsulatedProtocolID (6):
      ProtocolID: 1

    CryptoBindingRequest (40):
      Bitmask: 0x03
      Nonce: 0x0000000000000000000000000000000000000000000000000000000000000000

prettyhex format:

    00 | 01 | 0006 | 0001
    00 | 04 | 0028 | 000000030000000000000000000000000000000000000000000000000000000000000000
`
		_, _ = fmt.Fprintln(flag.CommandLine.Output(), s)
		flag.PrintDefaults()
	}

	var outFormat string
	var inFile string
	var verbose bool
	flag.StringVar(&outFormat, "o", FormatText, "output format: text|hex|prettyhex")
	flag.StringVar(&inFile, "f", "", "input file name, defaults to stdin")
	flag.BoolVar(&verbose, "v", false, "log decoding to stderr")

	flag.Parse()

	if verbose {
		flume.Configure(flume.Config{
			Development:  true,
			DefaultLevel: flume.DebugLevel,
		})
	}

	buf := bytes.NewBuffer(nil)

	if inFile != "" {
		file, err := ioutil.ReadFile(inFile)
		if err != nil {
			fail("error reading input file", err)
		}
		buf = bytes.NewBuffer(file)
	} else if inArg := flag.Arg(0); inArg != "" {
		buf.WriteString(inArg)
	} else {
		scanner := bufio.NewScanner(os.Stdin)

		for scanner.Scan() {
			buf.Write(scanner.Bytes())
		}

		if err := scanner.Err(); err != nil {
			fail("error reading standard input", err)
		}
	}

	raw, err := decodeHex(buf.String())
	if err != nil {
		fail("error parsing hex", err)
	}

	switch strings.ToLower(outFormat) {
	case FormatText:
		printText(raw)
	case FormatHex:
		fmt.Print(hex.EncodeToString(raw))
	case FormatPrettyHex:
		if err := sstp.PrintPrettyHex(os.Stdout, "", raw); err != nil {
			fail("error printing", err)
		}
	default:
		fail("invalid output format: "+outFormat, nil)
	}
}

func decodeHex(s string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return wire.Hex2bytes(s), nil
}

func printText(raw []byte) {
	in := wire.NewIncomingBuffer(raw)
	dec := sstp.NewDecoder(in)
	dec.AllowInvalidLength = true

	var count int
	for in.Remaining() > 0 {
		a, err := dec.Decode()
		if err != nil {
			fail(fmt.Sprintf("error decoding attribute %d", count+1), err)
		}
		if count > 0 {
			fmt.Print("\n\n")
		}
		if err := sstp.Print(os.Stdout, "", "  ", a); err != nil {
			fail("error printing", err)
		}
		count++
	}
}

func fail(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, msg+":", err)
	} else {
		_, _ = fmt.Fprintln(os.Stderr, msg)
	}
	os.Exit(1)
}
