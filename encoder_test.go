package huffman

import (
	"bytes"
	"strings"
	"testing"
)

func makeTestEncoder() Encoder {
	var freqs Frequencies
	copy(freqs[:], []int{5, 9, 12, 13, 16, 45})
	var e Encoder
	e.Init(freqs)
	return e
}

func TestEncoder(t *testing.T) {
	e := makeTestEncoder()

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := e.SizeBySymbol()[:6]
	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}
}

func TestEncoder_String(t *testing.T) {
	e := makeTestEncoder()

	expectString := "(Huffman encoder with 6 symbols, with coded lengths of 1 .. 4 bits)"
	actualString := e.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestEncoder_Ties(t *testing.T) {
	var e Encoder
	e.Init(CountFrequencies([]byte("dcba")))

	type testRow struct {
		symbol byte
		code   string
	}

	testData := [...]testRow{
		{symbol: 'a', code: "00"},
		{symbol: 'b', code: "01"},
		{symbol: 'c', code: "10"},
		{symbol: 'd', code: "11"},
	}
	for _, row := range testData {
		t.Run(string(row.symbol), func(t *testing.T) {
			expect := MakeCode(row.code).String()
			actual := e.Encode(row.symbol).String()
			if expect != actual {
				t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", expect, actual)
			}
		})
	}
}

func TestEncoder_SingleSymbol(t *testing.T) {
	var e Encoder
	e.Init(CountFrequencies(bytes.Repeat([]byte{0xaa}, 100)))

	root := e.Root()
	if root == nil || !root.IsLeaf() || root.Symbol() != 0xaa {
		t.Fatalf("expected a single leaf for 0xaa, got %v", root)
	}
	if actual := e.Encode(0xaa).String(); actual != "\"0\"" {
		t.Errorf("wrong code: expect \"0\", actual %s", actual)
	}
	if e.NumSymbols() != 1 || e.MinSize() != 1 || e.MaxSize() != 1 {
		t.Errorf("wrong summary: %s", e.String())
	}
	if n := e.EncodedSize(bytes.Repeat([]byte{0xaa}, 100)); n != 100 {
		t.Errorf("expected 100 payload bits, got %d", n)
	}
}

func TestEncoder_Empty(t *testing.T) {
	var e Encoder
	e.Init(Frequencies{})

	if e.Root() != nil {
		t.Errorf("expected no root, got %v", e.Root())
	}
	if e.NumSymbols() != 0 {
		t.Errorf("expected no symbols, got %d", e.NumSymbols())
	}
	if e.Encode('x') != nil {
		t.Errorf("expected nil code, got %s", e.Encode('x'))
	}
}

func TestEncoder_PrefixFree(t *testing.T) {
	var e Encoder
	e.Init(CountFrequencies([]byte("the quick brown fox jumps over the lazy dog, again and again")))

	var codes []Code
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if hc := e.Encode(byte(symbol)); hc != nil {
			codes = append(codes, hc)
		}
	}
	for i, a := range codes {
		for j, b := range codes {
			if i == j || len(a) > len(b) {
				continue
			}
			if a.String()[1:len(a)+1] == b.String()[1:len(a)+1] {
				t.Errorf("code %s is a prefix of %s", a, b)
			}
		}
	}
}
