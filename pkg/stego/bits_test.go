package stego

import (
	"errors"
	"testing"
)

func TestEncodeText(t *testing.T) {
	// 'A' = 65 = 01000001, big-endian bit order
	bits, err := encodeText("A")
	if err != nil {
		t.Fatalf("encodeText failed: %v", err)
	}
	want := []uint8{0, 1, 0, 0, 0, 0, 0, 1}
	if len(bits) != len(want) {
		t.Fatalf("encodeText(\"A\") produced %d bits, want %d", len(bits), len(want))
	}
	for i := range want {
		if bits[i] != want[i] {
			t.Errorf("bit %d = %d, want %d", i, bits[i], want[i])
		}
	}
}

func TestEncodeTextRejectsWideRunes(t *testing.T) {
	_, err := encodeText("日本")
	if !errors.Is(err, ErrUnsupportedRune) {
		t.Errorf("expected ErrUnsupportedRune, got %v", err)
	}
}

func TestDecodeBitsDiscardsPartialGroup(t *testing.T) {
	bits, err := encodeText("A")
	if err != nil {
		t.Fatalf("encodeText failed: %v", err)
	}
	// Three stray trailing bits must not produce an extra character
	bits = append(bits, 1, 0, 1)
	if got := decodeBits(bits); got != "A" {
		t.Errorf("decodeBits = %q, want %q", got, "A")
	}
}

func TestTextRoundTrip(t *testing.T) {
	messages := []string{
		"",
		"Hi",
		"###END###",
		"café naïve", // Latin-1 accents stay within a single byte
		"lengths need not be a multiple of anything",
	}
	for _, msg := range messages {
		bits, err := encodeText(msg)
		if err != nil {
			t.Fatalf("encodeText(%q) failed: %v", msg, err)
		}
		if len(bits) != 8*len([]rune(msg)) {
			t.Errorf("encodeText(%q) produced %d bits, want %d", msg, len(bits), 8*len([]rune(msg)))
		}
		if got := decodeBits(bits); got != msg {
			t.Errorf("round trip of %q gave %q", msg, got)
		}
	}
}

func TestBytesTextRoundTrip(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	text := bytesToText(data)
	back, err := textToBytes(text)
	if err != nil {
		t.Fatalf("textToBytes failed: %v", err)
	}
	if len(back) != len(data) {
		t.Fatalf("round trip length %d, want %d", len(back), len(data))
	}
	for i := range data {
		if back[i] != data[i] {
			t.Errorf("byte %d = %d, want %d", i, back[i], data[i])
		}
	}
}

func TestBitManipulation(t *testing.T) {
	if got := setBitUint8(0, 2); got != 4 {
		t.Errorf("setBitUint8(0, 2) = %d; want 4", got)
	}

	if got := clearBitUint8(4, 2); got != 0 {
		t.Errorf("clearBitUint8(4, 2) = %d; want 0", got)
	}

	if got := getBitUint8(4, 2); got != 1 {
		t.Errorf("getBitUint8(4, 2) = %d; want 1", got)
	}
	if got := getBitUint8(4, 0); got != 0 {
		t.Errorf("getBitUint8(4, 0) = %d; want 0", got)
	}
}
