package stego

import (
	"fmt"
	"strings"
)

// encodeText converts text into a flat sequence of 0/1 values, one 8-bit
// big-endian group per character. Characters must have code points at most
// 255; anything above that cannot be represented as a single group and is
// rejected before any pixel is touched.
func encodeText(text string) ([]uint8, error) {
	bits := make([]uint8, 0, len(text)*8)
	for _, r := range text {
		if r > 0xFF {
			return nil, fmt.Errorf("%w: %q (U+%04X)", ErrUnsupportedRune, r, r)
		}
		for i := 7; i >= 0; i-- {
			bits = append(bits, uint8(getBitUint8(uint8(r), i)))
		}
	}
	return bits, nil
}

// decodeBits reassembles text from a bit sequence produced by encodeText.
// A trailing group shorter than 8 bits is discarded.
func decodeBits(bits []uint8) string {
	var sb strings.Builder
	for i := 0; i+8 <= len(bits); i += 8 {
		var b uint8
		for j := 0; j < 8; j++ {
			b = b<<1 | bits[i+j]
		}
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

// MessageBytes returns the message as raw bytes, one byte per character.
// Useful when a recovered message carries binary data (e.g. hidden files)
// that must survive a round-trip to disk unchanged.
func MessageBytes(message string) ([]byte, error) {
	return textToBytes(message)
}

// textToBytes maps a decoded message back to its raw byte values, one byte
// per character. Inverse of bytesToText.
func textToBytes(text string) ([]byte, error) {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if r > 0xFF {
			return nil, fmt.Errorf("%w: %q (U+%04X)", ErrUnsupportedRune, r, r)
		}
		out = append(out, byte(r))
	}
	return out, nil
}

// bytesToText maps raw bytes to a string with one character per byte, so
// arbitrary binary data can travel through the character-oriented codec.
func bytesToText(data []byte) string {
	var sb strings.Builder
	for _, b := range data {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

func getBitUint8(num uint8, index int) int {
	mask := uint8(1 << index)
	if num&mask == 0 {
		return 0
	}
	return 1
}

func setBitUint8(num uint8, index int) uint8 {
	mask := uint8(1 << index)
	return num | mask
}

func clearBitUint8(num uint8, index int) uint8 {
	mask := uint8(^(1 << index))
	return num & mask
}
