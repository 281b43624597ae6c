package stego

// DefaultDelimiter marks the end of the hidden message. It must not occur
// inside a legitimate message; Hide rejects messages that contain it.
const DefaultDelimiter = "###END###"

// channelsPerPixel is the number of color channels carrying payload bits.
// The alpha channel is never touched.
const channelsPerPixel = 3

// CapacityBits returns the number of payload bits an image of the given
// dimensions can carry, at one bit per color channel.
func CapacityBits(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height * channelsPerPixel
}

// CapacityChars returns the number of whole 8-bit characters that fit in
// the image.
func CapacityChars(width, height int) int {
	return CapacityBits(width, height) / 8
}

// MaxMessageChars returns an advisory upper bound on the message length
// once the delimiter has claimed its share. The enforced bound is the
// bit-exact check in validateCapacity, which already counts the delimiter
// as part of the payload.
func MaxMessageChars(width, height int, delimiter string) int {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return CapacityChars(width, height) - len(delimiter)
}

// validateCapacity fails with a CapacityError when the payload does not
// fit. It runs before any pixel mutation, so a failed hide leaves the
// carrier untouched.
func validateCapacity(payloadBits, width, height int) error {
	available := CapacityBits(width, height)
	if payloadBits > available {
		return &CapacityError{Needed: payloadBits, Available: available}
	}
	return nil
}
