package stego

import (
	"errors"
	"fmt"
)

// ErrMessageNotFound indicates the delimiter was never seen after scanning
// the whole image. The image was probably never embedded, or enough bits
// were flipped to destroy the sentinel.
var ErrMessageNotFound = errors.New("no hidden message found")

// ErrUnsupportedRune indicates the message contains a character whose code
// point does not fit in a single byte.
var ErrUnsupportedRune = errors.New("message contains a character outside the single-byte range")

// ErrDelimiterInMessage indicates the message contains the delimiter
// sequence, which would truncate extraction at the wrong place.
var ErrDelimiterInMessage = errors.New("message contains the delimiter sequence")

// ErrPayloadCorrupted indicates that parity-armored data was damaged
// beyond what the parity shards can repair.
var ErrPayloadCorrupted = errors.New("armored payload corrupted beyond repair")

// CapacityError is returned when a payload does not fit in the carrier
// image. It carries both sides of the comparison so callers can report them.
type CapacityError struct {
	Needed    int // payload size in bits, delimiter included
	Available int // image capacity in bits
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("message too long: image can hold max %d bits, but message needs %d bits", e.Available, e.Needed)
}
