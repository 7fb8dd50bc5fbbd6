package snowid

import "errors"

var (
	// ErrInvalidWorkerID indicates an explicitly supplied worker id outside [0, 1023]
	ErrInvalidWorkerID = errors.New("snowid: worker id must be in range [0, 1023]")

	// ErrInvalidFormat indicates that an ID string cannot be decoded
	ErrInvalidFormat = errors.New("snowid: invalid ID format")

	// ErrInvalidLength indicates that an ID byte slice has incorrect length
	ErrInvalidLength = errors.New("snowid: invalid ID length (expected 8 bytes)")
)

// errNoHardwareAddress is never surfaced to callers; auto-derivation falls
// back to a random worker id instead.
var errNoHardwareAddress = errors.New("snowid: no usable hardware address found")
