package snowid

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
)

// Bytes returns the ID as an 8-byte big-endian slice. Big-endian keeps byte
// order comparisons consistent with numeric ordering.
func (id ID) Bytes() []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	return buf[:]
}

// FromBytes creates an ID from an 8-byte big-endian slice
func FromBytes(b []byte) (ID, error) {
	if len(b) != 8 {
		return 0, ErrInvalidLength
	}
	return ID(binary.BigEndian.Uint64(b)), nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) ID {
	id, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return id
}

// EncodeToHex encodes the ID to a 16-character hexadecimal string
func (id ID) EncodeToHex() string {
	return hex.EncodeToString(id.Bytes())
}

// EncodeToBase64 encodes the ID to a base64 string (URL-safe, no padding)
func (id ID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(id.Bytes())
}

// EncodeToBase64Std encodes the ID to a standard base64 string
func (id ID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(id.Bytes())
}

// DecodeFromHex decodes a 16-character hexadecimal string to an ID
func DecodeFromHex(s string) (ID, error) {
	if len(s) != 16 {
		return 0, ErrInvalidFormat
	}
	var buf [8]byte
	if _, err := hex.Decode(buf[:], []byte(s)); err != nil {
		return 0, ErrInvalidFormat
	}
	return FromBytes(buf[:])
}

// DecodeFromBase64 decodes a base64 string to an ID (URL-safe encoding)
func DecodeFromBase64(s string) (ID, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return FromBytes(data)
}

// DecodeFromBase64Std decodes a standard base64 string to an ID
func DecodeFromBase64Std(s string) (ID, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return FromBytes(data)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
