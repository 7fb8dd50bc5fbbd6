package snowid

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// ID is a 64-bit identifier produced by a Generator. The top bit is always
// zero, so an ID converts losslessly to int64 for signed consumers such as
// SQL BIGINT columns.
type ID uint64

// WorkerID returns the worker id encoded in bits 62-53.
func (id ID) WorkerID() int64 {
	return int64(id >> workerIDShift)
}

// Timestamp returns the encoded timestamp in milliseconds since the epoch
// (bits 52-12). Under sustained bursts the encoded timestamp can run ahead of
// the wall clock, since it advances through sequence overflow rather than
// clock reads.
func (id ID) Timestamp() int64 {
	return int64((uint64(id) & timestampAndSequenceMask) >> sequenceBits)
}

// Time returns the encoded timestamp as a time.Time.
func (id ID) Time() time.Time {
	return time.UnixMilli(id.Timestamp() + epoch)
}

// Sequence returns the 12-bit sequence encoded in bits 11-0.
func (id ID) Sequence() int64 {
	return int64(id & (1<<sequenceBits - 1))
}

// Int64 returns the ID as a signed 64-bit integer. Always non-negative.
func (id ID) Int64() int64 {
	return int64(id)
}

// IsZero returns true for the zero ID, which no Generator ever produces.
func (id ID) IsZero() bool {
	return id == 0
}

// String returns the decimal representation of the ID.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Parse parses an ID from its decimal string representation.
func Parse(s string) (ID, error) {
	n, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return ID(n), nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("snowid: Parse(%q): %v", s, err))
	}
	return id
}

// MarshalText implements the encoding.TextMarshaler interface. The text form
// is the decimal string, which also keeps JSON encodings JavaScript-safe
// (no precision loss past 2^53).
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility
func (id *ID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case int64:
		if src < 0 {
			return ErrInvalidFormat
		}
		*id = ID(src)
		return nil
	case uint64:
		*id = ID(src)
		return nil
	case string:
		parsed, err := Parse(src)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	case []byte:
		if len(src) == 8 {
			parsed, err := FromBytes(src)
			if err != nil {
				return err
			}
			*id = parsed
			return nil
		}
		parsed, err := Parse(string(src))
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	default:
		return fmt.Errorf("snowid: cannot scan type %T into ID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility.
// IDs are stored as signed 64-bit integers (BIGINT).
func (id ID) Value() (driver.Value, error) {
	return int64(id), nil
}
