package snowid

import (
	"encoding/json"
	"testing"
	"time"
)

// composeID builds an ID from raw components, for decoding tests.
func composeID(workerID, timestamp, sequence uint64) ID {
	return ID(workerID<<workerIDShift | timestamp<<sequenceBits | sequence)
}

func TestID_Components(t *testing.T) {
	id := composeID(100, 12345, 7)

	if got := id.WorkerID(); got != 100 {
		t.Errorf("WorkerID() = %d, want 100", got)
	}
	if got := id.Timestamp(); got != 12345 {
		t.Errorf("Timestamp() = %d, want 12345", got)
	}
	if got := id.Sequence(); got != 7 {
		t.Errorf("Sequence() = %d, want 7", got)
	}
}

func TestID_ComponentBounds(t *testing.T) {
	// All component fields saturated: the maximum producible ID.
	id := composeID(1023, 1<<timestampBits-1, 1<<sequenceBits-1)

	if got := id.WorkerID(); got != 1023 {
		t.Errorf("WorkerID() = %d, want 1023", got)
	}
	if got := id.Timestamp(); got != 1<<timestampBits-1 {
		t.Errorf("Timestamp() = %d, want %d", got, int64(1)<<timestampBits-1)
	}
	if got := id.Sequence(); got != 1<<sequenceBits-1 {
		t.Errorf("Sequence() = %d, want %d", got, int64(1)<<sequenceBits-1)
	}
	if id.Int64() < 0 {
		t.Errorf("Int64() = %d, want non-negative even at saturation", id.Int64())
	}
}

func TestID_Time(t *testing.T) {
	id := composeID(1, 12345, 0)
	want := time.UnixMilli(epoch + 12345)
	if got := id.Time(); !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
}

func TestID_StringParseRoundTrip(t *testing.T) {
	id := composeID(512, 987654321, 42)
	parsed, err := Parse(id.String())
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", id.String(), err)
	}
	if parsed != id {
		t.Errorf("round trip mismatch: got %d, want %d", parsed, id)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "not a number", input: "abc"},
		{name: "negative", input: "-5"},
		{name: "top bit set", input: "9223372036854775808"}, // 2^63
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.input); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	id := MustParse("12345")
	if id != 12345 {
		t.Errorf("MustParse() = %d, want 12345", id)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse() did not panic on invalid input")
		}
	}()
	MustParse("not-an-id")
}

func TestID_IsZero(t *testing.T) {
	var zero ID
	if !zero.IsZero() {
		t.Error("zero ID should return true for IsZero()")
	}
	if composeID(1, 1, 1).IsZero() {
		t.Error("non-zero ID should return false for IsZero()")
	}
}

func TestID_JSON(t *testing.T) {
	type event struct {
		ID ID `json:"id"`
	}

	in := event{ID: composeID(100, 55555, 3)}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	// Must serialize as a string so JavaScript consumers keep full precision.
	want := `{"id":"` + in.ID.String() + `"}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var out event
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if out.ID != in.ID {
		t.Errorf("JSON round trip mismatch: got %d, want %d", out.ID, in.ID)
	}
}

func TestID_Scan(t *testing.T) {
	want := composeID(9, 777, 1)

	tests := []struct {
		name    string
		input   interface{}
		want    ID
		wantErr bool
	}{
		{
			name:  "int64 input",
			input: want.Int64(),
			want:  want,
		},
		{
			name:  "string input",
			input: want.String(),
			want:  want,
		},
		{
			name:  "byte slice decimal input",
			input: []byte(want.String()),
			want:  want,
		},
		{
			name:  "byte slice binary input",
			input: want.Bytes(),
			want:  want,
		},
		{
			name:  "nil input",
			input: nil,
			want:  0,
		},
		{
			name:    "negative int64",
			input:   int64(-1),
			wantErr: true,
		},
		{
			name:    "unsupported type",
			input:   3.14,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := id.Scan(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && id != tt.want {
				t.Errorf("Scan() = %d, want %d", id, tt.want)
			}
		})
	}
}

func TestID_Value(t *testing.T) {
	id := composeID(5, 123, 9)
	val, err := id.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	n, ok := val.(int64)
	if !ok {
		t.Fatalf("Value() returned non-int64 type: %T", val)
	}
	if n != id.Int64() {
		t.Errorf("Value() = %d, want %d", n, id.Int64())
	}
}
