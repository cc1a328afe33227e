package order

import (
	"encoding/json"
	"time"
)

// Timestamp tolerates the heterogeneous createdAt encodings found in stored
// order documents: RFC 3339 strings, native store timestamp objects exposing a
// seconds-since-epoch field, and bare epoch numbers. A value that cannot be
// decoded is simply invalid; it never fails the surrounding unmarshal.
type Timestamp struct {
	t     time.Time
	valid bool
}

func At(t time.Time) Timestamp { return Timestamp{t: t, valid: true} }

// Time returns the underlying instant and whether it is usable.
func (ts Timestamp) Time() (time.Time, bool) { return ts.t, ts.valid }

func (ts Timestamp) IsZero() bool { return !ts.valid }

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if !ts.valid {
		return []byte("null"), nil
	}
	return json.Marshal(ts.t.UTC().Format(time.RFC3339Nano))
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	*ts = Timestamp{}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.999999-07:00", "2006-01-02T15:04:05"} {
			if t, err := time.Parse(layout, s); err == nil {
				*ts = At(t)
				return nil
			}
		}
		return nil
	}

	var obj struct {
		Seconds     *int64 `json:"seconds"`
		Nanoseconds int64  `json:"nanoseconds"`
	}
	if err := json.Unmarshal(b, &obj); err == nil && obj.Seconds != nil {
		*ts = At(time.Unix(*obj.Seconds, obj.Nanoseconds))
		return nil
	}

	var epoch float64
	if err := json.Unmarshal(b, &epoch); err == nil && epoch > 0 {
		sec := int64(epoch)
		*ts = At(time.Unix(sec, int64((epoch-float64(sec))*1e9)))
		return nil
	}
	return nil
}
