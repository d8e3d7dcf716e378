package serialization

import (
	"strings"
	"time"

	"github.com/relvacode/iso8601"
)

// Time is encoded in RFC3339 format and decoded from any ISO-8601 form.
// It is the canonical date/time value for request parameters and payloads.
type Time time.Time

// ParseTime parses an ISO-8601 string.
func ParseTime(value string) (Time, error) {
	t, err := iso8601.ParseString(value)
	if err != nil {
		return Time{}, err
	}
	return Time(t), nil
}

// UnmarshalJSON implements JSON decoding.
func (t *Time) UnmarshalJSON(data []byte) error {
	parsed, err := iso8601.ParseString(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}

// MarshalJSON implements JSON encoding.
func (t Time) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, len(time.RFC3339)+2)
	b = append(b, '"')
	b = time.Time(t).AppendFormat(b, time.RFC3339)
	b = append(b, '"')
	return b, nil
}

func (t Time) String() string {
	return time.Time(t).Format(time.RFC3339)
}
