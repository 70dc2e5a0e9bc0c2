package state

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date wraps a time.Time so it serializes as a tagged object,
// {"kind":"Date","value":"<ISO-8601>"}, and round-trips exactly.
// Unmarshaling also accepts a bare ISO-8601 string for older snapshots.
type Date struct {
	time.Time
}

type dateWrapper struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(dateWrapper{
		Kind:  "Date",
		Value: d.Format(time.RFC3339Nano),
	})
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		return d.parse(raw)
	}

	var w dateWrapper
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("unmarshal date: %w", err)
	}
	if w.Kind != "Date" {
		return fmt.Errorf("unmarshal date: unexpected kind %q", w.Kind)
	}
	return d.parse(w.Value)
}

func (d *Date) parse(raw string) error {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", raw, err)
	}
	d.Time = t
	return nil
}

func wrapDate(t time.Time) Date {
	return Date{Time: t}
}

func wrapDatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Time: *t}
}

func unwrapDatePtr(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
