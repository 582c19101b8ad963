package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar date kept in a SQL date column and exchanged on the
// wire as a plain YYYY-MM-DD string. The zero value means "no date" and
// maps to SQL NULL and JSON null.
//
// The postgres driver hands date columns back as time.Time, sqlite hands
// back the stored text; Scan normalizes both to the bare date form so reads
// never leak a timestamp representation.
type Date string

func Today() Date {
	return Date(time.Now().Format(DateLayout))
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(DateLayout))
	case string:
		*d = clipDate(v)
	case []byte:
		*d = clipDate(string(v))
	default:
		return fmt.Errorf("unsupported date value %T", value)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(d))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*d = ""
	} else {
		*d = clipDate(*s)
	}
	return nil
}

func (d Date) IsZero() bool {
	return d == ""
}

// clipDate reduces timestamp-shaped text ("2025-01-15T00:00:00Z",
// "2025-01-15 00:00:00+00") to its date prefix.
func clipDate(s string) Date {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	return Date(s)
}
