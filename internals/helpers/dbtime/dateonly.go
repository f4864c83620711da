// file: internals/helpers/dbtime/dateonly.go
package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateOnly = tanggal kalender tanpa jam ("2006-01-02"),
// dipakai untuk tanggal bayar. Di DB disimpan sebagai DATE.
type DateOnly struct{ time.Time }

func ParseDate(s string) (DateOnly, error) {
	var d DateOnly
	return d, d.parse(s)
}

func DateOf(t time.Time) DateOnly {
	return DateOnly{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d *DateOnly) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		d.Time = time.Date(x.Year(), x.Month(), x.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case []byte:
		return d.parse(string(x))
	case string:
		return d.parse(x)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("dateonly: unsupported Scan type %T", v)
	}
}

func (d *DateOnly) parse(s string) error {
	s = strings.TrimSpace(s)
	// toleransi nilai timestamp ("2006-01-02T15:04:05Z") dari file lama
	if len(s) > 10 {
		s = s[:10]
	}
	tt, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = tt
	return nil
}

func (d DateOnly) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Format("2006-01-02"), nil
}

func (DateOnly) GormDataType() string { return "date" }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format("2006-01-02"))
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return d.parse(s)
}

// String mengembalikan "2006-01-02" (lexically comparable).
func (d DateOnly) String() string { return d.Format("2006-01-02") }
