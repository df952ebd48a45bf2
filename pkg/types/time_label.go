package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeLabelLayout формат метки времени слота, например "09:00 AM"
const TimeLabelLayout = "03:04 PM"

var ErrInvalidTimeLabel = errors.New("invalid time label format")

// TimeLabel метка времени слота в 12-часовом формате ("02:00 PM")
type TimeLabel string

func (l TimeLabel) String() string {
	return string(l)
}

// Validate принимает только записи вида "HH:MM AM|PM" с ведущим нулём
func (l TimeLabel) Validate() error {
	parsed, err := time.Parse(TimeLabelLayout, string(l))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeLabel, string(l))
	}
	if parsed.Format(TimeLabelLayout) != string(l) {
		return fmt.Errorf("%w: %q is not canonical", ErrInvalidTimeLabel, string(l))
	}
	return nil
}

// Value implements driver.Valuer
func (l TimeLabel) Value() (driver.Value, error) {
	return string(l), nil
}

// Scan implements sql.Scanner
func (l *TimeLabel) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*l = TimeLabel(v)
	case []byte:
		*l = TimeLabel(v)
	case nil:
		*l = ""
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeLabel, src)
	}
	return nil
}
