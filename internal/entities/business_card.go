package entities

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// dateLayouts are the layouts accepted when parsing dates from imports and
// request bodies, tried in order.
var dateLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"1/2/2006 15:04:05",
}

// Date is a calendar date without a time-of-day component.
type Date struct {
	time.Time
}

// NewDate builds a Date from its parts.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses s using any of the accepted layouts.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t.Year(), t.Month(), t.Day()), nil
		}
	}
	return Date{}, fmt.Errorf("unable to parse date: %q", s)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	if strings.TrimSpace(string(b)) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON and UnmarshalJSON shadow the ones promoted from time.Time.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*d = Date{}
		return nil
	}
	return d.UnmarshalText([]byte(strings.Trim(s, `"`)))
}

// GormDataType makes AutoMigrate create a DATE column.
func (Date) GormDataType() string {
	return "date"
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
	return nil
}

// BusinessCard is a stored contact record. Rows are immutable after insert;
// they can only be deleted.
type BusinessCard struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;index" json:"name"`
	Gender      string    `gorm:"size:10" json:"gender"`
	DateOfBirth Date      `gorm:"not null" json:"dateOfBirth"`
	Email       string    `gorm:"size:100" json:"email"`
	Phone       string    `gorm:"size:20" json:"phone"`
	Address     string    `gorm:"size:200" json:"address"`
	Photo       *string   `gorm:"type:text" json:"photo,omitempty"`
	CreatedAt   time.Time `json:"-"`
}

func (BusinessCard) TableName() string {
	return "business_cards"
}

// HasPhoto reports whether the card carries a non-empty photo.
func (c BusinessCard) HasPhoto() bool {
	return c.Photo != nil && *c.Photo != ""
}

// Candidate is a decoded card that has not been validated or stored yet.
type Candidate struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Gender      string  `json:"gender" binding:"max=10"`
	DateOfBirth Date    `json:"dateOfBirth"`
	Email       string  `json:"email" binding:"max=100"`
	Phone       string  `json:"phone" binding:"max=20"`
	Address     string  `json:"address" binding:"max=200"`
	Photo       *string `json:"photo,omitempty"`
}

// HasPhoto reports whether the candidate carries a non-empty photo.
func (c Candidate) HasPhoto() bool {
	return c.Photo != nil && *c.Photo != ""
}

// ToBusinessCard returns the row to insert for this candidate.
func (c Candidate) ToBusinessCard() BusinessCard {
	card := BusinessCard{
		Name:        c.Name,
		Gender:      c.Gender,
		DateOfBirth: c.DateOfBirth,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
	}
	if c.HasPhoto() {
		photo := *c.Photo
		card.Photo = &photo
	}
	return card
}

// StringPtr is a helper for optional string fields.
func StringPtr(s string) *string {
	return &s
}
