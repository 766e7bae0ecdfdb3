package domain

import (
	"fmt"
	"strings"
	"time"
)

// birthdayLayout is the only accepted textual form for birthdays.
const birthdayLayout = "02.01.2006"

// Name is a contact's display name. A Name is always trimmed and non-empty;
// the zero value is invalid and only NewName can produce a valid one.
type Name struct {
	value string
}

// NewName validates and constructs a Name.
func NewName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: trimmed}, nil
}

func (n Name) String() string {
	return n.value
}

// PhoneRule selects which phone format a book accepts. It is a plain string
// so it can be set from the config file.
type PhoneRule string

const (
	// PhoneRuleLocal accepts exactly ten digits.
	PhoneRuleLocal PhoneRule = "local10"
	// PhoneRuleE164 accepts a leading '+' followed by 1-15 digits.
	PhoneRuleE164 PhoneRule = "e164"
)

// DefaultPhoneRule is the canonical rule used when no config overrides it.
const DefaultPhoneRule = PhoneRuleLocal

// Valid reports whether the rule is one of the known rules.
func (r PhoneRule) Valid() bool {
	return r == PhoneRuleLocal || r == PhoneRuleE164
}

// Check returns ErrInvalidPhone if s does not match the rule.
func (r PhoneRule) Check(s string) error {
	switch r {
	case PhoneRuleLocal:
		if len(s) == 10 && allDigits(s) {
			return nil
		}
	case PhoneRuleE164:
		if len(s) >= 2 && len(s) <= 16 && s[0] == '+' && allDigits(s[1:]) {
			return nil
		}
	}
	return ErrInvalidPhone
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Phone is a validated phone number. Once constructed it never holds an
// invalid value; editing a phone means constructing a new one.
type Phone struct {
	value string
}

// NewPhone validates raw against rule and constructs a Phone.
func NewPhone(raw string, rule PhoneRule) (Phone, error) {
	if err := rule.Check(raw); err != nil {
		return Phone{}, err
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a naive calendar date parsed from DD.MM.YYYY. The parsed date
// is stored, not the raw string, so it is never re-parsed.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw as DD.MM.YYYY and constructs a Birthday.
// Impossible calendar dates (31.02.2024) are rejected.
func NewBirthday(raw string) (Birthday, error) {
	t, err := time.Parse(birthdayLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w (got %q)", ErrInvalidDate, raw)
	}
	return Birthday{date: t}, nil
}

// Date returns the birthday as a date-only time.Time.
func (b Birthday) Date() time.Time {
	return b.date
}

func (b Birthday) String() string {
	return b.date.Format(birthdayLayout)
}

// FormatDate renders any date the way birthdays are rendered (DD.MM.YYYY).
func FormatDate(t time.Time) string {
	return t.Format(birthdayLayout)
}
