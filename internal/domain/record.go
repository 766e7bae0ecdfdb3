package domain

import (
	"fmt"
	"strings"
)

// Record aggregates one contact: an immutable name, an ordered list of
// phones (duplicates allowed) and at most one birthday. A Record owns its
// phones and birthday exclusively.
type Record struct {
	name     Name
	rule     PhoneRule
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with an empty phone list. New phones are
// validated against rule for the record's lifetime.
func NewRecord(name Name, rule PhoneRule) *Record {
	return &Record{name: name, rule: rule}
}

// Name returns the contact's name. Renaming is not supported.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns the phone list in insertion order. The returned slice is a
// copy; mutating it does not affect the record.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates raw and appends it. Duplicates are not rejected.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw, r.rule)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone removes the first phone equal to value.
func (r *Record) RemovePhone(value string) error {
	for i, p := range r.phones {
		if p.String() == value {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPhoneNotFound, value)
}

// EditPhone replaces the first phone equal to oldValue with newValue.
// The new value is validated before anything is touched, so a failing edit
// leaves the phone list exactly as it was.
func (r *Record) EditPhone(oldValue, newValue string) error {
	replacement, err := NewPhone(newValue, r.rule)
	if err != nil {
		return err
	}
	for i, p := range r.phones {
		if p.String() == oldValue {
			r.phones[i] = replacement
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPhoneNotFound, oldValue)
}

// FindPhone returns the first phone equal to value. A miss is a lookup
// result, not an error.
func (r *Record) FindPhone(value string) (Phone, bool) {
	for _, p := range r.phones {
		if p.String() == value {
			return p, true
		}
	}
	return Phone{}, false
}

// SetBirthday parses raw and assigns it, replacing any prior birthday.
func (r *Record) SetBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the birthday, if one has been set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// String renders a deterministic one-line summary of the record.
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.String()
	}
	birthday := "not set"
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(values, "; "), birthday)
}
