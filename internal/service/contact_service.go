// Package service exposes the operations the command layer calls. Every
// method returns either a result message or a tagged error; nothing in this
// package reads from or writes to a terminal.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/mira/kith/internal/book"
	"github.com/mira/kith/internal/domain"
)

var (
	ErrContactNotFound = fmt.Errorf("contact %w", domain.ErrNotFound)

	// ErrBirthdayNotSet is deliberately not a lookup miss: the contact
	// exists, it just has no birthday recorded.
	ErrBirthdayNotSet = errors.New("birthday not set")
)

// Greeting is an upcoming congratulation rendered for display.
type Greeting struct {
	Name string
	Date string // DD.MM.YYYY
}

// ContactService mediates between the command layer and the book.
type ContactService struct {
	book *book.Book
	rule domain.PhoneRule
	now  func() time.Time
}

// NewContactService creates a service over the given book. Phones are
// validated against rule.
func NewContactService(b *book.Book, rule domain.PhoneRule) *ContactService {
	return &ContactService{book: b, rule: rule, now: time.Now}
}

// Book returns the underlying directory.
func (s *ContactService) Book() *book.Book {
	return s.book
}

// AddContact creates the contact if it does not exist and appends phone to
// it. phone may be empty when only the name should be recorded. A contact is
// never half-created: the phone is validated before a new record is added.
func (s *ContactService) AddContact(name, phone string) (string, error) {
	n, err := domain.NewName(name)
	if err != nil {
		return "", err
	}

	if rec, ok := s.book.Find(n.String()); ok {
		if phone != "" {
			if err := rec.AddPhone(phone); err != nil {
				return "", err
			}
		}
		return "Contact updated.", nil
	}

	rec := domain.NewRecord(n, s.rule)
	if phone != "" {
		if err := rec.AddPhone(phone); err != nil {
			return "", err
		}
	}
	s.book.Add(rec)
	return "Contact added.", nil
}

// ChangeContact replaces oldPhone with newPhone on the named contact.
func (s *ContactService) ChangeContact(name, oldPhone, newPhone string) (string, error) {
	rec, ok := s.book.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return "Phone number changed.", nil
}

// RemovePhone removes the first matching phone from the named contact.
func (s *ContactService) RemovePhone(name, phone string) (string, error) {
	rec, ok := s.book.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}
	if err := rec.RemovePhone(phone); err != nil {
		return "", err
	}
	return "Phone number removed.", nil
}

// DeleteContact removes the contact. Deleting an unknown name is reported to
// the caller even though the book treats it as a no-op, so the user learns
// about the typo.
func (s *ContactService) DeleteContact(name string) (string, error) {
	if _, ok := s.book.Find(name); !ok {
		return "", fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}
	s.book.Delete(name)
	return "Contact deleted.", nil
}

// Phones returns the contact's phone values in insertion order.
func (s *ContactService) Phones(name string) ([]string, error) {
	rec, ok := s.book.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}
	phones := rec.Phones()
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = p.String()
	}
	return out, nil
}

// All returns one description line per record, in insertion order.
func (s *ContactService) All() []string {
	records := s.book.Records()
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.String()
	}
	return out
}

// SetBirthday parses dateText as DD.MM.YYYY and assigns it to the contact,
// replacing any prior birthday.
func (s *ContactService) SetBirthday(name, dateText string) (string, error) {
	rec, ok := s.book.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}
	if err := rec.SetBirthday(dateText); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday added for %s.", name), nil
}

// Birthday returns the contact's birthday as DD.MM.YYYY.
func (s *ContactService) Birthday(name string) (string, error) {
	rec, ok := s.book.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}
	b, ok := rec.Birthday()
	if !ok {
		return "", fmt.Errorf("%w for %s", ErrBirthdayNotSet, name)
	}
	return b.String(), nil
}

// UpcomingBirthdays returns contacts whose congratulation date falls within
// the next windowDays days, weekends rolled to Monday.
func (s *ContactService) UpcomingBirthdays(windowDays int) []Greeting {
	greetings := s.book.UpcomingBirthdays(s.now(), windowDays)
	out := make([]Greeting, len(greetings))
	for i, g := range greetings {
		out[i] = Greeting{Name: g.Name, Date: domain.FormatDate(g.Date)}
	}
	return out
}
