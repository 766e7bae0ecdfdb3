package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain", raw: "Ann", want: "Ann"},
		{name: "trims whitespace", raw: "  Bob Marley  ", want: "Bob Marley"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   \t ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewName(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewName(%q) should fail", tt.raw)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("error should be a validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewName(%q) failed: %v", tt.raw, err)
			}
			if n.String() != tt.want {
				t.Errorf("String() = %q, want %q", n.String(), tt.want)
			}
		})
	}
}

func TestNewPhone_LocalRule(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "ten digits", raw: "0501234567"},
		{name: "all zeros", raw: "0000000000"},
		{name: "too short", raw: "12345", wantErr: true},
		{name: "too long", raw: "05012345678", wantErr: true},
		{name: "letters", raw: "05012345ab", wantErr: true},
		{name: "plus prefix", raw: "+380501234", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhone(tt.raw, PhoneRuleLocal)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewPhone(%q) should fail", tt.raw)
				}
				if !errors.Is(err, ErrInvalidPhone) {
					t.Errorf("error = %v, want ErrInvalidPhone", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPhone(%q) failed: %v", tt.raw, err)
			}
			if p.String() != tt.raw {
				t.Errorf("value changed: got %q, want %q", p.String(), tt.raw)
			}
		})
	}
}

func TestNewPhone_E164Rule(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "short international", raw: "+1"},
		{name: "full length", raw: "+380501234567"},
		{name: "fifteen digits", raw: "+123456789012345"},
		{name: "sixteen digits", raw: "+1234567890123456", wantErr: true},
		{name: "no plus", raw: "380501234567", wantErr: true},
		{name: "plus only", raw: "+", wantErr: true},
		{name: "letters after plus", raw: "+38050x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPhone(tt.raw, PhoneRuleE164)
			if tt.wantErr && err == nil {
				t.Fatalf("NewPhone(%q) should fail", tt.raw)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("NewPhone(%q) failed: %v", tt.raw, err)
			}
		})
	}
}

func TestPhoneRuleValid(t *testing.T) {
	if !PhoneRuleLocal.Valid() || !PhoneRuleE164.Valid() {
		t.Error("known rules should be valid")
	}
	if PhoneRule("strict").Valid() {
		t.Error("unknown rule should be invalid")
	}
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "plain date", raw: "10.03.1990"},
		{name: "leap day", raw: "29.02.2024"},
		{name: "impossible day", raw: "31.02.2024", wantErr: true},
		{name: "impossible month", raw: "31.13.2024", wantErr: true},
		{name: "leap day in non-leap year", raw: "29.02.2023", wantErr: true},
		{name: "iso format", raw: "2024-01-01", wantErr: true},
		{name: "garbage", raw: "soon", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBirthday(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewBirthday(%q) should fail", tt.raw)
				}
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("error = %v, want ErrInvalidDate", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBirthday(%q) failed: %v", tt.raw, err)
			}
			if b.String() != tt.raw {
				t.Errorf("round trip = %q, want %q", b.String(), tt.raw)
			}
		})
	}
}

func TestBirthdayStoresParsedDate(t *testing.T) {
	b, err := NewBirthday("10.03.1990")
	if err != nil {
		t.Fatalf("NewBirthday failed: %v", err)
	}
	want := time.Date(1990, time.March, 10, 0, 0, 0, 0, time.UTC)
	if !b.Date().Equal(want) {
		t.Errorf("Date() = %v, want %v", b.Date(), want)
	}
}

func TestErrorKinds(t *testing.T) {
	if !errors.Is(ErrInvalidPhone, ErrValidation) {
		t.Error("ErrInvalidPhone should be a validation error")
	}
	if !errors.Is(ErrInvalidDate, ErrValidation) {
		t.Error("ErrInvalidDate should be a validation error")
	}
	if !errors.Is(ErrPhoneNotFound, ErrNotFound) {
		t.Error("ErrPhoneNotFound should be a not-found error")
	}
	if errors.Is(ErrInvalidPhone, ErrNotFound) {
		t.Error("validation and not-found kinds must not overlap")
	}
}
