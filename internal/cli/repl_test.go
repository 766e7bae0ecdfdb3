package cli

import (
	"strings"
	"testing"

	"github.com/mira/kith/internal/assistant"
	"github.com/mira/kith/internal/book"
	"github.com/mira/kith/internal/domain"
	"github.com/mira/kith/internal/service"
)

func newTestAssistant() *assistant.Assistant {
	svc := service.NewContactService(book.New(), domain.PhoneRuleLocal)
	return assistant.New(svc, book.DefaultWindowDays)
}

func TestRunPlainLoop_Session(t *testing.T) {
	in := strings.NewReader(
		"hello\n" +
			"add Ann 0501234567\n" +
			"phone Ann\n" +
			"close\n")
	var out strings.Builder

	if err := runPlainLoop(newTestAssistant(), in, &out); err != nil {
		t.Fatalf("runPlainLoop failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Welcome to the assistant bot!",
		"How can I help you?",
		"Contact added.",
		"0501234567",
		"Good bye!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunPlainLoop_EOFEndsSession(t *testing.T) {
	in := strings.NewReader("add Ann 0501234567\n")
	var out strings.Builder

	if err := runPlainLoop(newTestAssistant(), in, &out); err != nil {
		t.Fatalf("runPlainLoop failed: %v", err)
	}
	if !strings.Contains(out.String(), "Good bye!") {
		t.Errorf("EOF should end the session politely:\n%s", out.String())
	}
}

func TestRunPlainLoop_ErrorsDoNotStopTheLoop(t *testing.T) {
	in := strings.NewReader(
		"add Dee 12345\n" +
			"phone Nobody\n" +
			"add Ann 0501234567\n" +
			"exit\n")
	var out strings.Builder

	if err := runPlainLoop(newTestAssistant(), in, &out); err != nil {
		t.Fatalf("runPlainLoop failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "invalid phone number") {
		t.Errorf("output missing validation complaint:\n%s", got)
	}
	if !strings.Contains(got, "not found") {
		t.Errorf("output missing not-found complaint:\n%s", got)
	}
	if !strings.Contains(got, "Contact added.") {
		t.Errorf("loop should keep working after failures:\n%s", got)
	}
}
