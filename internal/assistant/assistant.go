// Package assistant turns raw input lines into service calls and renders
// the results as text. Both the TUI and the plain stdin loop drive the same
// dispatcher, so command semantics cannot diverge between the two.
package assistant

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mira/kith/internal/book"
	"github.com/mira/kith/internal/domain"
	"github.com/mira/kith/internal/service"
)

// ErrBadArity marks a command called with the wrong number of arguments.
// It is its own kind, distinct from validation failures.
var ErrBadArity = errors.New("wrong number of arguments")

// Assistant dispatches tokenized commands to the contact service.
type Assistant struct {
	svc        *service.ContactService
	windowDays int
}

// New creates an assistant. windowDays is the default lookahead for the
// birthdays command when the user gives none.
func New(svc *service.ContactService, windowDays int) *Assistant {
	if windowDays < 0 {
		windowDays = book.DefaultWindowDays
	}
	return &Assistant{svc: svc, windowDays: windowDays}
}

// Handle processes one input line and returns the reply to print and
// whether the loop should terminate. No error is fatal: failures come back
// as display text and the caller keeps reading commands.
func (a *Assistant) Handle(line string) (reply string, quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	command := strings.ToLower(fields[0])
	args := fields[1:]

	switch command {
	case "close", "exit":
		return "Good bye!", true
	case "hello":
		return "How can I help you?", false
	case "help":
		return helpText, false
	default:
		msg, err := a.dispatch(command, args)
		if err != nil {
			return renderError(err), false
		}
		return msg, false
	}
}

func (a *Assistant) dispatch(command string, args []string) (string, error) {
	switch command {
	case "add":
		// Phone is optional: "add Ann" records just the name.
		if len(args) != 1 && len(args) != 2 {
			return "", fmt.Errorf("%w: usage: add <name> [phone]", ErrBadArity)
		}
		phone := ""
		if len(args) == 2 {
			phone = args[1]
		}
		return a.svc.AddContact(args[0], phone)

	case "change":
		if len(args) != 3 {
			return "", fmt.Errorf("%w: usage: change <name> <old phone> <new phone>", ErrBadArity)
		}
		return a.svc.ChangeContact(args[0], args[1], args[2])

	case "phone":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: usage: phone <name>", ErrBadArity)
		}
		phones, err := a.svc.Phones(args[0])
		if err != nil {
			return "", err
		}
		if len(phones) == 0 {
			return "No phone numbers recorded.", nil
		}
		return strings.Join(phones, "\n"), nil

	case "remove-phone":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: usage: remove-phone <name> <phone>", ErrBadArity)
		}
		return a.svc.RemovePhone(args[0], args[1])

	case "delete":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: usage: delete <name>", ErrBadArity)
		}
		return a.svc.DeleteContact(args[0])

	case "all":
		if len(args) != 0 {
			return "", fmt.Errorf("%w: usage: all", ErrBadArity)
		}
		lines := a.svc.All()
		if len(lines) == 0 {
			return "No contacts yet.", nil
		}
		return strings.Join(lines, "\n"), nil

	case "add-birthday":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: usage: add-birthday <name> <DD.MM.YYYY>", ErrBadArity)
		}
		return a.svc.SetBirthday(args[0], args[1])

	case "show-birthday":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: usage: show-birthday <name>", ErrBadArity)
		}
		return a.svc.Birthday(args[0])

	case "birthdays":
		if len(args) > 1 {
			return "", fmt.Errorf("%w: usage: birthdays [days]", ErrBadArity)
		}
		days := a.windowDays
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return "", fmt.Errorf("%w: days must be a non-negative number", domain.ErrValidation)
			}
			days = n
		}
		greetings := a.svc.UpcomingBirthdays(days)
		if len(greetings) == 0 {
			return "No upcoming birthdays.", nil
		}
		lines := make([]string, len(greetings))
		for i, g := range greetings {
			lines[i] = fmt.Sprintf("%s: %s", g.Name, g.Date)
		}
		return strings.Join(lines, "\n"), nil

	default:
		return "Invalid command. Type 'help' to see what I understand.", nil
	}
}

// renderError picks the display text by error kind, never by message.
func renderError(err error) string {
	switch {
	case errors.Is(err, ErrBadArity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, service.ErrBirthdayNotSet):
		return err.Error()
	default:
		return fmt.Sprintf("Something went wrong: %v", err)
	}
}

const helpText = `Commands:
  hello                                greet the assistant
  add <name> [phone]                   add a contact or another phone
  change <name> <old> <new>            replace a phone number
  phone <name>                         list a contact's phone numbers
  remove-phone <name> <phone>          remove a phone number
  delete <name>                        delete a contact
  all                                  list every contact
  add-birthday <name> <DD.MM.YYYY>     set a birthday
  show-birthday <name>                 show a birthday
  birthdays [days]                     upcoming congratulation dates
  close | exit                         leave`
