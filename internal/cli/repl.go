package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mira/kith/internal/assistant"
)

// runPlainLoop reads commands line by line and prints replies. It is the
// non-TTY twin of the TUI: same assistant, no styling. EOF ends the session
// the same way close/exit does, so piped scripts terminate cleanly.
func runPlainLoop(assist *assistant.Assistant, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to the assistant bot!")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter a command: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Good bye!")
			return scanner.Err()
		}

		reply, quit := assist.Handle(scanner.Text())
		if reply != "" {
			fmt.Fprintln(out, reply)
		}
		if quit {
			return nil
		}
	}
}
