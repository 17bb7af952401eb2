package interactive

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nathanhack/secded/cmd/internal/codec/encode"
	"github.com/nathanhack/secded/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var (
	Width int
)

const help = `commands:
  encode BITS   encode a binary message of the current width
  flip N        flip bit N counted from the left
  flipr N       flip bit N counted from the right (0 is the overall parity bit)
  correct       detect and correct errors in the current codeword
  show          print the current codeword
  width N       change the message width (8, 16 or 32), clears the codeword
  help          print this message
  quit          leave the session`

var SessionRun = func(cmd *cobra.Command, args []string) {
	if err := Run(cmd.InOrStdin(), cmd.OutOrStdout(), Width); err != nil {
		fmt.Println(err)
	}
}

// Run reads commands from r until quit or EOF, writing results to w.
func Run(r io.Reader, w io.Writer, width int) error {
	s, err := session.New(width)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%v bit session, type help for commands\n", s.Width)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}

		next, err := step(w, s, fields)
		if err != nil {
			logrus.Debugf("%v: %v", fields[0], err)
			fmt.Fprintln(w, "error:", err)
			continue
		}
		s = next
	}
	return scanner.Err()
}

func step(w io.Writer, s session.Session, fields []string) (session.Session, error) {
	arg := func() (string, error) {
		if len(fields) != 2 {
			return "", fmt.Errorf("%v requires one argument", fields[0])
		}
		return fields[1], nil
	}
	number := func() (int, error) {
		a, err := arg()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(a)
		if err != nil {
			return 0, fmt.Errorf("please enter a valid bit number")
		}
		return n, nil
	}

	switch fields[0] {
	case "encode", "e":
		message, err := arg()
		if err != nil {
			return s, err
		}
		if s, err = s.Encode(message); err != nil {
			return s, err
		}
		show(w, "encoded", s)
	case "flip", "f", "flipr", "fr":
		index, err := number()
		if err != nil {
			return s, err
		}
		if strings.HasSuffix(fields[0], "r") {
			s, err = s.InjectFromRight(index)
		} else {
			s, err = s.Inject(index)
		}
		if err != nil {
			return s, err
		}
		show(w, fmt.Sprintf("flipped bit %v", index), s)
	case "correct", "c":
		next, result, err := s.Correct()
		if err != nil {
			return s, err
		}
		show(w, "corrected", next)
		if index, ok := result.CorrectedIndex(); ok {
			fmt.Fprintf(w, "result: %v (bit %v)\n", result.Status, index)
		} else {
			fmt.Fprintf(w, "result: %v\n", result.Status)
		}
		return next, nil
	case "show":
		if s.Empty() {
			return s, fmt.Errorf("encode a message first")
		}
		show(w, "current", s)
	case "width", "w":
		n, err := number()
		if err != nil {
			return s, err
		}
		if !slices.Contains(session.Widths, n) {
			return s, fmt.Errorf("width must be one of %v", session.Widths)
		}
		if s, err = s.WithWidth(n); err != nil {
			return s, err
		}
		fmt.Fprintf(w, "%v bit session\n", s.Width)
	case "help", "h", "?":
		fmt.Fprintln(w, help)
	default:
		return s, fmt.Errorf("unknown command %q, type help for commands", fields[0])
	}
	return s, nil
}

func show(w io.Writer, title string, s session.Session) {
	fmt.Fprintf(w, "%v:\n%v\n%v\n", title, s.Codeword, encode.Legend(len(s.Codeword)))
}
