package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/invest"
	"github.com/etnz/invest/renderer"
)

const sessionPrompt = "inv> "

const sessionHelp = `Commands:
  rate X            set the discount rate, in percent
  investment X      set the initial investment, usually negative
  years N           set the number of years, then ask the missing cash flows
  year K X          set the cash flow of year K
  set ...           same as the commands above, e.g. 'set year 2 400'
  calc              compute the NPV and the IRR
  show              show the current fields
  quote TICKER      show the latest close price of a stock
  help              show this help
  bye               exit
`

// Session is an interactive evaluation session. It holds one Form that the
// user fills line by line.
type Session struct {
	w        io.Writer
	r        *bufio.Reader
	Provider invest.Provider // nil disables quote
	Timeout  time.Duration   // of a quote lookup, none if zero
	Form     invest.Form
}

// NewSession creates a Session reading commands from r and writing to w.
func NewSession(w io.Writer, r io.Reader, p invest.Provider, timeout time.Duration) *Session {
	return &Session{
		w:        w,
		r:        bufio.NewReader(r),
		Provider: p,
		Timeout:  timeout,
	}
}

// Run asks for every field, evaluates them, then executes commands until
// 'bye' or the end of the input.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.w, "Welcome to inv. Type 'help' for the commands, 'bye' to exit.")

	if err := s.fill(); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	s.calc()

	for {
		fmt.Fprint(s.w, sessionPrompt)
		line, err := s.readLine()
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(s.w)
				return nil // Clean exit on Ctrl+D
			}
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "bye" {
			return nil
		}
		if err := s.Exec(ctx, fields[0], fields[1:]...); err != nil {
			return err
		}
	}
}

// fill asks every field of the form in order.
func (s *Session) fill() (err error) {
	if s.Form.Rate, err = s.ask("Discount Rate (%): "); err != nil {
		return err
	}
	if s.Form.Investment, err = s.ask("Initial Investment (negative): "); err != nil {
		return err
	}
	for {
		v, err := s.ask("Number of Years: ")
		if err != nil {
			return err
		}
		n, err := invest.ParseYears(v)
		if err != nil {
			fmt.Fprintln(s.w, message(err))
			continue
		}
		s.Form.SetYears(n)
		break
	}
	return s.askFlows()
}

// askFlows asks the cash flow of every year that has none.
func (s *Session) askFlows() (err error) {
	for i := range s.Form.Flows {
		if strings.TrimSpace(s.Form.Flows[i]) != "" {
			continue
		}
		if s.Form.Flows[i], err = s.ask(fmt.Sprintf("Year %d Cash Flow: ", i+1)); err != nil {
			return err
		}
	}
	return nil
}

// Exec executes one command. Only I/O errors are returned, user errors are
// printed.
func (s *Session) Exec(ctx context.Context, name string, args ...string) error {
	if name == "set" && len(args) > 0 {
		name, args = args[0], args[1:]
	}
	switch name {
	case "rate":
		if len(args) != 1 {
			return s.usage("rate X")
		}
		s.Form.Rate = args[0]
	case "investment":
		if len(args) != 1 {
			return s.usage("investment X")
		}
		s.Form.Investment = args[0]
	case "years":
		if len(args) != 1 {
			return s.usage("years N")
		}
		n, err := invest.ParseYears(args[0])
		if err != nil {
			fmt.Fprintln(s.w, message(err))
			return nil
		}
		s.Form.SetYears(n)
		return s.askFlows()
	case "year":
		if len(args) != 2 {
			return s.usage("year K X")
		}
		k, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(s.w, message(&invest.InputError{Field: "year", Value: args[0], Err: errors.New("not an integer")}))
			return nil
		}
		if err := s.Form.SetFlow(k, args[1]); err != nil {
			fmt.Fprintln(s.w, message(err))
		}
	case "calc":
		s.calc()
	case "show":
		fmt.Fprint(s.w, renderer.Form(s.Form))
	case "quote":
		if len(args) > 1 {
			return s.usage("quote TICKER")
		}
		s.quote(ctx, strings.Join(args, ""))
	case "help":
		fmt.Fprint(s.w, sessionHelp)
	default:
		fmt.Fprintf(s.w, "Unknown command %q. Type 'help' for the commands.\n", name)
	}
	return nil
}

func (s *Session) usage(syntax string) error {
	fmt.Fprintf(s.w, "Usage: %s\n", syntax)
	return nil
}

// calc evaluates the form and prints the result or the error.
func (s *Session) calc() {
	r, err := s.Form.Request()
	if err != nil {
		fmt.Fprintln(s.w, message(err))
		return
	}
	e, err := invest.Evaluate(r)
	if err != nil {
		fmt.Fprintln(s.w, message(err))
		return
	}
	fmt.Fprint(s.w, renderer.Evaluation(e))
}

func (s *Session) quote(ctx context.Context, ticker string) {
	if s.Provider == nil {
		fmt.Fprintln(s.w, "No quote provider configured.")
		return
	}
	ctx, cancel := lookupContext(ctx, s.Timeout)
	defer cancel()
	q, err := s.Provider.LatestClose(ctx, ticker)
	if err != nil {
		fmt.Fprintln(s.w, message(err))
		return
	}
	fmt.Fprint(s.w, renderer.Quote(q))
}

// ask prints a prompt and reads the answer.
func (s *Session) ask(prompt string) (string, error) {
	fmt.Fprint(s.w, prompt)
	return s.readLine()
}

// readLine returns the next trimmed line. A last line without newline is
// returned before io.EOF.
func (s *Session) readLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimSpace(line), err
}
