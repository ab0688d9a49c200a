// Package repl provides the interactive calculator session.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/aryanc-04/gocalc/internal/config"
	"github.com/aryanc-04/gocalc/internal/history"
	"github.com/aryanc-04/gocalc/internal/report"
	"github.com/aryanc-04/gocalc/pkg/calc"
)

// menu lists the available operations, one choice per line.
const menu = `1. Add
2. Subtract
3. Multiply
4. Divide
5. Memory store
6. Memory recall
7. Memory clear
8. Clear result
9. Exit
`

const (
	choiceAdd = iota + 1
	choiceSubtract
	choiceMultiply
	choiceDivide
	choiceMemoryStore
	choiceMemoryRecall
	choiceMemoryClear
	choiceClearResult
	choiceExit
)

// Session is an interactive calculator loop over an input/output pair.
// The configuration may be swapped while the loop runs; everything else
// is owned by the loop goroutine.
type Session struct {
	calculator  *calc.Calculator
	store       *history.Store
	in          io.Reader
	out         io.Writer
	interactive bool

	mu  sync.RWMutex
	cfg *config.Config
}

// Option configures a Session.
type Option func(*Session)

// WithInput sets the reader the session reads from. Prompts are disabled;
// use WithInteractive to re-enable them.
func WithInput(r io.Reader) Option {
	return func(s *Session) {
		s.in = r
		s.interactive = false
	}
}

// WithOutput sets the writer results and prompts are written to.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		s.out = w
	}
}

// WithStore sets the journal the session records operations to.
func WithStore(store *history.Store) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithInteractive overrides terminal detection for prompt output.
func WithInteractive(interactive bool) Option {
	return func(s *Session) {
		s.interactive = interactive
	}
}

// New creates a session with the given configuration. By default it reads
// standard input, prompting only when it is a terminal.
func New(cfg *config.Config, opts ...Option) *Session {
	s := &Session{
		calculator:  calc.New(calc.WithEpsilon(cfg.Calc.Epsilon)),
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: isatty.IsTerminal(os.Stdin.Fd()),
		cfg:         cfg,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// UpdateConfig swaps the session configuration. The loop picks the new
// values up at the next operation.
func (s *Session) UpdateConfig(cfg *config.Config) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()

	if cfg.Verbose {
		log.Printf("Configuration reloaded")
	}
}

func (s *Session) config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cfg
}

// Run executes the menu loop until Exit or end of input, then saves the
// journal.
func (s *Session) Run() error {
	cfg := s.config()
	if cfg.Verbose {
		log.Printf("Starting interactive session")
	}

	scanner := bufio.NewScanner(s.in)

	if s.interactive {
		fmt.Fprint(s.out, menu)
	}

	for {
		choice, ok := s.readChoice(scanner)
		if !ok || choice == choiceExit {
			break
		}

		if !s.dispatch(scanner, choice) {
			break
		}
	}

	return s.finish()
}

// dispatch runs one menu choice. It reports false when input ended while
// reading operands.
func (s *Session) dispatch(scanner *bufio.Scanner, choice int) bool {
	switch choice {
	case choiceAdd, choiceSubtract, choiceMultiply, choiceDivide:
		return s.runArithmetic(scanner, choice)

	case choiceMemoryStore:
		v, ok := s.readNumber(scanner, "Enter value: ")
		if !ok {
			return false
		}

		s.calculator.MemoryStore(v)
		fmt.Fprintf(s.out, "Memory: %s\n\n", s.format(v))

	case choiceMemoryRecall:
		fmt.Fprintf(s.out, "Memory: %s\n\n", s.format(s.calculator.MemoryRecall()))

	case choiceMemoryClear:
		s.calculator.MemoryClear()
		fmt.Fprint(s.out, "Memory cleared.\n\n")

	case choiceClearResult:
		s.calculator.Clear()
		fmt.Fprint(s.out, "Result cleared.\n\n")
	}

	return true
}

func (s *Session) runArithmetic(scanner *bufio.Scanner, choice int) bool {
	a, ok := s.readNumber(scanner, "Enter number 1: ")
	if !ok {
		return false
	}

	b, ok := s.readNumber(scanner, "Enter number 2: ")
	if !ok {
		return false
	}

	cfg := s.config()
	s.calculator.SetEpsilon(cfg.Calc.Epsilon)

	result, err := s.apply(choice, a, b)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n\n", err)

		return true
	}

	fmt.Fprintf(s.out, "Result: %s\n", s.format(result))

	if cfg.REPL.ShowStatus {
		fmt.Fprintf(s.out, "[memory=%s last=%s]\n",
			s.format(s.calculator.MemoryRecall()),
			s.format(s.calculator.LastResult()),
		)
	}

	fmt.Fprintln(s.out)

	if s.store != nil && cfg.History.Enabled {
		s.store.Append(operationName(choice), a, b, result)
	}

	return true
}

func (s *Session) apply(choice int, a, b float64) (float64, error) {
	switch choice {
	case choiceAdd:
		return s.calculator.Add(a, b)
	case choiceSubtract:
		return s.calculator.Subtract(a, b)
	case choiceMultiply:
		return s.calculator.Multiply(a, b)
	default:
		return s.calculator.Divide(a, b)
	}
}

// readChoice reads menu choices until a valid one or end of input.
func (s *Session) readChoice(scanner *bufio.Scanner) (int, bool) {
	for {
		if s.interactive {
			fmt.Fprint(s.out, "Enter choice: ")
		}

		if !scanner.Scan() {
			return 0, false
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < choiceAdd || choice > choiceExit {
			fmt.Fprintf(s.out, "Error: invalid choice %q\n\n", line)

			continue
		}

		return choice, true
	}
}

// readNumber reads operand lines until one parses or input ends.
func (s *Session) readNumber(scanner *bufio.Scanner, prompt string) (float64, bool) {
	for {
		if s.interactive {
			fmt.Fprint(s.out, prompt)
		}

		if !scanner.Scan() {
			return 0, false
		}

		line := strings.TrimSpace(scanner.Text())

		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintf(s.out, "Error: invalid number %q\n\n", line)

			continue
		}

		return v, true
	}
}

func (s *Session) format(v float64) string {
	return report.FormatValue(v, s.config().Calc.Precision)
}

func (s *Session) finish() error {
	cfg := s.config()

	if s.store != nil {
		if err := s.store.Save(); err != nil {
			log.Printf("Warning: failed to save history: %v", err)
		}
	}

	if cfg.Verbose {
		log.Printf("Session ended")
	}

	return nil
}

// operationName maps an arithmetic menu choice to its journal name.
func operationName(choice int) string {
	switch choice {
	case choiceAdd:
		return "add"
	case choiceSubtract:
		return "subtract"
	case choiceMultiply:
		return "multiply"
	default:
		return "divide"
	}
}
