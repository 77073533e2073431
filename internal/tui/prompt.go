package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ErrAborted is returned when the user quits a prompt or input runs out.
var ErrAborted = errors.New("prompt aborted")

// Prompter reads answers from the user. Implementations loop until the
// answer passes validate, or is one of options.
type Prompter interface {
	Input(title, def string, validate func(string) error) (string, error)
	Select(title string, options []string, def string) (string, error)
}

// NewPrompter returns huh forms when in is a terminal, line prompts otherwise.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return HuhPrompter{}
	}
	return NewLinePrompter(in, out)
}

type HuhPrompter struct{}

func (HuhPrompter) Input(title, def string, validate func(string) error) (string, error) {
	var result string
	input := huh.NewInput().
		Title(title).
		Placeholder(def).
		Value(&result)
	if validate != nil {
		input = input.Validate(func(s string) error {
			return validate(orDefault(s, def))
		})
	}
	if err := input.Run(); err != nil {
		return "", huhError(err)
	}
	return orDefault(result, def), nil
}

func (HuhPrompter) Select(title string, options []string, def string) (string, error) {
	result := def
	err := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&result).
		Run()
	if err != nil {
		return "", huhError(err)
	}
	return result, nil
}

func orDefault(answer, def string) string {
	if answer = strings.TrimSpace(answer); answer == "" {
		return def
	}
	return answer
}

func huhError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return fmt.Errorf("prompt: %w", err)
}

// LinePrompter asks one question per line, for pipes and scripts.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Input(title, def string, validate func(string) error) (string, error) {
	for {
		answer, err := p.ask(title, "", def)
		if err != nil {
			return "", err
		}
		if validate != nil {
			if err := validate(answer); err != nil {
				fmt.Fprintf(p.out, "%s %v\n", Error("Error:"), err)
				continue
			}
		}
		return answer, nil
	}
}

func (p *LinePrompter) Select(title string, options []string, def string) (string, error) {
	if !slices.Contains(options, def) {
		def = ""
	}
	choices := "(" + strings.Join(options, ", ") + ")"
	for {
		answer, err := p.ask(title, choices, def)
		if err != nil {
			return "", err
		}
		if slices.Contains(options, answer) {
			return answer, nil
		}
		fmt.Fprintf(p.out, "%s %q is not one of %s.\n", Error("Error:"), answer, strings.Join(options, ", "))
	}
}

func (p *LinePrompter) ask(title, choices, def string) (string, error) {
	prompt := title
	if choices != "" {
		prompt += " " + Muted(choices)
	}
	if def != "" {
		prompt += " [" + def + "]"
	}
	fmt.Fprint(p.out, prompt+": ")

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		fmt.Fprintln(p.out)
		if err == io.EOF {
			return "", ErrAborted
		}
		return "", fmt.Errorf("read answer: %w", err)
	}

	return orDefault(line, def), nil
}

// MockPrompts answers prompts through the given functions; a nil function
// accepts the default.
type MockPrompts struct {
	InputFunc  func(title, def string) (string, error)
	SelectFunc func(title string, options []string, def string) (string, error)
}

func (m *MockPrompts) Input(title, def string, validate func(string) error) (string, error) {
	answer := def
	if m.InputFunc != nil {
		var err error
		if answer, err = m.InputFunc(title, def); err != nil {
			return "", err
		}
	}
	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (m *MockPrompts) Select(title string, options []string, def string) (string, error) {
	answer := def
	if m.SelectFunc != nil {
		var err error
		if answer, err = m.SelectFunc(title, options, def); err != nil {
			return "", err
		}
	}
	if !slices.Contains(options, answer) {
		return "", fmt.Errorf("%q is not one of %s", answer, strings.Join(options, ", "))
	}
	return answer, nil
}
