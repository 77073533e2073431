package create

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xmazu/envzilla/internal/envfile"
)

type Kind int

const (
	KindText Kind = iota
	KindEnum
	KindNumber
	KindBool
)

var boolChoices = []string{"True", "False"}

// Constraint describes what answer a template line accepts.
type Constraint struct {
	Kind Kind
	// Choices for KindEnum and KindBool.
	Choices []string
	// Integer selects int over float for KindNumber.
	Integer bool
}

// ConstraintFor resolves the constraint of a template line. enum wins over type.
func ConstraintFor(meta envfile.Metadata, def string) Constraint {
	if choices := meta.Enum(); len(choices) > 0 {
		return Constraint{Kind: KindEnum, Choices: choices}
	}
	switch meta.Type() {
	case envfile.TypeNumber:
		return Constraint{Kind: KindNumber, Integer: isDigits(def)}
	case envfile.TypeBool:
		return Constraint{Kind: KindBool, Choices: boolChoices}
	}
	return Constraint{Kind: KindText}
}

// Default adapts def to the constraint; an empty result means none.
func (c Constraint) Default(def string) string {
	switch c.Kind {
	case KindBool:
		b, err := strconv.ParseBool(def)
		if err != nil {
			return ""
		}
		if b {
			return "True"
		}
		return "False"
	case KindEnum:
		for _, choice := range c.Choices {
			if choice == def {
				return def
			}
		}
		return ""
	}
	return def
}

// Normalize checks an answer and returns the string to store.
func (c Constraint) Normalize(answer string) (string, error) {
	switch c.Kind {
	case KindNumber:
		if c.Integer {
			n, err := strconv.Atoi(answer)
			if err != nil {
				return "", fmt.Errorf("%q is not a valid integer", answer)
			}
			return strconv.Itoa(n), nil
		}
		f, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return "", fmt.Errorf("%q is not a valid number", answer)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case KindEnum, KindBool:
		for _, choice := range c.Choices {
			if choice == answer {
				return answer, nil
			}
		}
		return "", fmt.Errorf("%q is not one of %s", answer, strings.Join(c.Choices, ", "))
	}
	return answer, nil
}

func (c Constraint) Validate(answer string) error {
	_, err := c.Normalize(answer)
	return err
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
