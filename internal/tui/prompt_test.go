package tui

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompterInput(t *testing.T) {
	t.Run("empty answer takes default", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("\n"), &out)

		got, err := p.Input("Value for VAR1", "foo", nil)
		require.NoError(t, err)
		assert.Equal(t, "foo", got)
		assert.Contains(t, out.String(), "Value for VAR1 [foo]: ")
	})

	t.Run("answer is trimmed", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("  bar \n"), &bytes.Buffer{})

		got, err := p.Input("Value", "", nil)
		require.NoError(t, err)
		assert.Equal(t, "bar", got)
	})

	t.Run("last line without newline", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("baz"), &bytes.Buffer{})

		got, err := p.Input("Value", "", nil)
		require.NoError(t, err)
		assert.Equal(t, "baz", got)
	})

	t.Run("invalid answers are asked again", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("abc\n3\n"), &out)

		got, err := p.Input("Number", "", func(s string) error {
			_, err := strconv.Atoi(s)
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, "3", got)
		assert.Equal(t, 2, strings.Count(out.String(), "Number: "))
		assert.Contains(t, out.String(), "Error:")
	})

	t.Run("end of input aborts", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader(""), &bytes.Buffer{})

		_, err := p.Input("Value", "x", nil)
		assert.ErrorIs(t, err, ErrAborted)
	})
}

func TestLinePrompterSelect(t *testing.T) {
	options := []string{"cancel", "overwrite", "merge"}

	t.Run("default", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("\n"), &out)

		got, err := p.Select("File exists", options, "cancel")
		require.NoError(t, err)
		assert.Equal(t, "cancel", got)
		assert.Contains(t, out.String(), "cancel, overwrite, merge")
	})

	t.Run("re-asks until valid", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("keep\nmerge\n"), &out)

		got, err := p.Select("File exists", options, "cancel")
		require.NoError(t, err)
		assert.Equal(t, "merge", got)
		assert.Contains(t, out.String(), `"keep" is not one of`)
	})

	t.Run("default outside options is ignored", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("\nTrue\n"), &bytes.Buffer{})

		got, err := p.Select("Flag", []string{"True", "False"}, "maybe")
		require.NoError(t, err)
		assert.Equal(t, "True", got)
	})
}

func TestMockPrompts(t *testing.T) {
	t.Run("nil funcs accept defaults", func(t *testing.T) {
		m := &MockPrompts{}

		got, err := m.Input("q", "d", nil)
		require.NoError(t, err)
		assert.Equal(t, "d", got)

		got, err = m.Select("q", []string{"a", "b"}, "b")
		require.NoError(t, err)
		assert.Equal(t, "b", got)
	})

	t.Run("validation applies", func(t *testing.T) {
		m := &MockPrompts{InputFunc: func(title, def string) (string, error) { return "x", nil }}

		_, err := m.Input("q", "", func(string) error { return errors.New("bad") })
		assert.Error(t, err)

		_, err = m.Select("q", []string{"a"}, "z")
		assert.Error(t, err)
	})
}

func TestNewPrompter(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})
	_, ok := p.(*LinePrompter)
	assert.True(t, ok, "non-terminal input uses line prompts")
}
