package create

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/xmazu/envzilla/internal/envfile"
	"github.com/xmazu/envzilla/internal/storage"
	"github.com/xmazu/envzilla/internal/tui"
	"github.com/xmazu/envzilla/internal/workspace"
)

// Policy decides what happens to a target file that already exists.
type Policy string

const (
	PolicyCancel    Policy = "cancel"
	PolicyOverwrite Policy = "overwrite"
	PolicyMerge     Policy = "merge"
)

var policyChoices = []string{string(PolicyCancel), string(PolicyOverwrite), string(PolicyMerge)}

const namePrompt = "Environment name (empty for .env)"

type Options struct {
	Dir      string
	Template string
	DryRun   bool
}

type Result struct {
	Path      string
	Policy    Policy
	Cancelled bool
	Written   bool
	Values    *envfile.Mapping
}

// Materializer builds an env file from a template by asking for every value.
type Materializer struct {
	prompter tui.Prompter
	out      io.Writer
	log      zerolog.Logger
}

func New(prompter tui.Prompter, out io.Writer, log zerolog.Logger) *Materializer {
	return &Materializer{prompter: prompter, out: out, log: log}
}

// Run resolves the template and target, asks for each template variable and
// writes the result. Nothing is written when an error is returned.
func (m *Materializer) Run(ctx context.Context, opts Options) (*Result, error) {
	tplPath, err := workspace.FindTemplate(opts.Dir, opts.Template)
	if err != nil {
		return nil, err
	}
	lines, err := envfile.ReadTemplate(tplPath)
	if err != nil {
		return nil, err
	}
	m.log.Debug().Str("template", tplPath).Int("variables", len(lines)).Msg("template resolved")

	name, err := m.prompter.Input(namePrompt, "", nil)
	if err != nil {
		return nil, err
	}
	target, err := workspace.TargetPath(opts.Dir, name)
	if err != nil {
		return nil, err
	}
	result := &Result{Path: target}

	start := envfile.NewMapping()
	if storage.Exists(target) {
		policy, err := m.selectPolicy(target)
		if err != nil {
			return nil, err
		}
		result.Policy = policy
		m.log.Debug().Str("target", target).Str("policy", string(policy)).Msg("target exists")

		switch policy {
		case PolicyCancel:
			result.Cancelled = true
			fmt.Fprintf(m.out, "%s Cancelled, %s left unchanged\n", tui.Warning("•"), filepath.Base(target))
			return result, nil
		case PolicyMerge:
			if start, err = envfile.Read(target); err != nil {
				return nil, fmt.Errorf("read %s: %w", target, err)
			}
		}
	}

	values, err := m.promptAll(ctx, lines, start)
	if err != nil {
		return nil, err
	}
	result.Values = values

	if opts.DryRun {
		if err := preview(m.out, target, values.Bytes()); err != nil {
			return nil, err
		}
		return result, nil
	}

	if err := envfile.Write(target, values); err != nil {
		return nil, fmt.Errorf("write %s: %w", target, err)
	}
	result.Written = true
	m.log.Debug().Str("target", target).Int("variables", values.Len()).Msg("file written")
	fmt.Fprintf(m.out, "%s Wrote %s\n", tui.Success("✓"), tui.Label(filepath.Base(target)))
	return result, nil
}

func (m *Materializer) selectPolicy(target string) (Policy, error) {
	title := fmt.Sprintf("%s already exists. What do you want to do?", filepath.Base(target))
	choice, err := m.prompter.Select(title, policyChoices, string(PolicyCancel))
	if err != nil {
		return "", err
	}
	return Policy(choice), nil
}

// promptAll asks every template line in order. Answers update start's keys in
// place; keys new to start are appended in template order.
func (m *Materializer) promptAll(ctx context.Context, lines []envfile.TemplateLine, start *envfile.Mapping) (*envfile.Mapping, error) {
	values := start.Clone()
	for _, tl := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		def := tl.Value
		if v, ok := start.Get(tl.Key); ok {
			def = v
		}

		answer, err := m.ask(tl, def)
		if err != nil {
			return nil, err
		}
		values.Set(tl.Key, answer)
	}
	return values, nil
}

func (m *Materializer) ask(tl envfile.TemplateLine, def string) (string, error) {
	title, ok := tl.Metadata.Question()
	if !ok {
		title = "Value for " + tl.Key
	}

	c := ConstraintFor(tl.Metadata, def)
	var (
		answer string
		err    error
	)
	switch c.Kind {
	case KindEnum, KindBool:
		answer, err = m.prompter.Select(title, c.Choices, c.Default(def))
	case KindNumber:
		answer, err = m.prompter.Input(title, def, c.Validate)
	default:
		answer, err = m.prompter.Input(title, def, nil)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", tl.Key, err)
	}
	return c.Normalize(answer)
}
