package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xmazu/envzilla/internal/report"
	"github.com/xmazu/envzilla/internal/tui"
	"github.com/xmazu/envzilla/internal/watch"
	"github.com/xmazu/envzilla/internal/workspace"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show which template variables are missing or empty in each .env file",
	Long: `Compare every .env* file of the directory against the template.

One row per template variable, one column per file:
  ✓  set to a non-empty value
  ⚠  present but empty
  ✗  missing

Output is plain text when stdout is not a terminal.

Examples:
  envzilla list
  envzilla list --only-missing
  envzilla list --output json
  envzilla list --watch`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listTemplate    string
	listOnlyMissing bool
	listPlain       bool
	listOutput      string
	listWatch       bool
)

func init() {
	listCmd.Flags().StringVarP(&listTemplate, "template", "t", "", "Template file (default: .env.dist, then .env.template)")
	listCmd.Flags().BoolVar(&listOnlyMissing, "only-missing", false, "Only show variables missing or empty in at least one file")
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "Plain text table without colors")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", report.FormatTable, "Output format: table, json or yaml")
	listCmd.Flags().BoolVarP(&listWatch, "watch", "w", false, "Re-render when the template or a .env file changes")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	renderer, err := report.NewRenderer(listOutput, listPlain || !isTerminal(out))
	if err != nil {
		return err
	}

	g, err := report.Build(rootDir, listTemplate, listOnlyMissing)
	if err != nil {
		return err
	}
	logger.Debug().Str("template", g.Template).Strs("files", g.Files).Msg("grid computed")

	if err := renderer.Render(out, g); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if !listWatch {
		return nil
	}
	return watchList(cmd.Context(), cmd, renderer, g.Template)
}

func watchList(ctx context.Context, cmd *cobra.Command, renderer report.Renderer, templatePath string) error {
	w, err := watch.New(watch.DefaultDebounce, isEnvName, logger)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Close()

	if err := w.AddDir(rootDir); err != nil {
		return fmt.Errorf("watch %s: %w", rootDir, err)
	}
	if err := w.Add(templatePath); err != nil {
		return fmt.Errorf("watch %s: %w", templatePath, err)
	}

	out := cmd.OutOrStdout()
	changes := w.Start()
	fmt.Fprintln(cmd.ErrOrStderr(), tui.Muted("Watching for changes, press Ctrl-C to stop"))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			g, err := report.Build(rootDir, listTemplate, listOnlyMissing)
			if err != nil {
				logger.Warn().Err(err).Msg("rebuild failed")
				fmt.Fprintln(cmd.ErrOrStderr(), tui.Warning("⚠"), err)
				continue
			}
			fmt.Fprintln(out)
			if err := renderer.Render(out, g); err != nil {
				return fmt.Errorf("render: %w", err)
			}
		}
	}
}

func isEnvName(name string) bool {
	return strings.HasPrefix(name, workspace.EnvFileName)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
