package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/xmazu/envzilla/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:           "envzilla",
	Short:         "Keep .env files in line with their template",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Envzilla - compare and generate .env files from a template.

The template is .env.dist (or .env.template) in the working directory. Every
other .env* file is checked against it.

TEMPLATE METADATA:

  KEY=default #question:Shown when prompting|enum:a,b,c|type:number

  question  prompt text used by create
  enum      comma-separated list of allowed values
  type      number or bool

EXAMPLES:

  envzilla list                  # which variables are missing where
  envzilla list --only-missing   # hide variables set everywhere
  envzilla create                # answer prompts, write .env
  envzilla -C ./service create   # work in another directory`,
	PersistentPreRunE: setupLogger,
}

var (
	rootDir  string
	logLevel string

	logger = zerolog.Nop()
)

func init() {
	rootCmd.SetVersionTemplate("envzilla version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "C", ".", "Directory holding the template and .env files")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
}

// SetVersion sets the version string shown by --version (e.g. from ldflags).
func SetVersion(v string) { rootCmd.Version = v }

func setupLogger(cmd *cobra.Command, args []string) error {
	l, err := newLogger(cmd.ErrOrStderr(), logLevel)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, tui.Error("Error:"), err)
		os.Exit(1)
	}
}
