package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xmazu/envzilla/internal/create"
	"github.com/xmazu/envzilla/internal/tui"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create or update a .env file by answering the template's prompts",
	Long: `Ask for the environment name (empty for .env), then for every template
variable in order. Defaults come from the template, or from the existing file
when merging. Answers are checked against the enum and type metadata.

When the target file exists, choose to cancel, overwrite it (keys not in the
template are dropped) or merge into it (existing values become the defaults).

Answers are read line by line when stdin is not a terminal:
  printf 'staging\n\n\n3\n' | envzilla create

Examples:
  envzilla create
  envzilla create --template .env.example
  envzilla create --dry-run`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

var (
	createTemplate string
	createDryRun   bool
)

func init() {
	createCmd.Flags().StringVarP(&createTemplate, "template", "t", "", "Template file (default: .env.dist, then .env.template)")
	createCmd.Flags().BoolVar(&createDryRun, "dry-run", false, "Show what would be written without writing")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	prompter := tui.NewPrompter(cmd.InOrStdin(), out)

	_, err := create.New(prompter, out, logger).Run(cmd.Context(), create.Options{
		Dir:      rootDir,
		Template: createTemplate,
		DryRun:   createDryRun,
	})
	return err
}
