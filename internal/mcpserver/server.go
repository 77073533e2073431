package mcpserver

import (
	"context"
	"os"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/xmazu/envzilla/internal/envfile"
	"github.com/xmazu/envzilla/internal/report"
	"github.com/xmazu/envzilla/internal/workspace"
)

type StatusArgs struct {
	Workdir     string `json:"workdir" jsonschema:"directory holding the template and .env files (default: current)"`
	Template    string `json:"template" jsonschema:"template file name (default: .env.dist, then .env.template)"`
	OnlyMissing bool   `json:"only_missing" jsonschema:"only return variables missing or empty in at least one file"`
}

type TemplateArgs struct {
	Workdir  string `json:"workdir" jsonschema:"directory holding the template (default: current)"`
	Template string `json:"template" jsonschema:"template file name (default: .env.dist, then .env.template)"`
}

type TemplateVariable struct {
	Key      string            `json:"key"`
	Default  string            `json:"default"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewServer registers the read-only tools. No tool writes files.
func NewServer(version string, log zerolog.Logger) *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "envzilla",
		Version: version,
	}, nil)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "env_status",
		Description: "Compare the .env files of a directory against its template (.env.dist or .env.template). For every template variable returns, per file, whether it is present, empty or missing. Never returns values.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, args StatusArgs) (*mcpsdk.CallToolResult, any, error) {
		log.Debug().Str("tool", "env_status").Str("workdir", args.Workdir).Msg("tool call")
		doc, err := Status(args)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		return successResult(doc), nil, nil
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "template_variables",
		Description: "List the variables a directory's env template expects, with their default values and prompt metadata (question, enum, type).",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, args TemplateArgs) (*mcpsdk.CallToolResult, any, error) {
		log.Debug().Str("tool", "template_variables").Str("workdir", args.Workdir).Msg("tool call")
		vars, path, err := TemplateVariables(args)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		return successResult(map[string]any{"template": path, "variables": vars}), nil, nil
	})

	return server
}

// Run serves the tools on stdio until ctx is done or the client disconnects.
func Run(ctx context.Context, version string, log zerolog.Logger) error {
	return NewServer(version, log).Run(ctx, &mcpsdk.StdioTransport{})
}

func Status(args StatusArgs) (report.Document, error) {
	g, err := report.Build(workdir(args.Workdir), args.Template, args.OnlyMissing)
	if err != nil {
		return report.Document{}, err
	}
	return report.NewDocument(g), nil
}

func TemplateVariables(args TemplateArgs) ([]TemplateVariable, string, error) {
	path, err := workspace.FindTemplate(workdir(args.Workdir), args.Template)
	if err != nil {
		return nil, "", err
	}
	lines, err := envfile.ReadTemplate(path)
	if err != nil {
		return nil, "", err
	}
	vars := make([]TemplateVariable, 0, len(lines))
	for _, tl := range lines {
		vars = append(vars, TemplateVariable{Key: tl.Key, Default: tl.Value, Metadata: tl.Metadata})
	}
	return vars, path, nil
}

func workdir(dir string) string {
	if dir != "" {
		return dir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
