package cmd

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	rootDir = "."
	logLevel = "warn"
	listTemplate = ""
	listOnlyMissing = false
	listPlain = false
	listOutput = "table"
	listWatch = false
	createTemplate = ""
	createDryRun = false
}

// executeCommand runs the root command with args, feeding stdin to prompts.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := executeContext(context.Background(), strings.NewReader(stdin), &stdout, &stderr, args...)
	return stdout.String(), stderr.String(), err
}

func executeContext(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args ...string) error {
	resetFlags()
	for _, c := range rootCmd.Commands() {
		c.SetContext(nil)
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()
	return rootCmd.ExecuteContext(ctx)
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRootCommand(t *testing.T) {
	t.Run("root command has expected properties", func(t *testing.T) {
		assert.Equal(t, "envzilla", rootCmd.Use)
		assert.True(t, rootCmd.SilenceUsage)
		assert.True(t, rootCmd.SilenceErrors)
		assert.Contains(t, rootCmd.Long, ".env.dist")
	})

	t.Run("root command has subcommands", func(t *testing.T) {
		names := make(map[string]bool)
		for _, c := range rootCmd.Commands() {
			names[c.Name()] = true
		}
		for _, want := range []string{"list", "create", "mcp"} {
			assert.True(t, names[want], "subcommand %q not found", want)
		}
	})

	t.Run("persistent flags", func(t *testing.T) {
		dir := rootCmd.PersistentFlags().Lookup("dir")
		require.NotNil(t, dir)
		assert.Equal(t, "C", dir.Shorthand)
		assert.Equal(t, ".", dir.DefValue)

		level := rootCmd.PersistentFlags().Lookup("log-level")
		require.NotNil(t, level)
		assert.Equal(t, "warn", level.DefValue)
	})

	t.Run("version", func(t *testing.T) {
		SetVersion("1.2.3")
		t.Cleanup(func() { SetVersion("") })

		stdout, _, err := executeCommand(t, "", "--version")
		require.NoError(t, err)
		assert.Equal(t, "envzilla version 1.2.3\n", stdout)
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, _, err := executeCommand(t, "", "list", "-C", t.TempDir(), "--log-level", "loud")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--log-level")
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(&buf, "debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())

	l.Debug().Msg("hello")
	assert.Contains(t, buf.String(), "hello")

	l, err = newLogger(&buf, "")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
}
