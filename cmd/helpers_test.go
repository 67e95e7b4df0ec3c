package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/bundlepatch/internal/domain"
)

const (
	baselineFixture = "../internal/domain/patches/testdata/index-baseline.js"
	bundleName      = "index-abc.js"
	bundleRel       = "src/webview/assets/index-abc.js"
)

// newTestRootCmd builds a fresh command tree writing to buffers.
func newTestRootCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd(), newWatchCmd())
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	return cmd, &stdout, &stderr
}

// useWorkflow replaces the workflow factory for the duration of the test.
func useWorkflow(t *testing.T, workflow domain.Workflow) {
	t.Helper()

	original := newWorkflow
	newWorkflow = func(_ *cobra.Command) domain.Workflow { return workflow }

	t.Cleanup(func() { newWorkflow = original })
}

// writeProject lays out a project root with the given bundle text.
func writeProject(t *testing.T, text string) string {
	t.Helper()

	root := t.TempDir()
	assets := filepath.Join(root, "src", "webview", "assets")
	require.NoError(t, os.MkdirAll(assets, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, bundleName), []byte(text), 0o644))

	return root
}

func readFixture(t *testing.T) string {
	t.Helper()

	content, err := os.ReadFile(baselineFixture)
	require.NoError(t, err)

	return string(content)
}

func readBundle(t *testing.T, root string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(root, bundleRel))
	require.NoError(t, err)

	return string(content)
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	cmd, stdout, stderr := newTestRootCmd()
	cmd.SetArgs(args)

	return execute(cmd), stdout.String(), stderr.String()
}
