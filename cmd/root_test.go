package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/bundlepatch/internal/adapter"
	"github.com/mouse-blink/bundlepatch/internal/domain"
	domainmocks "github.com/mouse-blink/bundlepatch/internal/domain/mocks"
	"github.com/mouse-blink/bundlepatch/internal/domain/patches"
	m "github.com/mouse-blink/bundlepatch/internal/model"
)

func TestRootCmd_ApplyModeUsesDefaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	root := t.TempDir()

	mockWorkflow.On("Apply", domain.ApplyArgs{
		TargetArgs: domain.TargetArgs{
			Root:    m.Path(root),
			Assets:  adapter.DefaultAssetsDir,
			Pattern: adapter.DefaultPattern,
		},
		Patches: registry.Names(),
	}).Return(nil)

	code, _, stderr := run(t, "--root", root)

	assert.Equal(t, ExitOK, code)
	assert.Empty(t, stderr)
}

func TestRootCmd_CheckModeWithArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("Check", mock.MatchedBy(func(args domain.CheckArgs) bool {
		return len(args.Patches) == 2 &&
			args.Patches[0] == patches.ReadOnlyName &&
			args.Patches[1] == patches.QueueName
	})).Return(nil)

	code, _, _ := run(t, "--root", t.TempDir(), "--check", patches.ReadOnlyName, patches.QueueName)

	assert.Equal(t, ExitOK, code)
}

func TestRootCmd_ConfigFileAndFlagOverrides(t *testing.T) {
	root := t.TempDir()
	content := `assets: build/assets
pattern: '^main-.*\.js$'
patches:
  - approval-auto-advance
`
	require.NoError(t, os.WriteFile(filepath.Join(root, adapter.DefaultConfigFile), []byte(content), 0o644))

	t.Run("file values", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		useWorkflow(t, mockWorkflow)

		mockWorkflow.On("Apply", domain.ApplyArgs{
			TargetArgs: domain.TargetArgs{Root: m.Path(root), Assets: "build/assets", Pattern: `^main-.*\.js$`},
			Patches:    []string{patches.AutoAdvanceName},
		}).Return(nil)

		code, _, _ := run(t, "--root", root)
		assert.Equal(t, ExitOK, code)
	})

	t.Run("flags win", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		useWorkflow(t, mockWorkflow)

		mockWorkflow.On("Apply", domain.ApplyArgs{
			TargetArgs: domain.TargetArgs{Root: m.Path(root), Assets: "dist", Pattern: `^app\.js$`},
			Patches:    []string{patches.AutoAdvanceName},
		}).Return(nil)

		code, _, _ := run(t, "--root", root, "--assets", "dist", "--pattern", `^app\.js$`)
		assert.Equal(t, ExitOK, code)
	})
}

func TestRootCmd_ConfigErrors(t *testing.T) {
	root := t.TempDir()
	broken := filepath.Join(root, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("assets: [unclosed"), 0o644))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "explicit config missing",
			args: []string{"--root", root, "--config", filepath.Join(root, "absent.yaml")},
			want: "failed to read config",
		},
		{
			name: "config does not parse",
			args: []string{"--root", root, "--config", broken},
			want: "failed to parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)
			useWorkflow(t, mockWorkflow)

			code, _, stderr := run(t, tt.args...)

			assert.Equal(t, ExitUsage, code)
			assert.Contains(t, stderr, "Error: ")
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestRootCmd_ReportedErrorsAreNotRepeated(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("Check", mock.Anything).Return(&domain.PatchError{Kind: domain.ErrMissingPatch, Patch: patches.QueueName})

	code, _, stderr := run(t, "--root", t.TempDir(), "--check")

	assert.Equal(t, ExitMissing, code)
	assert.Empty(t, stderr)
}

func TestRootCmd_UnknownFlag(t *testing.T) {
	code, _, stderr := run(t, "--bogus")

	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "unknown flag: --bogus")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "missing", err: &domain.PatchError{Kind: domain.ErrMissingPatch, Patch: "p"}, want: ExitMissing},
		{name: "unknown shape", err: reported(&domain.PatchError{Kind: domain.ErrUnknownShape, Patch: "p"}), want: ExitUnknown},
		{name: "stale", err: &domain.PatchError{Kind: domain.ErrStaleApply, Patch: "p", Site: "s"}, want: ExitStale},
		{name: "locator", err: reported(&adapter.LocatorError{Kind: adapter.ErrArtifactAmbiguous}), want: ExitLocator},
		{name: "unknown patch", err: domain.ErrUnknownPatch, want: ExitUsage},
		{name: "other", err: errors.New("boom"), want: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestRootCmd_EndToEnd(t *testing.T) {
	baseline := readFixture(t)
	root := writeProject(t, baseline)

	code, stdout, _ := run(t, "--root", root, "--check")
	assert.Equal(t, ExitMissing, code)
	assert.Equal(t, "MISSING: approval queue patch not applied in "+bundleRel+"\n", stdout)
	assert.Equal(t, baseline, readBundle(t, root), "check must not write")

	code, stdout, _ = run(t, "--root", root)
	require.Equal(t, ExitOK, code)
	assert.Equal(t, strings.Join([]string{
		"Patched approval request queue in " + bundleRel,
		"Patched approval prompt serialization in " + bundleRel,
		"Patched approval auto-advance in " + bundleRel,
		"Patched read-only approval auto-accept in " + bundleRel,
	}, "\n")+"\n", stdout)

	patched := readBundle(t, root)
	assert.NotEqual(t, baseline, patched)

	code, stdout, _ = run(t, "--root", root, "--check")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, strings.Join([]string{
		"OK: approval queue patch present in " + bundleRel,
		"OK: approval serialization patch present in " + bundleRel,
		"OK: approval auto-advance patch present in " + bundleRel,
		"OK: read-only auto-approval patch present in " + bundleRel,
	}, "\n")+"\n", stdout)

	code, stdout, _ = run(t, "--root", root, patches.QueueName)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "No changes: approval queue patch already applied ("+bundleRel+")\n", stdout)
	assert.Equal(t, patched, readBundle(t, root))
}

func TestRootCmd_EndToEnd_UnknownShape(t *testing.T) {
	root := writeProject(t, "function Z(){}")

	code, _, stderr := run(t, "--root", root)
	assert.Equal(t, ExitUnknown, code)
	assert.Equal(t, "Patch target not found in "+bundleRel+"; bundle layout likely changed\n", stderr)
	assert.Equal(t, "function Z(){}", readBundle(t, root))

	code, stdout, _ := run(t, "--root", root, "--check", patches.SerializationName)
	assert.Equal(t, ExitUnknown, code)
	assert.Equal(t, "UNKNOWN: expected target snippet(s) not found in "+bundleRel+"\n", stdout)
}

func TestRootCmd_EndToEnd_Locator(t *testing.T) {
	root := writeProject(t, readFixture(t))
	second := filepath.Join(root, "src", "webview", "assets", "index-def.js")
	require.NoError(t, os.WriteFile(second, []byte("x"), 0o644))

	code, stdout, stderr := run(t, "--root", root)
	assert.Equal(t, ExitLocator, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "expected exactly one artifact")
	assert.Contains(t, stderr, "index-abc.js index-def.js")

	code, _, stderr = run(t, "--root", t.TempDir(), "--check")
	assert.Equal(t, ExitLocator, code)
	assert.Contains(t, stderr, "assets directory not found")
}

func TestRootCmd_EndToEnd_UnknownPatchName(t *testing.T) {
	root := writeProject(t, readFixture(t))

	code, _, stderr := run(t, "--root", root, "approval-everything")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "approval-everything")
	assert.Equal(t, readFixture(t), readBundle(t, root))
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.NotNil(t, cmd.Flags().Lookup("check"))
	assert.Nil(t, cmd.PersistentFlags().Lookup("check"), "check belongs to the root command only")

	for _, name := range []string{"root", "config", "assets", "pattern", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %s", name)
	}

	assert.Equal(t, registry.Names(), cmd.ValidArgs)

	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
}
