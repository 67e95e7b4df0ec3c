package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/bundlepatch/internal/domain"
	domainmocks "github.com/mouse-blink/bundlepatch/internal/domain/mocks"
	"github.com/mouse-blink/bundlepatch/internal/domain/patches"
	m "github.com/mouse-blink/bundlepatch/internal/model"
)

func TestWatchCmd_CallsWatch(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	root := t.TempDir()

	mockWorkflow.EXPECT().
		Watch(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, args domain.WatchArgs) error {
			assert.NotNil(t, ctx.Done())
			assert.Equal(t, m.Path(root), args.Root)
			assert.Equal(t, []string{patches.QueueName}, args.Patches)

			return nil
		})

	code, _, _ := run(t, "watch", "--root", root, patches.QueueName)

	assert.Equal(t, ExitOK, code)
}

func TestWatchCmd_DefaultsToConfiguredPatches(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().
		Watch(mock.Anything, mock.MatchedBy(func(args domain.WatchArgs) bool {
			return assert.ObjectsAreEqual(registry.Names(), args.Patches)
		})).
		Return(nil)

	code, _, _ := run(t, "watch", "--root", t.TempDir())

	assert.Equal(t, ExitOK, code)
}

func TestWatchCmd_Error(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().
		Watch(mock.Anything, mock.Anything).
		Return(errors.New("watch failed"))

	code, _, stderr := run(t, "watch", "--root", t.TempDir())

	assert.Equal(t, ExitUsage, code)
	assert.Empty(t, stderr, "workflow errors are printed by the UI")
}
