package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/bundlepatch/internal/domain"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [patches...]",
		Short: "Re-apply patches whenever the bundle is rebuilt",
		Long: `Watch applies the patches once, then watches the assets directory and
applies them again after every rebuild of the bundle. Stop it with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return reported(newWorkflow(cmd).Watch(ctx, domain.WatchArgs{
				ApplyArgs: domain.ApplyArgs{
					TargetArgs: targetArgs(),
					Patches:    selectPatches(args),
				},
			}))
		},
	}

	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
