package main

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/telekom/wireless-transport-emulator/pkg/config"
	"github.com/telekom/wireless-transport-emulator/pkg/emulator"
	"github.com/telekom/wireless-transport-emulator/pkg/preflight"
)

func newCleanCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove nodes, networks and link bridges of previous runs",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = root.run("clean", func(cmd *cobra.Command, cfg *config.Config, log logr.Logger) error {
		ctx := cmd.Context()
		if err := preflight.NewChecker(log).Check(ctx); err != nil {
			return err
		}
		return emulator.Cleanup(ctx, newDocker(cfg, log), newDevices(log), newRegistrar(cfg, log), log)
	})
	return cmd
}
