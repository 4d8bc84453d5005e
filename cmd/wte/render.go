package main

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/telekom/wireless-transport-emulator/pkg/config"
	"github.com/telekom/wireless-transport-emulator/pkg/emulator"
)

func newRenderCommand(root *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the configuration and state documents of every node",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (overrides outputDirectory)")
	cmd.RunE = root.run("render", func(cmd *cobra.Command, cfg *config.Config, log logr.Logger) error {
		declaration, err := root.loadTopology()
		if err != nil {
			return err
		}
		emu, err := emulator.New(declaration, cfg, emulator.Options{}, log)
		if err != nil {
			return err
		}
		if err := emu.CreateNetworkElements(); err != nil {
			return err
		}
		dir := cfg.OutputDirectory
		if output != "" {
			dir = output
		}
		paths, err := emu.Render(dir)
		if err != nil {
			return err
		}
		for _, path := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	})
	return cmd
}
