package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/telekom/wireless-transport-emulator/pkg/config"
	"github.com/telekom/wireless-transport-emulator/pkg/emulator"
	"github.com/telekom/wireless-transport-emulator/pkg/model"
	"github.com/telekom/wireless-transport-emulator/pkg/netconf"
)

func newVerifyCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every running node serves its generated configuration",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = root.run("verify", func(cmd *cobra.Command, cfg *config.Config, log logr.Logger) error {
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

		failed := 0
		for _, ne := range emu.NetworkElements() {
			ok, err := verifyNode(cmd.Context(), cmd.OutOrStdout(), emu, ne, cfg)
			if err != nil {
				log.Error(err, "error verifying node", "node", ne.Name)
			}
			if !ok {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d nodes do not serve their generated configuration", failed, len(emu.NetworkElements()))
		}
		return nil
	})
	return cmd
}

func verifyNode(ctx context.Context, out io.Writer, emu *emulator.Emulator, ne *model.NetworkElement, cfg *config.Config) (bool, error) {
	address := net.JoinHostPort(ne.ManagementIP.String(), strconv.Itoa(cfg.Netconf.Port))
	client := netconf.NewClient(address, cfg.Netconf.Username, cfg.Netconf.Password, cfg.Netconf.Timeout)
	defer client.Close(ctx)

	report, err := netconf.Verify(ctx, client, emu.ConfigDocument(ne))
	if err != nil {
		fmt.Fprintf(out, "%s\tERROR\t%v\n", ne.Name, err)
		return false, err
	}
	if report.OK() {
		fmt.Fprintf(out, "%s\tOK\n", ne.Name)
		return true, nil
	}
	fmt.Fprintf(out, "%s\tMISMATCH\tmissing=%v unexpected=%v\n%s", ne.Name, report.Missing, report.Unexpected, report.Diff)
	return false, nil
}
