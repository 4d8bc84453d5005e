package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/telekom/wireless-transport-emulator/pkg/config"
	"github.com/telekom/wireless-transport-emulator/pkg/emulator"
	"github.com/telekom/wireless-transport-emulator/pkg/monitoring"
	"github.com/telekom/wireless-transport-emulator/pkg/preflight"
)

type startOptions struct {
	metricsAddress string
	keep           bool
}

func newStartCommand(root *rootOptions) *cobra.Command {
	opts := &startOptions{}
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Build the topology and keep it running until interrupted",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&opts.metricsAddress, "metrics-address", "",
		"serve Prometheus metrics on this address (overrides metricsAddress)")
	cmd.Flags().BoolVar(&opts.keep, "keep", false, "leave nodes and links in place on exit")
	cmd.RunE = root.run("start", func(cmd *cobra.Command, cfg *config.Config, log logr.Logger) error {
		return opts.start(cmd.Context(), root, cfg, log)
	})
	return cmd
}

func (o *startOptions) start(ctx context.Context, root *rootOptions, cfg *config.Config, log logr.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := preflight.NewChecker(log).Check(ctx); err != nil {
		return err
	}
	declaration, err := root.loadTopology()
	if err != nil {
		return err
	}

	docker := newDocker(cfg, log)
	devices := newDevices(log)
	registrar := newRegistrar(cfg, log)
	emu, err := emulator.New(declaration, cfg, emulator.Options{
		Runtime:   docker,
		Netdev:    devices,
		Registrar: registrar,
	}, log)
	if err != nil {
		return err
	}

	if addr := o.address(cfg); addr != "" {
		reg := monitoring.NewRegistry(monitoring.NewEmulatorCollector(emu, log))
		go func() {
			if err := monitoring.Serve(ctx, addr, reg, log); err != nil {
				log.Error(err, "metrics endpoint failed")
			}
		}()
	}

	if err := emu.Start(ctx); err != nil {
		return err
	}
	if _, err := emu.Render(cfg.OutputDirectory); err != nil {
		log.Error(err, "error writing rendered documents")
	}

	log.Info("emulator running, interrupt to stop")
	<-ctx.Done()

	if o.keep {
		log.Info("leaving emulated topology in place")
		return nil
	}
	return emulator.Cleanup(context.Background(), docker, devices, registrar, log)
}

func (o *startOptions) address(cfg *config.Config) string {
	if o.metricsAddress != "" {
		return o.metricsAddress
	}
	return cfg.MetricsAddress
}
