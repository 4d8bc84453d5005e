/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"github.com/telekom/wireless-transport-emulator/api/v1alpha1"
	"github.com/telekom/wireless-transport-emulator/pkg/config"
	"github.com/telekom/wireless-transport-emulator/pkg/emulator"
	"github.com/telekom/wireless-transport-emulator/pkg/netdev"
	"github.com/telekom/wireless-transport-emulator/pkg/nltoolkit"
	"github.com/telekom/wireless-transport-emulator/pkg/odl"
	"github.com/telekom/wireless-transport-emulator/pkg/runtime"
	"github.com/telekom/wireless-transport-emulator/pkg/version"
	"go.uber.org/zap"
)

const defaultTopologyFile = "topology.json"

type rootOptions struct {
	configPath   string
	topologyPath string
	debug        bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "wte",
		Short:         "Wireless transport network emulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"emulator configuration file (default $WTE_CONFIG or /etc/wte/config.yaml)")
	cmd.PersistentFlags().StringVarP(&opts.topologyPath, "topology", "t", defaultTopologyFile,
		"topology declaration (JSON or YAML)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newStartCommand(opts),
		newCleanCommand(opts),
		newRenderCommand(opts),
		newVerifyCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version.Get().Print(cmd.OutOrStdout(), "wte")
		},
	}
}

func newLogger(debug bool) logr.Logger {
	zc := zap.NewProductionConfig()
	if debug {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zc.DisableStacktrace = true
	z, err := zc.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		return logr.Discard()
	}
	return zapr.NewLogger(z).WithName("wte")
}

// run wraps a subcommand with logger and configuration setup. Errors are
// logged before they are handed back to cobra.
func (o *rootOptions) run(name string, fn func(cmd *cobra.Command, cfg *config.Config, log logr.Logger) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		log := newLogger(o.debug).WithName(name)
		cfg, err := o.loadConfig(log)
		if err != nil {
			log.Error(err, "error loading config")
			return err
		}
		if err := fn(cmd, cfg, log); err != nil {
			log.Error(err, name+" failed")
			return err
		}
		return nil
	}
}

func (o *rootOptions) loadConfig(log logr.Logger) (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadConfigFrom(o.configPath)
	}
	cfg, err := config.LoadConfig()
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("no configuration file found, using defaults")
		return config.Default(), nil
	}
	return cfg, err
}

func (o *rootOptions) loadTopology() (*v1alpha1.TopologyDeclaration, error) {
	return v1alpha1.LoadTopology(o.topologyPath)
}

func newDocker(cfg *config.Config, log logr.Logger) *runtime.Docker {
	return runtime.NewDocker(runtime.Opts{ExecutionLogPath: cfg.ExecLogPath}, log)
}

func newDevices(log logr.Logger) *netdev.Manager {
	return netdev.NewManager(nltoolkit.NamespaceOpener{}, log)
}

// newRegistrar returns nil unless automatic controller registration is
// enabled and the controller is fully configured.
func newRegistrar(cfg *config.Config, log logr.Logger) emulator.Registrar {
	if !cfg.RegistrationEnabled() {
		if cfg.AutomaticODLRegistration {
			log.Info("controller registration enabled but controller incomplete, skipping registration")
		}
		return nil
	}
	return odl.NewClient(cfg.Controller, cfg.Netconf, log)
}
