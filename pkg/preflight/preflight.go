// Package preflight checks that the host can run the emulator.
package preflight

import (
	"context"
	"errors"

	"github.com/go-logr/logr"
	"github.com/telekom/wireless-transport-emulator/pkg/preflight/dbus"
	"golang.org/x/sys/unix"
)

const (
	DefaultDaemonUnit = "docker.service"
	activeState       = "active"
)

var ErrNotRoot = errors.New("the emulator must be run as root")

type Checker struct {
	Unit string

	euid        func() int
	dbusToolkit dbus.System
	logger      logr.Logger
}

func NewChecker(logger logr.Logger) *Checker {
	return &Checker{
		Unit:        DefaultDaemonUnit,
		euid:        unix.Geteuid,
		dbusToolkit: &dbus.Toolkit{},
		logger:      logger.WithName("preflight"),
	}
}

// Check fails unless the process runs as root. An inactive container daemon
// is only logged since the runtime reports its own errors.
func (c *Checker) Check(ctx context.Context) error {
	if c.euid() != 0 {
		return ErrNotRoot
	}
	state, err := c.UnitState(ctx)
	if err != nil {
		c.logger.Info("could not query container daemon", "unit", c.Unit, "error", err.Error())
		return nil
	}
	if state != activeState {
		c.logger.Info("container daemon is not active", "unit", c.Unit, "state", state)
	}
	return nil
}

// UnitState returns the ActiveState of the container daemon unit.
func (c *Checker) UnitState(ctx context.Context) (string, error) {
	return dbus.ActiveState(ctx, c.dbusToolkit, c.Unit)
}
