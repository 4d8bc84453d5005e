// Package dbus queries systemd units over the system bus. The interfaces
// let the preflight checks run against a mock bus.
package dbus

import (
	"context"
	"fmt"

	"github.com/coreos/go-systemd/v22/dbus"
)

const activeStateProperty = "ActiveState"

//go:generate mockgen -destination ./mock/mock_dbus.go . System,Connection

// System opens connections to the systemd manager.
type System interface {
	NewConn(ctx context.Context) (Connection, error)
}

// Connection is the subset of the systemd manager API used to read unit
// properties.
type Connection interface {
	Close()
	GetUnitPropertiesContext(ctx context.Context, unit string) (map[string]interface{}, error)
}

// Toolkit connects to the systemd manager of the host.
type Toolkit struct{}

func (*Toolkit) NewConn(ctx context.Context) (Connection, error) {
	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating new D-Bus connection: %w", err)
	}
	return conn, nil
}

// ActiveState returns the ActiveState property of unit, e.g. "active" or
// "failed".
func ActiveState(ctx context.Context, system System, unit string) (string, error) {
	conn, err := system.NewConn(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	props, err := conn.GetUnitPropertiesContext(ctx, unit)
	if err != nil {
		return "", fmt.Errorf("error getting unit %s properties: %w", unit, err)
	}
	state, ok := props[activeStateProperty].(string)
	if !ok {
		return "", fmt.Errorf("unit %s reports no %s", unit, activeStateProperty)
	}
	return state, nil
}
