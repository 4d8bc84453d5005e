package emulator

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/telekom/wireless-transport-emulator/pkg/netdev"
	"github.com/telekom/wireless-transport-emulator/pkg/runtime"
)

// Cleanup removes everything a previous run left behind: containers and
// their networks, link bridges in the host namespace and, when registrar is
// set, the controller registrations of the removed nodes.
func Cleanup(ctx context.Context, rt runtime.Interface, devices netdev.Interface, registrar Registrar, logger logr.Logger) error {
	logger = logger.WithName("cleanup")

	containers, err := rt.Cleanup(ctx)
	if err != nil {
		return fmt.Errorf("error removing containers: %w", err)
	}
	logger.Info("removed containers", "count", len(containers))

	bridges, err := devices.DeleteHostBridges(BridgePrefix)
	if err != nil {
		return fmt.Errorf("error removing link bridges: %w", err)
	}
	logger.Info("removed link bridges", "count", len(bridges))

	if registrar == nil {
		return nil
	}
	for _, container := range containers {
		if err := registrar.Unregister(ctx, container); err != nil {
			logger.Error(err, "error unregistering node", "node", container)
		}
	}
	return nil
}
