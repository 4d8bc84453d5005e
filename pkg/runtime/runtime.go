// Package runtime provisions the containers hosting emulated network
// elements.
package runtime

import (
	"context"
	"net/netip"
)

const (
	// Label marks containers and networks created by the emulator.
	Label = "io.wte.emulator"
	// NetworkPrefix starts the name of every node network.
	NetworkPrefix = "wte_net"

	// DocumentDirectory receives the startup documents inside a node.
	DocumentDirectory = "/usr/src/OpenYuma"

	netconfContainerPort = 830
	sshContainerPort     = 22
	sshHostPort          = 2200
)

// Node describes the container of one network element.
type Node struct {
	Name    string
	Network string
	Subnet  netip.Prefix
	// ManagementIP is the host address the node's services are published on.
	ManagementIP netip.Addr
	Image        string
	NetconfPort  int
	// Documents maps file names below DocumentDirectory to their content.
	Documents map[string][]byte
}

// Interface is implemented by container runtimes.
type Interface interface {
	// Provision creates, fills and starts the container of node and returns
	// the path of its network namespace.
	Provision(ctx context.Context, node *Node) (string, error)
	// NamespacePath returns the network namespace path of a running node.
	NamespacePath(ctx context.Context, name string) (string, error)
	// Cleanup removes every container and network created by the emulator and
	// returns the names of the removed containers.
	Cleanup(ctx context.Context) ([]string, error)
}
