// Package addrpool allocates management subnets, point-to-point interface
// subnets and hardware addresses for emulated network elements.
package addrpool

import (
	"fmt"
	"net"
	"net/netip"

	"github.com/go-logr/logr"
)

const (
	DefaultManagementNetwork = "192.168.0.0/16"
	DefaultInterfaceNetwork  = "10.10.0.0/16"
)

// ManagementPool issues management subnets. An issued subnet is never
// returned to the pool.
type ManagementPool struct {
	pool *subnetPool
}

// Allocate pops the next management subnet.
func (m *ManagementPool) Allocate() (netip.Prefix, error) {
	return m.pool.allocate()
}

func (m *ManagementPool) Network() netip.Prefix { return m.pool.network }

func (m *ManagementPool) Free() uint64 { return m.pool.free() }

func (m *ManagementPool) Allocated() int { return m.pool.allocated() }

// InterfacePool issues point-to-point subnets for addressed links.
type InterfacePool struct {
	pool *subnetPool
}

func (i *InterfacePool) Allocate() (netip.Prefix, error) {
	return i.pool.allocate()
}

// Release makes subnet allocatable again.
func (i *InterfacePool) Release(subnet netip.Prefix) error {
	return i.pool.release(subnet)
}

func (i *InterfacePool) Network() netip.Prefix { return i.pool.network }

// Netmask returns the mask of the subnets handed out by the pool.
func (i *InterfacePool) Netmask() net.IPMask {
	return net.CIDRMask(i.pool.childBits, i.pool.network.Addr().BitLen())
}

func (i *InterfacePool) Free() uint64 { return i.pool.free() }

func (i *InterfacePool) Allocated() int { return i.pool.allocated() }

// Pools bundles the three allocators owned by one emulator instance.
type Pools struct {
	Management *ManagementPool
	Interface  *InterfacePool
	MAC        *MACAllocator
}

// New builds the pools from the configured management and interface
// networks. Invalid or overlapping networks are replaced by the defaults.
func New(managementNetwork, interfaceNetwork string, logger logr.Logger) (*Pools, error) {
	mgmt, mgmtErr := netip.ParsePrefix(managementNetwork)
	host, hostErr := netip.ParsePrefix(interfaceNetwork)
	switch {
	case mgmtErr != nil || hostErr != nil:
		logger.Info("invalid address networks configured, using defaults",
			"managementNetwork", managementNetwork, "interfaceNetwork", interfaceNetwork,
			"default-management", DefaultManagementNetwork, "default-interface", DefaultInterfaceNetwork)
		mgmt, host = defaults()
	case mgmt.Overlaps(host):
		logger.Info("management and interface networks overlap, using defaults",
			"managementNetwork", mgmt.String(), "interfaceNetwork", host.String(),
			"default-management", DefaultManagementNetwork, "default-interface", DefaultInterfaceNetwork)
		mgmt, host = defaults()
	}

	mgmtPool, err := newSubnetPool(mgmt)
	if err != nil {
		return nil, fmt.Errorf("error creating management pool: %w", err)
	}
	hostPool, err := newSubnetPool(host)
	if err != nil {
		return nil, fmt.Errorf("error creating interface pool: %w", err)
	}
	return &Pools{
		Management: &ManagementPool{pool: mgmtPool},
		Interface:  &InterfacePool{pool: hostPool},
		MAC:        NewMACAllocator(),
	}, nil
}

func defaults() (mgmt, host netip.Prefix) {
	return netip.MustParsePrefix(DefaultManagementNetwork), netip.MustParsePrefix(DefaultInterfaceNetwork)
}
