// Package netdev creates the network devices of emulated nodes inside their
// network namespaces and the host side plumbing joining them.
package netdev

import (
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/go-logr/logr"
	"github.com/telekom/wireless-transport-emulator/pkg/errdefs"
	"github.com/telekom/wireless-transport-emulator/pkg/nltoolkit"
	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

const (
	bondMiimon = 100
	// Ports of a link bridge are named <bridge>.<n>, their peers <bridge>.<n>p
	// until they are renamed inside the node namespace.
	peerSuffix = "p"

	hostNode = "host"
)

// Endpoint is an interface inside the network namespace of a node.
type Endpoint struct {
	Node         string
	NSPath       string
	Interface    string
	HardwareAddr net.HardwareAddr
	// Address is assigned when valid.
	Address netip.Prefix
}

// Namespace names a node and the path its network namespace is mounted at.
type Namespace struct {
	Node string
	Path string
}

// LinkInfo describes an existing interface.
type LinkInfo struct {
	Name         string
	Type         string
	HardwareAddr string
	Master       int
	Addresses    []netip.Prefix
}

//go:generate mockgen -destination ./mock/mock_netdev.go . Interface
type Interface interface {
	AddDummy(ns Namespace, name string, hwaddr net.HardwareAddr) error
	AddBond(ns Namespace, name string, hwaddr net.HardwareAddr, members []string) error
	AddVLAN(ns Namespace, name, parent string, vid int) error
	AddBridge(ns Namespace, name string, ports []string) error
	AddWire(name string, a, b Endpoint) error
	AddHostBridge(name string) error
	AttachToBridge(bridge string, port int, end Endpoint) error
	DeleteHostBridges(prefix string) ([]string, error)
	ListLinks(ns Namespace) ([]LinkInfo, error)
}

// Manager realizes devices through netlink toolkits handed out by an Opener.
type Manager struct {
	opener nltoolkit.Opener
	logger logr.Logger
}

func NewManager(opener nltoolkit.Opener, logger logr.Logger) *Manager {
	return &Manager{opener: opener, logger: logger.WithName("netdev")}
}

// inNamespace runs fn with a toolkit bound to ns and tags its error with the
// node and operation.
func (m *Manager) inNamespace(ns Namespace, op string, fn func(nltoolkit.ToolkitInterface) error) error {
	toolkit, err := m.opener.Open(ns.Path)
	if err != nil {
		return errdefs.Command(ns.Node, op, err)
	}
	defer toolkit.Close()
	return errdefs.Command(ns.Node, op, fn(toolkit))
}

func (m *Manager) inHost(op string, fn func(nltoolkit.ToolkitInterface) error) error {
	toolkit, err := m.opener.Host()
	if err != nil {
		return errdefs.Command(hostNode, op, err)
	}
	defer toolkit.Close()
	return errdefs.Command(hostNode, op, fn(toolkit))
}

func setUp(toolkit nltoolkit.ToolkitInterface, name string) error {
	link, err := toolkit.LinkByName(name)
	if err != nil {
		return fmt.Errorf("error getting link %s: %w", name, err)
	}
	if err := toolkit.LinkSetUp(link); err != nil {
		return fmt.Errorf("error setting link %s up: %w", name, err)
	}
	return nil
}

func addLink(toolkit nltoolkit.ToolkitInterface, link netlink.Link) error {
	if err := toolkit.LinkAdd(link); err != nil {
		return fmt.Errorf("error adding link %s: %w", link.Attrs().Name, err)
	}
	return nil
}

func (m *Manager) AddDummy(ns Namespace, name string, hwaddr net.HardwareAddr) error {
	m.logger.V(1).Info("adding dummy", "node", ns.Node, "interface", name, "mac", hwaddr.String())
	return m.inNamespace(ns, "add dummy "+name, func(toolkit nltoolkit.ToolkitInterface) error {
		dummy := &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: name, HardwareAddr: hwaddr}}
		if err := addLink(toolkit, dummy); err != nil {
			return err
		}
		return setUp(toolkit, name)
	})
}

// AddBond creates a round-robin bond enslaving members.
func (m *Manager) AddBond(ns Namespace, name string, hwaddr net.HardwareAddr, members []string) error {
	m.logger.V(1).Info("adding bond", "node", ns.Node, "interface", name, "members", members)
	return m.inNamespace(ns, "add bond "+name, func(toolkit nltoolkit.ToolkitInterface) error {
		bond := netlink.NewLinkBond(netlink.LinkAttrs{Name: name, HardwareAddr: hwaddr})
		bond.Mode = netlink.BOND_MODE_BALANCE_RR
		bond.Miimon = bondMiimon
		if err := addLink(toolkit, bond); err != nil {
			return err
		}
		master, err := toolkit.LinkByName(name)
		if err != nil {
			return fmt.Errorf("error getting bond %s: %w", name, err)
		}
		for _, member := range members {
			link, err := toolkit.LinkByName(member)
			if err != nil {
				return fmt.Errorf("error getting bond member %s: %w", member, err)
			}
			// enslaving requires the member to be down
			if err := toolkit.LinkSetDown(link); err != nil {
				return fmt.Errorf("error setting bond member %s down: %w", member, err)
			}
			if err := toolkit.LinkSetMaster(link, master); err != nil {
				return fmt.Errorf("error adding %s to bond %s: %w", member, name, err)
			}
		}
		if err := toolkit.LinkSetUp(master); err != nil {
			return fmt.Errorf("error setting bond %s up: %w", name, err)
		}
		return nil
	})
}

func (m *Manager) AddVLAN(ns Namespace, name, parent string, vid int) error {
	m.logger.V(1).Info("adding vlan", "node", ns.Node, "interface", name, "parent", parent, "vid", vid)
	return m.inNamespace(ns, "add vlan "+name, func(toolkit nltoolkit.ToolkitInterface) error {
		link, err := toolkit.LinkByName(parent)
		if err != nil {
			return fmt.Errorf("error getting vlan parent %s: %w", parent, err)
		}
		vlan := &netlink.Vlan{
			LinkAttrs: netlink.LinkAttrs{Name: name, ParentIndex: link.Attrs().Index},
			VlanId:    vid,
		}
		if err := addLink(toolkit, vlan); err != nil {
			return err
		}
		return setUp(toolkit, name)
	})
}

// AddBridge creates a bridge inside ns and attaches ports to it.
func (m *Manager) AddBridge(ns Namespace, name string, ports []string) error {
	m.logger.V(1).Info("adding bridge", "node", ns.Node, "bridge", name, "ports", ports)
	return m.inNamespace(ns, "add bridge "+name, func(toolkit nltoolkit.ToolkitInterface) error {
		return addBridge(toolkit, name, ports)
	})
}

func addBridge(toolkit nltoolkit.ToolkitInterface, name string, ports []string) error {
	if err := addLink(toolkit, &netlink.Bridge{LinkAttrs: netlink.LinkAttrs{Name: name}}); err != nil {
		return err
	}
	bridge, err := toolkit.LinkByName(name)
	if err != nil {
		return fmt.Errorf("error getting bridge %s: %w", name, err)
	}
	for _, port := range ports {
		link, err := toolkit.LinkByName(port)
		if err != nil {
			return fmt.Errorf("error getting bridge port %s: %w", port, err)
		}
		if err := toolkit.LinkSetMaster(link, bridge); err != nil {
			return fmt.Errorf("error adding %s to bridge %s: %w", port, name, err)
		}
	}
	if err := toolkit.LinkSetUp(bridge); err != nil {
		return fmt.Errorf("error setting bridge %s up: %w", name, err)
	}
	return nil
}

// AddWire joins a and b with a veth pair. Both ends are created in the host
// namespace as <name>a and <name>b and renamed once moved into their node.
func (m *Manager) AddWire(name string, a, b Endpoint) error {
	m.logger.V(1).Info("adding wire", "a", a.Node+"/"+a.Interface, "b", b.Node+"/"+b.Interface)
	ends := [2]string{name + "a", name + "b"}
	err := m.inHost("add wire "+name, func(toolkit nltoolkit.ToolkitInterface) error {
		veth := &netlink.Veth{LinkAttrs: netlink.LinkAttrs{Name: ends[0]}, PeerName: ends[1]}
		if err := addLink(toolkit, veth); err != nil {
			return err
		}
		for i, end := range []Endpoint{a, b} {
			if err := moveLink(toolkit, ends[i], end.NSPath); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	for i, end := range []Endpoint{a, b} {
		if err := m.configureEnd(ends[i], end); err != nil {
			return err
		}
	}
	return nil
}

// AddHostBridge creates a bridge in the host namespace.
func (m *Manager) AddHostBridge(name string) error {
	m.logger.V(1).Info("adding host bridge", "bridge", name)
	return m.inHost("add bridge "+name, func(toolkit nltoolkit.ToolkitInterface) error {
		return addBridge(toolkit, name, nil)
	})
}

// AttachToBridge connects end to the host bridge with a veth pair whose host
// side is named <bridge>.<port>.
func (m *Manager) AttachToBridge(bridge string, port int, end Endpoint) error {
	hostSide := fmt.Sprintf("%s.%d", bridge, port)
	peer := hostSide + peerSuffix
	m.logger.V(1).Info("attaching to bridge", "bridge", bridge, "port", hostSide, "endpoint", end.Node+"/"+end.Interface)
	err := m.inHost("attach "+end.Interface+" to "+bridge, func(toolkit nltoolkit.ToolkitInterface) error {
		veth := &netlink.Veth{LinkAttrs: netlink.LinkAttrs{Name: hostSide}, PeerName: peer}
		if err := addLink(toolkit, veth); err != nil {
			return err
		}
		master, err := toolkit.LinkByName(bridge)
		if err != nil {
			return fmt.Errorf("error getting bridge %s: %w", bridge, err)
		}
		link, err := toolkit.LinkByName(hostSide)
		if err != nil {
			return fmt.Errorf("error getting link %s: %w", hostSide, err)
		}
		if err := toolkit.LinkSetMaster(link, master); err != nil {
			return fmt.Errorf("error adding %s to bridge %s: %w", hostSide, bridge, err)
		}
		if err := toolkit.LinkSetUp(link); err != nil {
			return fmt.Errorf("error setting link %s up: %w", hostSide, err)
		}
		return moveLink(toolkit, peer, end.NSPath)
	})
	if err != nil {
		return err
	}
	return m.configureEnd(peer, end)
}

func moveLink(toolkit nltoolkit.ToolkitInterface, name, path string) error {
	link, err := toolkit.LinkByName(name)
	if err != nil {
		return fmt.Errorf("error getting link %s: %w", name, err)
	}
	if err := toolkit.LinkSetNsPath(link, path); err != nil {
		return fmt.Errorf("error moving link %s to %s: %w", name, path, err)
	}
	return nil
}

// configureEnd renames the moved link current to the endpoint interface,
// applies its addresses and sets it up.
func (m *Manager) configureEnd(current string, end Endpoint) error {
	ns := Namespace{Node: end.Node, Path: end.NSPath}
	return m.inNamespace(ns, "configure "+end.Interface, func(toolkit nltoolkit.ToolkitInterface) error {
		link, err := toolkit.LinkByName(current)
		if err != nil {
			return fmt.Errorf("error getting link %s: %w", current, err)
		}
		if err := toolkit.LinkSetName(link, end.Interface); err != nil {
			return fmt.Errorf("error renaming %s to %s: %w", current, end.Interface, err)
		}
		if end.HardwareAddr != nil {
			if err := toolkit.LinkSetHardwareAddr(link, end.HardwareAddr); err != nil {
				return fmt.Errorf("error setting hardware address of %s: %w", end.Interface, err)
			}
		}
		if end.Address.IsValid() {
			addr := &netlink.Addr{IPNet: &net.IPNet{
				IP:   end.Address.Addr().AsSlice(),
				Mask: net.CIDRMask(end.Address.Bits(), end.Address.Addr().BitLen()),
			}}
			if err := toolkit.AddrAdd(link, addr); err != nil {
				return fmt.Errorf("error adding address %s to %s: %w", end.Address, end.Interface, err)
			}
		}
		if err := toolkit.LinkSetUp(link); err != nil {
			return fmt.Errorf("error setting link %s up: %w", end.Interface, err)
		}
		return nil
	})
}

// DeleteHostBridges removes every host bridge whose name starts with prefix
// and returns the names of the removed bridges.
func (m *Manager) DeleteHostBridges(prefix string) ([]string, error) {
	deleted := []string{}
	err := m.inHost("delete bridges "+prefix+"*", func(toolkit nltoolkit.ToolkitInterface) error {
		links, err := toolkit.LinkList()
		if err != nil {
			return fmt.Errorf("error listing links: %w", err)
		}
		for _, link := range links {
			if _, ok := link.(*netlink.Bridge); !ok || !strings.HasPrefix(link.Attrs().Name, prefix) {
				continue
			}
			if err := toolkit.LinkDel(link); err != nil {
				return fmt.Errorf("error deleting bridge %s: %w", link.Attrs().Name, err)
			}
			deleted = append(deleted, link.Attrs().Name)
		}
		return nil
	})
	if len(deleted) > 0 {
		m.logger.Info("deleted host bridges", "bridges", deleted)
	}
	return deleted, err
}

// ListLinks returns the interfaces of ns with their addresses of any family.
func (m *Manager) ListLinks(ns Namespace) ([]LinkInfo, error) {
	var result []LinkInfo
	err := m.inNamespace(ns, "list links", func(toolkit nltoolkit.ToolkitInterface) error {
		links, err := toolkit.LinkList()
		if err != nil {
			return fmt.Errorf("error listing links: %w", err)
		}
		for _, link := range links {
			info := LinkInfo{
				Name:         link.Attrs().Name,
				Type:         link.Type(),
				HardwareAddr: link.Attrs().HardwareAddr.String(),
				Master:       link.Attrs().MasterIndex,
			}
			addrs, err := toolkit.AddrList(link, unix.AF_UNSPEC)
			if err != nil {
				return fmt.Errorf("error listing addresses of %s: %w", info.Name, err)
			}
			for _, addr := range addrs {
				if prefix, ok := toPrefix(addr.IPNet); ok {
					info.Addresses = append(info.Addresses, prefix)
				}
			}
			result = append(result, info)
		}
		return nil
	})
	return result, err
}

func toPrefix(ipnet *net.IPNet) (netip.Prefix, bool) {
	if ipnet == nil {
		return netip.Prefix{}, false
	}
	addr, ok := netip.AddrFromSlice(ipnet.IP)
	if !ok {
		return netip.Prefix{}, false
	}
	ones, _ := ipnet.Mask.Size()
	return netip.PrefixFrom(addr.Unmap(), ones), true
}
