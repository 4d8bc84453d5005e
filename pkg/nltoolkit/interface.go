//nolint:wrapcheck
package nltoolkit

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"
	"github.com/vishvananda/netns"
)

//go:generate mockgen -destination ./mock/mock_nl.go . ToolkitInterface,Opener
type ToolkitInterface interface {
	LinkByName(name string) (netlink.Link, error)
	LinkList() ([]netlink.Link, error)
	LinkAdd(link netlink.Link) error
	LinkDel(link netlink.Link) error
	LinkSetUp(link netlink.Link) error
	LinkSetDown(link netlink.Link) error
	LinkSetName(link netlink.Link, name string) error
	LinkSetMaster(link netlink.Link, master netlink.Link) error
	LinkSetHardwareAddr(link netlink.Link, hwaddr net.HardwareAddr) error
	LinkSetNsPath(link netlink.Link, path string) error
	AddrAdd(link netlink.Link, addr *netlink.Addr) error
	AddrList(link netlink.Link, family int) ([]netlink.Addr, error)
	Close()
}

// Opener hands out toolkits bound to a network namespace.
type Opener interface {
	// Host returns a toolkit of the namespace the process runs in.
	Host() (ToolkitInterface, error)
	// Open returns a toolkit of the namespace mounted at path.
	Open(path string) (ToolkitInterface, error)
}

// Toolkit issues netlink requests through a handle bound to one namespace.
type Toolkit struct {
	handle *netlink.Handle
}

func (t *Toolkit) LinkByName(name string) (netlink.Link, error) {
	return t.handle.LinkByName(name)
}

func (t *Toolkit) LinkList() ([]netlink.Link, error) {
	return t.handle.LinkList()
}

func (t *Toolkit) LinkAdd(link netlink.Link) error {
	return t.handle.LinkAdd(link)
}

func (t *Toolkit) LinkDel(link netlink.Link) error {
	return t.handle.LinkDel(link)
}

func (t *Toolkit) LinkSetUp(link netlink.Link) error {
	return t.handle.LinkSetUp(link)
}

func (t *Toolkit) LinkSetDown(link netlink.Link) error {
	return t.handle.LinkSetDown(link)
}

func (t *Toolkit) LinkSetName(link netlink.Link, name string) error {
	return t.handle.LinkSetName(link, name)
}

func (t *Toolkit) LinkSetMaster(link, master netlink.Link) error {
	return t.handle.LinkSetMaster(link, master)
}

func (t *Toolkit) LinkSetHardwareAddr(link netlink.Link, hwaddr net.HardwareAddr) error {
	return t.handle.LinkSetHardwareAddr(link, hwaddr)
}

// LinkSetNsPath moves link into the namespace mounted at path.
func (t *Toolkit) LinkSetNsPath(link netlink.Link, path string) error {
	ns, err := netns.GetFromPath(path)
	if err != nil {
		return fmt.Errorf("error opening namespace %s: %w", path, err)
	}
	defer ns.Close()
	return t.handle.LinkSetNsFd(link, int(ns))
}

func (t *Toolkit) AddrAdd(link netlink.Link, addr *netlink.Addr) error {
	return t.handle.AddrAdd(link, addr)
}

func (t *Toolkit) AddrList(link netlink.Link, family int) ([]netlink.Addr, error) {
	return t.handle.AddrList(link, family)
}

func (t *Toolkit) Close() {
	t.handle.Close()
}

// NamespaceOpener is the Opener backed by netlink handles.
type NamespaceOpener struct{}

func (NamespaceOpener) Host() (ToolkitInterface, error) {
	handle, err := netlink.NewHandle()
	if err != nil {
		return nil, fmt.Errorf("error creating netlink handle: %w", err)
	}
	return &Toolkit{handle: handle}, nil
}

func (NamespaceOpener) Open(path string) (ToolkitInterface, error) {
	ns, err := netns.GetFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("error opening namespace %s: %w", path, err)
	}
	defer ns.Close()
	handle, err := netlink.NewHandleAt(ns)
	if err != nil {
		return nil, fmt.Errorf("error creating netlink handle in %s: %w", path, err)
	}
	return &Toolkit{handle: handle}, nil
}
