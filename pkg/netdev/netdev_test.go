package netdev

import (
	"errors"
	"net"
	"net/netip"
	"testing"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/telekom/wireless-transport-emulator/pkg/errdefs"
	mock_nltoolkit "github.com/telekom/wireless-transport-emulator/pkg/nltoolkit/mock"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
	"golang.org/x/sys/unix"
)

var mockctrl *gomock.Controller

const nsPath = "/proc/4242/ns/net"

func TestNetdev(t *testing.T) {
	RegisterFailHandler(Fail)
	mockctrl = gomock.NewController(t)
	defer mockctrl.Finish()
	RunSpecs(t,
		"Netdev Suite")
}

var node = Namespace{Node: "node-1", Path: nsPath}

var _ = Describe("AddDummy()", func() {
	var (
		opener  *mock_nltoolkit.MockOpener
		toolkit *mock_nltoolkit.MockToolkitInterface
		manager *Manager
	)
	BeforeEach(func() {
		opener = mock_nltoolkit.NewMockOpener(mockctrl)
		toolkit = mock_nltoolkit.NewMockToolkitInterface(mockctrl)
		manager = NewManager(opener, logr.Discard())
	})

	It("creates the dummy with its hardware address and sets it up", func() {
		hwaddr := net.HardwareAddr{0, 0, 0, 0, 1, 1}
		opener.EXPECT().Open(nsPath).Return(toolkit, nil)
		toolkit.EXPECT().LinkAdd(gomock.Any()).DoAndReturn(func(link netlink.Link) error {
			dummy, ok := link.(*netlink.Dummy)
			Expect(ok).To(BeTrue())
			Expect(dummy.Name).To(Equal("ety-port-1"))
			Expect(dummy.HardwareAddr).To(Equal(hwaddr))
			return nil
		})
		toolkit.EXPECT().LinkByName("ety-port-1").Return(&netlink.Dummy{}, nil)
		toolkit.EXPECT().LinkSetUp(gomock.Any()).Return(nil)
		toolkit.EXPECT().Close()

		Expect(manager.AddDummy(node, "ety-port-1", hwaddr)).To(Succeed())
	})

	It("reports a failed namespace as external command failure", func() {
		opener.EXPECT().Open(nsPath).Return(nil, errors.New("no such file"))
		err := manager.AddDummy(node, "ety-port-1", nil)
		Expect(errors.Is(err, errdefs.ErrExternalCommandFailed)).To(BeTrue())
		var cmdErr *errdefs.CommandError
		Expect(errors.As(err, &cmdErr)).To(BeTrue())
		Expect(cmdErr.Node).To(Equal("node-1"))
	})

	It("reports a failed link creation", func() {
		opener.EXPECT().Open(nsPath).Return(toolkit, nil)
		toolkit.EXPECT().LinkAdd(gomock.Any()).Return(errors.New("file exists"))
		toolkit.EXPECT().Close()
		err := manager.AddDummy(node, "ety-port-1", nil)
		Expect(errors.Is(err, errdefs.ErrExternalCommandFailed)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("file exists"))
	})
})

var _ = Describe("AddBond()", func() {
	It("creates a round robin bond and enslaves its members", func() {
		opener := mock_nltoolkit.NewMockOpener(mockctrl)
		toolkit := mock_nltoolkit.NewMockToolkitInterface(mockctrl)
		manager := NewManager(opener, logr.Discard())

		bond := &netlink.Bond{LinkAttrs: netlink.LinkAttrs{Name: "mws-a", Index: 10}}
		member := &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: "mwps-a-phys", Index: 9}}
		opener.EXPECT().Open(nsPath).Return(toolkit, nil)
		gomock.InOrder(
			toolkit.EXPECT().LinkAdd(gomock.Any()).DoAndReturn(func(link netlink.Link) error {
				created, ok := link.(*netlink.Bond)
				Expect(ok).To(BeTrue())
				Expect(created.Mode).To(Equal(netlink.BOND_MODE_BALANCE_RR))
				Expect(created.Miimon).To(Equal(100))
				return nil
			}),
			toolkit.EXPECT().LinkByName("mws-a").Return(bond, nil),
			toolkit.EXPECT().LinkByName("mwps-a-phys").Return(member, nil),
			toolkit.EXPECT().LinkSetDown(member).Return(nil),
			toolkit.EXPECT().LinkSetMaster(member, bond).Return(nil),
			toolkit.EXPECT().LinkSetUp(bond).Return(nil),
			toolkit.EXPECT().Close(),
		)

		Expect(manager.AddBond(node, "mws-a", nil, []string{"mwps-a-phys"})).To(Succeed())
	})

	It("fails when a member is missing", func() {
		opener := mock_nltoolkit.NewMockOpener(mockctrl)
		toolkit := mock_nltoolkit.NewMockToolkitInterface(mockctrl)
		manager := NewManager(opener, logr.Discard())

		opener.EXPECT().Open(nsPath).Return(toolkit, nil)
		toolkit.EXPECT().LinkAdd(gomock.Any()).Return(nil)
		toolkit.EXPECT().LinkByName("mws-a").Return(&netlink.Bond{}, nil)
		toolkit.EXPECT().LinkByName("mwps-x").Return(nil, errors.New("link not found"))
		toolkit.EXPECT().Close()

		err := manager.AddBond(node, "mws-a", nil, []string{"mwps-x"})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("mwps-x"))
	})
})

var _ = Describe("AddVLAN()", func() {
	It("creates the vlan on top of its parent", func() {
		opener := mock_nltoolkit.NewMockOpener(mockctrl)
		toolkit := mock_nltoolkit.NewMockToolkitInterface(mockctrl)
		manager := NewManager(opener, logr.Discard())

		opener.EXPECT().Open(nsPath).Return(toolkit, nil)
		toolkit.EXPECT().LinkByName("ety-port-1").Return(&netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Index: 7}}, nil)
		toolkit.EXPECT().LinkAdd(gomock.Any()).DoAndReturn(func(link netlink.Link) error {
			vlan, ok := link.(*netlink.Vlan)
			Expect(ok).To(BeTrue())
			Expect(vlan.ParentIndex).To(Equal(7))
			Expect(vlan.VlanId).To(Equal(0))
			Expect(vlan.Name).To(Equal("eth-ctp-port"))
			return nil
		})
		toolkit.EXPECT().LinkByName("eth-ctp-port").Return(&netlink.Vlan{}, nil)
		toolkit.EXPECT().LinkSetUp(gomock.Any()).Return(nil)
		toolkit.EXPECT().Close()

		Expect(manager.AddVLAN(node, "eth-ctp-port", "ety-port-1", 0)).To(Succeed())
	})
})

var _ = Describe("AddBridge()", func() {
	It("attaches every port", func() {
		opener := mock_nltoolkit.NewMockOpener(mockctrl)
		toolkit := mock_nltoolkit.NewMockToolkitInterface(mockctrl)
		manager := NewManager(opener, logr.Discard())

		bridge := &netlink.Bridge{LinkAttrs: netlink.LinkAttrs{Name: "xconn_br1"}}
		opener.EXPECT().Open(nsPath).Return(toolkit, nil)
		toolkit.EXPECT().LinkAdd(gomock.Any()).Return(nil)
		toolkit.EXPECT().LinkByName("xconn_br1").Return(bridge, nil)
		toolkit.EXPECT().LinkByName("eth-ctp-radio").Return(&netlink.Vlan{}, nil)
		toolkit.EXPECT().LinkByName("eth-ctp-port").Return(&netlink.Vlan{}, nil)
		toolkit.EXPECT().LinkSetMaster(gomock.Any(), bridge).Return(nil).Times(2)
		toolkit.EXPECT().LinkSetUp(bridge).Return(nil)
		toolkit.EXPECT().Close()

		Expect(manager.AddBridge(node, "xconn_br1", []string{"eth-ctp-radio", "eth-ctp-port"})).To(Succeed())
	})
})

var _ = Describe("AddWire()", func() {
	It("moves both veth ends into their nodes and renames them", func() {
		opener := mock_nltoolkit.NewMockOpener(mockctrl)
		host := mock_nltoolkit.NewMockToolkitInterface(mockctrl)
		nodeA := mock_nltoolkit.NewMockToolkitInterface(mockctrl)
		nodeB := mock_nltoolkit.NewMockToolkitInterface(mockctrl)
		manager := NewManager(opener, logr.Discard())

		a := Endpoint{Node: "node-1", NSPath: "/proc/1/ns/net", Interface: "mwps-a-phys", HardwareAddr: net.HardwareAddr{0, 0, 0, 0, 1, 1}}
		b := Endpoint{Node: "node-2", NSPath: "/proc/2/ns/net", Interface: "mwps-b-phys"}

		opener.EXPECT().Host().Return(host, nil)
		host.EXPECT().LinkAdd(gomock.Any()).DoAndReturn(func(link netlink.Link) error {
			veth, ok := link.(*netlink.Veth)
			Expect(ok).To(BeTrue())
			Expect(veth.Name).To(Equal("wtew1a"))
			Expect(veth.PeerName).To(Equal("wtew1b"))
			return nil
		})
		host.EXPECT().LinkByName("wtew1a").Return(&netlink.Veth{}, nil)
		host.EXPECT().LinkSetNsPath(gomock.Any(), "/proc/1/ns/net").Return(nil)
		host.EXPECT().LinkByName("wtew1b").Return(&netlink.Veth{}, nil)
		host.EXPECT().LinkSetNsPath(gomock.Any(), "/proc/2/ns/net").Return(nil)
		host.EXPECT().Close()

		opener.EXPECT().Open("/proc/1/ns/net").Return(nodeA, nil)
		nodeA.EXPECT().LinkByName("wtew1a").Return(&netlink.Veth{}, nil)
		nodeA.EXPECT().LinkSetName(gomock.Any(), "mwps-a-phys").Return(nil)
		nodeA.EXPECT().LinkSetHardwareAddr(gomock.Any(), a.HardwareAddr).Return(nil)
		nodeA.EXPECT().LinkSetUp(gomock.Any()).Return(nil)
		nodeA.EXPECT().Close()

		opener.EXPECT().Open("/proc/2/ns/net").Return(nodeB, nil)
		nodeB.EXPECT().LinkByName("wtew1b").Return(&netlink.Veth{}, nil)
		nodeB.EXPECT().LinkSetName(gomock.Any(), "mwps-b-phys").Return(nil)
		nodeB.EXPECT().LinkSetUp(gomock.Any()).Return(nil)
		nodeB.EXPECT().Close()

		Expect(manager.AddWire("wtew1", a, b)).To(Succeed())
	})

	It("stops when the veth pair cannot be created", func() {
		opener := mock_nltoolkit.NewMockOpener(mockctrl)
		host := mock_nltoolkit.NewMockToolkitInterface(mockctrl)
		manager := NewManager(opener, logr.Discard())

		opener.EXPECT().Host().Return(host, nil)
		host.EXPECT().LinkAdd(gomock.Any()).Return(errors.New("file exists"))
		host.EXPECT().Close()

		err := manager.AddWire("wtew1", Endpoint{Node: "node-1"}, Endpoint{Node: "node-2"})
		Expect(errors.Is(err, errdefs.ErrExternalCommandFailed)).To(BeTrue())
	})
})

var _ = Describe("AttachToBridge()", func() {
	It("plugs the endpoint into the host bridge with its address", func() {
		opener := mock_nltoolkit.NewMockOpener(mockctrl)
		host := mock_nltoolkit.NewMockToolkitInterface(mockctrl)
		ns := mock_nltoolkit.NewMockToolkitInterface(mockctrl)
		manager := NewManager(opener, logr.Discard())

		bridge := &netlink.Bridge{LinkAttrs: netlink.LinkAttrs{Name: "oywe-br-1"}}
		hostSide := &netlink.Veth{LinkAttrs: netlink.LinkAttrs{Name: "oywe-br-1.1"}}
		end := Endpoint{
			Node: "node-1", NSPath: nsPath, Interface: "ety-port-1",
			Address: netip.MustParsePrefix("10.10.0.1/30"),
		}

		opener.EXPECT().Host().Return(host, nil)
		host.EXPECT().LinkAdd(gomock.Any()).DoAndReturn(func(link netlink.Link) error {
			Expect(link.(*netlink.Veth).PeerName).To(Equal("oywe-br-1.1p"))
			return nil
		})
		host.EXPECT().LinkByName("oywe-br-1").Return(bridge, nil)
		host.EXPECT().LinkByName("oywe-br-1.1").Return(hostSide, nil)
		host.EXPECT().LinkSetMaster(hostSide, bridge).Return(nil)
		host.EXPECT().LinkSetUp(hostSide).Return(nil)
		host.EXPECT().LinkByName("oywe-br-1.1p").Return(&netlink.Veth{}, nil)
		host.EXPECT().LinkSetNsPath(gomock.Any(), nsPath).Return(nil)
		host.EXPECT().Close()

		opener.EXPECT().Open(nsPath).Return(ns, nil)
		ns.EXPECT().LinkByName("oywe-br-1.1p").Return(&netlink.Veth{}, nil)
		ns.EXPECT().LinkSetName(gomock.Any(), "ety-port-1").Return(nil)
		ns.EXPECT().AddrAdd(gomock.Any(), gomock.Any()).DoAndReturn(func(_ netlink.Link, addr *netlink.Addr) error {
			Expect(addr.IPNet.String()).To(Equal("10.10.0.1/30"))
			return nil
		})
		ns.EXPECT().LinkSetUp(gomock.Any()).Return(nil)
		ns.EXPECT().Close()

		Expect(manager.AttachToBridge("oywe-br-1", 1, end)).To(Succeed())
	})
})

var _ = Describe("DeleteHostBridges()", func() {
	It("removes only bridges carrying the prefix", func() {
		opener := mock_nltoolkit.NewMockOpener(mockctrl)
		host := mock_nltoolkit.NewMockToolkitInterface(mockctrl)
		manager := NewManager(opener, logr.Discard())

		ours := &netlink.Bridge{LinkAttrs: netlink.LinkAttrs{Name: "oywe-br-3"}}
		opener.EXPECT().Host().Return(host, nil)
		host.EXPECT().LinkList().Return([]netlink.Link{
			ours,
			&netlink.Bridge{LinkAttrs: netlink.LinkAttrs{Name: "docker0"}},
			&netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: "oywe-br-dummy"}},
		}, nil)
		host.EXPECT().LinkDel(ours).Return(nil)
		host.EXPECT().Close()

		deleted, err := manager.DeleteHostBridges("oywe-br-")
		Expect(err).ToNot(HaveOccurred())
		Expect(deleted).To(Equal([]string{"oywe-br-3"}))
	})
})

var _ = Describe("ListLinks()", func() {
	It("returns links with their addresses", func() {
		opener := mock_nltoolkit.NewMockOpener(mockctrl)
		toolkit := mock_nltoolkit.NewMockToolkitInterface(mockctrl)
		manager := NewManager(opener, logr.Discard())

		link := &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: "ety-port-1", HardwareAddr: net.HardwareAddr{0, 0, 0, 0, 1, 1}}}
		opener.EXPECT().Open(nsPath).Return(toolkit, nil)
		toolkit.EXPECT().LinkList().Return([]netlink.Link{link}, nil)
		toolkit.EXPECT().AddrList(link, unix.AF_UNSPEC).Return([]netlink.Addr{{
			IPNet: &net.IPNet{IP: net.IPv4(10, 10, 0, 1), Mask: net.CIDRMask(30, 32)},
		}}, nil)
		toolkit.EXPECT().Close()

		links, err := manager.ListLinks(node)
		Expect(err).ToNot(HaveOccurred())
		Expect(links).To(Equal([]LinkInfo{{
			Name:         "ety-port-1",
			Type:         "dummy",
			HardwareAddr: "00:00:00:00:01:01",
			Addresses:    []netip.Prefix{netip.MustParsePrefix("10.10.0.1/30")},
		}}))
	})
})
