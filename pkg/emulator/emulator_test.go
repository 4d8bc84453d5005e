package emulator

import (
	"context"
	"errors"
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/telekom/wireless-transport-emulator/api/v1alpha1"
	"github.com/telekom/wireless-transport-emulator/pkg/config"
	"github.com/telekom/wireless-transport-emulator/pkg/document"
	"github.com/telekom/wireless-transport-emulator/pkg/errdefs"
	"github.com/telekom/wireless-transport-emulator/pkg/model"
	"github.com/telekom/wireless-transport-emulator/pkg/netdev"
	mock_netdev "github.com/telekom/wireless-transport-emulator/pkg/netdev/mock"
	"github.com/telekom/wireless-transport-emulator/pkg/runtime"
	"go.uber.org/mock/gomock"
)

var mockctrl *gomock.Controller

func TestEmulator(t *testing.T) {
	RegisterFailHandler(Fail)
	mockctrl = gomock.NewController(t)
	defer mockctrl.Finish()
	RunSpecs(t,
		"Emulator Suite")
}

func netnsPath(name string) string {
	return "/run/netns/" + name
}

type fakeRuntime struct {
	nodes      []*runtime.Node
	containers []string
	err        error
}

func (f *fakeRuntime) Provision(_ context.Context, node *runtime.Node) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.nodes = append(f.nodes, node)
	return netnsPath(node.Name), nil
}

func (*fakeRuntime) NamespacePath(_ context.Context, name string) (string, error) {
	return netnsPath(name), nil
}

func (f *fakeRuntime) Cleanup(context.Context) ([]string, error) {
	return f.containers, f.err
}

type fakeRegistrar struct {
	registered   map[string]string
	unregistered []string
	err          error
}

func newFakeRegistrar() *fakeRegistrar {
	return &fakeRegistrar{registered: map[string]string{}}
}

func (f *fakeRegistrar) Register(_ context.Context, nodeID, host string) error {
	f.registered[nodeID] = host
	return f.err
}

func (f *fakeRegistrar) Unregister(_ context.Context, nodeID string) error {
	f.unregistered = append(f.unregistered, nodeID)
	return f.err
}

func loadTopology() *v1alpha1.TopologyDeclaration {
	topology, err := v1alpha1.LoadTopology("../../api/v1alpha1/testdata/topology.json")
	Expect(err).ToNot(HaveOccurred())
	return topology
}

func newEmulator(declaration *v1alpha1.TopologyDeclaration, devices netdev.Interface, rt runtime.Interface) *Emulator {
	e, err := New(declaration, config.Default(), Options{Runtime: rt, Netdev: devices}, logr.Discard())
	Expect(err).ToNot(HaveOccurred())
	return e
}

func namespaceOf(node string) netdev.Namespace {
	return netdev.Namespace{Node: node, Path: netnsPath(node)}
}

func endpointOf(e *Emulator, node, ltp, address string) netdev.Endpoint {
	tp := e.NetworkElement(node).TerminationPointByID(ltp)
	Expect(tp).ToNot(BeNil())
	end := netdev.Endpoint{Node: node, NSPath: netnsPath(node), Interface: tp.Name(), HardwareAddr: tp.HardwareAddr}
	if address != "" {
		end.Address = netip.MustParsePrefix(address)
	}
	return end
}

func tempDir() string {
	dir, err := os.MkdirTemp("", "wte-emulator")
	Expect(err).ToNot(HaveOccurred())
	return dir
}

func point(e *Emulator, node, ltp string) *model.TerminationPoint {
	return e.NetworkElement(node).TerminationPointByID(ltp)
}

var _ = Describe("Build phases", func() {
	var e *Emulator
	BeforeEach(func() {
		e = newEmulator(loadTopology(), mock_netdev.NewMockInterface(mockctrl), &fakeRuntime{})
	})

	It("starts uninitialized", func() {
		Expect(e.Phase()).To(Equal(Uninitialized))
		Expect(e.Phase().String()).To(Equal("Uninitialized"))
		Expect(e.Stats().Phase).To(BeEmpty())
	})

	It("rejects steps invoked out of order", func() {
		Expect(errors.Is(e.CreateTopologies(), errdefs.ErrInvalidPhase)).To(BeTrue())
		Expect(errors.Is(e.BuildTopologies(context.Background()), errdefs.ErrInvalidPhase)).To(BeTrue())
		Expect(errors.Is(e.RealizeNodeResources(context.Background()), errdefs.ErrInvalidPhase)).To(BeTrue())
		_, err := e.Render(os.TempDir())
		Expect(errors.Is(err, errdefs.ErrInvalidPhase)).To(BeTrue())
		_, err = e.Islands()
		Expect(errors.Is(err, errdefs.ErrInvalidPhase)).To(BeTrue())
	})

	It("never moves backwards", func() {
		Expect(e.CreateNetworkElements()).To(Succeed())
		Expect(e.Phase()).To(Equal(ElementsCreated))
		Expect(errors.Is(e.CreateNetworkElements(), errdefs.ErrInvalidPhase)).To(BeTrue())
		Expect(e.NetworkElements()).To(HaveLen(2))
	})

	It("requires topologies to be created before they are built", func() {
		Expect(e.CreateNetworkElements()).To(Succeed())
		Expect(errors.Is(e.BuildTopologies(context.Background()), errdefs.ErrInvalidPhase)).To(BeTrue())
		Expect(e.Phase()).To(Equal(ElementsCreated))
	})
})

var _ = Describe("CreateNetworkElements()", func() {
	It("creates the elements in declaration order", func() {
		e := newEmulator(loadTopology(), nil, nil)
		Expect(e.CreateNetworkElements()).To(Succeed())
		elements := e.NetworkElements()
		Expect(elements).To(HaveLen(2))
		Expect(elements[0].UUID).To(Equal("node-1"))
		Expect(elements[0].Seq).To(Equal(1))
		Expect(elements[1].Seq).To(Equal(2))
		Expect(elements[1].ManagementIP.String()).To(Equal("192.168.0.5"))
	})

	It("rejects duplicate uuids", func() {
		topology := loadTopology()
		topology.NetworkElements[1].NetworkElement.UUID = "node-1"
		e := newEmulator(topology, nil, nil)
		Expect(errors.Is(e.CreateNetworkElements(), errdefs.ErrMalformedDeclaration)).To(BeTrue())
		Expect(e.NetworkElements()).To(BeEmpty())
		Expect(e.Phase()).To(Equal(Uninitialized))
	})

	It("rejects uuids that map to the same name", func() {
		topology := loadTopology()
		topology.NetworkElements[0].NetworkElement.UUID = "node 1"
		topology.NetworkElements[1].NetworkElement.UUID = "node1"
		e := newEmulator(topology, nil, nil)
		Expect(errors.Is(e.CreateNetworkElements(), errdefs.ErrMalformedDeclaration)).To(BeTrue())
		Expect(e.NetworkElements()).To(BeEmpty())
		Expect(e.Phase()).To(Equal(Uninitialized))
	})

	It("keeps no element when a cross connect end is not an Ethernet point", func() {
		topology := loadTopology()
		topology.NetworkElements[0].NetworkElement.EthCrossConnections[0].FCPorts[1].LTP = "port-1"
		e := newEmulator(topology, nil, nil)

		Expect(errors.Is(e.CreateNetworkElements(), errdefs.ErrMalformedDeclaration)).To(BeTrue())
		Expect(e.NetworkElements()).To(BeEmpty())

		dir := tempDir()
		defer os.RemoveAll(dir)
		_, err := e.Render(dir)
		Expect(errors.Is(err, errdefs.ErrInvalidPhase)).To(BeTrue())
		entries, err := os.ReadDir(dir)
		Expect(err).ToNot(HaveOccurred())
		Expect(entries).To(BeEmpty())
	})
})

var _ = Describe("CreateTopologies()", func() {
	var topology *v1alpha1.TopologyDeclaration
	BeforeEach(func() {
		topology = loadTopology()
	})

	create := func() (*Emulator, error) {
		e := newEmulator(topology, mock_netdev.NewMockInterface(mockctrl), &fakeRuntime{})
		Expect(e.CreateNetworkElements()).To(Succeed())
		return e, e.CreateTopologies()
	}

	It("validates every declared link", func() {
		e, err := create()
		Expect(err).ToNot(HaveOccurred())
		Expect(e.Topologies()).To(HaveLen(2))
		Expect(e.Topologies()[0].Name).To(Equal(PhysicalSignalTopology))
		Expect(e.Topologies()[0].Strategy).To(Equal(DirectWiring))
		Expect(e.Topologies()[1].Strategy).To(Equal(AddressedWiring))
		By("realizing nothing yet")
		Expect(e.Topologies()[0].Links()).To(BeEmpty())
	})

	It("fails on an unknown end without touching the elements", func() {
		topology.Topologies.ETH.Links[0][1].UUID = "node-9"
		e := newEmulator(topology, mock_netdev.NewMockInterface(mockctrl), &fakeRuntime{})
		Expect(e.CreateNetworkElements()).To(Succeed())
		before1 := len(e.NetworkElement("node-1").TerminationPoints())
		before2 := len(e.NetworkElement("node-2").TerminationPoints())

		Expect(errors.Is(e.CreateTopologies(), errdefs.ErrUnresolvedReference)).To(BeTrue())
		Expect(e.NetworkElement("node-1").TerminationPoints()).To(HaveLen(before1))
		Expect(e.NetworkElement("node-2").TerminationPoints()).To(HaveLen(before2))
		Expect(point(e, "node-1", "ctp-port").Clients).To(BeEmpty())
		Expect(e.Topologies()).To(BeEmpty())
	})

	It("fails on an unknown termination point", func() {
		topology.Topologies.MWPS.Links[0][0].LTP = "missing"
		_, err := create()
		Expect(errors.Is(err, errdefs.ErrUnresolvedReference)).To(BeTrue())
	})

	It("requires exactly two ends", func() {
		topology.Topologies.MWPS.Links[0] = topology.Topologies.MWPS.Links[0][:1]
		_, err := create()
		Expect(errors.Is(err, errdefs.ErrMalformedDeclaration)).To(BeTrue())
	})

	It("rejects ends of a layer the topology does not carry", func() {
		topology.Topologies.MWPS.Links[0] = v1alpha1.LinkSpec{{UUID: "node-1", LTP: "port-1"}, {UUID: "node-2", LTP: "port-1"}}
		_, err := create()
		Expect(errors.Is(err, errdefs.ErrMalformedDeclaration)).To(BeTrue())
	})

	It("rejects ends of different layers", func() {
		topology.Topologies.ETH.Links[0][1].LTP = "port-1"
		_, err := create()
		Expect(errors.Is(err, errdefs.ErrMalformedDeclaration)).To(BeTrue())
	})

	It("rejects a termination point ending two links", func() {
		topology.Topologies.MWPS.Links = append(topology.Topologies.MWPS.Links, topology.Topologies.MWPS.Links[0])
		_, err := create()
		Expect(errors.Is(err, errdefs.ErrMalformedDeclaration)).To(BeTrue())
	})
})

var _ = Describe("BuildTopologies()", func() {
	var (
		topology *v1alpha1.TopologyDeclaration
		devices  *mock_netdev.MockInterface
	)
	BeforeEach(func() {
		topology = loadTopology()
		devices = mock_netdev.NewMockInterface(mockctrl)
	})

	prepare := func() *Emulator {
		e := newEmulator(topology, devices, &fakeRuntime{})
		Expect(e.CreateNetworkElements()).To(Succeed())
		Expect(e.CreateTopologies()).To(Succeed())
		return e
	}

	It("wires a physical signal link directly and marks its ends in use", func() {
		topology.Topologies.ETH.Links = nil
		e := prepare()
		devices.EXPECT().AddWire("wtew1",
			endpointOf(e, "node-1", "a-phys", ""),
			endpointOf(e, "node-2", "b-phys", ""),
		).Return(nil)

		Expect(e.BuildTopologies(context.Background())).To(Succeed())
		Expect(e.Phase()).To(Equal(TopologiesBuilt))

		links := e.Topologies()[0].Links()
		Expect(links).To(HaveLen(1))
		Expect(links[0].ID).To(Equal(1))
		Expect(e.IsTerminationPointInUse(point(e, "node-1", "a-phys"))).To(BeTrue())
		Expect(e.IsTerminationPointInUse(point(e, "node-2", "b-phys"))).To(BeTrue())
		Expect(e.IsTerminationPointInUse(point(e, "node-1", "a"))).To(BeFalse())

		By("leaving both points out of the wiring plan")
		plan, err := e.WiringPlan(e.NetworkElement("node-2"))
		Expect(err).ToNot(HaveOccurred())
		Expect(plan).To(ConsistOf(point(e, "node-2", "port-1"), point(e, "node-2", "ctp-port")))
	})

	It("addresses an Ethernet link through a host bridge", func() {
		topology.Topologies.MWPS.Links = nil
		e := prepare()
		gomock.InOrder(
			devices.EXPECT().AddHostBridge("oywe-br-1").Return(nil),
			devices.EXPECT().AttachToBridge("oywe-br-1", 1, endpointOf(e, "node-1", "ctp-port", "10.10.0.1/30")).Return(nil),
			devices.EXPECT().AttachToBridge("oywe-br-1", 2, endpointOf(e, "node-2", "ctp-port", "10.10.0.2/30")).Return(nil),
		)

		Expect(e.BuildTopologies(context.Background())).To(Succeed())
		links := e.Topologies()[1].Links()
		Expect(links).To(HaveLen(1))
		Expect(links[0].Subnet).To(Equal(netip.MustParsePrefix("10.10.0.0/30")))
		Expect(e.Pools().Interface.Allocated()).To(Equal(1))
	})

	It("returns the subnet when an end cannot be attached", func() {
		topology.Topologies.MWPS.Links = nil
		e := prepare()
		free := e.Pools().Interface.Free()
		devices.EXPECT().AddHostBridge("oywe-br-1").Return(nil)
		devices.EXPECT().AttachToBridge("oywe-br-1", 1, gomock.Any()).Return(nil)
		devices.EXPECT().AttachToBridge("oywe-br-1", 2, gomock.Any()).
			Return(errdefs.Command("node-2", "attach", errors.New("exit status 1")))

		err := e.BuildTopologies(context.Background())
		Expect(errors.Is(err, errdefs.ErrExternalCommandFailed)).To(BeTrue())
		Expect(e.Pools().Interface.Allocated()).To(BeZero())
		Expect(e.Pools().Interface.Free()).To(Equal(free))
		Expect(e.Topologies()[1].Links()).To(BeEmpty())
		Expect(e.Phase()).To(Equal(ElementsCreated))
	})

	It("numbers links across topologies", func() {
		e := prepare()
		devices.EXPECT().AddWire("wtew1", gomock.Any(), gomock.Any()).Return(nil)
		devices.EXPECT().AddHostBridge("oywe-br-2").Return(nil)
		devices.EXPECT().AttachToBridge("oywe-br-2", gomock.Any(), gomock.Any()).Return(nil).Times(2)

		Expect(e.BuildTopologies(context.Background())).To(Succeed())
		Expect(e.Topologies()[1].Links()[0].ID).To(Equal(2))

		islands, err := e.Islands()
		Expect(err).ToNot(HaveOccurred())
		Expect(islands).To(Equal([][]string{{"node-1", "node-2"}}))
	})

	It("keeps unlinked nodes on islands of their own", func() {
		topology.Topologies.MWPS.Links = nil
		topology.Topologies.ETH.Links = nil
		e := prepare()
		Expect(e.BuildTopologies(context.Background())).To(Succeed())
		islands, err := e.Islands()
		Expect(err).ToNot(HaveOccurred())
		Expect(islands).To(Equal([][]string{{"node-1"}, {"node-2"}}))
	})
})

var _ = Describe("WiringPlan()", func() {
	It("orders servers before clients", func() {
		e := newEmulator(loadTopology(), nil, nil)
		Expect(e.CreateNetworkElements()).To(Succeed())
		ne := e.NetworkElement("node-1")

		plan, err := e.WiringPlan(ne)
		Expect(err).ToNot(HaveOccurred())
		Expect(plan).To(ConsistOf(ne.TerminationPoints()))
		position := map[*model.TerminationPoint]int{}
		for i, tp := range plan {
			position[tp] = i
		}
		for _, tp := range plan {
			for _, server := range tp.Servers {
				Expect(position[server]).To(BeNumerically("<", position[tp]), "%s before %s", server, tp)
			}
		}
	})
})

var _ = Describe("Start()", func() {
	It("provisions, links and wires every node", func() {
		devices := mock_netdev.NewMockInterface(mockctrl)
		rt := &fakeRuntime{}
		e := newEmulator(loadTopology(), devices, rt)
		Expect(e.CreateNetworkElements()).To(Succeed())
		Expect(e.ProvisionNodes(context.Background())).To(Succeed())

		ns1, ns2 := namespaceOf("node-1"), namespaceOf("node-2")
		wire := devices.EXPECT().AddWire("wtew1", endpointOf(e, "node-1", "a-phys", ""), endpointOf(e, "node-2", "b-phys", "")).Return(nil)
		bridge := devices.EXPECT().AddHostBridge("oywe-br-2").Return(nil).After(wire)
		attachA := devices.EXPECT().AttachToBridge("oywe-br-2", 1, endpointOf(e, "node-1", "ctp-port", "10.10.0.1/30")).Return(nil).After(bridge)
		attachB := devices.EXPECT().AttachToBridge("oywe-br-2", 2, endpointOf(e, "node-2", "ctp-port", "10.10.0.2/30")).Return(nil).After(attachA)

		structure := devices.EXPECT().AddBond(ns1, "mws-a", point(e, "node-1", "a").HardwareAddr, []string{"mwps-a-phys"}).Return(nil).After(attachB)
		container := devices.EXPECT().AddBond(ns1, "etc-a-cont", point(e, "node-1", "a-cont").HardwareAddr, []string{"mws-a"}).Return(nil).After(structure)
		port := devices.EXPECT().AddDummy(ns1, "ety-port-1", point(e, "node-1", "port-1").HardwareAddr).Return(nil).After(attachB)
		vlan := devices.EXPECT().AddVLAN(ns1, "eth-ctp-radio", "etc-a-cont", 0).Return(nil).After(container)
		xconn := devices.EXPECT().AddBridge(ns1, "xconn_br1", []string{"eth-ctp-radio", "eth-ctp-port"}).Return(nil).After(vlan).After(port)
		devices.EXPECT().AddDummy(ns2, "ety-port-1", point(e, "node-2", "port-1").HardwareAddr).Return(nil).After(xconn)

		Expect(e.CreateTopologies()).To(Succeed())
		Expect(e.BuildTopologies(context.Background())).To(Succeed())
		Expect(e.RealizeNodeResources(context.Background())).To(Succeed())
		Expect(e.Phase()).To(Equal(ResourcesRealized))

		stats := e.Stats()
		Expect(stats.Phase).To(Equal("ResourcesRealized"))
		Expect(stats.NetworkElements).To(Equal(2))
		Expect(stats.CrossConnects).To(Equal(1))
		Expect(stats.TerminationPoints).To(Equal(map[string]int{"MWPS": 2, "MWS": 1, "ETC": 1, "ETY": 2, "ETH": 3}))
		Expect(stats.Links).To(Equal(map[string]int{PhysicalSignalTopology: 1, EthernetTopology: 1}))
		Expect(stats.Pools[0].Allocated).To(Equal(2))
		Expect(stats.Pools[1].Allocated).To(Equal(1))
	})

	It("aborts on the first failing device", func() {
		devices := mock_netdev.NewMockInterface(mockctrl)
		topology := loadTopology()
		topology.Topologies.ETH.Links = nil
		e := newEmulator(topology, devices, &fakeRuntime{})
		devices.EXPECT().AddWire(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		devices.EXPECT().AddDummy(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		devices.EXPECT().AddVLAN(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		devices.EXPECT().AddBond(gomock.Any(), "mws-a", gomock.Any(), gomock.Any()).
			Return(errdefs.Command("node-1", "add bond", errors.New("exit status 2")))

		err := e.Start(context.Background())
		Expect(errors.Is(err, errdefs.ErrExternalCommandFailed)).To(BeTrue())
		Expect(e.Phase()).To(Equal(TopologiesBuilt))
	})

	It("aborts when a node cannot be provisioned", func() {
		rt := &fakeRuntime{err: errdefs.Command("node-1", "create container", errors.New("exit status 125"))}
		e := newEmulator(loadTopology(), mock_netdev.NewMockInterface(mockctrl), rt)
		err := e.Start(context.Background())
		Expect(errors.Is(err, errdefs.ErrExternalCommandFailed)).To(BeTrue())
		Expect(e.Phase()).To(Equal(ElementsCreated))
	})
})

var _ = Describe("ProvisionNodes()", func() {
	It("starts a container per node and registers it", func() {
		rt := &fakeRuntime{}
		registrar := newFakeRegistrar()
		registrar.err = errors.New("controller unreachable")
		e, err := New(loadTopology(), config.Default(), Options{Runtime: rt, Registrar: registrar}, logr.Discard())
		Expect(err).ToNot(HaveOccurred())
		Expect(e.CreateNetworkElements()).To(Succeed())

		Expect(e.ProvisionNodes(context.Background())).To(Succeed())
		Expect(rt.nodes).To(HaveLen(2))
		node := rt.nodes[0]
		Expect(node.Name).To(Equal("node-1"))
		Expect(node.Network).To(Equal("wte_net_1"))
		Expect(node.Subnet).To(Equal(netip.MustParsePrefix("192.168.0.0/30")))
		Expect(node.ManagementIP).To(Equal(netip.MustParseAddr("192.168.0.1")))
		Expect(node.Image).To(Equal(config.DefaultImage))
		Expect(node.NetconfPort).To(Equal(config.DefaultNetconfPort))
		Expect(node.Documents).To(HaveKey(document.ConfigFileName))
		Expect(node.Documents).To(HaveKey(document.StateFileName))
		Expect(string(node.Documents[document.ConfigFileName])).To(ContainSubstring("ltp-mwps-a-phys"))

		By("tolerating registration failures")
		Expect(registrar.registered).To(Equal(map[string]string{"node-1": "192.168.0.1", "node-2": "192.168.0.5"}))
	})

	It("needs a runtime", func() {
		e := newEmulator(loadTopology(), nil, nil)
		Expect(e.CreateNetworkElements()).To(Succeed())
		Expect(e.ProvisionNodes(context.Background())).ToNot(Succeed())
	})
})

var _ = Describe("Render()", func() {
	It("writes both documents of every node", func() {
		e := newEmulator(loadTopology(), nil, nil)
		Expect(e.CreateNetworkElements()).To(Succeed())
		dir := tempDir()
		defer os.RemoveAll(dir)

		paths, err := e.Render(dir)
		Expect(err).ToNot(HaveOccurred())
		Expect(paths).To(Equal([]string{
			filepath.Join(dir, "output-config-node-1.xml"),
			filepath.Join(dir, "output-status-node-1.xml"),
			filepath.Join(dir, "output-config-node-2.xml"),
			filepath.Join(dir, "output-status-node-2.xml"),
		}))
		data, err := os.ReadFile(paths[3])
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("ltp-eth-ctp-port"))
	})

	It("renders the same configuration document on its own", func() {
		e := newEmulator(loadTopology(), nil, nil)
		Expect(e.CreateNetworkElements()).To(Succeed())
		dir := tempDir()
		defer os.RemoveAll(dir)

		paths, err := e.Render(dir)
		Expect(err).ToNot(HaveOccurred())
		rendered, err := os.ReadFile(paths[0])
		Expect(err).ToNot(HaveOccurred())
		alone, err := document.Marshal(e.ConfigDocument(e.NetworkElement("node-1")))
		Expect(err).ToNot(HaveOccurred())
		Expect(alone).To(Equal(rendered))
	})
})

var _ = Describe("Cleanup()", func() {
	It("removes containers and bridges and unregisters the nodes", func() {
		devices := mock_netdev.NewMockInterface(mockctrl)
		devices.EXPECT().DeleteHostBridges(BridgePrefix).Return([]string{"oywe-br-1"}, nil)
		registrar := newFakeRegistrar()

		err := Cleanup(context.Background(), &fakeRuntime{containers: []string{"node-1", "node-2"}}, devices, registrar, logr.Discard())
		Expect(err).ToNot(HaveOccurred())
		Expect(registrar.unregistered).To(Equal([]string{"node-1", "node-2"}))
	})

	It("stops when the runtime fails", func() {
		rt := &fakeRuntime{err: errdefs.Command("", "list containers", errors.New("daemon not running"))}
		err := Cleanup(context.Background(), rt, mock_netdev.NewMockInterface(mockctrl), nil, logr.Discard())
		Expect(errors.Is(err, errdefs.ErrExternalCommandFailed)).To(BeTrue())
	})
})
