// Package emulator compiles a topology declaration into network elements,
// their documents and the network devices wiring them together.
package emulator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/go-logr/logr"
	"github.com/telekom/wireless-transport-emulator/api/v1alpha1"
	"github.com/telekom/wireless-transport-emulator/pkg/addrpool"
	"github.com/telekom/wireless-transport-emulator/pkg/config"
	"github.com/telekom/wireless-transport-emulator/pkg/document"
	"github.com/telekom/wireless-transport-emulator/pkg/errdefs"
	"github.com/telekom/wireless-transport-emulator/pkg/model"
	"github.com/telekom/wireless-transport-emulator/pkg/monitoring"
	"github.com/telekom/wireless-transport-emulator/pkg/netdev"
	"github.com/telekom/wireless-transport-emulator/pkg/runtime"
)

var errNoRuntime = errors.New("no container runtime configured")

// Registrar announces nodes to an SDN controller.
type Registrar interface {
	Register(ctx context.Context, nodeID, host string) error
	Unregister(ctx context.Context, nodeID string) error
}

// Options holds the collaborators of an emulator. Runtime and Netdev are
// only needed from ProvisionNodes on, Registrar is optional.
type Options struct {
	Runtime   runtime.Interface
	Netdev    netdev.Interface
	Registrar Registrar
	Generator *document.Generator
}

// Elements indexes network elements by uuid, keeping declaration order.
// Names are unique as well since they name containers and rendered files.
type Elements struct {
	ordered []*model.NetworkElement
	byUUID  map[string]*model.NetworkElement
	byName  map[string]*model.NetworkElement
}

func (el *Elements) add(ne *model.NetworkElement) error {
	if el.byUUID == nil {
		el.byUUID = map[string]*model.NetworkElement{}
		el.byName = map[string]*model.NetworkElement{}
	}
	if _, ok := el.byUUID[ne.UUID]; ok {
		return errdefs.Malformed("duplicate network element %s", ne.UUID)
	}
	if other, ok := el.byName[ne.Name]; ok {
		return errdefs.Malformed("network elements %q and %q share the name %s", other.UUID, ne.UUID, ne.Name)
	}
	el.byUUID[ne.UUID] = ne
	el.byName[ne.Name] = ne
	el.ordered = append(el.ordered, ne)
	return nil
}

// Get returns the element with the given uuid or nil.
func (el *Elements) Get(uuid string) *model.NetworkElement {
	if el == nil {
		return nil
	}
	return el.byUUID[uuid]
}

func (el *Elements) List() []*model.NetworkElement {
	if el == nil {
		return nil
	}
	return append([]*model.NetworkElement(nil), el.ordered...)
}

// Emulator drives the build sequence of one topology. Build steps are
// serialized, Stats may be called concurrently.
type Emulator struct {
	build sync.Mutex

	mu         sync.RWMutex
	phase      Phase
	elements   *Elements
	topologies []*Topology

	declaration *v1alpha1.TopologyDeclaration
	cfg         *config.Config
	pools       *addrpool.Pools
	namespaces  map[string]string
	linkSeq     int

	runtime   runtime.Interface
	netdev    netdev.Interface
	registrar Registrar
	generator *document.Generator
	logger    logr.Logger
}

// New creates an emulator for declaration with its own address pools.
func New(declaration *v1alpha1.TopologyDeclaration, cfg *config.Config, opts Options, logger logr.Logger) (*Emulator, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	logger = logger.WithName("emulator")
	pools, err := addrpool.New(cfg.ManagementIPNetwork, cfg.HostIPNetwork, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating address pools: %w", err)
	}
	generator := opts.Generator
	if generator == nil {
		generator = &document.Generator{NotificationPeriod: cfg.NotificationPeriod}
	}
	return &Emulator{
		declaration: declaration,
		cfg:         cfg,
		pools:       pools,
		namespaces:  map[string]string{},
		runtime:     opts.Runtime,
		netdev:      opts.Netdev,
		registrar:   opts.Registrar,
		generator:   generator,
		logger:      logger,
	}, nil
}

func (e *Emulator) Phase() Phase {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.phase
}

func (e *Emulator) setPhase(phase Phase) {
	e.mu.Lock()
	e.phase = phase
	e.mu.Unlock()
	e.logger.Info("build phase reached", "phase", phase.String())
}

// NetworkElements returns the created elements in declaration order.
func (e *Emulator) NetworkElements() []*model.NetworkElement {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.elements.List()
}

// NetworkElement returns the element with the given uuid or nil.
func (e *Emulator) NetworkElement(uuid string) *model.NetworkElement {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.elements.Get(uuid)
}

func (e *Emulator) Topologies() []*Topology {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]*Topology(nil), e.topologies...)
}

func (e *Emulator) Pools() *addrpool.Pools {
	return e.pools
}

// CreateNetworkElements builds every declared element in declaration order.
// The first failing element aborts the build and no element is kept.
func (e *Emulator) CreateNetworkElements() error {
	e.build.Lock()
	defer e.build.Unlock()
	if phase := e.Phase(); phase != Uninitialized {
		return invalidPhase("creating network elements", Uninitialized, phase)
	}

	links := model.NewLinkIndex(e.declaration.Topologies)
	elements := &Elements{}
	for i := range e.declaration.NetworkElements {
		spec := &e.declaration.NetworkElements[i].NetworkElement
		ne, err := model.Build(spec, i+1, e.pools, links, e.logger)
		if err != nil {
			return fmt.Errorf("error creating network element %d: %w", i+1, err)
		}
		if err := elements.add(ne); err != nil {
			return err
		}
	}

	e.mu.Lock()
	e.elements = elements
	e.mu.Unlock()
	e.setPhase(ElementsCreated)
	return nil
}

// Documents renders the configuration and state documents of ne.
func (e *Emulator) Documents(ne *model.NetworkElement) (*document.ConfigDocument, *document.StateDocument) {
	return e.ConfigDocument(ne), e.generator.State(ne)
}

// ConfigDocument renders only the configuration document of ne.
func (e *Emulator) ConfigDocument(ne *model.NetworkElement) *document.ConfigDocument {
	return e.generator.Config(ne)
}

// Render writes the documents of every element to dir and returns the
// written paths.
func (e *Emulator) Render(dir string) ([]string, error) {
	if phase := e.Phase(); phase < ElementsCreated {
		return nil, invalidPhase("rendering documents", ElementsCreated, phase)
	}
	paths := []string{}
	for _, ne := range e.NetworkElements() {
		configDoc, stateDoc := e.Documents(ne)
		configName, stateName := document.RenderedFileNames(ne.Name)
		for _, file := range []struct {
			name string
			doc  interface{}
		}{{configName, configDoc}, {stateName, stateDoc}} {
			path := filepath.Join(dir, file.name)
			if err := document.WriteFile(path, file.doc); err != nil {
				return nil, err
			}
			paths = append(paths, path)
		}
		e.logger.V(1).Info("rendered documents", "node", ne.Name, "directory", dir)
	}
	return paths, nil
}

// ProvisionNodes starts a container per element with its documents and
// registers it with the controller when a registrar is set. Registration
// failures are logged only.
func (e *Emulator) ProvisionNodes(ctx context.Context) error {
	e.build.Lock()
	defer e.build.Unlock()
	if phase := e.Phase(); phase != ElementsCreated {
		return invalidPhase("provisioning nodes", ElementsCreated, phase)
	}
	if e.runtime == nil {
		return errNoRuntime
	}
	for _, ne := range e.NetworkElements() {
		node, err := e.runtimeNode(ne)
		if err != nil {
			return err
		}
		path, err := e.runtime.Provision(ctx, node)
		if err != nil {
			return fmt.Errorf("error provisioning %s: %w", ne.UUID, err)
		}
		e.namespaces[ne.UUID] = path
		e.logger.Info("provisioned node", "node", ne.Name, "ip", ne.ManagementIP.String(), "netns", path)

		if e.registrar == nil {
			continue
		}
		if err := e.registrar.Register(ctx, ne.UUID, ne.ManagementIP.String()); err != nil {
			e.logger.Error(err, "error registering node with controller", "node", ne.UUID)
		}
	}
	return nil
}

func (e *Emulator) runtimeNode(ne *model.NetworkElement) (*runtime.Node, error) {
	configDoc, stateDoc := e.Documents(ne)
	configData, err := document.Marshal(configDoc)
	if err != nil {
		return nil, fmt.Errorf("error rendering configuration of %s: %w", ne.UUID, err)
	}
	stateData, err := document.Marshal(stateDoc)
	if err != nil {
		return nil, fmt.Errorf("error rendering state of %s: %w", ne.UUID, err)
	}
	return &runtime.Node{
		Name:         ne.Name,
		Network:      ne.NetworkName(),
		Subnet:       ne.ManagementSubnet,
		ManagementIP: ne.ManagementIP,
		Image:        e.cfg.Image(ne.Type),
		NetconfPort:  e.cfg.Netconf.Port,
		Documents: map[string][]byte{
			document.ConfigFileName: configData,
			document.StateFileName:  stateData,
		},
	}, nil
}

// namespace returns the network namespace of ne, asking the runtime for
// nodes that were not provisioned by this emulator.
func (e *Emulator) namespace(ctx context.Context, ne *model.NetworkElement) (netdev.Namespace, error) {
	if path, ok := e.namespaces[ne.UUID]; ok {
		return netdev.Namespace{Node: ne.Name, Path: path}, nil
	}
	if e.runtime == nil {
		return netdev.Namespace{}, errdefs.Command(ne.Name, "resolve namespace", errNoRuntime)
	}
	path, err := e.runtime.NamespacePath(ctx, ne.Name)
	if err != nil {
		return netdev.Namespace{}, fmt.Errorf("error resolving namespace of %s: %w", ne.UUID, err)
	}
	e.namespaces[ne.UUID] = path
	return netdev.Namespace{Node: ne.Name, Path: path}, nil
}

func (e *Emulator) endpoint(ctx context.Context, tp *model.TerminationPoint) (netdev.Endpoint, error) {
	ns, err := e.namespace(ctx, tp.Node())
	if err != nil {
		return netdev.Endpoint{}, err
	}
	return netdev.Endpoint{
		Node:         ns.Node,
		NSPath:       ns.Path,
		Interface:    tp.Name(),
		HardwareAddr: tp.HardwareAddr,
	}, nil
}

// nextLinkID hands out link ids, starting at 1.
func (e *Emulator) nextLinkID() int {
	e.linkSeq++
	return e.linkSeq
}

// CreateTopologies validates the links declared per layer. Nothing is
// realized yet.
func (e *Emulator) CreateTopologies() error {
	e.build.Lock()
	defer e.build.Unlock()
	if phase := e.Phase(); phase != ElementsCreated {
		return invalidPhase("creating topologies", ElementsCreated, phase)
	}

	topologies := []*Topology{
		newTopology(PhysicalSignalTopology, DirectWiring, e.declaration.Topologies.MWPS.Links, model.LayerMWPS),
		newTopology(EthernetTopology, AddressedWiring, e.declaration.Topologies.ETH.Links, model.LayerETY, model.LayerETH),
	}
	e.mu.RLock()
	elements := e.elements
	e.mu.RUnlock()
	for _, topology := range topologies {
		if err := topology.prepare(elements); err != nil {
			return fmt.Errorf("error creating %s topology: %w", topology.Name, err)
		}
	}

	e.mu.Lock()
	e.topologies = topologies
	e.mu.Unlock()
	return nil
}

// BuildTopologies realizes the links of every topology.
func (e *Emulator) BuildTopologies(ctx context.Context) error {
	e.build.Lock()
	defer e.build.Unlock()
	if phase := e.Phase(); phase != ElementsCreated {
		return invalidPhase("building topologies", ElementsCreated, phase)
	}
	topologies := e.Topologies()
	if topologies == nil {
		return fmt.Errorf("%w: topologies were not created", errdefs.ErrInvalidPhase)
	}
	if e.netdev == nil {
		return errors.New("no network device manager configured")
	}
	for _, topology := range topologies {
		if err := topology.Build(ctx, e); err != nil {
			return err
		}
	}
	e.setPhase(TopologiesBuilt)
	return nil
}

// IsTerminationPointInUse reports whether any realized link ends at tp.
func (e *Emulator) IsTerminationPointInUse(tp *model.TerminationPoint) bool {
	for _, topology := range e.Topologies() {
		if topology.IsTerminationPointInUse(tp) {
			return true
		}
	}
	return false
}

// Start runs the whole build sequence, provisioning the nodes when a runtime
// is configured.
func (e *Emulator) Start(ctx context.Context) error {
	if err := e.CreateNetworkElements(); err != nil {
		return err
	}
	if e.runtime != nil {
		if err := e.ProvisionNodes(ctx); err != nil {
			return err
		}
	}
	if err := e.CreateTopologies(); err != nil {
		return err
	}
	if err := e.BuildTopologies(ctx); err != nil {
		return err
	}
	if err := e.RealizeNodeResources(ctx); err != nil {
		return err
	}
	islands, err := e.Islands()
	if err != nil {
		return err
	}
	e.logger.Info("emulator started", "nodes", len(e.NetworkElements()), "islands", len(islands))
	return nil
}

// Stats summarizes the emulator for monitoring.
func (e *Emulator) Stats() monitoring.Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	stats := monitoring.Stats{
		TerminationPoints: map[string]int{},
		Links:             map[string]int{},
		Pools: []monitoring.PoolStats{
			{Name: "management", Allocated: e.pools.Management.Allocated(), Free: e.pools.Management.Free()},
			{Name: "interface", Allocated: e.pools.Interface.Allocated(), Free: e.pools.Interface.Free()},
		},
	}
	if e.phase != Uninitialized {
		stats.Phase = e.phase.String()
	}
	for _, ne := range e.elements.List() {
		stats.NetworkElements++
		stats.CrossConnects += len(ne.CrossConnects())
		for _, tp := range ne.TerminationPoints() {
			stats.TerminationPoints[tp.Layer.String()]++
		}
	}
	for _, topology := range e.topologies {
		stats.Links[topology.Name] = len(topology.links)
	}
	return stats
}
