// Package model builds the layered termination point graph of emulated
// network elements.
package model

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/go-logr/logr"

	"github.com/telekom/wireless-transport-emulator/api/v1alpha1"
	"github.com/telekom/wireless-transport-emulator/pkg/addrpool"
	"github.com/telekom/wireless-transport-emulator/pkg/errdefs"
)

// NetworkElement is an emulated node owning its termination points and
// cross connects.
type NetworkElement struct {
	UUID string
	// Seq is the node sequence number, starting at 1.
	Seq int
	// Name is the runtime (container) name of the node.
	Name string
	Type string

	ManagementSubnet netip.Prefix
	ManagementIP     netip.Addr
	PTPClock         map[string]v1alpha1.Scalar

	terminationPoints []*TerminationPoint
	crossConnects     []*CrossConnect
	declaredXConns    []v1alpha1.CrossConnectSpec

	macs  *addrpool.MACAllocator
	links *LinkIndex
	log   logr.Logger
}

// NewNetworkElement creates an element and assigns its management subnet.
// The management address is the first host of the subnet.
func NewNetworkElement(spec *v1alpha1.NetworkElementSpec, seq int, pools *addrpool.Pools, links *LinkIndex, logger logr.Logger) (*NetworkElement, error) {
	if spec.UUID == "" {
		return nil, errdefs.Malformed("network element %d has no uuid", seq)
	}
	subnet, err := pools.Management.Allocate()
	if err != nil {
		return nil, fmt.Errorf("error allocating management subnet for network element %s: %w", spec.UUID, err)
	}
	ip, err := addrpool.Host(subnet, 1)
	if err != nil {
		return nil, fmt.Errorf("error deriving management address for network element %s: %w", spec.UUID, err)
	}

	ne := &NetworkElement{
		UUID:             spec.UUID,
		Seq:              seq,
		Name:             strings.ReplaceAll(spec.UUID, " ", ""),
		Type:             spec.Type,
		ManagementSubnet: subnet,
		ManagementIP:     ip,
		PTPClock:         spec.PTPClock,
		declaredXConns:   spec.EthCrossConnections,
		macs:             pools.MAC,
		links:            links,
		log:              logger.WithName(spec.UUID),
	}
	ne.log.Info("created network element", "id", seq, "ip", ip.String())
	return ne, nil
}

// Build creates a network element with all its termination points and
// cross connects.
func Build(spec *v1alpha1.NetworkElementSpec, seq int, pools *addrpool.Pools, links *LinkIndex, logger logr.Logger) (*NetworkElement, error) {
	ne, err := NewNetworkElement(spec, seq, pools, links, logger)
	if err != nil {
		return nil, err
	}
	if err := ne.CreateTerminationPoints(spec.Interfaces); err != nil {
		return nil, fmt.Errorf("error creating termination points of %s: %w", spec.UUID, err)
	}
	if err := ne.CreateCrossConnects(spec.EthCrossConnections); err != nil {
		return nil, fmt.Errorf("error creating cross connects of %s: %w", spec.UUID, err)
	}
	return ne, nil
}

// CreateTerminationPoints constructs the declared points in declaration
// order. A server must be declared before any point referencing it.
func (ne *NetworkElement) CreateTerminationPoints(declared []v1alpha1.InterfaceLayer) error {
	portSeq := len(ne.terminationPoints) + 1
	for _, block := range declared {
		layer, err := ParseLayer(block.Layer)
		if err != nil {
			return err
		}
		for i := range block.LTPs {
			tp, err := ne.newTerminationPoint(layer, &block.LTPs[i], portSeq)
			if err != nil {
				return err
			}
			ne.terminationPoints = append(ne.terminationPoints, tp)
			for _, server := range tp.Servers {
				server.Clients = append(server.Clients, tp)
			}
			ne.log.V(1).Info("created termination point", "name", tp.Name(), "port", portSeq, "mac", tp.HardwareAddr.String())
			portSeq++
		}
	}
	return nil
}

func (ne *NetworkElement) newTerminationPoint(layer Layer, spec *v1alpha1.LTPSpec, portSeq int) (*TerminationPoint, error) {
	if spec.ID == "" {
		return nil, errdefs.Malformed("%s termination point without id on %s", layer, ne.UUID)
	}
	if ne.TerminationPointByID(spec.ID) != nil {
		return nil, errdefs.Malformed("duplicate termination point %s on %s", spec.ID, ne.UUID)
	}

	alarms := splitAlarms(spec.SupportedAlarms)
	if len(alarms) < layer.MinAlarms() {
		return nil, errdefs.Malformed("%s termination point %s on %s supplies %d supported alarms, at least %d required",
			layer, spec.ID, ne.UUID, len(alarms), layer.MinAlarms())
	}

	servers, err := ne.resolveServers(layer, spec)
	if err != nil {
		return nil, err
	}

	hwaddr, err := ne.macs.Generate(ne.Seq, portSeq)
	if err != nil {
		return nil, fmt.Errorf("error generating MAC address for %s on %s: %w", spec.ID, ne.UUID, err)
	}

	tp := &TerminationPoint{
		ID:                    spec.ID,
		Layer:                 layer,
		Seq:                   portSeq,
		SupportedAlarms:       alarms,
		PhysicalPortReference: spec.PhysicalPortReference,
		ConditionalPackage:    spec.ConditionalPackage,
		HardwareAddr:          hwaddr,
		Servers:               servers,
		node:                  ne,
	}

	switch layer {
	case LayerMWPS:
		if id, ok := ne.links.RadioSignalID(ne.UUID, spec.ID); ok {
			tp.RadioSignalID = id
		}
	case LayerETH:
		tp.VLANID = ne.resolveVLANID(spec.ID)
	}
	return tp, nil
}

func (ne *NetworkElement) resolveServers(layer Layer, spec *v1alpha1.LTPSpec) ([]*TerminationPoint, error) {
	if len(spec.ServerLTPs) > 0 && len(layer.ServerLayers()) == 0 {
		return nil, errdefs.Malformed("%s termination point %s on %s cannot have server termination points", layer, spec.ID, ne.UUID)
	}
	servers := make([]*TerminationPoint, 0, len(spec.ServerLTPs))
	for _, ref := range spec.ServerLTPs {
		server := ne.TerminationPointByID(ref.ID)
		if server == nil {
			return nil, errdefs.Unresolved("server %s of termination point %s not found on %s", ref.ID, spec.ID, ne.UUID)
		}
		if !layer.AcceptsServer(server.Layer) {
			return nil, errdefs.Malformed("%s termination point %s cannot be layered over %s termination point %s",
				layer, spec.ID, server.Layer, server.ID)
		}
		servers = append(servers, server)
	}
	return servers, nil
}

// resolveVLANID looks the point up on the Ethernet topology first and in the
// declared cross connects second.
func (ne *NetworkElement) resolveVLANID(id string) string {
	if vlan, ok := ne.links.VLANID(ne.UUID, id); ok && vlan != "" {
		return vlan
	}
	for _, xconn := range ne.declaredXConns {
		for _, port := range xconn.FCPorts {
			if port.LTP == id && port.VLANID != "" {
				return port.VLANID.String()
			}
		}
	}
	return ""
}

// TerminationPointByID returns the point with the given local id or nil.
func (ne *NetworkElement) TerminationPointByID(id string) *TerminationPoint {
	for _, tp := range ne.terminationPoints {
		if tp.ID == id {
			return tp
		}
	}
	return nil
}

// TerminationPointByName returns the point with the given interface name or nil.
func (ne *NetworkElement) TerminationPointByName(name string) *TerminationPoint {
	for _, tp := range ne.terminationPoints {
		if tp.Name() == name {
			return tp
		}
	}
	return nil
}

// TerminationPoints returns the points in construction order.
func (ne *NetworkElement) TerminationPoints() []*TerminationPoint {
	return append([]*TerminationPoint(nil), ne.terminationPoints...)
}

func (ne *NetworkElement) CrossConnects() []*CrossConnect {
	return append([]*CrossConnect(nil), ne.crossConnects...)
}

// NetworkName is the name of the node's management network.
func (ne *NetworkElement) NetworkName() string {
	return fmt.Sprintf("wte_net_%d", ne.Seq)
}
