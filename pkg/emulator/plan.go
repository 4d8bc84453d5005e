package emulator

import (
	"context"
	"fmt"
	"sort"

	"github.com/telekom/wireless-transport-emulator/pkg/errdefs"
	"github.com/telekom/wireless-transport-emulator/pkg/model"
	"github.com/telekom/wireless-transport-emulator/pkg/netdev"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ETH points are created as untagged sub-interfaces of their server.
const untaggedVLAN = 0

func byID(nodes []graph.Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
}

// WiringPlan returns the termination points of ne that need a device of
// their own, servers before their clients. Points already wired by a link
// are left out.
func (e *Emulator) WiringPlan(ne *model.NetworkElement) ([]*model.TerminationPoint, error) {
	g := simple.NewDirectedGraph()
	points := map[int64]*model.TerminationPoint{}
	for _, tp := range ne.TerminationPoints() {
		points[int64(tp.Seq)] = tp
		g.AddNode(simple.Node(tp.Seq))
	}
	for _, tp := range ne.TerminationPoints() {
		for _, server := range tp.Servers {
			g.SetEdge(g.NewEdge(simple.Node(server.Seq), simple.Node(tp.Seq)))
		}
	}

	sorted, err := topo.SortStabilized(g, byID)
	if err != nil {
		return nil, errdefs.Malformed("termination points of %s cannot be ordered: %v", ne.UUID, err)
	}
	plan := make([]*model.TerminationPoint, 0, len(sorted))
	for _, node := range sorted {
		tp := points[node.ID()]
		if e.IsTerminationPointInUse(tp) {
			e.logger.V(1).Info("termination point wired by link", "node", ne.Name, "interface", tp.Name())
			continue
		}
		plan = append(plan, tp)
	}
	return plan, nil
}

// RealizeNodeResources creates the devices of every termination point not
// covered by a link and the bridges of all cross connects.
func (e *Emulator) RealizeNodeResources(ctx context.Context) error {
	e.build.Lock()
	defer e.build.Unlock()
	if phase := e.Phase(); phase != TopologiesBuilt {
		return invalidPhase("realizing node resources", TopologiesBuilt, phase)
	}

	for _, ne := range e.NetworkElements() {
		plan, err := e.WiringPlan(ne)
		if err != nil {
			return err
		}
		ns, err := e.namespace(ctx, ne)
		if err != nil {
			return err
		}
		for _, tp := range plan {
			if err := e.wire(ns, tp); err != nil {
				return fmt.Errorf("error wiring %s: %w", tp, err)
			}
		}
		for _, xconn := range ne.CrossConnects() {
			if xconn.Host {
				e.logger.Info("host flag of cross connect ignored, bridging inside the node", "node", ne.Name, "fc", xconn.UUID())
			}
			ports := []string{xconn.Ends[0].Name(), xconn.Ends[1].Name()}
			if err := e.netdev.AddBridge(ns, xconn.BridgeName(), ports); err != nil {
				return fmt.Errorf("error realizing cross connect %s of %s: %w", xconn.UUID(), ne.UUID, err)
			}
		}
		e.logger.Info("realized node resources", "node", ne.Name, "interfaces", len(plan), "crossConnects", len(ne.CrossConnects()))
	}
	e.setPhase(ResourcesRealized)
	return nil
}

func (e *Emulator) wire(ns netdev.Namespace, tp *model.TerminationPoint) error {
	switch tp.Layer {
	case model.LayerMWPS, model.LayerETY:
		return e.netdev.AddDummy(ns, tp.Name(), tp.HardwareAddr)
	case model.LayerMWS, model.LayerETC:
		members := make([]string, 0, len(tp.Servers))
		for _, server := range tp.Servers {
			members = append(members, server.Name())
		}
		return e.netdev.AddBond(ns, tp.Name(), tp.HardwareAddr, members)
	case model.LayerETH:
		if len(tp.Servers) != 1 {
			e.logger.Info("Ethernet termination point needs exactly one server, not wired",
				"node", ns.Node, "interface", tp.Name(), "servers", len(tp.Servers))
			return nil
		}
		return e.netdev.AddVLAN(ns, tp.Name(), tp.Servers[0].Name(), untaggedVLAN)
	default:
		return errdefs.Malformed("%s has unknown layer %s", tp, tp.Layer)
	}
}

// Islands groups the nodes into sets connected by realized links. Nodes
// without links form an island of their own.
func (e *Emulator) Islands() ([][]string, error) {
	if phase := e.Phase(); phase < TopologiesBuilt {
		return nil, invalidPhase("computing islands", TopologiesBuilt, phase)
	}
	g := simple.NewUndirectedGraph()
	names := map[int64]string{}
	for _, ne := range e.NetworkElements() {
		names[int64(ne.Seq)] = ne.Name
		g.AddNode(simple.Node(ne.Seq))
	}
	for _, topology := range e.Topologies() {
		for _, link := range topology.Links() {
			a, b := int64(link.Ends[0].Node().Seq), int64(link.Ends[1].Node().Seq)
			if a == b || g.HasEdgeBetween(a, b) {
				continue
			}
			g.SetEdge(g.NewEdge(simple.Node(a), simple.Node(b)))
		}
	}

	components := topo.ConnectedComponents(g)
	for _, component := range components {
		byID(component)
	}
	sort.Slice(components, func(i, j int) bool { return components[i][0].ID() < components[j][0].ID() })

	islands := make([][]string, 0, len(components))
	for _, component := range components {
		island := make([]string, 0, len(component))
		for _, node := range component {
			island = append(island, names[node.ID()])
		}
		islands = append(islands, island)
	}
	return islands, nil
}
