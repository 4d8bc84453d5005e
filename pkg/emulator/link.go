package emulator

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/telekom/wireless-transport-emulator/api/v1alpha1"
	"github.com/telekom/wireless-transport-emulator/pkg/addrpool"
	"github.com/telekom/wireless-transport-emulator/pkg/errdefs"
	"github.com/telekom/wireless-transport-emulator/pkg/model"
	"github.com/telekom/wireless-transport-emulator/pkg/netdev"
)

const (
	// BridgePrefix starts the name of every host bridge carrying an
	// addressed link.
	BridgePrefix = "oywe-br-"

	wirePrefix = "wtew"
	linkEnds   = 2
)

// Link joins a termination point on each of two nodes. The ID is assigned
// when the link is realized.
type Link struct {
	ID       int
	Topology string
	Spec     v1alpha1.LinkSpec
	Ends     [linkEnds]*model.TerminationPoint
	// Subnet is set once an addressed link is realized.
	Subnet netip.Prefix
}

func newLink(topology string, spec v1alpha1.LinkSpec) *Link {
	return &Link{Topology: topology, Spec: spec}
}

// ValidateEnds resolves both declared ends against elements. Neither the
// elements nor their termination points are modified.
func (l *Link) ValidateEnds(elements *Elements) error {
	a, b, ok := l.Spec.Ends()
	if !ok {
		return errdefs.Malformed("%s link has %d ends, exactly %d required", l.Topology, len(l.Spec), linkEnds)
	}
	var ends [linkEnds]*model.TerminationPoint
	for i, end := range []v1alpha1.LinkEnd{a, b} {
		ne := elements.Get(end.UUID)
		if ne == nil {
			return errdefs.Unresolved("%s link end %s/%s: network element not found", l.Topology, end.UUID, end.LTP)
		}
		tp := ne.TerminationPointByID(end.LTP)
		if tp == nil {
			return errdefs.Unresolved("%s link end %s/%s: termination point not found", l.Topology, end.UUID, end.LTP)
		}
		ends[i] = tp
	}
	if ends[0] == ends[1] {
		return errdefs.Malformed("%s link joins %s with itself", l.Topology, ends[0])
	}
	if ends[0].Layer != ends[1].Layer {
		return errdefs.Malformed("%s link joins %s of layer %s with %s of layer %s",
			l.Topology, ends[0], ends[0].Layer, ends[1], ends[1].Layer)
	}
	l.Ends = ends
	return nil
}

// References reports whether tp is one of the link's ends.
func (l *Link) References(tp *model.TerminationPoint) bool {
	return l.Ends[0] == tp || l.Ends[1] == tp
}

func (l *Link) WireName() string {
	return fmt.Sprintf("%s%d", wirePrefix, l.ID)
}

func (l *Link) BridgeName() string {
	return fmt.Sprintf("%s%d", BridgePrefix, l.ID)
}

func (l *Link) String() string {
	return fmt.Sprintf("%s link %d (%s <-> %s)", l.Topology, l.ID, l.Ends[0], l.Ends[1])
}

// Realize connects both ends with a virtual wire whose ends are moved into
// the node namespaces.
func (l *Link) Realize(ctx context.Context, e *Emulator) error {
	l.ID = e.nextLinkID()
	a, err := e.endpoint(ctx, l.Ends[0])
	if err != nil {
		return err
	}
	b, err := e.endpoint(ctx, l.Ends[1])
	if err != nil {
		return err
	}
	if err := e.netdev.AddWire(l.WireName(), a, b); err != nil {
		return fmt.Errorf("error realizing %s: %w", l, err)
	}
	e.logger.Info("realized link", "topology", l.Topology, "id", l.ID, "a", l.Ends[0].String(), "b", l.Ends[1].String())
	return nil
}

// RealizeWithAddressing connects both ends through a host bridge and assigns
// them the first two hosts of a fresh interface subnet. The subnet is
// returned to the pool unless both ends were attached.
func (l *Link) RealizeWithAddressing(ctx context.Context, e *Emulator) (err error) {
	l.ID = e.nextLinkID()
	subnet, err := e.pools.Interface.Allocate()
	if err != nil {
		return fmt.Errorf("error allocating subnet for %s: %w", l, err)
	}
	defer func() {
		if err == nil {
			return
		}
		if releaseErr := e.pools.Interface.Release(subnet); releaseErr != nil {
			e.logger.Error(releaseErr, "error releasing link subnet", "link", l.ID, "subnet", subnet.String())
		}
	}()

	var ends [linkEnds]netdev.Endpoint
	for i, tp := range l.Ends {
		if ends[i], err = e.endpoint(ctx, tp); err != nil {
			return err
		}
		addr, err := addrpool.Host(subnet, i+1)
		if err != nil {
			return fmt.Errorf("error addressing %s: %w", l, err)
		}
		ends[i].Address = netip.PrefixFrom(addr, subnet.Bits())
	}

	bridge := l.BridgeName()
	if err := e.netdev.AddHostBridge(bridge); err != nil {
		return fmt.Errorf("error realizing %s: %w", l, err)
	}
	for i := range ends {
		if err := e.netdev.AttachToBridge(bridge, i+1, ends[i]); err != nil {
			return fmt.Errorf("error realizing %s: %w", l, err)
		}
	}
	l.Subnet = subnet
	e.logger.Info("realized addressed link", "topology", l.Topology, "id", l.ID, "subnet", subnet.String(),
		"a", l.Ends[0].String(), "b", l.Ends[1].String())
	return nil
}
