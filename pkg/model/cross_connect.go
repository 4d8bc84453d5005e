package model

import (
	"fmt"

	"github.com/telekom/wireless-transport-emulator/api/v1alpha1"
	"github.com/telekom/wireless-transport-emulator/pkg/errdefs"
)

const crossConnectEnds = 2

// CrossConnect is a forwarding construct joining two Ethernet termination
// points of the same node.
type CrossConnect struct {
	// Seq is the per-node cross connect sequence number, starting at 1.
	Seq   int
	Host  bool
	Route string
	Ends  [crossConnectEnds]*TerminationPoint
	// VLANIDs holds the VLAN declared per end, empty if none.
	VLANIDs [crossConnectEnds]string

	node *NetworkElement
}

// UUID of the forwarding construct.
func (c *CrossConnect) UUID() string {
	return fmt.Sprintf("fc-eth-%d", c.Seq)
}

// BridgeName is the bridge joining both ends inside the node.
func (c *CrossConnect) BridgeName() string {
	return fmt.Sprintf("xconn_br%d", c.Seq)
}

// PortUUID returns the uuid of the forwarding construct port of end i.
func (c *CrossConnect) PortUUID(i int) string {
	return fmt.Sprintf("%s_%d", c.Ends[i].ID, i)
}

func (c *CrossConnect) Node() *NetworkElement {
	return c.node
}

// CreateCrossConnects builds the declared cross connects. Every cross
// connect needs exactly two distinct Ethernet termination points of this
// node.
func (ne *NetworkElement) CreateCrossConnects(declared []v1alpha1.CrossConnectSpec) error {
	created := make([]*CrossConnect, 0, len(declared))
	for i := range declared {
		xconn, err := ne.newCrossConnect(len(ne.crossConnects)+len(created)+1, &declared[i])
		if err != nil {
			return err
		}
		created = append(created, xconn)
	}
	ne.crossConnects = append(ne.crossConnects, created...)
	return nil
}

func (ne *NetworkElement) newCrossConnect(seq int, spec *v1alpha1.CrossConnectSpec) (*CrossConnect, error) {
	if len(spec.FCPorts) != crossConnectEnds {
		return nil, errdefs.Malformed("cross connect %d on %s has %d ends, exactly %d required",
			seq, ne.UUID, len(spec.FCPorts), crossConnectEnds)
	}
	xconn := &CrossConnect{
		Seq:   seq,
		Host:  spec.Host,
		Route: spec.FCRoute,
		node:  ne,
	}
	for i, port := range spec.FCPorts {
		tp := ne.TerminationPointByID(port.LTP)
		if tp == nil {
			return nil, errdefs.Unresolved("cross connect %d end %s not found on %s", seq, port.LTP, ne.UUID)
		}
		if tp.Layer != LayerETH {
			return nil, errdefs.Malformed("cross connect %d end %s on %s is of layer %s, not %s",
				seq, port.LTP, ne.UUID, tp.Layer, LayerETH)
		}
		xconn.Ends[i] = tp
		xconn.VLANIDs[i] = port.VLANID.String()
	}
	if xconn.Ends[0] == xconn.Ends[1] {
		return nil, errdefs.Malformed("cross connect %d on %s joins %s with itself", seq, ne.UUID, xconn.Ends[0].ID)
	}
	return xconn, nil
}
