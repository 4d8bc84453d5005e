package emulator

import (
	"context"
	"fmt"

	"github.com/telekom/wireless-transport-emulator/api/v1alpha1"
	"github.com/telekom/wireless-transport-emulator/pkg/errdefs"
	"github.com/telekom/wireless-transport-emulator/pkg/model"
)

const (
	PhysicalSignalTopology = "mwps"
	EthernetTopology       = "eth"
)

// Strategy selects how the links of a topology are realized.
type Strategy int

const (
	// DirectWiring moves the ends of a virtual wire into both nodes.
	DirectWiring Strategy = iota
	// AddressedWiring attaches both ends to a host bridge and addresses them.
	AddressedWiring
)

func (s Strategy) String() string {
	if s == AddressedWiring {
		return "addressed"
	}
	return "direct"
}

// Topology holds the links of one protocol layer.
type Topology struct {
	Name     string
	Strategy Strategy
	layers   []model.Layer
	declared []v1alpha1.LinkSpec
	pending  []*Link
	links    []*Link
}

func newTopology(name string, strategy Strategy, declared []v1alpha1.LinkSpec, layers ...model.Layer) *Topology {
	return &Topology{Name: name, Strategy: strategy, declared: declared, layers: layers}
}

func (t *Topology) accepts(layer model.Layer) bool {
	for _, l := range t.layers {
		if l == layer {
			return true
		}
	}
	return false
}

// prepare validates every declared link. A termination point may be the end
// of one link only.
func (t *Topology) prepare(elements *Elements) error {
	pending := make([]*Link, 0, len(t.declared))
	for _, spec := range t.declared {
		link := newLink(t.Name, spec)
		if err := link.ValidateEnds(elements); err != nil {
			return err
		}
		if !t.accepts(link.Ends[0].Layer) {
			return errdefs.Malformed("%s topology does not accept %s termination point %s",
				t.Name, link.Ends[0].Layer, link.Ends[0])
		}
		for _, other := range pending {
			for _, tp := range link.Ends {
				if other.References(tp) {
					return errdefs.Malformed("%s is the end of more than one %s link", tp, t.Name)
				}
			}
		}
		pending = append(pending, link)
	}
	t.pending = pending
	return nil
}

// Build realizes the validated links in declaration order. A link is added
// to the topology only once it was realized.
func (t *Topology) Build(ctx context.Context, e *Emulator) error {
	for _, link := range t.pending {
		var err error
		switch t.Strategy {
		case AddressedWiring:
			err = link.RealizeWithAddressing(ctx, e)
		default:
			err = link.Realize(ctx, e)
		}
		if err != nil {
			return fmt.Errorf("error building %s topology: %w", t.Name, err)
		}
		e.mu.Lock()
		t.links = append(t.links, link)
		e.mu.Unlock()
	}
	t.pending = nil
	return nil
}

// IsTerminationPointInUse reports whether a realized link of this topology
// ends at tp.
func (t *Topology) IsTerminationPointInUse(tp *model.TerminationPoint) bool {
	for _, link := range t.links {
		if link.References(tp) {
			return true
		}
	}
	return false
}

// Links returns the realized links in realization order.
func (t *Topology) Links() []*Link {
	return append([]*Link(nil), t.links...)
}
