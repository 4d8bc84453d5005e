package model

import (
	"fmt"
	"strings"

	"github.com/telekom/wireless-transport-emulator/pkg/errdefs"
)

// Layer is the protocol layer a termination point belongs to.
type Layer int

const (
	LayerUnknown Layer = iota
	// Microwave physical signal (air interface).
	LayerMWPS
	// Microwave structure, aggregates MWPS points.
	LayerMWS
	// Microwave Ethernet container, rides on MWS points.
	LayerETC
	// Electrical Ethernet port.
	LayerETY
	// Ethernet connection termination point.
	LayerETH
)

var layerNames = map[Layer]string{
	LayerMWPS: "MWPS",
	LayerMWS:  "MWS",
	LayerETC:  "ETC",
	LayerETY:  "ETY",
	LayerETH:  "ETH",
}

// Layers lists every known layer, servers before clients.
var Layers = []Layer{LayerMWPS, LayerETY, LayerMWS, LayerETC, LayerETH}

func ParseLayer(s string) (Layer, error) {
	for layer, name := range layerNames {
		if strings.EqualFold(s, name) {
			return layer, nil
		}
	}
	return LayerUnknown, errdefs.Malformed("illegal layer value %q", s)
}

func (l Layer) String() string {
	if name, ok := layerNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Layer(%d)", int(l))
}

// Prefix is prepended to the local id to form the interface name.
func (l Layer) Prefix() string {
	return strings.ToLower(l.String()) + "-"
}

// ProtocolName is the layer-protocol-name of the point's layer protocol.
func (l Layer) ProtocolName() string {
	return l.String()
}

// MinAlarms is the minimum number of supported alarms a point must declare.
func (l Layer) MinAlarms() int {
	switch l {
	case LayerMWPS:
		return 6 //nolint:mnd
	case LayerMWS:
		return 1
	case LayerETC:
		return 2 //nolint:mnd
	default:
		return 0
	}
}

// ServerLayers lists the layers a point of this layer may be layered over.
func (l Layer) ServerLayers() []Layer {
	switch l {
	case LayerMWS:
		return []Layer{LayerMWPS}
	case LayerETC:
		return []Layer{LayerMWS}
	case LayerETH:
		return []Layer{LayerETC, LayerETY}
	default:
		return nil
	}
}

// AcceptsServer reports whether server may be a server layer of l.
func (l Layer) AcceptsServer(server Layer) bool {
	for _, s := range l.ServerLayers() {
		if s == server {
			return true
		}
	}
	return false
}

// Microwave reports whether the layer carries microwave-model packages.
func (l Layer) Microwave() bool {
	return l == LayerMWPS || l == LayerMWS || l == LayerETC
}
