package model

import (
	"net"
	"strings"
)

const (
	ltpPrefix = "ltp-"
	lpPrefix  = "lp-"
)

// TerminationPoint is a layered attachment point of a network element.
// Servers are the points it is layered over, clients the points layered
// over it. Both are populated when the point is constructed.
type TerminationPoint struct {
	ID    string
	Layer Layer
	// Seq is the per-node port sequence number, starting at 1.
	Seq int

	SupportedAlarms       []string
	PhysicalPortReference string
	ConditionalPackage    string
	HardwareAddr          net.HardwareAddr

	// RadioSignalID is resolved from the physical-signal topology (MWPS only).
	RadioSignalID string
	// VLANID is resolved from the Ethernet topology or cross connects (ETH only).
	VLANID string

	Servers []*TerminationPoint
	Clients []*TerminationPoint

	node *NetworkElement
}

// Name is the interface name of the point inside its node.
func (tp *TerminationPoint) Name() string {
	return tp.Layer.Prefix() + tp.ID
}

// LTP is the uuid of the point's logical termination point.
func (tp *TerminationPoint) LTP() string {
	return ltpPrefix + tp.Name()
}

// LP is the uuid of the point's layer protocol.
func (tp *TerminationPoint) LP() string {
	return lpPrefix + tp.Name()
}

func (tp *TerminationPoint) Node() *NetworkElement {
	return tp.node
}

// NodeName is the runtime name of the owning network element.
func (tp *TerminationPoint) NodeName() string {
	if tp.node == nil {
		return ""
	}
	return tp.node.Name
}

// AlarmList returns the supported alarms joined the way they were declared.
func (tp *TerminationPoint) AlarmList() string {
	return strings.Join(tp.SupportedAlarms, ",")
}

func (tp *TerminationPoint) String() string {
	return tp.NodeName() + "/" + tp.Name()
}

func splitAlarms(alarms string) []string {
	result := []string{}
	for _, alarm := range strings.Split(alarms, ",") {
		if alarm = strings.TrimSpace(alarm); alarm != "" {
			result = append(result, alarm)
		}
	}
	return result
}
