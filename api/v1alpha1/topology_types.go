/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NOTE: json tags are required. The field names mirror the topology files
// consumed by the emulator and must not be renamed.

// TopologyDeclaration is the root of a topology file.
type TopologyDeclaration struct {
	// Network elements in declaration order. The order defines the node
	// sequence numbers.
	NetworkElements []NetworkElementEntry `json:"network-elements"`

	// Inter-node links per protocol layer
	Topologies Topologies `json:"topologies"`
}

// NetworkElementEntry wraps a single node declaration.
type NetworkElementEntry struct {
	NetworkElement NetworkElementSpec `json:"network-element"`
}

// NetworkElementSpec declares one emulated node.
type NetworkElementSpec struct {
	// Unique identifier of the node, required
	UUID string `json:"uuid"`

	// Node type, selects the container image
	Type string `json:"type,omitempty"`

	// Interface layers. A layer must be declared after every layer it
	// references as server.
	Interfaces []InterfaceLayer `json:"interfaces"`

	// Intra-node Ethernet cross connections
	EthCrossConnections []CrossConnectSpec `json:"eth-cross-connections,omitempty"`

	// Clock reference block, emitted as network element extensions
	PTPClock map[string]Scalar `json:"ptp-clock,omitempty"`
}

// InterfaceLayer lists the termination points of one layer.
type InterfaceLayer struct {
	// One of MWPS, MWS, ETC, ETY or ETH
	Layer string    `json:"layer"`
	LTPs  []LTPSpec `json:"LTPs"`
}

// LTPSpec declares a single termination point.
type LTPSpec struct {
	// Identifier within the node, required
	ID string `json:"id"`

	// Comma separated list of supported alarms
	SupportedAlarms string `json:"supportedAlarms,omitempty"`

	// Termination points this one is layered over
	ServerLTPs []LTPRef `json:"serverLTPs,omitempty"`

	PhysicalPortReference string `json:"physical-port-reference,omitempty"`
	ConditionalPackage    string `json:"conditional-package,omitempty"`
}

type LTPRef struct {
	ID string `json:"id"`
}

// CrossConnectSpec declares a forwarding construct between two Ethernet
// termination points of the same node.
type CrossConnectSpec struct {
	Host    bool         `json:"host,omitempty"`
	FCPorts []FCPortSpec `json:"fcPorts"`
	FCRoute string       `json:"fcRoute,omitempty"`
}

type FCPortSpec struct {
	LTP    string `json:"ltp"`
	VLANID Scalar `json:"vlan-id,omitempty"`
}

// Topologies holds the link declarations of the two emulated layers.
type Topologies struct {
	// Microwave physical-signal layer
	MWPS LayerTopology `json:"mwps"`
	// Ethernet layer
	ETH LayerTopology `json:"eth"`
}

type LayerTopology struct {
	Links []LinkSpec `json:"links"`
}

// LinkSpec is a list of link ends. A valid link has exactly two.
type LinkSpec []LinkEnd

// LinkEnd references a termination point of a node.
type LinkEnd struct {
	UUID          string `json:"uuid"`
	LTP           string `json:"ltp"`
	RadioSignalID Scalar `json:"radio-signal-id,omitempty"`
	VLANID        Scalar `json:"vlan-id,omitempty"`
}

// Scalar accepts a JSON string, number or boolean and keeps its textual
// form. Numbers are kept as written.
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null":
		*s = ""
		return nil
	case "true", "false":
		*s = Scalar(data)
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected string, number or boolean, got %s", string(data))
	}
	*s = Scalar(num.String())
	return nil
}

func (s Scalar) String() string {
	return string(s)
}
