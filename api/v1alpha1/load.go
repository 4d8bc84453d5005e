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
	"fmt"
	"os"
	"strings"

	"github.com/telekom/wireless-transport-emulator/pkg/errdefs"
	"sigs.k8s.io/yaml"
)

var layerNames = []string{"MWPS", "MWS", "ETC", "ETY", "ETH"}

// ParseTopology decodes a topology declaration given as JSON or YAML.
func ParseTopology(data []byte) (*TopologyDeclaration, error) {
	topology := &TopologyDeclaration{}
	if err := yaml.Unmarshal(data, topology); err != nil {
		return nil, fmt.Errorf("error unmarshalling topology: %w", err)
	}
	if err := topology.Validate(); err != nil {
		return nil, err
	}
	return topology, nil
}

// Validate checks the required fields and layer names of every network
// element. References between declarations are resolved later.
func (t *TopologyDeclaration) Validate() error {
	for i := range t.NetworkElements {
		ne := &t.NetworkElements[i].NetworkElement
		if ne.UUID == "" {
			return errdefs.Malformed("network element %d has no uuid", i+1)
		}
		for _, block := range ne.Interfaces {
			if !knownLayer(block.Layer) {
				return errdefs.Malformed("network element %s declares unknown layer %q", ne.UUID, block.Layer)
			}
			for _, ltp := range block.LTPs {
				if ltp.ID == "" {
					return errdefs.Malformed("network element %s has a %s termination point without id", ne.UUID, block.Layer)
				}
			}
		}
	}
	return nil
}

func knownLayer(name string) bool {
	for _, known := range layerNames {
		if strings.EqualFold(name, known) {
			return true
		}
	}
	return false
}

// LoadTopology reads and decodes the topology file at path.
func LoadTopology(path string) (*TopologyDeclaration, error) {
	read, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading topology file: %w", err)
	}
	return ParseTopology(read)
}

// Ends returns the two ends of the link or false if it does not have
// exactly two.
func (l LinkSpec) Ends() (a, b LinkEnd, ok bool) {
	if len(l) != 2 { //nolint:mnd
		return LinkEnd{}, LinkEnd{}, false
	}
	return l[0], l[1], true
}
