package model

import (
	"github.com/telekom/wireless-transport-emulator/api/v1alpha1"
)

type endpointKey struct {
	node string
	ltp  string
}

// LinkIndex resolves per-endpoint attributes declared on topology links.
// When an endpoint appears on several links the first declaration wins.
type LinkIndex struct {
	radioSignal map[endpointKey]string
	vlan        map[endpointKey]string
}

func NewLinkIndex(topologies v1alpha1.Topologies) *LinkIndex {
	index := &LinkIndex{
		radioSignal: map[endpointKey]string{},
		vlan:        map[endpointKey]string{},
	}
	for _, link := range topologies.MWPS.Links {
		for _, end := range link {
			index.add(index.radioSignal, end.UUID, end.LTP, end.RadioSignalID.String())
		}
	}
	for _, link := range topologies.ETH.Links {
		for _, end := range link {
			index.add(index.vlan, end.UUID, end.LTP, end.VLANID.String())
		}
	}
	return index
}

func (*LinkIndex) add(into map[endpointKey]string, node, ltp, value string) {
	key := endpointKey{node: node, ltp: ltp}
	if _, ok := into[key]; ok {
		return
	}
	into[key] = value
}

// RadioSignalID returns the radio signal id declared for the endpoint.
func (i *LinkIndex) RadioSignalID(node, ltp string) (string, bool) {
	if i == nil {
		return "", false
	}
	id, ok := i.radioSignal[endpointKey{node: node, ltp: ltp}]
	return id, ok
}

// VLANID returns the VLAN id declared for the endpoint on an Ethernet link.
func (i *LinkIndex) VLANID(node, ltp string) (string, bool) {
	if i == nil {
		return "", false
	}
	id, ok := i.vlan[endpointKey{node: node, ltp: ltp}]
	return id, ok
}
