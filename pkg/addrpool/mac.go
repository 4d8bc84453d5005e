package addrpool

import (
	"fmt"
	"net"
	"sync"

	"github.com/telekom/wireless-transport-emulator/pkg/errdefs"
)

const (
	hwAddrByteSize = 6
	nodeSeqBytes   = 5
	maxNodeSeq     = 1<<(8*nodeSeqBytes) - 1
	maxPortSeq     = 0xff
)

// MACAllocator derives hardware addresses from (node, port) sequence numbers.
// The five leading octets encode the node sequence, the last one the port.
type MACAllocator struct {
	mu     sync.Mutex
	issued map[string]struct{}
}

func NewMACAllocator() *MACAllocator {
	return &MACAllocator{issued: map[string]struct{}{}}
}

// Generate returns the address of port portSeq on node nodeSeq. A second
// request for the same pair fails with errdefs.ErrDuplicateAddress.
func (m *MACAllocator) Generate(nodeSeq, portSeq int) (net.HardwareAddr, error) {
	hwaddr, err := macFor(nodeSeq, portSeq)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	key := hwaddr.String()
	if _, ok := m.issued[key]; ok {
		return nil, fmt.Errorf("%w: MAC %s for node %d port %d", errdefs.ErrDuplicateAddress, key, nodeSeq, portSeq)
	}
	m.issued[key] = struct{}{}
	return hwaddr, nil
}

// Issued returns the number of addresses handed out so far.
func (m *MACAllocator) Issued() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.issued)
}

func macFor(nodeSeq, portSeq int) (net.HardwareAddr, error) {
	if nodeSeq < 0 || nodeSeq > maxNodeSeq {
		return nil, errdefs.Malformed("node sequence %d does not fit into a MAC address", nodeSeq)
	}
	if portSeq < 0 || portSeq > maxPortSeq {
		return nil, errdefs.Malformed("port sequence %d does not fit into a MAC address", portSeq)
	}
	hwaddr := make(net.HardwareAddr, hwAddrByteSize)
	seq := uint64(nodeSeq)
	for i := nodeSeqBytes - 1; i >= 0; i-- {
		hwaddr[i] = byte(seq)
		seq >>= 8
	}
	hwaddr[nodeSeqBytes] = byte(portSeq)
	return hwaddr, nil
}
