package addrpool

import (
	"fmt"
	"math"
	"net/netip"
	"sync"

	"github.com/telekom/wireless-transport-emulator/pkg/errdefs"
)

// pointToPointHostBits is the number of host bits of a /30 (or /126) subnet.
const pointToPointHostBits = 2

// subnetPool hands out consecutive, disjoint child subnets of one network.
// Fresh subnets are issued first, released ones are reissued afterwards in
// release order.
type subnetPool struct {
	mu        sync.Mutex
	network   netip.Prefix
	childBits int
	next      uint64
	total     uint64
	released  []netip.Prefix
	inUse     map[netip.Prefix]struct{}
}

func newSubnetPool(network netip.Prefix) (*subnetPool, error) {
	network = network.Masked()
	if !network.IsValid() {
		return nil, fmt.Errorf("invalid network prefix")
	}
	childBits := network.Addr().BitLen() - pointToPointHostBits
	pool := &subnetPool{
		network:   network,
		childBits: childBits,
		inUse:     map[netip.Prefix]struct{}{},
	}
	switch diff := childBits - network.Bits(); {
	case diff < 0:
		pool.total = 0
	case diff >= 63:
		pool.total = math.MaxUint64
	default:
		pool.total = 1 << uint(diff)
	}
	return pool, nil
}

func (p *subnetPool) allocate() (netip.Prefix, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.next < p.total {
		offset := p.next << pointToPointHostBits
		p.next++
		subnet := netip.PrefixFrom(addOffset(p.network.Addr(), offset), p.childBits)
		p.inUse[subnet] = struct{}{}
		return subnet, nil
	}
	if len(p.released) > 0 {
		subnet := p.released[0]
		p.released = p.released[1:]
		p.inUse[subnet] = struct{}{}
		return subnet, nil
	}
	return netip.Prefix{}, fmt.Errorf("%w: no free subnet left in %s", errdefs.ErrPoolExhausted, p.network)
}

func (p *subnetPool) release(subnet netip.Prefix) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.inUse[subnet]; !ok {
		return fmt.Errorf("subnet %s was not allocated from %s", subnet, p.network)
	}
	delete(p.inUse, subnet)
	p.released = append(p.released, subnet)
	return nil
}

func (p *subnetPool) free() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total - p.next + uint64(len(p.released))
}

func (p *subnetPool) allocated() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.inUse)
}

// addOffset adds offset to addr, carrying across bytes.
func addOffset(addr netip.Addr, offset uint64) netip.Addr {
	raw := addr.As16()
	carry := offset
	for i := len(raw) - 1; i >= 0 && carry > 0; i-- {
		sum := uint64(raw[i]) + (carry & 0xff)
		raw[i] = byte(sum)
		carry = (carry >> 8) + (sum >> 8)
	}
	result := netip.AddrFrom16(raw)
	if addr.Is4() {
		return result.Unmap()
	}
	return result
}

// Host returns the n-th address of subnet, where 0 is the network address.
func Host(subnet netip.Prefix, n int) (netip.Addr, error) {
	hostBits := subnet.Addr().BitLen() - subnet.Bits()
	if n < 0 || (hostBits < 63 && uint64(n) >= 1<<uint(hostBits)) {
		return netip.Addr{}, fmt.Errorf("host %d is outside of %s", n, subnet)
	}
	return addOffset(subnet.Masked().Addr(), uint64(n)), nil
}
