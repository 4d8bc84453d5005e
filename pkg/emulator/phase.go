package emulator

import (
	"fmt"

	"github.com/telekom/wireless-transport-emulator/pkg/errdefs"
)

// Phase is a step of the build sequence. Phases only move forward.
type Phase int

const (
	Uninitialized Phase = iota
	ElementsCreated
	TopologiesBuilt
	ResourcesRealized
)

var phaseNames = map[Phase]string{
	Uninitialized:     "Uninitialized",
	ElementsCreated:   "ElementsCreated",
	TopologiesBuilt:   "TopologiesBuilt",
	ResourcesRealized: "ResourcesRealized",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

func invalidPhase(op string, want, have Phase) error {
	return fmt.Errorf("%w: %s requires phase %s, emulator is in phase %s", errdefs.ErrInvalidPhase, op, want, have)
}
