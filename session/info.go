package session

import (
	"sync"

	"github.com/google/uuid"
)

// Info mirrors spec.md §3's `info` mapping: observed session facts,
// written only by the process pump and read by others (spec.md §5) — a
// plain RWMutex suffices for that access pattern.
type Info struct {
	mu sync.RWMutex

	UUID             uuid.UUID
	Username         string
	EntityID         int32
	Gamemode         uint8
	Dimension        int8
	Difficulty       uint8
	MaxPlayers       uint8
	LevelType        string
	ReducedDebugInfo bool
	AbilitiesFlags   int8
	FlyingSpeed      float32
	FovModifier      float32
	HeldItemSlot     int8
	HostBrand        string
}

// Snapshot returns a copy of Info safe to read without holding the lock.
func (i *Info) Snapshot() Info {
	i.mu.RLock()
	defer i.mu.RUnlock()
	cp := *i
	cp.mu = sync.RWMutex{}
	return cp
}

func (i *Info) write(fn func(*Info)) {
	i.mu.Lock()
	defer i.mu.Unlock()
	fn(i)
}
