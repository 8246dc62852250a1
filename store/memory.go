// Package store provides snapshot source implementations.
package store

import (
	"context"
	"sync"

	"github.com/warp/workforce-engine/workforce"
)

// =============================================================================
// MEMORY STORE - In-memory snapshot source (for testing/dev)
// =============================================================================

// Memory holds both snapshots in memory. It implements
// workforce.ScheduleSource and workforce.UpdateSource and is safe for
// concurrent use. Unset snapshots behave as missing datasets.
type Memory struct {
	mu       sync.RWMutex
	schedule *workforce.ScheduleSnapshot
	updates  *workforce.UpdateSnapshot
}

func NewMemory() *Memory {
	return &Memory{}
}

// SetSchedule replaces the stored schedule snapshot.
func (m *Memory) SetSchedule(snapshot *workforce.ScheduleSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schedule = snapshot
}

// SetUpdates replaces the stored update snapshot.
func (m *Memory) SetUpdates(snapshot *workforce.UpdateSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates = snapshot
}

// Schedule returns a copy of the stored schedule snapshot, so callers
// can never reach back into the store's state.
func (m *Memory) Schedule(_ context.Context) (*workforce.ScheduleSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.schedule == nil {
		return nil, &workforce.SnapshotError{Source: "memory schedule", Err: workforce.ErrSnapshotMissing}
	}
	copied := workforce.ScheduleSnapshot{
		DateRange: m.schedule.DateRange,
		Entries:   append([]workforce.ScheduleEntry(nil), m.schedule.Entries...),
	}
	return &copied, nil
}

// Updates returns a copy of the stored update snapshot.
func (m *Memory) Updates(_ context.Context) (*workforce.UpdateSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.updates == nil {
		return nil, &workforce.SnapshotError{Source: "memory updates", Err: workforce.ErrSnapshotMissing}
	}
	copied := workforce.UpdateSnapshot{
		DateRange: m.updates.DateRange,
		Updates:   append([]workforce.UpdateRecord(nil), m.updates.Updates...),
	}
	return &copied, nil
}
