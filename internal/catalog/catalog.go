package catalog

import (
	"time"

	"github.com/google/uuid"
)

// PriceEntry holds the base and add-on figures for one canvas size.
// All amounts are in kopecks.
type PriceEntry struct {
	ID             uuid.UUID
	Size           string
	CostPrice      int64
	SellPrice      int64
	FinishCost     int64
	FinishPrice    int64
	PackagingCost  int64
	PackagingPrice int64
	FrameACost     int64
	FrameAPrice    int64
	FrameBCost     int64
	FrameBPrice    int64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Snapshot is a point-in-time view of the price catalog keyed by size.
// Valuation reads from a snapshot so that later catalog edits never
// affect orders already priced against it.
type Snapshot map[string]PriceEntry

// Lookup returns the entry for the given size label.
func (s Snapshot) Lookup(size string) (PriceEntry, bool) {
	entry, ok := s[size]
	return entry, ok
}

// NewSnapshot builds a Snapshot from a list of entries. Later duplicates
// of the same size label win.
func NewSnapshot(entries []*PriceEntry) Snapshot {
	snap := make(Snapshot, len(entries))
	for _, e := range entries {
		snap[e.Size] = *e
	}

	return snap
}
