package booking

import (
	"errors"

	"github.com/zdzakic/booky/internal/models"
)

var (
	// ErrMutationInFlight is returned when a record already has a pending mutation
	ErrMutationInFlight = errors.New("a mutation for this reservation is already pending")
	// ErrReservationNotFound is returned when the id is not in the held list
	ErrReservationNotFound = errors.New("reservation not found")
)

// Coordinator owns the dashboard's reservation list and applies approve and
// delete mutations against it. Approve is optimistic: the flag flips locally
// before the network call resolves, and a failure rolls back to a snapshot of
// the full pre-mutation list (concurrent mutations may have touched other
// records, so a single-record restore is not enough). Delete is
// confirm-then-remove: the row stays until the backend confirms, so a failed
// delete needs no rollback.
//
// Each mutation runs idle -> pending -> committed or rolled back, terminal in
// both outcomes. At most one mutation per record may be pending at a time.
type Coordinator struct {
	reservations []models.Reservation
	snapshots    map[int][]models.Reservation
	inflight     map[int]bool
}

// NewCoordinator wraps an initial reservation list.
func NewCoordinator(reservations []models.Reservation) *Coordinator {
	return &Coordinator{
		reservations: reservations,
		snapshots:    make(map[int][]models.Reservation),
		inflight:     make(map[int]bool),
	}
}

// Reservations returns the currently held list, optimistic updates included.
func (c *Coordinator) Reservations() []models.Reservation {
	return c.reservations
}

// Replace swaps in a freshly fetched list. Pending mutations keep their
// guards; their snapshots are discarded since they describe a stale list.
func (c *Coordinator) Replace(reservations []models.Reservation) {
	c.reservations = reservations
	c.snapshots = make(map[int][]models.Reservation)
}

// InFlight reports whether the record has a pending mutation.
func (c *Coordinator) InFlight(id int) bool {
	return c.inflight[id]
}

// BeginApprove optimistically flips the approval flag and snapshots the full
// pre-mutation list for a possible rollback.
func (c *Coordinator) BeginApprove(id int) error {
	if c.inflight[id] {
		return ErrMutationInFlight
	}
	idx := c.indexOf(id)
	if idx < 0 {
		return ErrReservationNotFound
	}

	snapshot := make([]models.Reservation, len(c.reservations))
	copy(snapshot, c.reservations)
	c.snapshots[id] = snapshot

	c.reservations[idx].IsApproved = true
	c.inflight[id] = true
	return nil
}

// CommitApprove finalizes a confirmed approve. The optimistic state is
// already correct; only the bookkeeping is cleared.
func (c *Coordinator) CommitApprove(id int) {
	delete(c.snapshots, id)
	delete(c.inflight, id)
}

// RollbackApprove restores the exact pre-mutation list after a failed
// approve. A snapshot discarded by Replace makes this a no-op beyond
// clearing the guard.
func (c *Coordinator) RollbackApprove(id int) {
	if snapshot, ok := c.snapshots[id]; ok {
		c.reservations = snapshot
	}
	delete(c.snapshots, id)
	delete(c.inflight, id)
}

// BeginDelete marks the record's mutation as pending. The row is not removed
// until the backend confirms.
func (c *Coordinator) BeginDelete(id int) error {
	if c.inflight[id] {
		return ErrMutationInFlight
	}
	if c.indexOf(id) < 0 {
		return ErrReservationNotFound
	}
	c.inflight[id] = true
	return nil
}

// CommitDelete removes the row after backend confirmation.
func (c *Coordinator) CommitDelete(id int) {
	idx := c.indexOf(id)
	if idx >= 0 {
		c.reservations = append(c.reservations[:idx], c.reservations[idx+1:]...)
	}
	delete(c.inflight, id)
}

// FailDelete clears the guard after a failed delete. The row was never
// removed, so there is nothing to restore.
func (c *Coordinator) FailDelete(id int) {
	delete(c.inflight, id)
}

func (c *Coordinator) indexOf(id int) int {
	for i := range c.reservations {
		if c.reservations[i].ID == id {
			return i
		}
	}
	return -1
}
