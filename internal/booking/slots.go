package booking

import (
	"github.com/zdzakic/booky/internal/api"
	"github.com/zdzakic/booky/internal/models"
)

// The backend exposes two slot response shapes. Both are normalized to
// models.SlotView here, before any view logic sees them. Order is preserved
// exactly as returned (assumed chronological); nothing re-sorts.

// SlotsFromStatus maps an all-slots-status response. Disabled slots are kept
// so the form can render them greyed out.
func SlotsFromStatus(in []api.SlotStatus) []models.SlotView {
	out := make([]models.SlotView, len(in))
	for i, s := range in {
		out[i] = models.SlotView{
			Time:    hhmm(s.StartTime),
			Enabled: s.Enabled,
		}
	}
	return out
}

// SlotsFromAvailability maps an availability response. Only open slots are
// returned by the backend, so every entry is enabled and carries its
// remaining capacity.
func SlotsFromAvailability(in []api.AvailabilitySlot) []models.SlotView {
	out := make([]models.SlotView, len(in))
	for i, s := range in {
		out[i] = models.SlotView{
			Time:           hhmm(s.Time),
			AvailableCount: s.AvailableCount,
			Enabled:        true,
		}
	}
	return out
}

// hhmm truncates HH:MM:SS to HH:MM.
func hhmm(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
