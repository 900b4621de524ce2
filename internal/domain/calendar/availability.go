package calendar

import (
	"time"

	"github.com/google/uuid"
)

// Entry is the minimal view the availability checker needs. Both calendar
// blocks and reservation requests are projected into it.
type Entry struct {
	ID      uuid.UUID
	RoomID  uuid.UUID
	StartAt time.Time
	EndAt   time.Time
	Type    EntryType
	Status  Status
}

// IsBlocking reports whether the entry occupies its room. Manual blocks
// always do; reservations do while pending or approved.
func IsBlocking(e Entry) bool {
	if e.Type == TypeManualBlock {
		return true
	}
	switch e.Status {
	case StatusPending, StatusApproved, StatusNone:
		return true
	default:
		return false
	}
}

// Overlaps is the half-open test: intervals sharing only a boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// HasConflict reports whether any blocking entry of roomID overlaps [start, end).
func HasConflict(entries []Entry, roomID uuid.UUID, start, end time.Time) bool {
	_, found := FirstConflict(entries, roomID, start, end)
	return found
}

func FirstConflict(entries []Entry, roomID uuid.UUID, start, end time.Time) (Entry, bool) {
	for _, e := range entries {
		if e.RoomID != roomID || !IsBlocking(e) {
			continue
		}
		if Overlaps(e.StartAt, e.EndAt, start, end) {
			return e, true
		}
	}
	return Entry{}, false
}

// Blocking filters entries down to the ones occupying their room.
func Blocking(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if IsBlocking(e) {
			out = append(out, e)
		}
	}
	return out
}
