package shared

import "studio-calendar/internal/domain/reservation"

// BookingMetrics records workflow outcomes.
type BookingMetrics interface {
	ReservationCreated(status reservation.Status)
	ReservationDecided(action reservation.Action, changed bool)
	BookingConflict()
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) ReservationCreated(reservation.Status)       {}
func (NopMetrics) ReservationDecided(reservation.Action, bool) {}
func (NopMetrics) BookingConflict()                            {}
