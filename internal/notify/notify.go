package notify

import (
	"context"
	"log"

	"github.com/Antonov7512/drinkkiosk/internal/kafka"
)

// Sink receives booking events on the worker side. The current sink prints
// to the bar staff console; anything fancier slots in behind it.
type Sink struct{}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Handle(_ context.Context, event kafka.BookingEvent) error {
	switch event.Type {
	case "booking_created":
		name := event.GuestName
		if name == "" {
			name = "a guest"
		}
		log.Printf("new order for event %s: %s (by %s)", event.EventID, event.SummaryText, name)
	case "booking_deleted":
		log.Printf("order %s for event %s was removed", event.BookingID, event.EventID)
	default:
		log.Printf("ignoring unknown booking event type %q", event.Type)
	}
	return nil
}
