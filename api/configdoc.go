package api

import (
	"encoding/json"
	"errors"

	"github.com/Antonov7512/drinkkiosk/internal/domain"
)

var errInvalidShape = errors.New("invalid config shape")

// parseConfigDocument validates an inbound configuration replacement.
// Categories, mixers and drinks must be present as well-formed arrays or the
// whole document is rejected. Events and bookings are defaulted to empty
// collections when missing or malformed, and the events' nested id arrays are
// defaulted individually, so a partially damaged document still loads.
func parseConfigDocument(data []byte) (domain.Config, error) {
	var raw struct {
		Categories json.RawMessage `json:"categories"`
		Mixers     json.RawMessage `json:"mixers"`
		Drinks     json.RawMessage `json:"drinks"`
		Events     json.RawMessage `json:"events"`
		Bookings   json.RawMessage `json:"bookings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Config{}, errInvalidShape
	}

	var cfg domain.Config
	if err := requireArray(raw.Categories, &cfg.Categories); err != nil {
		return domain.Config{}, err
	}
	if err := requireArray(raw.Mixers, &cfg.Mixers); err != nil {
		return domain.Config{}, err
	}
	if err := requireArray(raw.Drinks, &cfg.Drinks); err != nil {
		return domain.Config{}, err
	}

	cfg.Events = parseEvents(raw.Events)
	if json.Unmarshal(raw.Bookings, &cfg.Bookings) != nil {
		cfg.Bookings = []domain.Booking{}
	}
	return cfg.Normalize(), nil
}

func requireArray(raw json.RawMessage, out interface{}) error {
	if len(raw) == 0 || string(raw) == "null" {
		return errInvalidShape
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errInvalidShape
	}
	return nil
}

func parseEvents(raw json.RawMessage) []domain.Event {
	var loose []struct {
		ID                   string          `json:"id"`
		Name                 string          `json:"name"`
		DrinkIDs             json.RawMessage `json:"drinkIds"`
		NonAlcoholicMixerIDs json.RawMessage `json:"nonAlcoholicMixerIds"`
	}
	if json.Unmarshal(raw, &loose) != nil {
		return []domain.Event{}
	}

	events := make([]domain.Event, 0, len(loose))
	for _, ev := range loose {
		out := domain.Event{ID: ev.ID, Name: ev.Name}
		if json.Unmarshal(ev.DrinkIDs, &out.DrinkIDs) != nil {
			out.DrinkIDs = []string{}
		}
		if json.Unmarshal(ev.NonAlcoholicMixerIDs, &out.NonAlcoholicMixerIDs) != nil {
			out.NonAlcoholicMixerIDs = []string{}
		}
		events = append(events, out)
	}
	return events
}
