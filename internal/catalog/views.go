package catalog

import "github.com/Antonov7512/drinkkiosk/internal/domain"

// Derived views are read-only projections over the aggregate. They silently
// drop dangling references instead of erroring, so a stale selection can
// never be rendered as choosable.

// DrinksForEvent returns, in catalog order, the drinks the event offers.
func DrinksForEvent(cfg domain.Config, ev domain.Event) []domain.Drink {
	listed := make(map[string]struct{}, len(ev.DrinkIDs))
	for _, id := range ev.DrinkIDs {
		listed[id] = struct{}{}
	}
	out := []domain.Drink{}
	for _, d := range cfg.Drinks {
		if _, ok := listed[d.ID]; ok {
			out = append(out, d)
		}
	}
	return out
}

// NonAlcoholicOptionsForEvent returns the event's mixers that are still
// flagged as standalone non-alcoholic options.
func NonAlcoholicOptionsForEvent(cfg domain.Config, ev domain.Event) []domain.Mixer {
	listed := make(map[string]struct{}, len(ev.NonAlcoholicMixerIDs))
	for _, id := range ev.NonAlcoholicMixerIDs {
		listed[id] = struct{}{}
	}
	out := []domain.Mixer{}
	for _, m := range cfg.Mixers {
		if !m.IsNonAlcoholicOption {
			continue
		}
		if _, ok := listed[m.ID]; ok {
			out = append(out, m)
		}
	}
	return out
}

// MixersForDrink resolves a drink's pairing list against the live mixers.
func MixersForDrink(cfg domain.Config, d domain.Drink) []domain.Mixer {
	out := []domain.Mixer{}
	for _, id := range d.MixerIDs {
		if m, ok := cfg.MixerByID(id); ok {
			out = append(out, m)
		}
	}
	return out
}

func DrinksForCategory(cfg domain.Config, categoryID string) []domain.Drink {
	out := []domain.Drink{}
	for _, d := range cfg.Drinks {
		if d.CategoryID == categoryID {
			out = append(out, d)
		}
	}
	return out
}

// CategoriesForEvent returns the categories that have at least one drink
// offered by the event, in catalog order.
func CategoriesForEvent(cfg domain.Config, ev domain.Event) []domain.Category {
	drinks := DrinksForEvent(cfg, ev)
	present := make(map[string]struct{}, len(drinks))
	for _, d := range drinks {
		present[d.CategoryID] = struct{}{}
	}
	out := []domain.Category{}
	for _, c := range cfg.Categories {
		if _, ok := present[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out
}

func BookingsForEvent(cfg domain.Config, eventID string) []domain.Booking {
	out := []domain.Booking{}
	for _, b := range cfg.Bookings {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}
	return out
}
