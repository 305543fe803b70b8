// Package catalog enforces referential integrity across categories, mixers,
// drinks, events and bookings. Every mutation is a pure transformation from
// one Config to the next fully-consistent Config; the caller owns persisting
// the result atomically.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Antonov7512/drinkkiosk/internal/domain"
	"github.com/Antonov7512/drinkkiosk/internal/slug"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrCategoryNotFound = errors.New("category not found")
	ErrMixerNotFound    = errors.New("mixer not found")
	ErrDrinkNotFound    = errors.New("drink not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrBookingNotFound  = errors.New("booking not found")
)

type CategoryInput struct {
	Name string `json:"name"`
}

type MixerInput struct {
	Name                 string `json:"name"`
	IsNonAlcoholicOption bool   `json:"isNonAlcoholicOption"`
}

type DrinkInput struct {
	Name       string   `json:"name"`
	CategoryID string   `json:"categoryId"`
	ImageURL   string   `json:"imageUrl"`
	MixerIDs   []string `json:"mixerIds"`
}

type EventInput struct {
	Name                 string   `json:"name"`
	DrinkIDs             []string `json:"drinkIds"`
	NonAlcoholicMixerIDs []string `json:"nonAlcoholicMixerIds"`
}

// AddCategory appends a category, deriving its id from the name scoped to
// the category namespace.
func AddCategory(cfg domain.Config, in CategoryInput) (domain.Config, domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return cfg, domain.Category{}, ErrNameRequired
	}
	next := cfg.Clone()
	cat := domain.Category{ID: slug.Generate(name, categoryIDs(next)), Name: name}
	next.Categories = append(next.Categories, cat)
	return next, cat, nil
}

// DeleteCategory removes the category and cascades to every drink that
// references it, which in turn strips those drinks from events.
func DeleteCategory(cfg domain.Config, id string) (domain.Config, error) {
	if _, ok := cfg.CategoryByID(id); !ok {
		return cfg, ErrCategoryNotFound
	}
	next := cfg.Clone()

	kept := next.Drinks[:0]
	removed := make(map[string]struct{})
	for _, d := range next.Drinks {
		if d.CategoryID == id {
			removed[d.ID] = struct{}{}
			continue
		}
		kept = append(kept, d)
	}
	next.Drinks = kept

	next.Categories = filterCategories(next.Categories, id)
	for i := range next.Events {
		next.Events[i].DrinkIDs = without(next.Events[i].DrinkIDs, removed)
	}
	return next, nil
}

func AddMixer(cfg domain.Config, in MixerInput) (domain.Config, domain.Mixer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return cfg, domain.Mixer{}, ErrNameRequired
	}
	next := cfg.Clone()
	m := domain.Mixer{
		ID:                   slug.Generate(name, mixerIDs(next)),
		Name:                 name,
		IsNonAlcoholicOption: in.IsNonAlcoholicOption,
	}
	next.Mixers = append(next.Mixers, m)
	return next, m, nil
}

// DeleteMixer removes the mixer and strips its id from every drink's pairing
// list and every event's non-alcoholic list. Drinks themselves survive.
func DeleteMixer(cfg domain.Config, id string) (domain.Config, error) {
	if _, ok := cfg.MixerByID(id); !ok {
		return cfg, ErrMixerNotFound
	}
	next := cfg.Clone()
	gone := map[string]struct{}{id: {}}

	filtered := next.Mixers[:0]
	for _, m := range next.Mixers {
		if m.ID != id {
			filtered = append(filtered, m)
		}
	}
	next.Mixers = filtered

	for i := range next.Drinks {
		next.Drinks[i].MixerIDs = without(next.Drinks[i].MixerIDs, gone)
	}
	for i := range next.Events {
		next.Events[i].NonAlcoholicMixerIDs = without(next.Events[i].NonAlcoholicMixerIDs, gone)
	}
	return next, nil
}

// ToggleMixerNonAlcoholic flips the flag. Events already referencing the
// mixer keep their reference; the mixer simply stops appearing as a
// candidate going forward.
func ToggleMixerNonAlcoholic(cfg domain.Config, id string) (domain.Config, domain.Mixer, error) {
	next := cfg.Clone()
	for i := range next.Mixers {
		if next.Mixers[i].ID == id {
			next.Mixers[i].IsNonAlcoholicOption = !next.Mixers[i].IsNonAlcoholicOption
			return next, next.Mixers[i], nil
		}
	}
	return cfg, domain.Mixer{}, ErrMixerNotFound
}

func AddDrink(cfg domain.Config, in DrinkInput) (domain.Config, domain.Drink, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return cfg, domain.Drink{}, ErrNameRequired
	}
	if err := validateDrinkRefs(cfg, in); err != nil {
		return cfg, domain.Drink{}, err
	}
	next := cfg.Clone()
	d := domain.Drink{
		ID:         slug.Generate(name, drinkIDs(next)),
		Name:       name,
		CategoryID: in.CategoryID,
		ImageURL:   in.ImageURL,
		MixerIDs:   dedupe(in.MixerIDs),
	}
	next.Drinks = append(next.Drinks, d)
	return next, d, nil
}

// UpdateDrink edits an existing drink in place, keeping its id. References
// are validated the same way as on add.
func UpdateDrink(cfg domain.Config, id string, in DrinkInput) (domain.Config, domain.Drink, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return cfg, domain.Drink{}, ErrNameRequired
	}
	if err := validateDrinkRefs(cfg, in); err != nil {
		return cfg, domain.Drink{}, err
	}
	next := cfg.Clone()
	for i := range next.Drinks {
		if next.Drinks[i].ID != id {
			continue
		}
		next.Drinks[i].Name = name
		next.Drinks[i].CategoryID = in.CategoryID
		next.Drinks[i].ImageURL = in.ImageURL
		next.Drinks[i].MixerIDs = dedupe(in.MixerIDs)
		return next, next.Drinks[i], nil
	}
	return cfg, domain.Drink{}, ErrDrinkNotFound
}

// DeleteDrink removes the drink and strips its id from every event's
// drink list, mirroring the mixer cascade.
func DeleteDrink(cfg domain.Config, id string) (domain.Config, error) {
	if _, ok := cfg.DrinkByID(id); !ok {
		return cfg, ErrDrinkNotFound
	}
	next := cfg.Clone()
	gone := map[string]struct{}{id: {}}

	filtered := next.Drinks[:0]
	for _, d := range next.Drinks {
		if d.ID != id {
			filtered = append(filtered, d)
		}
	}
	next.Drinks = filtered

	for i := range next.Events {
		next.Events[i].DrinkIDs = without(next.Events[i].DrinkIDs, gone)
	}
	return next, nil
}

func AddEvent(cfg domain.Config, in EventInput) (domain.Config, domain.Event, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return cfg, domain.Event{}, ErrNameRequired
	}
	if err := validateEventRefs(cfg, in); err != nil {
		return cfg, domain.Event{}, err
	}
	next := cfg.Clone()
	ev := domain.Event{
		ID:                   slug.Generate(name, eventIDs(next)),
		Name:                 name,
		DrinkIDs:             dedupe(in.DrinkIDs),
		NonAlcoholicMixerIDs: dedupe(in.NonAlcoholicMixerIDs),
	}
	next.Events = append(next.Events, ev)
	return next, ev, nil
}

func UpdateEvent(cfg domain.Config, id string, in EventInput) (domain.Config, domain.Event, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return cfg, domain.Event{}, ErrNameRequired
	}
	if err := validateEventRefs(cfg, in); err != nil {
		return cfg, domain.Event{}, err
	}
	next := cfg.Clone()
	for i := range next.Events {
		if next.Events[i].ID != id {
			continue
		}
		next.Events[i].Name = name
		next.Events[i].DrinkIDs = dedupe(in.DrinkIDs)
		next.Events[i].NonAlcoholicMixerIDs = dedupe(in.NonAlcoholicMixerIDs)
		return next, next.Events[i], nil
	}
	return cfg, domain.Event{}, ErrEventNotFound
}

// DeleteEvent removes the event and cascades to every booking made for it.
func DeleteEvent(cfg domain.Config, id string) (domain.Config, error) {
	if _, ok := cfg.EventByID(id); !ok {
		return cfg, ErrEventNotFound
	}
	next := cfg.Clone()

	events := next.Events[:0]
	for _, ev := range next.Events {
		if ev.ID != id {
			events = append(events, ev)
		}
	}
	next.Events = events

	bookings := next.Bookings[:0]
	for _, b := range next.Bookings {
		if b.EventID != id {
			bookings = append(bookings, b)
		}
	}
	next.Bookings = bookings
	return next, nil
}

// AppendBooking records a finalized guest selection. Bookings are snapshots:
// no referential validation happens here or ever again.
func AppendBooking(cfg domain.Config, b domain.Booking) domain.Config {
	next := cfg.Clone()
	next.Bookings = append(next.Bookings, b)
	return next
}

func DeleteBooking(cfg domain.Config, id string) (domain.Config, error) {
	next := cfg.Clone()
	filtered := next.Bookings[:0]
	found := false
	for _, b := range next.Bookings {
		if b.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, b)
	}
	if !found {
		return cfg, ErrBookingNotFound
	}
	next.Bookings = filtered
	return next, nil
}

// ClearAll replaces the aggregate with empty collections.
func ClearAll(domain.Config) domain.Config {
	return domain.DefaultConfig()
}

func validateDrinkRefs(cfg domain.Config, in DrinkInput) error {
	if _, ok := cfg.CategoryByID(in.CategoryID); !ok {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, in.CategoryID)
	}
	for _, id := range in.MixerIDs {
		if _, ok := cfg.MixerByID(id); !ok {
			return fmt.Errorf("%w: %q", ErrMixerNotFound, id)
		}
	}
	return nil
}

func validateEventRefs(cfg domain.Config, in EventInput) error {
	for _, id := range in.DrinkIDs {
		if _, ok := cfg.DrinkByID(id); !ok {
			return fmt.Errorf("%w: %q", ErrDrinkNotFound, id)
		}
	}
	for _, id := range in.NonAlcoholicMixerIDs {
		m, ok := cfg.MixerByID(id)
		if !ok {
			return fmt.Errorf("%w: %q", ErrMixerNotFound, id)
		}
		if !m.IsNonAlcoholicOption {
			return fmt.Errorf("mixer %q is not a non-alcoholic option", id)
		}
	}
	return nil
}

func categoryIDs(cfg domain.Config) map[string]struct{} {
	set := make(map[string]struct{}, len(cfg.Categories))
	for _, c := range cfg.Categories {
		set[c.ID] = struct{}{}
	}
	return set
}

func mixerIDs(cfg domain.Config) map[string]struct{} {
	set := make(map[string]struct{}, len(cfg.Mixers))
	for _, m := range cfg.Mixers {
		set[m.ID] = struct{}{}
	}
	return set
}

func drinkIDs(cfg domain.Config) map[string]struct{} {
	set := make(map[string]struct{}, len(cfg.Drinks))
	for _, d := range cfg.Drinks {
		set[d.ID] = struct{}{}
	}
	return set
}

func eventIDs(cfg domain.Config) map[string]struct{} {
	set := make(map[string]struct{}, len(cfg.Events))
	for _, ev := range cfg.Events {
		set[ev.ID] = struct{}{}
	}
	return set
}

func filterCategories(cats []domain.Category, id string) []domain.Category {
	out := cats[:0]
	for _, c := range cats {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

func without(ids []string, gone map[string]struct{}) []string {
	out := ids[:0]
	for _, id := range ids {
		if _, dropped := gone[id]; !dropped {
			out = append(out, id)
		}
	}
	return out
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
