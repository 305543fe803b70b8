// Package wizard drives a guest through the drink selection flow. The flow is
// an explicit state machine: every action is legal only in its step, and
// candidates are checked against the derived views of the catalog supplied at
// call time. The session never caches catalog data.
package wizard

import (
	"errors"
	"strings"
	"time"

	"github.com/Antonov7512/drinkkiosk/internal/catalog"
	"github.com/Antonov7512/drinkkiosk/internal/domain"
	"github.com/google/uuid"
)

type Step string

const (
	StepEvent             Step = "event"
	StepType              Step = "type"
	StepAlcoholicCategory Step = "alcoholic-category"
	StepAlcoholicDrink    Step = "alcoholic-drink"
	StepAlcoholicMixer    Step = "alcoholic-mixer"
	StepNonAlcoholicDrink Step = "nonalcoholic-drink"
	StepSummary           Step = "summary"
)

var (
	ErrInvalidTransition   = errors.New("action is not valid in the current step")
	ErrNotOffered          = errors.New("selection is not offered")
	ErrIncompleteSelection = errors.New("selection is incomplete")
	ErrNoBack              = errors.New("no previous step")
)

// Session holds one guest's progress. Selections downstream of a change are
// always cleared by the transition that makes them stale.
type Session struct {
	ID          string `json:"id"`
	Step        Step   `json:"step"`
	EventID     string `json:"eventId,omitempty"`
	IsAlcoholic bool   `json:"isAlcoholic"`
	CategoryID  string `json:"categoryId,omitempty"`
	DrinkID     string `json:"drinkId,omitempty"`
	MixerID     string `json:"mixerId,omitempty"`
}

func NewSession() *Session {
	return &Session{ID: uuid.NewString(), Step: StepEvent}
}

func (s *Session) SelectEvent(cfg domain.Config, eventID string) error {
	if s.Step != StepEvent {
		return ErrInvalidTransition
	}
	if _, ok := cfg.EventByID(eventID); !ok {
		return ErrNotOffered
	}
	s.EventID = eventID
	s.Step = StepType
	return nil
}

func (s *Session) ChooseType(alcoholic bool) error {
	if s.Step != StepType {
		return ErrInvalidTransition
	}
	s.IsAlcoholic = alcoholic
	s.CategoryID = ""
	s.DrinkID = ""
	s.MixerID = ""
	if alcoholic {
		s.Step = StepAlcoholicCategory
	} else {
		s.Step = StepNonAlcoholicDrink
	}
	return nil
}

func (s *Session) SelectCategory(cfg domain.Config, categoryID string) error {
	if s.Step != StepAlcoholicCategory {
		return ErrInvalidTransition
	}
	ev, ok := cfg.EventByID(s.EventID)
	if !ok {
		return ErrNotOffered
	}
	if !containsCategory(catalog.CategoriesForEvent(cfg, ev), categoryID) {
		return ErrNotOffered
	}
	s.CategoryID = categoryID
	s.DrinkID = ""
	s.MixerID = ""
	s.Step = StepAlcoholicDrink
	return nil
}

func (s *Session) SelectDrink(cfg domain.Config, drinkID string) error {
	if s.Step != StepAlcoholicDrink {
		return ErrInvalidTransition
	}
	ev, ok := cfg.EventByID(s.EventID)
	if !ok {
		return ErrNotOffered
	}
	for _, d := range catalog.DrinksForEvent(cfg, ev) {
		if d.ID == drinkID && d.CategoryID == s.CategoryID {
			s.DrinkID = drinkID
			s.MixerID = ""
			s.Step = StepAlcoholicMixer
			return nil
		}
	}
	return ErrNotOffered
}

// SelectMixer completes either branch: the pairing for the chosen drink in
// the alcoholic flow, or a standalone option in the non-alcoholic flow.
func (s *Session) SelectMixer(cfg domain.Config, mixerID string) error {
	switch s.Step {
	case StepAlcoholicMixer:
		d, ok := cfg.DrinkByID(s.DrinkID)
		if !ok {
			return ErrNotOffered
		}
		if !containsMixer(catalog.MixersForDrink(cfg, d), mixerID) {
			return ErrNotOffered
		}
	case StepNonAlcoholicDrink:
		ev, ok := cfg.EventByID(s.EventID)
		if !ok {
			return ErrNotOffered
		}
		if !containsMixer(catalog.NonAlcoholicOptionsForEvent(cfg, ev), mixerID) {
			return ErrNotOffered
		}
	default:
		return ErrInvalidTransition
	}
	s.MixerID = mixerID
	s.Step = StepSummary
	return nil
}

// Back walks the inverse edge of the forward transition that led here and
// clears the selections the step ahead deposited. From the summary it always
// returns to the branch's mixer step, whether or not a mixer was picked.
func (s *Session) Back() error {
	switch s.Step {
	case StepType:
		s.Step = StepEvent
		s.EventID = ""
	case StepAlcoholicCategory, StepNonAlcoholicDrink:
		s.Step = StepType
		s.IsAlcoholic = false
		s.CategoryID = ""
		s.DrinkID = ""
		s.MixerID = ""
	case StepAlcoholicDrink:
		s.Step = StepAlcoholicCategory
		s.DrinkID = ""
		s.MixerID = ""
	case StepAlcoholicMixer:
		s.Step = StepAlcoholicDrink
		s.MixerID = ""
	case StepSummary:
		if s.IsAlcoholic {
			s.Step = StepAlcoholicMixer
		} else {
			s.Step = StepNonAlcoholicDrink
		}
		s.MixerID = ""
	default:
		return ErrNoBack
	}
	return nil
}

// StartAgain resets all selections without creating a booking.
func (s *Session) StartAgain() {
	s.Step = StepEvent
	s.EventID = ""
	s.IsAlcoholic = false
	s.CategoryID = ""
	s.DrinkID = ""
	s.MixerID = ""
}

// Confirm finalizes the selection into a Booking and resets the session.
// Rejected with no state change unless an event is selected and the branch's
// selection is complete.
func (s *Session) Confirm(cfg domain.Config, guestName string) (domain.Booking, error) {
	if s.Step != StepSummary {
		return domain.Booking{}, ErrInvalidTransition
	}
	if s.EventID == "" || s.MixerID == "" || (s.IsAlcoholic && s.DrinkID == "") {
		return domain.Booking{}, ErrIncompleteSelection
	}

	mixer, ok := cfg.MixerByID(s.MixerID)
	if !ok {
		return domain.Booking{}, ErrNotOffered
	}
	summary := mixer.Name
	var drinkID string
	if s.IsAlcoholic {
		drink, ok := cfg.DrinkByID(s.DrinkID)
		if !ok {
			return domain.Booking{}, ErrNotOffered
		}
		drinkID = drink.ID
		summary = drink.Name + " with " + mixer.Name
	}

	b := domain.Booking{
		ID:                uuid.NewString(),
		EventID:           s.EventID,
		CreatedAt:         time.Now().UTC().Format(time.RFC3339),
		GuestName:         strings.TrimSpace(guestName),
		IsAlcoholicChoice: s.IsAlcoholic,
		DrinkID:           drinkID,
		MixerID:           mixer.ID,
		SummaryText:       summary,
	}
	s.StartAgain()
	return b, nil
}

// SummaryText renders the current selection the way the booking will record
// it, or empty when the selection is incomplete.
func (s *Session) SummaryText(cfg domain.Config) string {
	mixer, ok := cfg.MixerByID(s.MixerID)
	if !ok {
		return ""
	}
	if !s.IsAlcoholic {
		return mixer.Name
	}
	drink, ok := cfg.DrinkByID(s.DrinkID)
	if !ok {
		return ""
	}
	return drink.Name + " with " + mixer.Name
}

func containsCategory(cats []domain.Category, id string) bool {
	for _, c := range cats {
		if c.ID == id {
			return true
		}
	}
	return false
}

func containsMixer(mixers []domain.Mixer, id string) bool {
	for _, m := range mixers {
		if m.ID == id {
			return true
		}
	}
	return false
}
