// Package guest exposes the wizard to the HTTP surface: one session per
// kiosk client, stepped through synchronously. Sessions read derived views
// from catalog snapshots and never mutate the catalog; the only write path
// is the booking appended on confirm.
package guest

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/Antonov7512/drinkkiosk/internal/catalog"
	"github.com/Antonov7512/drinkkiosk/internal/domain"
	"github.com/Antonov7512/drinkkiosk/internal/kafka"
	"github.com/Antonov7512/drinkkiosk/internal/service/catalogsvc"
	"github.com/Antonov7512/drinkkiosk/internal/wizard"
)

var ErrSessionNotFound = errors.New("session not found")

type GuestUseCase interface {
	CreateSession() wizard.Session
	State(sessionID string) (StateView, error)
	SelectEvent(sessionID, eventID string) (wizard.Session, error)
	ChooseType(sessionID string, alcoholic bool) (wizard.Session, error)
	SelectCategory(sessionID, categoryID string) (wizard.Session, error)
	SelectDrink(sessionID, drinkID string) (wizard.Session, error)
	SelectMixer(sessionID, mixerID string) (wizard.Session, error)
	Back(sessionID string) (wizard.Session, error)
	Restart(sessionID string) (wizard.Session, error)
	Confirm(ctx context.Context, sessionID, guestName string) (domain.Booking, error)
}

// StateView is the session plus everything choosable in its current step.
type StateView struct {
	Session     wizard.Session    `json:"session"`
	Events      []domain.Event    `json:"events,omitempty"`
	Categories  []domain.Category `json:"categories,omitempty"`
	Drinks      []domain.Drink    `json:"drinks,omitempty"`
	Mixers      []domain.Mixer    `json:"mixers,omitempty"`
	SummaryText string            `json:"summaryText,omitempty"`
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Service struct {
	catalog            catalogsvc.CatalogUseCase
	producer           Producer
	bookingTopic       string
	notificationsTopic string

	mu       sync.Mutex
	sessions map[string]*wizard.Session
}

type ServiceOption func(*Service)

func WithNotificationsTopic(topic string) ServiceOption {
	return func(s *Service) {
		s.notificationsTopic = topic
	}
}

func NewService(cat catalogsvc.CatalogUseCase, producer Producer, bookingTopic string, opts ...ServiceOption) *Service {
	s := &Service{
		catalog:      cat,
		producer:     producer,
		bookingTopic: bookingTopic,
		sessions:     make(map[string]*wizard.Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CreateSession() wizard.Session {
	sess := wizard.NewSession()
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return *sess
}

func (s *Service) State(sessionID string) (StateView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return StateView{}, ErrSessionNotFound
	}

	cfg := s.catalog.Snapshot()
	view := StateView{Session: *sess}
	switch sess.Step {
	case wizard.StepEvent:
		view.Events = cfg.Events
	case wizard.StepAlcoholicCategory:
		if ev, ok := cfg.EventByID(sess.EventID); ok {
			view.Categories = catalog.CategoriesForEvent(cfg, ev)
		}
	case wizard.StepAlcoholicDrink:
		if ev, ok := cfg.EventByID(sess.EventID); ok {
			view.Drinks = drinksInCategory(catalog.DrinksForEvent(cfg, ev), sess.CategoryID)
		}
	case wizard.StepAlcoholicMixer:
		if d, ok := cfg.DrinkByID(sess.DrinkID); ok {
			view.Mixers = catalog.MixersForDrink(cfg, d)
		}
	case wizard.StepNonAlcoholicDrink:
		if ev, ok := cfg.EventByID(sess.EventID); ok {
			view.Mixers = catalog.NonAlcoholicOptionsForEvent(cfg, ev)
		}
	case wizard.StepSummary:
		view.SummaryText = sess.SummaryText(cfg)
	}
	return view, nil
}

func (s *Service) SelectEvent(sessionID, eventID string) (wizard.Session, error) {
	return s.transition(sessionID, func(sess *wizard.Session, cfg domain.Config) error {
		return sess.SelectEvent(cfg, eventID)
	})
}

func (s *Service) ChooseType(sessionID string, alcoholic bool) (wizard.Session, error) {
	return s.transition(sessionID, func(sess *wizard.Session, _ domain.Config) error {
		return sess.ChooseType(alcoholic)
	})
}

func (s *Service) SelectCategory(sessionID, categoryID string) (wizard.Session, error) {
	return s.transition(sessionID, func(sess *wizard.Session, cfg domain.Config) error {
		return sess.SelectCategory(cfg, categoryID)
	})
}

func (s *Service) SelectDrink(sessionID, drinkID string) (wizard.Session, error) {
	return s.transition(sessionID, func(sess *wizard.Session, cfg domain.Config) error {
		return sess.SelectDrink(cfg, drinkID)
	})
}

func (s *Service) SelectMixer(sessionID, mixerID string) (wizard.Session, error) {
	return s.transition(sessionID, func(sess *wizard.Session, cfg domain.Config) error {
		return sess.SelectMixer(cfg, mixerID)
	})
}

func (s *Service) Back(sessionID string) (wizard.Session, error) {
	return s.transition(sessionID, func(sess *wizard.Session, _ domain.Config) error {
		return sess.Back()
	})
}

func (s *Service) Restart(sessionID string) (wizard.Session, error) {
	return s.transition(sessionID, func(sess *wizard.Session, _ domain.Config) error {
		sess.StartAgain()
		return nil
	})
}

// Confirm finalizes the selection. The booking is adopted locally even when
// persistence fails (catalogsvc.ErrSaveFailed comes back alongside it).
func (s *Service) Confirm(ctx context.Context, sessionID, guestName string) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return domain.Booking{}, ErrSessionNotFound
	}

	booking, err := sess.Confirm(s.catalog.Snapshot(), guestName)
	if err != nil {
		return domain.Booking{}, err
	}

	saveErr := s.catalog.AppendBooking(ctx, booking)
	s.publish(ctx, booking)
	return booking, saveErr
}

func (s *Service) transition(sessionID string, fn func(*wizard.Session, domain.Config) error) (wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return wizard.Session{}, ErrSessionNotFound
	}
	if err := fn(sess, s.catalog.Snapshot()); err != nil {
		return wizard.Session{}, err
	}
	return *sess, nil
}

func (s *Service) publish(ctx context.Context, b domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:              "booking_created",
		BookingID:         b.ID,
		EventID:           b.EventID,
		GuestName:         b.GuestName,
		IsAlcoholicChoice: b.IsAlcoholicChoice,
		DrinkID:           b.DrinkID,
		MixerID:           b.MixerID,
		SummaryText:       b.SummaryText,
		CreatedAt:         b.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, b.ID, event); err != nil {
		log.Printf("WARNING: failed to publish booking_created event for booking %s: %v", b.ID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, b.ID, event); err != nil {
			log.Printf("WARNING: failed to publish booking_created notification for booking %s: %v", b.ID, err)
		}
	}
}

func drinksInCategory(drinks []domain.Drink, categoryID string) []domain.Drink {
	out := []domain.Drink{}
	for _, d := range drinks {
		if d.CategoryID == categoryID {
			out = append(out, d)
		}
	}
	return out
}

var _ GuestUseCase = (*Service)(nil)
