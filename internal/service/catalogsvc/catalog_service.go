// Package catalogsvc owns the single authoritative copy of the configuration
// aggregate. Every mutation applies a pure engine transformation, adopts the
// result locally, then persists the whole document. A failed save is
// surfaced but the local copy is not rolled back; the next successful
// mutation writes the full current state anyway.
package catalogsvc

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Antonov7512/drinkkiosk/internal/catalog"
	"github.com/Antonov7512/drinkkiosk/internal/domain"
	"github.com/Antonov7512/drinkkiosk/internal/kafka"
	"github.com/Antonov7512/drinkkiosk/internal/store"
)

// ErrSaveFailed marks mutations that were applied locally but could not be
// persisted. The caller may retry the action.
var ErrSaveFailed = errors.New("failed to save configuration")

type CatalogUseCase interface {
	Snapshot() domain.Config
	ReplaceConfig(ctx context.Context, cfg domain.Config) error
	ClearAll(ctx context.Context) error

	AddCategory(ctx context.Context, in catalog.CategoryInput) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	AddMixer(ctx context.Context, in catalog.MixerInput) (domain.Mixer, error)
	DeleteMixer(ctx context.Context, id string) error
	ToggleMixerNonAlcoholic(ctx context.Context, id string) (domain.Mixer, error)
	AddDrink(ctx context.Context, in catalog.DrinkInput) (domain.Drink, error)
	UpdateDrink(ctx context.Context, id string, in catalog.DrinkInput) (domain.Drink, error)
	DeleteDrink(ctx context.Context, id string) error
	AddEvent(ctx context.Context, in catalog.EventInput) (domain.Event, error)
	UpdateEvent(ctx context.Context, id string, in catalog.EventInput) (domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	AppendBooking(ctx context.Context, b domain.Booking) error
	DeleteBooking(ctx context.Context, id string) error
	BookingsForEvent(eventID string) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Service struct {
	store              store.CatalogStore
	producer           Producer
	bookingTopic       string
	notificationsTopic string

	mu      sync.RWMutex
	current domain.Config
}

type ServiceOption func(*Service)

// WithBookingEvents makes booking removals visible to the worker.
func WithBookingEvents(producer Producer, bookingTopic string) ServiceOption {
	return func(s *Service) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) ServiceOption {
	return func(s *Service) {
		s.notificationsTopic = topic
	}
}

func NewService(st store.CatalogStore, opts ...ServiceOption) *Service {
	s := &Service{
		store:   st,
		current: domain.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load pulls the persisted document into the authoritative copy.
func (s *Service) Load(ctx context.Context) error {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()
	return nil
}

// Snapshot returns a deep copy of the current aggregate for reads.
func (s *Service) Snapshot() domain.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// mutate applies fn to the authoritative copy and persists the result.
// Mutations are serialized: within one process they apply strictly in the
// order issued. Across processes the store overwrites unconditionally.
func (s *Service) mutate(ctx context.Context, fn func(domain.Config) (domain.Config, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.current)
	if err != nil {
		return err
	}
	s.current = next

	if err := s.store.Save(ctx, next); err != nil {
		log.Printf("save config error: %v", err)
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

func (s *Service) ReplaceConfig(ctx context.Context, cfg domain.Config) error {
	return s.mutate(ctx, func(domain.Config) (domain.Config, error) {
		return cfg.Normalize().Clone(), nil
	})
}

func (s *Service) ClearAll(ctx context.Context) error {
	return s.mutate(ctx, func(cur domain.Config) (domain.Config, error) {
		return catalog.ClearAll(cur), nil
	})
}

func (s *Service) AddCategory(ctx context.Context, in catalog.CategoryInput) (domain.Category, error) {
	var created domain.Category
	err := s.mutate(ctx, func(cur domain.Config) (domain.Config, error) {
		next, cat, err := catalog.AddCategory(cur, in)
		created = cat
		return next, err
	})
	return created, err
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.mutate(ctx, func(cur domain.Config) (domain.Config, error) {
		return catalog.DeleteCategory(cur, id)
	})
}

func (s *Service) AddMixer(ctx context.Context, in catalog.MixerInput) (domain.Mixer, error) {
	var created domain.Mixer
	err := s.mutate(ctx, func(cur domain.Config) (domain.Config, error) {
		next, m, err := catalog.AddMixer(cur, in)
		created = m
		return next, err
	})
	return created, err
}

func (s *Service) DeleteMixer(ctx context.Context, id string) error {
	return s.mutate(ctx, func(cur domain.Config) (domain.Config, error) {
		return catalog.DeleteMixer(cur, id)
	})
}

func (s *Service) ToggleMixerNonAlcoholic(ctx context.Context, id string) (domain.Mixer, error) {
	var toggled domain.Mixer
	err := s.mutate(ctx, func(cur domain.Config) (domain.Config, error) {
		next, m, err := catalog.ToggleMixerNonAlcoholic(cur, id)
		toggled = m
		return next, err
	})
	return toggled, err
}

func (s *Service) AddDrink(ctx context.Context, in catalog.DrinkInput) (domain.Drink, error) {
	var created domain.Drink
	err := s.mutate(ctx, func(cur domain.Config) (domain.Config, error) {
		next, d, err := catalog.AddDrink(cur, in)
		created = d
		return next, err
	})
	return created, err
}

func (s *Service) UpdateDrink(ctx context.Context, id string, in catalog.DrinkInput) (domain.Drink, error) {
	var updated domain.Drink
	err := s.mutate(ctx, func(cur domain.Config) (domain.Config, error) {
		next, d, err := catalog.UpdateDrink(cur, id, in)
		updated = d
		return next, err
	})
	return updated, err
}

func (s *Service) DeleteDrink(ctx context.Context, id string) error {
	return s.mutate(ctx, func(cur domain.Config) (domain.Config, error) {
		return catalog.DeleteDrink(cur, id)
	})
}

func (s *Service) AddEvent(ctx context.Context, in catalog.EventInput) (domain.Event, error) {
	var created domain.Event
	err := s.mutate(ctx, func(cur domain.Config) (domain.Config, error) {
		next, ev, err := catalog.AddEvent(cur, in)
		created = ev
		return next, err
	})
	return created, err
}

func (s *Service) UpdateEvent(ctx context.Context, id string, in catalog.EventInput) (domain.Event, error) {
	var updated domain.Event
	err := s.mutate(ctx, func(cur domain.Config) (domain.Config, error) {
		next, ev, err := catalog.UpdateEvent(cur, id, in)
		updated = ev
		return next, err
	})
	return updated, err
}

func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	return s.mutate(ctx, func(cur domain.Config) (domain.Config, error) {
		return catalog.DeleteEvent(cur, id)
	})
}

func (s *Service) AppendBooking(ctx context.Context, b domain.Booking) error {
	return s.mutate(ctx, func(cur domain.Config) (domain.Config, error) {
		return catalog.AppendBooking(cur, b), nil
	})
}

func (s *Service) DeleteBooking(ctx context.Context, id string) error {
	var removed domain.Booking
	err := s.mutate(ctx, func(cur domain.Config) (domain.Config, error) {
		for _, b := range cur.Bookings {
			if b.ID == id {
				removed = b
			}
		}
		return catalog.DeleteBooking(cur, id)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, "booking_deleted", removed)
	return nil
}

func (s *Service) BookingsForEvent(eventID string) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.current.EventByID(eventID); !ok {
		return nil, catalog.ErrEventNotFound
	}
	return catalog.BookingsForEvent(s.current, eventID), nil
}

// publish is best-effort: a broker hiccup never fails the admin action.
func (s *Service) publish(ctx context.Context, eventType string, b domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:              eventType,
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
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", eventType, b.ID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, b.ID, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %s: %v", eventType, b.ID, err)
		}
	}
}

var _ CatalogUseCase = (*Service)(nil)
