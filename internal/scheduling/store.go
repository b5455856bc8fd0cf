package scheduling

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Freeeeeet/drivingschool_bot/internal/idgen"
	"github.com/Freeeeeet/drivingschool_bot/internal/metrics"
	"github.com/Freeeeeet/drivingschool_bot/internal/model"
	"go.uber.org/zap"
)

const defaultSaveTimeout = 5 * time.Second

// Persistence хранилище двух коллекций. Отсутствие ключа - пустая коллекция, а не ошибка.
type Persistence interface {
	LoadSlots(ctx context.Context) ([]model.AvailabilitySlot, error)
	LoadBookings(ctx context.Context) ([]model.Booking, error)
	SaveSlots(ctx context.Context, slots []model.AvailabilitySlot) error
	SaveBookings(ctx context.Context, bookings []model.Booking) error
}

// keyLister хранилище, умеющее перечислить свои ключи
type keyLister interface {
	Keys(ctx context.Context) ([]string, error)
}

// Notifier принимает запрос на уведомление и не блокирует вызывающего
type Notifier interface {
	Dispatch(title, body string)
}

// Store планировщик занятий: единственный владелец слотов и записей
type Store struct {
	mu    sync.RWMutex
	state State

	loaded atomic.Bool

	repo        Persistence
	notifier    Notifier
	ids         idgen.Generator
	now         func() time.Time
	saveTimeout time.Duration
	logger      *zap.Logger
}

// Option настраивает Store
type Option func(*Store)

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithSaveTimeout задаёт таймаут одной записи коллекции
func WithSaveTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.saveTimeout = d
	}
}

// NewStore создаёт планировщик. До вызова Load коллекции пусты и IsLoaded возвращает false.
func NewStore(
	repo Persistence,
	notifier Notifier,
	ids idgen.Generator,
	logger *zap.Logger,
	opts ...Option,
) *Store {
	s := &Store{
		repo:        repo,
		notifier:    notifier,
		ids:         ids,
		now:         time.Now,
		saveTimeout: defaultSaveTimeout,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load загружает обе коллекции. Ошибки загрузки логируются, после Load стор считается готовым в любом случае.
func (s *Store) Load(ctx context.Context) {
	slots, err := s.repo.LoadSlots(ctx)
	if err != nil {
		s.logger.Error("Failed to load availability slots", zap.Error(err))
		slots = nil
	}

	bookings, err := s.repo.LoadBookings(ctx)
	if err != nil {
		s.logger.Error("Failed to load bookings", zap.Error(err))
		bookings = nil
	}

	s.mu.Lock()
	s.state = State{Slots: slots, Bookings: bookings}
	s.mu.Unlock()

	s.loaded.Store(true)
	metrics.SetStoreLoaded(true)

	fields := []zap.Field{
		zap.Int("slots", len(slots)),
		zap.Int("bookings", len(bookings)),
	}
	if lister, ok := s.repo.(keyLister); ok {
		keys, err := lister.Keys(ctx)
		if err != nil {
			s.logger.Warn("Failed to list scheduling keys", zap.Error(err))
		} else {
			fields = append(fields, zap.Strings("keys", keys))
		}
	}

	s.logger.Info("Scheduling store loaded", fields...)
}

// IsLoaded сообщает завершилась ли начальная загрузка
func (s *Store) IsLoaded() bool {
	return s.loaded.Load()
}

// AddAvailability публикует окно доступности инструктора
func (s *Store) AddAvailability(ctx context.Context, actor *model.Actor, start, end time.Time) (model.AvailabilitySlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, slot, err := addAvailability(s.state, actor, s.ids.NewID(), start, end)
	metrics.RecordOperation("add_availability", err)
	if err != nil {
		s.logFailure("add availability", actor, err)
		return model.AvailabilitySlot{}, err
	}

	s.commit(ctx, out)

	s.logger.Info("Availability added",
		zap.String("slot_id", slot.ID),
		zap.String("trainer_id", slot.TrainerID),
		zap.Time("start", slot.Start),
		zap.Time("end", slot.End),
	)

	return slot, nil
}

// RemoveAvailability удаляет слот. Записи внутри слота не затрагиваются.
func (s *Store) RemoveAvailability(ctx context.Context, actor *model.Actor, slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := removeAvailability(s.state, actor, slotID)
	metrics.RecordOperation("remove_availability", err)
	if err != nil {
		s.logFailure("remove availability", actor, err, zap.String("slot_id", slotID))
		return err
	}

	s.commit(ctx, out)

	s.logger.Info("Availability removed",
		zap.String("slot_id", slotID),
		zap.String("actor_id", actor.ID),
	)

	return nil
}

// UpdateAvailabilitySlot переписывает интервал слота
func (s *Store) UpdateAvailabilitySlot(ctx context.Context, actor *model.Actor, slotID string, start, end time.Time) (model.AvailabilitySlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, slot, err := updateAvailability(s.state, actor, slotID, start, end)
	metrics.RecordOperation("update_availability", err)
	if err != nil {
		s.logFailure("update availability", actor, err, zap.String("slot_id", slotID))
		return model.AvailabilitySlot{}, err
	}

	s.commit(ctx, out)

	s.logger.Info("Availability updated",
		zap.String("slot_id", slotID),
		zap.String("actor_id", actor.ID),
	)

	return slot, nil
}

// RequestBooking создаёт запись на занятие
func (s *Store) RequestBooking(ctx context.Context, actor *model.Actor, studentID string, start, end time.Time) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, booking, err := requestBooking(s.state, actor, s.ids.NewID(), studentID, start, end, s.now())
	metrics.RecordOperation("request_booking", err)
	if err != nil {
		s.logFailure("request booking", actor, err, zap.String("student_id", studentID))
		return model.Booking{}, err
	}

	s.commit(ctx, out)
	metrics.RecordBookingCreated(string(booking.CreatedBy), string(booking.Status))

	s.logger.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("student_id", booking.StudentID),
		zap.String("trainer_id", booking.TrainerID),
		zap.String("status", string(booking.Status)),
		zap.String("created_by", string(booking.CreatedBy)),
	)

	return booking, nil
}

// UpdateBookingStatus одобряет (approved) или удаляет (rejected) запись.
// Для rejected возвращает nil.
func (s *Store) UpdateBookingStatus(ctx context.Context, actor *model.Actor, bookingID string, status model.BookingStatus) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, booking, err := updateBookingStatus(s.state, actor, bookingID, status)
	metrics.RecordOperation("update_booking_status", err)
	if err != nil {
		s.logFailure("update booking status", actor, err,
			zap.String("booking_id", bookingID),
			zap.String("status", string(status)),
		)
		return nil, err
	}

	s.commit(ctx, out)

	s.logger.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", string(status)),
		zap.String("actor_id", actor.ID),
	)

	return booking, nil
}

// UpdateBooking переписывает ученика и интервал записи, не трогая статус
func (s *Store) UpdateBooking(ctx context.Context, actor *model.Actor, bookingID, studentID string, start, end time.Time) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, booking, err := updateBooking(s.state, actor, bookingID, studentID, start, end)
	metrics.RecordOperation("update_booking", err)
	if err != nil {
		s.logFailure("update booking", actor, err, zap.String("booking_id", bookingID))
		return model.Booking{}, err
	}

	s.commit(ctx, out)

	s.logger.Info("Booking updated",
		zap.String("booking_id", bookingID),
		zap.String("student_id", studentID),
		zap.String("actor_id", actor.ID),
	)

	return booking, nil
}

// commit применяет результат перехода: состояние, сохранение изменённых коллекций, уведомления.
// Вызывается под s.mu: запись идёт под блокировкой, поэтому порядок сохранений совпадает с порядком переходов.
func (s *Store) commit(ctx context.Context, out Outcome) {
	s.state = out.State

	// Запись не должна обрываться вместе с контекстом запроса
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.saveTimeout)
	defer cancel()

	if out.Changed&ChangedSlots != 0 {
		err := s.repo.SaveSlots(saveCtx, s.state.Slots)
		metrics.RecordPersistenceWrite("availability", err)
		if err != nil {
			s.logger.Error("Failed to save availability slots", zap.Error(err))
		}
	}

	if out.Changed&ChangedBookings != 0 {
		err := s.repo.SaveBookings(saveCtx, s.state.Bookings)
		metrics.RecordPersistenceWrite("bookings", err)
		if err != nil {
			s.logger.Error("Failed to save bookings", zap.Error(err))
		}
	}

	for _, ev := range out.Events {
		title, body := ev.Notification()
		s.notifier.Dispatch(title, body)
	}
}

func (s *Store) logFailure(op string, actor *model.Actor, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("operation", op), zap.Error(err))
	if actor != nil {
		fields = append(fields,
			zap.String("actor_id", actor.ID),
			zap.String("role", string(actor.Role)),
		)
	}
	s.logger.Warn("Scheduling operation rejected", fields...)
}
