package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Freeeeeet/drivingschool_bot/internal/model"
)

// Ключи коллекций планировщика. Другие компоненты не должны писать в них напрямую.
const (
	KeyPrefix       = "scheduling:"
	AvailabilityKey = KeyPrefix + "availability"
	BookingsKey     = KeyPrefix + "bookings"
)

// ScheduleRepository сохраняет слоты и записи как JSON-массивы под двумя ключами.
// Ключи пишутся независимо, общей транзакции нет.
type ScheduleRepository struct {
	kv KeyValueStore
}

func NewScheduleRepository(kv KeyValueStore) *ScheduleRepository {
	return &ScheduleRepository{kv: kv}
}

// LoadSlots загружает слоты. Отсутствие ключа - пустая коллекция.
func (r *ScheduleRepository) LoadSlots(ctx context.Context) ([]model.AvailabilitySlot, error) {
	slots := []model.AvailabilitySlot{}
	if err := r.load(ctx, AvailabilityKey, &slots); err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}
	return slots, nil
}

// LoadBookings загружает записи. Отсутствие ключа - пустая коллекция.
func (r *ScheduleRepository) LoadBookings(ctx context.Context) ([]model.Booking, error) {
	bookings := []model.Booking{}
	if err := r.load(ctx, BookingsKey, &bookings); err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	return bookings, nil
}

// SaveSlots перезаписывает коллекцию слотов целиком
func (r *ScheduleRepository) SaveSlots(ctx context.Context, slots []model.AvailabilitySlot) error {
	if slots == nil {
		slots = []model.AvailabilitySlot{}
	}
	if err := r.save(ctx, AvailabilityKey, slots); err != nil {
		return fmt.Errorf("save availability: %w", err)
	}
	return nil
}

// SaveBookings перезаписывает коллекцию записей целиком
func (r *ScheduleRepository) SaveBookings(ctx context.Context, bookings []model.Booking) error {
	if bookings == nil {
		bookings = []model.Booking{}
	}
	if err := r.save(ctx, BookingsKey, bookings); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}
	return nil
}

// Keys список ключей планировщика в хранилище
func (r *ScheduleRepository) Keys(ctx context.Context) ([]string, error) {
	return r.kv.List(ctx, KeyPrefix)
}

func (r *ScheduleRepository) load(ctx context.Context, key string, dst any) error {
	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (r *ScheduleRepository) save(ctx context.Context, key string, src any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.kv.Set(ctx, key, raw)
}
