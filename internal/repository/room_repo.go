package repository

import (
	"context"
	"strings"
	"time"

	"hotelms/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Number      string    `gorm:"column:number;uniqueIndex"`
	Type        string    `gorm:"column:type"`
	NightlyRate float64   `gorm:"column:nightly_rate"`
	Status      string    `gorm:"column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:          m.ID,
		Number:      m.Number,
		Type:        domain.RoomType(m.Type),
		NightlyRate: m.NightlyRate,
		Status:      domain.RoomStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:          r.ID,
		Number:      strings.TrimSpace(r.Number),
		Type:        string(r.Type),
		NightlyRate: r.NightlyRate,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).Where("number = ?", strings.TrimSpace(number)).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&roomModel{}).
		Where("number = ?", strings.TrimSpace(number)).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	return r.db.WithContext(ctx).Model(&roomModel{}).Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var models []roomModel
	tx := r.db.WithContext(ctx).Order("number ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Room, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

// ListVacantByType pages through vacant rooms of a type ordered by
// number, so callers can consume lazily batch by batch.
func (r *RoomRepository) ListVacantByType(ctx context.Context, roomType domain.RoomType, limit, offset int) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).
		Where("status = ?", string(domain.RoomVacant)).
		Order("number ASC").
		Limit(limit).
		Offset(offset)
	if roomType != "" {
		q = q.Where("type = ?", string(roomType))
	}

	var models []roomModel
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Room, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}
