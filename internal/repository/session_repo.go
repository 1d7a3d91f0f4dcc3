package repository

import (
	"context"
	"time"

	"hotelms/internal/domain"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

type sessionModel struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	TokenID   string     `gorm:"column:token_id;uniqueIndex"`
	UserID    int64      `gorm:"column:user_id;index"`
	ExpiresAt time.Time  `gorm:"column:expires_at"`
	RevokedAt *time.Time `gorm:"column:revoked_at"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (sessionModel) TableName() string { return "sessions" }

func toDomainSession(m sessionModel) *domain.Session {
	return &domain.Session{
		ID:        m.ID,
		TokenID:   m.TokenID,
		UserID:    m.UserID,
		ExpiresAt: m.ExpiresAt,
		RevokedAt: m.RevokedAt,
		CreatedAt: m.CreatedAt,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	m := sessionModel{
		TokenID:   s.TokenID,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
		RevokedAt: s.RevokedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSession(m)
	return nil
}

func (r *SessionRepository) GetByTokenID(ctx context.Context, tokenID string) (*domain.Session, error) {
	var m sessionModel
	tx := r.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSession(m), nil
}

func (r *SessionRepository) Revoke(ctx context.Context, tokenID string) error {
	return r.db.WithContext(ctx).Model(&sessionModel{}).
		Where("token_id = ? AND revoked_at IS NULL", tokenID).
		Update("revoked_at", time.Now()).Error
}

func (r *SessionRepository) RevokeAllForUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Model(&sessionModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", time.Now()).Error
}
