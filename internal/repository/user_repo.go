package repository

import (
	"context"
	"strings"
	"time"

	"hotelms/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID                  int64      `gorm:"column:id;primaryKey"`
	Username            string     `gorm:"column:username;uniqueIndex"`
	PasswordHash        string     `gorm:"column:password_hash"`
	Role                string     `gorm:"column:role"`
	Active              bool       `gorm:"column:active"`
	FailedLoginAttempts int        `gorm:"column:failed_login_attempts"`
	LockedUntil         *time.Time `gorm:"column:locked_until"`
	CreatedAt           time.Time  `gorm:"column:created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:                  m.ID,
		Username:            m.Username,
		PasswordHash:        m.PasswordHash,
		Role:                domain.UserRole(m.Role),
		Active:              m.Active,
		FailedLoginAttempts: m.FailedLoginAttempts,
		LockedUntil:         m.LockedUntil,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:                  u.ID,
		Username:            strings.TrimSpace(strings.ToLower(u.Username)),
		PasswordHash:        u.PasswordHash,
		Role:                string(u.Role),
		Active:              u.Active,
		FailedLoginAttempts: u.FailedLoginAttempts,
		LockedUntil:         u.LockedUntil,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(strings.ToLower(username))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("username = ?", strings.TrimSpace(strings.ToLower(username))).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *UserRepository) RecordLoginFailure(ctx context.Context, id int64, attempts int, lockedUntil *time.Time) error {
	updates := map[string]any{"failed_login_attempts": attempts}
	if lockedUntil != nil {
		updates["locked_until"] = *lockedUntil
	}
	return r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) ResetLoginFailures(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Updates(map[string]any{
		"failed_login_attempts": 0,
		"locked_until":          nil,
	}).Error
}

func (r *UserRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).
		Update("active", active).Error
}
