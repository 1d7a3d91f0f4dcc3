package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotelms/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	maxFailedLoginAttempts = 5
	lockoutDuration        = 15 * time.Minute

	// Compared against when the identifier is unknown so failed logins
	// cost the same whether or not the account exists.
	dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

type tokenIssuer interface {
	GenerateToken(userID int64, role string) (token string, jti string, err error)
	TTL() time.Duration
}

// Service contains all business logic for authentication and sessions.
type Service struct {
	users    UserRepository
	sessions SessionRepository
	jwt      tokenIssuer
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(users UserRepository, sessions SessionRepository, jwt tokenIssuer) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		jwt:      jwt,
	}
}

// Register creates a new account. Admin only; usernames are unique and
// stored lowercased.
func (s *Service) Register(ctx context.Context, actor domain.UserRole, req RegisterRequest) (*domain.User, error) {
	if !actor.CanManageUsers() {
		return nil, ErrForbidden
	}

	role := domain.UserRole(strings.ToLower(strings.TrimSpace(req.Role)))
	if role != domain.RoleAdmin && role != domain.RoleStaff {
		return nil, ErrValidation
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || req.Password == "" {
		return nil, ErrValidation
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateIdentifier
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateIdentifier
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login validates credentials and starts a session. Unknown identifiers
// and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, strings.ToLower(strings.TrimSpace(req.Username)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(req.Password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	now := time.Now()
	if !user.Active {
		return nil, ErrAccountDisabled
	}
	if user.LockedUntil != nil && user.LockedUntil.After(now) {
		return nil, ErrAccountLocked
	}
	if user.LockedUntil != nil {
		// lock has expired; the next failure starts a fresh count
		user.FailedLoginAttempts = 0
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		failedAttempts := user.FailedLoginAttempts + 1
		var lockedUntil *time.Time
		if failedAttempts >= maxFailedLoginAttempts {
			t := now.Add(lockoutDuration)
			lockedUntil = &t
		}
		if updateErr := s.users.RecordLoginFailure(ctx, user.ID, failedAttempts, lockedUntil); updateErr != nil {
			return nil, updateErr
		}
		if lockedUntil != nil {
			return nil, ErrAccountLocked
		}
		return nil, ErrInvalidCredentials
	}

	if user.FailedLoginAttempts > 0 || user.LockedUntil != nil {
		if err := s.users.ResetLoginFailures(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	token, jti, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Create(ctx, &domain.Session{
		TokenID:   jti,
		UserID:    user.ID,
		ExpiresAt: now.Add(s.jwt.TTL()),
	}); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: token}, nil
}

// Logout ends the session behind the token. Idempotent.
func (s *Service) Logout(ctx context.Context, tokenID string) error {
	if err := s.sessions.Revoke(ctx, tokenID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return nil
}

func (s *Service) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// Deactivate disables an account and revokes all of its sessions.
// Accounts are never deleted.
func (s *Service) Deactivate(ctx context.Context, actor domain.UserRole, username string) error {
	if !actor.CanManageUsers() {
		return ErrForbidden
	}

	user, err := s.users.GetByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.users.SetActive(ctx, user.ID, false); err != nil {
		return err
	}
	return s.sessions.RevokeAllForUser(ctx, user.ID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
