package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type AuthService struct {
	Users   *repository.UserRepository
	Records *repository.RecordRepository
	Redis   *redis.Client
	Cfg     *config.Config
}

func NewAuthService(users *repository.UserRepository, records *repository.RecordRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{Users: users, Records: records, Redis: rdb, Cfg: cfg}
}

// NormalizeEmail produces the canonical identifier used as the document
// key everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return util.ErrWeakPassword
	}
	hasUpper, hasDigit := false, false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasUpper || !hasDigit {
		return util.ErrWeakPassword
	}
	return nil
}

func (s *AuthService) Signup(email, password, fullName string) (*model.User, error) {
	email = NormalizeEmail(email)
	fullName = strings.TrimSpace(fullName)

	if !emailPattern.MatchString(email) {
		return nil, util.ErrInvalidEmail
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if len(fullName) < 2 {
		return nil, util.ErrShortName
	}

	_, err := s.Users.FindByEmail(email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    email,
		Password: string(hashed),
		FullName: fullName,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}

	// Seed the per-user document so every later merge has a target row.
	if err := s.Records.EnsureExists(email, fullName); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(email, password string) (*model.User, error) {
	email = NormalizeEmail(email)

	user, err := s.Users.FindByEmail(email)
	if err != nil {
		return nil, util.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}
	return user, nil
}

// IssueTokens returns an access/refresh pair whose subject is the
// normalized email.
func (s *AuthService) IssueTokens(user *model.User) (access, refresh string, err error) {
	access, err = util.GenerateAccessToken(user.Email, user.FullName, s.Cfg.JWT.Secret, s.Cfg.JWT.AccessExpire)
	if err != nil {
		return "", "", err
	}
	refresh, err = util.GenerateRefreshToken(user.Email, s.Cfg.JWT.Secret, s.Cfg.JWT.RefreshExpire)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := util.ParseJWT(refreshToken, s.Cfg.JWT.Secret)
	if err != nil || claims.TokenType != util.TokenRefresh {
		return "", util.ErrInvalidRefreshToken
	}
	if s.isRevoked(ctx, refreshToken) {
		return "", util.ErrInvalidRefreshToken
	}

	user, err := s.Users.FindByEmail(claims.Email())
	if err != nil {
		return "", util.ErrInvalidRefreshToken
	}
	return util.GenerateAccessToken(user.Email, user.FullName, s.Cfg.JWT.Secret, s.Cfg.JWT.AccessExpire)
}

// Logout revokes the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, rawToken string, claims *util.Claims) error {
	if s.Redis == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.Redis.Set(ctx, util.RevocationKey(rawToken), "1", ttl).Err()
}

// isRevoked fails open when redis is down; the token signature check
// still guards the request.
func (s *AuthService) isRevoked(ctx context.Context, rawToken string) bool {
	if s.Redis == nil {
		return false
	}
	n, err := s.Redis.Exists(ctx, util.RevocationKey(rawToken)).Result()
	return err == nil && n > 0
}

func (s *AuthService) GetUser(email string) (*model.User, error) {
	user, err := s.Users.FindByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ChangePassword(email, current, next string) error {
	user, err := s.GetUser(email)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return util.ErrInvalidCredentials
	}
	if err := validatePassword(next); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Users.UpdatePassword(user.Email, string(hashed))
}
