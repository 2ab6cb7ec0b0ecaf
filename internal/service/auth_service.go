package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/moyan78641/memoria/internal/model"
	"github.com/moyan78641/memoria/internal/repository"
)

// Auth failure modes the handlers translate into HTTP statuses.
var (
	ErrAlreadyInitialized = errors.New("已经初始化过了")
	ErrNotInitialized     = errors.New("请先初始化")
	ErrWrongPassword      = errors.New("密码错误")
)

const minPasswordLen = 6

// AuthService implements the single-tenant password + opaque-token scheme:
// one bcrypt hash and one live session token, both kept in the settings store.
// Issuing a new token invalidates the previous one.
type AuthService struct {
	settings *repository.SettingRepository
}

func NewAuthService(settings *repository.SettingRepository) *AuthService {
	return &AuthService{settings: settings}
}

// Status reports whether a password has been set, plus the site name.
func (s *AuthService) Status(ctx context.Context) (initialized bool, siteName string, err error) {
	hash, err := s.settings.Get(ctx, model.SettingPasswordHash)
	if err != nil {
		return false, "", err
	}
	siteName, err = s.settings.Get(ctx, model.SettingSiteName)
	if err != nil {
		return false, "", err
	}
	if siteName == "" {
		siteName = "MemorialHub"
	}
	return hash != "", siteName, nil
}

// Setup sets the password on first run and issues the initial session token.
func (s *AuthService) Setup(ctx context.Context, password, siteName string) (string, error) {
	existing, err := s.settings.Get(ctx, model.SettingPasswordHash)
	if err != nil {
		return "", err
	}
	if existing != "" {
		return "", ErrAlreadyInitialized
	}
	if len(password) < minPasswordLen {
		return "", fmt.Errorf("%w: 密码至少%d位", ErrInvalidInput, minPasswordLen)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", err
	}
	if err := s.settings.Set(ctx, model.SettingPasswordHash, hash); err != nil {
		return "", err
	}
	if siteName == "" {
		siteName = "MemorialHub"
	}
	if err := s.settings.Set(ctx, model.SettingSiteName, siteName); err != nil {
		return "", err
	}

	return s.issueToken(ctx)
}

// Login verifies the password and rotates the session token.
func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	hash, err := s.settings.Get(ctx, model.SettingPasswordHash)
	if err != nil {
		return "", err
	}
	if hash == "" {
		return "", ErrNotInitialized
	}
	if !checkPassword(password, hash) {
		return "", ErrWrongPassword
	}
	return s.issueToken(ctx)
}

// ChangePassword replaces the password and rotates the token, logging out
// any other session.
func (s *AuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error) {
	hash, err := s.settings.Get(ctx, model.SettingPasswordHash)
	if err != nil {
		return "", err
	}
	if hash == "" {
		return "", ErrNotInitialized
	}
	if !checkPassword(oldPassword, hash) {
		return "", ErrWrongPassword
	}
	if len(newPassword) < minPasswordLen {
		return "", fmt.Errorf("%w: 新密码至少%d位", ErrInvalidInput, minPasswordLen)
	}

	newHash, err := hashPassword(newPassword)
	if err != nil {
		return "", err
	}
	if err := s.settings.Set(ctx, model.SettingPasswordHash, newHash); err != nil {
		return "", err
	}
	return s.issueToken(ctx)
}

// ValidateToken reports whether token matches the live session token.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (bool, error) {
	stored, err := s.settings.Get(ctx, model.SettingSessionToken)
	if err != nil {
		return false, err
	}
	return stored != "" && token == stored, nil
}

func (s *AuthService) issueToken(ctx context.Context) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := hex.EncodeToString(buf)
	if err := s.settings.Set(ctx, model.SettingSessionToken, token); err != nil {
		return "", err
	}
	return token, nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 8)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(bytes), nil
}

func checkPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
