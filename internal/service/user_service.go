package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pantry/internal/cache"
	apperrors "pantry/internal/errors"
	"pantry/internal/model"
	"pantry/internal/repository"
)

// UserService exposes profile operations.
type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdatePreferences(ctx context.Context, id uuid.UUID, dietary, allergies, cuisines []string) (*model.UserPreferences, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	users       repository.UserRepository
	preferences repository.PreferencesRepository
	cache       *cache.Client
	ttl         time.Duration
}

// NewUserService builds a UserService. Profiles are cached for ttl; a nil
// cache disables caching.
func NewUserService(users repository.UserRepository, preferences repository.PreferencesRepository, cache *cache.Client, ttl time.Duration) UserService {
	return &userService{users: users, preferences: preferences, cache: cache, ttl: ttl}
}

func profileCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("profile:%s", id.String())
}

// GetProfile returns the user with preferences and inventory.
func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, profileCacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.users.FindProfile(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	s.cache.SetJSON(ctx, profileCacheKey(id), user, s.ttl)
	return user, nil
}

// UpdatePreferences replaces the three preference sets, creating the row
// when it does not exist yet.
func (s *userService) UpdatePreferences(ctx context.Context, id uuid.UUID, dietary, allergies, cuisines []string) (*model.UserPreferences, error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	prefs, err := s.preferences.Upsert(ctx, &model.UserPreferences{
		UserID:    id,
		Dietary:   model.StringSet(dietary),
		Allergies: model.StringSet(allergies),
		Cuisines:  model.StringSet(cuisines),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert preferences: %w", err)
	}

	s.cache.Delete(ctx, profileCacheKey(id))
	return prefs, nil
}

// DeleteUser removes the user along with its preferences and inventory.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	s.cache.Delete(ctx, profileCacheKey(id))
	return nil
}
