package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "pantry/internal/errors"
	"pantry/internal/model"
)

func TestUserService_GetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("returns user with preferences and inventory", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindProfile", mock.Anything, userID).Return(&model.User{
			ID:          userID,
			Name:        "Al",
			Preferences: &model.UserPreferences{UserID: userID},
			Inventory:   []model.Ingredient{{Name: "Tomato", Quantity: 5}},
		}, nil)

		svc := NewUserService(users, new(MockPreferencesRepository), nil, time.Minute)
		user, err := svc.GetProfile(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, "Al", user.Name)
		assert.NotNil(t, user.Preferences)
		assert.Len(t, user.Inventory, 1)
		users.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindProfile", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(users, new(MockPreferencesRepository), nil, time.Minute)
		_, err := svc.GetProfile(context.Background(), userID)

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserService_UpdatePreferences(t *testing.T) {
	userID := uuid.New()

	t.Run("normalizes sets before upsert", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
		prefs := new(MockPreferencesRepository)
		prefs.On("Upsert", mock.Anything, mock.MatchedBy(func(p *model.UserPreferences) bool {
			return p.UserID == userID &&
				assert.ObjectsAreEqual([]string{"vegan"}, []string(p.Dietary)) &&
				assert.ObjectsAreEqual([]string{"peanut", "soy"}, []string(p.Allergies)) &&
				len(p.Cuisines) == 0 && p.Cuisines != nil
		})).Return(&model.UserPreferences{UserID: userID}, nil)

		svc := NewUserService(users, prefs, nil, time.Minute)
		got, err := svc.UpdatePreferences(context.Background(), userID,
			[]string{"vegan", "vegan", " "},
			[]string{" peanut", "soy", "peanut"},
			nil,
		)

		require.NoError(t, err)
		assert.Equal(t, userID, got.UserID)
		prefs.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
		prefs := new(MockPreferencesRepository)

		svc := NewUserService(users, prefs, nil, time.Minute)
		_, err := svc.UpdatePreferences(context.Background(), userID, nil, nil, nil)

		assert.Equal(t, apperrors.ErrUserNotFound, err)
		prefs.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	userID := uuid.New()

	users := new(MockUserRepository)
	users.On("Delete", mock.Anything, userID).Return(nil).Once()
	users.On("Delete", mock.Anything, userID).Return(gorm.ErrRecordNotFound).Once()

	svc := NewUserService(users, new(MockPreferencesRepository), nil, time.Minute)

	assert.NoError(t, svc.DeleteUser(context.Background(), userID))
	assert.Equal(t, apperrors.ErrUserNotFound, svc.DeleteUser(context.Background(), userID))
	users.AssertExpectations(t)
}
