package router

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry/internal/client"
	"pantry/internal/model"
)

// TestRegisterLoginMergeAndDecrement walks the home-screen flow end to end
// through the REST client.
func TestRegisterLoginMergeAndDecrement(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s.e)
	defer srv.Close()

	api := client.New(srv.URL)
	ctx := context.Background()

	user, err := api.Register(ctx, "Al", "NYC", "al@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "al@x.com", user.Email)

	session, err := api.Login(ctx, "al@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)

	_, err = api.AddIngredient(ctx, session, "Tomato", 2, nil, "")
	require.NoError(t, err)
	tomato, err := api.AddIngredient(ctx, session, "Tomato", 3, nil, "")
	require.NoError(t, err)
	assert.Equal(t, 5, tomato.Quantity)

	items, err := api.Inventory(ctx, session)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Empty(t, client.LowStock(items))

	updated, err := api.SetQuantity(ctx, session, tomato.ID, 1)
	require.NoError(t, err)
	assert.Len(t, client.LowStock([]model.Ingredient{*updated}), 1)

	_, removed, err := api.Decrement(ctx, session, *updated)
	require.NoError(t, err)
	assert.True(t, removed)

	items, err = api.Inventory(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = api.Recipes(ctx, session)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "EMPTY_INVENTORY", apiErr.Code)

	require.NoError(t, api.DeleteAccount(ctx, session))
	_, err = api.Login(ctx, "al@x.com", "secret1")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
}
