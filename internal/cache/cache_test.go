package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type profile struct {
	Name string `json:"name"`
}

func TestNilClientIsAlwaysAMiss(t *testing.T) {
	var c *Client
	ctx := context.Background()

	c.SetJSON(ctx, "profile:1", profile{Name: "Al"}, time.Minute)
	var got profile
	assert.False(t, c.GetJSON(ctx, "profile:1", &got))
	c.Delete(ctx, "profile:1")
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestUnreachableRedisFailsSafe(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, c.Ping(ctx))

	c.SetJSON(ctx, "profile:1", profile{Name: "Al"}, time.Minute)
	var got profile
	assert.False(t, c.GetJSON(ctx, "profile:1", &got))
	assert.Empty(t, got.Name)
	c.Delete(ctx, "profile:1")
}
