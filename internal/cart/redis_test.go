package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	t.Skip("Integration test - requires Redis")

	rs, err := NewRedisStore("localhost:6379", "", 0)
	require.NoError(t, err)
	defer rs.Close()

	ctx := context.Background()

	c := New()
	c.AddItem(1, 2)
	require.NoError(t, rs.Save(ctx, 42, c))

	loaded, err := rs.Load(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, c.Items(), loaded.Items())

	missing, err := rs.Load(ctx, 4242)
	require.NoError(t, err)
	assert.True(t, missing.IsEmpty())
}
