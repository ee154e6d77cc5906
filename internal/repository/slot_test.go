package repository_test

import (
	"testing"

	"github.com/nikolayk812/cartstate-demo/internal/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSlot runs the behaviour every slot backend shares.
func testSlot(t *testing.T, slot port.Slot, key string) {
	t.Helper()
	ctx := t.Context()

	_, found, err := slot.Read(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, slot.Write(ctx, key, []byte(`[{"id":1}]`)))

	got, found, err := slot.Read(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":1}]`, string(got))

	// overwrite
	require.NoError(t, slot.Write(ctx, key, []byte(`[]`)))

	got, found, err = slot.Read(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, string(got))

	_, _, err = slot.Read(ctx, "")
	require.EqualError(t, err, "key is empty")

	err = slot.Write(ctx, "", []byte(`[]`))
	require.EqualError(t, err, "key is empty")
}
