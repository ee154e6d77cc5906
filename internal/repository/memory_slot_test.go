package repository_test

import (
	"testing"

	"github.com/nikolayk812/cartstate-demo/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySlot(t *testing.T) {
	testSlot(t, repository.NewMemorySlot(), "@RocketShoes:cart")
}

func TestMemorySlot_CopiesValues(t *testing.T) {
	ctx := t.Context()
	slot := repository.NewMemorySlot()

	value := []byte(`[]`)
	require.NoError(t, slot.Write(ctx, "k", value))
	value[0] = 'x'

	got, _, err := slot.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}
