package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet-backend/internal/repository/memory"
)

func TestSeedDemoDrivers(t *testing.T) {
	repo := memory.NewDriverRepository()
	ctx := context.Background()

	seeded := memory.SeedDemoDrivers(repo)
	assert.Greater(t, seeded, 0)

	// Dev-режим без базы должен принимать позиции и сообщения
	exists, err := repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	drivers, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, drivers, seeded)
	for _, d := range drivers {
		assert.True(t, d.Active)
		assert.NotEmpty(t, d.Username)
	}
}
