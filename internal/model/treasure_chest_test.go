package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreasureChest_Unlock(t *testing.T) {
	chest := &TreasureChest{IsLocked: true}
	first := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	require.True(t, chest.Unlock(first))
	assert.False(t, chest.IsLocked)
	require.NotNil(t, chest.UnlockedAt)
	assert.Equal(t, first, *chest.UnlockedAt)

	assert.False(t, chest.Unlock(first.Add(time.Hour)))
	assert.Equal(t, first, *chest.UnlockedAt)
}
