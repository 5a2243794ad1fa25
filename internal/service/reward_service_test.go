package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/littlejems/diagnostics-api/internal/dto"
	"github.com/littlejems/diagnostics-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRewardService(t *testing.T) (RewardService, *harness) {
	t.Helper()
	h := newHarness(t, &fakeGenerator{}, "error")
	return NewRewardService(h.chestRepo, repository.NewChildRepository(h.db)), h
}

func TestRewardService_CreateChest(t *testing.T) {
	svc, h := newRewardService(t)
	child := h.createChild(t)

	chest, err := svc.CreateChest(child.ID, dto.ChestCreateDTO{
		RewardDescription: "Trip to the zoo",
		RewardValue:       5,
	})
	require.NoError(t, err)
	assert.Equal(t, child.ID, chest.ChildID)
	assert.True(t, chest.IsLocked)
	assert.Nil(t, chest.UnlockedAt)

	// One chest per child.
	_, err = svc.CreateChest(child.ID, dto.ChestCreateDTO{
		RewardDescription: "Second chest",
		RewardValue:       1,
	})
	assert.ErrorIs(t, err, ErrChestExists)
}

func TestRewardService_CreateChest_UnknownChild(t *testing.T) {
	svc, _ := newRewardService(t)

	_, err := svc.CreateChest(uuid.New(), dto.ChestCreateDTO{
		RewardDescription: "Trip to the zoo",
		RewardValue:       5,
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRewardService_GetChestForChild(t *testing.T) {
	svc, h := newRewardService(t)
	child := h.createChild(t)

	_, err := svc.GetChestForChild(child.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = svc.CreateChest(child.ID, dto.ChestCreateDTO{
		RewardDescription: "Trip to the zoo",
		RewardValue:       5,
	})
	require.NoError(t, err)

	chest, err := svc.GetChestForChild(child.ID)
	require.NoError(t, err)
	assert.Equal(t, "Trip to the zoo", chest.RewardDescription)
}
