package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/littlejems/diagnostics-api/internal/dto"
	"github.com/littlejems/diagnostics-api/internal/model"
	"github.com/littlejems/diagnostics-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newChildService(t *testing.T) (ChildService, *harness) {
	t.Helper()
	h := newHarness(t, &fakeGenerator{}, "error")
	return NewChildService(repository.NewChildRepository(h.db)), h
}

func TestChildService_CreateAndGet(t *testing.T) {
	svc, _ := newChildService(t)
	parentID := uuid.New()

	created, err := svc.CreateChild(dto.ChildCreateDTO{
		ParentID:   parentID,
		FirstName:  "Maya",
		Age:        8,
		SchoolName: "Hillside Primary",
		YearGroup:  3,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, parentID, created.ParentID)

	fetched, err := svc.GetChild(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maya", fetched.FirstName)
	assert.Equal(t, 3, fetched.YearGroup)
}

func TestChildService_CreateRejectsInvalidProfile(t *testing.T) {
	svc, _ := newChildService(t)

	_, err := svc.CreateChild(dto.ChildCreateDTO{
		ParentID:   uuid.New(),
		FirstName:  "Maya",
		Age:        8,
		SchoolName: "Hillside Primary",
		YearGroup:  1, // age 8 expects year 3 or 4
	})
	assert.ErrorIs(t, err, model.ErrInvalidChild)
}

func TestChildService_ListByParent(t *testing.T) {
	svc, _ := newChildService(t)
	parentID := uuid.New()

	for _, name := range []string{"Maya", "Leo"} {
		_, err := svc.CreateChild(dto.ChildCreateDTO{
			ParentID:   parentID,
			FirstName:  name,
			Age:        8,
			SchoolName: "Hillside Primary",
			YearGroup:  3,
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateChild(dto.ChildCreateDTO{
		ParentID:   uuid.New(),
		FirstName:  "Other",
		Age:        6,
		SchoolName: "Elsewhere Primary",
		YearGroup:  1,
	})
	require.NoError(t, err)

	children, err := svc.ListChildren(parentID)
	require.NoError(t, err)
	assert.Len(t, children, 2)
}

func TestChildService_Update(t *testing.T) {
	svc, _ := newChildService(t)

	created, err := svc.CreateChild(dto.ChildCreateDTO{
		ParentID:   uuid.New(),
		FirstName:  "Maya",
		Age:        8,
		SchoolName: "Hillside Primary",
		YearGroup:  3,
	})
	require.NoError(t, err)

	newAge := 9
	newYear := 4
	updated, err := svc.UpdateChild(created.ID, dto.ChildUpdateDTO{Age: &newAge, YearGroup: &newYear})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Age)
	assert.Equal(t, 4, updated.YearGroup)

	// Partial updates still have to leave a coherent profile behind.
	badYear := 0
	_, err = svc.UpdateChild(created.ID, dto.ChildUpdateDTO{YearGroup: &badYear})
	assert.ErrorIs(t, err, model.ErrInvalidChild)
}

func TestChildService_Delete(t *testing.T) {
	svc, _ := newChildService(t)

	created, err := svc.CreateChild(dto.ChildCreateDTO{
		ParentID:   uuid.New(),
		FirstName:  "Maya",
		Age:        8,
		SchoolName: "Hillside Primary",
		YearGroup:  3,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteChild(created.ID))
	_, err = svc.GetChild(created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.DeleteChild(uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
