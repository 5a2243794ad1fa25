package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validChild() Child {
	return Child{
		FirstName:  "Maya",
		Age:        8,
		SchoolName: "Hillside Primary",
		YearGroup:  3,
	}
}

func TestChildValidate_OK(t *testing.T) {
	c := validChild()
	assert.NoError(t, c.Validate())

	// Both year groups allowed for the age pass.
	c.YearGroup = 4
	assert.NoError(t, c.Validate())
}

func TestChildValidate_AgeRange(t *testing.T) {
	c := validChild()
	c.Age = 4
	assert.ErrorIs(t, c.Validate(), ErrInvalidChild)

	c.Age = 12
	assert.ErrorIs(t, c.Validate(), ErrInvalidChild)
}

func TestChildValidate_SchoolName(t *testing.T) {
	c := validChild()
	c.SchoolName = ""
	assert.ErrorIs(t, c.Validate(), ErrInvalidChild)
}

func TestChildValidate_YearGroupBounds(t *testing.T) {
	c := validChild()
	c.YearGroup = -1
	assert.ErrorIs(t, c.Validate(), ErrInvalidChild)

	c.YearGroup = 7
	assert.ErrorIs(t, c.Validate(), ErrInvalidChild)
}

func TestChildValidate_YearGroupAgeAlignment(t *testing.T) {
	c := validChild()
	c.Age = 8
	c.YearGroup = 1 // age 8 expects year 3 or 4
	assert.ErrorIs(t, c.Validate(), ErrInvalidChild)

	// Age 11 allows Year 6 only.
	c.Age = 11
	c.YearGroup = 6
	assert.NoError(t, c.Validate())
	c.YearGroup = 5
	assert.ErrorIs(t, c.Validate(), ErrInvalidChild)

	// Reception is valid for age 5.
	c.Age = 5
	c.YearGroup = 0
	assert.NoError(t, c.Validate())
}
