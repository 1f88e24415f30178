package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearanceOfficesAreIndependent(t *testing.T) {
	record := NewClearanceRecord(301)

	record.SetCleared(OfficeLibrary, true)
	record.SetCleared(OfficeDOITP, true)

	assert.True(t, record.Cleared(OfficeLibrary))
	assert.True(t, record.Cleared(OfficeDOITP))
	assert.False(t, record.Cleared(OfficeSKS))
	assert.False(t, record.Cleared(OfficeCareerOffice))

	// Unsetting one office leaves the others untouched
	record.SetCleared(OfficeLibrary, false)
	assert.False(t, record.Cleared(OfficeLibrary))
	assert.True(t, record.Cleared(OfficeDOITP))
}

func TestAllClearAndOutstanding(t *testing.T) {
	record := NewClearanceRecord(301)
	assert.False(t, record.AllClear())
	assert.Equal(t, ClearanceOffices, record.Outstanding())

	record.SetCleared(OfficeLibrary, true)
	record.SetCleared(OfficeSKS, true)
	record.SetCleared(OfficeCareerOffice, true)

	assert.False(t, record.AllClear())
	assert.Equal(t, []ClearanceOffice{OfficeDOITP}, record.Outstanding())

	record.SetCleared(OfficeDOITP, true)
	assert.True(t, record.AllClear())
	assert.Empty(t, record.Outstanding())
}

func TestOfficeForRole(t *testing.T) {
	office, ok := OfficeForRole(RoleLibrary)
	assert.True(t, ok)
	assert.Equal(t, OfficeLibrary, office)

	office, ok = OfficeForRole(RoleCareerOffice)
	assert.True(t, ok)
	assert.Equal(t, OfficeCareerOffice, office)

	// Approval-chain roles own no office flag
	_, ok = OfficeForRole(RoleAdvisor)
	assert.False(t, ok)
	_, ok = OfficeForRole(RoleStudent)
	assert.False(t, ok)
}
