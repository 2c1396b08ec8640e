package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karmaty_backend/internals/constants"
	familyModel "karmaty_backend/internals/features/families/model"
)

func TestCreateAppliesDefaults(t *testing.T) {
	db := openTestDB(t)
	svc := NewFamilyService(db)

	f := familyModel.FamilyModel{
		FamilyName:         "عائلة يوسف",
		FamilyMembersCount: 4,
		FamilyPhone1:       "01001234567",
		FamilyChurchID:     "Ab1x",
	}
	require.NoError(t, svc.Create(&f))

	reloaded, err := svc.FindByID(f.FamilyID)
	require.NoError(t, err)
	assert.Equal(t, constants.FamilyDefaultPassword, reloaded.FamilyPassword)
	assert.Empty(t, reloaded.Payments())
}

func TestUpdatePreservesPayments(t *testing.T) {
	db := openTestDB(t)
	svc := NewFamilyService(db)
	f := seedFamily(t, db, "عائلة يوسف", "Ab1x")

	_, err := NewSubscriptionService(db).TogglePayment(f.FamilyID, 2025, 8, toggleNow)
	require.NoError(t, err)

	// A profile edit, even one that tries to smuggle in a ledger, must
	// leave the payments untouched.
	updated, err := svc.Update(f.FamilyID, map[string]interface{}{
		"family_name":     "عائلة يوسف الجديدة",
		"family_payments": nil,
	})
	require.NoError(t, err)

	assert.Equal(t, "عائلة يوسف الجديدة", updated.FamilyName)
	_, paid := updated.Payments()["2025-08"]
	assert.True(t, paid)
}

func TestListScopedAndSearchable(t *testing.T) {
	db := openTestDB(t)
	svc := NewFamilyService(db)
	seedFamily(t, db, "عائلة يوسف", "Ab1x")
	seedFamily(t, db, "عائلة مرقس", "Ab1x")
	seedFamily(t, db, "عائلة بطرس", "Zz9q")

	families, err := svc.List("Ab1x", "")
	require.NoError(t, err)
	assert.Len(t, families, 2)

	families, err = svc.List("Ab1x", "مرقس")
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "عائلة مرقس", families[0].FamilyName)
}
