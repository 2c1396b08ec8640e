package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"karmaty_backend/internals/constants"
	database "karmaty_backend/internals/databases"
	personModel "karmaty_backend/internals/features/people/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func seedPerson(t *testing.T, db *gorm.DB, churchID string) *personModel.PersonModel {
	t.Helper()
	p := personModel.PersonModel{
		PersonName:     "Test Student",
		PersonPhone:    "010" + uuid.NewString()[:8],
		PersonPassword: "x",
		PersonRole:     constants.RoleStudent,
		PersonStage:    "إعدادي",
		PersonChurchID: churchID,
	}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func TestSetStatusRoundTrip(t *testing.T) {
	db := openTestDB(t)
	svc := NewLedgerService(db)
	p := seedPerson(t, db, "Ab1x")

	present, err := svc.GetStatus(p.PersonID, "2025-08-01")
	require.NoError(t, err)
	assert.False(t, present, "absence is the default")

	require.NoError(t, svc.SetStatus(p.PersonID, "2025-08-01", true))
	present, err = svc.GetStatus(p.PersonID, "2025-08-01")
	require.NoError(t, err)
	assert.True(t, present)

	require.NoError(t, svc.SetStatus(p.PersonID, "2025-08-01", false))
	present, err = svc.GetStatus(p.PersonID, "2025-08-01")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestSetStatusIdempotent(t *testing.T) {
	db := openTestDB(t)
	svc := NewLedgerService(db)
	p := seedPerson(t, db, "Ab1x")

	require.NoError(t, svc.SetStatus(p.PersonID, "2025-08-08", true))
	require.NoError(t, svc.SetStatus(p.PersonID, "2025-08-08", true))

	count, err := svc.CountInMonth(p.PersonID, 2025, 8)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Clearing an absent cell stays a no-op.
	require.NoError(t, svc.SetStatus(p.PersonID, "2025-08-15", false))
	count, err = svc.CountInMonth(p.PersonID, 2025, 8)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSetStatusUnknownPersonIsNoOp(t *testing.T) {
	db := openTestDB(t)
	svc := NewLedgerService(db)

	ghost := uuid.New()
	require.NoError(t, svc.SetStatus(ghost, "2025-08-01", true))

	present, err := svc.GetStatus(ghost, "2025-08-01")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestCountInMonthIgnoresOtherMonths(t *testing.T) {
	db := openTestDB(t)
	svc := NewLedgerService(db)
	p := seedPerson(t, db, "Ab1x")

	require.NoError(t, svc.SetStatus(p.PersonID, "2025-08-01", true))
	require.NoError(t, svc.SetStatus(p.PersonID, "2025-08-08", true))
	require.NoError(t, svc.SetStatus(p.PersonID, "2025-07-25", true))

	count, err := svc.CountInMonth(p.PersonID, 2025, 8)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMonthMatrix(t *testing.T) {
	db := openTestDB(t)
	svc := NewLedgerService(db)
	a := seedPerson(t, db, "Ab1x")
	b := seedPerson(t, db, "Ab1x")

	require.NoError(t, svc.SetStatus(a.PersonID, "2025-08-01", true))
	require.NoError(t, svc.SetStatus(a.PersonID, "2025-08-15", true))
	require.NoError(t, svc.SetStatus(b.PersonID, "2025-08-01", true))

	matrix, err := svc.MonthMatrix([]uuid.UUID{a.PersonID, b.PersonID}, 2025, 8)
	require.NoError(t, err)

	assert.True(t, matrix[a.PersonID]["2025-08-01"])
	assert.True(t, matrix[a.PersonID]["2025-08-15"])
	assert.False(t, matrix[a.PersonID]["2025-08-08"])
	assert.True(t, matrix[b.PersonID]["2025-08-01"])
	assert.False(t, matrix[b.PersonID]["2025-08-15"])
}

func TestRecordCarriesChurchID(t *testing.T) {
	db := openTestDB(t)
	svc := NewLedgerService(db)
	p := seedPerson(t, db, "Zz9q")

	require.NoError(t, svc.SetStatus(p.PersonID, "2025-08-01", true))

	var churchID string
	require.NoError(t, db.Table("attendance_records").
		Select("attendance_record_church_id").
		Where("attendance_record_person_id = ?", p.PersonID).
		Scan(&churchID).Error)
	assert.Equal(t, "Zz9q", churchID)
}
