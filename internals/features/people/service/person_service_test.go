package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"karmaty_backend/internals/constants"
	database "karmaty_backend/internals/databases"
	attendanceModel "karmaty_backend/internals/features/attendance/model"
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

func newPerson(phone, churchID string) *personModel.PersonModel {
	return &personModel.PersonModel{
		PersonName:     "Test Person",
		PersonPhone:    phone,
		PersonPassword: "x",
		PersonRole:     constants.RoleStudent,
		PersonStage:    "إعدادي",
		PersonChurchID: churchID,
	}
}

func TestCreateRejectsDuplicatePhone(t *testing.T) {
	svc := NewPersonService(openTestDB(t))

	require.NoError(t, svc.Create(newPerson("01001234567", "Ab1x")))

	// Uniqueness is global, not per church.
	err := svc.Create(newPerson("01001234567", "Zz9q"))
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestUpdatePhoneRechecksUniqueness(t *testing.T) {
	svc := NewPersonService(openTestDB(t))

	a := newPerson("01001234567", "Ab1x")
	b := newPerson("01007654321", "Ab1x")
	require.NoError(t, svc.Create(a))
	require.NoError(t, svc.Create(b))

	_, err := svc.Update(b.PersonID, map[string]interface{}{
		"person_phone": "01001234567",
	})
	assert.ErrorIs(t, err, ErrPhoneTaken)

	// Re-saving your own phone is not a collision.
	updated, err := svc.Update(b.PersonID, map[string]interface{}{
		"person_phone": "01007654321",
		"person_name":  "Renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.PersonName)
	// The username mirrors the phone.
	assert.Equal(t, "01007654321", updated.Username())
}

func TestDeleteCascadesAttendance(t *testing.T) {
	db := openTestDB(t)
	svc := NewPersonService(db)

	p := newPerson("01001234567", "Ab1x")
	require.NoError(t, svc.Create(p))
	require.NoError(t, db.Create(&attendanceModel.AttendanceRecordModel{
		AttendanceRecordPersonID: p.PersonID,
		AttendanceRecordDate:     "2025-08-01",
		AttendanceRecordChurchID: "Ab1x",
	}).Error)

	deleted, err := svc.Delete(p.PersonID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var count int64
	require.NoError(t, db.Model(&attendanceModel.AttendanceRecordModel{}).
		Where("attendance_record_person_id = ?", p.PersonID).
		Count(&count).Error)
	assert.Zero(t, count)
}

func TestSearchCrossTenant(t *testing.T) {
	svc := NewPersonService(openTestDB(t))

	a := newPerson("01001234567", "Ab1x")
	a.PersonName = "مينا عادل"
	b := newPerson("01007654321", "Zz9q")
	b.PersonName = "مينا جرجس"
	require.NoError(t, svc.Create(a))
	require.NoError(t, svc.Create(b))

	// Empty church = every tenant.
	people, err := svc.Search("", "مينا")
	require.NoError(t, err)
	assert.Len(t, people, 2)

	people, err = svc.Search("Zz9q", "مينا")
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "مينا جرجس", people[0].PersonName)

	// Phone fragments match too.
	people, err = svc.Search("", "7654")
	require.NoError(t, err)
	assert.Len(t, people, 1)
}

func TestListByStage(t *testing.T) {
	svc := NewPersonService(openTestDB(t))

	a := newPerson("01001234567", "Ab1x")
	b := newPerson("01007654321", "Ab1x")
	b.PersonStage = "ثانوي"
	c := newPerson("01112223334", "Zz9q")
	require.NoError(t, svc.Create(a))
	require.NoError(t, svc.Create(b))
	require.NoError(t, svc.Create(c))

	people, err := svc.ListByStage("Ab1x", "إعدادي")
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, a.PersonID, people[0].PersonID)
}
