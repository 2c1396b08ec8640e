package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"karmaty_backend/internals/constants"
	database "karmaty_backend/internals/databases"
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

func TestAddAppendsAtEnd(t *testing.T) {
	svc := NewStageService(openTestDB(t))

	first, err := svc.Add("حضانة")
	require.NoError(t, err)
	second, err := svc.Add("إعدادي")
	require.NoError(t, err)

	assert.Equal(t, 0, first.StagePosition)
	assert.Equal(t, 1, second.StagePosition)
	assert.Nil(t, second.StagePIN, "dynamically added stages carry no PIN")
}

func TestAddDuplicateRejected(t *testing.T) {
	svc := NewStageService(openTestDB(t))

	_, err := svc.Add("إعدادي")
	require.NoError(t, err)
	_, err = svc.Add("إعدادي")
	assert.ErrorIs(t, err, ErrStageExists)
}

func TestMoveSwapsNeighbours(t *testing.T) {
	svc := NewStageService(openTestDB(t))
	for _, name := range []string{"حضانة", "إعدادي", "ثانوي"} {
		_, err := svc.Add(name)
		require.NoError(t, err)
	}

	require.NoError(t, svc.Move("ثانوي", "up"))

	stages, err := svc.List()
	require.NoError(t, err)
	names := []string{stages[0].StageName, stages[1].StageName, stages[2].StageName}
	assert.Equal(t, []string{"حضانة", "ثانوي", "إعدادي"}, names)
}

func TestMovePastEndIsNoOp(t *testing.T) {
	svc := NewStageService(openTestDB(t))
	_, err := svc.Add("حضانة")
	require.NoError(t, err)
	_, err = svc.Add("إعدادي")
	require.NoError(t, err)

	require.NoError(t, svc.Move("حضانة", "up"))

	stages, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, "حضانة", stages[0].StageName)
}

func TestDeleteReportsMissing(t *testing.T) {
	svc := NewStageService(openTestDB(t))

	deleted, err := svc.Delete("غير موجود")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = svc.Add("إعدادي")
	require.NoError(t, err)
	deleted, err = svc.Delete("إعدادي")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestUnlockChecksPin(t *testing.T) {
	db := openTestDB(t)
	svc := NewStageService(db)
	stage, err := svc.Add("إعدادي")
	require.NoError(t, err)
	pin := "0004"
	require.NoError(t, db.Model(stage).Update("stage_pin", &pin).Error)

	unlocked, found, err := svc.Unlock(constants.RoleServant, constants.StaffStage, "إعدادي", "9999")
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, unlocked)

	unlocked, _, err = svc.Unlock(constants.RoleServant, constants.StaffStage, "إعدادي", "0004")
	require.NoError(t, err)
	assert.True(t, unlocked)

	// Student unlocks their own stage with any input.
	unlocked, _, err = svc.Unlock(constants.RoleStudent, "إعدادي", "إعدادي", "")
	require.NoError(t, err)
	assert.True(t, unlocked)

	_, found, err = svc.Unlock(constants.RoleServant, constants.StaffStage, "غير موجود", "0004")
	require.NoError(t, err)
	assert.False(t, found)
}
