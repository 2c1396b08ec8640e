package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var rewardNow = time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

func TestRewardThresholdWinsOutright(t *testing.T) {
	// 4 attendances earn the reward even for a month still in progress.
	assert.Equal(t, RewardSuccess, RewardStatus(4, 2025, 8, rewardNow))
	assert.Equal(t, RewardSuccess, RewardStatus(5, 2025, 8, rewardNow))
	// Future month too.
	assert.Equal(t, RewardSuccess, RewardStatus(4, 2025, 9, rewardNow))
}

func TestRewardFailedOnlyWhenMonthIsPast(t *testing.T) {
	assert.Equal(t, RewardFailed, RewardStatus(3, 2025, 7, rewardNow))
	assert.Equal(t, RewardFailed, RewardStatus(0, 2024, 12, rewardNow))
}

func TestRewardPendingForCurrentAndFutureMonths(t *testing.T) {
	assert.Equal(t, RewardPending, RewardStatus(3, 2025, 8, rewardNow))
	assert.Equal(t, RewardPending, RewardStatus(0, 2025, 9, rewardNow))
}

func TestRewardDayOfMonthIgnored(t *testing.T) {
	// On the 1st the previous month is already final.
	firstOfMonth := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, RewardFailed, RewardStatus(3, 2025, 7, firstOfMonth))
	// On the 31st the current month is still pending.
	endOfMonth := time.Date(2025, 8, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, RewardPending, RewardStatus(3, 2025, 8, endOfMonth))
}

func TestRewardFiveFridayMonthToleratesOneAbsence(t *testing.T) {
	// August 2025 has five Fridays; 4 of 5 still earns the reward.
	assert.Len(t, FridaysInMonth(2025, 8), 5)
	assert.Equal(t, RewardSuccess, RewardStatus(4, 2025, 8, rewardNow))
}
