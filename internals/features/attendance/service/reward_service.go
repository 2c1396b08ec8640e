package service

import "time"

// Monthly reward states.
const (
	RewardSuccess = "success"
	RewardFailed  = "failed"
	RewardPending = "pending"
)

// The threshold stays 4 even in 5-Friday months, so one absence is
// tolerated there.
const rewardThreshold = 4

// RewardStatus classifies a student's month from the number of Fridays
// attended. Evaluation order matters: the threshold wins outright; a
// month only finalizes as failed once the calendar has rolled past it
// (year/month comparison, day-of-month ignored).
func RewardStatus(count, year, month int, now time.Time) string {
	if count >= rewardThreshold {
		return RewardSuccess
	}
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return RewardFailed
	}
	return RewardPending
}
