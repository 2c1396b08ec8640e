package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"karmaty_backend/internals/constants"
	attendanceService "karmaty_backend/internals/features/attendance/service"
	familyModel "karmaty_backend/internals/features/families/model"
)

/* ==============================
   Subscription ledger

   Each family carries a sparse JSON map period-key → PaymentInfo.
   A missing key means unpaid; clearing a payment deletes the entry,
   which also erases its handed-over mark.
============================== */

type SubscriptionService struct {
	DB *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{DB: db}
}

// MonthlyStats summarizes one month over a filtered family view.
type MonthlyStats struct {
	TotalFamilies    int `json:"total_families"`
	PaidCount        int `json:"paid_count"`
	UnpaidCount      int `json:"unpaid_count"`
	CollectedAmount  int `json:"collected_amount"`
	HandedOverCount  int `json:"handed_over_count"`
	HandedOverAmount int `json:"handed_over_amount"`
}

// TogglePayment flips the paid state for (family, year, month). Marking
// paid records the moment of the toggle; unmarking deletes the whole
// entry. Read-modify-write on the JSON column, last write wins.
func (s *SubscriptionService) TogglePayment(familyID uuid.UUID, year, month int, now time.Time) (*familyModel.FamilyModel, error) {
	var family familyModel.FamilyModel
	if err := s.DB.First(&family, "family_id = ?", familyID).Error; err != nil {
		return nil, err
	}

	key := attendanceService.PeriodKey(year, month)
	payments := family.Payments()
	if _, paid := payments[key]; paid {
		delete(payments, key)
	} else {
		payments[key] = familyModel.PaymentInfo{Date: now}
	}
	family.SetPayments(payments)

	if err := s.DB.Model(&family).
		Update("family_payments", family.FamilyPayments).Error; err != nil {
		return nil, err
	}
	return &family, nil
}

// HandoverPayments marks every collected-but-not-handed-over payment of
// (year, month) as handed over, church-wide. Returns whether anything
// actually changed, so the caller can report an empty handover.
func (s *SubscriptionService) HandoverPayments(churchID string, year, month int) (bool, error) {
	var families []familyModel.FamilyModel
	if err := s.DB.Where("family_church_id = ?", churchID).Find(&families).Error; err != nil {
		return false, err
	}

	key := attendanceService.PeriodKey(year, month)
	changed := false
	for i := range families {
		payments := families[i].Payments()
		entry, paid := payments[key]
		if !paid || entry.HandedOver {
			continue
		}
		entry.HandedOver = true
		payments[key] = entry
		families[i].SetPayments(payments)
		if err := s.DB.Model(&families[i]).
			Update("family_payments", families[i].FamilyPayments).Error; err != nil {
			return changed, err
		}
		changed = true
	}
	return changed, nil
}

// Stats computes the month's totals over an already-filtered slice, so
// a search-narrowed listing reports numbers for exactly what is shown.
func Stats(families []familyModel.FamilyModel, year, month int) MonthlyStats {
	key := attendanceService.PeriodKey(year, month)
	st := MonthlyStats{TotalFamilies: len(families)}
	for i := range families {
		entry, paid := families[i].Payments()[key]
		if !paid {
			continue
		}
		st.PaidCount++
		if entry.HandedOver {
			st.HandedOverCount++
		}
	}
	st.UnpaidCount = st.TotalFamilies - st.PaidCount
	st.CollectedAmount = st.PaidCount * constants.SubscriptionAmount
	st.HandedOverAmount = st.HandedOverCount * constants.SubscriptionAmount
	return st
}
