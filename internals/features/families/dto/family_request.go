package dto

type CreateFamilyRequest struct {
	FamilyName   string  `json:"family_name" validate:"required,min=3,max=120"`
	MembersCount int     `json:"members_count" validate:"required,min=1,max=30"`
	Phone1       string  `json:"phone1" validate:"required,egy_phone"`
	Phone2       *string `json:"phone2" validate:"omitempty,egy_phone"`
	Notes        string  `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateFamilyRequest carries partial updates. The payments ledger and
// the password are never settable through this payload.
type UpdateFamilyRequest struct {
	FamilyName   *string `json:"family_name" validate:"omitempty,min=3,max=120"`
	MembersCount *int    `json:"members_count" validate:"omitempty,min=1,max=30"`
	Phone1       *string `json:"phone1" validate:"omitempty,egy_phone"`
	Phone2       *string `json:"phone2" validate:"omitempty,egy_phone"`
	Notes        *string `json:"notes" validate:"omitempty,max=2000"`
}

func (r *UpdateFamilyRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.FamilyName != nil {
		fields["family_name"] = *r.FamilyName
	}
	if r.MembersCount != nil {
		fields["family_members_count"] = *r.MembersCount
	}
	if r.Phone1 != nil {
		fields["family_phone1"] = *r.Phone1
	}
	if r.Phone2 != nil {
		fields["family_phone2"] = *r.Phone2
	}
	if r.Notes != nil {
		fields["family_notes"] = *r.Notes
	}
	return fields
}

type TogglePaymentRequest struct {
	Year  int `json:"year" validate:"required,min=2000,max=2200"`
	Month int `json:"month" validate:"required,min=1,max=12"`
}

type HandoverRequest struct {
	Year  int `json:"year" validate:"required,min=2000,max=2200"`
	Month int `json:"month" validate:"required,min=1,max=12"`
}
