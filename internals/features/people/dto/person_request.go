package dto

// CreatePersonRequest is the admin-surface person creation payload.
// Password is optional; when omitted the phone-holder must register a
// password later through the auth surface.
type CreatePersonRequest struct {
	PersonName      string  `json:"person_name" validate:"required,min=3,max=120"`
	Phone           string  `json:"phone" validate:"required,egy_phone"`
	Password        string  `json:"password" validate:"omitempty,min=4,max=72"`
	Role            string  `json:"role" validate:"required,oneof=student servant priest"`
	Stage           string  `json:"stage" validate:"required,max=80"`
	ChurchCode      string  `json:"church_code" validate:"omitempty,church_code"`
	Address         string  `json:"address" validate:"omitempty,max=500"`
	Governorate     *string `json:"governorate" validate:"omitempty,max=60"`
	Diocese         *string `json:"diocese" validate:"omitempty,max=120"`
	Notes           string  `json:"notes" validate:"omitempty,max=2000"`
	NeedsVisitation bool    `json:"needs_visitation"`
}

// UpdatePersonRequest carries partial updates; nil means "leave as is".
type UpdatePersonRequest struct {
	PersonName      *string `json:"person_name" validate:"omitempty,min=3,max=120"`
	Phone           *string `json:"phone" validate:"omitempty,egy_phone"`
	Role            *string `json:"role" validate:"omitempty,oneof=student servant priest"`
	Stage           *string `json:"stage" validate:"omitempty,max=80"`
	Address         *string `json:"address" validate:"omitempty,max=500"`
	Governorate     *string `json:"governorate" validate:"omitempty,max=60"`
	Diocese         *string `json:"diocese" validate:"omitempty,max=120"`
	Notes           *string `json:"notes" validate:"omitempty,max=2000"`
	NeedsVisitation *bool   `json:"needs_visitation"`
}

// Fields renders the set pointers as a GORM updates map.
func (r *UpdatePersonRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.PersonName != nil {
		fields["person_name"] = *r.PersonName
	}
	if r.Phone != nil {
		fields["person_phone"] = *r.Phone
	}
	if r.Role != nil {
		fields["person_role"] = *r.Role
	}
	if r.Stage != nil {
		fields["person_stage"] = *r.Stage
	}
	if r.Address != nil {
		fields["person_address"] = *r.Address
	}
	if r.Governorate != nil {
		fields["person_governorate"] = *r.Governorate
	}
	if r.Diocese != nil {
		fields["person_diocese"] = *r.Diocese
	}
	if r.Notes != nil {
		fields["person_notes"] = *r.Notes
	}
	if r.NeedsVisitation != nil {
		fields["person_needs_visitation"] = *r.NeedsVisitation
	}
	return fields
}

// UpdateProfileRequest is the self-service subset: no role, stage,
// phone or tenant changes from the profile screen.
type UpdateProfileRequest struct {
	PersonName  *string `json:"person_name" validate:"omitempty,min=3,max=120"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	Governorate *string `json:"governorate" validate:"omitempty,max=60"`
	Diocese     *string `json:"diocese" validate:"omitempty,max=120"`
}

func (r *UpdateProfileRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.PersonName != nil {
		fields["person_name"] = *r.PersonName
	}
	if r.Address != nil {
		fields["person_address"] = *r.Address
	}
	if r.Governorate != nil {
		fields["person_governorate"] = *r.Governorate
	}
	if r.Diocese != nil {
		fields["person_diocese"] = *r.Diocese
	}
	return fields
}
