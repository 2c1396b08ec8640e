package dto

// RegisterRequest self-registers a student account. The phone doubles
// as the username; the church code binds the account to its tenant.
type RegisterRequest struct {
	PersonName string `json:"person_name" validate:"required,min=3,max=120"`
	Phone      string `json:"phone" validate:"required,egy_phone"`
	Password   string `json:"password" validate:"required,min=4,max=72"`
	ChurchCode string `json:"church_code" validate:"required,church_code"`
	Stage      string `json:"stage" validate:"required,max=80"`
}

// LoginRequest. Phone is not constrained to the Egyptian format here so
// the seeded developer identifier can pass through; the developer login
// also skips the church-code match.
type LoginRequest struct {
	Phone      string `json:"phone" validate:"required,max=20"`
	Password   string `json:"password" validate:"required"`
	ChurchCode string `json:"church_code" validate:"omitempty,church_code"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=4,max=72"`
}
