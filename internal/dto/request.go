package dto

import "github.com/shopspring/decimal"

type PlayerRequest struct {
	PlayerName          string `json:"player_name" validate:"required"`
	PlayerEmail         string `json:"player_email" validate:"omitempty,email"`
	TshirtSize          string `json:"tshirt_size" validate:"required,oneof=XS S M L XL XXL XXXL"`
	DietaryRequirements string `json:"dietary_requirements"`
	AttendingGalaDinner bool   `json:"attending_gala_dinner"`
}

type CreateRegistrationRequest struct {
	UserID           string          `json:"user_id" validate:"omitempty,uuid"`
	ContactFirstName string          `json:"contact_first_name" validate:"required"`
	ContactLastName  string          `json:"contact_last_name" validate:"required"`
	ContactEmail     string          `json:"contact_email" validate:"required,email"`
	ContactPhone     string          `json:"contact_phone"`
	CompanyName      string          `json:"company_name"`
	CompanyAddress   string          `json:"company_address"`
	PackageID        string           `json:"package_id" validate:"required,uuid"`
	TotalAmount      *decimal.Decimal `json:"total_amount" validate:"required"`
	Players          []PlayerRequest  `json:"players" validate:"omitempty,dive"`
}

type SendInvoiceRequest struct {
	RegistrationID string `json:"registrationId" validate:"required,uuid"`
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
