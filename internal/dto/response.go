package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stjohns-golfday/golfday-api/internal/models"
)

type PlayerResponse struct {
	ID                  uuid.UUID `json:"id"`
	RegistrationID      uuid.UUID `json:"registration_id"`
	PlayerName          string    `json:"player_name"`
	PlayerEmail         string    `json:"player_email,omitempty"`
	TshirtSize          string    `json:"tshirt_size"`
	DietaryRequirements string    `json:"dietary_requirements,omitempty"`
	AttendingGalaDinner bool      `json:"attending_gala_dinner"`
	CreatedAt           time.Time `json:"created_at"`
}

type RegistrationResponse struct {
	ID               uuid.UUID       `json:"id"`
	UserID           *uuid.UUID      `json:"user_id,omitempty"`
	ContactFirstName string          `json:"contact_first_name"`
	ContactLastName  string          `json:"contact_last_name"`
	ContactEmail     string          `json:"contact_email"`
	ContactPhone     string          `json:"contact_phone,omitempty"`
	CompanyName      string          `json:"company_name,omitempty"`
	CompanyAddress   string          `json:"company_address,omitempty"`
	PackageID        uuid.UUID       `json:"package_id"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	InvoiceNumber    string          `json:"invoice_number"`
	PaymentStatus    string          `json:"payment_status"`
	CreatedAt        time.Time       `json:"created_at"`

	Package *models.Package  `json:"package,omitempty"`
	Players []PlayerResponse `json:"players"`
}

type SendInvoiceResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	InvoiceNumber string `json:"invoiceNumber"`
}

type AuthUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type AuthResponse struct {
	AccessToken string   `json:"access_token"`
	User        AuthUser `json:"user"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToPlayerResponse(p *models.Player) PlayerResponse {
	return PlayerResponse{
		ID:                  p.ID,
		RegistrationID:      p.RegistrationID,
		PlayerName:          p.PlayerName,
		PlayerEmail:         p.PlayerEmail,
		TshirtSize:          p.TshirtSize,
		DietaryRequirements: p.DietaryRequirements,
		AttendingGalaDinner: p.AttendingGalaDinner,
		CreatedAt:           p.CreatedAt,
	}
}

// ToRegistrationResponse always carries a players array, empty when the
// registration has none.
func ToRegistrationResponse(r *models.Registration, players []models.Player) RegistrationResponse {
	resp := RegistrationResponse{
		ID:               r.ID,
		UserID:           r.UserID,
		ContactFirstName: r.ContactFirstName,
		ContactLastName:  r.ContactLastName,
		ContactEmail:     r.ContactEmail,
		ContactPhone:     r.ContactPhone,
		CompanyName:      r.CompanyName,
		CompanyAddress:   r.CompanyAddress,
		PackageID:        r.PackageID,
		TotalAmount:      r.TotalAmount,
		InvoiceNumber:    r.InvoiceNumber,
		PaymentStatus:    r.PaymentStatus,
		CreatedAt:        r.CreatedAt,
		Package:          r.Package,
		Players:          make([]PlayerResponse, 0, len(players)),
	}
	for i := range players {
		resp.Players = append(resp.Players, ToPlayerResponse(&players[i]))
	}
	return resp
}
