package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const PaymentStatusPending = "pending"

// Registration is one form submission: a contact buying exactly one
// package, with zero or more players attached.
type Registration struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           *uuid.UUID      `gorm:"type:uuid" json:"user_id,omitempty"`
	ContactFirstName string          `gorm:"not null" json:"contact_first_name"`
	ContactLastName  string          `gorm:"not null" json:"contact_last_name"`
	ContactEmail     string          `gorm:"not null" json:"contact_email"`
	ContactPhone     string          `json:"contact_phone,omitempty"`
	CompanyName      string          `json:"company_name,omitempty"`
	CompanyAddress   string          `json:"company_address,omitempty"`
	PackageID        uuid.UUID       `gorm:"type:uuid;not null" json:"package_id"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	InvoiceNumber    string          `gorm:"not null" json:"invoice_number"`
	PaymentStatus    string          `gorm:"not null;default:'pending'" json:"payment_status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	Package *Package `gorm:"foreignKey:PackageID" json:"package,omitempty"`
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ContactFullName is also the bank-transfer payment reference on the invoice.
func (r *Registration) ContactFullName() string {
	return r.ContactFirstName + " " + r.ContactLastName
}

// Player is one attendee recorded under a registration. Players live and
// die with their parent registration.
type Player struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RegistrationID      uuid.UUID `gorm:"type:uuid;not null;index" json:"registration_id"`
	PlayerName          string    `gorm:"not null" json:"player_name"`
	PlayerEmail         string    `json:"player_email,omitempty"`
	TshirtSize          string    `gorm:"not null" json:"tshirt_size"`
	DietaryRequirements string    `json:"dietary_requirements,omitempty"`
	AttendingGalaDinner bool      `gorm:"not null;default:false" json:"attending_gala_dinner"`
	// SortOrder is the position within the submission. Batch-inserted
	// players share one created_at, so reads order by this instead.
	SortOrder int       `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
