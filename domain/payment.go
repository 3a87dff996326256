package domain

import "time"

// PaymentType classifies the ownership of a payment, mirroring the client
// classification held by the remote client service.
type PaymentType string

const (
	TypePersonal PaymentType = "PERSONAL"
	TypeCompany  PaymentType = "COMPANY"
)

// TypeFromDiscriminator maps the path discriminator used on creation to a
// payment type. Unknown discriminators map to the empty type, which never
// matches a client classification.
func TypeFromDiscriminator(d string) PaymentType {
	switch d {
	case "1":
		return TypePersonal
	case "2":
		return TypeCompany
	default:
		return ""
	}
}

// Payment is a transaction record linking an active (account) and a client
// with a signed amount. IDs are opaque and assigned by the store.
type Payment struct {
	ID             string      `json:"id"`
	ActiveID       string      `json:"activeId"`
	ClientID       string      `json:"clientId"`
	Amount         float64     `json:"amount"`
	TypeCode       PaymentType `json:"typeCode,omitempty"`
	DateRegistered time.Time   `json:"dateRegistered,omitempty"`
	DateUpdated    *time.Time  `json:"dateUpdated,omitempty"`
}
