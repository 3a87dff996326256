package transport

// PaymentRequest is the creation/update body. The id is ignored on creation
// (the store assigns one) and taken from the path on update.
type PaymentRequest struct {
	ID       string  `json:"id"`
	ActiveID string  `json:"activeId"`
	ClientID string  `json:"clientId"`
	Amount   float64 `json:"amount"`
	TypeCode string  `json:"typeCode"`
}
