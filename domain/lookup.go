package domain

// Active is the account-like resource owned by the remote active service.
// Only the fields this service reads are modelled; the rest of the remote
// payload is ignored.
type Active struct {
	ID     string  `json:"id"`
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

// Client is the customer resource owned by the remote client service.
type Client struct {
	ID   string      `json:"id"`
	Code string      `json:"code"`
	Type PaymentType `json:"type"`
}

// ActiveLookupResult is the remote active service's response envelope.
// A nil Data means the code did not resolve, which is a valid outcome,
// not an error.
type ActiveLookupResult struct {
	Message string  `json:"message"`
	Data    *Active `json:"data"`
}

// ClientLookupResult is the remote client service's response envelope.
type ClientLookupResult struct {
	Message string  `json:"message"`
	Data    *Client `json:"data"`
}
