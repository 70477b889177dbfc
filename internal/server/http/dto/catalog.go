package dto

// ServiceResponse describes a catalog entry.
type ServiceResponse struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Rate  float64 `json:"rate"`
}

// QuoteResponse is an estimated order price.
type QuoteResponse struct {
	Service ServiceResponse `json:"service"`
	Items   int             `json:"items"`
	Price   float64         `json:"price"`
}

// ErrorResponse carries a human readable failure reason.
type ErrorResponse struct {
	Error string `json:"error"`
}
