package models

type VerifyRequest struct {
	OfferID       string  `json:"offer_id"`
	ExpectedPrice float64 `json:"expected_price"`
}

func (r *VerifyRequest) Validate() error {
	if r.OfferID == "" {
		return ErrMissingOfferID
	}
	if r.ExpectedPrice <= 0 {
		return ErrInvalidExpectedPrice
	}
	return nil
}

// Verification is the outcome of re-checking an offer. NewPrice and
// OriginalPrice are set only when PriceChanged; Price only when unchanged.
type Verification struct {
	OfferID       string   `json:"offer_id"`
	Available     bool     `json:"available"`
	Reason        string   `json:"reason,omitempty"`
	PriceChanged  bool     `json:"price_changed"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	NewPrice      *float64 `json:"new_price,omitempty"`
	Price         *float64 `json:"price,omitempty"`
}
