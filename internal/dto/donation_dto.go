package dto

import "time"

type CreateDonationRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
	Reason    string `json:"reason"`
}

type DonationResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	Quantity     int       `json:"quantity"`
	Reason       string    `json:"reason"`
	DonationDate time.Time `json:"donationDate"`
}
