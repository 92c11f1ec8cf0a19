package model

import "time"

// Lead is a prospective client captured through the consultation form.
// Email and Phone are stored encrypted; this struct carries the plaintext
// only between the handler and the service layer.
type Lead struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	InvestmentAmount  string    `json:"investment_amount"`
	RiskPreference    string    `json:"risk_preference"`
	InvestmentHorizon string    `json:"investment_horizon"`
	CreatedAt         time.Time `json:"created_at"`
}
