package request

// LeadResponseRequest carries one consultation-form action: "submit" with
// form data, or "decline".
type LeadResponseRequest struct {
	Action   string       `json:"action"`
	FormData LeadFormData `json:"formData"`
}

// LeadFormData is the consultation form payload.
type LeadFormData struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	InvestmentAmount  string `json:"investmentAmount"`
	RiskPreference    string `json:"riskPreference"`
	InvestmentHorizon string `json:"investmentHorizon"`
}
