package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"

	"github.com/hkpamc/fund-advisor-backend/internal/apperrors"
	"github.com/hkpamc/fund-advisor-backend/internal/model"
	"github.com/hkpamc/fund-advisor-backend/internal/repository"
)

// LeadActionSubmit and LeadActionDecline are the two accepted form actions.
const (
	LeadActionSubmit  = "submit"
	LeadActionDecline = "decline"
)

// LeadService stores consultation leads. Email and phone are encrypted
// with a fernet key before they reach the database, so a leaked database
// file does not expose contact details.
type LeadService struct {
	leads *repository.LeadRepository
	key   *fernet.Key
}

// NewLeadService creates a new LeadService. encryptionKey is a base64url
// fernet key.
func NewLeadService(leads *repository.LeadRepository, encryptionKey string) (*LeadService, error) {
	key, err := fernet.DecodeKey(encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode lead encryption key: %w", err)
	}
	return &LeadService{leads: leads, key: key}, nil
}

// LeadResponse is the outcome of a form action, mirrored back to the
// conversational layer.
type LeadResponse struct {
	LeadID  string `json:"lead_id,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// LeadFormField is one field of the consultation form schema.
type LeadFormField struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// LeadForm is the consultation form schema served to clients that render
// the lead collection flow.
type LeadForm struct {
	Type          string          `json:"type"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	FormFields    []LeadFormField `json:"form_fields"`
	SubmitText    string          `json:"submit_text"`
	PrivacyNote   string          `json:"privacy_note"`
	DeclineOption string          `json:"decline_option"`
}

// Form returns the consultation form schema.
func (s *LeadService) Form() LeadForm {
	return LeadForm{
		Type:        "lead_collection",
		Title:       "Connect with Our Investment Experts",
		Description: "Let us help you make informed investment decisions. Our team will reach out to discuss personalized investment strategies.",
		FormFields: []LeadFormField{
			{ID: "name", Label: "Full Name", Type: "text", Required: true, Placeholder: "Enter your full name"},
			{ID: "email", Label: "Email Address", Type: "email", Required: true, Placeholder: "your.email@example.com"},
			{ID: "phone", Label: "Phone Number", Type: "tel", Required: true, Placeholder: "+92 XXX XXXXXXX"},
			{ID: "investment_amount", Label: "Investment Amount (PKR)", Type: "select", Required: true, Options: []string{
				"50,000 - 100,000",
				"100,000 - 500,000",
				"500,000 - 1,000,000",
				"1,000,000 - 5,000,000",
				"Above 5,000,000",
			}},
			{ID: "risk_preference", Label: "Risk Preference", Type: "select", Required: true, Options: []string{"Low", "Medium", "High", "Not Sure"}},
			{ID: "investment_horizon", Label: "Investment Horizon", Type: "select", Required: true, Options: []string{"< 1 year", "1-3 years", "3-5 years", "> 5 years"}},
		},
		SubmitText:    "Schedule Consultation",
		PrivacyNote:   "Your information is secure and will only be used to provide you with relevant investment guidance.",
		DeclineOption: "No thanks, I prefer to continue anonymously",
	}
}

// HandleResponse processes one consultation-form action. Submit validates
// the required fields, encrypts contact details, and persists the lead;
// decline is acknowledged without storing anything.
func (s *LeadService) HandleResponse(action string, lead model.Lead) (LeadResponse, error) {
	switch action {
	case LeadActionSubmit:
		return s.submit(lead)
	case LeadActionDecline:
		log.Printf("[LEAD_COLLECTION] user declined lead collection")
		return LeadResponse{
			Status:  "lead_declined",
			Message: "No problem at all! I'm here to help with any investment questions you have. Feel free to ask about funds, portfolios, or market insights anytime.",
		}, nil
	default:
		return LeadResponse{}, fmt.Errorf("action %q: %w", action, apperrors.ErrInvalidLeadAction)
	}
}

func (s *LeadService) submit(lead model.Lead) (LeadResponse, error) {
	if lead.Name == "" || lead.Email == "" || lead.Phone == "" {
		return LeadResponse{}, fmt.Errorf("name, email and phone are required: %w", apperrors.ErrMissingRequiredField)
	}

	emailToken, err := fernet.EncryptAndSign([]byte(lead.Email), s.key)
	if err != nil {
		return LeadResponse{}, fmt.Errorf("failed to encrypt lead email: %w", err)
	}
	phoneToken, err := fernet.EncryptAndSign([]byte(lead.Phone), s.key)
	if err != nil {
		return LeadResponse{}, fmt.Errorf("failed to encrypt lead phone: %w", err)
	}

	record := repository.LeadRecord{
		ID:                uuid.New().String(),
		Name:              lead.Name,
		EmailEncrypted:    string(emailToken),
		PhoneEncrypted:    string(phoneToken),
		InvestmentAmount:  lead.InvestmentAmount,
		RiskPreference:    lead.RiskPreference,
		InvestmentHorizon: lead.InvestmentHorizon,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.leads.Create(record); err != nil {
		return LeadResponse{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToStoreLead, err)
	}

	log.Printf("[LEAD_COLLECTION] new lead submitted: %s", lead.Name)
	return LeadResponse{
		LeadID: record.ID,
		Status: "lead_submitted",
		Message: fmt.Sprintf("Thank you %s! Our investment experts will contact you within 24 hours to discuss your personalized investment strategy. We look forward to helping you achieve your financial goals.",
			lead.Name),
	}, nil
}

// Get retrieves one lead with contact details decrypted.
func (s *LeadService) Get(id string) (*model.Lead, error) {
	record, err := s.leads.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("lead %s: %w", id, apperrors.ErrLeadNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve lead: %w", err)
	}
	return s.decrypt(*record)
}

// List retrieves all leads, newest first, with contact details decrypted.
func (s *LeadService) List() ([]model.Lead, error) {
	records, err := s.leads.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	leads := make([]model.Lead, 0, len(records))
	for _, record := range records {
		lead, err := s.decrypt(record)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, nil
}

func (s *LeadService) decrypt(record repository.LeadRecord) (*model.Lead, error) {
	// TTL 0 disables token expiry; leads do not age out.
	email := fernet.VerifyAndDecrypt([]byte(record.EmailEncrypted), 0, []*fernet.Key{s.key})
	if email == nil {
		return nil, fmt.Errorf("failed to decrypt email for lead %s", record.ID)
	}
	phone := fernet.VerifyAndDecrypt([]byte(record.PhoneEncrypted), 0, []*fernet.Key{s.key})
	if phone == nil {
		return nil, fmt.Errorf("failed to decrypt phone for lead %s", record.ID)
	}

	return &model.Lead{
		ID:                record.ID,
		Name:              record.Name,
		Email:             string(email),
		Phone:             string(phone),
		InvestmentAmount:  record.InvestmentAmount,
		RiskPreference:    record.RiskPreference,
		InvestmentHorizon: record.InvestmentHorizon,
		CreatedAt:         record.CreatedAt,
	}, nil
}
