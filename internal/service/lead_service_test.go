package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hkpamc/fund-advisor-backend/internal/apperrors"
	"github.com/hkpamc/fund-advisor-backend/internal/model"
	"github.com/hkpamc/fund-advisor-backend/internal/repository"
	"github.com/hkpamc/fund-advisor-backend/internal/service"
	"github.com/hkpamc/fund-advisor-backend/internal/testutil"
)

// testFernetKey is a fixed base64url fernet key (32 zero bytes) for tests.
const testFernetKey = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="

func setupLeadService(t *testing.T) (*service.LeadService, *repository.LeadRepository) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repo := repository.NewLeadRepository(db)
	svc, err := service.NewLeadService(repo, testFernetKey)
	if err != nil {
		t.Fatalf("NewLeadService() returned unexpected error: %v", err)
	}
	return svc, repo
}

// TestLeadService_HandleResponse tests the consultation-form actions.
//
// WHY: Submit must validate required fields and encrypt contact details
// before they reach the database; decline must be acknowledged without
// storing anything; anything else is invalid input.
func TestLeadService_HandleResponse(t *testing.T) {
	t.Run("submit stores the lead and decrypts on read", func(t *testing.T) {
		svc, repo := setupLeadService(t)

		response, err := svc.HandleResponse(service.LeadActionSubmit, model.Lead{
			Name:              "Priya Nair",
			Email:             "priya@example.com",
			Phone:             "+91 98765 43210",
			InvestmentAmount:  "500,000",
			RiskPreference:    "Medium",
			InvestmentHorizon: "5 years",
		})
		if err != nil {
			t.Fatalf("HandleResponse() returned unexpected error: %v", err)
		}

		if response.Status != "lead_submitted" {
			t.Errorf("Expected lead_submitted, got %q", response.Status)
		}
		if response.LeadID == "" {
			t.Fatal("Expected a lead ID")
		}
		if !strings.HasPrefix(response.Message, "Thank you Priya Nair!") {
			t.Errorf("Unexpected message: %q", response.Message)
		}

		lead, err := svc.Get(response.LeadID)
		if err != nil {
			t.Fatalf("Get() returned unexpected error: %v", err)
		}
		if lead.Email != "priya@example.com" {
			t.Errorf("Expected decrypted email, got %q", lead.Email)
		}
		if lead.Phone != "+91 98765 43210" {
			t.Errorf("Expected decrypted phone, got %q", lead.Phone)
		}

		// The persisted row must carry tokens, not plaintext.
		record, err := repo.GetByID(response.LeadID)
		if err != nil {
			t.Fatalf("GetByID() returned unexpected error: %v", err)
		}
		if record.EmailEncrypted == "priya@example.com" {
			t.Error("Expected email encrypted at rest")
		}
		if record.PhoneEncrypted == "+91 98765 43210" {
			t.Error("Expected phone encrypted at rest")
		}
	})

	t.Run("decline stores nothing", func(t *testing.T) {
		svc, repo := setupLeadService(t)

		response, err := svc.HandleResponse(service.LeadActionDecline, model.Lead{})
		if err != nil {
			t.Fatalf("HandleResponse() returned unexpected error: %v", err)
		}

		if response.Status != "lead_declined" {
			t.Errorf("Expected lead_declined, got %q", response.Status)
		}

		records, err := repo.List()
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("Expected no stored leads, got %d", len(records))
		}
	})

	t.Run("rejects an unknown action", func(t *testing.T) {
		svc, _ := setupLeadService(t)

		_, err := svc.HandleResponse("postpone", model.Lead{})
		if !errors.Is(err, apperrors.ErrInvalidLeadAction) {
			t.Errorf("Expected ErrInvalidLeadAction, got %v", err)
		}
	})

	t.Run("rejects a submission missing contact details", func(t *testing.T) {
		svc, _ := setupLeadService(t)

		_, err := svc.HandleResponse(service.LeadActionSubmit, model.Lead{
			Name:  "No Contact",
			Email: "nocontact@example.com",
		})
		if !errors.Is(err, apperrors.ErrMissingRequiredField) {
			t.Errorf("Expected ErrMissingRequiredField, got %v", err)
		}
	})
}

// TestLeadService_Get tests single-lead retrieval.
func TestLeadService_Get(t *testing.T) {
	t.Run("unknown lead maps to not found", func(t *testing.T) {
		svc, _ := setupLeadService(t)

		_, err := svc.Get("8f7f9c1e-0000-0000-0000-000000000000")
		if !errors.Is(err, apperrors.ErrLeadNotFound) {
			t.Errorf("Expected ErrLeadNotFound, got %v", err)
		}
	})
}

// TestLeadService_List tests bulk retrieval with decryption.
func TestLeadService_List(t *testing.T) {
	t.Run("decrypts every stored lead", func(t *testing.T) {
		svc, _ := setupLeadService(t)

		for _, lead := range []model.Lead{
			{Name: "First Lead", Email: "first@example.com", Phone: "111"},
			{Name: "Second Lead", Email: "second@example.com", Phone: "222"},
		} {
			if _, err := svc.HandleResponse(service.LeadActionSubmit, lead); err != nil {
				t.Fatalf("HandleResponse() returned unexpected error: %v", err)
			}
		}

		leads, err := svc.List()
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}
		if len(leads) != 2 {
			t.Fatalf("Expected 2 leads, got %d", len(leads))
		}
		for _, lead := range leads {
			if !strings.HasSuffix(lead.Email, "@example.com") {
				t.Errorf("Expected decrypted email, got %q", lead.Email)
			}
		}
	})
}

// TestNewLeadService tests key validation at construction.
func TestNewLeadService(t *testing.T) {
	t.Run("rejects a malformed encryption key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		_, err := service.NewLeadService(repository.NewLeadRepository(db), "not-a-key")
		if err == nil {
			t.Error("Expected an error for a malformed key")
		}
	})
}
