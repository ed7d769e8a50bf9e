package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestGetSettingsCreatesDefaults(t *testing.T) {
	settingsRepo := &fakeSettingsRepo{}
	svc := NewSettingsService(settingsRepo)
	owner := uuid.New()

	settings, err := svc.GetSettings(context.Background(), owner)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}

	if settings.BusinessName != "My Business" {
		t.Errorf("BusinessName = %q, want default", settings.BusinessName)
	}
	if settings.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", settings.Currency)
	}
	if len(settingsRepo.settings) != 1 {
		t.Fatalf("len(settings) = %d, want the default row persisted", len(settingsRepo.settings))
	}

	// A second read must reuse the created row
	if _, err := svc.GetSettings(context.Background(), owner); err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if len(settingsRepo.settings) != 1 {
		t.Errorf("len(settings) = %d after second read, want 1", len(settingsRepo.settings))
	}
}

func TestUpdateSettingsIsPartial(t *testing.T) {
	settingsRepo := &fakeSettingsRepo{}
	svc := NewSettingsService(settingsRepo)
	owner := uuid.New()

	if _, err := svc.GetSettings(context.Background(), owner); err != nil {
		t.Fatalf("GetSettings: %v", err)
	}

	rate := 16.0
	updated, err := svc.UpdateSettings(context.Background(), owner, &UpdateSettingsInput{
		BusinessName:   strPtr("Corner Cafe"),
		Currency:       strPtr("kes"),
		DefaultTaxRate: &rate,
	})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	if updated.BusinessName != "Corner Cafe" {
		t.Errorf("BusinessName = %q, want Corner Cafe", updated.BusinessName)
	}
	if updated.Currency != "KES" {
		t.Errorf("Currency = %q, want uppercased KES", updated.Currency)
	}
	if updated.DefaultTaxRate != 16 {
		t.Errorf("DefaultTaxRate = %v, want 16", updated.DefaultTaxRate)
	}
	// Untouched fields survive
	if updated.ReceiptFooter != "Thank you for your business." {
		t.Errorf("ReceiptFooter = %q, want the default preserved", updated.ReceiptFooter)
	}
}
