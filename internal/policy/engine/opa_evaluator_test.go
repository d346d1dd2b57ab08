package engine

import (
	"context"
	"testing"
)

func TestOPAEvaluator_HealthCheck(t *testing.T) {
	e, err := NewOPAEvaluator(context.Background())
	if err != nil {
		t.Fatalf("NewOPAEvaluator: %v", err)
	}
	if err := e.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}
}

func TestOPAEvaluator_Decide_DefaultPolicy(t *testing.T) {
	e, err := NewOPAEvaluator(context.Background())
	if err != nil {
		t.Fatalf("NewOPAEvaluator: %v", err)
	}
	tests := []struct {
		screen     string
		loggedIn   bool
		wantAllow  bool
		wantNotice string
	}{
		{"home", true, true, ""},
		{"detect", true, true, ""},
		{"library", true, true, ""},
		{"profile", true, true, ""},
		{"history", true, true, ""},
		{"home", false, false, ""},
		{"detect", false, false, ""},
		{"profile", false, false, ""},
		{"history", false, true, AnonymousHistoryNotice},
		{"login", true, false, ""},
		{"reset_password", false, false, ""},
		{"unknown", true, false, ""},
	}
	for _, tt := range tests {
		d, err := e.Decide(context.Background(), tt.screen, tt.loggedIn)
		if err != nil {
			t.Fatalf("Decide(%q, %v): %v", tt.screen, tt.loggedIn, err)
		}
		if d.Allow != tt.wantAllow {
			t.Errorf("Decide(%q, %v).Allow = %v, want %v", tt.screen, tt.loggedIn, d.Allow, tt.wantAllow)
		}
		if d.Notice != tt.wantNotice {
			t.Errorf("Decide(%q, %v).Notice = %q, want %q", tt.screen, tt.loggedIn, d.Notice, tt.wantNotice)
		}
		if def := DefaultDecision(tt.screen, tt.loggedIn); def != d {
			t.Errorf("DefaultDecision(%q, %v) = %+v, policy says %+v", tt.screen, tt.loggedIn, def, d)
		}
	}
}

func TestOPAEvaluator_CustomPolicy(t *testing.T) {
	custom := `package palay.navigation

default allow = false

allow if {
	input.screen == "library"
}

decision := {"allow": allow, "notice": "read only"}
`
	e, err := NewOPAEvaluator(context.Background(), custom)
	if err != nil {
		t.Fatalf("NewOPAEvaluator: %v", err)
	}
	d, err := e.Decide(context.Background(), "library", false)
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if !d.Allow || d.Notice != "read only" {
		t.Errorf("Decide = %+v, want allow with notice", d)
	}
	d, _ = e.Decide(context.Background(), "home", true)
	if d.Allow {
		t.Error("custom policy should deny home")
	}
}

func TestNewOPAEvaluator_InvalidPolicy(t *testing.T) {
	if _, err := NewOPAEvaluator(context.Background(), "package palay.navigation\n\nallow if {"); err == nil {
		t.Fatal("NewOPAEvaluator should fail on invalid Rego")
	}
}

func TestOPAEvaluator_Decide_MissingDecisionFallsBack(t *testing.T) {
	e, err := NewOPAEvaluator(context.Background(), "package palay.navigation\n\nallow := true\n")
	if err != nil {
		t.Fatalf("NewOPAEvaluator: %v", err)
	}
	d, err := e.Decide(context.Background(), "history", false)
	if err == nil {
		t.Fatal("Decide should report an error when the policy has no decision")
	}
	if d != DefaultDecision("history", false) {
		t.Errorf("fallback = %+v, want built-in decision", d)
	}
	if err := e.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck should fail when the policy has no decision")
	}
}
