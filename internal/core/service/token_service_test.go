package service

import (
	"testing"
	"time"

	"github.com/yolp/account-service/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	principals := []domain.Principal{
		{ID: "cf3s2j0qkq0c73e0v1t0", Username: "bduong0929", Role: domain.RoleDefault},
		{ID: "cf3s2j0qkq0c73e0v1t1", Username: "admin12345", Role: domain.RoleAdmin},
	}

	for _, p := range principals {
		token, err := svc.GenerateToken(p)
		if err != nil {
			t.Fatalf("GenerateToken(%+v): %v", p, err)
		}
		if token == "" {
			t.Fatal("expected non-empty token")
		}

		got := svc.ExtractRequesterDetails(token)
		if got == nil {
			t.Fatalf("ExtractRequesterDetails returned nil for own token")
		}
		if *got != p {
			t.Fatalf("round trip mismatch: got %+v, want %+v", *got, p)
		}
	}
}

func TestTokenService_RoundTripWithoutExpiry(t *testing.T) {
	svc := NewTokenService("secret", 0)
	p := domain.Principal{ID: "id-1", Username: "bduong0929", Role: domain.RoleDefault}

	token, err := svc.GenerateToken(p)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if got := svc.ExtractRequesterDetails(token); got == nil || *got != p {
		t.Fatalf("round trip mismatch: got %+v", got)
	}
}

func TestTokenService_GarbageInputsReturnNil(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	inputs := []string{
		"",
		"not-a-token",
		"a.b.c",
		"eyJhbGciOiJub25lIn0.eyJpZCI6IngifQ.",
		"\x00\x01\x02",
	}
	for _, in := range inputs {
		if got := svc.ExtractRequesterDetails(in); got != nil {
			t.Fatalf("ExtractRequesterDetails(%q): expected nil, got %+v", in, got)
		}
	}
}

func TestTokenService_RejectsForeignSecret(t *testing.T) {
	theirs := NewTokenService("their-secret", time.Hour)
	ours := NewTokenService("our-secret", time.Hour)

	token, err := theirs.GenerateToken(domain.Principal{ID: "id-1", Username: "bduong0929", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if got := ours.ExtractRequesterDetails(token); got != nil {
		t.Fatalf("expected nil for token signed with another secret, got %+v", got)
	}
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("secret", -time.Minute)

	token, err := svc.GenerateToken(domain.Principal{ID: "id-1", Username: "bduong0929", Role: domain.RoleDefault})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if got := svc.ExtractRequesterDetails(token); got != nil {
		t.Fatalf("expected nil for expired token, got %+v", got)
	}
}
