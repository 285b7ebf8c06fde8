package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yolp/account-service/internal/core/domain"
	"github.com/yolp/account-service/internal/core/ports"
	"github.com/yolp/account-service/internal/core/service"
)

type stubAccountService struct {
	signupFn func(ctx context.Context, input ports.SignupInput) (*domain.User, error)
	loginFn  func(ctx context.Context, username, password string) (*domain.Principal, error)
	allFn    func(ctx context.Context) ([]domain.User, error)
	searchFn func(ctx context.Context, prefix string) ([]domain.User, error)
}

func (s *stubAccountService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	return s.signupFn(ctx, input)
}

func (s *stubAccountService) Login(ctx context.Context, username, password string) (*domain.Principal, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAccountService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	return s.allFn(ctx)
}

func (s *stubAccountService) GetUsersByUsernamePrefix(ctx context.Context, prefix string) ([]domain.User, error) {
	return s.searchFn(ctx, prefix)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	stub := &stubAccountService{
		loginFn: func(ctx context.Context, username, password string) (*domain.Principal, error) {
			if username != "bduong0929" || password != "passw0rd" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &domain.Principal{ID: "id-1", Username: username, Role: domain.RoleDefault}, nil
		},
	}
	h := NewAuthHandler(stub, tokens)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"username":"bduong0929","password":"passw0rd"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}

	// The token travels in the authorization response header, not the body.
	token := rec.Header().Get(echo.HeaderAuthorization)
	if token == "" {
		t.Fatal("expected authorization response header")
	}
	p := tokens.ExtractRequesterDetails(token)
	if p == nil || p.Username != "bduong0929" || p.Role != domain.RoleDefault {
		t.Fatalf("token does not decode to the logged-in principal: %+v", p)
	}

	var body domain.Principal
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Username != "bduong0929" || body.Role != domain.RoleDefault {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAccountService{
		loginFn: func(ctx context.Context, username, password string) (*domain.Principal, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, service.NewTokenService("secret", time.Hour))

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"username":"bduong0929","password":"wrongpass0"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAccountService{
		loginFn: func(ctx context.Context, username, password string) (*domain.Principal, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, service.NewTokenService("secret", time.Hour))

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", "not-json")
	err := h.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
