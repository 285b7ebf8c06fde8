package ports

import (
	"context"

	"github.com/yolp/account-service/internal/core/domain"
)

// SignupInput carries the raw signup form fields.
type SignupInput struct {
	Username string
	Password string
	Confirm  string
}

// AccountService orchestrates account registration, credential
// authentication and user listing. Authorization is not performed here;
// callers gate access before invoking the read operations.
type AccountService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.Principal, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	GetUsersByUsernamePrefix(ctx context.Context, prefix string) ([]domain.User, error)
}
