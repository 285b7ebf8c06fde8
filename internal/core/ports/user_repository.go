package ports

import (
	"context"

	"github.com/yolp/account-service/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Implementations must enforce username uniqueness at the storage level;
// Save reports a violation as domain.ErrDuplicateUsername. FindByUsername
// returns (nil, nil) when no user matches — absence is not an error here,
// the service decides how to surface it.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindAllUsernames(ctx context.Context) ([]string, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByUsernamePrefix(ctx context.Context, prefix string) ([]domain.User, error)
}
