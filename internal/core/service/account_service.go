package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/yolp/account-service/internal/core/domain"
	"github.com/yolp/account-service/internal/core/ports"
	"github.com/yolp/account-service/internal/core/validate"
)

// PasswordHasher abstracts the credential hashing scheme (bcrypt in
// production). Hash runs at signup, Compare at login. Plaintext never
// reaches the repository.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// UsernameReserver places a short-lived hold on a username while a signup
// is in flight (Redis in production). It narrows the window between the
// uniqueness pre-check and the store write; the repository's unique
// constraint remains the authority.
type UsernameReserver interface {
	Reserve(ctx context.Context, username string) (bool, error)
	Release(ctx context.Context, username string) error
}

// AuditSink accepts audit events without blocking the request path.
type AuditSink interface {
	Enqueue(event ports.AuditEvent)
}

// AccountService implements signup, login and the user read operations.
type AccountService struct {
	repo     ports.UserRepository
	hasher   PasswordHasher
	reserver UsernameReserver
	audit    AuditSink
	log      zerolog.Logger
}

// NewAccountService wires an AccountService. reserver and audit are
// optional; pass nil to disable them.
func NewAccountService(
	repo ports.UserRepository,
	hasher PasswordHasher,
	reserver UsernameReserver,
	audit AuditSink,
	log zerolog.Logger,
) *AccountService {
	return &AccountService{
		repo:     repo,
		hasher:   hasher,
		reserver: reserver,
		audit:    audit,
		log:      log,
	}
}

// Signup registers a new account. Checks run in a fixed order — username
// shape, username uniqueness, password shape, confirmation equality — and
// the first failure aborts without writing to the store. On success exactly
// one Save is issued and the created user is returned with Role DEFAULT.
//
// The uniqueness pre-check is check-then-act and not atomic under
// concurrent signups; the repository's unique index is what actually
// guarantees invariant I1, surfacing late losers as ErrDuplicateUsername.
func (s *AccountService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	if err := s.runSignupChecks(ctx, input); err != nil {
		s.recordAudit(input.Username, ports.AuditActionSignup, ports.AuditOutcomeRejected, err.Error())
		return nil, err
	}

	if s.reserver != nil {
		ok, err := s.reserver.Reserve(ctx, input.Username)
		if err != nil {
			return nil, fmt.Errorf("reserve username: %w", err)
		}
		if !ok {
			s.recordAudit(input.Username, ports.AuditActionSignup, ports.AuditOutcomeRejected, "username reserved by concurrent signup")
			return nil, domain.ErrDuplicateUsername
		}
		defer func() {
			if err := s.reserver.Release(context.WithoutCancel(ctx), input.Username); err != nil {
				s.log.Warn().Err(err).Str("username", input.Username).Msg("release username reservation failed")
			}
		}()
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           xid.New().String(),
		Username:     input.Username,
		PasswordHash: hash,
		Role:         domain.RoleDefault,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, user); err != nil {
		if domain.IsInvalidUser(err) {
			s.recordAudit(input.Username, ports.AuditActionSignup, ports.AuditOutcomeRejected, err.Error())
			return nil, err
		}
		return nil, fmt.Errorf("save user: %w", err)
	}

	s.recordAudit(input.Username, ports.AuditActionSignup, ports.AuditOutcomeSuccess, "")
	s.log.Info().Str("username", user.Username).Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// runSignupChecks applies the ordered validation sequence. No store write
// happens here; only the uniqueness check reads from the repository.
func (s *AccountService) runSignupChecks(ctx context.Context, input ports.SignupInput) error {
	if err := validate.Username(input.Username); err != nil {
		return err
	}

	usernames, err := s.repo.FindAllUsernames(ctx)
	if err != nil {
		return fmt.Errorf("list usernames: %w", err)
	}
	for _, name := range usernames {
		if name == input.Username {
			return domain.ErrDuplicateUsername
		}
	}

	if err := validate.Password(input.Password); err != nil {
		return err
	}
	if !validate.SamePassword(input.Password, input.Confirm) {
		return domain.ErrPasswordMismatch
	}
	return nil
}

// Login authenticates a username/password pair and derives a Principal.
// Every failure mode — malformed input, unknown username, wrong password —
// returns ErrInvalidCredentials so the caller learns nothing about which
// part was wrong.
func (s *AccountService) Login(ctx context.Context, username, password string) (*domain.Principal, error) {
	if validate.Username(username) != nil || validate.Password(password) != nil {
		s.recordAudit(username, ports.AuditActionLogin, ports.AuditOutcomeDenied, "malformed credentials")
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.recordAudit(username, ports.AuditActionLogin, ports.AuditOutcomeDenied, "unknown username")
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.recordAudit(username, ports.AuditActionLogin, ports.AuditOutcomeDenied, "password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	principal := user.Principal()
	s.recordAudit(username, ports.AuditActionLogin, ports.AuditOutcomeSuccess, "")
	s.log.Info().Str("username", username).Msg("login successful")
	return &principal, nil
}

// GetAllUsers returns every registered user. Authorization is the caller's
// responsibility.
func (s *AccountService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUsersByUsernamePrefix returns users whose username starts with prefix
// (case-sensitive). Authorization is the caller's responsibility.
func (s *AccountService) GetUsersByUsernamePrefix(ctx context.Context, prefix string) ([]domain.User, error) {
	users, err := s.repo.FindByUsernamePrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

func (s *AccountService) recordAudit(username, action, outcome, reason string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuditEvent{
		Username: username,
		Action:   action,
		Outcome:  outcome,
		Reason:   reason,
		At:       time.Now().UTC(),
	})
}
