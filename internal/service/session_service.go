package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"pos/internal/model"
	"pos/internal/repository"
	"pos/pkg/clock"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// --- DTOs ---

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CredentialInput is a plaintext staff login as read from seed data.
type CredentialInput struct {
	ID       int64
	Username string
	Password string
	Name     string
	Email    string
	Role     model.RoleName
}

// HashCredentials bcrypt-hashes the fixed login list.
func HashCredentials(in []CredentialInput, cost int) ([]model.Credential, error) {
	out := make([]model.Credential, 0, len(in))
	for _, c := range in {
		if _, ok := model.LookupRole(c.Role); !ok {
			return nil, fmt.Errorf("user %s has unknown role %q", c.Username, c.Role)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", c.Username, err)
		}
		out = append(out, model.Credential{
			ID:           c.ID,
			Username:     c.Username,
			PasswordHash: string(hash),
			Name:         c.Name,
			Email:        c.Email,
			Role:         c.Role,
		})
	}
	return out, nil
}

// --- Interface ---

// SessionService holds the single logged-in principal of the process.
type SessionService interface {
	Login(ctx context.Context, req LoginRequest) (*model.SessionUser, error)
	Logout(ctx context.Context)
	Current() (*model.SessionUser, bool)
	HasPermission(p model.Permission) bool
	HasRole(r model.RoleName) bool
	IsRoleAtLeast(minimum model.RoleName) bool
	Restore(ctx context.Context) error
}

type sessionService struct {
	credentials []model.Credential
	repo        repository.SessionRepository
	auditRepo   repository.AuditRepository
	txManager   repository.TransactionManager
	watcher     SessionWatcher
	clock       clock.Clock
	logger      *slog.Logger

	current *model.SessionUser
}

func NewSessionService(
	credentials []model.Credential,
	repo repository.SessionRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	watcher SessionWatcher,
	clk clock.Clock,
	logger *slog.Logger,
) SessionService {
	if watcher == nil {
		watcher = noWatcher{}
	}
	return &sessionService{
		credentials: credentials,
		repo:        repo,
		auditRepo:   auditRepo,
		txManager:   txManager,
		watcher:     watcher,
		clock:       clk,
		logger:      logger,
	}
}

// --- Implementation ---

func (s *sessionService) Login(ctx context.Context, req LoginRequest) (*model.SessionUser, error) {
	cred, ok := s.findCredential(req.Username)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user, ok := resolveSessionUser(cred)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	user.SessionID = uuid.New()
	user.LoggedInAt = s.clock.Now()

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Save(txCtx, user); err != nil {
			return err
		}
		entry := auditEntry(nil, model.ActionLogin, strconv.FormatInt(user.ID, 10), user.Username, map[string]string{"role": string(user.Role)})
		entry.UserID = &user.ID
		entry.Username = user.Username
		return writeAudit(txCtx, s.auditRepo, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.current = &user
	s.watcher.SetActiveSession(user.SessionID.String())
	s.logger.Info("user logged in", "username", user.Username, "role", user.Role)
	return s.copyCurrent(), nil
}

// Logout always clears the in-memory session. A failure to clear the
// durable copy is logged; Restore re-validates whatever it finds.
func (s *sessionService) Logout(ctx context.Context) {
	prev := s.current
	s.current = nil
	s.watcher.SetActiveSession("")

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Clear(txCtx); err != nil {
			return err
		}
		if prev == nil {
			return nil
		}
		entry := auditEntry(nil, model.ActionLogout, strconv.FormatInt(prev.ID, 10), prev.Username, nil)
		entry.UserID = &prev.ID
		entry.Username = prev.Username
		return writeAudit(txCtx, s.auditRepo, entry)
	})
	if err != nil {
		s.logger.Warn("failed to clear persisted session", "error", err)
	}
}

func (s *sessionService) Current() (*model.SessionUser, bool) {
	if s.current == nil {
		return nil, false
	}
	return s.copyCurrent(), true
}

func (s *sessionService) HasPermission(p model.Permission) bool {
	if s.current == nil {
		return false
	}
	for _, have := range s.current.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

func (s *sessionService) HasRole(r model.RoleName) bool {
	return s.current != nil && s.current.Role == r
}

func (s *sessionService) IsRoleAtLeast(minimum model.RoleName) bool {
	return s.current != nil && model.IsAtLeast(s.current.Role, minimum)
}

// Restore reloads a persisted session. Permissions are re-resolved from the
// role table; sessions for unknown users or roles are discarded.
func (s *sessionService) Restore(ctx context.Context) error {
	stored, found, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	cred, ok := s.findCredential(stored.Username)
	if !ok || cred.ID != stored.ID {
		s.logger.Warn("discarding persisted session for unknown user", "username", stored.Username)
		return s.repo.Clear(ctx)
	}
	user, ok := resolveSessionUser(cred)
	if !ok {
		return s.repo.Clear(ctx)
	}
	user.SessionID = stored.SessionID
	user.LoggedInAt = stored.LoggedInAt
	s.current = &user
	s.watcher.SetActiveSession(user.SessionID.String())
	return nil
}

func (s *sessionService) findCredential(username string) (model.Credential, bool) {
	for _, c := range s.credentials {
		if c.Username == username {
			return c, true
		}
	}
	return model.Credential{}, false
}

func (s *sessionService) copyCurrent() *model.SessionUser {
	u := *s.current
	u.Permissions = append([]model.Permission(nil), s.current.Permissions...)
	return &u
}

func resolveSessionUser(c model.Credential) (model.SessionUser, bool) {
	role, ok := model.LookupRole(c.Role)
	if !ok {
		return model.SessionUser{}, false
	}
	return model.SessionUser{
		ID:          c.ID,
		Username:    c.Username,
		Name:        c.Name,
		Email:       c.Email,
		Role:        c.Role,
		Permissions: role.Permissions,
		RoleLevel:   role.Level,
	}, true
}
