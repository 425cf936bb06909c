package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pos/internal/model"
	"pos/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginResolvesRole(t *testing.T) {
	f := newFixture(t)

	u := f.login(t, "kasir", "kasir123")
	assert.Equal(t, model.RoleCashier, u.Role)
	assert.Equal(t, 3, u.RoleLevel)
	assert.ElementsMatch(t, []model.Permission{model.PermProcessSales, model.PermViewReports}, u.Permissions)
	assert.NotEqual(t, uuid.Nil, u.SessionID)
	assert.Equal(t, fixedNow, u.LoggedInAt)

	assert.True(t, f.session.HasPermission(model.PermProcessSales))
	assert.False(t, f.session.HasPermission(model.PermManageMenu))
	assert.True(t, f.session.HasRole(model.RoleCashier))
	assert.False(t, f.session.HasRole(model.RoleManager))
	assert.True(t, f.session.IsRoleAtLeast(model.RoleBarista))
	assert.False(t, f.session.IsRoleAtLeast(model.RoleManager))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.session.Login(ctx, LoginRequest{Username: "kasir", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.session.Login(ctx, LoginRequest{Username: "ghost", Password: "kasir123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, ok := f.session.Current()
	assert.False(t, ok)
	assert.False(t, f.session.HasPermission(model.PermProcessSales))
	assert.False(t, f.session.IsRoleAtLeast(model.RoleBarista))
}

func TestFailedLoginKeepsExistingSession(t *testing.T) {
	f := newFixture(t)
	f.login(t, "manager", "manager123")

	_, err := f.session.Login(context.Background(), LoginRequest{Username: "kasir", Password: "nope"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.True(t, f.session.HasRole(model.RoleManager))
}

func TestLogoutClearsSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "superadmin", "super123")

	f.session.Logout(ctx)
	_, ok := f.session.Current()
	assert.False(t, ok)

	_, found, err := repository.NewSessionRepository(f.docs).Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	// Logging out twice is harmless.
	f.session.Logout(ctx)
}

func TestSessionRestore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	original := f.login(t, "manager", "manager123")

	creds, err := HashCredentials(testCredentials, bcrypt.MinCost)
	require.NoError(t, err)
	restored := NewSessionService(creds, repository.NewSessionRepository(f.docs), f.audit, f.tx, nil, f.clock, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, restored.Restore(ctx))

	u, ok := restored.Current()
	require.True(t, ok)
	assert.Equal(t, original.SessionID, u.SessionID)
	assert.True(t, restored.HasPermission(model.PermViewAnalytics))
}

func TestSessionRestoreDiscardsUnknownUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t, "kasir", "kasir123")

	creds, err := HashCredentials(testCredentials[:1], bcrypt.MinCost)
	require.NoError(t, err)
	restored := NewSessionService(creds, repository.NewSessionRepository(f.docs), f.audit, f.tx, nil, f.clock, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, restored.Restore(ctx))

	_, ok := restored.Current()
	assert.False(t, ok)
}

func TestHashCredentialsRejectsUnknownRole(t *testing.T) {
	_, err := HashCredentials([]CredentialInput{{Username: "x", Password: "y", Role: "WAITER"}}, bcrypt.MinCost)
	assert.ErrorContains(t, err, "unknown role")
}

func TestCurrentReturnsCopy(t *testing.T) {
	f := newFixture(t)
	f.login(t, "kasir", "kasir123")

	u, _ := f.session.Current()
	u.Permissions[0] = model.PermManageSystem
	assert.False(t, f.session.HasPermission(model.PermManageSystem))
}

func TestLoginWritesAuditEntry(t *testing.T) {
	f := newFixture(t)
	f.login(t, "kasir", "kasir123")

	logs, total, err := NewAuditService(f.audit).GetAuditLogs(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, model.ActionLogin, logs[0].Action)
	assert.Equal(t, "kasir", logs[0].Username)
	assert.Equal(t, "4", logs[0].UserID)
}

type watcherLog []string

func (w *watcherLog) SetActiveSession(id string) { *w = append(*w, id) }

func TestSessionChangesReachWatcher(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	creds, err := HashCredentials(testCredentials, bcrypt.MinCost)
	require.NoError(t, err)

	var seen watcherLog
	sessions := NewSessionService(creds, repository.NewSessionRepository(f.docs), f.audit, f.tx, &seen, f.clock, slog.New(slog.NewTextHandler(io.Discard, nil)))

	first, err := sessions.Login(ctx, LoginRequest{Username: "kasir", Password: "kasir123"})
	require.NoError(t, err)
	second, err := sessions.Login(ctx, LoginRequest{Username: "manager", Password: "manager123"})
	require.NoError(t, err)

	_, err = sessions.Login(ctx, LoginRequest{Username: "kasir", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	sessions.Logout(ctx)

	assert.Equal(t, watcherLog{first.SessionID.String(), second.SessionID.String(), ""}, seen)
}

func TestRestoreAnnouncesSession(t *testing.T) {
	f := newFixture(t)
	original := f.login(t, "manager", "manager123")
	creds, err := HashCredentials(testCredentials, bcrypt.MinCost)
	require.NoError(t, err)

	var seen watcherLog
	restored := NewSessionService(creds, repository.NewSessionRepository(f.docs), f.audit, f.tx, &seen, f.clock, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, restored.Restore(context.Background()))
	assert.Equal(t, watcherLog{original.SessionID.String()}, seen)
}
