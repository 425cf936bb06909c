package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"pos/internal/model"
	"pos/internal/repository"
	"pos/pkg/pagination"
)

type AuditLogResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	Details    string `json:"details"`
	CreatedAt  string `json:"created_at"`
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, page, limit int) ([]AuditLogResponse, int64, error)
}

// Actor resolves the principal performing a mutation.
type Actor interface {
	Current() (*model.SessionUser, bool)
}

type auditService struct {
	repo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) GetAuditLogs(ctx context.Context, page, limit int) ([]AuditLogResponse, int64, error) {
	p := pagination.New(page, limit)
	logs, total, err := s.repo.List(ctx, p.Offset, p.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		username := "System"
		userID := ""
		if l.Username != "" {
			username = l.Username
		}
		if l.UserID != nil {
			userID = strconv.FormatInt(*l.UserID, 10)
		}

		res = append(res, AuditLogResponse{
			ID:         l.ID.String(),
			UserID:     userID,
			Username:   username,
			Action:     l.Action,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return res, total, nil
}

// auditEntry builds a log row attributed to whoever actor reports as logged in.
func auditEntry(actor Actor, action, entityID, entityName string, details interface{}) *model.AuditLog {
	detailsJSON, _ := json.Marshal(details)
	entry := &model.AuditLog{
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(detailsJSON),
	}
	if actor != nil {
		if u, ok := actor.Current(); ok {
			id := u.ID
			entry.UserID = &id
			entry.Username = u.Username
		}
	}
	return entry
}

func writeAudit(ctx context.Context, repo repository.AuditRepository, entry *model.AuditLog) error {
	if err := repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}
