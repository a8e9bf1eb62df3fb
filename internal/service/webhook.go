package service

import (
	"context"
	"fmt"

	"github.com/dailybudgetmart/backend/internal/models"
	"github.com/dailybudgetmart/backend/internal/repo"
	"github.com/dailybudgetmart/backend/internal/transport"
)

type WebhookService struct {
	Repo *repo.GormRepo
}

func (s *WebhookService) CreateWebhook(ctx context.Context, req transport.CreateWebhookRequest) (*models.Webhook, error) {
	if err := requireTenant(ctx, s.Repo, req.TenantID); err != nil {
		return nil, err
	}
	if req.URL == "" {
		return nil, fmt.Errorf("%w: url required", ErrValidation)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	hook := &models.Webhook{
		TenantID: req.TenantID,
		URL:      req.URL,
		Events:   req.Events,
		Active:   active,
	}
	if err := s.Repo.CreateWebhook(ctx, hook); err != nil {
		return nil, err
	}
	return hook, nil
}

func (s *WebhookService) ListWebhooks(ctx context.Context, tenantID string, active *bool, limit int) ([]models.Webhook, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id required", ErrValidation)
	}
	return s.Repo.ListWebhooks(ctx, tenantID, active, limit)
}
