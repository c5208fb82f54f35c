// Package email provides email sending functionality.
package email

import (
	"context"

	"github.com/task-tracker/backend/internal/application/adapter"
	"github.com/task-tracker/backend/internal/domain/entity"
	domainerror "github.com/task-tracker/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueWelcomeEmail queues a welcome email for a newly registered user.
func (s *Service) QueueWelcomeEmail(ctx context.Context, input adapter.QueueWelcomeInput) error {
	subject := "Welcome to Task Tracker"

	templateData := map[string]interface{}{
		"user_name": input.UserName,
		"app_url":   s.appBaseURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateWelcome,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue welcome email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
