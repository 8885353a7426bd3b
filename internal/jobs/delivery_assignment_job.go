package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DeliveryAssignmentJob manages the scheduled matching of waiting orders
// with available delivery persons. Runs every second.
type DeliveryAssignmentJob struct {
	handler commands.AssignDeliveryCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryAssignmentJob creates a new job for delivery assignment.
// Uses AssignDeliveryCommandHandler to process one assignment per tick.
func NewDeliveryAssignmentJob(handler commands.AssignDeliveryCommandHandler, logger *slog.Logger) *DeliveryAssignmentJob {
	return &DeliveryAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_assignment_job"),
	}
}

// Start begins the delivery assignment job to run every second.
func (j *DeliveryAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignDeliveryCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoOrderToAssign) &&
				!errors.Is(err, services.ErrNoAvailableDeliveryPerson) {
				j.logger.ErrorContext(ctx, "Delivery assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery assignment job started (running every second)")
	return nil
}

// Stop stops the delivery assignment job.
func (j *DeliveryAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery assignment job stopped")
}
