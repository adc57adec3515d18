package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ShipmentSyncJob polls the carrier once a minute for every booked
// order still in flight and propagates reported status changes.
type ShipmentSyncJob struct {
	handler commands.SyncShipmentStatusesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShipmentSyncJob creates the polling job around the sync handler.
func NewShipmentSyncJob(handler commands.SyncShipmentStatusesCommandHandler, logger *slog.Logger) *ShipmentSyncJob {
	return &ShipmentSyncJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "shipment_sync_job"),
	}
}

// Start begins the shipment sync job to run at the top of every minute.
func (j *ShipmentSyncJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Second)
		defer cancel()
		cmd := commands.NewSyncShipmentStatusesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Shipment sync job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment sync job started (running every minute)")
	return nil
}

// Stop stops the shipment sync job.
func (j *ShipmentSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment sync job stopped")
}
