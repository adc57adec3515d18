package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrSyncShipmentStatusesCommandIsNotConstructed = errors.New(
	"SyncShipmentStatusesCommand must be created via NewSyncShipmentStatusesCommand constructor",
)

// SyncShipmentStatusesCommand triggers one polling pass over every
// booked order that has not reached a terminal status.
type SyncShipmentStatusesCommand struct {
	guard guard.ConstructorGuard
}

// NewSyncShipmentStatusesCommand creates a parameterless sync command.
func NewSyncShipmentStatusesCommand() SyncShipmentStatusesCommand {
	return SyncShipmentStatusesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SyncShipmentStatusesCommand) Validate() error {
	return c.guard.Validate(ErrSyncShipmentStatusesCommandIsNotConstructed)
}
