package observability

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/slotstash/internal/game/inventory"
)

// EventLogger is an inventory.Listener that writes additions and removals at
// info level and state changes at debug level.
type EventLogger struct {
	logger *zap.Logger
}

// NewEventLogger returns an EventLogger tagging entries with the container id.
//
// Precondition: logger must be non-nil.
func NewEventLogger(logger *zap.Logger, containerID string) *EventLogger {
	return &EventLogger{logger: logger.With(zap.String("container", containerID))}
}

// OnAdded implements inventory.Listener.
func (l *EventLogger) OnAdded(sender inventory.Sender, item *inventory.Item, amount int) {
	l.logger.Info("inventory added",
		zap.String("sender", string(sender)),
		zap.String("kind", string(item.Kind())),
		zap.Int("amount", amount),
	)
}

// OnRemoved implements inventory.Listener.
func (l *EventLogger) OnRemoved(sender inventory.Sender, kind inventory.KindID, amount int) {
	l.logger.Info("inventory removed",
		zap.String("sender", string(sender)),
		zap.String("kind", string(kind)),
		zap.Int("amount", amount),
	)
}

// OnStateChanged implements inventory.Listener.
func (l *EventLogger) OnStateChanged(sender inventory.Sender) {
	l.logger.Debug("inventory state changed", zap.String("sender", string(sender)))
}
