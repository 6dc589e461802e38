package notification

import (
	"sync"

	"smartslot/models"
	"smartslot/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotifier logs every notice and keeps a bounded history so the
// admin surface can hand undelivered notices back to the UI.
type DefaultNotifier struct {
	mu      sync.Mutex
	history []models.Notice
	limit   int
}

// NewDefaultNotifier returns a notifier retaining the most recent limit
// notices.
func NewDefaultNotifier(limit int) *DefaultNotifier {
	if limit <= 0 {
		limit = 50
	}
	return &DefaultNotifier{limit: limit}
}

func (n *DefaultNotifier) Notify(level models.NoticeLevel, message string) models.Notice {
	notice := models.Notice{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
	}

	logger := utils.GetLogger()
	fields := []zap.Field{zap.String("noticeID", notice.ID), zap.String("level", string(level))}
	switch level {
	case models.NoticeError:
		logger.Error(message, fields...)
	case models.NoticeWarning:
		logger.Warn(message, fields...)
	default:
		logger.Info(message, fields...)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.history = append(n.history, notice)
	if len(n.history) > n.limit {
		n.history = n.history[len(n.history)-n.limit:]
	}
	return notice
}

// Drain returns the retained notices and empties the history.
func (n *DefaultNotifier) Drain() []models.Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	drained := n.history
	n.history = nil
	return drained
}
