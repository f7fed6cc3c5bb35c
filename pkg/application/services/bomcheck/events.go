package bomcheck

import (
	"go.uber.org/zap"

	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/infrastructure/events"
)

// Event types published to the checker's event store. Every event of one
// check shares the run id as stream id.
const (
	CheckStartedEvent      = "bom.check.started"
	IssueFoundEvent        = "bom.issue.found"
	AlternateSelectedEvent = "bom.alternate.selected"
	CheckCompletedEvent    = "bom.check.completed"
)

type CheckStarted struct {
	Lines  int                `json:"lines"`
	Policy entities.BOMPolicy `json:"policy"`
}

type CheckCompleted struct {
	Classified int  `json:"classified"`
	Errors     int  `json:"errors"`
	Warnings   int  `json:"warnings"`
	Valid      bool `json:"valid"`
}

// WithEventStore publishes the progress of every check to store
func WithEventStore(store events.EventStore) Option {
	return func(c *Checker) {
		c.events = store
	}
}

func (c *Checker) publish(report *Report, eventType string, data interface{}) {
	if c.events == nil {
		return
	}
	stream := report.RunID.String()
	if err := c.events.AppendEvent(stream, events.NewEvent(eventType, stream, data)); err != nil {
		c.logger.Warn("failed to publish event", zap.String("event_type", eventType), zap.Error(err))
	}
}

func (c *Checker) publishResults(report *Report) {
	if c.events == nil {
		return
	}
	for _, issue := range report.Errors {
		c.publish(report, IssueFoundEvent, issue)
	}
	for _, issue := range report.Warnings {
		c.publish(report, IssueFoundEvent, issue)
	}
	for _, selection := range report.Selections {
		if selection.Alternate != "" {
			c.publish(report, AlternateSelectedEvent, selection)
		}
	}
	c.publish(report, CheckCompletedEvent, CheckCompleted{
		Classified: report.Classified,
		Errors:     len(report.Errors),
		Warnings:   len(report.Warnings),
		Valid:      report.Valid(),
	})
}
