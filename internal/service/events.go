package service

// Events published to live clients.
const (
	EventTransactionCreated = "transaction.created"
	EventStockLow           = "stock.low"
	EventCatalogChanged     = "catalog.changed"
	EventDataReset          = "data.reset"
)

// EventPublisher fans events out to connected clients. Publish must not block.
type EventPublisher interface {
	Publish(event string, data interface{})
}

// SessionWatcher is told the live session id whenever it changes; "" means
// nobody is logged in. Implementations must not block.
type SessionWatcher interface {
	SetActiveSession(id string)
}

type discardPublisher struct{}

func (discardPublisher) Publish(string, interface{}) {}

func orDiscard(p EventPublisher) EventPublisher {
	if p == nil {
		return discardPublisher{}
	}
	return p
}

type noWatcher struct{}

func (noWatcher) SetActiveSession(string) {}
