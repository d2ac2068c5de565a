// events.go defines the event types for extension notifications.
//
// Separated from extension.go to isolate the event system. Events enable
// extensions to react to index changes without modifying core logic.
//
// Design: Events are fire-and-forget notifications, not approval requests.
// Extensions cannot block or veto operations via events - they observe
// after the fact. This keeps the core system simple and predictable.

package extension

// EventType identifies the kind of event.
type EventType string

const (
	EventDocumentInsert EventType = "document:insert"
	EventDocumentRemove EventType = "document:remove"
)

// Event is the base interface for all events.
type Event interface {
	EventType() EventType
	EventDoc() int64
}

// DocumentInsertEvent is fired after a document is indexed.
type DocumentInsertEvent struct {
	ID    int64
	Bytes int
}

func (e DocumentInsertEvent) EventType() EventType { return EventDocumentInsert }
func (e DocumentInsertEvent) EventDoc() int64      { return e.ID }

// DocumentRemoveEvent is fired after a document is removed from the index.
type DocumentRemoveEvent struct {
	ID int64
}

func (e DocumentRemoveEvent) EventType() EventType { return EventDocumentRemove }
func (e DocumentRemoveEvent) EventDoc() int64      { return e.ID }

// EventHandler is implemented by extensions that want to receive events.
type EventHandler interface {
	HandleEvent(ctx Context, e Event) error
}
