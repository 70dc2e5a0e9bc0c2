package task

// EventLevel classifies a notification event.
type EventLevel string

const (
	// EventSuccess reports a completed creation or positive completion.
	EventSuccess EventLevel = "success"

	// EventInfo reports a state toggle or a deletion with no side effects.
	EventInfo EventLevel = "info"

	// EventWarning reports a deletion that cascaded to dependent records.
	EventWarning EventLevel = "warning"

	// EventError reports a validation failure or not-found lookup. The
	// command performed no mutation.
	EventError EventLevel = "error"
)

// Event is a notification emitted to the UI collaborator after a command.
type Event struct {
	Level       EventLevel
	Title       string
	Description string
}

// Notifier receives events emitted by store commands.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Event)

// Notify calls the wrapped function.
func (f NotifierFunc) Notify(event Event) { f(event) }

func successEvent(title, description string) Event {
	return Event{Level: EventSuccess, Title: title, Description: description}
}

func infoEvent(title, description string) Event {
	return Event{Level: EventInfo, Title: title, Description: description}
}

func warningEvent(title, description string) Event {
	return Event{Level: EventWarning, Title: title, Description: description}
}
