package domain

// Event is a domain event emitted by a service after a successful mutation.
type Event interface {
	Type() string
}

// EventDispatcher delivers domain events to whoever cares. Dispatch failures
// never fail the mutation that produced the event.
type EventDispatcher interface {
	Dispatch(event Event) error
}
