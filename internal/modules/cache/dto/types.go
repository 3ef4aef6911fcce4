package dto

import "net/http"

type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

type InstallOutput struct {
	Version string
	Cached  []string
	Failed  map[string]string
}

type ActivateOutput struct {
	Deleted []string
}

type SyncOutput struct {
	Synced int
	Error  string
}

type ClickOutput struct {
	ViewID  string
	URL     string
	Focused bool
}

type NamespaceOutput struct {
	Name    string
	Current bool
	Entries int
}

type EventKind string

const (
	EventFetch             EventKind = "fetch"
	EventSync              EventKind = "sync"
	EventPush              EventKind = "push"
	EventNotificationClick EventKind = "notificationclick"
)

// Event is one inbound message for the controller loop. Reply receives
// exactly one Result.
type Event struct {
	Kind    EventKind
	Request Request
	Tag     string
	Payload []byte
	Reply   chan<- Result
}

type Result struct {
	Response Response
}

// NewEvent builds an event with a buffered reply channel so the loop never
// blocks on a caller that went away.
func NewEvent(kind EventKind) (Event, <-chan Result) {
	reply := make(chan Result, 1)
	return Event{Kind: kind, Reply: reply}, reply
}
