package watch

import "github.com/fsnotify/fsnotify"

// EventType classifies a file change.
type EventType int

const (
	EventCreate EventType = iota
	EventModify
	EventDelete
	EventRename
)

func (e EventType) String() string {
	switch e {
	case EventCreate:
		return "create"
	case EventModify:
		return "modify"
	case EventDelete:
		return "delete"
	case EventRename:
		return "rename"
	default:
		return "unknown"
	}
}

// FileEvent is one change to a watched layout file.
type FileEvent struct {
	Path string
	Type EventType
}

// Removed reports whether the file no longer exists at Path.
func (e FileEvent) Removed() bool {
	return e.Type == EventDelete || e.Type == EventRename
}

func convertEvent(event fsnotify.Event) (FileEvent, bool) {
	var t EventType
	switch {
	case event.Has(fsnotify.Create):
		t = EventCreate
	case event.Has(fsnotify.Write):
		t = EventModify
	case event.Has(fsnotify.Remove):
		t = EventDelete
	case event.Has(fsnotify.Rename):
		t = EventRename
	default:
		return FileEvent{}, false
	}
	return FileEvent{Path: event.Name, Type: t}, true
}
