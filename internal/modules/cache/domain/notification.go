package domain

import (
	"encoding/json"
	"strings"
)

const DefaultNotificationTitle = "examprep"

type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

// ParsePush reads a push payload. JSON objects fill the notification fields;
// any other payload becomes the body text.
func ParsePush(payload []byte) Notification {
	n := Notification{}
	trimmed := strings.TrimSpace(string(payload))
	if strings.HasPrefix(trimmed, "{") && json.Unmarshal([]byte(trimmed), &n) == nil {
		if n.Title == "" {
			n.Title = DefaultNotificationTitle
		}
		return n
	}
	return Notification{Title: DefaultNotificationTitle, Body: trimmed}
}

type View struct {
	ID  string
	URL string
}
