package tui

import (
	"testing"

	"github.com/apirocket/rocket/pkg/chat"
)

func TestMatchesLabel(t *testing.T) {
	tests := []struct {
		input string
		label string
		want  bool
	}{
		{"GET", "GET", true},
		{"get", "GET", true},
		{"skip", "⏭️ Skip", true},
		{"send request", "🚀 Send Request", true},
		{"Send Request", "🚀 Send Request", true},
		{"send", "🚀 Send Request", false},
		{"post", "GET", false},
	}

	for _, tt := range tests {
		if got := matchesLabel(tt.input, tt.label); got != tt.want {
			t.Errorf("matchesLabel(%q, %q) = %v, want %v", tt.input, tt.label, got, tt.want)
		}
	}
}

func TestResolveEvent(t *testing.T) {
	m := Model{buttons: []chat.Button{
		{Label: "GET", Method: chat.MethodGet},
		{Label: "POST", Method: chat.MethodPost},
		{Label: "🚀 Send Request", Action: chat.ActionSendRequest},
	}}

	tests := []struct {
		name  string
		input string
		want  chat.Event
	}{
		{
			name:  "number picks by position",
			input: "2",
			want:  chat.MethodSelected(localUserID, chat.MethodPost),
		},
		{
			name:  "label picks by name",
			input: "send request",
			want:  chat.ActionTriggered(localUserID, chat.ActionSendRequest),
		},
		{
			name:  "method name picks the method button",
			input: "get",
			want:  chat.MethodSelected(localUserID, chat.MethodGet),
		},
		{
			name:  "anything else is free text",
			input: "https://example.com",
			want:  chat.TextReceived(localUserID, "https://example.com"),
		},
		{
			name:  "out-of-range number is free text",
			input: "9",
			want:  chat.TextReceived(localUserID, "9"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.resolveEvent(tt.input); got != tt.want {
				t.Errorf("resolveEvent(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
