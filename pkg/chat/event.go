// Package chat implements the per-user conversation that assembles an HTTP
// request field by field. It owns the session store, the validators and the
// state machine; the chat transport and the HTTP transport are collaborators
// reached only through small interfaces.
package chat

// Method is an HTTP method the user can pick from the menu.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)

// Methods lists the selectable methods in menu order.
var Methods = []Method{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete}

// ParseMethod maps free text onto a known method.
func ParseMethod(s string) (Method, bool) {
	for _, m := range Methods {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// hasBody reports whether the method carries a request body.
func (m Method) hasBody() bool {
	switch m {
	case MethodPost, MethodPut, MethodPatch:
		return true
	}
	return false
}

// Action identifies a menu button press.
type Action string

const (
	ActionSkipBody    Action = "skip_body"
	ActionAddHeaders  Action = "add_headers"
	ActionSendRequest Action = "send_request"
	ActionNewRequest  Action = "new_request"
	ActionExport      Action = "export_request"
)

// EventKind discriminates the inbound event types.
type EventKind int

const (
	EventMethodSelected EventKind = iota
	EventText
	EventAction
)

// Event is one inbound interaction from a single user.
type Event struct {
	UserID string
	Kind   EventKind
	Method Method // set for EventMethodSelected
	Text   string // set for EventText
	Action Action // set for EventAction
}

// MethodSelected builds a method-selection event.
func MethodSelected(userID string, method Method) Event {
	return Event{UserID: userID, Kind: EventMethodSelected, Method: method}
}

// TextReceived builds a free-text event, interpreted per the current step.
func TextReceived(userID, text string) Event {
	return Event{UserID: userID, Kind: EventText, Text: text}
}

// ActionTriggered builds a button-press event.
func ActionTriggered(userID string, action Action) Event {
	return Event{UserID: userID, Kind: EventAction, Action: action}
}

// Button is an action the transport may offer alongside a reply. Exactly one
// of Method and Action is set; the transport turns a press back into the
// matching event.
type Button struct {
	Label  string
	Method Method
	Action Action
}

// Press converts a button press into the event it stands for.
func (b Button) Press(userID string) Event {
	if b.Method != "" {
		return MethodSelected(userID, b.Method)
	}
	return ActionTriggered(userID, b.Action)
}

// Reply is the outbound effect of handling one event: display text plus an
// optional button set. How the transport shows either is its own business.
type Reply struct {
	Text    string
	Buttons []Button
}

func methodButtons() []Button {
	buttons := make([]Button, 0, len(Methods))
	for _, m := range Methods {
		buttons = append(buttons, Button{Label: string(m), Method: m})
	}
	return buttons
}

func skipButton() []Button {
	return []Button{{Label: "⏭️ Skip", Action: ActionSkipBody}}
}

func readyButtons() []Button {
	return []Button{
		{Label: "📋 Add Headers", Action: ActionAddHeaders},
		{Label: "🚀 Send Request", Action: ActionSendRequest},
		{Label: "📦 Export", Action: ActionExport},
		{Label: "🔄 New Request", Action: ActionNewRequest},
	}
}

func newRequestButton() []Button {
	return []Button{{Label: "🔄 New Request", Action: ActionNewRequest}}
}
