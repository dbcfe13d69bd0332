package chat

import (
	"context"

	"github.com/apirocket/rocket/pkg/render"
	"github.com/apirocket/rocket/pkg/request"
)

// Executor performs the HTTP call for a completed session. It is the only
// collaborator that suspends for meaningful wall-clock time.
type Executor interface {
	Execute(ctx context.Context, spec request.Spec) request.Outcome
}

// Engine is the conversation state machine. Handle applies one inbound
// event to the owning user's session and returns the reply to display.
type Engine struct {
	store *Store
	exec  Executor
	body  *BodyValidator
}

// NewEngine wires the state machine to its session store, executor and body
// validator. A nil validator falls back to syntax-only checking.
func NewEngine(store *Store, exec Executor, body *BodyValidator) *Engine {
	if body == nil {
		body = NewBodyValidator()
	}
	return &Engine{store: store, exec: exec, body: body}
}

// Store exposes the underlying session store.
func (e *Engine) Store() *Store {
	return e.store
}

// Handle applies one event under the user's session lock. Events for the
// same user are strictly serialized; other users proceed concurrently.
func (e *Engine) Handle(ctx context.Context, ev Event) Reply {
	return e.store.Update(ev.UserID, func(s *Session) Reply {
		return e.transition(ctx, s, ev)
	})
}

// transition is the single place sessions change. Any event inconsistent
// with the current step leaves the session untouched and reports what is
// still missing.
func (e *Engine) transition(ctx context.Context, s *Session, ev Event) Reply {
	switch ev.Kind {
	case EventMethodSelected:
		return e.onMethod(s, ev.Method)
	case EventText:
		return e.onText(s, ev.Text)
	case EventAction:
		return e.onAction(ctx, s, ev.Action)
	}
	return e.outOfStep(s)
}

func (e *Engine) onMethod(s *Session, method Method) Reply {
	if s.Step != StepMethod {
		return e.outOfStep(s)
	}
	if _, ok := ParseMethod(string(method)); !ok {
		return e.outOfStep(s)
	}

	s.Method = method
	s.Step = StepURL
	return Reply{Text: render.URLPrompt(string(method))}
}

func (e *Engine) onText(s *Session, text string) Reply {
	switch s.Step {
	case StepURL:
		if err := ValidateURL(text); err != nil {
			return Reply{Text: render.BadURL}
		}
		s.URL = text
		if s.Method.hasBody() {
			s.Step = StepBody
			return Reply{
				Text:    render.BodyPrompt(string(s.Method), s.URL),
				Buttons: skipButton(),
			}
		}
		s.Step = StepReady
		return e.readyReply(s)

	case StepBody:
		if err := e.body.Validate(text); err != nil {
			return Reply{Text: render.BadJSON}
		}
		s.Body = text
		s.Step = StepReady
		return e.readyReply(s)

	case StepHeaders:
		// Merge never fails: colon-less lines are dropped, not rejected.
		s.MergeHeaders(ParseHeaderBlock(text))
		s.Step = StepReady
		return e.readyReply(s)
	}

	return e.outOfStep(s)
}

func (e *Engine) onAction(ctx context.Context, s *Session, action Action) Reply {
	switch action {
	case ActionNewRequest:
		s.Reset()
		return Reply{Text: render.MethodPrompt(), Buttons: methodButtons()}

	case ActionSkipBody:
		if s.Step != StepBody {
			return e.outOfStep(s)
		}
		s.Step = StepReady
		return e.readyReply(s)

	case ActionAddHeaders:
		if s.Step != StepReady {
			return e.outOfStep(s)
		}
		s.Step = StepHeaders
		return Reply{Text: render.HeadersPrompt()}

	case ActionExport:
		if s.Step != StepReady {
			return e.outOfStep(s)
		}
		yamlText, err := e.buildSpec(s).ExportYAML()
		if err != nil {
			return Reply{Text: render.Incomplete, Buttons: readyButtons()}
		}
		return Reply{Text: render.Export(yamlText), Buttons: readyButtons()}

	case ActionSendRequest:
		if s.Step != StepReady || !s.Complete() {
			return e.outOfStep(s)
		}
		// The session stays ready afterward so the user can resend,
		// edit headers or export the same request.
		outcome := e.exec.Execute(ctx, e.buildSpec(s))
		return Reply{Text: render.Format(outcome), Buttons: newRequestButton()}
	}

	return e.outOfStep(s)
}

// buildSpec snapshots the session into an immutable request descriptor.
func (e *Engine) buildSpec(s *Session) request.Spec {
	snapshot := s.clone()
	return request.Spec{
		Method:  string(snapshot.Method),
		URL:     snapshot.URL,
		Headers: snapshot.Headers,
		Body:    snapshot.Body,
	}
}

// outOfStep reports an inconsistent event without mutating the session.
// A complete session just shows its summary again.
func (e *Engine) outOfStep(s *Session) Reply {
	if s.Step == StepReady && s.Complete() {
		return e.readyReply(s)
	}
	return Reply{Text: render.MissingFields(s.MissingFields())}
}

func (e *Engine) readyReply(s *Session) Reply {
	return Reply{
		Text:    render.ReadySummary(string(s.Method), s.URL, len(s.Headers), len(s.Body)),
		Buttons: readyButtons(),
	}
}
