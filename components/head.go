package components

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// DismissScript is the close-behavior asset. It is loaded whenever an alert
// shows its close control or schedules an auto-hide.
const DismissScript = "/static/js/alert.js"

const ActionClose = "close"

// ScheduledAction asks the client to invoke Action on the element TargetID
// once Delay has elapsed after the DOM is ready.
type ScheduledAction struct {
	TargetID string
	Delay    time.Duration
	Action   string
}

func (a ScheduledAction) Milliseconds() int64 {
	return a.Delay.Milliseconds()
}

// Head collects what components need in the page head during a render pass.
// It is owned by a single request.
type Head struct {
	scripts []string
	seen    map[string]struct{}
	actions []ScheduledAction
}

func NewHead() *Head {
	return &Head{seen: make(map[string]struct{})}
}

func (h *Head) RequireScript(src string) {
	if _, ok := h.seen[src]; ok {
		return
	}
	h.seen[src] = struct{}{}
	h.scripts = append(h.scripts, src)
}

// OnDOMReady schedules action to run once the DOM is ready. A second request
// for the same target and action replaces the first.
func (h *Head) OnDOMReady(action ScheduledAction) {
	for i, a := range h.actions {
		if a.TargetID == action.TargetID && a.Action == action.Action {
			h.actions[i] = action
			return
		}
	}
	h.actions = append(h.actions, action)
}

func (h *Head) Scripts() []string {
	return append([]string(nil), h.scripts...)
}

func (h *Head) Actions() []ScheduledAction {
	return append([]ScheduledAction(nil), h.actions...)
}

// Render writes the script assets followed by one inline script for the
// scheduled actions. Scheduled actions call $.fn.alert, so DismissScript is
// loaded whenever there are any, even if no component asked for it.
func (h *Head) Render(ctx context.Context, w io.Writer) error {
	scripts := h.Scripts()
	if _, ok := h.seen[DismissScript]; !ok && len(h.actions) > 0 {
		scripts = append(scripts, DismissScript)
	}
	return headView(scripts, h.actions).Render(ctx, w)
}

// domReadyScript writes the nonce'd inline script. The body is raw
// JavaScript, so it is assembled here rather than in headView.
func domReadyScript(actions []ScheduledAction) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<script")
		if nonce := templ.GetNonce(ctx); nonce != "" {
			fmt.Fprintf(&b, ` nonce="%s"`, templ.EscapeString(nonce))
		}
		b.WriteString(">$(function(){")
		for _, a := range actions {
			stmt, err := actionScript(a)
			if err != nil {
				return err
			}
			b.WriteString(stmt)
		}
		b.WriteString("});</script>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func actionScript(a ScheduledAction) (string, error) {
	selector, err := templ.JSONString("#" + a.TargetID)
	if err != nil {
		return "", fmt.Errorf("encoding target %q: %w", a.TargetID, err)
	}
	action, err := templ.JSONString(a.Action)
	if err != nil {
		return "", fmt.Errorf("encoding action %q: %w", a.Action, err)
	}
	return fmt.Sprintf("window.setTimeout(function(){ $(%s).alert(%s); }, %d);",
		selector, action, a.Milliseconds()), nil
}
