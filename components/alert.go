package components

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
)

const alertBaseClass = "alert"

// Alert is a dismissible message banner. Configure it with the setters, call
// Prepare once per render pass, then Render it.
type Alert struct {
	id       string
	markupID string
	message  TextSource
	header   TextSource

	severity     Severity
	hideAfter    time.Duration
	inlineHeader bool
	closeVisible bool

	// refreshed by Prepare
	messageText   string
	headerText    string
	showInline    bool
	showBlock     bool
	classes       []string
	needsDismiss  bool
	dismissAction *ScheduledAction
}

// NewAlert creates an info alert with a close button. The optional header is
// shown above the message when it is not blank.
func NewAlert(id string, message TextSource, header ...TextSource) *Alert {
	a := &Alert{
		id:           id,
		message:      message,
		header:       Text(""),
		severity:     SeverityInfo,
		inlineHeader: true,
		closeVisible: true,
	}
	if a.message == nil {
		a.message = Text("")
	}
	if len(header) > 0 && header[0] != nil {
		a.header = header[0]
	}
	return a
}

func (a *Alert) SetSeverity(s Severity) *Alert {
	a.severity = s
	return a
}

// HideAfter closes the alert on the client once d has passed. Non-positive
// durations disable auto-hide.
func (a *Alert) HideAfter(d time.Duration) *Alert {
	a.hideAfter = d
	return a
}

func (a *Alert) UseInlineHeader(inline bool) *Alert {
	a.inlineHeader = inline
	return a
}

func (a *Alert) SetCloseButtonVisible(visible bool) *Alert {
	a.closeVisible = visible
	return a
}

// SetMarkupID overrides the element id used in markup and scripts. It
// defaults to the component id.
func (a *Alert) SetMarkupID(id string) *Alert {
	a.markupID = id
	return a
}

// Prepare recomputes the render state from the current configuration and
// registers head requirements. It must run after all setters and before
// Render on every render pass. head may be nil. Preparing again against the
// same head does not schedule a second auto-hide.
func (a *Alert) Prepare(ctx context.Context, head *Head) {
	a.headerText = a.header.Text(ctx)
	if strings.TrimSpace(a.headerText) == "" {
		a.showInline = false
		a.showBlock = false
	} else {
		a.showInline = a.inlineHeader
		a.showBlock = !a.inlineHeader
	}

	a.messageText = a.message.Text(ctx)

	a.needsDismiss = a.closeVisible
	a.classes = []string{alertBaseClass, a.severity.CSSClass()}

	a.dismissAction = nil
	if a.hideAfter.Milliseconds() > 0 {
		a.dismissAction = &ScheduledAction{
			TargetID: a.MarkupID(),
			Delay:    a.hideAfter,
			Action:   ActionClose,
		}
	}

	if head == nil {
		return
	}
	if a.needsDismiss {
		head.RequireScript(DismissScript)
	}
	if a.dismissAction != nil {
		head.OnDOMReady(*a.dismissAction)
	}
}

// ScheduledAction returns the auto-dismiss request computed by the last
// Prepare, if any.
func (a *Alert) ScheduledAction() (ScheduledAction, bool) {
	if a.dismissAction == nil {
		return ScheduledAction{}, false
	}
	return *a.dismissAction, true
}

func (a *Alert) ID() string { return a.id }

func (a *Alert) MarkupID() string {
	if a.markupID != "" {
		return a.markupID
	}
	return a.id
}

func (a *Alert) Severity() Severity { return a.severity }

func (a *Alert) Classes() []string { return append([]string(nil), a.classes...) }

func (a *Alert) InlineHeaderVisible() bool { return a.showInline }

func (a *Alert) BlockHeaderVisible() bool { return a.showBlock }

func (a *Alert) CloseButtonVisible() bool { return a.closeVisible }

// DismissScriptRequired reports whether the last Prepare asked for the
// close-behavior script.
func (a *Alert) DismissScriptRequired() bool { return a.needsDismiss }

func (a *Alert) Message() string { return a.messageText }

func (a *Alert) Header() string { return a.headerText }

// Render writes the markup for the state computed by the last Prepare.
func (a *Alert) Render(ctx context.Context, w io.Writer) error {
	return alertView(a).Render(ctx, w)
}

var _ templ.Component = (*Alert)(nil)
