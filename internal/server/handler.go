package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/shelterkin/alertkit/components"
	"github.com/shelterkin/alertkit/internal/apperror"
	"github.com/shelterkin/alertkit/internal/crypto"
	"github.com/shelterkin/alertkit/internal/flash"
	"github.com/shelterkin/alertkit/internal/ulid"
)

const pageTitle = "alertkit"

var showcase = []struct {
	severity components.Severity
	message  string
}{
	{components.SeveritySuccess, "Your changes have been saved."},
	{components.SeverityInfo, "A new version is available."},
	{components.SeverityWarning, "Your session expires in five minutes."},
	{components.SeverityError, "The upload could not be processed."},
}

type Handler struct {
	assets    components.Assets
	flash     *crypto.Signer
	secure    bool
	hideAfter time.Duration
	csrfToken func(context.Context) string
}

func NewHandler(assets components.Assets, flashSigner *crypto.Signer, secure bool, hideAfter time.Duration, csrfToken func(context.Context) string) *Handler {
	return &Handler{
		assets:    assets,
		flash:     flashSigner,
		secure:    secure,
		hideAfter: hideAfter,
		csrfToken: csrfToken,
	}
}

// HandleIndex shows the pending flash notice, one alert per severity and the
// notice form.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	head := components.NewHead()
	var alerts []*components.Alert

	notice, err := flash.Pop(w, r, h.flash, h.secure)
	if err != nil {
		slog.Debug("discarding flash notice", "error", err)
	}
	if notice != nil {
		alerts = append(alerts, notice.Alert(ulid.NewMarkupID("flash")).HideAfter(h.hideAfter))
	}

	for _, s := range showcase {
		a := components.NewAlert("demo-"+strings.ToLower(s.severity.String()), components.Text(s.message), components.Text(s.severity.String()))
		a.SetSeverity(s.severity).UseInlineHeader(s.severity != components.SeverityWarning)
		alerts = append(alerts, a)
	}

	for _, a := range alerts {
		a.Prepare(r.Context(), head)
	}

	content := templ.Join(
		components.AlertList(alerts...),
		components.NoticeForm(h.csrfToken(r.Context())),
	)
	renderHTML(w, r, http.StatusOK, components.WithLayout(pageTitle, h.assets, head, content))
}

// HandleAlert renders a single alert configured from the query string. HTMX
// requests get the fragment, everything else a full page.
func (h *Handler) HandleAlert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ve := &apperror.ValidationErrors{}

	message := q.Get("message")
	if strings.TrimSpace(message) == "" {
		ve.Add("message", "Message is required")
	}

	hideAfter, err := parseDuration(q.Get("hide_after"), h.hideAfter)
	if err != nil {
		ve.Add("hide_after", "Hide after must be a duration such as 3s")
	}
	inline, err := parseBool(q.Get("inline"), true)
	if err != nil {
		ve.Add("inline", "Inline must be true or false")
	}
	closable, err := parseBool(q.Get("closable"), true)
	if err != nil {
		ve.Add("closable", "Closable must be true or false")
	}

	if ve.HasErrors() {
		h.renderError(w, r, ve.ToError())
		return
	}

	alert := components.NewAlert("alert", components.Text(message), components.Text(q.Get("header"))).
		SetMarkupID(ulid.NewMarkupID("alert")).
		SetSeverity(components.SeverityFrom(q.Get("level"))).
		HideAfter(hideAfter).
		UseInlineHeader(inline).
		SetCloseButtonVisible(closable)

	head := components.NewHead()
	alert.Prepare(r.Context(), head)

	slog.Debug("alert rendered",
		"markup_id", alert.MarkupID(),
		"severity", alert.Severity().String(),
		"hide_after_ms", hideAfter.Milliseconds(),
	)

	h.renderContent(w, r, http.StatusOK, head, alert)
}

// HandlePostNotice stores a flash notice and redirects to the index, where it
// is shown once.
func (h *Handler) HandlePostNotice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	notice := flash.Notice{
		Level:   r.FormValue("level"),
		Message: strings.TrimSpace(r.FormValue("message")),
		Header:  strings.TrimSpace(r.FormValue("header")),
	}
	if notice.Message == "" {
		h.renderError(w, r, apperror.Validation("message", "Message is required"))
		return
	}

	if err := flash.Set(w, notice, h.flash, h.secure); err != nil {
		h.renderError(w, r, apperror.Internal("Failed to store notice", err))
		return
	}

	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, appErr *apperror.Error) {
	status := apperror.HTTPStatus(appErr)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "path", r.URL.Path, "error", appErr)
	}

	message := appErr.Message
	if appErr.Type == apperror.TypeInternal {
		message = "Something went wrong. Please try again."
	}

	alert := components.NewAlert("error", components.Text(message)).
		SetSeverity(components.SeverityFrom(appErr.Level()))

	head := components.NewHead()
	alert.Prepare(r.Context(), head)
	h.renderContent(w, r, status, head, alert)
}

func (h *Handler) renderContent(w http.ResponseWriter, r *http.Request, status int, head *components.Head, content templ.Component) {
	if isHTMX(r) {
		renderHTML(w, r, status, templ.Join(content, head))
		return
	}
	renderHTML(w, r, status, components.WithLayout(pageTitle, h.assets, head, content))
}

func renderHTML(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		slog.Error("rendering response", "path", r.URL.Path, "error", err)
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func parseDuration(s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	return time.ParseDuration(s)
}

func parseBool(s string, fallback bool) (bool, error) {
	if s == "" {
		return fallback, nil
	}
	return strconv.ParseBool(s)
}
