package components

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestWithLayoutRendersHeadAndAlerts(t *testing.T) {
	head := NewHead()
	saved := NewAlert("saved", Text("Saved."))
	failed := NewAlert("failed", Text("Failed."), Text("Oops")).
		SetSeverity(SeverityError).
		HideAfter(2 * time.Second)
	saved.Prepare(context.Background(), head)
	failed.Prepare(context.Background(), head)

	assets := Assets{JQueryURL: "/jquery.js", BootstrapCSSURL: "/bootstrap.css"}
	page := WithLayout("Alerts", assets, head, AlertList(saved, nil, failed))

	var buf bytes.Buffer
	if err := page.Render(context.Background(), &buf); err != nil {
		t.Fatalf("rendering page: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<title>Alerts</title>",
		`<link rel="stylesheet" href="/bootstrap.css">`,
		`<script src="/jquery.js"></script>`,
		`<script src="/static/js/alert.js"></script>`,
		`$("#failed").alert("close"); }, 2000);`,
		`<div id="saved" class="alert alert-info">`,
		`<div id="failed" class="alert alert-error">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in page", want)
		}
	}

	if strings.Index(html, "/jquery.js") > strings.Index(html, DismissScript) {
		t.Error("expected jquery to load before the dismiss script")
	}
	if strings.Index(html, `id="saved"`) > strings.Index(html, `id="failed"`) {
		t.Error("expected alerts in list order")
	}
}

func TestLayoutEscapesTitleAndAssets(t *testing.T) {
	assets := Assets{JQueryURL: `/jq.js?v="1"`}
	page := WithLayout("<Alerts>", assets, nil, AlertList())

	var buf bytes.Buffer
	if err := page.Render(context.Background(), &buf); err != nil {
		t.Fatalf("rendering page: %v", err)
	}
	html := buf.String()

	if !strings.Contains(html, "<title>&lt;Alerts&gt;</title>") {
		t.Errorf("expected escaped title, got %s", html)
	}
	if !strings.Contains(html, `<script src="/jq.js?v=&#34;1&#34;"></script>`) {
		t.Errorf("expected escaped script url, got %s", html)
	}
	if strings.Contains(html, "stylesheet") {
		t.Error("expected no stylesheet link without a URL")
	}
	if !strings.HasSuffix(html, `<div class="container"></div></body></html>`) {
		t.Errorf("expected empty container, got %s", html)
	}
}

func TestNoticeFormCarriesCSRFToken(t *testing.T) {
	var buf bytes.Buffer
	if err := NoticeForm("tok&en").Render(context.Background(), &buf); err != nil {
		t.Fatalf("rendering form: %v", err)
	}
	if !strings.Contains(buf.String(), `name="_csrf_token" value="tok&amp;en"`) {
		t.Errorf("expected escaped csrf token field, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), `<form method="post" action="/notices"`) {
		t.Errorf("expected form to post to /notices, got %s", buf.String())
	}
}
