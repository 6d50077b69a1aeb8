package components

import "context"

// TextSource supplies a string at render time. Alerts keep the source rather
// than its value so the text can change between renders.
type TextSource interface {
	Text(ctx context.Context) string
}

type staticText string

func (s staticText) Text(context.Context) string { return string(s) }

func Text(s string) TextSource {
	return staticText(s)
}

type TextFunc func(ctx context.Context) string

func (f TextFunc) Text(ctx context.Context) string {
	if f == nil {
		return ""
	}
	return f(ctx)
}
