package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Assets are the third-party stylesheet and script the alert markup relies on.
type Assets struct {
	JQueryURL       string
	BootstrapCSSURL string
}

// WithLayout renders content inside Layout.
func WithLayout(title string, assets Assets, head *Head, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(title, assets, head).Render(templ.WithChildren(ctx, content), w)
	})
}
