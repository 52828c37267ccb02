package pages

import (
	"context"
	"encoding/json"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"
)

// markup writes HTML and keeps the first write error.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newMarkup(ctx context.Context, w io.Writer) *markup {
	return &markup{ctx: ctx, w: w}
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) attr(name, value string) {
	m.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// attrIf writes a boolean attribute.
func (m *markup) attrIf(name string, on bool) {
	if on {
		m.raw(" " + name)
	}
}

func (m *markup) class(classes ...string) {
	m.attr("class", twmerge.Merge(classes...))
}

// vals writes an hx-vals attribute holding v as JSON.
func (m *markup) vals(v any) {
	encoded, err := json.Marshal(v)
	if err != nil {
		if m.err == nil {
			m.err = err
		}
		return
	}
	m.attr("hx-vals", string(encoded))
}

func (m *markup) component(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

func component(fn func(m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		fn(m)
		return m.err
	})
}

func cond(on bool, yes, no string) string {
	if on {
		return yes
	}
	return no
}
