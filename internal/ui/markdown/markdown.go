// Package markdown renders the operation reference with glamour.
package markdown

import (
	"github.com/charmbracelet/glamour"
)

// flushStyle drops the outer document margin and the blank lines glamour
// adds around it and around tables, so output sits flush inside a panel box.
const flushStyle = `{
	"document": {"margin": 0, "block_prefix": "", "block_suffix": ""},
	"table": {"margin": 0}
}`

// Renderer wraps glamour with xroot's configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
	style    string
}

// New creates a renderer with the given wrap width and style ("dark" or
// "light", dark when empty). A named style is used rather than
// WithAutoStyle, which queries the terminal and leaks the response into
// Bubble Tea's input stream.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(flushStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width, style: style}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Style returns the glamour style name in use.
func (r *Renderer) Style() string {
	return r.style
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}
