package scorecraft

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
)

// DefaultTitleTemplate is used when no title template is configured.
const DefaultTitleTemplate = `{{ .Info.Title | default "Untitled" }} - ScoreCraft`

// TitleTemplate renders window titles and headers from a Setup. The template
// has the sprig functions available, e.g. default, upper and join.
type TitleTemplate struct {
	tmpl *template.Template
}

// ParseTitleTemplate parses text as a title template. An empty text selects
// DefaultTitleTemplate.
func ParseTitleTemplate(text string) (*TitleTemplate, error) {
	if text == "" {
		text = DefaultTitleTemplate
	}
	tmpl, err := template.New("title").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("could not parse title template: %w", err)
	}
	return &TitleTemplate{tmpl: tmpl}, nil
}

// MustParseTitleTemplate is like ParseTitleTemplate but panics on error.
func MustParseTitleTemplate(text string) *TitleTemplate {
	t, err := ParseTitleTemplate(text)
	if err != nil {
		panic(err)
	}
	return t
}

// Render executes the template against s. Rendered titles are single line:
// every run of whitespace, newlines included, becomes one space.
func (t *TitleTemplate) Render(s Setup) (string, error) {
	var b strings.Builder
	if err := t.tmpl.Execute(&b, s); err != nil {
		return "", fmt.Errorf("could not render title: %w", err)
	}
	return strings.Join(strings.Fields(b.String()), " "), nil
}
