package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
	)
}

// renderMarkdown converts src to HTML. Raw HTML in the source is omitted
// because goldmark's unsafe mode is left off.
func renderMarkdown(md goldmark.Markdown, src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func (p *Portfolio) render(md goldmark.Markdown) error {
	var err error
	if p.Profile.TaglineHTML, err = renderMarkdown(md, p.Profile.Tagline); err != nil {
		return fmt.Errorf("rendering tagline: %w", err)
	}
	for i := range p.About.Cards {
		c := &p.About.Cards[i]
		if c.BodyHTML, err = renderMarkdown(md, c.Body); err != nil {
			return fmt.Errorf("rendering about card %q: %w", c.Title, err)
		}
	}
	for i := range p.Projects {
		pr := &p.Projects[i]
		if pr.DescriptionHTML, err = renderMarkdown(md, pr.Description); err != nil {
			return fmt.Errorf("rendering project %q: %w", pr.Title, err)
		}
	}
	for i := range p.Experience {
		e := &p.Experience[i]
		if e.DescriptionHTML, err = renderMarkdown(md, e.Description); err != nil {
			return fmt.Errorf("rendering experience %q: %w", e.Title, err)
		}
	}
	return nil
}
