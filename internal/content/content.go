// Package content loads the portfolio manifest: profile, about cards,
// skills, projects and experience shown on the page.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultManifest []byte

// ErrInvalidContent is wrapped by every validation failure.
var ErrInvalidContent = errors.New("invalid content")

// Portfolio is the full, load-time-constant display data of the page.
type Portfolio struct {
	Profile    Profile         `yaml:"profile"`
	About      About           `yaml:"about"`
	Skills     []SkillCategory `yaml:"skills" validate:"dive"`
	Projects   []Project       `yaml:"projects" validate:"dive"`
	Experience []Experience    `yaml:"experience" validate:"dive"`
}

// Profile is the hero and footer identity.
type Profile struct {
	Name     string `yaml:"name" validate:"required"`
	Initials string `yaml:"initials"`
	Badge    string `yaml:"badge"`
	Tagline  string `yaml:"tagline"`
	Links    Links  `yaml:"links"`

	TaglineHTML template.HTML `yaml:"-"`
}

// Links are the external profile links.
type Links struct {
	GitHub   string `yaml:"github" validate:"omitempty,http_url"`
	LinkedIn string `yaml:"linkedin" validate:"omitempty,http_url"`
	Email    string `yaml:"email" validate:"omitempty,email"`
}

// Mailto returns the direct email link.
func (l Links) Mailto() string {
	if l.Email == "" {
		return ""
	}
	return "mailto:" + l.Email
}

type About struct {
	Heading string `yaml:"heading"`
	Cards   []Card `yaml:"cards"`
}

type Card struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
	Body  string `yaml:"body"`

	BodyHTML template.HTML `yaml:"-"`
}

type SkillCategory struct {
	Title  string   `yaml:"title" validate:"required"`
	Icon   string   `yaml:"icon"`
	Skills []string `yaml:"skills"`
}

type Project struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Repo        string   `yaml:"repo" validate:"omitempty,http_url"`
	Demo        string   `yaml:"demo" validate:"omitempty,http_url"`

	DescriptionHTML template.HTML `yaml:"-"`
}

// Kind distinguishes jobs from education on the timeline.
type Kind string

const (
	KindWork      Kind = "work"
	KindEducation Kind = "education"
)

type Experience struct {
	Title        string `yaml:"title" validate:"required"`
	Organization string `yaml:"organization"`
	Period       string `yaml:"period"`
	Kind         Kind   `yaml:"kind" validate:"oneof=work education"`
	Description  string `yaml:"description"`

	DescriptionHTML template.HTML `yaml:"-"`
}

// Default returns the embedded portfolio.
func Default() (*Portfolio, error) {
	p, err := Parse(defaultManifest)
	if err != nil {
		return nil, fmt.Errorf("embedded manifest: %w", err)
	}
	return p, nil
}

// Load reads a manifest from path. An empty path selects the embedded one.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes, validates and renders a manifest.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	for i := range p.Experience {
		if p.Experience[i].Kind == "" {
			p.Experience[i].Kind = KindWork
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.render(newMarkdown()); err != nil {
		return nil, err
	}
	return &p, nil
}

var validate = newValidator()

// newValidator reports fields by their manifest key rather than the Go name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the manifest for missing or malformed values.
func (p *Portfolio) Validate() error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
		fe := verrs[0]
		field := strings.TrimPrefix(fe.Namespace(), "Portfolio.")
		if fe.Tag() == "required" {
			return fmt.Errorf("%w: %s is required", ErrInvalidContent, field)
		}
		return fmt.Errorf("%w: %s %q fails %q", ErrInvalidContent, field, fe.Value(), fe.Tag())
	}

	seen := make(map[string]bool, len(p.Projects))
	for _, pr := range p.Projects {
		if seen[pr.Title] {
			return fmt.Errorf("%w: duplicate project title %q", ErrInvalidContent, pr.Title)
		}
		seen[pr.Title] = true
	}
	return nil
}
