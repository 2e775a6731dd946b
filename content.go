package main

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Link is a social badge in the page header.
type Link struct {
	Label string `json:"label" validate:"required"`
	URL   string `json:"url" validate:"required,uri"`
	Icon  Icon   `json:"icon" validate:"required,icon"`
}

type Profile struct {
	Name         string `json:"name" validate:"required"`
	Tagline      string `json:"tagline" validate:"required"`
	Availability string `json:"availability" validate:"required"`
	Image        string `json:"image" validate:"required"`
	ImageAlt     string `json:"image_alt" validate:"required"`
	Links        []Link `json:"links" validate:"required,min=1,dive"`
}

type SkillGroup struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Icon        Icon     `json:"icon" validate:"required,icon"`
	Tags        []string `json:"tags" validate:"required,min=1,dive,required"`
}

type Project struct {
	Slug        string   `json:"slug" validate:"required,lowercase,excludesall= /"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Tags        []string `json:"tags" validate:"required,min=1,dive,required"`
}

// ContactForm holds the copy for the contact section. The form is not wired to
// any handler; these are placeholders only.
type ContactForm struct {
	Heading            string `json:"heading" validate:"required"`
	Blurb              string `json:"blurb" validate:"required"`
	NamePlaceholder    string `json:"name_placeholder" validate:"required"`
	EmailPlaceholder   string `json:"email_placeholder" validate:"required"`
	MessagePlaceholder string `json:"message_placeholder" validate:"required"`
	MessageRows        int    `json:"message_rows" validate:"min=1"`
	SubmitLabel        string `json:"submit_label" validate:"required"`
}

type Footer struct {
	Year  int    `json:"year" validate:"required"`
	Owner string `json:"owner" validate:"required"`
}

// Portfolio is everything the page renders, in render order.
type Portfolio struct {
	Profile        Profile      `json:"profile" validate:"required"`
	SkillsHeading  string       `json:"skills_heading" validate:"required"`
	Skills         []SkillGroup `json:"skills" validate:"len=3,dive"`
	ProjectHeading string       `json:"projects_heading" validate:"required"`
	Projects       []Project    `json:"projects" validate:"len=2,dive"`
	Contact        ContactForm  `json:"contact" validate:"required"`
	Footer         Footer       `json:"footer" validate:"required"`
}

// ProjectBySlug returns the project with the given slug.
func (p Portfolio) ProjectBySlug(slug string) (Project, bool) {
	return lo.Find(p.Projects, func(pr Project) bool {
		return pr.Slug == slug
	})
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
		return Icon(fl.Field().String()).Known()
	})
	return v
}

// validateContent checks the literal content once at start-up. Rendering
// trusts it afterwards and never deduplicates tags.
func validateContent(p Portfolio) error {
	if err := newValidator().Struct(p); err != nil {
		return errors.Wrap(err, "invalid portfolio content")
	}

	for _, s := range p.Skills {
		if dups := lo.FindDuplicates(s.Tags); len(dups) > 0 {
			return errors.Errorf("skill group %q has duplicate tags %v", s.Title, dups)
		}
	}
	for _, pr := range p.Projects {
		if dups := lo.FindDuplicates(pr.Tags); len(dups) > 0 {
			return errors.Errorf("project %q has duplicate tags %v", pr.Title, dups)
		}
	}

	slugs := lo.Map(p.Projects, func(pr Project, _ int) string { return pr.Slug })
	if dups := lo.FindDuplicates(slugs); len(dups) > 0 {
		return errors.Errorf("duplicate project slugs %v", dups)
	}

	return nil
}
