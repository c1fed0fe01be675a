// Package content holds the read-only records rendered by the portfolio page:
// the owner's profile, the project list and the skill list.
package content

import (
	"net/url"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Site is the top-level configuration object. Projects and Skills render in
// declaration order.
type Site struct {
	Profile  Profile   `toml:"profile" validate:"required"`
	Projects []Project `toml:"projects" validate:"unique=ID,dive"`
	Skills   []Skill   `toml:"skills" validate:"dive"`
}

// Profile describes the portfolio owner.
type Profile struct {
	Name            string `toml:"name" validate:"required"`
	LastName        string `toml:"last_name" validate:"required"`
	Role            string `toml:"role" validate:"required"`
	Email           string `toml:"email" validate:"required,email"`
	GitHub          string `toml:"github" validate:"required,url"`
	GitHubHandle    string `toml:"github_handle" validate:"required"`
	LinkedIn        string `toml:"linkedin" validate:"required,url"`
	LinkedInName    string `toml:"linkedin_name" validate:"required"`
	About           string `toml:"about" validate:"required"`
	ExperienceYears string `toml:"experience_years" validate:"required"`
}

// Project is one entry of the showcase. ID is the stable list key.
type Project struct {
	ID          int      `toml:"id"`
	Title       string   `toml:"title" validate:"required"`
	Description string   `toml:"description" validate:"required"`
	Tags        []string `toml:"tags" validate:"dive,required"`
	Image       string   `toml:"image" validate:"required,url"`
}

// Skill is a named proficiency shown as a proportional bar.
type Skill struct {
	Name  string `toml:"name" validate:"required"`
	Icon  string `toml:"icon" validate:"required,oneof=globe layers code cpu"`
	Level int    `toml:"level" validate:"min=0,max=100"`
}

const mailComposeBase = "https://mail.google.com/mail/?view=cm&fs=1&to="

// MailComposeURL is the deep link that opens a new message to the profile email.
func (p Profile) MailComposeURL() string {
	return mailComposeBase + url.QueryEscape(p.Email)
}

// BarWidth is Level clamped to [0,100].
func (s Skill) BarWidth() int {
	switch {
	case s.Level < 0:
		return 0
	case s.Level > 100:
		return 100
	default:
		return s.Level
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the site against the record invariants and reports every
// failing field in one error.
func (s *Site) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validating site")
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		problems = append(problems, fe.Namespace()+": "+rule)
	}
	return errors.Errorf("invalid site: %s", strings.Join(problems, "; "))
}

// Load reads a TOML site file. An empty path yields the embedded defaults.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening content file %s", path)
	}
	defer f.Close()

	var site Site
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&site); err != nil {
		return nil, errors.Wrapf(err, "parsing content file %s", path)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}
