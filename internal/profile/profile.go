package profile

import "strings"

// Experience is a single work history entry. All fields are optional free text
// coming either from the user or from resume extraction.
type Experience struct {
	Title       string `json:"title,omitempty" mapstructure:"title"`
	Company     string `json:"company,omitempty" mapstructure:"company"`
	Duration    string `json:"duration,omitempty" mapstructure:"duration"`
	Description string `json:"description,omitempty" mapstructure:"description"`
}

// Education is a single education history entry.
type Education struct {
	Degree      string `json:"degree,omitempty" mapstructure:"degree"`
	Institution string `json:"institution,omitempty" mapstructure:"institution"`
	Year        string `json:"year,omitempty" mapstructure:"year"`
	Field       string `json:"field,omitempty" mapstructure:"field"`
}

// Profile describes a candidate. Name is the only required field; everything
// else may be empty. A profile is treated as immutable while jobs are being
// ranked against it.
type Profile struct {
	Name             string       `json:"name" mapstructure:"name"`
	Email            string       `json:"email,omitempty" mapstructure:"email"`
	Phone            string       `json:"phone,omitempty" mapstructure:"phone"`
	Skills           []string     `json:"skills,omitempty" mapstructure:"skills"`
	Experience       []Experience `json:"experience,omitempty" mapstructure:"experience"`
	Education        []Education  `json:"education,omitempty" mapstructure:"education"`
	DesiredJobTitles []string     `json:"desired_job_titles,omitempty" mapstructure:"desired_job_titles"`
	Summary          string       `json:"summary,omitempty" mapstructure:"summary"`
	Location         string       `json:"location,omitempty" mapstructure:"location"`
}

// Merge produces a new profile from base with only the non-empty fields of
// update overwritten. Neither input is mutated. Slice fields replace the base
// value entirely when set; there is no element-wise merging.
func Merge(base, update Profile) Profile {
	merged := base

	if strings.TrimSpace(update.Name) != "" {
		merged.Name = update.Name
	}
	if strings.TrimSpace(update.Email) != "" {
		merged.Email = update.Email
	}
	if strings.TrimSpace(update.Phone) != "" {
		merged.Phone = update.Phone
	}
	if update.Skills != nil {
		merged.Skills = append([]string(nil), update.Skills...)
	}
	if update.Experience != nil {
		merged.Experience = append([]Experience(nil), update.Experience...)
	}
	if update.Education != nil {
		merged.Education = append([]Education(nil), update.Education...)
	}
	if update.DesiredJobTitles != nil {
		merged.DesiredJobTitles = append([]string(nil), update.DesiredJobTitles...)
	}
	if strings.TrimSpace(update.Summary) != "" {
		merged.Summary = update.Summary
	}
	if strings.TrimSpace(update.Location) != "" {
		merged.Location = update.Location
	}

	return merged
}
