// Package embedding turns text into fixed-length vectors for semantic
// matching. Providers signal unavailability by returning a nil vector;
// unavailability is an expected, degraded state and never an error the
// ranking engine has to handle.
package embedding

import (
	"context"
	"strings"

	"github.com/spigell/jobscout/internal/job"
	"github.com/spigell/jobscout/internal/profile"
)

// Provider supplies embedding vectors for arbitrary text.
type Provider interface {
	// Embed returns the vector for text, or nil when no vector can be
	// produced. Implementations must absorb their own transport failures
	// and convert them to nil instead of surfacing them to callers.
	Embed(ctx context.Context, text string) []float32
}

// Disabled is a Provider without a backing model. It always reports
// unavailability, which drives callers into their degraded-matching path.
type Disabled struct{}

func (Disabled) Embed(context.Context, string) []float32 { return nil }

// ProfileText composes the embeddable text for a candidate profile. The field
// order is fixed so identical profiles always produce identical text, which
// keeps the provider cache effective.
func ProfileText(p profile.Profile) string {
	var parts []string

	if len(p.DesiredJobTitles) > 0 {
		parts = append(parts, "Desired roles: "+strings.Join(p.DesiredJobTitles, ", "))
	}
	if len(p.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(p.Skills, ", "))
	}
	if p.Summary != "" {
		parts = append(parts, "Summary: "+p.Summary)
	}
	if len(p.Experience) > 0 {
		exp := make([]string, 0, len(p.Experience))
		for _, e := range p.Experience {
			exp = append(exp, strings.TrimSpace(e.Title+" "+e.Description))
		}
		parts = append(parts, "Experience: "+strings.Join(exp, " "))
	}

	return strings.Join(parts, " ")
}

// JobText composes the embeddable text for a job listing: title, company,
// description and the declared skills, in that order.
func JobText(j *job.Listing) string {
	parts := []string{j.Title, j.Company, j.Description}
	parts = append(parts, j.Skills...)
	return strings.Join(parts, " ")
}
