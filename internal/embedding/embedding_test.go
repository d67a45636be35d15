package embedding

import (
	"context"
	"testing"

	"github.com/spigell/jobscout/internal/job"
	"github.com/spigell/jobscout/internal/profile"
)

func TestDisabledAlwaysUnavailable(t *testing.T) {
	var provider Provider = Disabled{}

	if vector := provider.Embed(context.Background(), "any text"); vector != nil {
		t.Fatalf("expected nil vector from disabled provider, got %v", vector)
	}
}

func TestProfileText(t *testing.T) {
	p := profile.Profile{
		DesiredJobTitles: []string{"Software Engineer", "Backend Developer"},
		Skills:           []string{"Python", "Go"},
		Summary:          "Engineer with 5 years of experience.",
		Experience: []profile.Experience{
			{Title: "Software Engineer", Description: "Built APIs."},
		},
	}

	got := ProfileText(p)
	want := "Desired roles: Software Engineer, Backend Developer " +
		"Skills: Python, Go " +
		"Summary: Engineer with 5 years of experience. " +
		"Experience: Software Engineer Built APIs."
	if got != want {
		t.Fatalf("ProfileText = %q, want %q", got, want)
	}
}

func TestProfileTextSkipsEmptyFields(t *testing.T) {
	got := ProfileText(profile.Profile{Skills: []string{"Go"}})
	if got != "Skills: Go" {
		t.Fatalf("ProfileText = %q, want %q", got, "Skills: Go")
	}

	if got := ProfileText(profile.Profile{}); got != "" {
		t.Fatalf("ProfileText of empty profile = %q, want empty", got)
	}
}

func TestProfileTextIsDeterministic(t *testing.T) {
	p := profile.Profile{
		DesiredJobTitles: []string{"Engineer"},
		Skills:           []string{"Go", "SQL"},
	}

	if ProfileText(p) != ProfileText(p) {
		t.Fatal("identical profiles must produce identical text")
	}
}

func TestJobText(t *testing.T) {
	j := &job.Listing{
		Title:       "Software Engineer",
		Company:     "TechCorp Inc",
		Description: "Build distributed systems.",
		Skills:      []string{"Go", "Kubernetes"},
	}

	got := JobText(j)
	want := "Software Engineer TechCorp Inc Build distributed systems. Go Kubernetes"
	if got != want {
		t.Fatalf("JobText = %q, want %q", got, want)
	}
}
