package source

import "testing"

func TestExtractSkills(t *testing.T) {
	description := "We are looking for a Python developer with Docker and kubernetes experience. " +
		"Knowledge of postgresql is a plus."

	skills := extractSkills(description)

	// "postgresql" also matches the shorter SQL keyword.
	want := []string{"Python", "SQL", "PostgreSQL", "Docker", "Kubernetes"}
	if len(skills) != len(want) {
		t.Fatalf("extractSkills = %v, want %v", skills, want)
	}
	for i := range want {
		if skills[i] != want[i] {
			t.Fatalf("extractSkills = %v, want %v (canonical casing, table order)", skills, want)
		}
	}
}

func TestExtractSkillsEmpty(t *testing.T) {
	if skills := extractSkills("We need a friendly barista."); skills != nil {
		t.Fatalf("expected no skills, got %v", skills)
	}
}

func TestMentionsRemote(t *testing.T) {
	tests := []struct {
		description string
		want        bool
	}{
		{"Fully Remote position", true},
		{"remote-friendly team", true},
		{"On-site in Austin, TX", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := mentionsRemote(tt.description); got != tt.want {
			t.Fatalf("mentionsRemote(%q) = %v, want %v", tt.description, got, tt.want)
		}
	}
}
