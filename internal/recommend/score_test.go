package recommend

import (
	"math"
	"testing"

	"github.com/spigell/jobscout/internal/job"
	"github.com/spigell/jobscout/internal/profile"
)

func TestTitleScore(t *testing.T) {
	tests := []struct {
		name     string
		desired  []string
		jobTitle string
		want     float64
	}{
		{
			name:     "no desired titles is neutral",
			desired:  nil,
			jobTitle: "Software Engineer",
			want:     50,
		},
		{
			name:     "exact match ignoring case",
			desired:  []string{"software engineer"},
			jobTitle: "Software Engineer",
			want:     100,
		},
		{
			name:     "desired title contained in job title",
			desired:  []string{"Software Engineer"},
			jobTitle: "Senior Software Engineer",
			want:     80,
		},
		{
			name:     "job title contained in desired title",
			desired:  []string{"Senior Software Engineer"},
			jobTitle: "Software Engineer",
			want:     80,
		},
		{
			name:     "word overlap is proportional",
			desired:  []string{"Backend Engineer"},
			jobTitle: "Data Engineer",
			want:     30, // 60 * 1/2
		},
		{
			name:     "first matching desired title wins",
			desired:  []string{"Accountant", "Software Engineer"},
			jobTitle: "Software Engineer",
			want:     100,
		},
		{
			name:     "no overlap at all",
			desired:  []string{"Accountant"},
			jobTitle: "Software Engineer",
			want:     20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profile.Profile{DesiredJobTitles: tt.desired}
			j := &job.Listing{Title: tt.jobTitle}

			if got := titleScore(p, j); got != tt.want {
				t.Fatalf("titleScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSkillsScore(t *testing.T) {
	p := profile.Profile{Skills: []string{"python", "SQL"}}
	j := &job.Listing{Skills: []string{"Python", "Go", "SQL"}}

	score, matched, missing := skillsScore(p, j)

	want := 100 * 2.0 / 3.0
	if math.Abs(score-want) > 1e-9 {
		t.Fatalf("skillsScore = %v, want %v", score, want)
	}
	if len(matched) != 2 || matched[0] != "Python" || matched[1] != "SQL" {
		t.Fatalf("unexpected matched skills: %v", matched)
	}
	if len(missing) != 1 || missing[0] != "Go" {
		t.Fatalf("unexpected missing skills: %v", missing)
	}
}

func TestSkillsScoreNoJobSkills(t *testing.T) {
	p := profile.Profile{Skills: []string{"Python"}}
	j := &job.Listing{}

	score, matched, missing := skillsScore(p, j)
	if score != 50 {
		t.Fatalf("skillsScore = %v, want 50", score)
	}
	if matched != nil || missing != nil {
		t.Fatalf("expected nil skill lists, got matched=%v missing=%v", matched, missing)
	}
}

func TestSkillsScoreDeduplicatesJobSkills(t *testing.T) {
	p := profile.Profile{Skills: []string{"Python"}}
	j := &job.Listing{Skills: []string{"Python", "python", "Go"}}

	score, matched, missing := skillsScore(p, j)
	if score != 50 {
		t.Fatalf("skillsScore = %v, want 50", score)
	}
	if len(matched)+len(missing) != 2 {
		t.Fatalf("duplicates not collapsed: matched=%v missing=%v", matched, missing)
	}
}

func TestExperienceScore(t *testing.T) {
	j := &job.Listing{Title: "Software Engineer"}

	tests := []struct {
		name       string
		experience []profile.Experience
		want       float64
	}{
		{
			name: "no experience",
			want: 30,
		},
		{
			name:       "single unrelated entry",
			experience: []profile.Experience{{Title: "Accountant"}},
			want:       60,
		},
		{
			name: "two entries with a related title",
			experience: []profile.Experience{
				{Title: "Junior Engineer"},
				{Title: "Accountant"},
			},
			want: 80, // 50 + 20 + 10 bonus
		},
		{
			name: "three entries with a related title",
			experience: []profile.Experience{
				{Title: "Software Engineer"},
				{Title: "Senior Software Engineer"},
				{Title: "Staff Engineer"},
			},
			want: 90, // 50 + 30 + 10 bonus
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profile.Profile{Experience: tt.experience}
			if got := experienceScore(p, j); got != tt.want {
				t.Fatalf("experienceScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, want: -1},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 1}, want: 0},
		{name: "length mismatch", a: []float32{1, 2}, b: []float32{1, 2, 3}, want: 0},
		{name: "empty", a: nil, b: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("cosineSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmbeddingScoreRange(t *testing.T) {
	if got := embeddingScore([]float32{1, 0}, []float32{1, 0}); got != 100 {
		t.Fatalf("identical vectors = %v, want 100", got)
	}
	if got := embeddingScore([]float32{1, 0}, []float32{-1, 0}); got != 0 {
		t.Fatalf("opposite vectors = %v, want 0", got)
	}
	if got := embeddingScore([]float32{1, 0}, []float32{0, 1}); got != 50 {
		t.Fatalf("orthogonal vectors = %v, want 50", got)
	}
}
