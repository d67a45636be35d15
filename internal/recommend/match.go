package recommend

import (
	"encoding/json"
	"os"

	"github.com/spigell/jobscout/internal/job"
)

// Explanation breaks a match score down into its component signals. Every
// score is in [0,100] and rounded to two decimals.
type Explanation struct {
	OverallScore    float64  `json:"overall_score"`
	TitleScore      float64  `json:"title_score"`
	SkillsScore     float64  `json:"skills_score"`
	ExperienceScore float64  `json:"experience_score"`
	EmbeddingScore  float64  `json:"embedding_score"`
	MatchedSkills   []string `json:"matched_skills,omitempty"`
	MissingSkills   []string `json:"missing_skills,omitempty"`
	Explanation     string   `json:"explanation"`
}

// Match pairs a job listing with its overall score and explanation. Matches
// are produced fresh on every ranking call and never persisted by the engine.
type Match struct {
	Job         *job.Listing `json:"job"`
	Score       float64      `json:"match_score"`
	Explanation Explanation  `json:"explanation"`
}

// Matches is an ordered collection of ranked matches.
type Matches struct {
	Items []*Match
}

func (m *Matches) Len() int {
	return len(m.Items)
}

// Limit truncates the collection to at most n items, preserving order.
func (m *Matches) Limit(n int) {
	if n >= 0 && len(m.Items) > n {
		m.Items = m.Items[:n]
	}
}

func (m *Matches) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ReportByCompany groups short match summaries by hiring company, for the
// interactive report action.
func (m *Matches) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, match := range m.Items {
		entry := map[string]string{
			"title":       match.Job.Title,
			"location":    match.Job.Location,
			"url":         match.Job.URL,
			"source":      match.Job.Source,
			"explanation": match.Explanation.Explanation,
		}
		report[match.Job.Company] = append(report[match.Job.Company], entry)
	}
	return report
}
