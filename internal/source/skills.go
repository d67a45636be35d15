package source

import "strings"

// skillKeywords are the well-known skills probed for in free-text job
// descriptions from sources that do not structure their skill data.
var skillKeywords = []string{
	"Python", "JavaScript", "Java", "C++", "C#", "Ruby", "Go", "Rust",
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask", "FastAPI",
	"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes",
	"Machine Learning", "Deep Learning", "NLP", "Computer Vision",
	"TensorFlow", "PyTorch", "Scikit-learn",
	"Git", "CI/CD", "REST API", "GraphQL",
	"HTML", "CSS", "TypeScript",
}

// extractSkills scans a description for known skill keywords,
// case-insensitively, returning them in table order.
func extractSkills(description string) []string {
	lower := strings.ToLower(description)

	var found []string
	for _, skill := range skillKeywords {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

// mentionsRemote reports whether the description hints at remote work.
func mentionsRemote(description string) bool {
	return strings.Contains(strings.ToLower(description), "remote")
}
