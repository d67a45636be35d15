package recommend

import (
	"fmt"
	"strings"
)

func qualityLabel(score float64) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Limited"
	}
}

// explanationText assembles the human-readable match summary, one sentence per
// facet, joined with single spaces.
func explanationText(overall, title, embedding float64, matched, missing []string, embeddingAvailable bool) string {
	parts := []string{fmt.Sprintf("%s match (%.0f%%).", qualityLabel(overall), overall)}

	switch {
	case title >= 70:
		parts = append(parts, "Job title aligns well with your desired roles.")
	case title >= 40:
		parts = append(parts, "Job title partially matches your interests.")
	default:
		parts = append(parts, "Job title differs from your stated preferences.")
	}

	if len(matched) > 0 {
		parts = append(parts, fmt.Sprintf("You have %d of the required skills.", len(matched)))
	}
	if len(missing) > 0 && len(missing) <= 3 {
		parts = append(parts, fmt.Sprintf("Consider developing: %s.", strings.Join(missing, ", ")))
	} else if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("You may need to develop %d additional skills.", len(missing)))
	}

	if embeddingAvailable {
		if embedding >= 70 {
			parts = append(parts, "Strong semantic match between your profile and job description.")
		}
	} else {
		parts = append(parts, "Deep AI Match (Embeddings) currently unavailable, falling back to basic matching.")
	}

	return strings.Join(parts, " ")
}
