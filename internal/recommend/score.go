package recommend

import (
	"math"
	"strings"

	"github.com/spigell/jobscout/internal/job"
	"github.com/spigell/jobscout/internal/profile"
)

const (
	neutralScore      = 50.0
	noTitleMatchScore = 20.0
	noExperienceScore = 30.0
)

// titleScore rates how well the job title matches the candidate's desired
// roles. Desired titles are checked in the order the candidate listed them and
// the first one producing any kind of match wins.
func titleScore(p profile.Profile, j *job.Listing) float64 {
	if len(p.DesiredJobTitles) == 0 {
		return neutralScore
	}

	jobTitle := strings.ToLower(j.Title)

	for _, desired := range p.DesiredJobTitles {
		desired := strings.ToLower(desired)

		if desired == jobTitle {
			return 100
		}

		if strings.Contains(jobTitle, desired) || strings.Contains(desired, jobTitle) {
			return 80
		}

		desiredWords := wordSet(desired)
		jobWords := wordSet(jobTitle)
		overlap := intersectCount(desiredWords, jobWords)
		if overlap > 0 {
			return 60 * float64(overlap) / float64(max(len(desiredWords), len(jobWords)))
		}
	}

	return noTitleMatchScore
}

// skillsScore rates the candidate's coverage of the job's declared skills and
// reports which of them matched or are missing, in the job's original casing
// and order, deduplicated case-insensitively.
func skillsScore(p profile.Profile, j *job.Listing) (float64, []string, []string) {
	if len(j.Skills) == 0 {
		return neutralScore, nil, nil
	}

	userSkills := make(map[string]struct{}, len(p.Skills))
	for _, skill := range p.Skills {
		userSkills[strings.ToLower(skill)] = struct{}{}
	}

	var matched, missing []string
	seen := make(map[string]struct{}, len(j.Skills))
	for _, skill := range j.Skills {
		lower := strings.ToLower(skill)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}

		if _, ok := userSkills[lower]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	score := 100 * float64(len(matched)) / float64(len(seen))
	return score, matched, missing
}

// experienceScore is a coarse signal of how much relevant experience the
// candidate brings: amount of history plus a one-time bonus when any past
// title shares a word with the job title.
func experienceScore(p profile.Profile, j *job.Listing) float64 {
	if len(p.Experience) == 0 {
		return noExperienceScore
	}

	score := 50.0
	switch {
	case len(p.Experience) >= 3:
		score += 30
	case len(p.Experience) >= 2:
		score += 20
	default:
		score += 10
	}

	jobWords := wordSet(strings.ToLower(j.Title))
	for _, exp := range p.Experience {
		if intersectCount(wordSet(strings.ToLower(exp.Title)), jobWords) > 0 {
			score += 10
			break
		}
	}

	return math.Min(score, 100)
}

// embeddingScore remaps cosine similarity from [-1,1] to [0,100].
func embeddingScore(userVector, jobVector []float32) float64 {
	similarity := cosineSimilarity(userVector, jobVector)
	return (similarity + 1) / 2 * 100
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func wordSet(s string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, word := range strings.Fields(s) {
		words[word] = struct{}{}
	}
	return words
}

func intersectCount(a, b map[string]struct{}) int {
	count := 0
	for word := range a {
		if _, ok := b[word]; ok {
			count++
		}
	}
	return count
}
