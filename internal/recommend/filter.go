package recommend

import (
	"strings"

	"github.com/spigell/jobscout/internal/job"
)

// applyFilters narrows the listing pool. Filters are conjunctive and each is
// independently optional; contradictory combinations are not validated and
// simply produce an empty result, which is valid.
func applyFilters(jobs []*job.Listing, filters *job.SearchFilters) []*job.Listing {
	if filters == nil {
		return jobs
	}

	filtered := jobs

	if filters.Location != "" {
		filtered = keep(filtered, func(j *job.Listing) bool {
			return strings.Contains(strings.ToLower(j.Location), strings.ToLower(filters.Location))
		})
	}

	if filters.RemoteOnly {
		filtered = keep(filtered, func(j *job.Listing) bool {
			return j.Remote
		})
	}

	if filters.MinSalary != nil {
		filtered = keep(filtered, func(j *job.Listing) bool {
			return j.SalaryMax != nil && *j.SalaryMax >= *filters.MinSalary
		})
	}

	if filters.MaxSalary != nil {
		filtered = keep(filtered, func(j *job.Listing) bool {
			return j.SalaryMin != nil && *j.SalaryMin <= *filters.MaxSalary
		})
	}

	if filters.Keywords != "" {
		keywords := strings.ToLower(filters.Keywords)
		filtered = keep(filtered, func(j *job.Listing) bool {
			return strings.Contains(strings.ToLower(j.Title), keywords) ||
				strings.Contains(strings.ToLower(j.Description), keywords)
		})
	}

	return filtered
}

func keep(jobs []*job.Listing, pred func(*job.Listing) bool) []*job.Listing {
	kept := make([]*job.Listing, 0, len(jobs))
	for _, j := range jobs {
		if pred(j) {
			kept = append(kept, j)
		}
	}
	return kept
}
