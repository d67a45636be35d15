package job

import (
	"encoding/json"
	"os"
)

// Listing is a standardized job posting produced by one of the aggregator
// sources. IDs are source-qualified (for example "mock_1" or "adzuna_42") so
// listings from different sources never collide.
type Listing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Skills      []string `json:"skills,omitempty"`
	Remote      bool     `json:"remote,omitempty"`
	SalaryMin   *float64 `json:"salary_min,omitempty"`
	SalaryMax   *float64 `json:"salary_max,omitempty"`
	URL         string   `json:"url,omitempty"`
	Source      string   `json:"source"`
	PostedDate  string   `json:"posted_date,omitempty"`
}

// Listings is an ordered collection of job listings.
type Listings struct {
	Items []*Listing
}

func (l *Listings) Len() int {
	return len(l.Items)
}

func (l *Listings) FindByID(id string) *Listing {
	for _, item := range l.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// Append adds the items of other to the end of the collection.
func (l *Listings) Append(other *Listings) {
	if other == nil {
		return
	}
	l.Items = append(l.Items, other.Items...)
}

// Limit truncates the collection to at most n items, preserving order.
func (l *Listings) Limit(n int) {
	if n >= 0 && len(l.Items) > n {
		l.Items = l.Items[:n]
	}
}

func (l *Listings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "listings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return "", err
	}
	return file.Name(), nil
}
