package job

// SearchFilters narrows a listing pool before ranking. Every field is
// independently optional; a nil *SearchFilters means no filtering at all.
type SearchFilters struct {
	// Location keeps listings whose location contains this substring
	// (case-insensitive).
	Location string `json:"location,omitempty" mapstructure:"location"`
	// RemoteOnly keeps only listings flagged as remote.
	RemoteOnly bool `json:"remote_only,omitempty" mapstructure:"remote-only"`
	// MinSalary keeps listings whose SalaryMax is known and at least this value.
	MinSalary *float64 `json:"min_salary,omitempty" mapstructure:"min-salary"`
	// MaxSalary keeps listings whose SalaryMin is known and at most this value.
	MaxSalary *float64 `json:"max_salary,omitempty" mapstructure:"max-salary"`
	// Keywords keeps listings whose title or description contains this
	// substring (case-insensitive).
	Keywords string `json:"keywords,omitempty" mapstructure:"keywords"`
}
