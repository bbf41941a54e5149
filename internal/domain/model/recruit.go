// Package model contains domain models passed between layers.
package model

// Recruit represents one recruited player after normalization.
// Coordinates are pointers because the raw dataset may omit them;
// the store's admission rule guarantees they are non-nil on every
// record it hands out.
type Recruit struct {
	Year          int      `json:"year"`
	ClassYear     int      `json:"class_year"`
	PlayerName    string   `json:"player_name"`
	School        string   `json:"school"`
	CommittedTo   string   `json:"committed_to"`
	City          string   `json:"city"`
	StateProvince string   `json:"state_province"`
	Country       string   `json:"country"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Ranking       int      `json:"ranking,omitempty"`
	Stars         int      `json:"stars,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	Height        float64  `json:"height,omitempty"`
	Weight        float64  `json:"weight,omitempty"`
}

// HasCoordinates reports whether both coordinates are present.
func (r Recruit) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Pathway aggregates all recruits sharing a high-school-to-college pair.
// City, state and coordinates are representative values taken from the
// first record observed for the pair.
type Pathway struct {
	School        string  `json:"school"`
	College       string  `json:"college"`
	City          string  `json:"city"`
	StateProvince string  `json:"state_province"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Count         int     `json:"count"`
}

// CityAggregate counts recruits from one city within the active filter.
type CityAggregate struct {
	City          string  `json:"city"`
	StateProvince string  `json:"state_province"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Count         int     `json:"count"`
}

// CollegeAggregate counts recruits committed to one college within the
// active filter.
type CollegeAggregate struct {
	College string `json:"college"`
	Count   int    `json:"count"`
}

// CollegeSummary is a CollegeAggregate decorated with coordinates from
// the injected college-location resolver. Coordinates stay nil when the
// resolver has no entry for the college.
type CollegeSummary struct {
	College   string   `json:"college"`
	Count     int      `json:"count"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// YearRange bounds the recruiting class years present in a dataset.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
