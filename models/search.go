package models

import "strings"

// SearchFilters is the typed filter set for profile search. Zero values
// mean "not filtered". Comparison rules per field:
//   - Gender: exact match, applied at the store level as the coarse filter
//   - MinAge/MaxAge, MinHeight/MaxHeight, MinWeight/MaxWeight: inclusive range
//   - Country, City, Description, Nationality, Ethnicity, Occupation,
//     Denomination: case-insensitive substring containment
//   - MaritalStatus, Smoking, Drinking, Polygamy: exact match
type SearchFilters struct {
	Gender        string `json:"gender,omitempty"`
	MinAge        int    `json:"minAge,omitempty"`
	MaxAge        int    `json:"maxAge,omitempty"`
	MinHeight     int    `json:"minHeight,omitempty"`
	MaxHeight     int    `json:"maxHeight,omitempty"`
	MinWeight     int    `json:"minWeight,omitempty"`
	MaxWeight     int    `json:"maxWeight,omitempty"`
	Country       string `json:"country,omitempty"`
	City          string `json:"city,omitempty"`
	Description   string `json:"description,omitempty"`
	MaritalStatus string `json:"maritalStatus,omitempty"`
	Smoking       string `json:"smoking,omitempty"`
	Drinking      string `json:"drinking,omitempty"`
	Polygamy      string `json:"polygamy,omitempty"`
	Nationality   string `json:"nationality,omitempty"`
	Ethnicity     string `json:"ethnicity,omitempty"` // Matched against the tribe field
	Occupation    string `json:"occupation,omitempty"`
	Denomination  string `json:"denomination,omitempty"`
}

// Matches applies every filter except Gender, which callers push down to
// the store query.
func (f *SearchFilters) Matches(u *UserProfile) bool {
	if f.MinAge > 0 && u.Age < f.MinAge {
		return false
	}
	if f.MaxAge > 0 && u.Age > f.MaxAge {
		return false
	}
	if f.MinHeight > 0 && u.Height < f.MinHeight {
		return false
	}
	if f.MaxHeight > 0 && u.Height > f.MaxHeight {
		return false
	}
	if f.MinWeight > 0 && u.Weight < f.MinWeight {
		return false
	}
	if f.MaxWeight > 0 && u.Weight > f.MaxWeight {
		return false
	}
	if !containsFold(u.Country, f.Country) {
		return false
	}
	if !containsFold(u.City, f.City) {
		return false
	}
	if !containsFold(u.Description, f.Description) {
		return false
	}
	if !containsFold(u.Nationality, f.Nationality) {
		return false
	}
	if !containsFold(u.Tribe, f.Ethnicity) {
		return false
	}
	if !containsFold(u.Occupation, f.Occupation) {
		return false
	}
	if !containsFold(u.Denomination, f.Denomination) {
		return false
	}
	if f.MaritalStatus != "" && u.MaritalStatus != f.MaritalStatus {
		return false
	}
	if f.Smoking != "" && u.Smoking != f.Smoking {
		return false
	}
	if f.Drinking != "" && u.Drinking != f.Drinking {
		return false
	}
	if f.Polygamy != "" && u.AcceptsPolygamy != f.Polygamy {
		return false
	}
	return true
}

func containsFold(value, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}
