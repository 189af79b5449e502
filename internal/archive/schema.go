package archive

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Archive documents are loosely typed: the same field can arrive as a string,
// a list of strings, or a number depending on the item. The flex types below
// decode all observed shapes and default to zero values on anything else.

// searchResponse is the advancedsearch envelope.
type searchResponse struct {
	Response struct {
		NumFound int         `json:"numFound"`
		Docs     []searchDoc `json:"docs"`
	} `json:"response"`
}

// searchDoc is one advancedsearch result row.
type searchDoc struct {
	Identifier  string     `json:"identifier"`
	Title       flexString `json:"title"`
	Description flexString `json:"description"`
	Year        flexInt    `json:"year"`
	Downloads   int        `json:"downloads"`
	NumReviews  int        `json:"num_reviews"`
	AvgRating   float64    `json:"avg_rating"`
	Subject     stringList `json:"subject"`
}

// metadataResponse is the /metadata/{identifier} envelope.
type metadataResponse struct {
	Metadata struct {
		Title       flexString `json:"title"`
		Description flexString `json:"description"`
		Year        flexString `json:"year"`
	} `json:"metadata"`
	Files []metadataFile `json:"files"`
}

// metadataFile is one entry in an item's file listing.
type metadataFile struct {
	Name   string `json:"name"`
	Format string `json:"format"`
}

// flexString decodes a JSON string or list of strings (joined with spaces).
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = flexString(strings.Join(list, " "))
		return nil
	}
	*f = ""
	return nil
}

func (f flexString) String() string { return string(f) }

// flexInt decodes a JSON number or numeric string.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			*f = flexInt(n)
		}
		return nil
	}
	*f = 0
	return nil
}

// stringList decodes a JSON list of strings or a single bare string.
type stringList []string

func (s *stringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = []string{single}
		return nil
	}
	*s = nil
	return nil
}
