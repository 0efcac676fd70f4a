package query

import (
	"net/url"
	"strconv"
	"strings"

	"pupfinder/internal/domain"
)

// Build turns the search form, sort key and 1-based page index into the
// query parameters for the search endpoint. Filter fields that end up empty
// are left out entirely; sort, size and from are always present.
func Build(filter domain.Filter, sort domain.SortKey, page int) url.Values {
	if page < 1 {
		page = 1
	}

	params := url.Values{}

	if filter.Breed != "" {
		params.Set(ParamBreeds, filter.Breed)
	}

	// Repeated parameter, one value per zip
	for _, zip := range SplitZipCodes(filter.ZipCodes) {
		params.Add(ParamZipCodes, zip)
	}

	// Ages go through verbatim; the service rejects malformed values
	if filter.AgeMin != "" {
		params.Set(ParamAgeMin, filter.AgeMin)
	}
	if filter.AgeMax != "" {
		params.Set(ParamAgeMax, filter.AgeMax)
	}

	params.Set(ParamSort, string(sort))
	params.Set(ParamSize, strconv.Itoa(domain.PageSize))
	params.Set(ParamFrom, strconv.Itoa(Offset(page)))

	return params
}

// Offset returns the result offset of a 1-based page
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * domain.PageSize
}

// SplitZipCodes splits comma-separated text, trims each token and drops the
// empty ones. It returns nil when nothing is left.
func SplitZipCodes(raw string) []string {
	var zips []string
	for _, token := range strings.Split(raw, ",") {
		if zip := strings.TrimSpace(token); zip != "" {
			zips = append(zips, zip)
		}
	}
	return zips
}
