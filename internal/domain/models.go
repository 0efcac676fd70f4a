package domain

// PageSize is the fixed number of dogs requested per search page
const PageSize = 10

// Dog represents an adoptable dog as returned by the remote service
type Dog struct {
	ID      string `json:"id"`
	Img     string `json:"img"`
	Name    string `json:"name"`
	Breed   string `json:"breed"`
	Age     int    `json:"age"`
	ZipCode string `json:"zip_code"`
}

// Filter holds the raw text of the search form fields.
// Empty strings mean "unset".
type Filter struct {
	Breed    string
	AgeMin   string
	AgeMax   string
	ZipCodes string // comma-separated, as typed
}

// IsEmpty reports whether no filter field has been filled in
func (f Filter) IsEmpty() bool {
	return f.Breed == "" && f.AgeMin == "" && f.AgeMax == "" && f.ZipCodes == ""
}

// SortKey is the ordering requested from the search endpoint
type SortKey string

const (
	SortBreedAsc  SortKey = "breed:asc"
	SortBreedDesc SortKey = "breed:desc"
)

// DefaultSortKey is the ordering used before the user toggles it
const DefaultSortKey = SortBreedAsc

// Toggle returns the opposite ordering
func (k SortKey) Toggle() SortKey {
	if k == SortBreedAsc {
		return SortBreedDesc
	}
	return SortBreedAsc
}

// Label returns a short human readable name
func (k SortKey) Label() string {
	if k == SortBreedDesc {
		return "breed Z-A"
	}
	return "breed A-Z"
}

// SearchPage is one page of search results before the IDs are resolved
type SearchPage struct {
	IDs   []string
	Total int
	Page  int // 1-based
}

// TotalPages returns ceil(total/PageSize), never less than 1
func TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + PageSize - 1) / PageSize
}

// SessionState is the state of the session gate
type SessionState int

const (
	LoggedOut SessionState = iota
	LoggedIn
)

func (s SessionState) String() string {
	if s == LoggedIn {
		return "logged_in"
	}
	return "logged_out"
}

// Credentials are the fields submitted on the login form
type Credentials struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
