package query

// Query parameter names understood by GET /dogs/search
const (
	ParamBreeds   = "breeds"
	ParamZipCodes = "zipCodes"
	ParamAgeMin   = "ageMin"
	ParamAgeMax   = "ageMax"
	ParamSort     = "sort"
	ParamSize     = "size"
	ParamFrom     = "from"
)
