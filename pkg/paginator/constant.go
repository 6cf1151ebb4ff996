package paginator

const (
	// DefaultPage is the page used when an invalid page is provided.
	DefaultPage = 1
	// DefaultLimit is the page size used when an invalid limit is provided.
	DefaultLimit = 20
	// MaxLimit caps the page size to prevent excessive queries.
	MaxLimit = 200
)
