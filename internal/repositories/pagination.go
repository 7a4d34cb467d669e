package repositories

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Paginate converts a 1-based page and a size into offset and limit.
func Paginate(page, size int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return (page - 1) * size, size
}
