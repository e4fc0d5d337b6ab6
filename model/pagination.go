package model

// Pagination is the offset-window view returned by every listing endpoint.
// Next and Previous are emitted as JSON null when the window has no page in
// that direction.
type Pagination struct {
	Next     *int64 `json:"next"`
	Limit    int64  `json:"limit"`
	Previous *int64 `json:"previous"`
}

// NewPagination computes the page links for a window of size limit starting
// at offset over totalCount matching rows: next = offset+limit only while
// more rows remain, previous = offset-limit only while non-negative.
func NewPagination(totalCount, limit, offset int64) Pagination {
	p := Pagination{Limit: limit}
	if next := offset + limit; next < totalCount {
		p.Next = &next
	}
	if prev := offset - limit; prev >= 0 {
		p.Previous = &prev
	}
	return p
}
