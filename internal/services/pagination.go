package services

// Pagination carries the page window handed to templates. Out-of-range pages
// are valid and simply yield an empty item list.
type Pagination struct {
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}

func Paginate(page, perPage int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	tp := int((total + int64(perPage) - 1) / int64(perPage))
	if tp < 1 {
		tp = 1
	}
	return Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: tp}
}

func (p Pagination) Offset() int   { return (p.Page - 1) * p.PerPage }
func (p Pagination) HasPrev() bool { return p.Page > 1 }
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }
func (p Pagination) PrevPage() int { return p.Page - 1 }
func (p Pagination) NextPage() int { return p.Page + 1 }

// Pages lists the page numbers for the pager links.
func (p Pagination) Pages() []int {
	out := make([]int, 0, p.TotalPages)
	for i := 1; i <= p.TotalPages; i++ {
		out = append(out, i)
	}
	return out
}
