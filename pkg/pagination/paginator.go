package pagination

// Paginator slices an already-fetched collection into fixed-size pages.
// Pages are 1-indexed. Navigation clamps to [1, TotalPages], re-deriving
// the bounds from the current item count; replacing the items does not
// touch the current page on its own.
type Paginator[T any] struct {
	items    []T
	page     int
	pageSize int
}

func New[T any](pageSize int) *Paginator[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Paginator[T]{page: 1, pageSize: pageSize}
}

func (p *Paginator[T]) SetItems(items []T) {
	p.items = items
}

func (p *Paginator[T]) CurrentPage() int { return p.page }

func (p *Paginator[T]) PageSize() int { return p.pageSize }

func (p *Paginator[T]) Total() int { return len(p.items) }

func (p *Paginator[T]) TotalPages() int {
	return (len(p.items) + p.pageSize - 1) / p.pageSize
}

// Page returns the current slice of items.
func (p *Paginator[T]) Page() []T {
	start := (p.page - 1) * p.pageSize
	if start < 0 || start >= len(p.items) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

func (p *Paginator[T]) GoToNextPage() {
	if p.page < p.TotalPages() {
		p.page++
	}
}

func (p *Paginator[T]) GoToPrevPage() {
	if p.page > 1 {
		p.page--
	}
}

// Goto jumps to the requested page, clamped to the valid range.
func (p *Paginator[T]) Goto(page int) {
	total := p.TotalPages()
	if total < 1 {
		total = 1
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	p.page = page
}

// Meta describes the current page of a listing for API responses.
type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func (p *Paginator[T]) Meta() Meta {
	return Meta{
		Page:       p.page,
		PageSize:   p.pageSize,
		Total:      len(p.items),
		TotalPages: p.TotalPages(),
	}
}
