package domain

// PaginatedResult is a transient projection built fresh for each list
// query. Pages is derived from the total that was counted independently
// of the window.
type PaginatedResult struct {
	Items []Task
	Total int
	Page  int
	Limit int
	Pages int
}

func NewPaginatedResult(items []Task, total, page, limit int) PaginatedResult {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return PaginatedResult{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}
