package entity

// Paginated página de resultados normalizada.
// Invariante: len(Items) <= PageSize y (Page-1)*PageSize < Total,
// salvo que la página pedida quede fuera de rango (Items vacío).
type Paginated[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`     // 1-based
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// PaginateSlice corta una colección ya filtrada en la página pedida.
// Una página fuera de rango devuelve Items vacío, nunca error.
func PaginateSlice[T any](all []T, page, pageSize int) Paginated[T] {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	total := len(all)
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	items := make([]T, end-start)
	copy(items, all[start:end])
	return Paginated[T]{Items: items, Page: page, PageSize: pageSize, Total: total}
}

// TotalPages número de páginas que cubren Total con el PageSize actual.
func (p Paginated[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}
