package models

// PaginationResult 分页结果
type PaginationResult struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationResult 创建一个新的分页结果对象，page 会被限制在 [1, TotalPages]
func NewPaginationResult(total, page, pageSize int) PaginationResult {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return PaginationResult{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Bounds returns the slice bounds of the current page.
func (p PaginationResult) Bounds() (start, end int) {
	start = (p.Page - 1) * p.PageSize
	end = start + p.PageSize
	if start > p.Total {
		start = p.Total
	}
	if end > p.Total {
		end = p.Total
	}
	return start, end
}
