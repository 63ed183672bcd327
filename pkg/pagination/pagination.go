package pagination

// Request 分页请求参数
type Request struct {
	Page      int    `form:"page" json:"page"`
	Size      int    `form:"size" json:"size"`
	SortBy    string `form:"sort_by" json:"sort_by"`
	SortOrder string `form:"sort_order" json:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// Normalize 回填默认值（page 从 0 开始，对齐前端约定）
func (r *Request) Normalize() {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size <= 0 {
		r.Size = 10
	}
	if r.Size > 100 {
		r.Size = 100
	}
	if r.SortBy == "" {
		r.SortBy = "created_at"
	}
	if r.SortOrder != "asc" {
		r.SortOrder = "desc"
	}
}

// Offset 转换为 SQL offset
func (r Request) Offset() int { return r.Page * r.Size }

// Page 分页结果
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"page_number"`
	PageSize      int   `json:"page_size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
	Last          bool  `json:"last"`
}

// NewPage 根据总数计算分页元信息
func NewPage[T any](content []T, page, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	return Page[T]{
		Content:       content,
		PageNumber:    page,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          page >= totalPages-1,
	}
}
