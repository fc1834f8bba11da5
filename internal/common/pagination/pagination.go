package pagination

import (
	"encoding/json"
	"strconv"

	"game-admin/internal/signature"
)

// Params represents pagination parameters
type Params struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Limit    int `json:"-"` // Calculated from PageSize
	Offset   int `json:"-"` // Calculated from Page and PageSize
}

// Response represents a paginated response
type Response[T any] struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
	List       []T `json:"list"`
}

// DefaultPageSize is the default number of items per page
const DefaultPageSize = 20

// MaxPageSize is the maximum allowed items per page
const MaxPageSize = 100

// ParseParams extracts page and pageSize from an RPC request. Missing or
// invalid values fall back to the first page of DefaultPageSize.
func ParseParams(req signature.Request) Params {
	return NewParams(intParam(req, "page"), intParam(req, "pageSize"))
}

// NewParams clamps page and pageSize and derives the limit and offset
func NewParams(page, pageSize int) Params {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return Params{
		Page:     page,
		PageSize: pageSize,
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	}
}

func intParam(req signature.Request, key string) int {
	switch v := req[key].(type) {
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// NewResponse creates a new paginated response. A nil page renders as [].
func NewResponse[T any](list []T, params Params, total int) Response[T] {
	if list == nil {
		list = []T{}
	}
	return Response[T]{
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: CalculateTotalPages(total, params.PageSize),
		Total:      total,
		List:       list,
	}
}

// CalculateTotalPages calculates the total number of pages
func CalculateTotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
