package pagination

import (
	"encoding/json"
	"testing"

	"game-admin/internal/signature"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name     string
		req      signature.Request
		page     int
		pageSize int
		offset   int
	}{
		{"defaults", signature.Request{}, 1, DefaultPageSize, 0},
		{"numbers", signature.Request{"page": json.Number("3"), "pageSize": json.Number("10")}, 3, 10, 20},
		{"strings", signature.Request{"page": "2", "pageSize": "5"}, 2, 5, 5},
		{"clamped", signature.Request{"page": json.Number("-4"), "pageSize": json.Number("1000")}, 1, MaxPageSize, 0},
		{"garbage", signature.Request{"page": "x", "pageSize": true}, 1, DefaultPageSize, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseParams(tt.req)
			if p.Page != tt.page || p.PageSize != tt.pageSize || p.Offset != tt.offset || p.Limit != tt.pageSize {
				t.Errorf("ParseParams() = %+v, want page=%d pageSize=%d offset=%d", p, tt.page, tt.pageSize, tt.offset)
			}
		})
	}
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse[string](nil, NewParams(2, 10), 25)
	if resp.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", resp.TotalPages)
	}
	if resp.List == nil || len(resp.List) != 0 {
		t.Errorf("List = %v, want empty slice", resp.List)
	}
	if resp.Page != 2 || resp.Total != 25 {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	cases := map[[2]int]int{
		{0, 10}:  1,
		{10, 10}: 1,
		{11, 10}: 2,
		{5, 0}:   0,
	}
	for in, want := range cases {
		if got := CalculateTotalPages(in[0], in[1]); got != want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", in[0], in[1], got, want)
		}
	}
}
