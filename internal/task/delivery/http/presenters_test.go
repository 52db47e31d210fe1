package http

import (
	"math"
	"testing"
)

func TestListReqToInput(t *testing.T) {
	cases := []struct {
		name       string
		req        listReq
		wantLimit  int
		wantOffset int
	}{
		{"defaults", listReq{}, 10, 0},
		{"page 2", listReq{Page: 2, Limit: 10}, 10, 10},
		{"page 3 limit 2", listReq{Page: 3, Limit: 2}, 2, 4},
		{"page zero clamps", listReq{Page: 0, Limit: 5}, 5, 0},
		{"negative page clamps", listReq{Page: -4, Limit: 5}, 5, 0},
		{"negative limit uses default", listReq{Page: 2, Limit: -1}, 10, 10},
		{"limit capped", listReq{Page: 1, Limit: 1000}, 100, 0},
		{"huge page saturates", listReq{Page: 1<<62 + 1, Limit: 4}, 4, math.MaxInt},
		{"max page saturates", listReq{Page: math.MaxInt, Limit: 100}, 100, math.MaxInt},
		{"largest exact offset", listReq{Page: math.MaxInt/4 + 1, Limit: 4}, 4, math.MaxInt / 4 * 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.req.toInput()
			if got.Limit != tc.wantLimit || got.Offset != tc.wantOffset {
				t.Errorf("toInput() = {Limit:%d Offset:%d}, want {Limit:%d Offset:%d}",
					got.Limit, got.Offset, tc.wantLimit, tc.wantOffset)
			}
			if got.Offset < 0 {
				t.Errorf("offset must never be negative")
			}
		})
	}
}

func TestUpdateReqToInput(t *testing.T) {
	content := "whole milk"
	in := updateReq{ID: "id", Content: &content}.toInput()
	if in.Title.IsSet() {
		t.Error("omitted title must stay unset")
	}
	if v, ok := in.Content.Get(); !ok || v != "whole milk" {
		t.Errorf("content = %q,%v", v, ok)
	}
}
