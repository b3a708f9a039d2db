package models

import "testing"

func TestPageInfoNormalize(t *testing.T) {
	cases := []struct {
		name     string
		in       PageInfo
		wantPage int
		wantSize int
	}{
		{"缺省值", PageInfo{}, 0, 10},
		{"负页码归零", PageInfo{Page: -1, Size: 20}, 0, 20},
		{"超大size封顶", PageInfo{Page: 2, Size: 500}, 2, 100},
	}
	for _, tc := range cases {
		tc.in.Normalize()
		if tc.in.Page != tc.wantPage || tc.in.Size != tc.wantSize {
			t.Errorf("%s: Normalize() = {page:%d size:%d}, want {page:%d size:%d}",
				tc.name, tc.in.Page, tc.in.Size, tc.wantPage, tc.wantSize)
		}
	}
}

func TestPageInfoOffset(t *testing.T) {
	p := PageInfo{Page: 3, Size: 10}
	if got := p.Offset(); got != 30 {
		t.Errorf("Offset() = %d, want 30 (页码从0开始)", got)
	}
}
