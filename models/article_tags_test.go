package models

import (
	"reflect"
	"testing"
)

func TestSplitTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"go", []string{"go"}},
		{"go,web,后端", []string{"go", "web", "后端"}},
		{" go , web ,", []string{"go", "web"}},
		{",,", []string{}},
	}
	for _, tc := range cases {
		if got := SplitTags(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitTags(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestJoinTags(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{}, ""},
		{[]string{"go"}, "go"},
		{[]string{" go ", "web", ""}, "go,web"},
	}
	for _, tc := range cases {
		if got := JoinTags(tc.in); got != tc.want {
			t.Errorf("JoinTags(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTagRoundTrip(t *testing.T) {
	tags := []string{"go", "web", "数据库"}
	if got := SplitTags(JoinTags(tags)); !reflect.DeepEqual(got, tags) {
		t.Errorf("round trip = %v, want %v", got, tags)
	}
	// 清空标签后存空串
	if got := JoinTags(SplitTags("")); got != "" {
		t.Errorf("空标签应存空串, got %q", got)
	}
}

func TestMatchTagSubstring(t *testing.T) {
	tags := []string{"java", "javascript"}

	// 遗留的子串匹配："a"会命中"java"
	if !MatchTag(tags, "a", false) {
		t.Error("子串模式下 a 应命中 java")
	}
	if !MatchTag(tags, "java", false) {
		t.Error("子串模式下 java 应命中 java 和 javascript")
	}
	if MatchTag(tags, "python", false) {
		t.Error("子串模式下 python 不应命中")
	}
}

func TestMatchTagExact(t *testing.T) {
	tags := []string{"java", "javascript"}

	if MatchTag(tags, "a", true) {
		t.Error("精确模式下 a 不应命中 java")
	}
	if !MatchTag(tags, "java", true) {
		t.Error("精确模式下 java 应命中 java")
	}
	if MatchTag(tags, "script", true) {
		t.Error("精确模式下 script 不应命中 javascript")
	}
}

func TestDedupSorted(t *testing.T) {
	rows := []ArticleModel{
		{TagList: []string{"web", "go"}},
		{TagList: []string{"go", "数据库"}},
		{TagList: nil},
	}
	want := []string{"go", "web", "数据库"}
	if got := DedupSorted(rows); !reflect.DeepEqual(got, want) {
		t.Errorf("DedupSorted() = %v, want %v", got, want)
	}
}
