package utils

import (
	"strings"
	"testing"
)

func TestDeriveSummaryStripsHeadersAndCode(t *testing.T) {
	content := "# 标题\n\n正文第一句。\n\n```go\nfmt.Println(\"hello\")\n```\n\n正文第二句。"
	summary := DeriveSummary(content)

	if strings.Contains(summary, "标题") {
		t.Errorf("摘要不应包含标题内容: %q", summary)
	}
	if strings.Contains(summary, "Println") {
		t.Errorf("摘要不应包含代码块内容: %q", summary)
	}
	if !strings.Contains(summary, "正文第一句") || !strings.Contains(summary, "正文第二句") {
		t.Errorf("摘要应保留正文: %q", summary)
	}
}

func TestDeriveSummaryTruncates(t *testing.T) {
	content := strings.Repeat("长", 300)
	summary := DeriveSummary(content)

	runes := []rune(summary)
	if len(runes) != 203 {
		t.Errorf("截断后长度 = %d, want 203 (200字+省略号)", len(runes))
	}
	if !strings.HasSuffix(summary, "...") {
		t.Errorf("截断后的摘要应以省略号结尾: %q", summary)
	}
}

func TestDeriveSummaryShortContent(t *testing.T) {
	summary := DeriveSummary("简短的内容")
	if summary != "简短的内容" {
		t.Errorf("DeriveSummary() = %q, want %q", summary, "简短的内容")
	}
	if got := DeriveSummary("   "); got != "" {
		t.Errorf("空白内容的摘要 = %q, want 空串", got)
	}
}
