package utils

import (
	"strings"

	"blueblog/global"

	"github.com/PuerkitoBio/goquery"
	"github.com/russross/blackfriday"
	"go.uber.org/zap"
)

// summaryLimit 摘要最大长度（按字符计）
const summaryLimit = 200

// DeriveSummary 从Markdown正文生成纯文本摘要：
// 渲染后去掉标题与代码块，压缩空白，超过200字截断并追加省略号。
func DeriveSummary(content string) string {
	text := MarkdownToText(content)
	runes := []rune(text)
	if len(runes) > summaryLimit {
		return string(runes[:summaryLimit]) + "..."
	}
	return text
}

// MarkdownToText 将Markdown渲染为HTML后抽取纯文本
func MarkdownToText(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	html := blackfriday.MarkdownCommon([]byte(content))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(html)))
	if err != nil {
		if global.Log != nil {
			global.Log.Error("解析HTML文档失败", zap.String("error", err.Error()))
		}
		// 解析失败时退回到原文
		return strings.TrimSpace(content)
	}

	// 摘要不收录标题和代码块
	doc.Find("h1,h2,h3,h4,h5,h6,pre,script").Remove()

	text := doc.Text()
	return strings.Join(strings.Fields(text), " ")
}
