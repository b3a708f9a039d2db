package models

import (
	"errors"
	"fmt"
	"strings"

	"blueblog/global"

	"github.com/importcjj/sensitive"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

var (
	ErrEmptyContent   = errors.New("评论内容不能为空")
	ErrContentTooLong = errors.New("评论内容不能超过1000字")
	ErrCommentDenied  = errors.New("评论不存在或无权操作")
)

// CommentModel 评论模型
type CommentModel struct {
	MODEL     `json:","`
	Content   string    `json:"content" gorm:"size:1000"`
	ArticleID uint      `json:"articleId" gorm:"index"`
	UserID    uint      `json:"userId" gorm:"index"`
	User      UserModel `json:"user" gorm:"foreignKey:UserID"`
}

func (CommentModel) TableName() string {
	return "comment"
}

var sensitiveFilter *sensitive.Filter

func init() {
	// 敏感词过滤器初始化，词库文件缺失时只做HTML清理
	sensitiveFilter = sensitive.New()
	_ = sensitiveFilter.LoadWordDict("sensitive_words.txt")
}

// filterContent 清理HTML并打码敏感词
func filterContent(content string) string {
	content = bluemonday.UGCPolicy().Sanitize(content)
	if sensitiveFilter != nil {
		content = sensitiveFilter.Replace(content, '*')
	}
	return content
}

// validateContent 校验评论内容长度
func validateContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyContent
	}
	if len([]rune(content)) > 1000 {
		return ErrContentTooLong
	}
	return nil
}

// CommentCreate 创建评论并同步文章评论计数。
// 只允许评论已发布的文章。
func CommentCreate(comment *CommentModel) error {
	if err := validateContent(comment.Content); err != nil {
		return err
	}
	comment.Content = filterContent(strings.TrimSpace(comment.Content))

	return global.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&ArticleModel{}).
			Where("id = ? AND status = ?", comment.ArticleID, ArticlePublished).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("检查文章失败: %w", err)
		}
		if count == 0 {
			return ErrArticleNotFound
		}

		if err := tx.Create(comment).Error; err != nil {
			return fmt.Errorf("创建评论失败: %w", err)
		}

		return tx.Model(&ArticleModel{}).
			Where("id = ?", comment.ArticleID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).Error
	})
}

// CommentsByArticle 文章评论列表，最新在前
func CommentsByArticle(articleID uint) ([]CommentModel, error) {
	var comments []CommentModel
	err := global.DB.Model(&CommentModel{}).
		Where("article_id = ?", articleID).
		Preload("User").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("获取评论失败: %w", err)
	}
	return comments, nil
}

// CommentDelete 删除本人评论并回扣文章评论计数
func CommentDelete(commentID, userID uint) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var comment CommentModel
		err := tx.Where("id = ? AND user_id = ?", commentID, userID).Take(&comment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentDenied
		}
		if err != nil {
			return fmt.Errorf("查询评论失败: %w", err)
		}

		if err := tx.Delete(&comment).Error; err != nil {
			return fmt.Errorf("删除评论失败: %w", err)
		}

		return tx.Model(&ArticleModel{}).
			Where("id = ? AND comment_count > 0", comment.ArticleID).
			UpdateColumn("comment_count", gorm.Expr("comment_count - ?", 1)).Error
	})
}
