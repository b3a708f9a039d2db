package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"blueblog/global"
	"blueblog/utils"

	"gorm.io/gorm"
)

// 文章状态
const (
	ArticleDraft     = 0 // 草稿
	ArticlePublished = 1 // 已发布
)

var ErrArticleNotFound = errors.New("文章不存在或无权操作")

// ArticleModel 文章模型，标签以逗号串存储，对外序列化为列表
type ArticleModel struct {
	MODEL          `json:","`
	Title          string   `json:"title" gorm:"size:200" validate:"required,max=200"`
	Content        string   `json:"content" gorm:"type:longtext" validate:"required"`
	Summary        string   `json:"summary" gorm:"size:500"`
	CoverImage     string   `json:"coverImage" gorm:"size:255"`
	Category       string   `json:"category" gorm:"size:50;index"`
	Tags           string   `json:"-" gorm:"size:255"`
	TagList        []string `json:"tags" gorm:"-"`
	ViewCount      uint     `json:"viewCount" gorm:"default:0"`
	LikeCount      uint     `json:"likeCount" gorm:"default:0"`
	CommentCount   uint     `json:"commentCount" gorm:"default:0"`
	Status         int      `json:"status" gorm:"default:1;index"`
	IsTop          bool     `json:"isTop" gorm:"default:false"`
	IsRecommended  bool     `json:"isRecommended" gorm:"default:false"`
	AccessPassword string   `json:"-" gorm:"size:100"`
	AuthorID       uint     `json:"authorId" gorm:"index"`
}

func (ArticleModel) TableName() string {
	return "articles"
}

// AfterFind 查询后把逗号串展开为标签列表
func (a *ArticleModel) AfterFind(tx *gorm.DB) error {
	a.TagList = SplitTags(a.Tags)
	return nil
}

// SplitTags 逗号串转标签列表，去掉空项和首尾空白
func SplitTags(tags string) []string {
	result := make([]string, 0)
	for _, t := range strings.Split(tags, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			result = append(result, t)
		}
	}
	return result
}

// JoinTags 标签列表转逗号串，空列表存空串
func JoinTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return strings.Join(cleaned, ",")
}

// MatchTag 判断标签列表是否命中目标标签。
// exact为false时沿用子串匹配（标签"a"会命中"java"）。
func MatchTag(tags []string, tag string, exact bool) bool {
	for _, t := range tags {
		if exact {
			if t == tag {
				return true
			}
		} else if strings.Contains(t, tag) {
			return true
		}
	}
	return false
}

// exactTagMatch 读取标签匹配模式配置
func exactTagMatch() bool {
	return global.Config != nil && global.Config.Article.ExactTagMatch
}

// Create 创建文章，摘要缺省时从正文生成
func (a *ArticleModel) Create() error {
	exists, err := UserExists(a.AuthorID)
	if err != nil {
		return fmt.Errorf("检查作者失败: %w", err)
	}
	if !exists {
		return ErrUserNotFound
	}

	a.Tags = JoinTags(a.TagList)
	if strings.TrimSpace(a.Summary) == "" {
		a.Summary = utils.DeriveSummary(a.Content)
	}

	if err := global.DB.Create(a).Error; err != nil {
		return fmt.Errorf("创建文章失败: %w", err)
	}
	a.TagList = SplitTags(a.Tags)
	return nil
}

// GetPublished 公开详情，仅可见已发布的文章
func (a *ArticleModel) GetPublished(id uint) error {
	err := global.DB.Where("id = ? AND status = ?", id, ArticlePublished).Take(a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrArticleNotFound
	}
	return err
}

// GetByAuthor 作者视角详情，不存在与非本人统一返回未找到
func (a *ArticleModel) GetByAuthor(id, authorID uint) error {
	err := global.DB.Where("id = ? AND author_id = ?", id, authorID).Take(a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrArticleNotFound
	}
	return err
}

// Update 更新文章，归属校验和更新在同一条件里完成
func (a *ArticleModel) Update(id, authorID uint, updates map[string]interface{}) error {
	if tags, ok := updates["tags"]; ok {
		if list, ok := tags.([]string); ok {
			updates["tags"] = JoinTags(list)
		}
	}
	if content, ok := updates["content"].(string); ok {
		if summary, ok := updates["summary"].(string); !ok || strings.TrimSpace(summary) == "" {
			updates["summary"] = utils.DeriveSummary(content)
		}
	}

	result := global.DB.Model(&ArticleModel{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("更新文章失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return a.GetByAuthor(id, authorID)
}

// ArticleDelete 删除文章及其评论，物理删除
func ArticleDelete(id, authorID uint) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND author_id = ?", id, authorID).Delete(&ArticleModel{})
		if result.Error != nil {
			return fmt.Errorf("删除文章失败: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrArticleNotFound
		}
		if err := tx.Where("article_id = ?", id).Delete(&CommentModel{}).Error; err != nil {
			return fmt.Errorf("删除文章评论失败: %w", err)
		}
		return nil
	})
}

// ListByAuthor 作者文章列表，支持按状态过滤
func ListByAuthor(authorID uint, status *int, page PageInfo) ([]ArticleModel, int64, error) {
	page.Normalize()
	query := global.DB.Model(&ArticleModel{}).Where("author_id = ?", authorID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计文章失败: %w", err)
	}

	var list []ArticleModel
	err := query.Order("created_at DESC").Offset(page.Offset()).Limit(page.Size).Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("查询文章失败: %w", err)
	}
	return list, total, nil
}

// Search 关键词搜索，对标题、正文和标签串做大小写不敏感的子串匹配
func Search(keyword string, status *int, page PageInfo) ([]ArticleModel, int64, error) {
	page.Normalize()
	query := global.DB.Model(&ArticleModel{})

	if status != nil {
		query = query.Where("status = ?", *status)
	} else {
		query = query.Where("status = ?", ArticlePublished)
	}

	if keyword = strings.TrimSpace(keyword); keyword != "" {
		like := "%" + strings.ToLower(keyword) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(tags) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计搜索结果失败: %w", err)
	}

	var list []ArticleModel
	err := query.Order("created_at DESC").Offset(page.Offset()).Limit(page.Size).Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("搜索文章失败: %w", err)
	}
	return list, total, nil
}

// ListRecommended 推荐文章
func ListRecommended(page PageInfo) ([]ArticleModel, int64, error) {
	return listPublished(page, "is_recommended = ?", true)
}

// ListTop 置顶文章
func ListTop(page PageInfo) ([]ArticleModel, int64, error) {
	return listPublished(page, "is_top = ?", true)
}

func listPublished(page PageInfo, cond string, args ...interface{}) ([]ArticleModel, int64, error) {
	page.Normalize()
	query := global.DB.Model(&ArticleModel{}).Where("status = ?", ArticlePublished)
	if cond != "" {
		query = query.Where(cond, args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计文章失败: %w", err)
	}

	var list []ArticleModel
	err := query.Order("created_at DESC").Offset(page.Offset()).Limit(page.Size).Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("查询文章失败: %w", err)
	}
	return list, total, nil
}

// ListPopular 按浏览量倒序的已发布文章
func ListPopular(page PageInfo) ([]ArticleModel, int64, error) {
	page.Normalize()
	query := global.DB.Model(&ArticleModel{}).Where("status = ?", ArticlePublished)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计文章失败: %w", err)
	}

	var list []ArticleModel
	err := query.Order("view_count DESC").Offset(page.Offset()).Limit(page.Size).Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("查询文章失败: %w", err)
	}
	return list, total, nil
}

// PublicList 公开的已发布文章列表，分类走SQL过滤，标签走内存匹配
func PublicList(category, tag string, page PageInfo) ([]ArticleModel, int64, error) {
	if tag != "" {
		return ListByTag(category, tag, page)
	}
	if category != "" {
		return listPublished(page, "category = ?", category)
	}
	return listPublished(page, "")
}

// ListByTag 按标签过滤已发布文章。
// 标签匹配在内存中完成，分页同样在过滤后的集合上进行。
func ListByTag(category, tag string, page PageInfo) ([]ArticleModel, int64, error) {
	page.Normalize()
	query := global.DB.Model(&ArticleModel{}).Where("status = ?", ArticlePublished)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var all []ArticleModel
	if err := query.Order("created_at DESC").Find(&all).Error; err != nil {
		return nil, 0, fmt.Errorf("查询文章失败: %w", err)
	}

	exact := exactTagMatch()
	matched := make([]ArticleModel, 0)
	for _, article := range all {
		if MatchTag(article.TagList, tag, exact) {
			matched = append(matched, article)
		}
	}

	total := int64(len(matched))
	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// CountByTag 统计命中标签的已发布文章数
func CountByTag(category, tag string) (int64, error) {
	query := global.DB.Model(&ArticleModel{}).Where("status = ?", ArticlePublished)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var all []ArticleModel
	if err := query.Find(&all).Error; err != nil {
		return 0, fmt.Errorf("查询文章失败: %w", err)
	}

	exact := exactTagMatch()
	var count int64
	for _, article := range all {
		if MatchTag(article.TagList, tag, exact) {
			count++
		}
	}
	return count, nil
}

// CollectTags 汇总符合条件文章的标签，去重后排序。
// category和authorID为零值时不参与过滤。
func CollectTags(category string, authorID uint) ([]string, error) {
	query := global.DB.Model(&ArticleModel{}).Where("status = ?", ArticlePublished)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if authorID != 0 {
		query = query.Where("author_id = ?", authorID)
	}

	var rows []ArticleModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}

	return DedupSorted(rows), nil
}

// DedupSorted 展开所有标签并去重排序
func DedupSorted(rows []ArticleModel) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, row := range rows {
		for _, t := range row.TagList {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// CollectCategories 汇总已发布文章的分类
func CollectCategories() ([]string, error) {
	var categories []string
	err := global.DB.Model(&ArticleModel{}).
		Where("status = ? AND category <> ''", ArticlePublished).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}
	return categories, nil
}

// Like 点赞，单条SQL自增保证并发下不丢计数
func Like(id uint) error {
	result := global.DB.Model(&ArticleModel{}).
		Where("id = ? AND status = ?", id, ArticlePublished).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("点赞失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

// AddViewCount 浏览量落库，由定时任务批量调用
func AddViewCount(id uint, delta int64) error {
	return global.DB.Model(&ArticleModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).Error
}
