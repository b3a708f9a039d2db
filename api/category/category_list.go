package category

import (
	"blueblog/global"
	"blueblog/models"
	"blueblog/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (ca *Category) CategoryList(c *gin.Context) {
	list, err := models.CategoryList()
	if err != nil {
		global.Log.Error("models.CategoryList() failed", zap.String("error", err.Error()))
		res.ErrorWithMsg(c, res.ServerError, "获取分类失败")
		return
	}
	res.Success(c, list)
}
