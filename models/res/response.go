package res

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StandardResponse 标准响应结构
type StandardResponse struct {
	Success    bool         `json:"success"`              // 请求是否成功
	Code       ResponseCode `json:"code"`                 // 业务状态码，0表示成功
	Message    string       `json:"message"`              // 响应信息
	Data       interface{}  `json:"data,omitempty"`       // 响应数据
	Pagination *Pagination  `json:"pagination,omitempty"` // 分页信息
	Timestamp  int64        `json:"timestamp"`            // 毫秒时间戳
}

// Pagination 分页信息，页码从0开始
type Pagination struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	respond(c, http.StatusOK, 0, "success", data, nil)
}

// SuccessWithMsg 成功响应带消息
func SuccessWithMsg(c *gin.Context, data interface{}, msg string) {
	respond(c, http.StatusOK, 0, msg, data, nil)
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}, msg string) {
	respond(c, http.StatusCreated, 0, msg, data, nil)
}

// SuccessWithPage 分页响应
func SuccessWithPage(c *gin.Context, list interface{}, total int64, page, size int) {
	totalPages := 0
	if size > 0 {
		totalPages = (int(total) + size - 1) / size
	}
	respond(c, http.StatusOK, 0, "success", list, &Pagination{
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	})
}

// Error 错误响应，HTTP状态码由错误码决定
func Error(c *gin.Context, code ResponseCode) {
	respond(c, HTTPStatus(code), code, GetMsg(code), nil, nil)
}

// ErrorWithMsg 错误响应带自定义消息
func ErrorWithMsg(c *gin.Context, code ResponseCode, msg string) {
	respond(c, HTTPStatus(code), code, msg, nil, nil)
}

// respond 统一响应处理
func respond(c *gin.Context, httpStatus int, code ResponseCode, msg string, data interface{}, page *Pagination) {
	c.JSON(httpStatus, StandardResponse{
		Success:    code == 0,
		Code:       code,
		Message:    msg,
		Data:       data,
		Pagination: page,
		Timestamp:  time.Now().UnixMilli(),
	})
}
