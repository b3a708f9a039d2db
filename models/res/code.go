package res

import "net/http"

// ResponseCode 响应码类型
type ResponseCode int

const (
	// 客户端错误码 (1000-1999)
	BadRequest   ResponseCode = 1000 // 错误的请求
	Unauthorized ResponseCode = 1001 // 未授权
	Forbidden    ResponseCode = 1003 // 禁止访问
	NotFound     ResponseCode = 1004 // 资源未找到

	// 参数验证错误 (1100-1199)
	InvalidParameter ResponseCode = 1100 // 无效的参数
	InvalidJSON      ResponseCode = 1103 // JSON解析错误

	// 认证授权错误 (1200-1299)
	TokenExpired     ResponseCode = 1200 // 令牌过期
	TokenInvalid     ResponseCode = 1201 // 令牌无效
	TokenMissing     ResponseCode = 1202 // 缺少令牌
	PermissionDenied ResponseCode = 1204 // 权限不足

	// 服务端错误码 (2000-2999)
	ServerError ResponseCode = 2000 // 服务器内部错误
	DBError     ResponseCode = 2100 // 数据库错误
	CacheError  ResponseCode = 2200 // 缓存错误

	// 业务错误码 (3000-3999)
	UserNotFound      ResponseCode = 3000 // 用户不存在
	UserAlreadyExists ResponseCode = 3001 // 用户已存在
	PasswordError     ResponseCode = 3002 // 密码错误
	AccountDisabled   ResponseCode = 3004 // 账号已禁用

	ArticleNotFound ResponseCode = 3100 // 文章不存在或无权操作
	CommentNotFound ResponseCode = 3101 // 评论不存在或无权操作

	// 文件相关错误 (3300-3399)
	FileUploadFailed ResponseCode = 3300 // 文件上传失败
	FileTooLarge     ResponseCode = 3303 // 文件过大
	InvalidFileType  ResponseCode = 3304 // 无效的文件类型
)

// CodeMsg 错误码消息映射
var CodeMsg = map[ResponseCode]string{
	BadRequest:       "请求参数错误",
	Unauthorized:     "未授权访问",
	Forbidden:        "禁止访问",
	NotFound:         "资源不存在",
	InvalidParameter: "无效的参数",
	InvalidJSON:      "JSON解析错误",

	TokenExpired:     "登录已过期，请重新登录",
	TokenInvalid:     "令牌无效",
	TokenMissing:     "未提供访问令牌",
	PermissionDenied: "权限不足",

	ServerError: "服务器内部错误",
	DBError:     "数据库操作失败",
	CacheError:  "缓存操作失败",

	UserNotFound:      "用户不存在",
	UserAlreadyExists: "用户已存在",
	PasswordError:     "用户名或密码错误",
	AccountDisabled:   "账号已被禁用",

	ArticleNotFound: "文章不存在或无权操作",
	CommentNotFound: "评论不存在或无权操作",

	FileUploadFailed: "文件上传失败",
	FileTooLarge:     "文件超过大小限制",
	InvalidFileType:  "不支持的文件类型",
}

// codeStatus 错误码到HTTP状态码的固定映射，同一错误码只对应一种状态
var codeStatus = map[ResponseCode]int{
	BadRequest:       http.StatusBadRequest,
	InvalidParameter: http.StatusBadRequest,
	InvalidJSON:      http.StatusBadRequest,

	Unauthorized: http.StatusUnauthorized,
	TokenExpired: http.StatusUnauthorized,
	TokenInvalid: http.StatusUnauthorized,
	TokenMissing: http.StatusUnauthorized,

	Forbidden:        http.StatusForbidden,
	PermissionDenied: http.StatusForbidden,

	NotFound:        http.StatusNotFound,
	UserNotFound:    http.StatusNotFound,
	ArticleNotFound: http.StatusNotFound,
	CommentNotFound: http.StatusNotFound,

	UserAlreadyExists: http.StatusBadRequest,
	PasswordError:     http.StatusBadRequest,
	AccountDisabled:   http.StatusBadRequest,

	FileUploadFailed: http.StatusBadRequest,
	FileTooLarge:     http.StatusBadRequest,
	InvalidFileType:  http.StatusBadRequest,

	ServerError: http.StatusInternalServerError,
	DBError:     http.StatusInternalServerError,
	CacheError:  http.StatusInternalServerError,
}

// GetMsg 获取错误码对应的消息
func GetMsg(code ResponseCode) string {
	msg, ok := CodeMsg[code]
	if ok {
		return msg
	}
	return "未知错误"
}

// HTTPStatus 获取错误码对应的HTTP状态码
func HTTPStatus(code ResponseCode) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
