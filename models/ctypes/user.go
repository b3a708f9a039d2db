package ctypes

// UserRole 用户角色
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

// UserStatus 用户状态
type UserStatus int

const (
	UserDisabled UserStatus = 0 // 禁用
	UserActive   UserStatus = 1 // 正常
)
