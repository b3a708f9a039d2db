package models

import (
	"errors"
	"fmt"
	"time"

	"blueblog/global"
	"blueblog/models/ctypes"
	"blueblog/utils"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken   = errors.New("用户名已存在")
	ErrEmailTaken      = errors.New("邮箱已被注册")
	ErrUserNotFound    = errors.New("用户不存在")
	ErrBadCredentials  = errors.New("用户名或密码错误")
	ErrAccountDisabled = errors.New("账号已被禁用")
)

// UserModel 用户模型
type UserModel struct {
	MODEL            `json:","`
	Username         string            `json:"username" gorm:"uniqueIndex:idx_username,length:191;size:191" validate:"required,min=3,max=50"`
	Password         string            `json:"-" gorm:"size:100" validate:"required,min=6"`
	Email            string            `json:"email" gorm:"uniqueIndex:idx_email,length:191;size:191" validate:"required,email"`
	Nickname         string            `json:"nickname" gorm:"size:50"`
	Avatar           string            `json:"avatar" gorm:"size:255"`
	Bio              string            `json:"bio" gorm:"size:255"`
	Role             ctypes.UserRole   `json:"role" gorm:"size:20;default:USER"`
	Status           ctypes.UserStatus `json:"status" gorm:"default:1"`
	LastLoginTime    *ctypes.MyTime    `json:"lastLoginTime" gorm:"type:datetime NULL"`
	LastLoginAddress string            `json:"lastLoginAddress" gorm:"size:100"`
}

func (UserModel) TableName() string {
	return "users"
}

// Register 注册用户，用户名和邮箱分别查重以便返回精确的冲突原因
func (u *UserModel) Register() error {
	if err := utils.Validate(u); err != nil {
		return fmt.Errorf("输入验证失败: %w", err)
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&UserModel{}).Where("username = ?", u.Username).Count(&count).Error; err != nil {
			return fmt.Errorf("检查用户名失败: %w", err)
		}
		if count > 0 {
			return ErrUsernameTaken
		}

		if err := tx.Model(&UserModel{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("检查邮箱失败: %w", err)
		}
		if count > 0 {
			return ErrEmailTaken
		}

		hashed, err := utils.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("密码处理失败: %w", err)
		}
		u.Password = hashed

		if u.Nickname == "" {
			u.Nickname = u.Username
		}
		if u.Role == "" {
			u.Role = ctypes.RoleUser
		}
		u.Status = ctypes.UserActive

		if err := tx.Create(u).Error; err != nil {
			return fmt.Errorf("创建用户失败: %w", err)
		}
		return nil
	})
}

// Login 校验凭证并更新最近登录信息。
// 用户不存在与密码错误返回同一个错误，不暴露账号是否存在。
func (u *UserModel) Login(username, password, ip string) error {
	err := global.DB.Where("username = ?", username).Take(u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBadCredentials
		}
		return fmt.Errorf("查询用户失败: %w", err)
	}

	if !utils.CheckPassword(u.Password, password) {
		return ErrBadCredentials
	}

	if u.Status != ctypes.UserActive {
		return ErrAccountDisabled
	}

	now := ctypes.MyTime(time.Now())
	u.LastLoginTime = &now
	u.LastLoginAddress = utils.GetAddrByIp(ip)
	if err := global.DB.Model(u).Updates(map[string]interface{}{
		"last_login_time":    time.Time(now),
		"last_login_address": u.LastLoginAddress,
	}).Error; err != nil {
		return fmt.Errorf("更新登录信息失败: %w", err)
	}

	return nil
}

// FindByID 根据ID查找用户
func (u *UserModel) FindByID(id uint) error {
	err := global.DB.Take(u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

// FindByUsername 根据用户名查找用户
func (u *UserModel) FindByUsername(username string) error {
	err := global.DB.Where("username = ?", username).Take(u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

// UpdateNickname 更新昵称
func (u *UserModel) UpdateNickname(nickname string) error {
	u.Nickname = nickname
	return global.DB.Model(u).Update("nickname", nickname).Error
}

// UpdateBio 更新个人简介
func (u *UserModel) UpdateBio(bio string) error {
	u.Bio = bio
	return global.DB.Model(u).Update("bio", bio).Error
}

// UpdateAvatar 更新头像路径
func (u *UserModel) UpdateAvatar(avatar string) error {
	u.Avatar = avatar
	return global.DB.Model(u).Update("avatar", avatar).Error
}

// Delete 删除用户
func (u *UserModel) Delete() error {
	return global.DB.Delete(u).Error
}

// UsernameExists 检查用户名是否已被占用
func UsernameExists(username string) (bool, error) {
	var count int64
	err := global.DB.Model(&UserModel{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// EmailExists 检查邮箱是否已被注册
func EmailExists(email string) (bool, error) {
	var count int64
	err := global.DB.Model(&UserModel{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// UserExists 检查用户是否存在
func UserExists(id uint) (bool, error) {
	var count int64
	err := global.DB.Model(&UserModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
