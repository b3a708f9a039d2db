package utils

import (
	"errors"
	"time"

	"blueblog/global"

	"github.com/dgrijalva/jwt-go"
)

// defaultSecret 未配置jwt.secret时使用的内置密钥，仅适合本地环境
const defaultSecret = "mySecretKeyForJWTTokenGenerationInBlueBlogProject2024"

// defaultExpireHours 默认token有效期
const defaultExpireHours = 24

var (
	ErrTokenExpired = errors.New("token已过期")
	ErrTokenInvalid = errors.New("token无效")
)

type CustomClaims struct {
	Username string `json:"username"`
	UserID   uint   `json:"user_id"`
	jwt.StandardClaims
}

func secret() []byte {
	if global.Config != nil && global.Config.Jwt.Secret != "" {
		return []byte(global.Config.Jwt.Secret)
	}
	return []byte(defaultSecret)
}

func expireDuration() time.Duration {
	if global.Config != nil && global.Config.Jwt.Expires > 0 {
		return time.Duration(global.Config.Jwt.Expires) * time.Hour
	}
	return defaultExpireHours * time.Hour
}

// GenerateToken 签发HS256 token，主题为用户名
func GenerateToken(username string, userID uint) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		Username: username,
		UserID:   userID,
		StandardClaims: jwt.StandardClaims{
			Subject:   username,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(expireDuration()).Unix(),
			Issuer:    issuer(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

func issuer() string {
	if global.Config != nil {
		return global.Config.Jwt.Issuer
	}
	return ""
}

// ParseToken 解析token，过期返回ErrTokenExpired，其余错误统一为ErrTokenInvalid
func ParseToken(tokenString string) (*CustomClaims, error) {
	var claims CustomClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret(), nil
	})

	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok {
			if ve.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, ErrTokenExpired
			}
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return &claims, nil
}

// ValidateToken 校验token是否可用
func ValidateToken(tokenString string) bool {
	_, err := ParseToken(tokenString)
	return err == nil
}
