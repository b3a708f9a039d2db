package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blueblog/config"
	"blueblog/global"
	"blueblog/models/res"
	"blueblog/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setupGate(t *testing.T, enabled bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	global.Config = &config.Config{
		Jwt: config.Jwt{Enabled: enabled, Secret: "test-secret", Expires: 1},
	}
	global.Log = zap.NewNop().Sugar()

	engine := gin.New()
	api := engine.Group("api")
	api.Use(JwtAuth(&global.Config.Jwt))
	api.GET("/articles/search", func(c *gin.Context) {
		res.Success(c, nil)
	})
	api.GET("/users/profile", func(c *gin.Context) {
		claims, ok := utils.GetClaims(c)
		if !ok {
			res.Error(c, res.Unauthorized)
			return
		}
		res.Success(c, gin.H{"username": claims.Username, "userId": claims.UserID})
	})
	api.GET("/articles/:id/author", func(c *gin.Context) {
		claims, ok := utils.GetClaims(c)
		if !ok {
			res.Error(c, res.Unauthorized)
			return
		}
		res.Success(c, gin.H{"authorId": claims.UserID})
	})
	return engine
}

func doRequest(engine *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestPublicPathWithoutToken(t *testing.T) {
	engine := setupGate(t, true)
	w := doRequest(engine, "GET", "/api/articles/search?keyword=go", nil)
	if w.Code != http.StatusOK {
		t.Errorf("公开路径未携带token应放行, status = %d", w.Code)
	}
}

func TestProtectedPathWithoutToken(t *testing.T) {
	engine := setupGate(t, true)
	w := doRequest(engine, "GET", "/api/users/profile", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "未提供访问令牌") {
		t.Errorf("响应应包含缺失令牌提示: %s", w.Body.String())
	}
}

func TestProtectedPathWithValidToken(t *testing.T) {
	engine := setupGate(t, true)
	token, err := utils.GenerateToken("alice", 42)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	w := doRequest(engine, "GET", "/api/users/profile", map[string]string{
		"Authorization": "Bearer " + token,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "alice") {
		t.Errorf("响应应包含身份信息: %s", w.Body.String())
	}
}

func TestAuthorDetailRequiresAndAcceptsToken(t *testing.T) {
	engine := setupGate(t, true)

	// 无token时在网关处拦下
	w := doRequest(engine, "GET", "/api/articles/1/author", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("无token status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "未提供访问令牌") {
		t.Errorf("响应应包含缺失令牌提示: %s", w.Body.String())
	}

	// 有效token应被解析并注入身份，不能被公开规则跳过
	token, err := utils.GenerateToken("alice", 42)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	w = doRequest(engine, "GET", "/api/articles/1/author", map[string]string{
		"Authorization": "Bearer " + token,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("携带有效token status = %d, want 200, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "42") {
		t.Errorf("响应应包含注入的身份: %s", w.Body.String())
	}
}

func TestQueryTokenFallback(t *testing.T) {
	engine := setupGate(t, true)
	token, err := utils.GenerateToken("alice", 42)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	w := doRequest(engine, "GET", "/api/users/profile?token="+token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("查询参数token应被接受, status = %d", w.Code)
	}
}

func TestExpiredToken(t *testing.T) {
	engine := setupGate(t, true)

	past := time.Now().Add(-2 * time.Hour)
	claims := utils.CustomClaims{
		Username: "alice",
		UserID:   42,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: past.Add(time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	w := doRequest(engine, "GET", "/api/users/profile", map[string]string{
		"Authorization": "Bearer " + token,
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "登录已过期") {
		t.Errorf("过期token应返回过期提示: %s", w.Body.String())
	}
}

func TestTamperedToken(t *testing.T) {
	engine := setupGate(t, true)
	token, err := utils.GenerateToken("alice", 42)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	w := doRequest(engine, "GET", "/api/users/profile", map[string]string{
		"Authorization": "Bearer " + token + "x",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "令牌验证异常") {
		t.Errorf("篡改token应返回验证异常提示: %s", w.Body.String())
	}
}

func TestAuthDisabledInjectsDebugIdentity(t *testing.T) {
	engine := setupGate(t, false)
	w := doRequest(engine, "GET", "/api/users/profile", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("认证关闭时应放行, status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "testUser") {
		t.Errorf("认证关闭时应注入调试身份: %s", w.Body.String())
	}
}

func TestIsPublicRules(t *testing.T) {
	cases := []struct {
		method string
		path   string
		want   bool
	}{
		{"POST", "/api/users/register", true},
		{"POST", "/api/users/login", true},
		{"GET", "/api/users/check-username/alice", true},
		{"GET", "/api/users/check-email/a@b.com", true},
		{"GET", "/api/users/profile", false},
		{"GET", "/api/articles/1", true},
		{"GET", "/api/articles/1/author", false},
		{"GET", "/api/articles/search", true},
		{"GET", "/api/articles/my-articles", false},
		{"GET", "/api/public/articles", true},
		{"GET", "/api/public/articles/category/tech", true},
		{"POST", "/api/articles", false},
		{"POST", "/api/articles/1/like", true},
		{"GET", "/api/comments/article/1", true},
		{"POST", "/api/comments", false},
		{"GET", "/api/categories/list", true},
		{"POST", "/api/categories", false},
		{"GET", "/api/system/captcha", true},
		{"GET", "/api/system/config/site_name", true},
		{"PUT", "/api/system/config", false},
		{"GET", "/uploads/avatars/1.png", true},
	}
	for _, tc := range cases {
		if got := isPublic(tc.method, tc.path); got != tc.want {
			t.Errorf("isPublic(%s %s) = %v, want %v", tc.method, tc.path, got, tc.want)
		}
	}
}
