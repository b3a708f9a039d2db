package res

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func record(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	handler(c)
	return w
}

func TestSuccessEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, gin.H{"value": 1})
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body StandardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !body.Success || body.Code != 0 {
		t.Errorf("success = %v code = %d, want true/0", body.Success, body.Code)
	}
	if body.Timestamp == 0 {
		t.Error("timestamp不能为0")
	}
}

func TestErrorEnvelopeStatusMapping(t *testing.T) {
	cases := []struct {
		code       ResponseCode
		wantStatus int
	}{
		{TokenMissing, http.StatusUnauthorized},
		{TokenExpired, http.StatusUnauthorized},
		{PermissionDenied, http.StatusForbidden},
		{ArticleNotFound, http.StatusNotFound},
		{UserAlreadyExists, http.StatusBadRequest},
		{ServerError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := record(func(c *gin.Context) {
			Error(c, tc.code)
		})
		if w.Code != tc.wantStatus {
			t.Errorf("Error(%d) status = %d, want %d", tc.code, w.Code, tc.wantStatus)
		}

		var body StandardResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("json.Unmarshal() error = %v", err)
		}
		if body.Success {
			t.Errorf("Error(%d) success = true, want false", tc.code)
		}
		if body.Message == "" {
			t.Errorf("Error(%d) message为空", tc.code)
		}
	}
}

func TestSuccessWithPage(t *testing.T) {
	w := record(func(c *gin.Context) {
		SuccessWithPage(c, []int{1, 2, 3}, 25, 0, 10)
	})

	var body StandardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if body.Pagination == nil {
		t.Fatal("分页响应应包含pagination")
	}
	if body.Pagination.Total != 25 || body.Pagination.TotalPages != 3 {
		t.Errorf("pagination = %+v, want total=25 totalPages=3", body.Pagination)
	}
}
