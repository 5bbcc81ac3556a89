package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"JobTracker/pkg/util/myjwt"

	"github.com/gin-gonic/gin"
)

func newAuthedEngine(m *myjwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(m), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	return r
}

func TestAuthAcceptsValidToken(t *testing.T) {
	m := myjwt.New("secret", "JobTracker", 1)
	token, err := m.GenerateToken("u1", "a@b.c")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newAuthedEngine(m).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "u1" {
		t.Errorf("expected user id u1, got %q", w.Body.String())
	}
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	w := httptest.NewRecorder()
	newAuthedEngine(myjwt.New("secret", "JobTracker", 1)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	newAuthedEngine(myjwt.New("secret", "JobTracker", 1)).ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
