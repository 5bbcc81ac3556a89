package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"JobTracker/internal/modules/analytics/application/dto/respond"

	"github.com/gin-gonic/gin"
)

type stubAnalytics struct{ gotUser string }

func (s *stubAnalytics) Analytics(ctx context.Context, userID string) (*respond.AnalyticsRespond, error) {
	s.gotUser = userID
	return &respond.AnalyticsRespond{TotalApps: 3}, nil
}

func (s *stubAnalytics) Dashboard(ctx context.Context, userID string) (*respond.DashboardRespond, error) {
	s.gotUser = userID
	return &respond.DashboardRespond{
		Analytics: &respond.AnalyticsRespond{TotalApps: 3},
		Insights:  []respond.Insight{{ID: "build-momentum", Priority: 3}},
	}, nil
}

func TestDashboardUsesAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubAnalytics{}
	h := NewAnalyticsHandler(stub)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "u1"); c.Next() })
	r.GET("/analytics", h.Analytics)
	r.GET("/dashboard", h.Dashboard)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if stub.gotUser != "u1" {
		t.Errorf("expected user u1, got %q", stub.gotUser)
	}
	var body struct {
		Data respond.DashboardRespond `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Analytics.TotalApps != 3 || len(body.Data.Insights) != 1 {
		t.Errorf("unexpected body %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
