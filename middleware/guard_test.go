package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"legato/models"
	"legato/services/session"
	"legato/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientSession() *session.Session {
	return &session.Session{UID: "client-1", Role: models.RoleClient}
}

func lawyerSession() *session.Session {
	return &session.Session{UID: "lawyer-1", Role: models.RoleLawyer}
}

func TestEvaluateRoute(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		sess   *session.Session
		action GuardAction
		target string
	}{
		{name: "homepage is public", path: "/", sess: nil, action: GuardAllow},
		{name: "about is public", path: "/about", sess: nil, action: GuardAllow},
		{name: "contact is public", path: "/contact", sess: nil, action: GuardAllow},
		{name: "marketplace is public", path: "/lawyers", sess: nil, action: GuardAllow},
		{name: "login is public", path: "/auth/login", sess: nil, action: GuardAllow},
		{name: "register is public", path: "/auth/register", sess: nil, action: GuardAllow},
		{name: "forgot password is public", path: "/auth/forgot-password", sess: nil, action: GuardAllow},
		{name: "role selector is public", path: "/role-selector", sess: nil, action: GuardAllow},
		{name: "lawyer profile is public", path: "/lawyers/abc123", sess: nil, action: GuardAllow},
		{name: "api prefix is public", path: "/api/lawyers", sess: nil, action: GuardAllow},
		{
			name:   "dashboard without session redirects to login",
			path:   "/dashboard/user",
			sess:   nil,
			action: GuardRedirect,
			target: "/auth/login?redirect=%2Fdashboard%2Fuser",
		},
		{
			name:   "dashboard root without session redirects to login",
			path:   "/dashboard",
			sess:   nil,
			action: GuardRedirect,
			target: "/auth/login?redirect=%2Fdashboard",
		},
		{name: "client on client dashboard", path: "/dashboard/user/bookings", sess: clientSession(), action: GuardAllow},
		{name: "lawyer on lawyer dashboard", path: "/dashboard/lawyer/earnings", sess: lawyerSession(), action: GuardAllow},
		{
			name:   "client on lawyer dashboard redirects home",
			path:   "/dashboard/lawyer",
			sess:   clientSession(),
			action: GuardRedirect,
			target: "/dashboard/user",
		},
		{
			name:   "lawyer on client dashboard redirects home",
			path:   "/dashboard/user/profile",
			sess:   lawyerSession(),
			action: GuardRedirect,
			target: "/dashboard/lawyer",
		},
		{name: "dashboard root with session", path: "/dashboard", sess: lawyerSession(), action: GuardAllow},
		{
			name:   "booking flow without session redirects to login",
			path:   "/lawyers/abc123/booking",
			sess:   nil,
			action: GuardRedirect,
			target: "/auth/login?redirect=%2Flawyers%2Fabc123%2Fbooking",
		},
		{name: "booking flow with session", path: "/lawyers/abc123/booking/confirm", sess: clientSession(), action: GuardAllow},
		{name: "unclassified path defaults open", path: "/press-kit", sess: nil, action: GuardAllow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := EvaluateRoute(tt.path, tt.sess)
			assert.Equal(t, tt.action, verdict.Action)
			if tt.action == GuardRedirect {
				assert.Equal(t, tt.target, verdict.Target)
			}
		})
	}
}

func TestIsPublicPath(t *testing.T) {
	assert.True(t, IsPublicPath("/lawyers/xyz"))
	assert.False(t, IsPublicPath("/lawyers/xyz/booking"))
	assert.False(t, IsPublicPath("/lawyers/"))
	assert.False(t, IsPublicPath("/dashboard"))
	assert.True(t, IsPublicPath("/api/anything/here"))
}

func TestRouteGuardMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RouteGuard())
	router.GET("/dashboard/user", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("no cookie redirects to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard/user", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/auth/login?redirect=%2Fdashboard%2Fuser", w.Header().Get("Location"))
	})

	t.Run("garbage token is treated as unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard/user", nil)
		req.AddCookie(&http.Cookie{Name: session.TokenCookie, Value: "not-a-jwt"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("valid token passes through", func(t *testing.T) {
		token, err := utils.GenerateSessionToken("client-1", string(models.RoleClient), time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/dashboard/user", nil)
		req.AddCookie(&http.Cookie{Name: session.TokenCookie, Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})
}
