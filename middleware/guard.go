package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"legato/models"
	"legato/services/session"

	"github.com/gin-gonic/gin"
)

// publicPaths don't require authentication.
var publicPaths = []string{
	"/",                     // Homepage
	"/about",                // About page
	"/contact",              // Contact page
	"/lawyers",              // Lawyers marketplace
	"/auth/login",           // Login page
	"/auth/register",        // Register landing
	"/auth/forgot-password", // Password reset
	"/role-selector",        // Role selection
}

// RoutePolicy binds a path prefix to the role it requires. An empty role
// means any authenticated session.
type RoutePolicy struct {
	Prefix       string
	RequiredRole models.Role
}

// dashboardPolicies are evaluated in order; the first matching prefix wins.
var dashboardPolicies = []RoutePolicy{
	{Prefix: "/dashboard/user", RequiredRole: models.RoleClient},
	{Prefix: "/dashboard/lawyer", RequiredRole: models.RoleLawyer},
	{Prefix: "/dashboard", RequiredRole: ""},
}

// GuardAction is the outcome of a route evaluation.
type GuardAction int

const (
	GuardAllow GuardAction = iota
	GuardRedirect
)

// Verdict is the guard's decision for one request.
type Verdict struct {
	Action GuardAction
	Target string
}

// IsPublicPath reports whether pathname requires no authentication.
func IsPublicPath(pathname string) bool {
	for _, p := range publicPaths {
		if pathname == p {
			return true
		}
	}

	// Dynamic public paths (lawyer profiles): a single segment under /lawyers.
	if rest, ok := strings.CutPrefix(pathname, "/lawyers/"); ok {
		if rest != "" && !strings.Contains(rest, "/") {
			return true
		}
	}

	// API routes enforce their own session middleware.
	if strings.HasPrefix(pathname, "/api/") {
		return true
	}

	return false
}

// DashboardHome is the dashboard root for a role.
func DashboardHome(role models.Role) string {
	switch role {
	case models.RoleClient:
		return "/dashboard/user"
	case models.RoleLawyer:
		return "/dashboard/lawyer"
	}
	return "/dashboard"
}

func loginRedirect(pathname string) Verdict {
	return Verdict{
		Action: GuardRedirect,
		Target: "/auth/login?redirect=" + url.QueryEscape(pathname),
	}
}

// EvaluateRoute classifies pathname against the policy tables and decides
// whether the request is allowed or redirected. It is a pure function and
// never errors; a nil session means "unauthenticated".
func EvaluateRoute(pathname string, sess *session.Session) Verdict {
	// 1. Allow public paths.
	if IsPublicPath(pathname) {
		return Verdict{Action: GuardAllow}
	}

	// 2. Protect dashboard routes.
	if strings.HasPrefix(pathname, "/dashboard") {
		if sess == nil {
			return loginRedirect(pathname)
		}
		for _, policy := range dashboardPolicies {
			if !strings.HasPrefix(pathname, policy.Prefix) {
				continue
			}
			if policy.RequiredRole != "" && sess.Role != policy.RequiredRole {
				return Verdict{Action: GuardRedirect, Target: DashboardHome(sess.Role)}
			}
			return Verdict{Action: GuardAllow}
		}
		return Verdict{Action: GuardAllow}
	}

	// 3. Protect the booking flow after lawyer selection.
	if strings.HasPrefix(pathname, "/lawyers/") && strings.Contains(pathname, "/booking") {
		if sess == nil {
			return loginRedirect(pathname)
		}
	}

	return Verdict{Action: GuardAllow}
}

// RouteGuard applies EvaluateRoute to every request, reading the session
// from the verified token cookie.
func RouteGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		verdict := EvaluateRoute(c.Request.URL.Path, session.ReadSession(c.Request))
		if verdict.Action == GuardRedirect {
			c.Redirect(http.StatusFound, verdict.Target)
			c.Abort()
			return
		}
		c.Next()
	}
}
