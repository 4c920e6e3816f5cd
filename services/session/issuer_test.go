package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"legato/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueCookies(t *testing.T, issuer *Issuer, uid string, role models.Role) []*http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)

	require.NoError(t, issuer.Issue(c, uid, role))
	return w.Result().Cookies()
}

func TestIssueSetsBothCookies(t *testing.T) {
	issuer := &Issuer{TTL: 7 * 24 * time.Hour}
	cookies := issueCookies(t, issuer, "uid-1", models.RoleLawyer)

	byName := make(map[string]*http.Cookie)
	for _, ck := range cookies {
		byName[ck.Name] = ck
	}
	require.Contains(t, byName, TokenCookie)
	require.Contains(t, byName, RoleCookie)

	token := byName[TokenCookie]
	assert.True(t, token.HttpOnly)
	assert.Equal(t, "/", token.Path)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), token.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, token.SameSite)

	role := byName[RoleCookie]
	assert.False(t, role.HttpOnly)
	assert.Equal(t, "lawyer", role.Value)
	assert.Equal(t, token.MaxAge, role.MaxAge)
}

func TestIssueReadRoundTrip(t *testing.T) {
	issuer := &Issuer{TTL: time.Hour}
	cookies := issueCookies(t, issuer, "uid-42", models.RoleClient)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/user", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	role, ok := ReadRole(req)
	require.True(t, ok)
	assert.Equal(t, models.RoleClient, role)

	sess := ReadSession(req)
	require.NotNil(t, sess)
	assert.Equal(t, "uid-42", sess.UID)
	assert.Equal(t, models.RoleClient, sess.Role)
	// The issued role cookie always equals the role inside the signed token.
	assert.Equal(t, role, sess.Role)
}

func TestClearExpiresBothCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	issuer := &Issuer{TTL: time.Hour}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	issuer.Clear(c)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, ck := range cookies {
		assert.Empty(t, ck.Value)
		assert.True(t, ck.MaxAge < 0 || ck.Expires.Before(time.Now()), "cookie %s must be expired", ck.Name)
	}
}

func TestReadSessionRejectsBadInput(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	assert.Nil(t, ReadSession(req))

	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "garbage"})
	assert.Nil(t, ReadSession(req))

	_, ok := ReadRole(req)
	assert.False(t, ok)

	// A role cookie outside the enum is rejected.
	req2 := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req2.AddCookie(&http.Cookie{Name: RoleCookie, Value: "admin"})
	_, ok = ReadRole(req2)
	assert.False(t, ok)
}
