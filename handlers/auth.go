package handlers

import (
	"errors"
	"net/http"

	"legato/middleware"
	"legato/models"
	"legato/services/auth"
	"legato/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login, logout, and profile endpoints.
type AuthHandler struct {
	Svc    auth.AuthService
	Issuer *session.Issuer
	Logger *zap.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc auth.AuthService, issuer *session.Issuer, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Issuer: issuer, Logger: logger}
}

// authErrorResponse maps service errors to a status and a user-facing
// message. Unrecognized errors get a generic fallback.
func authErrorResponse(err error) (int, string) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	var ae *auth.Error
	if errors.As(err, &ae) {
		switch ae.Code {
		case "auth/invalid-credential":
			return http.StatusUnauthorized, "Invalid email or password"
		case "auth/email-already-in-use":
			return http.StatusConflict, "An account with this email already exists"
		case "auth/weak-password":
			return http.StatusBadRequest, "Password must be at least 6 characters"
		case "auth/profile-not-found":
			return http.StatusUnauthorized, "Login failed. Please try again."
		}
	}

	return http.StatusInternalServerError, "Something went wrong. Please try again."
}

func (h *AuthHandler) finishAuth(c *gin.Context, account *models.UserAccount, status int) {
	if err := h.Issuer.Issue(c, account.UID, account.Role); err != nil {
		h.Logger.Error("Failed to issue session cookies", zap.String("uid", account.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(status, gin.H{
		"user":     account,
		"redirect": middleware.DashboardHome(account.Role),
	})
}

// RegisterClientHandler handles POST /api/auth/register/client.
func (h *AuthHandler) RegisterClientHandler(c *gin.Context) {
	var req models.ClientRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	account, err := h.Svc.RegisterClient(c.Request.Context(), req)
	if err != nil {
		status, msg := authErrorResponse(err)
		h.Logger.Warn("Client registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(status, gin.H{"error": msg})
		return
	}
	h.finishAuth(c, account, http.StatusCreated)
}

// RegisterLawyerHandler handles POST /api/auth/register/lawyer.
func (h *AuthHandler) RegisterLawyerHandler(c *gin.Context) {
	var req models.LawyerRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	account, err := h.Svc.RegisterLawyer(c.Request.Context(), req)
	if err != nil {
		status, msg := authErrorResponse(err)
		h.Logger.Warn("Lawyer registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(status, gin.H{"error": msg})
		return
	}
	h.finishAuth(c, account, http.StatusCreated)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	account, err := h.Svc.Login(c.Request.Context(), req)
	if err != nil {
		status, msg := authErrorResponse(err)
		h.Logger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(status, gin.H{"error": msg})
		return
	}
	h.finishAuth(c, account, http.StatusOK)
}

// LogoutHandler handles POST /api/auth/logout. Both cookies are cleared
// together; provider-side errors are logged, never surfaced.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if sess := session.ReadSession(c.Request); sess != nil {
		h.Svc.Logout(c.Request.Context(), sess.UID)
	}
	h.Issuer.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// MeHandler handles GET /api/auth/me.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	uid := middleware.SessionUID(c)
	account, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		status, msg := authErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, account)
}

// UpdateProfileHandler handles PUT /api/auth/me. Only the editable subset of
// the profile is accepted; omitted fields keep their stored values and role,
// email, and the verified flag cannot be changed at all.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	var req models.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	uid := middleware.SessionUID(c)

	account, err := h.Svc.UpdateProfile(c.Request.Context(), uid, req)
	if err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
			return
		}
		if errors.Is(err, auth.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		h.Logger.Error("Profile update failed", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(http.StatusOK, account)
}
