package handlers

import (
	"encoding/json"
	"net/http"

	profileRepo "legato/database/repository/profile"
	reviewRepo "legato/database/repository/review"
	"legato/models"
	"legato/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// LawyerHandler serves the public marketplace endpoints.
type LawyerHandler struct {
	Profiles profileRepo.ProfileRepository
	Reviews  reviewRepo.ReviewRepository
	Cache    *redis.Client
	Logger   *zap.Logger
}

// NewLawyerHandler creates a LawyerHandler. Cache may be nil in tests.
func NewLawyerHandler(profiles profileRepo.ProfileRepository, reviews reviewRepo.ReviewRepository, cache *redis.Client, logger *zap.Logger) *LawyerHandler {
	return &LawyerHandler{Profiles: profiles, Reviews: reviews, Cache: cache, Logger: logger}
}

// lawyerCard is the public listing entry.
type lawyerCard struct {
	models.UserAccount
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

// ListLawyersHandler handles GET /api/lawyers.
func (h *LawyerHandler) ListLawyersHandler(c *gin.Context) {
	filter := profileRepo.LawyerFilter{
		Specialization: c.Query("specialization"),
		Language:       c.Query("language"),
		VerifiedOnly:   c.Query("verified") == "true",
	}

	unfiltered := filter == (profileRepo.LawyerFilter{})
	if unfiltered && h.Cache != nil {
		if cached, err := h.Cache.Get(c.Request.Context(), utils.LawyerListCacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	lawyers, err := h.Profiles.ListLawyers(filter)
	if err != nil {
		h.Logger.Error("Failed to list lawyers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}

	cards := make([]lawyerCard, 0, len(lawyers))
	for _, lawyer := range lawyers {
		avg, count, err := h.Reviews.AverageRating(lawyer.UID)
		if err != nil {
			h.Logger.Warn("Failed to compute rating", zap.String("uid", lawyer.UID), zap.Error(err))
		}
		cards = append(cards, lawyerCard{UserAccount: lawyer, Rating: avg, ReviewCount: count})
	}

	body := gin.H{"lawyers": cards}
	if unfiltered && h.Cache != nil {
		if raw, err := json.Marshal(body); err == nil {
			_ = h.Cache.Set(c.Request.Context(), utils.LawyerListCacheKey, raw, utils.LawyerListCacheTTL).Err()
		}
	}
	c.JSON(http.StatusOK, body)
}

// GetLawyerHandler handles GET /api/lawyers/:id.
func (h *LawyerHandler) GetLawyerHandler(c *gin.Context) {
	uid := c.Param("id")

	account, err := h.Profiles.GetByUID(uid)
	if err != nil {
		h.Logger.Error("Failed to fetch lawyer profile", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	if account == nil || account.Role != models.RoleLawyer {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lawyer not found"})
		return
	}

	avg, count, err := h.Reviews.AverageRating(uid)
	if err != nil {
		h.Logger.Warn("Failed to compute rating", zap.String("uid", uid), zap.Error(err))
	}
	reviews, err := h.Reviews.ListByLawyer(uid)
	if err != nil {
		h.Logger.Warn("Failed to list reviews", zap.String("uid", uid), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"lawyer":      lawyerCard{UserAccount: *account, Rating: avg, ReviewCount: count},
		"reviews":     reviews,
		"reviewCount": count,
	})
}
