package handlers

import (
	"net/http"

	documentRepo "legato/database/repository/document"
	reviewRepo "legato/database/repository/review"
	todoRepo "legato/database/repository/todo"
	"legato/middleware"
	"legato/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DashboardHandler serves the to-do, vault, and review endpoints backing
// the dashboard views.
type DashboardHandler struct {
	Todos     todoRepo.TodoRepository
	Documents documentRepo.DocumentRepository
	Reviews   reviewRepo.ReviewRepository
	Logger    *zap.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(todos todoRepo.TodoRepository, documents documentRepo.DocumentRepository, reviews reviewRepo.ReviewRepository, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{Todos: todos, Documents: documents, Reviews: reviews, Logger: logger}
}

// ListTodosHandler handles GET /api/dashboard/todos.
func (h *DashboardHandler) ListTodosHandler(c *gin.Context) {
	uid := middleware.SessionUID(c)
	items, err := h.Todos.ListByOwner(uid)
	if err != nil {
		h.Logger.Error("Failed to list todos", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"todos": items})
}

// CreateTodoHandler handles POST /api/dashboard/todos.
func (h *DashboardHandler) CreateTodoHandler(c *gin.Context) {
	var req struct {
		Title    string `json:"title"`
		Priority string `json:"priority"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	item := &models.TodoItem{
		ID:       uuid.New().String(),
		OwnerUID: middleware.SessionUID(c),
		Title:    req.Title,
		Priority: req.Priority,
	}
	if err := h.Todos.Create(item); err != nil {
		h.Logger.Error("Failed to create todo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ToggleTodoHandler handles PATCH /api/dashboard/todos/:id.
func (h *DashboardHandler) ToggleTodoHandler(c *gin.Context) {
	var req struct {
		Done bool `json:"done"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Todos.SetDone(middleware.SessionUID(c), c.Param("id"), req.Done); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo updated"})
}

// DeleteTodoHandler handles DELETE /api/dashboard/todos/:id.
func (h *DashboardHandler) DeleteTodoHandler(c *gin.Context) {
	if err := h.Todos.Delete(middleware.SessionUID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted"})
}

// ListDocumentsHandler handles GET /api/dashboard/documents.
func (h *DashboardHandler) ListDocumentsHandler(c *gin.Context) {
	uid := middleware.SessionUID(c)
	docs, err := h.Documents.ListByOwner(uid)
	if err != nil {
		h.Logger.Error("Failed to list documents", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// CreateDocumentHandler handles POST /api/dashboard/documents. Metadata
// only; file contents are out of scope for this slice.
func (h *DashboardHandler) CreateDocumentHandler(c *gin.Context) {
	var req struct {
		Name   string `json:"name"`
		Size   int64  `json:"size"`
		Tag    string `json:"tag"`
		Shared bool   `json:"shared"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Document name is required"})
		return
	}

	doc := &models.Document{
		ID:       uuid.New().String(),
		OwnerUID: middleware.SessionUID(c),
		Name:     req.Name,
		Size:     req.Size,
		Tag:      req.Tag,
		Shared:   req.Shared,
	}
	if err := h.Documents.Create(doc); err != nil {
		h.Logger.Error("Failed to create document", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// DeleteDocumentHandler handles DELETE /api/dashboard/documents/:id.
func (h *DashboardHandler) DeleteDocumentHandler(c *gin.Context) {
	if err := h.Documents.Delete(middleware.SessionUID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// CreateReviewHandler handles POST /api/dashboard/reviews. Client only.
func (h *DashboardHandler) CreateReviewHandler(c *gin.Context) {
	var req struct {
		LawyerUID  string `json:"lawyerUid"`
		ClientName string `json:"clientName"`
		Rating     int    `json:"rating"`
		Comment    string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.LawyerUID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	review := models.Review{
		ID:         uuid.New().String(),
		LawyerUID:  req.LawyerUID,
		ClientUID:  middleware.SessionUID(c),
		ClientName: req.ClientName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := review.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Reviews.Create(&review); err != nil {
		h.Logger.Error("Failed to create review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListMyReviewsHandler handles GET /api/dashboard/reviews.
func (h *DashboardHandler) ListMyReviewsHandler(c *gin.Context) {
	uid := middleware.SessionUID(c)

	var (
		reviews []models.Review
		err     error
	)
	if middleware.SessionRole(c) == models.RoleLawyer {
		reviews, err = h.Reviews.ListByLawyer(uid)
	} else {
		reviews, err = h.Reviews.ListByClient(uid)
	}
	if err != nil {
		h.Logger.Error("Failed to list reviews", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
