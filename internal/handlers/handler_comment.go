package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	portssvc "github.com/myanimeverse/animeverse_backend/internal/core/ports/services"
	"github.com/myanimeverse/animeverse_backend/internal/dto"
	"github.com/myanimeverse/animeverse_backend/internal/middleware"
)

// CommentHandler handles HTTP requests related to comments.
type CommentHandler struct {
	commentService portssvc.CommentSvcFacade
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(cs portssvc.CommentSvcFacade) *CommentHandler {
	return &CommentHandler{commentService: cs}
}

// CommentCreatedResponse is the envelope returned after creating a comment.
type CommentCreatedResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	CommentID int64  `json:"commentId"`
}

// CommentUpdatedResponse is the envelope returned after editing a comment.
type CommentUpdatedResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *domain.Comment `json:"data"`
}

// RegisterCommentRoutes sets up comment routes. Listing is public; mutations
// sit behind the session gate.
func RegisterCommentRoutes(r *gin.Engine, commentService portssvc.CommentSvcFacade, authRequired gin.HandlerFunc) {
	h := NewCommentHandler(commentService)

	r.GET("/comments/:postId", h.ListComments)

	r.POST("/comments", authRequired, h.CreateComment)
	r.PUT("/comments/:id", authRequired, h.UpdateComment)
	r.DELETE("/comments/:id", authRequired, h.DeleteComment)
}

// CreateComment godoc
// @Summary Create a comment
// @Description Creates a comment on an existing post, owned by the session user.
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body dto.CreateCommentRequest true "Comment content"
// @Success 201 {object} CommentCreatedResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, MessageResponse{Success: false, Message: "Unauthorized. Please login first."})
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	commentID, err := h.commentService.CreateComment(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CommentCreatedResponse{
		Success:   true,
		Message:   "Comment created successfully",
		CommentID: commentID,
	})
}

// ListComments godoc
// @Summary List comments on a post
// @Description Returns a post's comments with author fields, newest first.
// @Tags comments
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {array} dto.CommentResponse
// @Failure 400 {object} MessageResponse
// @Router /comments/{postId} [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("postId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Success: false, Message: "Invalid post ID"})
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponseSlice(comments))
}

// UpdateComment godoc
// @Summary Edit a comment
// @Description Replaces an owned comment's body and bumps its timestamp.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param comment body dto.UpdateCommentRequest true "New comment text"
// @Success 200 {object} CommentUpdatedResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 403 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, MessageResponse{Success: false, Message: "Unauthorized. Please login first."})
		return
	}

	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Success: false, Message: "Invalid comment ID"})
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), commentID, req.UpdatedComment, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CommentUpdatedResponse{
		Success: true,
		Message: "Comment updated successfully",
		Data:    comment,
	})
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Hard-deletes an owned comment.
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 403 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, MessageResponse{Success: false, Message: "Unauthorized. Please login first."})
		return
	}

	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Success: false, Message: "Invalid comment ID"})
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID, userID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Comment deleted successfully")
}
