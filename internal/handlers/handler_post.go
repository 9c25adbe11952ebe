package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/myanimeverse/animeverse_backend/internal/core/ports/services"
	"github.com/myanimeverse/animeverse_backend/internal/dto"
	"github.com/myanimeverse/animeverse_backend/internal/middleware"
)

// PostHandler handles HTTP requests related to posts.
type PostHandler struct {
	postService portssvc.PostSvcFacade
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(ps portssvc.PostSvcFacade) *PostHandler {
	return &PostHandler{postService: ps}
}

// PostMutationResponse is the envelope returned by post create/update routes.
type PostMutationResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	PostID  int64             `json:"postId"`
	Post    *dto.PostResponse `json:"post,omitempty"`
}

// MyPostsResponse wraps the acting user's posts.
type MyPostsResponse struct {
	Success bool               `json:"success"`
	Posts   []dto.PostResponse `json:"posts"`
	Count   int                `json:"count"`
}

// RegisterPostRoutes sets up post routes. Reads are public; mutations sit
// behind the session gate.
func RegisterPostRoutes(r *gin.Engine, postService portssvc.PostSvcFacade, authRequired gin.HandlerFunc) {
	h := NewPostHandler(postService)

	r.GET("/posts", h.ListPosts)
	r.GET("/posts/:id", h.GetPost)

	r.POST("/createpost", authRequired, h.CreatePost)
	r.PUT("/posts/:id", authRequired, h.ReplacePost)
	r.PATCH("/posts/:id", authRequired, h.PatchPost)
	r.DELETE("/posts/:id", authRequired, h.DeletePost)
	r.GET("/my-posts", authRequired, h.ListMyPosts)
}

// parsePostID reads the :id path parameter as a public sequential post id.
func parsePostID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Success: false, Message: "Invalid post ID"})
		return 0, false
	}
	return id, true
}

// CreatePost godoc
// @Summary Create a post
// @Description Creates a post owned by the session user with a newly allocated sequential id.
// @Tags posts
// @Accept json
// @Produce json
// @Param post body dto.CreatePostRequest true "Post content"
// @Success 201 {object} PostMutationResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Router /createpost [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, MessageResponse{Success: false, Message: "Please login to create a post"})
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	postID, err := h.postService.CreatePost(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PostMutationResponse{
		Success: true,
		Message: "Post created successfully",
		PostID:  postID,
	})
}

// ListPosts godoc
// @Summary List posts
// @Description Returns all posts with author fields, newest first, optionally filtered by category.
// @Tags posts
// @Produce json
// @Param category query string false "Category filter; 'All' or empty means no filter"
// @Success 200 {array} dto.PostResponse
// @Failure 500 {object} MessageResponse
// @Router /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	var params dto.ListPostsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	posts, err := h.postService.ListPosts(c.Request.Context(), params.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPostResponseSlice(posts))
}

// GetPost godoc
// @Summary Get a single post
// @Description Returns one post with author fields.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.PostResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// ReplacePost godoc
// @Summary Replace a post
// @Description Fully replaces an owned post's mutable fields.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body dto.CreatePostRequest true "Replacement content"
// @Success 200 {object} PostMutationResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 403 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /posts/{id} [put]
func (h *PostHandler) ReplacePost(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, MessageResponse{Success: false, Message: "Please login to update a post"})
		return
	}

	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	post, err := h.postService.ReplacePost(c.Request.Context(), postID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ToPostResponse(post)
	c.JSON(http.StatusOK, PostMutationResponse{
		Success: true,
		Message: "Post updated successfully",
		PostID:  postID,
		Post:    &resp,
	})
}

// PatchPost godoc
// @Summary Partially update a post
// @Description Applies allow-listed field updates to an owned post.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body dto.PatchPostRequest true "Fields to update"
// @Success 200 {object} PostMutationResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 403 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /posts/{id} [patch]
func (h *PostHandler) PatchPost(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, MessageResponse{Success: false, Message: "Please login to update a post"})
		return
	}

	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	var req dto.PatchPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	post, err := h.postService.PatchPost(c.Request.Context(), postID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ToPostResponse(post)
	c.JSON(http.StatusOK, PostMutationResponse{
		Success: true,
		Message: "Post updated successfully",
		PostID:  postID,
		Post:    &resp,
	})
}

// DeletePost godoc
// @Summary Delete a post
// @Description Hard-deletes an owned post. Its sequential id is never reused.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 403 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, MessageResponse{Success: false, Message: "Unauthorized. Please login first."})
		return
	}

	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), postID, userID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Post deleted successfully")
}

// ListMyPosts godoc
// @Summary List the session user's posts
// @Description Returns the acting user's posts with author fields, newest first.
// @Tags posts
// @Produce json
// @Success 200 {object} MyPostsResponse
// @Failure 401 {object} MessageResponse
// @Router /my-posts [get]
func (h *PostHandler) ListMyPosts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, MessageResponse{Success: false, Message: "Please login to view your posts"})
		return
	}

	posts, err := h.postService.ListMyPosts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MyPostsResponse{
		Success: true,
		Posts:   dto.ToPostResponseSlice(posts),
		Count:   len(posts),
	})
}
