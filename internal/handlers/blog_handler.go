package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/services"
)

// BlogHandler handles blog HTTP requests
type BlogHandler struct {
	blogService services.BlogService
}

func NewBlogHandler(blogService services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// ListBlogs handles GET /blogs
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.blogService.ListBlogs(c.Request.Context())
	if err != nil {
		serverError(c, "get blogs", err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// GetBlog handles GET /blog/:id
func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	blog, err := h.blogService.GetBlog(c.Request.Context(), id)
	if err != nil {
		serverError(c, "get blog", err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// CreateBlog handles POST /blogs
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var blog models.Blog
	if !bindJSON(c, &blog) {
		return
	}
	res, err := h.blogService.CreateBlog(c.Request.Context(), &blog)
	if err != nil {
		serverError(c, "create blog", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateBlog handles PUT /blog/:id
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	var patch models.BlogPatch
	if !bindPatch(c, &patch) {
		return
	}
	res, err := h.blogService.UpdateBlog(c.Request.Context(), id, &patch)
	if err != nil {
		updateError(c, "update blog", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteBlog handles DELETE /blog/:id
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	res, err := h.blogService.DeleteBlog(c.Request.Context(), id)
	if err != nil {
		serverError(c, "delete blog", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
