package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/miniactivity/server/internal/middleware"
	"github.com/miniactivity/server/internal/services"
	"github.com/miniactivity/server/internal/validation"
)

type TagHandler struct {
	tagService *services.TagService
}

func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// CreateTag creates a tag, returning the existing one on a duplicate label
func (h *TagHandler) CreateTag(c *gin.Context) {
	body := middleware.Body[validation.CreateTagRequest](c)

	tag, err := h.tagService.CreateTag(c.Request.Context(), body.Label)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

// ListTags returns all tags
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListTags(c.Request.Context())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

// SearchTags returns tags whose label contains the query
func (h *TagHandler) SearchTags(c *gin.Context) {
	tags, err := h.tagService.SearchTags(c.Request.Context(), c.Query("q"))
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}
