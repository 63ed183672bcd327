package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-core/internal/api/middleware"
	"github.com/d60-Lab/social-core/pkg/pagination"
	"github.com/d60-Lab/social-core/pkg/response"
)

type createStoryRequest struct {
	MediaRef string `json:"media_ref" binding:"required"`
}

// CreateStory 发布限时动态
// @Summary 发布 story（24h 过期）
// @Tags 限时动态
// @Accept json
// @Produce json
// @Param request body createStoryRequest true "媒体引用"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/stories [post]
func (h *Handler) CreateStory(c *gin.Context) {
	var req createStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	story, err := h.storyService.Create(c.Request.Context(), middleware.Actor(c), req.MediaRef)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, story)
}

// ViewStory 查看 story（非作者观看计数 +1）
// @Summary 查看 story
// @Tags 限时动态
// @Param story_id path int true "Story ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/stories/{story_id} [get]
func (h *Handler) ViewStory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("story_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid story id")
		return
	}
	story, err := h.storyService.View(c.Request.Context(), id, middleware.Actor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, story)
}

// DeleteStory 删除 story（作者或管理员）
// @Summary 删除 story
// @Tags 限时动态
// @Param story_id path int true "Story ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/stories/{story_id} [delete]
func (h *Handler) DeleteStory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("story_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid story id")
		return
	}
	if err := h.storyService.Delete(c.Request.Context(), id, middleware.Actor(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// MyStories 我的未过期 story 列表
// @Summary 我的 story
// @Tags 限时动态
// @Success 200 {object} response.Response
// @Router /api/v1/stories [get]
func (h *Handler) MyStories(c *gin.Context) {
	var req pagination.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	me := middleware.Actor(c)
	page, err := h.storyService.MyStories(c.Request.Context(), me.ID, time.Now(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// AllStories 管理端全量列表（含已过期）
// @Summary 全量 story 列表
// @Tags 管理
// @Success 200 {object} response.Response
// @Router /api/v1/admin/stories [get]
func (h *Handler) AllStories(c *gin.Context) {
	var req pagination.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, err := h.storyService.AllStories(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
