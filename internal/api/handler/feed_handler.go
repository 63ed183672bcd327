package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-core/internal/api/middleware"
	"github.com/d60-Lab/social-core/pkg/pagination"
	"github.com/d60-Lab/social-core/pkg/response"
)

// FollowingFeed 我关注的人的帖子流
// @Summary 关注流（帖子）
// @Tags 信息流
// @Param page query int false "页码" default(0)
// @Param size query int false "每页数量" default(10)
// @Success 200 {object} response.Response
// @Router /api/v1/feed [get]
func (h *Handler) FollowingFeed(c *gin.Context) {
	var req pagination.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	me := middleware.Actor(c)
	page, err := h.feedService.FollowingFeed(c.Request.Context(), me.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// FollowingStories 我关注的人的未过期 story 流
// @Summary 关注流（story）
// @Tags 信息流
// @Success 200 {object} response.Response
// @Router /api/v1/feed/stories [get]
func (h *Handler) FollowingStories(c *gin.Context) {
	var req pagination.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	me := middleware.Actor(c)
	page, err := h.feedService.FollowingStories(c.Request.Context(), me.ID, time.Now(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// GlobalFeed 全站帖子流（发现页 / 管理端）
// @Summary 全站流（帖子）
// @Tags 信息流
// @Success 200 {object} response.Response
// @Router /api/v1/feed/global [get]
func (h *Handler) GlobalFeed(c *gin.Context) {
	var req pagination.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, err := h.feedService.GlobalFeed(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// GlobalStories 全站 story 流
// @Summary 全站流（story）
// @Tags 信息流
// @Success 200 {object} response.Response
// @Router /api/v1/feed/global/stories [get]
func (h *Handler) GlobalStories(c *gin.Context) {
	var req pagination.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, err := h.feedService.GlobalStories(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
