package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-core/internal/api/middleware"
	"github.com/d60-Lab/social-core/pkg/pagination"
	"github.com/d60-Lab/social-core/pkg/response"
)

func postIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return 0, false
	}
	return id, true
}

// Like 点赞（重复点赞为 no-op）
// @Summary 点赞帖子
// @Tags 互动
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response
// @Router /api/v1/posts/{post_id}/like [post]
func (h *Handler) Like(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	if err := h.engService.Like(c.Request.Context(), id, middleware.Actor(c).ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Unlike 取消点赞（幂等）
// @Summary 取消点赞
// @Tags 互动
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response
// @Router /api/v1/posts/{post_id}/like [delete]
func (h *Handler) Unlike(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	if err := h.engService.Unlike(c.Request.Context(), id, middleware.Actor(c).ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// LikeStatus 点赞数与当前用户状态
// @Summary 点赞状态
// @Tags 互动
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/posts/{post_id}/like [get]
func (h *Handler) LikeStatus(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	count, err := h.engService.LikeCount(ctx, id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	me := middleware.Actor(c)
	liked := false
	if !me.IsAnonymous() {
		if liked, err = h.engService.IsLiked(ctx, id, me.ID); err != nil {
			response.InternalError(c, err)
			return
		}
	}
	response.Success(c, gin.H{"count": count, "liked": liked})
}

// Bookmark 收藏帖子（重复收藏为 no-op）
// @Summary 收藏帖子
// @Tags 互动
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response
// @Router /api/v1/posts/{post_id}/bookmark [post]
func (h *Handler) Bookmark(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	if err := h.engService.Bookmark(c.Request.Context(), id, middleware.Actor(c).ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// RemoveBookmark 取消收藏（幂等）
// @Summary 取消收藏
// @Tags 互动
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response
// @Router /api/v1/posts/{post_id}/bookmark [delete]
func (h *Handler) RemoveBookmark(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	if err := h.engService.RemoveBookmark(c.Request.Context(), id, middleware.Actor(c).ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// MyBookmarks 我的收藏列表
// @Summary 我的收藏
// @Tags 互动
// @Success 200 {object} response.Response
// @Router /api/v1/bookmarks [get]
func (h *Handler) MyBookmarks(c *gin.Context) {
	var req pagination.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, err := h.engService.MyBookmarks(c.Request.Context(), middleware.Actor(c).ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
