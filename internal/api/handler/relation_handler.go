package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-core/internal/api/middleware"
	"github.com/d60-Lab/social-core/pkg/response"
)

// Follow 关注目标用户
// @Summary 关注用户
// @Tags 关系链
// @Produce json
// @Param user_id path int true "目标用户ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/users/{user_id}/follow [post]
func (h *Handler) Follow(c *gin.Context) {
	me := middleware.Actor(c)
	target, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}
	if err := h.relService.Follow(c.Request.Context(), me.ID, target); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Unfollow 取消关注
// @Summary 取消关注
// @Tags 关系链
// @Produce json
// @Param user_id path int true "目标用户ID"
// @Success 200 {object} response.Response
// @Router /api/v1/users/{user_id}/follow [delete]
func (h *Handler) Unfollow(c *gin.Context) {
	me := middleware.Actor(c)
	target, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}
	if err := h.relService.Unfollow(c.Request.Context(), me.ID, target); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// FollowStats 查询某用户的关注统计
// @Summary 关注/粉丝计数与关注状态
// @Tags 关系链
// @Param user_id path int true "用户ID"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/users/{user_id}/follow [get]
func (h *Handler) FollowStats(c *gin.Context) {
	me := middleware.Actor(c)
	target, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}
	ctx := c.Request.Context()
	followers, err := h.relService.FollowerCount(ctx, target)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	following, err := h.relService.FollowingCount(ctx, target)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	isFollowing := false
	if !me.IsAnonymous() {
		if isFollowing, err = h.relService.IsFollowing(ctx, me.ID, target); err != nil {
			response.InternalError(c, err)
			return
		}
	}
	response.Success(c, gin.H{
		"followers":    followers,
		"following":    following,
		"is_following": isFollowing,
	})
}

// ListFollowing 查询某用户关注的人
// @Summary 查询关注列表
// @Tags 关系链
// @Param user_id path int true "用户ID"
// @Param page query int false "页码" default(0)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/users/{user_id}/following [get]
func (h *Handler) ListFollowing(c *gin.Context) {
	target, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	list, err := h.relService.ListFollowing(c.Request.Context(), target, page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": list})
}
