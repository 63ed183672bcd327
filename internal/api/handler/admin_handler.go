package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-core/internal/api/middleware"
	"github.com/d60-Lab/social-core/pkg/response"
)

// Insights 管理端指标（走 redis 读穿缓存）
// @Summary 运营指标
// @Tags 管理
// @Success 200 {object} response.Response{data=map[string]string}
// @Router /api/v1/admin/insights [get]
func (h *Handler) Insights(c *gin.Context) {
	metrics, err := h.insights.GetAll(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, metrics)
}

// PurgeUser 注销用户：清掉五张核心表里属于该用户的所有行
// @Summary 注销用户数据
// @Tags 管理
// @Param user_id path int true "用户ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/admin/users/{user_id} [delete]
func (h *Handler) PurgeUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}
	if err := h.acctService.PurgeUser(c.Request.Context(), id, middleware.Actor(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
