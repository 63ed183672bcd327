package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-core/internal/api/middleware"
	"github.com/d60-Lab/social-core/pkg/response"
)

type createPollRequest struct {
	Question string   `json:"question" binding:"required"`
	Options  []string `json:"options" binding:"required,min=2,dive,required"`
}

type voteRequest struct {
	OptionID int64 `json:"option_id" binding:"required"`
}

// CreatePoll 给自己的帖子挂投票
// @Summary 创建投票
// @Tags 投票
// @Accept json
// @Param post_id path int true "帖子ID"
// @Param request body createPollRequest true "问题与选项"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/posts/{post_id}/poll [post]
func (h *Handler) CreatePoll(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	var req createPollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	view, err := h.pollService.Create(c.Request.Context(), id, middleware.Actor(c), req.Question, req.Options)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// GetPoll 查看帖子的投票（含是否已投）
// @Summary 查看投票
// @Tags 投票
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response
// @Router /api/v1/posts/{post_id}/poll [get]
func (h *Handler) GetPoll(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	view, err := h.pollService.Get(c.Request.Context(), id, middleware.Actor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// Vote 投票；重复投票返回 409
// @Summary 投票
// @Tags 投票
// @Accept json
// @Param poll_id path int true "投票ID"
// @Param request body voteRequest true "选项"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/polls/{poll_id}/vote [post]
func (h *Handler) Vote(c *gin.Context) {
	pollID, err := strconv.ParseInt(c.Param("poll_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid poll id")
		return
	}
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	view, err := h.pollService.Vote(c.Request.Context(), pollID, req.OptionID, middleware.Actor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// DeletePoll 删除帖子的投票
// @Summary 删除投票
// @Tags 投票
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response
// @Router /api/v1/posts/{post_id}/poll [delete]
func (h *Handler) DeletePoll(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	if err := h.pollService.Delete(c.Request.Context(), id, middleware.Actor(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
