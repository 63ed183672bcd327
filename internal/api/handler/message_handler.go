package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-core/internal/api/middleware"
	"github.com/d60-Lab/social-core/pkg/pagination"
	"github.com/d60-Lab/social-core/pkg/response"
)

type sendMessageRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}

func peerIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("peer_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid peer id")
		return 0, false
	}
	return id, true
}

// SendMessage 发私信
// @Summary 发送私信
// @Tags 私信
// @Accept json
// @Param peer_id path int true "对端用户ID"
// @Param request body sendMessageRequest true "内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/chats/{peer_id}/messages [post]
func (h *Handler) SendMessage(c *gin.Context) {
	peer, ok := peerIDParam(c)
	if !ok {
		return
	}
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	msg, err := h.msgService.Send(c.Request.Context(), middleware.Actor(c).ID, peer, req.Text)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, msg)
}

// Conversation 会话分页（升序）
// @Summary 会话消息
// @Tags 私信
// @Param peer_id path int true "对端用户ID"
// @Success 200 {object} response.Response
// @Router /api/v1/chats/{peer_id}/messages [get]
func (h *Handler) Conversation(c *gin.Context) {
	peer, ok := peerIDParam(c)
	if !ok {
		return
	}
	var req pagination.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, err := h.msgService.Conversation(c.Request.Context(), middleware.Actor(c).ID, peer, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// NewMessages 增量拉取：只要 id > after 的消息
// @Summary 增量同步
// @Tags 私信
// @Param peer_id path int true "对端用户ID"
// @Param after query int false "上次见到的消息ID" default(0)
// @Success 200 {object} response.Response
// @Router /api/v1/chats/{peer_id}/messages/new [get]
func (h *Handler) NewMessages(c *gin.Context) {
	peer, ok := peerIDParam(c)
	if !ok {
		return
	}
	after, _ := strconv.ParseInt(c.DefaultQuery("after", "0"), 10, 64)
	msgs, err := h.msgService.NewSince(c.Request.Context(), middleware.Actor(c).ID, peer, after)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, msgs)
}

// MarkRead 把对端发来的未读全部置已读（幂等）
// @Summary 标记已读
// @Tags 私信
// @Param peer_id path int true "对端用户ID"
// @Success 200 {object} response.Response
// @Router /api/v1/chats/{peer_id}/read [post]
func (h *Handler) MarkRead(c *gin.Context) {
	peer, ok := peerIDParam(c)
	if !ok {
		return
	}
	if err := h.msgService.MarkRead(c.Request.Context(), middleware.Actor(c).ID, peer); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Dialogs 会话列表（每个对端一条摘要）
// @Summary 会话摘要
// @Tags 私信
// @Success 200 {object} response.Response
// @Router /api/v1/chats [get]
func (h *Handler) Dialogs(c *gin.Context) {
	dialogs, err := h.msgService.Dialogs(c.Request.Context(), middleware.Actor(c).ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dialogs)
}
