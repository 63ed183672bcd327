package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/social-core/internal/model"
	"github.com/d60-Lab/social-core/internal/notify"
	"github.com/d60-Lab/social-core/internal/repository"
	"github.com/d60-Lab/social-core/pkg/apperr"
	"github.com/d60-Lab/social-core/pkg/logger"
	"github.com/d60-Lab/social-core/pkg/pagination"
)

const (
	maxMessageLen = 2000
	// dialogScanWindow 会话摘要只扫最近这么多条，不做全量
	dialogScanWindow = 300
)

var (
	ErrSelfMessage  = apperr.InvalidArgument("you can't message yourself")
	ErrEmptyMessage = apperr.InvalidArgument("message text is empty")
	ErrMessageTooLong = apperr.InvalidArgument("message text too long")
)

// MessageService 私信与增量同步
type MessageService interface {
	Send(ctx context.Context, senderID, recipientID int64, text string) (*model.Message, error)
	Conversation(ctx context.Context, userID, peerID int64, req pagination.Request) (pagination.Page[*model.Message], error)
	NewSince(ctx context.Context, userID, peerID, afterID int64) ([]*model.Message, error)
	MarkRead(ctx context.Context, userID, peerID int64) error
	Dialogs(ctx context.Context, userID int64) ([]*model.Dialog, error)
	DeleteAllFor(ctx context.Context, userID int64) error
}

type messageService struct {
	msgRepo    repository.MessageRepository
	dispatcher *notify.Dispatcher
	now        func() time.Time
}

func NewMessageService(msgRepo repository.MessageRepository, dispatcher *notify.Dispatcher) MessageService {
	return &messageService{msgRepo: msgRepo, dispatcher: dispatcher, now: time.Now}
}

func (s *messageService) Send(ctx context.Context, senderID, recipientID int64, text string) (*model.Message, error) {
	if senderID == recipientID {
		return nil, ErrSelfMessage
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if len(text) > maxMessageLen {
		return nil, ErrMessageTooLong
	}
	msg := &model.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Text:        text,
		CreatedAt:   s.now(),
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	if s.dispatcher != nil {
		s.dispatcher.Enqueue(notify.Event{Kind: notify.EventMessage, UserID: recipientID, PeerID: senderID})
	}
	return msg, nil
}

func (s *messageService) Conversation(ctx context.Context, userID, peerID int64, req pagination.Request) (pagination.Page[*model.Message], error) {
	req.Normalize()
	items, total, err := s.msgRepo.Conversation(ctx, userID, peerID, req.Offset(), req.Size)
	if err != nil {
		return pagination.Page[*model.Message]{}, err
	}
	return pagination.NewPage(items, req.Page, req.Size, total), nil
}

// NewSince 客户端轮询增量：只拉 id > afterID 的部分，免全量重拉
func (s *messageService) NewSince(ctx context.Context, userID, peerID, afterID int64) ([]*model.Message, error) {
	if afterID < 0 {
		afterID = 0
	}
	return s.msgRepo.NewSince(ctx, userID, peerID, afterID)
}

// MarkRead 把对端发给我的未读全部置已读；重复调用不重置时间戳
func (s *messageService) MarkRead(ctx context.Context, userID, peerID int64) error {
	n, err := s.msgRepo.MarkRead(ctx, userID, peerID, s.now())
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Debug("marked messages read",
			zap.Int64("user", userID), zap.Int64("peer", peerID), zap.Int64("count", n))
	}
	return nil
}

// Dialogs 扫描最近窗口，按对端折叠，每个对端只留最新一条
func (s *messageService) Dialogs(ctx context.Context, userID int64) ([]*model.Dialog, error) {
	msgs, err := s.msgRepo.RecentInvolving(ctx, userID, dialogScanWindow)
	if err != nil {
		return nil, err
	}
	seen := make(map[int64]bool, len(msgs))
	dialogs := make([]*model.Dialog, 0, 16)
	for _, m := range msgs {
		peer := m.SenderID
		if peer == userID {
			peer = m.RecipientID
		}
		// 输入倒序，第一次遇到即该对端最新消息
		if seen[peer] {
			continue
		}
		seen[peer] = true
		dialogs = append(dialogs, &model.Dialog{
			PeerID:        peer,
			LastText:      m.Text,
			LastMessageAt: m.CreatedAt,
			LastSenderID:  m.SenderID,
		})
	}
	return dialogs, nil
}

func (s *messageService) DeleteAllFor(ctx context.Context, userID int64) error {
	return s.msgRepo.DeleteAllFor(ctx, userID)
}
