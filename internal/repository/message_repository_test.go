package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-core/internal/model"
)

func seedConversation(t *testing.T, repo MessageRepository) []*model.Message {
	t.Helper()
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)
	msgs := []*model.Message{
		{SenderID: 1, RecipientID: 2, Text: "hi", CreatedAt: base},
		{SenderID: 2, RecipientID: 1, Text: "hello", CreatedAt: base.Add(time.Minute)},
		{SenderID: 1, RecipientID: 2, Text: "how are you", CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, m := range msgs {
		require.NoError(t, repo.Create(ctx, m))
	}
	return msgs
}

func TestConversationOrderAndScope(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()
	seedConversation(t, repo)

	// 无关会话不掺进来
	require.NoError(t, repo.Create(ctx, &model.Message{SenderID: 1, RecipientID: 9, Text: "other", CreatedAt: time.Now()}))

	items, total, err := repo.Conversation(ctx, 1, 2, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, items, 3)
	require.Equal(t, "hi", items[0].Text)
	require.Equal(t, "hello", items[1].Text)
	require.Equal(t, "how are you", items[2].Text)

	// 双向一致：换个视角结果相同
	mirror, _, err := repo.Conversation(ctx, 2, 1, 0, 10)
	require.NoError(t, err)
	require.Equal(t, items[0].ID, mirror[0].ID)
}

func TestConversationSameTimestampTieBreak(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()
	at := time.Now().Truncate(time.Second)

	require.NoError(t, repo.Create(ctx, &model.Message{SenderID: 1, RecipientID: 2, Text: "first", CreatedAt: at}))
	require.NoError(t, repo.Create(ctx, &model.Message{SenderID: 2, RecipientID: 1, Text: "second", CreatedAt: at}))

	items, _, err := repo.Conversation(ctx, 1, 2, 0, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// 时间戳相同时 id 决胜，写入序稳定
	require.Equal(t, "first", items[0].Text)
	require.Equal(t, "second", items[1].Text)
}

func TestNewSince(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()
	msgs := seedConversation(t, repo)

	got, err := repo.NewSince(ctx, 1, 2, msgs[0].ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "hello", got[0].Text)
	require.Equal(t, "how are you", got[1].Text)

	// afterID=0 拉全量
	all, err := repo.NewSince(ctx, 1, 2, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// 游标在末尾时为空
	none, err := repo.NewSince(ctx, 1, 2, msgs[2].ID)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestMarkReadOnlyInboundUnread(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()
	msgs := seedConversation(t, repo)
	now := time.Now()

	// u1 标记已读：只动 u2 -> u1 的那一条
	n, err := repo.MarkRead(ctx, 1, 2, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	var m model.Message
	require.NoError(t, db.First(&m, msgs[1].ID).Error)
	require.NotNil(t, m.ReadAt)

	// 自己发出的消息不被动
	var own model.Message
	require.NoError(t, db.First(&own, msgs[0].ID).Error)
	require.Nil(t, own.ReadAt)

	// 幂等：第二次没有可标记的行
	n, err = repo.MarkRead(ctx, 1, 2, now.Add(time.Minute))
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}

func TestMessageDeleteAllFor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()
	seedConversation(t, repo)
	require.NoError(t, repo.Create(ctx, &model.Message{SenderID: 3, RecipientID: 4, Text: "keep", CreatedAt: time.Now()}))

	require.NoError(t, repo.DeleteAllFor(ctx, 1))

	var cnt int64
	require.NoError(t, db.Model(&model.Message{}).Count(&cnt).Error)
	require.EqualValues(t, 1, cnt)
}
