package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/social-core/pkg/logger"
)

// EventKind 通知事件类型
type EventKind string

const (
	EventFollow  EventKind = "follow"
	EventMessage EventKind = "message"
)

// Event 通知事件
type Event struct {
	Kind   EventKind
	UserID int64 // 接收通知的用户
	PeerID int64 // 触发方
	enqAt  time.Time
}

// Notifier 外部通知协作方（邮件 / 推送），失败不回传给主流程
type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}

// NopNotifier 本地开发占位
type NopNotifier struct{}

func (NopNotifier) Notify(ctx context.Context, ev Event) error { return nil }

// Dispatcher 本地异步通知分发：有界队列 + 固定 worker，
// 队列满直接丢弃并告警，保证发送路径永不阻塞。
type Dispatcher struct {
	notifier Notifier
	ch       chan Event
}

func NewDispatcher(notifier Notifier, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 10000
	}
	return &Dispatcher{notifier: notifier, ch: make(chan Event, queueSize)}
}

func (d *Dispatcher) Start(workers int) func(context.Context) error {
	if workers <= 0 {
		workers = 4
	}
	stopCh := make(chan struct{})
	for i := 0; i < workers; i++ {
		go func() {
			for {
				select {
				case ev := <-d.ch:
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					if err := d.notifier.Notify(ctx, ev); err != nil {
						logger.Warn("notify failed, dropping event",
							zap.String("kind", string(ev.Kind)),
							zap.Int64("user", ev.UserID),
							zap.Error(err))
					}
					cancel()
				case <-stopCh:
					return
				}
			}
		}()
	}
	return func(ctx context.Context) error {
		close(stopCh)
		// 等待队列自然排空一小段时间
		timeout := time.After(2 * time.Second)
		for {
			select {
			case <-timeout:
				return nil
			default:
				if len(d.ch) == 0 {
					return nil
				}
				time.Sleep(50 * time.Millisecond)
			}
		}
	}
}

// Enqueue 入队即返回；满了就丢
func (d *Dispatcher) Enqueue(ev Event) {
	ev.enqAt = time.Now()
	select {
	case d.ch <- ev:
	default:
		logger.Warn("notify queue full, drop event",
			zap.String("kind", string(ev.Kind)), zap.Int64("user", ev.UserID))
	}
}

// QueueLen 返回当前队列长度（采样值）。
func (d *Dispatcher) QueueLen() int { return len(d.ch) }
