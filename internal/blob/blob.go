package blob

import (
	"context"

	"go.uber.org/zap"

	"github.com/d60-Lab/social-core/pkg/logger"
)

// Store 二进制对象存储协作方。真实实现由部署环境注入，
// 本服务只依赖这个边界。
type Store interface {
	Put(ctx context.Context, data []byte, contentType string) (url string, err error)
	Delete(ctx context.Context, url string) error
}

// DeleteBestEffort 尽力而为删除：失败只记日志，绝不影响主流程
func DeleteBestEffort(ctx context.Context, s Store, url string) {
	if s == nil || url == "" {
		return
	}
	if err := s.Delete(ctx, url); err != nil {
		logger.Warn("blob delete failed, ignoring", zap.String("url", url), zap.Error(err))
	}
}

// Discard 空实现，本地开发与测试用
type Discard struct{}

func (Discard) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	return "", nil
}

func (Discard) Delete(ctx context.Context, url string) error { return nil }
