package llm

import (
	"context"
	"fmt"

	"github.com/ievan-lhr/go-chat402-client/spec"
)

// Chat 是一个便捷的无状态调用函数，适用于简单的单轮问答。
func Chat(ctx context.Context, prompt string, cfg Config, opts ...spec.Option) (spec.ChatResponse, error) {
	client, err := GetClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get client for provider '%s': %w", cfg.Provider, err)
	}
	return client.Chat(ctx, prompt, opts...)
}

// ChatText 是最简化的无状态调用函数，只返回回复的字符串。
func ChatText(ctx context.Context, prompt string, cfg Config, opts ...spec.Option) (string, error) {
	resp, err := Chat(ctx, prompt, cfg, opts...)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Balance 查询当前凭证对应的钱包余额。
func Balance(ctx context.Context, cfg Config) (*spec.BalanceResponse, error) {
	client, err := GetClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get client for provider '%s': %w", cfg.Provider, err)
	}
	return client.Balance(ctx)
}
