package spec

import "context"

// Client 是与 Chat402 API 交互的顶层客户端。
type Client interface {
	// Chat 发送单个 prompt，返回未经修改的响应对象。
	Chat(ctx context.Context, prompt string, opts ...Option) (ChatResponse, error)
	// Prompt 发送一个完整构造好的请求。
	Prompt(ctx context.Context, req *PromptRequest) (ChatResponse, error)
	// Balance 查询钱包余额。
	Balance(ctx context.Context) (*BalanceResponse, error)
}
