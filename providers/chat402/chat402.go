package chat402

import (
	"context"
	"net/http"
	"strings"

	"github.com/ievan-lhr/go-chat402-client/internal/requester"
	"github.com/ievan-lhr/go-chat402-client/spec"
)

// clientImpl 实现了 spec.Client
type clientImpl struct {
	requester *requester.Requester
	config    spec.ClientConfig
}

// NewClient 是创建Chat402客户端的入口函数。
//
// 这里不校验 API Key：凭证缺失时请求照常发出，由服务端返回错误。
func NewClient(opts ...spec.ClientOption) spec.Client {
	// 1. 创建带有默认值的配置
	config := spec.NewClientConfig()

	// 2. 应用所有用户传入的选项，用户的设置会覆盖默认值
	for _, opt := range opts {
		opt(config)
	}
	config.APIURL = strings.TrimRight(config.APIURL, "/")

	return &clientImpl{
		requester: &requester.Requester{
			HTTPClient: config.HTTPClient,
			Logger:     config.Logger,
		},
		config: *config,
	}
}

// Chat 实现了 spec.Client 接口的方法
func (c *clientImpl) Chat(ctx context.Context, prompt string, opts ...spec.Option) (spec.ChatResponse, error) {
	cfg := spec.NewRequestConfig().Apply(opts...)
	return c.Prompt(ctx, spec.NewPromptRequest(prompt, c.config.Model, cfg))
}

// Prompt 实现了 spec.Client 接口的方法
func (c *clientImpl) Prompt(ctx context.Context, req *spec.PromptRequest) (spec.ChatResponse, error) {
	if req.Model == "" {
		copied := *req
		copied.Model = c.config.Model
		req = &copied
	}

	var out spec.ChatResponse
	if err := c.requester.Post(ctx, c.config.APIURL+"/prompt", c.headers(), req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Balance 实现了 spec.Client 接口的方法
func (c *clientImpl) Balance(ctx context.Context) (*spec.BalanceResponse, error) {
	var out spec.BalanceResponse
	if err := c.requester.Get(ctx, c.config.APIURL+"/balance", c.headers(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) headers() http.Header {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Bearer "+c.config.APIKey)
	return headers
}

var _ spec.Client = (*clientImpl)(nil)
