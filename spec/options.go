package spec

import (
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// DefaultAPIURL 是 Chat402 官方 API 的基础地址。
	DefaultAPIURL = "https://api.chat402.xyz/api/v1"
	// DefaultModel 是未指定模型时使用的模型标识。
	DefaultModel = "gpt-3.5-turbo"
	// DefaultTimeout 是默认 http.Client 的超时时间。
	DefaultTimeout = 30 * time.Second
)

// --- 1. Client Options ---
// 用于在创建客户端时进行配置。

// ClientOption 是一个用于配置Client的函数类型。
type ClientOption func(c *ClientConfig)

// ClientConfig 存储了客户端级别的所有配置。
// 用户通过ClientOption函数来修改它。
type ClientConfig struct {
	APIKey     string
	APIURL     string
	Model      string
	HTTPClient *http.Client
	Logger     *log.Logger
}

// NewClientConfig 创建一个带有默认值的客户端配置。
func NewClientConfig() *ClientConfig {
	return &ClientConfig{
		APIURL:     DefaultAPIURL,
		Model:      DefaultModel,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		// 默认不输出任何日志
		Logger: log.New(io.Discard),
	}
}

// WithAPIKey 设置 bearer 凭证。
// 空字符串也是合法的：请求照常发出，由服务端拒绝。
func WithAPIKey(key string) ClientOption {
	return func(c *ClientConfig) {
		c.APIKey = key
	}
}

// WithAPIURL 覆盖默认的API基础URL（不含 /prompt 等路径）。
func WithAPIURL(url string) ClientOption {
	return func(c *ClientConfig) {
		if url != "" {
			c.APIURL = url
		}
	}
}

// WithDefaultModel 设置客户端级别的默认模型。
func WithDefaultModel(model string) ClientOption {
	return func(c *ClientConfig) {
		if model != "" {
			c.Model = model
		}
	}
}

// WithHTTPClient 允许用户传入一个完全自定义的http.Client。
// 可用于配置自定义Transport、TLS配置或代理。
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *ClientConfig) {
		if client != nil {
			c.HTTPClient = client
		}
	}
}

// WithTimeout 设置当前http.Client的超时时间，0 表示不限制。
// 传入的客户端会被复制，不会被修改。
func WithTimeout(d time.Duration) ClientOption {
	return func(c *ClientConfig) {
		hc := *c.HTTPClient
		hc.Timeout = d
		c.HTTPClient = &hc
	}
}

// WithLogger 设置调试日志的输出目标。
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *ClientConfig) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// --- 2. Request Options ---
// 用于在单次调用Chat方法时，微调该次请求的参数。

// Option 是一个用于配置单次API请求的函数类型。
type Option func(r *RequestConfig)

// RequestConfig 存储了单次请求的所有配置。
// 指针字段为 nil 表示未设置，序列化时会被省略。
type RequestConfig struct {
	Model            string
	MaxTokens        *int
	Temperature      *float64
	TopP             *float64
	StopSequences    []string
	PresencePenalty  *float64
	FrequencyPenalty *float64
	User             string
	Metadata         map[string]any
}

// NewRequestConfig 创建一个空的请求配置。
func NewRequestConfig() *RequestConfig {
	return &RequestConfig{}
}

// Apply 依次应用所有选项并返回结果配置。
func (r *RequestConfig) Apply(opts ...Option) *RequestConfig {
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithModel 在单次请求中设置模型名称。
// 允许临时使用不同于客户端默认模型的其他模型。
func WithModel(model string) Option {
	return func(r *RequestConfig) {
		r.Model = model
	}
}

// WithMaxTokens 设置本次请求生成的最大token数。
func WithMaxTokens(max int) Option {
	return func(r *RequestConfig) {
		r.MaxTokens = &max
	}
}

// WithTemperature 设置生成文本的随机性（温度）。
// 值越高，结果越随机；值越低，结果越确定。
func WithTemperature(temp float64) Option {
	return func(r *RequestConfig) {
		r.Temperature = &temp
	}
}

// WithTopP 设置核心采样的概率阈值。
func WithTopP(topP float64) Option {
	return func(r *RequestConfig) {
		r.TopP = &topP
	}
}

// WithStopSequences 设置停止序列。
func WithStopSequences(stops ...string) Option {
	return func(r *RequestConfig) {
		r.StopSequences = append(r.StopSequences, stops...)
	}
}

func WithPresencePenalty(p float64) Option {
	return func(r *RequestConfig) {
		r.PresencePenalty = &p
	}
}

func WithFrequencyPenalty(p float64) Option {
	return func(r *RequestConfig) {
		r.FrequencyPenalty = &p
	}
}

// WithUser 设置终端用户标识，服务端用于审计。
func WithUser(user string) Option {
	return func(r *RequestConfig) {
		r.User = user
	}
}

// WithMetadata 附加一个map中所有的键值对到 metadata 字段。
// 如果key已存在，则会被覆盖。
func WithMetadata(md map[string]any) Option {
	return func(r *RequestConfig) {
		if r.Metadata == nil {
			r.Metadata = make(map[string]any, len(md))
		}
		for k, v := range md {
			r.Metadata[k] = v
		}
	}
}
