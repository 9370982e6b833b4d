package requester

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ievan-lhr/go-chat402-client/spec"
)

// Requester 封装了执行HTTP请求和状态码分类的通用逻辑。
type Requester struct {
	HTTPClient *http.Client
	Logger     *log.Logger
}

// errorEnvelope 是服务端非 2xx 响应的标准格式。
type errorEnvelope struct {
	Success bool `json:"success"`
	Error   *struct {
		Code      string         `json:"code"`
		Message   string         `json:"message"`
		Details   map[string]any `json:"details"`
		RequestID string         `json:"requestId"`
	} `json:"error"`
}

// Post 方法发送一个JSON POST请求，并把成功响应解码到 out 中。
func (r *Requester) Post(ctx context.Context, url string, headers http.Header, requestBody, out any) error {
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return fmt.Errorf("requester: failed to marshal request body: %w", err)
	}
	return r.do(ctx, http.MethodPost, url, headers, bytes.NewReader(jsonBody), out)
}

// Get 方法发送一个GET请求，并把成功响应解码到 out 中。
func (r *Requester) Get(ctx context.Context, url string, headers http.Header, out any) error {
	return r.do(ctx, http.MethodGet, url, headers, nil, out)
}

func (r *Requester) do(ctx context.Context, method, url string, headers http.Header, body io.Reader, out any) error {
	logger := r.logger().With("id", uuid.NewString(), "method", method, "url", url)

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("requester: failed to create request: %w", err)
	}
	// 设置请求头
	for k, v := range headers {
		httpReq.Header[k] = v
	}

	start := time.Now()
	resp, err := r.client().Do(httpReq)
	if err != nil {
		logger.Debug("request failed", "err", err, "duration", time.Since(start))
		return &spec.Error{Kind: spec.KindTransport, Message: "requester: request failed", Err: err}
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Debug("read body failed", "status", resp.StatusCode, "err", err)
		return &spec.Error{Kind: spec.KindTransport, Message: "requester: failed to read response body", Err: err}
	}
	logger.Debug("response", "status", resp.StatusCode, "bytes", len(rawBody), "duration", time.Since(start))

	// 402 的响应体不做解析，直接返回固定信息
	if resp.StatusCode == http.StatusPaymentRequired {
		return &spec.Error{Kind: spec.KindPaymentRequired, StatusCode: resp.StatusCode, Err: spec.ErrPaymentRequired}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return httpError(resp.StatusCode, rawBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		return &spec.Error{Kind: spec.KindParse, Message: "requester: failed to decode response body", Err: err}
	}
	return nil
}

// httpError 构造 KindHTTP 错误，尽量从错误信封中提取诊断信息。
func httpError(status int, rawBody []byte) *spec.Error {
	e := &spec.Error{Kind: spec.KindHTTP, StatusCode: status}

	var env errorEnvelope
	if err := json.Unmarshal(rawBody, &env); err == nil && env.Error != nil {
		e.Code = env.Error.Code
		e.Message = env.Error.Message
		e.Details = env.Error.Details
		e.RequestID = env.Error.RequestID
		return e
	}
	e.Message = strings.TrimSpace(string(rawBody))
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

func (r *Requester) client() *http.Client {
	if r.HTTPClient == nil {
		return http.DefaultClient
	}
	return r.HTTPClient
}

func (r *Requester) logger() *log.Logger {
	if r.Logger == nil {
		return log.New(io.Discard)
	}
	return r.Logger
}
