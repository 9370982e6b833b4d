package spec

import (
	"errors"
	"fmt"
)

// ErrorKind 区分调用失败的类别，调用方可以据此分支处理，而不必匹配错误文本。
type ErrorKind int

const (
	// KindTransport 表示网络层失败：DNS、连接被拒绝、超时、TLS 等。
	KindTransport ErrorKind = iota + 1
	// KindPaymentRequired 表示服务端返回 402，账户余额不足。
	KindPaymentRequired
	// KindHTTP 表示除 402 以外的非 2xx 状态码。
	KindHTTP
	// KindParse 表示成功响应的响应体不是合法JSON。
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindPaymentRequired:
		return "payment_required"
	case KindHTTP:
		return "http"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// InsufficientBalanceMessage 是 402 响应对应的固定错误信息。
const InsufficientBalanceMessage = "insufficient balance - please top up your wallet"

// ErrPaymentRequired 可以配合 errors.Is 判断余额不足错误。
var ErrPaymentRequired = errors.New(InsufficientBalanceMessage)

// Error 是所有API调用返回的错误类型。
type Error struct {
	Kind       ErrorKind
	StatusCode int // 仅 KindHTTP / KindPaymentRequired 有值

	// 以下字段来自服务端的错误信封（如果能解析的话）
	Code      string
	RequestID string
	Details   map[string]any

	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindPaymentRequired:
		return InsufficientBalanceMessage
	case KindHTTP:
		msg := fmt.Sprintf("API error (status %d)", e.StatusCode)
		if e.Code != "" {
			msg += " [" + e.Code + "]"
		}
		if e.Message != "" {
			msg += ": " + e.Message
		}
		if e.RequestID != "" {
			msg += " (request " + e.RequestID + ")"
		}
		return msg
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is 让所有余额不足错误都能匹配 ErrPaymentRequired。
func (e *Error) Is(target error) bool {
	return target == ErrPaymentRequired && e.Kind == KindPaymentRequired
}

// KindOf 返回错误链中第一个 *Error 的类别，不存在时返回 0。
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind 判断 err 是否属于指定类别。
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
