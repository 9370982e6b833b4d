package spec

// PromptRequest 是 POST /prompt 的请求体。
// 除 Model 和 Prompt 外的字段均为可选，未设置时不会出现在JSON中。
type PromptRequest struct {
	Model            string         `json:"model"`
	Prompt           string         `json:"prompt"`
	MaxTokens        *int           `json:"maxTokens,omitempty"`
	Temperature      *float64       `json:"temperature,omitempty"`
	TopP             *float64       `json:"topP,omitempty"`
	StopSequences    []string       `json:"stopSequences,omitempty"`
	PresencePenalty  *float64       `json:"presencePenalty,omitempty"`
	FrequencyPenalty *float64       `json:"frequencyPenalty,omitempty"`
	User             string         `json:"user,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

// NewPromptRequest 根据请求配置构建请求体。
// cfg.Model 为空时使用 defaultModel。
func NewPromptRequest(prompt, defaultModel string, cfg *RequestConfig) *PromptRequest {
	if cfg == nil {
		cfg = NewRequestConfig()
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &PromptRequest{
		Model:            model,
		Prompt:           prompt,
		MaxTokens:        cfg.MaxTokens,
		Temperature:      cfg.Temperature,
		TopP:             cfg.TopP,
		StopSequences:    cfg.StopSequences,
		PresencePenalty:  cfg.PresencePenalty,
		FrequencyPenalty: cfg.FrequencyPenalty,
		User:             cfg.User,
		Metadata:         cfg.Metadata,
	}
}

// ChatResponse 是 /prompt 成功响应的原始JSON对象，不做任何校验或转换。
// 通常至少包含 text、cost.totalCost 和 usage.totalTokens。
type ChatResponse map[string]any

// Text 返回回复文本。
func (r ChatResponse) Text() string {
	s, _ := r.lookup("text").(string)
	return s
}

// Model 返回实际使用的模型，未返回时为空。
func (r ChatResponse) Model() string {
	s, _ := r.lookup("model").(string)
	return s
}

// TotalCost 返回本次调用的费用。
// 优先读取 cost.totalCost，其次是 cost.amount。
func (r ChatResponse) TotalCost() float64 {
	cost, _ := r.lookup("cost").(map[string]any)
	if v, ok := cost["totalCost"].(float64); ok {
		return v
	}
	v, _ := cost["amount"].(float64)
	return v
}

// TotalTokens 返回 usage.totalTokens。
func (r ChatResponse) TotalTokens() int {
	usage, _ := r.lookup("usage").(map[string]any)
	v, _ := usage["totalTokens"].(float64)
	return int(v)
}

// lookup 先在顶层查找 key，找不到时再查 data 信封。
func (r ChatResponse) lookup(key string) any {
	if v, ok := r[key]; ok {
		return v
	}
	if data, ok := r["data"].(map[string]any); ok {
		return data[key]
	}
	return nil
}

// Amount 是带币种的金额。
type Amount struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Wallet 是一个链上钱包的余额信息。
type Wallet struct {
	Network     string `json:"network"`
	Address     string `json:"address"`
	Balance     Amount `json:"balance"`
	LastUpdated string `json:"lastUpdated"`
}

// BalanceResponse 是 GET /balance 的响应。
type BalanceResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Wallets      []Wallet `json:"wallets"`
		TotalBalance Amount   `json:"totalBalance"`
	} `json:"data"`
	Metadata struct {
		RequestID string `json:"requestId"`
		Timestamp string `json:"timestamp"`
	} `json:"metadata"`
}
