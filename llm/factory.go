package llm

import (
	"fmt"
	"sync"

	"github.com/ievan-lhr/go-chat402-client/providers/chat402"
	"github.com/ievan-lhr/go-chat402-client/spec"
)

// clientCache 用于缓存已初始化的客户端，避免重复创建。
// 缓存的是客户端而不是凭证：凭证变化时会得到新的客户端。
var (
	clientCache = make(map[string]spec.Client)
	cacheMutex  = &sync.RWMutex{}
)

// GetClient 负责创建和缓存客户端实例。
func GetClient(cfg Config) (spec.Client, error) {
	cacheKey := fmt.Sprintf("%s|%s|%s|%s|%s|%p", cfg.Provider, cfg.APIURL, cfg.APIKey, cfg.Model, cfg.Timeout, cfg.Logger)

	cacheMutex.RLock()
	client, found := clientCache[cacheKey]
	cacheMutex.RUnlock()

	if found {
		return client, nil
	}

	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	client, found = clientCache[cacheKey]
	if found {
		return client, nil
	}

	clientOpts := []spec.ClientOption{
		spec.WithAPIKey(cfg.APIKey),
		spec.WithAPIURL(cfg.APIURL),
		spec.WithDefaultModel(cfg.Model),
		spec.WithLogger(cfg.Logger),
	}
	if cfg.Timeout > 0 {
		clientOpts = append(clientOpts, spec.WithTimeout(cfg.Timeout))
	}

	var newClient spec.Client
	switch cfg.Provider {
	case "", "chat402":
		newClient = chat402.NewClient(clientOpts...)
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}

	clientCache[cacheKey] = newClient
	return newClient, nil
}

// resetCache 清空客户端缓存（用于测试）。
func resetCache() {
	cacheMutex.Lock()
	clientCache = make(map[string]spec.Client)
	cacheMutex.Unlock()
}
