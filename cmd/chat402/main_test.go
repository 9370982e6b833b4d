package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ievan-lhr/go-chat402-client/llm"
)

// setupAPI 启动模拟服务端并把 CLI 指向它，返回收到的最后一个请求体
func setupAPI(t *testing.T, status int, body string) *map[string]any {
	t.Helper()
	var last map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		last = nil
		_ = json.Unmarshal(data, &last)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	chdir(t, t.TempDir())
	t.Setenv(llm.EnvAPIURL, srv.URL)
	t.Setenv(llm.EnvAPIKey, "sk_test")
	t.Setenv(llm.EnvModel, "")
	t.Setenv(llm.EnvTimeout, "")
	return &last
}

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	if args == nil {
		// nil 会让 cobra 回退到 os.Args
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRoot_ExamplePrompt(t *testing.T) {
	last := setupAPI(t, http.StatusOK, `{"text":"A blockchain.","cost":{"totalCost":0.000123},"usage":{"totalTokens":42}}`)

	out := run(t, "")
	assert.Equal(t, "Response: A blockchain.\nCost: $0.000123\nTokens: 42\n", out)
	assert.Equal(t, map[string]any{"model": "gpt-3.5-turbo", "prompt": "What is Ethereum?"}, *last)
}

func TestRoot_ErrorsArePrinted(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{http.StatusPaymentRequired, "Error: insufficient balance - please top up your wallet\n"},
		{http.StatusInternalServerError, "Error: API error (status 500): boom\n"},
	}
	for _, tc := range cases {
		setupAPI(t, tc.status, "boom")
		assert.Equal(t, tc.want, run(t, ""))
	}
}

func TestRoot_TransportError(t *testing.T) {
	chdir(t, t.TempDir())
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	t.Setenv(llm.EnvAPIURL, srv.URL)

	out := run(t, "")
	assert.True(t, strings.HasPrefix(out, "Error: requester: request failed"), out)
}

func TestPrompt_ArgsAndFlags(t *testing.T) {
	last := setupAPI(t, http.StatusOK, `{"text":"4","cost":{"totalCost":0},"usage":{"totalTokens":1}}`)

	out := run(t, "", "prompt", "--model", "gpt-4", "--max-tokens", "10", "what", "is", "2+2")
	assert.Contains(t, out, "Response: 4\n")
	assert.Equal(t, map[string]any{"model": "gpt-4", "prompt": "what is 2+2", "maxTokens": float64(10)}, *last)
}

func TestPrompt_FromStdin(t *testing.T) {
	last := setupAPI(t, http.StatusOK, `{"text":"ok"}`)

	out := run(t, "  piped prompt\n", "prompt")
	assert.Contains(t, out, "Response: ok\n")
	assert.Equal(t, "piped prompt", (*last)["prompt"])
}

func TestPrompt_EmptyStdin(t *testing.T) {
	setupAPI(t, http.StatusOK, `{}`)
	out := run(t, "", "prompt")
	assert.Equal(t, "Error: no prompt given (pass text or pipe it on stdin)\n", out)
}

func TestBalance(t *testing.T) {
	setupAPI(t, http.StatusOK, `{"success":true,"data":{"wallets":[{"network":"base","address":"0xabc","balance":{"amount":2,"currency":"USDC"}}],"totalBalance":{"amount":2,"currency":"USDC"}}}`)

	out := run(t, "", "balance")
	assert.Contains(t, out, "Total Balance: $2.00 USDC\n")
	assert.Contains(t, out, "0xabc")
}

func TestConfigFileError(t *testing.T) {
	setupAPI(t, http.StatusOK, `{}`)
	out := run(t, "", "--config", "does-not-exist.yaml")
	assert.True(t, strings.HasPrefix(out, "Error: reading config does-not-exist.yaml"), out)
}

func TestVerboseLogsToStderr(t *testing.T) {
	setupAPI(t, http.StatusOK, `{"text":"x"}`)

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-v"})
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Response: x")
	assert.Contains(t, errOut.String(), "response")
	assert.NotContains(t, errOut.String(), "sk_test")
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "chat402 dev (commit: none)\n", run(t, "", "version"))
}

func TestMain(m *testing.M) {
	// 测试环境里不应读取开发者本机的凭证
	os.Unsetenv(llm.EnvAPIKey)
	color.NoColor = true
	os.Exit(m.Run())
}
