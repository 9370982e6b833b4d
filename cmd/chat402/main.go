// Package main provides the chat402 CLI entrypoint.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ievan-lhr/go-chat402-client/llm"
)

var (
	version = "dev"
	commit  = "none"
)

// examplePrompt 是不带参数运行时发送的问题。
const examplePrompt = "What is Ethereum?"

// rootOptions 是所有子命令共享的全局参数。
type rootOptions struct {
	configFile string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "chat402",
		Short: "Chat402 - pay-per-prompt LLM API client",
		Long: `chat402 sends prompts to the Chat402 API.

Run without arguments to send an example prompt. The API key is read from
CHAT402_API_KEY (a .env file in the working directory is honoured).`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, opts, examplePrompt, promptFlags{})
		},
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("chat402 %s (commit: %s)\n", version, commit))

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML config file (model, api_url, timeout)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log HTTP exchanges to stderr")

	rootCmd.AddCommand(promptCmd(opts))
	rootCmd.AddCommand(balanceCmd(opts))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// loadConfig 读取配置，并在 --verbose 时挂上调试日志。
func (o *rootOptions) loadConfig(cmd *cobra.Command) (llm.Config, error) {
	cfg, err := llm.LoadConfig(o.configFile)
	if err != nil {
		return cfg, err
	}
	if o.verbose {
		cfg.Logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			Level:           log.DebugLevel,
			Prefix:          "chat402",
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
		})
	}
	return cfg, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chat402 %s (commit: %s)\n", version, commit)
		},
	}
}
