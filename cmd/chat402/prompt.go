package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ievan-lhr/go-chat402-client/llm"
	"github.com/ievan-lhr/go-chat402-client/spec"
)

type promptFlags struct {
	model       string
	maxTokens   int
	temperature float64
}

func (f promptFlags) options(cmd *cobra.Command) []spec.Option {
	var opts []spec.Option
	if f.model != "" {
		opts = append(opts, spec.WithModel(f.model))
	}
	// 只有显式传入的参数才会出现在请求体中
	if cmd.Flags().Changed("max-tokens") {
		opts = append(opts, spec.WithMaxTokens(f.maxTokens))
	}
	if cmd.Flags().Changed("temperature") {
		opts = append(opts, spec.WithTemperature(f.temperature))
	}
	return opts
}

func promptCmd(root *rootOptions) *cobra.Command {
	var flags promptFlags

	cmd := &cobra.Command{
		Use:   "prompt [text...]",
		Short: "Send a prompt and print the reply, cost and token usage",
		Long: `Send a prompt to the Chat402 API.

When no text is given and stdin is not a terminal, the prompt is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if text == "" {
				var err error
				text, err = readStdinPrompt(cmd.InOrStdin())
				if err != nil {
					printError(cmd, err)
					return nil
				}
			}
			return runPrompt(cmd, root, text, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.model, "model", "m", "", "model identifier (default "+spec.DefaultModel+")")
	cmd.Flags().IntVar(&flags.maxTokens, "max-tokens", 0, "maximum tokens to generate")
	cmd.Flags().Float64Var(&flags.temperature, "temperature", 0, "sampling temperature")

	return cmd
}

// runPrompt 发送 prompt 并打印三行结果；任何错误都只打印 "Error: ..."。
func runPrompt(cmd *cobra.Command, root *rootOptions, text string, flags promptFlags) error {
	cfg, err := root.loadConfig(cmd)
	if err != nil {
		printError(cmd, err)
		return nil
	}

	resp, err := llm.Chat(cmd.Context(), text, cfg, flags.options(cmd)...)
	if err != nil {
		printError(cmd, err)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Response: %s\n", resp.Text())
	fmt.Fprintf(out, "Cost: $%.6f\n", resp.TotalCost())
	fmt.Fprintf(out, "Tokens: %d\n", resp.TotalTokens())
	return nil
}

func readStdinPrompt(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errors.New("no prompt given (pass text or pipe it on stdin)")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("no prompt given (pass text or pipe it on stdin)")
	}
	return text, nil
}
