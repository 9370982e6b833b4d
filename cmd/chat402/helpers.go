package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()

// printError 打印 "Error: <message>"，不区分错误类别。
func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n", errorLabel("Error:"), err)
}
