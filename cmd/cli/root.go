// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	errorColor    = color.New(color.FgRed)
	emptyColor    = color.New(color.FgRed, color.Bold)
	warnColor     = color.New(color.FgYellow)
	successColor  = color.New(color.FgGreen)
	headerColor   = color.New(color.FgGreen, color.Bold)
	indexColor    = color.New(color.FgCyan, color.Bold)
	categoryColor = color.New(color.FgBlue)
	textColor     = color.New(color.FgWhite)
)

var rootCmd = &cobra.Command{
	Use:   `heard ["note text" : category | --list [category] | --edit INDEX "text" : category | --remove INDEX]`,
	Short: "Keep short notes tagged by category",
	Long: `heard appends short text notes tagged with a category to ~/.heard/notes.json
and lists, edits or removes them by their position in the list.

Optional settings live in ~/.heard/config.yaml (store_file, log_level, color).`,
	Example: `  heard "Buy milk" : shopping
  heard --list
  heard -l work
  heard --edit 2 "Send report" : work
  heard --remove 1`,
	// The argument grammar is positional and uses ":" and "--r" tokens, so
	// every argument is handed to the dispatcher untouched.
	DisableFlagParsing: true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	SilenceErrors:      true,
	SilenceUsage:       true,
	Run:                runNotes,
}

func runNotes(cmd *cobra.Command, args []string) {
	home, err := os.UserHomeDir()
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	env, err := setup(home)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer env.Close()

	a := &app{
		service: env.service,
		stdout:  cmd.OutOrStdout(),
		stderr:  cmd.ErrOrStderr(),
	}
	if code := a.run(args); code != 0 {
		env.Close()
		os.Exit(code)
	}
}

// cobra adds hidden shell completion commands when the first argument names
// one of them. Those words are note text here.
func isCompletionRequest(args []string) bool {
	return len(args) > 0 &&
		(args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd)
}

// Execute runs the root command against os.Args.
func Execute() {
	if args := os.Args[1:]; isCompletionRequest(args) {
		runNotes(rootCmd, args)
		return
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
