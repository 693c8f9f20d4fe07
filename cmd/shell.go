package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/Shivanand-hulikatti/event-registry/internal/config"
	"github.com/Shivanand-hulikatti/event-registry/internal/shell"
)

func newShellCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Manage events and registrations interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := newLogger(cfg())

			c, err := newCore(ctx, cfg(), logger, nil)
			if err != nil {
				return err
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "events> ",
				HistoryFile:     historyFile(),
				HistoryLimit:    500,
				InterruptPrompt: "^C",
				EOFPrompt:       "quit",
				AutoComplete: readline.NewPrefixCompleter(
					readline.PcItem("events"),
					readline.PcItem("show"),
					readline.PcItem("create"),
					readline.PcItem("register"),
					readline.PcItem("registrations"),
					readline.PcItem("stats"),
					readline.PcItem("help"),
					readline.PcItem("quit"),
				),
			})
			if err != nil {
				return fmt.Errorf("start shell: %w", err)
			}
			defer rl.Close()

			sh := shell.New(c.catalog, c.ledger, rl.Stdout())
			fmt.Fprintln(rl.Stdout(), `Event registration shell. Type "help" for commands.`)
			for {
				line, err := rl.Readline()
				if errors.Is(err, readline.ErrInterrupt) {
					if strings.TrimSpace(line) == "" {
						return nil
					}
					continue
				}
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}

				if err := sh.Execute(ctx, line); err != nil {
					if errors.Is(err, shell.ErrQuit) {
						return nil
					}
					return err
				}
			}
		},
	}
}

func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "event-registry-history")
}
