// Command vtplay spawns an interactive shell inside a pseudo-terminal,
// drives it through a vt510term.Terminal, and prints the rendered HTML line
// deltas as they arrive. It exists to exercise the engine against a real
// shell rather than canned byte sequences.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ptmalm/vt510term"
)

var (
	rows        int
	cols        int
	paletteName string
	maxLines    int
	shellPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vtplay",
	Short: "Drive vt510term against a live shell inside a PTY",
	RunE:  run,
}

func init() {
	rootCmd.Flags().IntVar(&rows, "rows", vt510term.DefaultRows, "terminal rows")
	rootCmd.Flags().IntVar(&cols, "cols", vt510term.DefaultCols, "terminal columns")
	rootCmd.Flags().StringVar(&paletteName, "palette", vt510term.PaletteDefault.Name, "color palette (putty, xterm-l, winxp-l, vscode-l)")
	rootCmd.Flags().IntVar(&maxLines, "max-lines", 2000, "scrollback retention cap (0 = unbounded)")
	rootCmd.Flags().StringVar(&shellPath, "shell", defaultShell(), "shell to launch inside the pty")
}

func defaultShell() string {
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/sh"
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	term := vt510term.New(
		vt510term.WithSize(rows, cols),
		vt510term.WithPaletteName(paletteName),
		vt510term.WithMaxLines(maxLines),
		vt510term.WithBell(loggingBell{logger: logger}),
	)

	shellCmd := exec.Command(shellPath)
	shellCmd.Env = append(os.Environ(), "TERM=vt510term")

	ptmx, err := pty.StartWithSize(shellCmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return fmt.Errorf("start pty: %w", err)
	}
	defer ptmx.Close()

	logger.Info("pty started",
		zap.String("shell", shellPath),
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.String("palette", paletteName),
	)

	resize := make(chan os.Signal, 1)
	signal.Notify(resize, syscall.SIGWINCH)
	go func() {
		for range resize {
			if err := pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)}); err != nil {
				logger.Warn("resize pty failed", zap.Error(err))
			}
		}
	}()

	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			for _, ev := range term.Update(buf[:n]) {
				switch ev.Kind {
				case vt510term.EventLineChanged:
					fmt.Printf("line %d: %s\n", ev.LineID, ev.Rendered)
				case vt510term.EventResponse:
					if _, werr := ptmx.Write(ev.Response); werr != nil {
						logger.Warn("write response to pty failed", zap.Error(werr))
					}
				case vt510term.EventUnsupported:
					logger.Debug("unsupported sequence", zap.String("raw", ev.Raw))
				}
			}
		}
		if err != nil {
			if err == io.EOF {
				logger.Info("shell exited")
				return nil
			}
			return fmt.Errorf("read pty: %w", err)
		}
	}
}

// loggingBell rings via structured log, standing in for whatever host-side
// audible/visual bell a real frontend would wire (spec.md §6 BellProvider).
type loggingBell struct {
	logger *zap.Logger
}

func (b loggingBell) Ring() {
	b.logger.Debug("bell")
}
