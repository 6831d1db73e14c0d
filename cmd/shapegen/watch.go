package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/philipparndt/shapegen/internal/config"
	"github.com/philipparndt/shapegen/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [config]",
	Short: "Rebuild a shape document whenever it changes",
	Long: `Build the shape document once, then keep watching it and write the output
again after every change. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "Wait this long after the last change")
}

// rebuilder regenerates a shape document on change. Debounce timers fire on
// their own goroutines, so rebuilds are serialized.
type rebuilder struct {
	mu   sync.Mutex
	path string
	out  io.Writer
}

func (r *rebuilder) rebuild(string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, err := config.Load(r.path)
	if err != nil {
		slog.Error("rebuild failed", "error", err)
		return
	}
	m, err := job.Run()
	if err != nil {
		slog.Error("rebuild failed", "error", err)
		return
	}
	fmt.Fprintf(r.out, "%s Wrote %s (%d faces) to %s\n",
		time.Now().Format(time.TimeOnly), job.Name, m.FaceCount(), job.Output)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()
	r := &rebuilder{path: path, out: out}

	// only the first build is fatal, later failures are logged
	job, err := config.Load(path)
	if err != nil {
		return err
	}
	if _, err := job.Run(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s to %s, watching %s\n", job.Name, job.Output, path)

	fw, err := watcher.NewFileWatcher(watchDebounce)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Watch([]string{path}, r.rebuild); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return fw.Run(ctx)
}

