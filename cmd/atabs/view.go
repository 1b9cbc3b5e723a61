package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/atabs/internal/dom"
	"github.com/ShayCichocki/atabs/internal/location"
	"github.com/ShayCichocki/atabs/internal/logging"
	"github.com/ShayCichocki/atabs/internal/state"
	"github.com/ShayCichocki/atabs/internal/tui"
	"github.com/ShayCichocki/atabs/internal/watch"
	"github.com/ShayCichocki/atabs/pkg/tabs"
)

var (
	viewHash    string
	viewWatch   bool
	viewState   bool
	viewNoMouse bool
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse the tab groups of a document",
	Long: `Open a document in the terminal with every tab group enhanced.

Tab and shift+tab move focus, arrow keys move between tabs, enter or space
activates, delete closes a closeable tab. Press ? for all keys.

Examples:
  atabs view guide.html
  atabs view guide.html --hash install   # Start on the #install tab
  atabs view tabs.yaml --watch           # Reload when the manifest changes
  atabs view guide.html --state          # Remember the fragment between runs`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVar(&viewHash, "hash", "", "Initial URL fragment")
	viewCmd.Flags().BoolVar(&viewWatch, "watch", false, "Reload the document when it changes on disk")
	viewCmd.Flags().BoolVar(&viewState, "state", false, "Persist the fragment and history in the state database")
	viewCmd.Flags().BoolVar(&viewNoMouse, "no-mouse", false, "Disable mouse support")
}

func runView(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	var (
		loc    tabs.Location
		stored *state.Location
	)
	if viewState {
		db, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		key, err := documentKey(path)
		if err != nil {
			return err
		}
		l, err := state.NewLocation(db, key)
		if err != nil {
			return fmt.Errorf("reading stored fragment: %w", err)
		}
		l.OnError(func(hash string, err error) {
			logger.Log("[state] write #%s failed: %v", hash, err)
		})
		if viewHash != "" {
			l.AssignHash(location.Normalize(viewHash))
		}
		loc, stored = l, l
	} else {
		mem := location.NewMemory(viewHash)
		mem.OnWrite(func(hash string, replaced bool) {
			logWrite(logger, hash, replaced)
		})
		loc = mem
	}

	opts := tui.Options{
		Load: func() (*dom.Document, error) {
			return dom.Load(path, cfg.Tabs)
		},
		Tabs:     cfg.Tabs,
		Location: loc,
		Logger:   logger,
		Mouse:    cfg.TUI.Mouse && !viewNoMouse,
		ShowHelp: cfg.TUI.ShowHelp,
	}

	if viewWatch {
		w, err := watch.New(path, watch.DefaultDebounce)
		if err != nil {
			return err
		}
		defer w.Close()
		done := make(chan struct{})
		defer close(done)
		go logWatchErrors(w, logger, done)
		opts.Changes = w.Changes()
	}

	// The TUI owns the terminal.
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	if err := tui.Run(opts); err != nil {
		return err
	}
	if stored != nil && stored.Err() != nil {
		return fmt.Errorf("saving fragment: %w", stored.Err())
	}
	return nil
}

func logWrite(logger *logging.DebugLogger, hash string, replaced bool) {
	verb := "assign"
	if replaced {
		verb = "replace"
	}
	logger.Log("[location] %s #%s", verb, hash)
}

func logWatchErrors(w *watch.Watcher, logger *logging.DebugLogger, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case err := <-w.Errors():
			logger.Log("[watch] %v", err)
		}
	}
}
