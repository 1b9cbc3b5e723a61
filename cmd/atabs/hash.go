package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/atabs/internal/location"
	"github.com/ShayCichocki/atabs/internal/logging"
)

var (
	hashReplace bool
	hashClear   bool
	hashHistory int
)

var hashCmd = &cobra.Command{
	Use:   "hash <file> [fragment]",
	Short: "Show or set the stored fragment of a document",
	Long: `Inspect or change the fragment remembered for a document in the state
database, as used by "atabs view --state".

With only a file, prints the stored fragment and recent history.
With a fragment, stores it as a new history entry, or in place of the
latest one with --replace.

Examples:
  atabs hash guide.html
  atabs hash guide.html faq
  atabs hash guide.html '#install' --replace
  atabs hash guide.html --clear`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runHash,
}

func init() {
	hashCmd.Flags().BoolVar(&hashReplace, "replace", false, "Replace the latest history entry instead of adding one")
	hashCmd.Flags().BoolVar(&hashClear, "clear", false, "Forget the fragment and history")
	hashCmd.Flags().IntVar(&hashHistory, "history", 10, "Number of history entries to show (0 for all)")
}

func runHash(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	if hashClear && len(args) > 1 {
		return fmt.Errorf("--clear takes no fragment")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	key, err := documentKey(path)
	if err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if hashClear {
		if err := db.ClearFragment(key); err != nil {
			return err
		}
		printStatus(out, "✓", "Cleared fragment and history of "+path, color.FgGreen)
		return nil
	}

	if len(args) == 2 {
		hash := location.Normalize(args[1])
		if hash == "" {
			return fmt.Errorf("empty fragment")
		}

		_, groups, err := enhance(path, "", cfg.Tabs, logging.NopLogger())
		if err != nil {
			return err
		}
		if _, ok := findTab(groups, hash); !ok {
			printStatus(out, "⚠", fmt.Sprintf("No tab with id %q in %s", hash, path), color.FgYellow)
		}

		if hashReplace {
			err = db.ReplaceFragment(key, hash)
		} else {
			err = db.AssignFragment(key, hash)
		}
		if err != nil {
			return err
		}
		printStatus(out, "✓", "Stored #"+hash, color.FgGreen)
		return nil
	}

	f, err := db.GetFragment(key)
	if err != nil {
		return err
	}
	if f == nil {
		fmt.Fprintln(out, "(no fragment)")
		return nil
	}
	fmt.Fprintf(out, "#%s\n", f.Hash)

	entries, err := db.ListHistory(key, hashHistory)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	fmt.Fprintln(out, "\nHistory:")
	for _, e := range entries {
		fmt.Fprintf(out, "  %s  #%s\n", e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Hash)
	}
	return nil
}
