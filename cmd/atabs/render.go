package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/atabs/internal/dom"
	"github.com/ShayCichocki/atabs/internal/location"
	"github.com/ShayCichocki/atabs/pkg/tabs"
)

var (
	renderHash string
	renderOut  string
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Write the enhanced markup of a document",
	Long: `Enhance every tab group of a document and write the resulting HTML.

The output carries the tab lists, ARIA roles and states, and the classes a
browser would see after enhancement. With --hash the tab matching that
fragment is selected.

Examples:
  atabs render guide.html
  atabs render tabs.yaml --out tabs.html
  atabs render guide.html --hash faq`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderHash, "hash", "", "URL fragment to select")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Write to this file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	doc, groups, err := enhance(args[0], renderHash, cfg.Tabs, logger)
	if err != nil {
		return err
	}

	if renderOut == "" {
		return doc.Render(cmd.OutOrStdout())
	}

	f, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", renderOut, err)
	}
	if err := doc.Render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", renderOut, err)
	}

	printStatus(cmd.ErrOrStderr(), "✓", fmt.Sprintf("Wrote %s (%s)", renderOut, pluralGroups(len(groups))), color.FgGreen)
	return nil
}

// enhance loads the document at path and builds a group for every root,
// reading the fragment from hash.
func enhance(path, hash string, opts tabs.Options, logger tabs.Logger) (*dom.Document, []*tabs.Group, error) {
	opts = opts.Normalize()
	doc, err := dom.Load(path, opts)
	if err != nil {
		return nil, nil, err
	}

	host := tabs.Host{Doc: doc, Location: location.NewMemory(hash)}
	var groups []*tabs.Group
	for _, root := range doc.Groups(opts.GroupAttribute) {
		groups = append(groups, tabs.New(root, host, opts, tabs.WithLogger(logger)))
	}
	return doc, groups, nil
}

// findTab returns the group holding the navigable tab whose fragment is
// hash. Disabled tabs never match.
func findTab(groups []*tabs.Group, hash string) (*tabs.Group, bool) {
	hash = location.Normalize(hash)
	for _, g := range groups {
		for _, t := range g.Tabs() {
			if t.ID == hash {
				return g, true
			}
		}
	}
	return nil, false
}

func pluralGroups(n int) string {
	if n == 1 {
		return "1 group"
	}
	return fmt.Sprintf("%d groups", n)
}

// printStatus prints a colored status symbol followed by a message.
func printStatus(w io.Writer, symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Fprintf(w, "%s %s\n", c.Sprint(symbol), message)
}
