package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	initForce    bool
	initManifest bool
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Initialize an atabs project",
	Long: `Initialize a directory for use with atabs.

This command:
  - Creates the .atabs directory (state database and logs)
  - Writes a .atabs.yaml template
  - Writes a sample document to browse
  - Adds .atabs/ to .gitignore

The directory argument is optional and defaults to the current directory.

Examples:
  atabs init              # Initialize current directory
  atabs init ./docs       # Initialize specific directory
  atabs init --manifest   # Write a YAML manifest sample instead of HTML
  atabs init --force      # Reinitialize even if already set up`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetDir := "."
		if len(args) > 0 {
			targetDir = args[0]
		}
		return initProject(cmd.OutOrStdout(), targetDir, initForce, initManifest)
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Reinitialize even if already set up")
	initCmd.Flags().BoolVar(&initManifest, "manifest", false, "Write a YAML manifest sample instead of HTML")
}

func initProject(out io.Writer, targetDir string, force, manifest bool) error {
	absPath, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("resolving absolute path: %w", err)
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", absPath, err)
	}

	fmt.Fprintf(out, "Initializing atabs in %s...\n\n", absPath)

	atabsDir := filepath.Join(absPath, ".atabs")
	if _, err := os.Stat(atabsDir); err == nil && !force {
		fmt.Fprintln(out, "Directory already initialized. Use --force to reinitialize.")
		return nil
	}

	if err := os.MkdirAll(filepath.Join(atabsDir, "logs"), 0755); err != nil {
		return fmt.Errorf("creating .atabs directory: %w", err)
	}
	printStatus(out, "✓", "Created .atabs directory structure", color.FgGreen)

	created, err := writeIfAbsent(filepath.Join(absPath, ".atabs.yaml"), projectConfigTemplate, force)
	if err != nil {
		return fmt.Errorf("creating project config: %w", err)
	}
	reportFile(out, ".atabs.yaml", created)

	sample, content := "tabs.html", sampleHTML
	if manifest {
		sample, content = "tabs.yaml", sampleManifest
	}
	created, err = writeIfAbsent(filepath.Join(absPath, sample), content, force)
	if err != nil {
		return fmt.Errorf("creating sample document: %w", err)
	}
	reportFile(out, sample, created)

	if err := updateGitignore(absPath); err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	printStatus(out, "✓", "Updated .gitignore", color.FgGreen)

	fmt.Fprintf(out, "\n%s atabs initialization complete!\n\n", color.GreenString("✓"))
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Browse the sample:")
	fmt.Fprintf(out, "     atabs view %s\n", sample)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  2. See the enhanced markup:")
	fmt.Fprintf(out, "     atabs render %s\n", sample)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  3. Learn more:")
	fmt.Fprintln(out, "     atabs --help")
	return nil
}

func reportFile(out io.Writer, name string, created bool) {
	if created {
		printStatus(out, "✓", "Created "+name, color.FgGreen)
		return
	}
	printStatus(out, "⚠", name+" already exists, left unchanged", color.FgYellow)
}

// writeIfAbsent writes content to path unless the file exists and
// overwrite is false. It reports whether the file was written.
func writeIfAbsent(path, content string, overwrite bool) (bool, error) {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, err
	}
	return true, nil
}

// updateGitignore appends the .atabs/ entry if it is missing.
func updateGitignore(dir string) error {
	path := filepath.Join(dir, ".gitignore")
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == ".atabs/" {
			return nil
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	entry := "# atabs\n.atabs/\n"
	if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
		entry = "\n" + entry
	}
	_, err = f.WriteString(entry)
	return err
}

const projectConfigTemplate = `# atabs project configuration
# Overrides ~/.config/atabs/config.yaml for this directory and below.

tabs:
  # Prefix of generated group ids.
  base_id: atab_
  # horizontal or vertical; data-atabs-orientation overrides per group.
  default_orientation: horizontal
  # Move focus without activating; enter or space activates.
  manual: false
  # Add a close control to every tab.
  closeable: false

tui:
  mouse: true
  show_help: true

state:
  # sqlite (pure Go) or sqlite3 (cgo).
  driver: sqlite
  # Empty uses .atabs/state.db here, or the global database elsewhere.
  path: ""

logging:
  # Empty disables the debug log unless --debug is passed.
  path: ""
`

const sampleHTML = `<!DOCTYPE html>
<html>
<head>
  <title>atabs sample</title>
</head>
<body>
  <div data-atabs>
    <section id="overview" data-atabs-panel>
      <h2 data-atabs-heading>Overview</h2>
      <p>Each panel becomes a tab. The heading text becomes its label.</p>
    </section>
    <section id="install" data-atabs-panel="default">
      <h2 data-atabs-heading>Install</h2>
      <p>This panel is selected first because it is marked as the default.</p>
    </section>
    <section id="legacy" data-atabs-panel data-atabs-disabled>
      <h2 data-atabs-heading>Legacy</h2>
      <p>Disabled tabs are shown but can never be activated.</p>
    </section>
  </div>

  <div data-atabs data-atabs-orientation="vertical" data-atabs-closeable>
    <section id="notes" data-atabs-panel data-atabs-tab-label="Notes">
      <p>Vertical groups move with the up and down arrows.</p>
    </section>
    <section id="todo" data-atabs-panel data-atabs-tab-label="Todo">
      <p>Closeable tabs can be removed with delete or the close control.</p>
    </section>
  </div>
</body>
</html>
`

const sampleManifest = `title: atabs sample
groups:
  - id: guide
    panels:
      - id: overview
        heading: Overview
        body: |
          Each panel becomes a tab. The heading text becomes its label.
      - id: install
        heading: Install
        default: true
        body: |
          This panel is selected first because it is marked as the default.
      - id: legacy
        heading: Legacy
        disabled: true
        body: Disabled tabs are shown but can never be activated.
  - id: scratch
    orientation: vertical
    closeable: true
    panels:
      - id: notes
        label: Notes
        body: Vertical groups move with the up and down arrows.
      - id: todo
        label: Todo
        body: Closeable tabs can be removed with delete or the close control.
`
