package dom

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
	"golang.org/x/net/html"

	"github.com/ShayCichocki/atabs/pkg/tabs"
)

// Manifest describes a tab document without HTML.
type Manifest struct {
	Title  string          `yaml:"title"`
	Groups []ManifestGroup `yaml:"groups"`
}

// ManifestGroup describes one tab group.
type ManifestGroup struct {
	ID          string          `yaml:"id"`
	Title       string          `yaml:"title"`
	Orientation string          `yaml:"orientation"`
	Manual      bool            `yaml:"manual"`
	Closeable   bool            `yaml:"closeable"`
	Panels      []ManifestPanel `yaml:"panels"`
}

// ManifestPanel describes one panel. Body is plain text split into
// paragraphs on blank lines; HTML, when set, is used verbatim instead.
type ManifestPanel struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Heading     string `yaml:"heading"`
	KeepHeading bool   `yaml:"keep_heading"`
	Default     bool   `yaml:"default"`
	Disabled    bool   `yaml:"disabled"`
	Class       string `yaml:"class"`
	Body        string `yaml:"body"`
	HTML        string `yaml:"html"`
}

// ParseManifest decodes a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	for i, g := range m.Groups {
		if g.Orientation != "" {
			if _, ok := tabs.ParseOrientation(g.Orientation); !ok {
				return nil, fmt.Errorf("group %d: invalid orientation %q", i, g.Orientation)
			}
		}
		if len(g.Panels) == 0 {
			return nil, fmt.Errorf("group %d: no panels", i)
		}
	}
	return &m, nil
}

// FromManifest reads a manifest and builds the markup it describes, using
// the attribute names in opts.
func FromManifest(r io.Reader, opts tabs.Options) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}
	return m.Build(opts)
}

// Build renders the manifest into a new document.
func (m *Manifest) Build(opts tabs.Options) (*Document, error) {
	opts = opts.Normalize()
	d := New()
	body := d.Body()

	if m.Title != "" {
		d.setTitle(m.Title)
		h := d.CreateElement("h1")
		d.SetText(h, m.Title)
		d.AppendChild(body, h)
	}

	for _, g := range m.Groups {
		root := d.CreateElement("div")
		d.SetAttr(root, opts.GroupAttribute, "")
		if g.ID != "" {
			d.SetAttr(root, "id", g.ID)
		}
		if g.Orientation != "" {
			d.SetAttr(root, opts.OrientationAttribute, g.Orientation)
		}
		if g.Manual {
			d.SetAttr(root, opts.ManualAttribute, "")
		}
		if g.Closeable {
			d.SetAttr(root, opts.CloseableAttribute, "")
		}
		if g.Title != "" {
			d.SetAttr(root, "aria-label", g.Title)
		}

		for _, p := range g.Panels {
			panel, err := d.buildPanel(p, opts)
			if err != nil {
				return nil, err
			}
			d.AppendChild(root, panel)
		}
		d.AppendChild(body, root)
	}
	return d, nil
}

func (d *Document) buildPanel(p ManifestPanel, opts tabs.Options) (tabs.Node, error) {
	panel := d.CreateElement("section")
	if p.Default {
		d.SetAttr(panel, opts.PanelAttribute, opts.DefaultPanelValue)
	} else {
		d.SetAttr(panel, opts.PanelAttribute, "")
	}
	if p.ID != "" {
		d.SetAttr(panel, "id", p.ID)
	}
	if p.Label != "" {
		d.SetAttr(panel, opts.TabLabelAttribute, p.Label)
	}
	if p.Disabled {
		d.SetAttr(panel, opts.DisabledAttribute, "")
	}
	if p.Class != "" {
		d.SetAttr(panel, opts.CustomTabClassAttribute, p.Class)
	}

	if p.Heading != "" {
		h := d.CreateElement("h2")
		if p.KeepHeading {
			d.SetAttr(h, opts.HeadingAttribute, opts.HeadingKeepValue)
		} else {
			d.SetAttr(h, opts.HeadingAttribute, "")
		}
		d.SetText(h, p.Heading)
		d.AppendChild(panel, h)
	}

	if p.HTML != "" {
		nodes, err := html.ParseFragment(strings.NewReader(p.HTML), node(panel))
		if err != nil {
			return nil, fmt.Errorf("panel %q: parse html: %w", p.ID, err)
		}
		for _, n := range nodes {
			node(panel).AppendChild(n)
		}
		return panel, nil
	}

	for _, para := range strings.Split(strings.TrimSpace(p.Body), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		el := d.CreateElement("p")
		d.SetText(el, para)
		d.AppendChild(panel, el)
	}
	return panel, nil
}

func (d *Document) setTitle(title string) {
	var head *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "head" {
			head = n
			return false
		}
		return true
	})
	if head == nil {
		return
	}
	t := d.CreateElement("title")
	d.SetText(t, title)
	d.AppendChild(head, t)
}

// IsManifest reports whether path names a YAML manifest.
func IsManifest(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads an HTML document or, for .yaml and .yml files, a manifest.
func Load(path string, opts tabs.Options) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	if IsManifest(path) {
		return FromManifest(f, opts)
	}
	return Parse(f)
}
