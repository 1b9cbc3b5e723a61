package tabs

// Orientation is the axis along which a tab list is laid out.
type Orientation string

const (
	// Horizontal lists map Left/Right to previous/next.
	Horizontal Orientation = "horizontal"
	// Vertical lists map Up/Down to previous/next.
	Vertical Orientation = "vertical"
)

// ParseOrientation returns the orientation named by s.
func ParseOrientation(s string) (Orientation, bool) {
	switch Orientation(s) {
	case Horizontal, Vertical:
		return Orientation(s), true
	default:
		return "", false
	}
}

// Options configures the markup a Group reads and the markup it generates.
// A Group copies its Options when constructed; later changes to the caller's
// value never reach a live group.
type Options struct {
	// BaseID prefixes generated group ids.
	BaseID string `mapstructure:"base_id"`
	// DefaultTabLabel prefixes the generated "Tab N" label.
	DefaultTabLabel string `mapstructure:"default_tab_label"`

	// GroupAttribute marks a group root in a document.
	GroupAttribute string `mapstructure:"group_attribute"`
	// PanelAttribute marks a direct child as a panel.
	PanelAttribute string `mapstructure:"panel_attribute"`
	// DefaultPanelValue is the PanelAttribute value of a declared default panel.
	DefaultPanelValue string `mapstructure:"default_panel_value"`
	// PanelWrapperAttribute marks an element that holds the panels instead of the root.
	PanelWrapperAttribute string `mapstructure:"panel_wrapper_attribute"`
	// TabListAttribute marks an existing element to reuse as the tab list.
	TabListAttribute string `mapstructure:"tab_list_attribute"`
	// TabLabelAttribute overrides the label of a panel's tab.
	TabLabelAttribute string `mapstructure:"tab_label_attribute"`
	// HeadingAttribute marks the element whose text becomes the label.
	HeadingAttribute string `mapstructure:"heading_attribute"`
	// HeadingKeepValue keeps a heading in place after its text is used.
	HeadingKeepValue string `mapstructure:"heading_keep_value"`
	// CustomTabClassAttribute names an extra class for a panel's tab.
	CustomTabClassAttribute string `mapstructure:"custom_tab_class_attribute"`
	// DisabledAttribute marks a panel whose tab can never be activated.
	DisabledAttribute string `mapstructure:"disabled_attribute"`
	// OrientationAttribute overrides DefaultOrientation on a root.
	OrientationAttribute string `mapstructure:"orientation_attribute"`
	// ManualAttribute turns on manual activation for a root.
	ManualAttribute string `mapstructure:"manual_attribute"`
	// CloseableAttribute turns on close controls for a root.
	CloseableAttribute string `mapstructure:"closeable_attribute"`
	// TOCAttribute names the id of a table of contents to remove.
	TOCAttribute string `mapstructure:"toc_attribute"`

	GroupClass          string `mapstructure:"group_class"`
	TabListClass        string `mapstructure:"tab_list_class"`
	TabListWrapperClass string `mapstructure:"tab_list_wrapper_class"`
	TabWrapperClass     string `mapstructure:"tab_wrapper_class"`
	TabClass            string `mapstructure:"tab_class"`
	CloseClass          string `mapstructure:"close_class"`
	PanelClass          string `mapstructure:"panel_class"`
	SelectedClass       string `mapstructure:"selected_class"`
	FocusedClass        string `mapstructure:"focused_class"`

	// CloseLabel is the accessible name of close controls.
	CloseLabel string `mapstructure:"close_label"`

	DefaultOrientation Orientation `mapstructure:"default_orientation"`
	Manual             bool        `mapstructure:"manual"`
	Closeable          bool        `mapstructure:"closeable"`
}

// DefaultOptions returns a fresh copy of the default configuration.
func DefaultOptions() Options {
	return Options{
		BaseID:          "atab_",
		DefaultTabLabel: "Tab ",

		GroupAttribute:          "data-atabs",
		PanelAttribute:          "data-atabs-panel",
		DefaultPanelValue:       "default",
		PanelWrapperAttribute:   "data-atabs-panel-wrap",
		TabListAttribute:        "data-atabs-list",
		TabLabelAttribute:       "data-atabs-tab-label",
		HeadingAttribute:        "data-atabs-heading",
		HeadingKeepValue:        "keep",
		CustomTabClassAttribute: "data-atabs-tab-class",
		DisabledAttribute:       "data-atabs-disabled",
		OrientationAttribute:    "data-atabs-orientation",
		ManualAttribute:         "data-atabs-manual",
		CloseableAttribute:      "data-atabs-closeable",
		TOCAttribute:            "data-atabs-toc",

		GroupClass:          "atabs",
		TabListClass:        "atabs__list",
		TabListWrapperClass: "atabs__list__wrapper",
		TabWrapperClass:     "atabs__list__tabwrapper",
		TabClass:            "atabs__list__tab",
		CloseClass:          "atabs__list__close",
		PanelClass:          "atabs__panel",
		SelectedClass:       "selected",
		FocusedClass:        "focused",

		CloseLabel: "Close tab",

		DefaultOrientation: Horizontal,
	}
}

// Normalize fills every empty field from DefaultOptions, so a partially
// populated value (for example one decoded from a config file) is usable.
func (o Options) Normalize() Options {
	d := DefaultOptions()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}

	fill(&o.BaseID, d.BaseID)
	fill(&o.DefaultTabLabel, d.DefaultTabLabel)
	fill(&o.GroupAttribute, d.GroupAttribute)
	fill(&o.PanelAttribute, d.PanelAttribute)
	fill(&o.DefaultPanelValue, d.DefaultPanelValue)
	fill(&o.PanelWrapperAttribute, d.PanelWrapperAttribute)
	fill(&o.TabListAttribute, d.TabListAttribute)
	fill(&o.TabLabelAttribute, d.TabLabelAttribute)
	fill(&o.HeadingAttribute, d.HeadingAttribute)
	fill(&o.HeadingKeepValue, d.HeadingKeepValue)
	fill(&o.CustomTabClassAttribute, d.CustomTabClassAttribute)
	fill(&o.DisabledAttribute, d.DisabledAttribute)
	fill(&o.OrientationAttribute, d.OrientationAttribute)
	fill(&o.ManualAttribute, d.ManualAttribute)
	fill(&o.CloseableAttribute, d.CloseableAttribute)
	fill(&o.TOCAttribute, d.TOCAttribute)
	fill(&o.GroupClass, d.GroupClass)
	fill(&o.TabListClass, d.TabListClass)
	fill(&o.TabListWrapperClass, d.TabListWrapperClass)
	fill(&o.TabWrapperClass, d.TabWrapperClass)
	fill(&o.TabClass, d.TabClass)
	fill(&o.CloseClass, d.CloseClass)
	fill(&o.PanelClass, d.PanelClass)
	fill(&o.SelectedClass, d.SelectedClass)
	fill(&o.FocusedClass, d.FocusedClass)
	fill(&o.CloseLabel, d.CloseLabel)

	if _, ok := ParseOrientation(string(o.DefaultOrientation)); !ok {
		o.DefaultOrientation = d.DefaultOrientation
	}
	return o
}
