package tabbedpanel

import (
	"github.com/goliatone/go-tabbedpanel/pkg/widget"
)

// Config holds the raw, unresolved attribute values of one tabbed panel. Nil
// fields are unset and produce no parameter. Values may be literals or bound
// expressions; they are resolved by Component.Evaluate.
type Config struct {
	widget.Base

	SelectedTab          *string
	UseSelectedTabCookie *string
	OpenOnMouseover      *string
	Collapsible          *string
	Animate              *string
	Spinner              *string
	Cache                *string
	DisabledTabs         *string
	OnAddTopics          *string
	OnRemoveTopics       *string

	// Theme is accepted for tag compatibility; the widget always renders with
	// ThemeName.
	Theme *string
}

// ConfigOption sets one attribute on a Config.
type ConfigOption func(*Config)

// NewConfig builds a Config from options.
func NewConfig(options ...ConfigOption) Config {
	var cfg Config
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// ConfigFromAttributes builds a Config from tag-style name/value pairs.
// Undeclared names are rejected with widget.ErrUnknownAttribute.
func ConfigFromAttributes(attrs map[string]string) (Config, error) {
	if err := widget.ValidateAttributes("tabbedpanel", Attributes(), attrs); err != nil {
		return Config{}, err
	}
	var cfg Config
	for name, value := range attrs {
		cfg.Set(name, value)
	}
	return cfg, nil
}

// Set assigns an attribute by its tag name and reports whether the name is
// declared.
func (c *Config) Set(name, value string) bool {
	if field := c.field(name); field != nil {
		*field = &value
		return true
	}
	return c.Base.Set(name, value)
}

func (c *Config) field(name string) **string {
	switch name {
	case KeySelectedTab:
		return &c.SelectedTab
	case KeyUseSelectedTabCookie:
		return &c.UseSelectedTabCookie
	case KeyOpenOnMouseover:
		return &c.OpenOnMouseover
	case KeyCollapsible:
		return &c.Collapsible
	case KeyAnimate:
		return &c.Animate
	case KeySpinner:
		return &c.Spinner
	case KeyCache:
		return &c.Cache
	case KeyDisabledTabs:
		return &c.DisabledTabs
	case KeyOnAddTopics:
		return &c.OnAddTopics
	case KeyOnRemoveTopics:
		return &c.OnRemoveTopics
	case "theme":
		return &c.Theme
	default:
		return nil
	}
}

func (c Config) bindings() []widget.Binding {
	return []widget.Binding{
		{Key: KeySelectedTab, Raw: c.SelectedTab, Kind: widget.KindInteger},
		{Key: KeyUseSelectedTabCookie, Raw: c.UseSelectedTabCookie, Kind: widget.KindBoolean},
		{Key: KeyOpenOnMouseover, Raw: c.OpenOnMouseover, Kind: widget.KindBoolean},
		{Key: KeyCollapsible, Raw: c.Collapsible, Kind: widget.KindBoolean},
		{Key: KeyAnimate, Raw: c.Animate, Kind: widget.KindBoolean},
		{Key: KeySpinner, Raw: c.Spinner, Kind: widget.KindString},
		{Key: KeyCache, Raw: c.Cache, Kind: widget.KindBoolean},
		{Key: KeyDisabledTabs, Raw: c.DisabledTabs, Kind: widget.KindString},
		{Key: KeyOnAddTopics, Raw: c.OnAddTopics, Kind: widget.KindString},
		{Key: KeyOnRemoveTopics, Raw: c.OnRemoveTopics, Kind: widget.KindString},
	}
}

func set(field func(*Config) **string, value string) ConfigOption {
	return func(c *Config) {
		*field(c) = &value
	}
}

// WithID sets the element id. When empty a random id is generated.
func WithID(id string) ConfigOption {
	return set(func(c *Config) **string { return &c.ID }, id)
}

// WithName sets the element name.
func WithName(name string) ConfigOption {
	return set(func(c *Config) **string { return &c.Name }, name)
}

// WithCSSClass sets the container css class.
func WithCSSClass(class string) ConfigOption {
	return set(func(c *Config) **string { return &c.CSSClass }, class)
}

// WithCSSStyle sets the container inline style.
func WithCSSStyle(style string) ConfigOption {
	return set(func(c *Config) **string { return &c.CSSStyle }, style)
}

// WithTitle sets the container title.
func WithTitle(title string) ConfigOption {
	return set(func(c *Config) **string { return &c.Title }, title)
}

// WithOnBeforeTopics sets the topics published before a remote load.
func WithOnBeforeTopics(topics string) ConfigOption {
	return set(func(c *Config) **string { return &c.OnBeforeTopics }, topics)
}

// WithOnCompleteTopics sets the topics published after a remote load.
func WithOnCompleteTopics(topics string) ConfigOption {
	return set(func(c *Config) **string { return &c.OnCompleteTopics }, topics)
}

// WithOnSuccessTopics sets the topics published after a successful load.
func WithOnSuccessTopics(topics string) ConfigOption {
	return set(func(c *Config) **string { return &c.OnSuccessTopics }, topics)
}

// WithOnErrorTopics sets the topics published after a failed load.
func WithOnErrorTopics(topics string) ConfigOption {
	return set(func(c *Config) **string { return &c.OnErrorTopics }, topics)
}

// WithOnAlwaysTopics sets the topics published after every load.
func WithOnAlwaysTopics(topics string) ConfigOption {
	return set(func(c *Config) **string { return &c.OnAlwaysTopics }, topics)
}

// WithOnChangeTopics sets the topics published when the selected tab changes.
func WithOnChangeTopics(topics string) ConfigOption {
	return set(func(c *Config) **string { return &c.OnChangeTopics }, topics)
}

// WithOnEnableTopics sets the topics published when a tab is enabled.
func WithOnEnableTopics(topics string) ConfigOption {
	return set(func(c *Config) **string { return &c.OnEnableTopics }, topics)
}

// WithOnDisableTopics sets the topics published when a tab is disabled.
func WithOnDisableTopics(topics string) ConfigOption {
	return set(func(c *Config) **string { return &c.OnDisableTopics }, topics)
}

// WithSelectedTab sets the zero-based index of the initially selected tab.
func WithSelectedTab(index string) ConfigOption {
	return set(func(c *Config) **string { return &c.SelectedTab }, index)
}

// WithUseSelectedTabCookie stores the selected tab in a cookie.
func WithUseSelectedTabCookie(enabled string) ConfigOption {
	return set(func(c *Config) **string { return &c.UseSelectedTabCookie }, enabled)
}

// WithOpenOnMouseover activates tabs on mouseover.
func WithOpenOnMouseover(enabled string) ConfigOption {
	return set(func(c *Config) **string { return &c.OpenOnMouseover }, enabled)
}

// WithCollapsible lets the selected tab be unselected again.
func WithCollapsible(enabled string) ConfigOption {
	return set(func(c *Config) **string { return &c.Collapsible }, enabled)
}

// WithAnimate animates showing and hiding panels.
func WithAnimate(enabled string) ConfigOption {
	return set(func(c *Config) **string { return &c.Animate }, enabled)
}

// WithSpinner sets the HTML shown in a tab title while remote content loads.
func WithSpinner(html string) ConfigOption {
	return set(func(c *Config) **string { return &c.Spinner }, html)
}

// WithCache caches remote tab content after the first load.
func WithCache(enabled string) ConfigOption {
	return set(func(c *Config) **string { return &c.Cache }, enabled)
}

// WithDisabledTabs sets the serialized list of disabled tab indexes, e.g. "[1,2]".
func WithDisabledTabs(list string) ConfigOption {
	return set(func(c *Config) **string { return &c.DisabledTabs }, list)
}

// WithOnAddTopics sets the comma separated topics published when a tab is added.
func WithOnAddTopics(topics string) ConfigOption {
	return set(func(c *Config) **string { return &c.OnAddTopics }, topics)
}

// WithOnRemoveTopics sets the comma separated topics published when a tab is
// removed.
func WithOnRemoveTopics(topics string) ConfigOption {
	return set(func(c *Config) **string { return &c.OnRemoveTopics }, topics)
}

// WithTheme is accepted for compatibility and has no effect on the rendered
// theme.
func WithTheme(theme string) ConfigOption {
	return set(func(c *Config) **string { return &c.Theme }, theme)
}

// WithAttribute sets any declared attribute by tag name; unknown names are
// ignored.
func WithAttribute(name, value string) ConfigOption {
	return func(c *Config) {
		c.Set(name, value)
	}
}
