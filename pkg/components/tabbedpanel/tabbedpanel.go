package tabbedpanel

import (
	"fmt"

	"github.com/goliatone/go-tabbedpanel/pkg/params"
	"github.com/goliatone/go-tabbedpanel/pkg/widget"
)

const (
	// JQueryAction is the discriminator the client runtime dispatches on.
	JQueryAction = "tabbedpanel"
	// Template starts the tab container.
	Template = "tabbedpanel"
	// TemplateClose ends the tab container.
	TemplateClose = "tabbedpanel-close"
	// ThemeName is the only theme the widget renders with.
	ThemeName = "jquery"
	// ComponentName identifies the component in registries and logs.
	ComponentName = "github.com/goliatone/go-tabbedpanel/pkg/components/tabbedpanel.Component"
	// IDPrefix prefixes generated ids.
	IDPrefix = "tabbedpanel_"
)

// Parameter keys written by Evaluate.
const (
	KeyJQueryAction         = "jqueryaction"
	KeyID                   = "id"
	KeySelectedTab          = "selectedTab"
	KeyUseSelectedTabCookie = "useSelectedTabCookie"
	KeyOpenOnMouseover      = "openOnMouseover"
	KeyCollapsible          = "collapsible"
	KeyAnimate              = "animate"
	KeySpinner              = "spinner"
	KeyCache                = "cache"
	KeyDisabledTabs         = "disabledTabs"
	KeyOnAddTopics          = "onAddTopics"
	KeyOnRemoveTopics       = "onRemoveTopics"
)

// Option configures a Component.
type Option func(*Component)

// WithIDSource overrides the random draw used for generated ids.
func WithIDSource(source IDSource) Option {
	return func(c *Component) {
		if source != nil {
			c.ids = source
		}
	}
}

// Component is one tabbed panel occurrence. It is built per render pass and
// must not be shared between concurrent renders.
type Component struct {
	cfg Config
	ids IDSource
	id  string
}

var _ widget.Widget = (*Component)(nil)

// New returns a component for cfg.
func New(cfg Config, options ...Option) *Component {
	c := &Component{cfg: cfg, ids: defaultIDSource}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Config returns the configuration the component was built with.
func (c *Component) Config() Config { return c.cfg }

// Name returns the tag name.
func (c *Component) Name() string { return "tabbedpanel" }

// ComponentName returns the fully qualified component name.
func (c *Component) ComponentName() string { return ComponentName }

// Theme always reports the jquery theme; a configured theme is accepted but
// ignored.
func (c *Component) Theme() string { return ThemeName }

// OpenTemplate returns the template that starts the container.
func (c *Component) OpenTemplate() string { return Template }

// CloseTemplate returns the template that ends the container.
func (c *Component) CloseTemplate() string { return TemplateClose }

// Attributes returns the declaration table.
func (c *Component) Attributes() []widget.Attribute { return Attributes() }

// ID returns the live identifier: the resolved author id, or the generated
// fallback once Evaluate has run.
func (c *Component) ID() string { return c.id }

// Evaluate resolves the configured attributes into a fresh parameter map.
// Resolution errors from the evaluation context are returned wrapped; their
// kind is preserved for errors.Is.
func (c *Component) Evaluate(resolver widget.Resolver) (*params.Params, error) {
	h := widget.NewHelper(resolver)

	if err := c.cfg.Base.Evaluate(h); err != nil {
		return nil, fmt.Errorf("tabbedpanel: %w", err)
	}

	h.AddParameter(KeyJQueryAction, JQueryAction)

	if err := h.ResolveAll(c.cfg.bindings()); err != nil {
		return nil, fmt.Errorf("tabbedpanel: %w", err)
	}

	c.id = ""
	if value, ok := h.Params().Get(KeyID); ok {
		c.id, _ = value.(string)
	}
	if c.id == "" {
		c.id = FallbackID(c.ids())
		h.AddParameter(KeyID, c.id)
	}

	return h.Params(), nil
}
