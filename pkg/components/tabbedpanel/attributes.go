package tabbedpanel

import "github.com/goliatone/go-tabbedpanel/pkg/widget"

var ownAttributes = []widget.Attribute{
	{Name: KeySelectedTab, Kind: widget.KindInteger, Default: "0", Description: "Number of tab that will be selected by default. e.g. 0 for the first tab or 1 for the second tab."},
	{Name: KeyUseSelectedTabCookie, Kind: widget.KindBoolean, Default: "false", Description: "Store the latest selected tab in a cookie. The cookie is then used to determine the initially selected tab if the selectedTab option is not defined."},
	{Name: KeyOpenOnMouseover, Kind: widget.KindBoolean, Default: "false", Description: "Open Tabs by mouseover event"},
	{Name: KeyCollapsible, Kind: widget.KindBoolean, Default: "false", Description: "Set to true to allow an already selected tab to become unselected again upon reselection"},
	{Name: KeyAnimate, Kind: widget.KindBoolean, Default: "false", Description: "Enable animations for hiding and showing tab panels"},
	{Name: KeySpinner, Kind: widget.KindString, Description: "The HTML content of this string is shown in a tab title while remote content is loading. Pass in empty string to deactivate that behavior."},
	{Name: KeyCache, Kind: widget.KindBoolean, Default: "false", Description: "Whether or not to cache remote tabs content, e.g. load only once or with every click. Cached content is being lazy loaded, e.g once and only once for the first click."},
	{Name: KeyDisabledTabs, Kind: widget.KindString, Description: "An array containing the position of the tabs (zero-based index) that should be disabled on initialization. e.g. [1, 2]"},
	{Name: KeyOnAddTopics, Kind: widget.KindString, Description: "A comma delimited list of topics that published when a tab is added"},
	{Name: KeyOnRemoveTopics, Kind: widget.KindString, Description: "A comma delimited list of topics that published when a tab is removed"},
	{Name: "theme", Kind: widget.KindString, Default: ThemeName, Description: "Accepted for compatibility. The tabbed panel always renders with the jquery theme."},
}

// Attributes returns the tabbed panel declaration table: the inherited
// attributes followed by the panel's own. The id attribute is required at
// declaration level; at render time a missing id is generated.
func Attributes() []widget.Attribute {
	base := widget.BaseAttributes()
	out := make([]widget.Attribute, 0, len(base)+len(ownAttributes))
	for _, attr := range base {
		if attr.Name == KeyID {
			attr.Required = true
		}
		out = append(out, attr)
	}
	return append(out, ownAttributes...)
}
