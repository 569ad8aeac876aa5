package widget

// Base holds the attributes every widget inherits: identity, styling and the
// topic lists the client runtime publishes on lifecycle events. Nil fields
// are unset.
type Base struct {
	ID       *string
	Name     *string
	CSSClass *string
	CSSStyle *string
	Title    *string

	OnBeforeTopics   *string
	OnCompleteTopics *string
	OnSuccessTopics  *string
	OnErrorTopics    *string
	OnAlwaysTopics   *string
	OnChangeTopics   *string
	OnEnableTopics   *string
	OnDisableTopics  *string
}

// BaseAttributes declares the inherited attributes.
func BaseAttributes() []Attribute {
	return []Attribute{
		{Name: "id", Kind: KindString, Description: "The id to assign to the component."},
		{Name: "name", Kind: KindString, Description: "The name to set for the element."},
		{Name: "cssClass", Kind: KindString, Description: "The css class to use for the element."},
		{Name: "cssStyle", Kind: KindString, Description: "The css style to use for the element."},
		{Name: "title", Kind: KindString, Description: "Set the html title attribute on the rendered element."},
		{Name: "onBeforeTopics", Kind: KindString, Description: "Topics that are published before a load."},
		{Name: "onCompleteTopics", Kind: KindString, Description: "Topics that are published after a load."},
		{Name: "onSuccessTopics", Kind: KindString, Description: "Topics that are published after a successful load."},
		{Name: "onErrorTopics", Kind: KindString, Description: "Topics that are published after a load error."},
		{Name: "onAlwaysTopics", Kind: KindString, Description: "Topics that are published always after a load."},
		{Name: "onChangeTopics", Kind: KindString, Description: "Topics that are published when the element changes."},
		{Name: "onEnableTopics", Kind: KindString, Description: "Topics that are published when the element is enabled."},
		{Name: "onDisableTopics", Kind: KindString, Description: "Topics that are published when the element is disabled."},
	}
}

// Bindings lists the inherited attributes in resolution order.
func (b Base) Bindings() []Binding {
	return []Binding{
		{Key: "id", Raw: b.ID, Kind: KindString},
		{Key: "name", Raw: b.Name, Kind: KindString},
		{Key: "cssClass", Raw: b.CSSClass, Kind: KindString},
		{Key: "cssStyle", Raw: b.CSSStyle, Kind: KindString},
		{Key: "title", Raw: b.Title, Kind: KindString},
		{Key: "onBeforeTopics", Raw: b.OnBeforeTopics, Kind: KindString},
		{Key: "onCompleteTopics", Raw: b.OnCompleteTopics, Kind: KindString},
		{Key: "onSuccessTopics", Raw: b.OnSuccessTopics, Kind: KindString},
		{Key: "onErrorTopics", Raw: b.OnErrorTopics, Kind: KindString},
		{Key: "onAlwaysTopics", Raw: b.OnAlwaysTopics, Kind: KindString},
		{Key: "onChangeTopics", Raw: b.OnChangeTopics, Kind: KindString},
		{Key: "onEnableTopics", Raw: b.OnEnableTopics, Kind: KindString},
		{Key: "onDisableTopics", Raw: b.OnDisableTopics, Kind: KindString},
	}
}

// Evaluate writes the inherited attributes into h.
func (b Base) Evaluate(h *Helper) error {
	return h.ResolveAll(b.Bindings())
}

// Set assigns an inherited attribute by name. It reports false for names Base
// does not declare.
func (b *Base) Set(name, value string) bool {
	field := b.field(name)
	if field == nil {
		return false
	}
	*field = &value
	return true
}

func (b *Base) field(name string) **string {
	switch name {
	case "id":
		return &b.ID
	case "name":
		return &b.Name
	case "cssClass":
		return &b.CSSClass
	case "cssStyle":
		return &b.CSSStyle
	case "title":
		return &b.Title
	case "onBeforeTopics":
		return &b.OnBeforeTopics
	case "onCompleteTopics":
		return &b.OnCompleteTopics
	case "onSuccessTopics":
		return &b.OnSuccessTopics
	case "onErrorTopics":
		return &b.OnErrorTopics
	case "onAlwaysTopics":
		return &b.OnAlwaysTopics
	case "onChangeTopics":
		return &b.OnChangeTopics
	case "onEnableTopics":
		return &b.OnEnableTopics
	case "onDisableTopics":
		return &b.OnDisableTopics
	default:
		return nil
	}
}
