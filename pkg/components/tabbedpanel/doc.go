// Package tabbedpanel implements the tabbed panel widget. Each tab can hold
// local content or content loaded remotely; tab activation, animation, AJAX
// loading and selected-tab cookies are handled by the client runtime, driven
// by the parameters this package produces.
//
// When useSelectedTabCookie is true the id of the selected tab is saved in a
// cookie on activation and restored on the next visit, unless selectedTab is
// set explicitly.
//
// A minimal panel:
//
//	cfg := tabbedpanel.NewConfig(
//		tabbedpanel.WithID("mytabs"),
//		tabbedpanel.WithAnimate("true"),
//		tabbedpanel.WithUseSelectedTabCookie("true"),
//	)
//	values, err := tabbedpanel.New(cfg).Evaluate(expr.NewStack(expr.Context{}))
package tabbedpanel
