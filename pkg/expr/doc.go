// Package expr resolves widget attribute values against a render-time
// evaluation context.
//
// An attribute value is either a literal ("true", "1", "Loading...") or holds
// bound expressions written as %{...}. A bound expression is a dotted path
// into Context.Values (or Context.Extras via the "extras." prefix), a quoted
// or numeric literal, or a boolean rule:
//
//	%{user.prefs.tab}
//	%{extras.flags.beta == true && !readonly}
//	tab-%{user.name}
//
// Stack resolves raw strings to typed values; Evaluator evaluates bare rules.
package expr
