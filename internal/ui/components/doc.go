// Package components renders Semantic-UI class strings in the terminal.
//
// Every component carries the class string a Semantic widget would carry in
// the browser ("ui active visible selection dropdown", "active selected item")
// and the theme maps each class token to a lipgloss modifier. Tokens are
// folded left to right, so the order classnames produced is the order the
// styles are applied in:
//
//	theme := components.DefaultTheme()
//	style := components.ClassStyle("ui primary button", theme)
//	out := style.Render("Done")
//
// Themes are passed explicitly through RenderContext:
//
//	ctx := components.DefaultContext().WithWidth(40)
//	out := components.NewDropdownView(ctrl).WithRows(6).ViewWithContext(ctx)
package components
