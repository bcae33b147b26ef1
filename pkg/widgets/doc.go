// Package widgets provides the standard widgets of the rui runtime.
//
// Leaf widgets ([Label], [TextButton], [MenuEntry]) size themselves from
// theme text metrics. Layout containers ([List], [Grid], [Frame],
// [MenuFrame]) combine their children's size rules through the solvers in
// the layout package. Menus ([MenuButton], [SubMenu], [MenuBar]) drive popups
// through the Manager. [Composite] turns child messages into side effects,
// and [Window] is the root of every tree.
//
// Trees are built with constructors:
//
//	count := widgets.NewLabel("0")
//	tree := widgets.NewComposite("Counter",
//	    widgets.NewRow(count,
//	        widgets.NewTextButton("-", -1),
//	        widgets.NewTextButton("+", 1)),
//	).WithMessage(func(mgr *core.Manager, msg any) core.Response {
//	    n += msg.(int)
//	    mgr.SendAction(count.SetText(strconv.Itoa(n)))
//	    return core.None()
//	})
//
// Messages are plain Go values. A message that reaches the Window is a bug
// in the tree: some container must interpret it.
package widgets
