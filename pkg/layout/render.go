package layout

import "context"

// Render builds the tab bar props and hands them to container. The active
// tab's view is rendered with the current params and every navigator; header
// hrefs are the paths a click would navigate to. OnChange dispatches through
// Change with ctx.
func (c *Controller[N]) Render(ctx context.Context, container TabContainer[N]) N {
	tabs := c.Tabs()
	active := c.ActiveKey()
	params := c.Params()
	navigators := c.Navigators()

	headers := make([]TabHeader, 0, len(tabs))
	var body N
	for _, t := range tabs {
		href, err := c.PathFor(t.Key, params)
		if err != nil {
			// Strict mode refuses to build the path; the header stays inert.
			href = ""
		}
		headers = append(headers, TabHeader{
			Key:    t.Key,
			Title:  t.Title,
			Href:   href,
			Active: t.Key == active,
		})
		if t.Key == active && t.View != nil {
			body = t.View.View(ViewProps{Params: params, Navigators: navigators})
		}
	}

	return container.TabContainer(TabContainerProps[N]{
		ActiveKey: active,
		Tabs:      headers,
		OnChange: func(key string) {
			_ = c.Change(ctx, key)
		},
		Params: params,
		Body:   body,
	})
}
