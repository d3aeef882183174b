package greeting

import "go.uber.org/fx"

// Module provides the greeting resolver and handler.
func Module() fx.Option {
	return fx.Module(
		"greeting",

		// provide resolver
		fx.Provide(NewResolver),

		// provide greeting handler
		fx.Provide(NewGreetingHandler),
	)
}
