package handler

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/greeter/greeting"
)

func Module() fx.Option {
	return fx.Module("handler",
		// provide greeting resolver and handler
		greeting.Module(),
		// provide http adapter
		fx.Provide(NewGreetingHandler),
		// provide routes
		fx.Provide(NewGreetingRoutes),
		fx.Provide(NewHealthRoute),
	)
}
