package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(dialects, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(fmtCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(parse, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(tokens, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
