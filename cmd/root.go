package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/greeter/config"
	"github.com/lambda-feedback/greeter/internal/shell"
	"github.com/lambda-feedback/greeter/util/conf"
	"github.com/lambda-feedback/greeter/util/logging"
)

var (
	appName  = "greeter"
	appUsage = `An HTTP triggered function that greets the caller, either
by the name passed in the query string or in the request body.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			// general flags
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.PathFlag{
				Name:    "config",
				Usage:   "load configuration from a json or yaml file.",
				EnvVars: []string{"CONFIG_FILE"},
			},
			&cli.PathFlag{
				Name:    "env-file",
				Usage:   "load configuration from a dotenv file.",
				EnvVars: []string{"ENV_FILE"},
			},
			// function flags
			&cli.StringFlag{
				Name:     "function-key",
				Usage:    "require this key in the x-functions-key header or the code query parameter.",
				Category: "function",
				EnvVars:  []string{"FUNCTION_KEY"},
			},
			&cli.StringFlag{
				Name:     "route-prefix",
				Usage:    "additionally serve the function below this prefix, e.g. /api/hello.",
				Category: "function",
				EnvVars:  []string{"ROUTE_PREFIX"},
			},
		},
		Before: func(ctx *cli.Context) error {
			// parse config using defaults, files, env and flags
			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli:      ctx,
				CliMap:   rootCliMap,
				Defaults: config.DefaultConfig,
				FileName: ctx.Path("config"),
				EnvFile:  ctx.Path("env-file"),
			})
			if err != nil {
				return err
			}

			// create the logger
			log, err := logging.New(logging.Options{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				App:    appName,
			})
			if err != nil {
				return err
			}

			// inject logger and config into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			// Before may have failed before the logger was created
			if log, err := logging.LoggerFromContext(ctx.Context); err == nil {
				_ = log.Sync()
			}

			return nil
		},
	}

	// rootCliMap maps root flags onto nested config keys
	rootCliMap = map[string]string{
		"function-key": "auth.key",
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time

	// OnExit runs right before the process exits.
	OnExit func()
}

func Execute(params ExecuteParams) {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	code := run(context.Background(), os.Args)

	if params.OnExit != nil {
		params.OnExit()
	}

	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	return exitCode(os.Stderr, rootApp.RunContext(ctx, args))
}

// exitCode reports err on w and maps it to a process exit code.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	// the shell logs its own failures before exiting
	if !shell.IsExitError(err) {
		fmt.Fprintf(w, "exit error: %s\n", err.Error())
	}

	return shell.ExitCode(err)
}
