package cmd

import (
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/greeter/util/logging"
)

const (
	awsLambdaRuntimeEnv       = "AWS_LAMBDA_RUNTIME_API"
	azureCustomHandlerPortEnv = "FUNCTIONS_CUSTOMHANDLER_PORT"
)

var (
	runCmdDescription = `The run command detects the execution environment from the
environment variables and starts the function. This allows the
same binary to be deployed to arbitrary platforms.

If the AWS_LAMBDA_RUNTIME_API environment variable is set, the
AWS Lambda runtime handler is started, matching the behaviour
of the lambda command.

Otherwise, the standalone http server is started. On Azure
Functions, the server listens on FUNCTIONS_CUSTOMHANDLER_PORT.`
	runCmd = &cli.Command{
		Name:        "run",
		Usage:       "Detect execution environment and start the function.",
		Description: runCmdDescription,
		Action:      runAction,
		Flags:       []cli.Flag{},
	}
)

func runAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	if isAWSLambda() {
		log.Info("detected AWS Lambda environment")
		return lambdaAction(ctx)
	}

	if port, ok := azureCustomHandlerPort(); ok {
		log.Info("detected Azure Functions custom handler environment", zap.String("port", port))
		return serveAction(ctx)
	}

	log.Info("detected standalone environment")
	return serveAction(ctx)
}

func isAWSLambda() bool {
	env, ok := os.LookupEnv(awsLambdaRuntimeEnv)
	return ok && env != ""
}

func azureCustomHandlerPort() (string, bool) {
	port, ok := os.LookupEnv(azureCustomHandlerPortEnv)
	return port, ok && port != ""
}

func init() {
	runCmd.Flags = append(runCmd.Flags, serveCmd.Flags...)
	runCmd.Flags = append(runCmd.Flags, lambdaCmd.Flags...)

	rootApp.Commands = append(rootApp.Commands, runCmd)
}
