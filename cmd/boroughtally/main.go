// Command boroughtally counts 311 service requests by complaint type and
// borough within an inclusive date window
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"boroughtally/internal/cli"
	perr "boroughtally/internal/platform/errors"
	"boroughtally/internal/platform/logger"

	"github.com/google/uuid"
)

func main() {
	logger.Init(logger.FromEnv())

	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Get().Error().Err(err).Msg("invalid arguments")
		os.Exit(perr.ExitStatus(err))
	}

	ctx := logger.WithRun(context.Background(), uuid.NewString(), opts.Input)
	if err := cli.Run(ctx, opts); err != nil {
		logger.C(ctx).Error().Err(err).Msg("run failed")
		os.Exit(perr.ExitStatus(err))
	}
}
