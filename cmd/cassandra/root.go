package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cassandra-launcher/internal/bootstrap"
	"cassandra-launcher/internal/config"
	"cassandra-launcher/internal/launchargs"
	"cassandra-launcher/internal/logging"
	"cassandra-launcher/internal/runtimeenv"
)

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "cassandra [-f] [-h] [-v] [-p pidfile] [-l logdir] [-D key=value]... [-H dumpfile] [-E errorfile]",
		Short:              "Start the Cassandra daemon",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runLauncher,
	}
}

func runLauncher(cmd *cobra.Command, args []string) error {
	req, err := launchargs.Parse(args)
	if err != nil {
		return err
	}
	if req.HelpRequested {
		fmt.Fprint(cmd.OutOrStdout(), launchargs.Usage(cmd.Name()))
		return nil
	}

	cfg, _, _, err := config.Load("")
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = logger.With(logging.String(logging.FieldLaunchID, uuid.NewString()))

	opts := bootstrap.Options{
		Request:     req,
		Environment: runtimeenv.FromLookup(os.LookupEnv),
		Config:      cfg,
		Logger:      logger,
		Stdout:      cmd.OutOrStdout(),
	}
	if req.VersionRequested {
		return bootstrap.Version(cmd.Context(), opts)
	}
	_, err = bootstrap.Run(cmd.Context(), opts)
	return err
}
