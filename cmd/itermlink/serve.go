package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/glorko/itermlink/internal/applescript"
	"github.com/glorko/itermlink/internal/config"
	"github.com/glorko/itermlink/internal/iterm"
	"github.com/glorko/itermlink/internal/logging"
	"github.com/glorko/itermlink/internal/mcp"
	"github.com/glorko/itermlink/internal/validator"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log := logging.Setup(cfg.Log.Level)

			// A broken host is worth a warning, not a refusal: the server can
			// still come up under a harness and report failures per call.
			if res := validator.ValidateHost(); !res.Valid() {
				vlog := logging.Component(log, "validator")
				for _, c := range res.Checks {
					if !c.OK {
						vlog.WithField("check", c.Name).Warn(c.Detail)
					}
				}
			}

			runner := applescript.NewShellRunner(cfg.Shell)
			client := iterm.NewClient(runner, logging.Component(log, "iterm"))
			srv := mcp.NewServer(client, cfg, logging.Component(log, "mcp"), os.Stdin, os.Stdout, version)

			logging.Component(log, "mcp").WithField("version", version).Info("serving on stdio")
			return srv.Serve(cmd.Context())
		},
	}
}
