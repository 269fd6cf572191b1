// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/passport-api/internal/adapter"
	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/models"
	"github.com/spf13/cobra"
)

const appName = "passport-cli"

type App struct {
	cfg        config.ClientConfig
	newAdapter AdapterFactory
	buildInfo  models.AppBuildInfo

	server  adapter.ServerAdapter
	verbose bool

	root   *cobra.Command
	logger *logger.Logger
}

// NewApp builds the command tree. cfg holds the environment defaults that
// the global flags may override.
func NewApp(cfg config.ClientConfig, newAdapter AdapterFactory, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	a := &App{
		cfg:        cfg,
		newAdapter: newAdapter,
		buildInfo:  buildInfo,
		logger:     logger,
	}
	a.root = a.rootCommand()
	return a
}

// SetIO redirects the standard streams of every command.
func (a *App) SetIO(in io.Reader, out, errOut io.Writer) {
	a.root.SetIn(in)
	a.root.SetOut(out)
	a.root.SetErr(errOut)
}

func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Command-line client for the passport-api authentication service.",
		Long: `passport-cli talks to a passport-api server.

Register or log in once and the session cookie is reused by the following
commands. Set PASSPORT_API_COOKIE_FILE (or --cookie-file) to keep the
session between invocations.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.connect,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.BaseURL, "url", a.cfg.BaseURL, "passport-api server URL")
	flags.DurationVar(&a.cfg.RequestTimeout, "timeout", a.cfg.RequestTimeout, "request timeout")
	flags.StringVar(&a.cfg.CookieFile, "cookie-file", a.cfg.CookieFile, "file that keeps the session cookie")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log every request")

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.profileCommand(),
		a.updateProfileCommand(),
		a.deleteAccountCommand(),
		a.deleteUserCommand(),
		a.healthCommand(),
		a.versionCommand(),
		a.tuiCommand(),
	)

	return root
}

// connect builds the server adapter from the final configuration.
func (a *App) connect(cmd *cobra.Command, _ []string) error {
	if a.verbose {
		a.logger = logger.NewConsoleLogger(appName, true)
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	server, err := a.newAdapter(a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}
	a.server = server

	a.logger.Debug().Str("url", a.cfg.BaseURL).Msg("client configured")
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	return err
}
