// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/passport-api/models"
	"github.com/spf13/cobra"
)

var (
	errNoChanges        = errors.New("nothing to update, pass at least one of --first-name, --last-name, --email")
	errNotConfirmed     = errors.New("refusing to delete the account without --yes")
	errPasswordRequired = errors.New("password is required")
)

func (a *App) registerCommand() *cobra.Command {
	var request models.RegisterRequest

	cmd := &cobra.Command{
		Use:     "register",
		Short:   "Create an account and start a session.",
		Example: "passport-cli register --email ana@example.com --first-name Ana --last-name Lopez",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := passwordFromFlagOrPrompt(cmd, request.Password)
			if err != nil {
				return err
			}
			request.Password = password

			resp, err := a.server.Register(cmd.Context(), request)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp.User)
		},
	}

	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "account password, prompted for when omitted")
	cmd.Flags().StringVar(&request.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&request.LastName, "last-name", "", "last name")

	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var request models.LoginRequest

	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Start a session.",
		Example: "passport-cli login --email ana@example.com --remember",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := passwordFromFlagOrPrompt(cmd, request.Password)
			if err != nil {
				return err
			}
			request.Password = password

			resp, err := a.server.Login(cmd.Context(), request)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp.User)
		},
	}

	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "account password, prompted for when omitted")
	cmd.Flags().BoolVar(&request.RememberMe, "remember", false, "keep the session beyond the browser session")

	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.server.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func (a *App) profileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the logged-in user.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.server.Profile(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, user)
		},
	}
}

func (a *App) updateProfileCommand() *cobra.Command {
	var firstName, lastName, email string

	cmd := &cobra.Command{
		Use:     "update-profile",
		Short:   "Change the name or email of the logged-in user.",
		Example: "passport-cli update-profile --last-name Vidal",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// only flags given on the command line are sent
			var request models.UpdateProfileRequest
			if cmd.Flags().Changed("first-name") {
				request.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				request.LastName = &lastName
			}
			if cmd.Flags().Changed("email") {
				request.Email = &email
			}
			if request.FirstName == nil && request.LastName == nil && request.Email == nil {
				return errNoChanges
			}

			user, err := a.server.UpdateProfile(cmd.Context(), request)
			if err != nil {
				return err
			}
			return printJSON(cmd, user)
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "new first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "new last name")
	cmd.Flags().StringVar(&email, "email", "", "new email")

	return cmd
}

func (a *App) deleteAccountCommand() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "delete-account",
		Short: "Delete the logged-in user permanently.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return errNotConfirmed
			}
			if err := a.server.DeleteAccount(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "account deleted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the deletion")

	return cmd
}

func (a *App) deleteUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete-user [id]",
		Short:   "Delete another user. Requires an admin session.",
		Example: "passport-cli delete-user 42",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || userID <= 0 {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			if err = a.server.DeleteUser(cmd.Context(), userID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %d deleted\n", userID)
			return nil
		},
	}
}

func (a *App) healthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show the server and database status.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.server.Health(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, status)
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the client build and the server version.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", a.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", a.buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", a.buildInfo.BuildCommit())

			serverVersion, err := a.server.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Server version: %s\n", serverVersion)
			return nil
		},
	}
}

// passwordFromFlagOrPrompt returns flagValue or reads one line from stdin.
func passwordFromFlagOrPrompt(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return "", errPasswordRequired
	}

	password := strings.TrimRight(scanner.Text(), "\r")
	if password == "" {
		return "", errPasswordRequired
	}
	return password, nil
}
