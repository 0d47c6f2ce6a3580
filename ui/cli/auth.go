// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// auth.go holds the account commands: login, register, logout, whoami and
// token. These are the only commands that change who the client is.

package cli

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/toeirei/rentmaster/internal/api"
	"github.com/toeirei/rentmaster/internal/i18n"
	"github.com/toeirei/rentmaster/internal/model"
	"github.com/toeirei/rentmaster/internal/state"
	"golang.org/x/term"
)

var loginPassword string
var copyToken bool

// readPassword resolves the password for login/register: the --password
// flag wins, then the in-memory mailbox, then an interactive prompt. The
// caller must Clear the mailbox when done.
func readPassword() (string, error) {
	if loginPassword != "" {
		state.PasswordCache.Set([]byte(loginPassword))
		return loginPassword, nil
	}
	if cached := state.PasswordCache.Get(); cached != nil {
		return string(cached), nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("%s", i18n.T("auth.error_no_password"))
	}
	fmt.Print(i18n.T("auth.password_prompt"))
	bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("%s", i18n.T("auth.error_read_password", err))
	}
	state.PasswordCache.Set(bytePassword)
	return string(bytePassword), nil
}

// loginCmd authenticates one of the three roles and establishes the session.
var loginCmd = &cobra.Command{
	Use:   "login <tenant|owner|admin>",
	Short: "Log in and persist the session",
	Long: `Authenticates against the rental service and stores the session
(role, profile, token) in the local database so it survives restarts.

Tenants and house owners log in with --email; administrators with --username.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		role, err := model.ParseRole(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}

		email, _ := cmd.Flags().GetString("email")
		username, _ := cmd.Flags().GetString("username")
		if role == model.RoleAdministrator {
			if username == "" {
				log.Fatalf("%s", i18n.T("auth.error_need_username"))
			}
		} else if email == "" {
			log.Fatalf("%s", i18n.T("auth.error_need_email"))
		}

		password, err := readPassword()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer state.PasswordCache.Clear()

		creds := api.Credentials{EmailAddress: email, Username: username, Password: password}
		if err := authFlow.Login(cmd.Context(), role, creds); err != nil {
			log.Fatalf("%s", i18n.T("auth.login_failed", err))
		}
		fmt.Println(i18n.T("auth.login_success", sessions.Profile().DisplayName(), string(sessions.Role())))
	},
}

// registerCmd creates a tenant or house-owner account. Administrator
// accounts are provisioned server-side and cannot be registered here.
var registerCmd = &cobra.Command{
	Use:   "register <tenant|owner>",
	Short: "Create an account and log in",
	Long: `Registers a new account with the rental service and establishes the
session immediately, exactly like login. Administrator registration is not
available.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		role, err := model.ParseRole(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}

		password, err := readPassword()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer state.PasswordCache.Clear()

		reg := api.Registration{Password: password}
		reg.EmailAddress, _ = cmd.Flags().GetString("email")
		reg.FullName, _ = cmd.Flags().GetString("full-name")
		reg.OwnerName, _ = cmd.Flags().GetString("owner-name")
		reg.MobileNumber, _ = cmd.Flags().GetString("mobile")
		reg.Address, _ = cmd.Flags().GetString("address")

		if reg.EmailAddress == "" {
			log.Fatalf("%s", i18n.T("auth.error_need_email"))
		}

		if err := authFlow.Register(cmd.Context(), role, reg); err != nil {
			log.Fatalf("%s", i18n.T("auth.register_failed", err))
		}
		fmt.Println(i18n.T("auth.register_success", sessions.Profile().DisplayName(), string(sessions.Role())))
	},
}

// logoutCmd clears the session. The server is notified on a best-effort
// basis; the local session is gone either way.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the persisted session",
	Run: func(cmd *cobra.Command, args []string) {
		if !sessions.IsAuthenticated() {
			fmt.Println(i18n.T("auth.not_logged_in"))
			return
		}
		authFlow.Logout(cmd.Context())
		fmt.Println(i18n.T("auth.logout_success"))
	},
}

// whoamiCmd prints the current identity.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session identity",
	Run: func(cmd *cobra.Command, args []string) {
		if !sessions.IsAuthenticated() {
			fmt.Println(i18n.T("auth.not_logged_in"))
			return
		}
		profile := sessions.Profile()
		fmt.Printf("%s: %s\n", i18n.T("whoami.role"), sessions.Role())
		fmt.Printf("%s: %s\n", i18n.T("whoami.name"), profile.DisplayName())
		if profile.EmailAddress != "" {
			fmt.Printf("%s: %s\n", i18n.T("whoami.email"), profile.EmailAddress)
		}
		if profile.MobileNumber != "" {
			fmt.Printf("%s: %s\n", i18n.T("whoami.mobile"), profile.MobileNumber)
		}
	},
}

// tokenCmd prints (or copies) the bearer token, for curl sessions against
// the same service.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print the current bearer token",
	Run: func(cmd *cobra.Command, args []string) {
		if !sessions.IsAuthenticated() {
			log.Fatalf("%s", i18n.T("auth.not_logged_in"))
		}
		if copyToken {
			if err := clipboard.WriteAll(sessions.Token()); err != nil {
				log.Fatalf("%s", i18n.T("token.copy_failed", err))
			}
			fmt.Println(i18n.T("token.copied"))
			return
		}
		fmt.Println(sessions.Token())
	},
}

func init() {
	loginCmd.Flags().String("email", "", "Email address (tenant, house owner)")
	loginCmd.Flags().String("username", "", "Username (administrator)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted when omitted)")

	registerCmd.Flags().String("email", "", "Email address")
	registerCmd.Flags().String("full-name", "", "Full name (tenant)")
	registerCmd.Flags().String("owner-name", "", "Owner name (house owner)")
	registerCmd.Flags().String("mobile", "", "Mobile number")
	registerCmd.Flags().String("address", "", "Postal address")
	registerCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted when omitted)")

	tokenCmd.Flags().BoolVar(&copyToken, "copy", false, "Copy the token to the clipboard instead of printing it")

	loginCmd.PreRunE = setupDefaultServices
	registerCmd.PreRunE = setupDefaultServices
	logoutCmd.PreRunE = setupDefaultServices
	whoamiCmd.PreRunE = setupDefaultServices
	tokenCmd.PreRunE = setupDefaultServices
}
