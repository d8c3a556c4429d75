package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/storefront"

	"github.com/spf13/cobra"
)

// readSecret returns flagValue, or the next line of in when the flag is empty.
func readSecret(cmd *cobra.Command, in io.Reader, prompt, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	line, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and store the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			password = readSecret(cmd, cmd.InOrStdin(), "Password: ", password)

			sess, err := storefront.NewAuthenticator(a.client, a.notifier).Login(cmd.Context(), args[0], password)
			if err != nil {
				return WrapExitError(ExitFailure, "login failed", err)
			}
			a.state.Session = sess
			a.state.SelectedAddress = ""
			if err := a.save(); err != nil {
				return err
			}
			return a.out.Line(sess.Username, fmt.Sprintf("Logged in as %s, wallet balance %d", sess.Username, sess.Balance))
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password (read from stdin when omitted)")
	return cmd
}

func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	var password, confirm string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			in := bufio.NewReader(cmd.InOrStdin())
			password = readSecret(cmd, in, "Password: ", password)
			confirm = readSecret(cmd, in, "Confirm password: ", confirm)

			if err := storefront.NewAuthenticator(a.client, a.notifier).Register(cmd.Context(), args[0], password, confirm); err != nil {
				return WrapExitError(ExitFailure, "registration failed", err)
			}
			return a.out.Line(args[0], fmt.Sprintf("Registered %s, now run `qkart login %s`", args[0], args[0]))
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password (read from stdin when omitted)")
	cmd.Flags().StringVar(&confirm, "confirm", "", "password confirmation (read from stdin when omitted)")
	return cmd
}

func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the token and forget the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			logoutErr := storefront.NewAuthenticator(a.client, a.notifier).Logout(cmd.Context(), a.state.Session)
			if logoutErr != nil {
				a.logger.Warn("server-side logout failed", "error", logoutErr)
			}
			a.state.Session = nil
			a.state.SelectedAddress = ""
			if err := a.file.Clear(); err != nil {
				return WrapExitError(ExitCommandError, "cannot remove session file", err)
			}
			return a.out.Line(true, "Logged out")
		},
	}
}
