// ABOUTME: Account commands: login, logout, whoami, signup, OTP verification
// ABOUTME: Login normalizes the backend role once and stores the session pair

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/iitgjobs/leadctl/internal/api"
	"github.com/iitgjobs/leadctl/internal/auth"
)

func (a *app) cmdLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when omitted)")
	remember := fs.Bool("remember", false, "keep the session across restarts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		return fmt.Errorf("--email is required")
	}
	if *password == "" {
		fmt.Print("Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		*password = strings.TrimSpace(line)
	}

	result, err := a.client().Login(context.Background(), *email, *password)
	if err != nil {
		return err
	}

	// Normalize the free-form backend role exactly once, at the boundary.
	role, err := auth.ParseRole(result.Role)
	if err != nil {
		return fmt.Errorf("backend returned an unrecognized role: %w", err)
	}

	if err := a.sessions.Login(result.Token, role.String(), *remember); err != nil {
		return err
	}

	color.Green("Logged in as %s (%s)", *email, role)
	switch role {
	case auth.RoleAdmin:
		fmt.Println("Admin commands are available: industries, companies, rawleads, bulk.")
	case auth.RoleLG:
		fmt.Println("LG commands are available: rawlead, today, add-lead.")
	}
	if !*remember {
		fmt.Println("Session is ephemeral; pass --remember to keep it across restarts.")
	}
	return nil
}

func (a *app) cmdLogout() error {
	if err := a.sessions.Logout(); err != nil {
		return err
	}
	color.Green("Logged out. All stored session data was cleared.")
	return nil
}

func (a *app) cmdWhoami() error {
	id, err := a.gate.Require(auth.RoleAny)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Session")
	cyan.Println("  -------")
	fmt.Printf("  Role:   %s\n", id.Role)
	fmt.Printf("  Token:  %s\n", truncate(id.Token, 24))
	fmt.Println()
	return nil
}

func (a *app) cmdSignup(args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when omitted)")
	roleStr := fs.String("role", "LG", "requested role: Admin or LG")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" || *email == "" {
		return fmt.Errorf("--name and --email are required")
	}
	role, err := auth.ParseRole(*roleStr)
	if err != nil {
		return fmt.Errorf("%w (valid roles: %v)", err, auth.ValidRoles)
	}
	if *password == "" {
		fmt.Print("Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		*password = strings.TrimSpace(line)
	}

	msg, err := a.client().Signup(context.Background(), api.SignupParams{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     role.String(),
	})
	if err != nil {
		return err
	}

	color.Green("%s", msg)
	fmt.Println("Confirm with: leadctl verify-otp --email", *email, "--otp <code>")
	return nil
}

func (a *app) cmdVerifyOTP(args []string) error {
	fs := flag.NewFlagSet("verify-otp", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	otp := fs.String("otp", "", "one-time code from the signup email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *otp == "" {
		return fmt.Errorf("--email and --otp are required")
	}

	msg, err := a.client().VerifyOTP(context.Background(), *email, *otp)
	if err != nil {
		return err
	}
	color.Green("%s", msg)
	fmt.Println("You can now sign in: leadctl login --email", *email)
	return nil
}

func (a *app) cmdResendOTP(args []string) error {
	fs := flag.NewFlagSet("resend-otp", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return fmt.Errorf("--email is required")
	}

	msg, err := a.client().ResendOTP(context.Background(), *email)
	if err != nil {
		return err
	}
	color.Green("%s", msg)
	return nil
}

// truncate shortens a string for display.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
