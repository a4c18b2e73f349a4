// ABOUTME: CLI for the lead-management backend: auth, raw-lead workflow, admin
// ABOUTME: Subcommand dispatch with role gating resolved from the session store

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/fatih/color"

	"github.com/iitgjobs/leadctl/internal/api"
	"github.com/iitgjobs/leadctl/internal/auth"
	"github.com/iitgjobs/leadctl/internal/config"
	"github.com/iitgjobs/leadctl/internal/session"
)

const banner = `
 _                _      _   _
| | ___  __ _  __| | ___| |_| |
| |/ _ \/ _' |/ _' |/ __| __| |
| |  __/ (_| | (_| | (__| |_| |
|_|\___|\__,_|\__,_|\___|\__|_|
`

// app wires the config, session store and gate for every command.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	sessions *session.Manager
	gate     *auth.Gate
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	a, err := newApp()
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "login":
		err = a.cmdLogin(args)
	case "logout":
		err = a.cmdLogout()
	case "whoami":
		err = a.cmdWhoami()
	case "signup":
		err = a.cmdSignup(args)
	case "verify-otp":
		err = a.cmdVerifyOTP(args)
	case "resend-otp":
		err = a.cmdResendOTP(args)
	case "rawlead":
		err = a.cmdRawLead(args)
	case "today":
		err = a.cmdToday(args)
	case "add-lead":
		err = a.cmdAddLead(args)
	case "hr":
		err = a.cmdHR(args)
	case "catalog":
		err = a.cmdCatalog(args)
	case "industries":
		err = a.cmdIndustries(args)
	case "companies":
		err = a.cmdCompanies(args)
	case "rawleads":
		err = a.cmdRawLeadPool(args)
	case "bulk":
		err = a.cmdBulk(args)
	case "leads":
		err = a.cmdLeads()
	case "users":
		err = a.cmdUsers()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// newApp loads config, sets up logging, and rehydrates the session.
func newApp() (*app, error) {
	configPath := os.Getenv("LEADCTL_CONFIG")
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	if host := os.Getenv("LEADCTL_HOST"); host != "" {
		cfg.Backend.BaseURL = host
	}

	logger := setupLogger(cfg.Logging)

	durable, err := session.NewDurableStore()
	if err != nil {
		return nil, err
	}
	sessions := session.NewManager(durable, session.NewEphemeralStore(), logger)

	return &app{
		cfg:      cfg,
		logger:   logger,
		sessions: sessions,
		gate:     auth.NewGate(sessions, logger),
	}, nil
}

// setupLogger builds the slog logger from the logging config.
func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// client returns an unauthenticated API client for login/signup calls.
func (a *app) client() *api.Client {
	client := api.NewClient(a.cfg.Backend.BaseURL, a.logger)
	if a.cfg.Backend.Timeout > 0 {
		client.SetHTTPClient(&http.Client{Timeout: a.cfg.Backend.Timeout})
	}
	return client
}

// authedClient passes the gate for the required role and returns a client
// carrying the session token.
func (a *app) authedClient(required auth.Role) (*api.Client, *auth.Identity, error) {
	id, err := a.gate.Require(required)
	if err != nil {
		return nil, nil, err
	}
	client := a.client()
	client.SetToken(id.Token)
	return client, id, nil
}

// reportError prints a failure the way the backend or gate worded it. Gate
// rejections get a login hint instead of a raw error string.
func reportError(err error) {
	switch {
	case isGateError(err):
		color.Red("Error: %v", err)
		fmt.Fprintln(os.Stderr, "Run 'leadctl login' first.")
	case api.IsUnauthorized(err):
		color.Red("Error: %v", err)
		fmt.Fprintln(os.Stderr, "Your session may have expired. Run 'leadctl login' again.")
	default:
		color.Red("Error: %v", err)
	}
}

func isGateError(err error) bool {
	return errors.Is(err, auth.ErrNotAuthenticated) || errors.Is(err, auth.ErrRoleMismatch)
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: leadctl <command> [args]")
	fmt.Println()
	yellow.Println("Account:")
	fmt.Println("  login --email <e> [--password <p>] [--remember]   Sign in")
	fmt.Println("  logout                                            Clear the stored session")
	fmt.Println("  whoami                                            Show the current session")
	fmt.Println("  signup --name <n> --email <e> --role <Admin|LG>   Register an account")
	fmt.Println("  verify-otp --email <e> --otp <code>               Confirm a signup")
	fmt.Println("  resend-otp --email <e>                            Request a fresh code")
	fmt.Println()
	yellow.Println("Lead generation (LG role):")
	fmt.Println("  rawlead                 Work assigned raw leads one at a time")
	fmt.Println("  today                   List the leads you entered today")
	fmt.Println("  today done <id>         Toggle a today-lead's completion status")
	fmt.Println("  add-lead [flags]        Enter a lead manually")
	fmt.Println("  hr --industry-id <id> --company-id <id>   List existing contacts for a company")
	fmt.Println("  catalog <industries|companies <industry-id>>   Browse ids for manual entry")
	fmt.Println()
	yellow.Println("Administration (Admin role):")
	fmt.Println("  industries <list|search|count|add|rename|delete>")
	fmt.Println("  companies <list|add|rename|delete>")
	fmt.Println("  rawleads <list|summary> [--filter k=v ...] [--page N] [--limit N]")
	fmt.Println("  bulk leads <file.xlsx>")
	fmt.Println("  bulk rawleads --industry <name> <file.xlsx>")
	fmt.Println("  leads                   List every lead")
	fmt.Println("  users                   List operator accounts")
	fmt.Println()
	yellow.Println("Environment:")
	fmt.Println("  LEADCTL_HOST     Backend base URL (overrides the config file)")
	fmt.Println("  LEADCTL_CONFIG   Config file path (default: ~/.config/leadctl/config.yaml)")
	fmt.Println()
}
