// ABOUTME: Admin commands: industry and company catalog, raw-lead pool, bulk
// ABOUTME: All sit behind the Admin role gate

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/iitgjobs/leadctl/internal/api"
	"github.com/iitgjobs/leadctl/internal/auth"
)

func (a *app) cmdIndustries(args []string) error {
	client, _, err := a.authedClient(auth.RoleAdmin)
	if err != nil {
		return err
	}
	ctx := context.Background()

	subcmd := "list"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "list", "ls":
		fs := flag.NewFlagSet("industries list", flag.ExitOnError)
		page := fs.Int("page", 1, "1-based page number")
		if err := fs.Parse(args); err != nil {
			return err
		}
		industries, err := client.ListIndustries(ctx, *page)
		if err != nil {
			return err
		}
		total, err := client.CountIndustries(ctx)
		if err != nil {
			return err
		}
		printIndustries(industries)
		fmt.Printf("  Total industries: %d (page %d)\n\n", total, *page)
		return nil

	case "search":
		if len(args) < 1 {
			return fmt.Errorf("usage: leadctl industries search <name>")
		}
		industries, err := client.SearchIndustries(ctx, args[0])
		if err != nil {
			return err
		}
		printIndustries(industries)
		return nil

	case "count":
		total, err := client.CountIndustries(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Total industries: %d\n", total)
		return nil

	case "add":
		if len(args) < 1 || strings.TrimSpace(args[0]) == "" {
			return fmt.Errorf("usage: leadctl industries add <name>")
		}
		if err := client.CreateIndustry(ctx, strings.TrimSpace(args[0])); err != nil {
			return err
		}
		color.Green("Industry added.")
		return nil

	case "rename":
		if len(args) < 2 {
			return fmt.Errorf("usage: leadctl industries rename <id> <name>")
		}
		if err := client.UpdateIndustry(ctx, args[0], args[1]); err != nil {
			return err
		}
		color.Green("Industry updated.")
		return nil

	case "delete", "rm":
		if len(args) < 1 {
			return fmt.Errorf("usage: leadctl industries delete <id>")
		}
		if err := client.DeleteIndustry(ctx, args[0]); err != nil {
			return err
		}
		color.Green("Industry deleted.")
		return nil

	default:
		return fmt.Errorf("unknown industries subcommand: %s (use list, search, count, add, rename, delete)", subcmd)
	}
}

func printIndustries(industries []api.Industry) {
	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Industries")
	cyan.Println("  ----------")
	if len(industries) == 0 {
		fmt.Println("  (none)")
		fmt.Println()
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tNAME")
	fmt.Fprintln(tw, "  --\t----")
	for _, ind := range industries {
		fmt.Fprintf(tw, "  %s\t%s\n", truncate(ind.ID, 12), ind.Name)
	}
	tw.Flush()
	fmt.Println()
}

func (a *app) cmdCompanies(args []string) error {
	client, _, err := a.authedClient(auth.RoleAdmin)
	if err != nil {
		return err
	}
	ctx := context.Background()

	subcmd := "list"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "list", "ls":
		fs := flag.NewFlagSet("companies list", flag.ExitOnError)
		industryID := fs.String("industry", "", "industry id to list under")
		if err := fs.Parse(args); err != nil {
			return err
		}

		var companies []api.Company
		if *industryID != "" {
			companies, err = client.CompaniesByIndustry(ctx, *industryID)
		} else {
			companies, err = client.ListCompanies(ctx)
		}
		if err != nil {
			return err
		}
		printCompanies(companies)
		return nil

	case "add":
		fs := flag.NewFlagSet("companies add", flag.ExitOnError)
		name := fs.String("name", "", "company name")
		industryID := fs.String("industry", "", "industry id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *name == "" || *industryID == "" {
			return fmt.Errorf("--name and --industry are required")
		}
		if err := client.CreateCompany(ctx, *name, *industryID); err != nil {
			return err
		}
		color.Green("Company created.")
		return nil

	case "rename":
		fs := flag.NewFlagSet("companies rename", flag.ExitOnError)
		name := fs.String("name", "", "new company name")
		industryID := fs.String("industry", "", "industry id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		rest := fs.Args()
		if len(rest) < 1 || *name == "" || *industryID == "" {
			return fmt.Errorf("usage: leadctl companies rename --name <n> --industry <id> <company-id>")
		}
		if err := client.UpdateCompany(ctx, rest[0], *name, *industryID); err != nil {
			return err
		}
		color.Green("Company updated.")
		return nil

	case "delete", "rm":
		if len(args) < 1 {
			return fmt.Errorf("usage: leadctl companies delete <id>")
		}
		if err := client.DeleteCompany(ctx, args[0]); err != nil {
			return err
		}
		color.Green("Company deleted.")
		return nil

	default:
		return fmt.Errorf("unknown companies subcommand: %s (use list, add, rename, delete)", subcmd)
	}
}

func printCompanies(companies []api.Company) {
	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Companies")
	cyan.Println("  ---------")
	if len(companies) == 0 {
		fmt.Println("  (none)")
		fmt.Println()
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tNAME")
	fmt.Fprintln(tw, "  --\t----")
	for _, c := range companies {
		fmt.Fprintf(tw, "  %s\t%s\n", truncate(c.ID, 12), c.Name)
	}
	tw.Flush()
	fmt.Println()
}

func (a *app) cmdRawLeadPool(args []string) error {
	client, _, err := a.authedClient(auth.RoleAdmin)
	if err != nil {
		return err
	}
	ctx := context.Background()

	subcmd := "list"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "list", "ls":
		fs := flag.NewFlagSet("rawleads list", flag.ExitOnError)
		page := fs.Int("page", 1, "1-based page number")
		limit := fs.Int("limit", 10, "page size")
		var filterArgs stringList
		fs.Var(&filterArgs, "filter", "filter as key=value (repeatable)")
		if err := fs.Parse(args); err != nil {
			return err
		}

		filters := api.Filters{}
		for _, f := range filterArgs {
			key, value, found := strings.Cut(f, "=")
			if !found {
				return fmt.Errorf("bad --filter %q, want key=value", f)
			}
			filters[key] = value
		}

		result, err := client.ListRawLeads(ctx, api.ListRawLeadsParams{
			Filters: filters,
			Page:    *page,
			Limit:   *limit,
		})
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan)
		fmt.Println()
		cyan.Println("  Raw Lead Pool")
		cyan.Println("  -------------")
		if len(result.Leads) == 0 {
			fmt.Println("  (no matching leads)")
		} else {
			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "  ID\tNAME\tCOMPANY\tASSIGNED\tDONE")
			fmt.Fprintln(tw, "  --\t----\t-------\t--------\t----")
			for _, l := range result.Leads {
				done := ""
				if l.IsComplete {
					done = "yes"
				}
				fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n",
					truncate(l.ID, 12), l.Name, l.Company.Name, l.AssignedTo.Name, done)
			}
			tw.Flush()
		}
		fmt.Printf("  Total: %d (page %d, %d per page)\n\n", result.Total, *page, *limit)
		return nil

	case "summary":
		summary, err := client.FetchRawLeadSummary(ctx)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("  Total:      %d\n", summary.Total)
		color.Green("  Completed:  %d", summary.Completed)
		color.Yellow("  Incomplete: %d", summary.Incomplete)
		fmt.Println()
		return nil

	default:
		return fmt.Errorf("unknown rawleads subcommand: %s (use list, summary)", subcmd)
	}
}

func (a *app) cmdBulk(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: leadctl bulk <leads|rawleads> [flags] <file.xlsx>")
	}
	kind := args[0]
	args = args[1:]

	client, _, err := a.authedClient(auth.RoleAdmin)
	if err != nil {
		return err
	}
	ctx := context.Background()

	switch kind {
	case "leads":
		if len(args) < 1 {
			return fmt.Errorf("usage: leadctl bulk leads <file.xlsx>")
		}
		path := args[0]
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer file.Close()

		result, err := client.BulkUploadLeads(ctx, filepath.Base(path), file)
		if err != nil {
			return err
		}
		color.Green("  Inserted:   %d", result.Inserted)
		color.Yellow("  Duplicates: %d", result.Duplicates)
		color.Red("  Skipped:    %d", result.Skipped)
		return nil

	case "rawleads":
		fs := flag.NewFlagSet("bulk rawleads", flag.ExitOnError)
		industry := fs.String("industry", "", "industry the rows belong to (required)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		rest := fs.Args()
		if len(rest) < 1 || strings.TrimSpace(*industry) == "" {
			return fmt.Errorf("usage: leadctl bulk rawleads --industry <name> <file.xlsx>")
		}
		path := rest[0]
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer file.Close()

		result, err := client.BulkUploadRawLeads(ctx, filepath.Base(path), file, *industry)
		if err != nil {
			return err
		}
		color.Green("  Imported: %d", result.SuccessCount)
		color.Red("  Failed:   %d", result.FailedCount)
		return nil

	default:
		return fmt.Errorf("unknown bulk subcommand: %s (use leads, rawleads)", kind)
	}
}

func (a *app) cmdLeads() error {
	client, _, err := a.authedClient(auth.RoleAdmin)
	if err != nil {
		return err
	}

	leads, err := client.ListLeads(context.Background())
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Leads")
	cyan.Println("  -----")
	if len(leads) == 0 {
		fmt.Println("  (none)")
		fmt.Println()
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tNAME\tCOMPANY\tMOBILE\tENTERED BY")
	fmt.Fprintln(tw, "  --\t----\t-------\t------\t----------")
	for _, l := range leads {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n",
			truncate(l.ID, 12), l.Name, l.Company.Name, l.Mobile.First(), l.AssignedTo.Name)
	}
	tw.Flush()
	fmt.Println()
	return nil
}

func (a *app) cmdUsers() error {
	client, _, err := a.authedClient(auth.RoleAdmin)
	if err != nil {
		return err
	}

	users, err := client.ListUsers(context.Background())
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Users")
	cyan.Println("  -----")
	if len(users) == 0 {
		fmt.Println("  (none)")
		fmt.Println()
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tNAME\tEMAIL\tROLE")
	fmt.Fprintln(tw, "  --\t----\t-----\t----")
	for _, u := range users {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", truncate(u.ID, 12), u.Name, u.Email, u.Role)
	}
	tw.Flush()
	fmt.Println()
	return nil
}

// stringList is a repeatable flag value.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}
