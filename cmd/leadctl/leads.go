// ABOUTME: LG lead commands: today's leads listing and manual lead entry
// ABOUTME: Today supports a completion toggle the way the board screen does

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/iitgjobs/leadctl/internal/api"
	"github.com/iitgjobs/leadctl/internal/auth"
	"github.com/iitgjobs/leadctl/internal/lead"
)

func (a *app) cmdToday(args []string) error {
	client, _, err := a.authedClient(auth.RoleLG)
	if err != nil {
		return err
	}
	ctx := context.Background()

	if len(args) > 0 && args[0] == "done" {
		if len(args) < 2 {
			return fmt.Errorf("usage: leadctl today done <id>")
		}
		return a.toggleTodayLead(ctx, client, args[1])
	}

	leads, err := client.TodayLeads(ctx)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Today's Leads")
	cyan.Println("  -------------")
	if len(leads) == 0 {
		fmt.Println("  (no leads entered today)")
		fmt.Println()
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tNAME\tCOMPANY\tMOBILE\tDONE")
	fmt.Fprintln(tw, "  --\t----\t-------\t------\t----")
	for _, l := range leads {
		done := ""
		if l.IsComplete {
			done = "yes"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n",
			truncate(l.ID, 12), l.Name, l.Company.Name, l.Mobile.First(), done)
	}
	tw.Flush()
	fmt.Println()
	return nil
}

// toggleTodayLead flips the completion status of one of today's leads.
func (a *app) toggleTodayLead(ctx context.Context, client *api.Client, id string) error {
	leads, err := client.TodayLeads(ctx)
	if err != nil {
		return err
	}

	var current *lead.RawLead
	for i := range leads {
		if leads[i].ID == id {
			current = &leads[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("no today-lead with id %s", id)
	}

	update := map[string]any{"isComplete": !current.IsComplete}
	if err := client.UpdateTodayLead(ctx, id, update); err != nil {
		return err
	}
	color.Green("Status updated.")
	return nil
}

// cmdCatalog gives LG operators read-only industry and company browsing,
// for picking ids ahead of a manual entry or an hr lookup.
func (a *app) cmdCatalog(args []string) error {
	client, _, err := a.authedClient(auth.RoleLG)
	if err != nil {
		return err
	}
	ctx := context.Background()

	subcmd := "industries"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "industries":
		industries, err := client.LGIndustries(ctx)
		if err != nil {
			return err
		}
		printIndustries(industries)
		return nil

	case "companies":
		if len(args) < 1 {
			return fmt.Errorf("usage: leadctl catalog companies <industry-id>")
		}
		companies, err := client.CompaniesByIndustry(ctx, args[0])
		if err != nil {
			return err
		}
		printCompanies(companies)
		return nil

	default:
		return fmt.Errorf("unknown catalog subcommand: %s (use industries, companies)", subcmd)
	}
}

// cmdHR lists existing contacts for an industry/company pair, so an
// operator can check for duplicates before a manual entry.
func (a *app) cmdHR(args []string) error {
	fs := flag.NewFlagSet("hr", flag.ExitOnError)
	industryID := fs.String("industry-id", "", "industry id (required)")
	companyID := fs.String("company-id", "", "company id (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *industryID == "" || *companyID == "" {
		return fmt.Errorf("--industry-id and --company-id are required")
	}

	client, _, err := a.authedClient(auth.RoleLG)
	if err != nil {
		return err
	}

	contacts, err := client.HRLeadsByCompany(context.Background(), *industryID, *companyID)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Existing Contacts")
	cyan.Println("  -----------------")
	if len(contacts) == 0 {
		fmt.Println("  (none on record for this company)")
		fmt.Println()
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  NAME\tDESIGNATION\tMOBILE\tEMAIL")
	fmt.Fprintln(tw, "  ----\t-----------\t------\t-----")
	for _, c := range contacts {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", c.Name, c.Designation, c.Mobile.First(), c.Email)
	}
	tw.Flush()
	fmt.Println()
	return nil
}

func (a *app) cmdAddLead(args []string) error {
	fs := flag.NewFlagSet("add-lead", flag.ExitOnError)
	name := fs.String("name", "", "contact name (required)")
	designation := fs.String("designation", "", "contact designation")
	mobile := fs.String("mobile", "", "comma-separated mobile numbers (required)")
	email := fs.String("email", "", "contact email")
	location := fs.String("location", "", "location")
	remarks := fs.String("remarks", "", "remarks")
	division := fs.String("division", "", "division")
	productLine := fs.String("product-line", "", "product line")
	turnOver := fs.String("turn-over", "", "company turnover")
	employees := fs.String("employee-strength", "", "employee strength")
	industryName := fs.String("industry", "", "industry name")
	companyName := fs.String("company", "", "company name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" || *mobile == "" {
		return fmt.Errorf("--name and --mobile are required")
	}

	var mobiles []string
	for _, m := range strings.Split(*mobile, ",") {
		if m = strings.TrimSpace(m); m != "" {
			mobiles = append(mobiles, m)
		}
	}

	client, _, err := a.authedClient(auth.RoleLG)
	if err != nil {
		return err
	}

	params := api.AddLeadParams{
		Name:             *name,
		Designation:      *designation,
		Mobile:           mobiles,
		Email:            *email,
		Location:         *location,
		Remarks:          *remarks,
		Division:         *division,
		ProductLine:      *productLine,
		TurnOver:         *turnOver,
		EmployeeStrength: *employees,
		IndustryName:     *industryName,
		CompanyName:      *companyName,
	}
	if err := client.AddLead(context.Background(), params); err != nil {
		return err
	}

	color.Green("Lead added.")
	return nil
}
