// ABOUTME: Interactive raw-lead workflow REPL for LG operators
// ABOUTME: Presents one assigned lead at a time with edit, complete, and skip

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/iitgjobs/leadctl/internal/auth"
	"github.com/iitgjobs/leadctl/internal/lead"
	"github.com/iitgjobs/leadctl/internal/workflow"
)

func (a *app) cmdRawLead(args []string) error {
	client, _, err := a.authedClient(auth.RoleLG)
	if err != nil {
		return err
	}

	w := workflow.New(client, a.logger)
	ctx := context.Background()

	if err := w.FetchNext(ctx); err != nil {
		color.Red("%s", w.Message())
		return err
	}
	printWorkflowState(w)

	scanner := bufio.NewScanner(os.Stdin)
	green := color.New(color.FgGreen)
	for {
		green.Print("rawlead> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, " ", 3)
		switch fields[0] {
		case "show":
			printWorkflowState(w)

		case "set":
			if len(fields) < 3 {
				color.Yellow("Usage: set <field> <value>")
				continue
			}
			if err := w.Edit(fields[1], fields[2]); err != nil {
				color.Red("%v", err)
				continue
			}
			printWorkflowState(w)

		case "complete":
			if err := w.Complete(ctx); err != nil {
				reportWorkflowError(err)
				continue
			}
			color.Green("Lead marked as completed.")
			printWorkflowState(w)

		case "skip":
			if err := w.Skip(ctx); err != nil {
				reportWorkflowError(err)
				continue
			}
			color.Green("Lead skipped for reassignment.")
			printWorkflowState(w)

		case "next":
			// Manual refetch after the pool came up empty.
			if err := w.FetchNext(ctx); err != nil {
				reportWorkflowError(err)
				continue
			}
			printWorkflowState(w)

		case "quit", "exit", "q":
			return nil

		case "help", "?":
			printRawLeadHelp()

		default:
			color.Yellow("Unknown command %q (try help)", fields[0])
		}
	}
}

// reportWorkflowError keeps validation wording distinct from backend
// failures; neither ends the session.
func reportWorkflowError(err error) {
	switch {
	case errors.Is(err, lead.ErrValidation):
		color.Red("Name and mobile are required before completing.")
	case errors.Is(err, workflow.ErrNoLead):
		color.Yellow("No lead is presented; try next.")
	default:
		color.Red("%v", err)
	}
}

func printWorkflowState(w *workflow.Workflow) {
	switch w.State() {
	case workflow.StatePresenting:
		printLeadForm(w.Lead())
	case workflow.StateEmpty:
		color.Yellow("%s", w.Message())
		fmt.Println("Use next to check again, or quit to leave.")
	}
}

func printLeadForm(flat *lead.Flat) {
	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Printf("  Assigned Raw Lead  %s\n", flat.ID)
	cyan.Println("  -----------------")

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, field := range lead.FieldOrder {
		value := flat.Get(field)
		if field == "companyName" {
			fmt.Fprintf(tw, "  %s\t%s\t(read-only)\n", field, value)
			continue
		}
		fmt.Fprintf(tw, "  %s\t%s\t\n", field, value)
	}
	tw.Flush()
	fmt.Println()
}

func printRawLeadHelp() {
	fmt.Println("  show                 Print the current lead")
	fmt.Println("  set <field> <value>  Edit a field (companyName is read-only)")
	fmt.Println("  complete             Submit and mark completed, then fetch the next lead")
	fmt.Println("  skip                 Hand the lead back for reassignment, then fetch the next")
	fmt.Println("  next                 Fetch again after the pool was empty")
	fmt.Println("  quit                 Leave the workflow")
}
