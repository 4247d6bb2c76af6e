// Package stats prints complaint counts for the built-in data set without
// starting the HTTP server.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"complaintdesk/internal/application/complaint/dto"
	"complaintdesk/internal/application/complaint/usecases"
	"complaintdesk/internal/infrastructure/persistence/seeds"
	"complaintdesk/internal/infrastructure/repository"
	"complaintdesk/internal/shared/logger"
)

var asJSON bool

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print complaint counts for the seeded data set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Report(cmd.Context(), cmd.OutOrStdout(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	return cmd
}

type report struct {
	Totals dto.StatsDTO           `json:"totals"`
	Agents []dto.AgentWorkloadDTO `json:"agents"`
}

// Report seeds a fresh in-memory desk and writes its status counts and
// per-agent workload to w.
func Report(ctx context.Context, w io.Writer, jsonOutput bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.NewNopLogger()

	complaints := repository.NewComplaintRepository()
	users := repository.NewUserRepository()

	fixtures, err := seeds.Default()
	if err != nil {
		return err
	}
	if _, err := seeds.NewLoader(users, complaints, nil, nil).Load(ctx, fixtures, ""); err != nil {
		return err
	}

	totals, err := usecases.NewGetComplaintStatsUseCase(complaints, log).
		Execute(ctx, usecases.GetComplaintStatsQuery{View: usecases.ViewAll})
	if err != nil {
		return err
	}
	agents, err := usecases.NewGetAgentStatsUseCase(complaints, users, log).Execute(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report{Totals: *totals, Agents: agents})
	}
	return writeTable(w, totals, agents)
}

func writeTable(w io.Writer, totals *dto.StatsDTO, agents []dto.AgentWorkloadDTO) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "STATUS\tCOUNT")
	fmt.Fprintf(tw, "Submitted\t%d\n", totals.Submitted)
	fmt.Fprintf(tw, "Assigned\t%d\n", totals.Assigned)
	fmt.Fprintf(tw, "In Progress\t%d\n", totals.InProgress)
	fmt.Fprintf(tw, "Resolved\t%d\n", totals.Resolved)
	fmt.Fprintf(tw, "Closed\t%d\n", totals.Closed)
	fmt.Fprintf(tw, "Total\t%d\n", totals.Total)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "AGENT\tTOTAL\tRESOLVED\tPENDING")
	for _, a := range agents {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", a.AgentName, a.Total, a.Resolved, a.Pending)
	}

	return tw.Flush()
}
