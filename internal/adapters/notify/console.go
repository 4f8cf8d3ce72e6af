package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alejandrodnm/yieldsim/internal/domain"
	"github.com/alejandrodnm/yieldsim/internal/ports"
	"github.com/olekukonko/tablewriter"
)

// Console implementa ports.Reporter.
type Console struct {
	out   io.Writer
	table bool
}

// NewConsole crea un reporter que escribe a stdout.
func NewConsole(table bool) *Console {
	return &Console{out: os.Stdout, table: table}
}

// NewConsoleWriter crea un reporter para tests.
func NewConsoleWriter(w io.Writer, table bool) *Console {
	return &Console{out: w, table: table}
}

// Report imprime el resumen del backtest y, en modo tabla, el desglose por régimen.
func (c *Console) Report(_ context.Context, r ports.Report) error {
	c.printSummary(r)
	if c.table {
		c.printRegimeTable(r)
	}
	return nil
}

// printSummary imprime el resumen en texto plano, una métrica por línea.
func (c *Console) printSummary(r ports.Report) {
	s := r.Result.Stats
	width := r.Width
	if width <= 0 {
		width = domain.DefaultSparklineWidth
	}

	fmt.Fprintln(c.out, "Backtest Summary")
	fmt.Fprintln(c.out, "Source:", r.Source)
	fmt.Fprintln(c.out, "Days:", r.Days)
	fmt.Fprintln(c.out, "Regime days:", formatCounts(r.Result.RegimeCounts()))
	fmt.Fprintf(c.out, "APY min/avg/max: %.2f%% / %.2f%% / %.2f%%\n",
		s.APY.Min*100, s.APY.Avg*100, s.APY.Max*100)
	fmt.Fprintf(c.out, "Sharpe: %.2f\n", s.Sharpe)
	fmt.Fprintf(c.out, "Cumulative: %.2f%%\n", s.CumulativeReturn()*100)
	fmt.Fprintln(c.out, "Curve:", domain.Sparkline(s.Curve, width))
}

// printRegimeTable imprime días, peso y retorno neto medio por régimen.
func (c *Console) printRegimeTable(r ports.Report) {
	counts := r.Result.RegimeCounts()
	means := r.Result.RegimeMeanNet()
	total := len(r.Result.Regimes)

	fmt.Fprintf(c.out, "\nRun %s (%d simulated days)\n", r.RunID, total)

	table := tablewriter.NewWriter(c.out)
	table.Header("Regime", "Days", "Share", "ALP/LP alloc", "Avg net/day", "APY")

	for _, g := range domain.Regimes {
		p := domain.ProfileFor(g)
		share := 0.0
		if total > 0 {
			share = float64(counts[g]) / float64(total)
		}
		avg, ok := means[g]
		avgLabel, apyLabel := "-", "-"
		if ok {
			avgLabel = fmt.Sprintf("%.4f%%", avg*100)
			apyLabel = fmt.Sprintf("%.2f%%", avg*365*100)
		}

		table.Append(
			g.String(),
			fmt.Sprintf("%d", counts[g]),
			fmt.Sprintf("%.1f%%", share*100),
			fmt.Sprintf("%.2f/%.2f", p.ALPAlloc, p.LPAlloc),
			avgLabel,
			apyLabel,
		)
	}

	table.Render()

	fmt.Fprintf(c.out, "  StdDev/day: %.4f%% | gas is amortized over TVL\n", r.Result.Stats.StdDev*100)
}

// formatCounts imprime los conteos en orden fijo: {'CALM': n, 'NORMAL': n, 'STORM': n}.
func formatCounts(counts map[domain.Regime]int) string {
	parts := make([]string, 0, len(domain.Regimes))
	for _, g := range domain.Regimes {
		parts = append(parts, fmt.Sprintf("'%s': %d", g, counts[g]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ReportSweep implementa ports.SweepReporter: una fila por semilla y el rango
// del APY medio entre semillas.
func (c *Console) ReportSweep(_ context.Context, r ports.SweepReport) error {
	fmt.Fprintln(c.out, "Seed Sweep")
	fmt.Fprintln(c.out, "Source:", r.Source)
	fmt.Fprintln(c.out, "Days:", r.Days)
	fmt.Fprintln(c.out, "Seeds:", len(r.Outcomes))
	if len(r.Outcomes) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Seed", "APY min", "APY avg", "APY max", "Sharpe", "Cumulative")

	lo, hi, sum := r.Outcomes[0].Stats.APY.Avg, r.Outcomes[0].Stats.APY.Avg, 0.0
	for _, o := range r.Outcomes {
		s := o.Stats
		lo = min(lo, s.APY.Avg)
		hi = max(hi, s.APY.Avg)
		sum += s.APY.Avg

		table.Append(
			fmt.Sprintf("%d", o.Seed),
			fmt.Sprintf("%.2f%%", s.APY.Min*100),
			fmt.Sprintf("%.2f%%", s.APY.Avg*100),
			fmt.Sprintf("%.2f%%", s.APY.Max*100),
			fmt.Sprintf("%.2f", s.Sharpe),
			fmt.Sprintf("%.2f%%", s.CumulativeReturn()*100),
		)
	}
	table.Render()

	fmt.Fprintf(c.out, "APY avg across seeds min/mean/max: %.2f%% / %.2f%% / %.2f%%\n",
		lo*100, sum/float64(len(r.Outcomes))*100, hi*100)
	return nil
}
