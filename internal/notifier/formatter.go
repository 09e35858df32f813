package notifier

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"StockScreener/internal/calculator"
	"StockScreener/internal/index"
	"StockScreener/internal/model"
)

const dateLayout = "2006-01-02"

func money(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

func pct(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

func signedPct(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsPositive() {
		return "+" + d.StringFixed(2) + "%"
	}
	return d.StringFixed(2) + "%"
}

// FormatReport formats a report into a Telegram HTML message.
func FormatReport(r *model.Report) string {
	var b strings.Builder
	name := html.EscapeString(r.Name)
	benchName := html.EscapeString(r.BenchmarkName)

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> (%s) vs %s (%s) | %s\n\n",
		name, html.EscapeString(r.Query.Ticker), benchName, r.BenchmarkTicker, r.GeneratedAt.Format(dateLayout)))

	// Returns
	b.WriteString(fmt.Sprintf("Time period: prior %d days\n", r.Query.LookbackDays))
	b.WriteString(fmt.Sprintf("Average daily return: %s\n", pct(r.MeanReturn)))
	b.WriteString(fmt.Sprintf("Risk of daily returns: %s\n", pct(r.Risk)))
	b.WriteString(fmt.Sprintf("Return trend: %s per session\n\n", signedPct(r.Trend.Slope)))

	// Snapshots
	for _, s := range r.Snapshots {
		b.WriteString(fmt.Sprintf("%s Price: %s  %s (%s)\n",
			s.Label, s.ReferenceDate.Format(dateLayout), money(s.Price), signedPct(s.DeltaPct)))
	}
	b.WriteString("\n")

	// Excess performance
	if ex := r.Excess; ex != nil {
		b.WriteString(fmt.Sprintf("The average return of %s is %s and the average return of %s is %s.\n",
			name, pct(ex.MeanTicker), benchName, pct(ex.MeanBenchmark)))
		b.WriteString(fmt.Sprintf("Over the requested period %s <b>%s</b> the %s by %s (%d common sessions).\n",
			name, ex.Verdict, benchName, pct(ex.MeanExcess), len(ex.Entries)))
	}

	if p := r.Profile; p != nil {
		b.WriteString("\n")
		b.WriteString(formatProfile(p, r.TargetUpsidePct))
	}
	if r.ID != "" {
		b.WriteString(fmt.Sprintf("\n<i>Run %s</i>\n", html.EscapeString(r.ID)))
	}
	return b.String()
}

func formatProfile(p *model.CompanyProfile, upside *float64) string {
	var b strings.Builder
	b.WriteString("🏢 <b>Company</b>\n")
	if p.City != "" || p.State != "" {
		b.WriteString(fmt.Sprintf("Location: %s, %s\n", html.EscapeString(p.City), html.EscapeString(p.State)))
	}
	if p.Industry != "" {
		b.WriteString(fmt.Sprintf("Industry: %s\n", html.EscapeString(p.Industry)))
	}
	if p.Sector != "" {
		b.WriteString(fmt.Sprintf("Sector: %s\n", html.EscapeString(p.Sector)))
	}
	if p.OfficerName != "" {
		b.WriteString(fmt.Sprintf("Company Officer: %s (%s)\n", html.EscapeString(p.OfficerName), html.EscapeString(p.OfficerTitle)))
	}

	if upside != nil {
		b.WriteString(fmt.Sprintf("\nThe current price is %s with an average target price of %s, a %s change.\n",
			money(*p.CurrentPrice), money(*p.TargetMeanPrice), signedPct(*upside)))
		if p.TargetLowPrice != nil && p.TargetHighPrice != nil {
			b.WriteString(fmt.Sprintf("The low target price is %s and the high target price is %s.\n",
				money(*p.TargetLowPrice), money(*p.TargetHighPrice)))
		}
	}
	return b.String()
}

// FormatError explains why a query produced no report.
func FormatError(q model.Query, err error) string {
	ticker := html.EscapeString(q.Ticker)
	switch {
	case errors.Is(err, calculator.ErrInsufficientData):
		return fmt.Sprintf("❌ Not enough price history for %s over %d days. Try a shorter window.", ticker, q.LookbackDays)
	case errors.Is(err, calculator.ErrHorizonOutOfRange):
		return fmt.Sprintf("❌ The %d-day snapshot reaches before the first available price of %s.", q.LookbackDays, ticker)
	case errors.Is(err, calculator.ErrNoOverlap):
		return fmt.Sprintf("❌ %s and %s have no trading day in common over the window.", ticker, html.EscapeString(q.Benchmark))
	case errors.Is(err, calculator.ErrEmptyInput):
		return fmt.Sprintf("❌ No returns to summarize for %s.", ticker)
	case errors.Is(err, index.ErrUnknownBenchmark):
		return "❌ Unknown benchmark.\n\n" + FormatBenchmarks()
	default:
		return fmt.Sprintf("❌ Could not build the report for %s: %s", ticker, html.EscapeString(err.Error()))
	}
}

// FormatBenchmarks lists the supported benchmarks.
func FormatBenchmarks() string {
	var b strings.Builder
	b.WriteString("Available benchmarks:\n")
	for _, bm := range index.Benchmarks {
		b.WriteString(fmt.Sprintf("• %s (%s)\n", html.EscapeString(bm.Name), bm.Ticker))
	}
	return b.String()
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// PlainText strips the HTML markup of a formatted message for terminal output.
func PlainText(s string) string {
	return html.UnescapeString(tagPattern.ReplaceAllString(s, ""))
}
