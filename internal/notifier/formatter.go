package notifier

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"GemSentinel/internal/model"
	"GemSentinel/internal/screener"
)

// humanUSD abbreviates a currency amount, e.g. 12.35M.
func humanUSD(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "-"
	}
	d := decimal.NewFromFloat(x)
	ax := math.Abs(x)
	switch {
	case ax >= 1_000_000_000:
		return d.Shift(-9).StringFixed(2) + "B"
	case ax >= 1_000_000:
		return d.Shift(-6).StringFixed(2) + "M"
	case ax >= 1_000:
		return d.Shift(-3).StringFixed(2) + "K"
	default:
		return d.StringFixed(0)
	}
}

// FormatGemReport formats a scan result into a Telegram message.
func FormatGemReport(res *model.ScanResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("💎 <b>GemSentinel</b> | %s\n", res.FetchedAt.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Scanned %d tokens, %d passed the filter\n\n", res.Total, res.Eligible))

	if len(res.Gems) == 0 {
		b.WriteString("No tokens passed the filter this round.")
		return b.String()
	}

	for i, g := range res.Gems {
		r := g.Record
		b.WriteString(fmt.Sprintf("%d. <b>%s</b> (%s) score %d/%d\n",
			i+1, html.EscapeString(r.Name), html.EscapeString(strings.ToUpper(r.Symbol)), g.Score.Value, screener.MaxScore))
		b.WriteString(fmt.Sprintf("   cap $%s | vol $%s | 24h %+.1f%%\n",
			humanUSD(r.MarketCap), humanUSD(r.TotalVolume), r.PriceChangePercent24h))
		for _, f := range g.Score.Factors {
			b.WriteString(fmt.Sprintf("   • %s\n", html.EscapeString(f)))
		}
		b.WriteString(fmt.Sprintf("   <i>%s</i>\n", html.EscapeString(g.Narrative)))
	}
	return b.String()
}

// FormatScoreChart renders chart points as a monospaced bar chart, one block per score point.
func FormatScoreChart(points []model.ChartPoint) string {
	if len(points) == 0 {
		return "No chart data."
	}
	return "<pre>" + scoreBars(points, html.EscapeString) + "</pre>"
}

// TextScoreChart is FormatScoreChart for terminals.
func TextScoreChart(points []model.ChartPoint) string {
	if len(points) == 0 {
		return "No chart data.\n"
	}
	return scoreBars(points, func(s string) string { return s })
}

func scoreBars(points []model.ChartPoint, escape func(string) string) string {
	width := 0
	for _, p := range points {
		if len(p.Label) > width {
			width = len(p.Label)
		}
	}

	var b strings.Builder
	for _, p := range points {
		b.WriteString(fmt.Sprintf("%-*s %s %d\n",
			width, escape(p.Label), strings.Repeat("█", p.Score), p.Score))
	}
	return b.String()
}

// FormatCriteria lists the active filter criteria.
func FormatCriteria(lines []string) string {
	var b strings.Builder
	b.WriteString("🔎 <b>Filter criteria</b>\n")
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("• %s\n", html.EscapeString(l)))
	}
	return b.String()
}

// FormatHelp lists the supported commands.
func FormatHelp() string {
	return "Available commands:\n" +
		"• /gems - top ranked tokens\n" +
		"• /chart - score bar chart\n" +
		"• /criteria - active filter criteria\n" +
		"• /scan - fetch fresh market data"
}
