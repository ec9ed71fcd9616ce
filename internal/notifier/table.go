package notifier

import (
	"fmt"
	"strings"

	"GemSentinel/internal/model"
	"GemSentinel/internal/screener"
)

// Rank | Symbol | Score | Cap($) | Vol($) | Δ24h% | Price
const tableHeader = "%-4s | %-10s | %5s | %8s | %8s | %7s | %12s"

// FormatTable renders a scan result as a fixed-width table for terminals,
// followed by one narrative per gem.
func FormatTable(res *model.ScanResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s • sorted by %s %s • %d/%d passed the filter\n",
		res.FetchedAt.Format("2006-01-02 15:04"), res.SortField, res.Direction, res.Eligible, res.Total))
	if len(res.Gems) == 0 {
		b.WriteString("No tokens passed the filter.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf(tableHeader+"\n", "#", "Symbol", "Score", "Cap", "Vol", "Δ24h%", "Price"))
	for i, g := range res.Gems {
		b.WriteString(FormatRow(i+1, g) + "\n")
	}

	b.WriteString("\n")
	for _, g := range res.Gems {
		b.WriteString(fmt.Sprintf("%s: %s\n", strings.ToUpper(g.Record.Symbol), g.Narrative))
	}
	return b.String()
}

// FormatRow renders one gem as a table row.
func FormatRow(rank int, g model.Gem) string {
	r := g.Record
	return fmt.Sprintf("%-4d | %-10s | %2d/%-2d | %8s | %8s | %7.2f | %12.6g",
		rank, strings.ToUpper(r.Symbol), g.Score.Value, screener.MaxScore,
		humanUSD(r.MarketCap), humanUSD(r.TotalVolume), r.PriceChangePercent24h, r.CurrentPrice)
}
