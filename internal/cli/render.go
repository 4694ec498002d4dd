package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/subtrackhq/subtrack/internal/models"
	"github.com/subtrackhq/subtrack/internal/stats"
)

// Placeholder выводится вместо пустой разбивки.
const Placeholder = "No data available"

// RenderList форматирует список подписок таблицей.
func RenderList(subs []models.Subscription) string {
	if len(subs) == 0 {
		return Placeholder + "\n"
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tCURRENCY\tCATEGORY\tACTIVE")
	for _, s := range subs {
		category := "-"
		if s.Category != nil {
			category = *s.Category
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\n",
			s.ID, s.Name, s.PriceMonthly, s.Currency, category, s.Active)
	}
	_ = w.Flush()
	return sb.String()
}

// RenderSummary форматирует сводку расходов: месячный итог в USD,
// число активных подписок и разбивки по валютам и категориям.
func RenderSummary(s *stats.Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Monthly total: %s USD\n", s.MonthlyTotal)
	fmt.Fprintf(&sb, "%s\n", ActiveLabel(s.ActiveCount))

	sb.WriteString("\nBy currency:\n")
	if len(s.Currencies) == 0 {
		sb.WriteString("  " + Placeholder + "\n")
	} else {
		for _, c := range s.Currencies {
			fmt.Fprintf(&sb, "  %s: %s\n", c.Currency, c.Amount)
		}
	}

	sb.WriteString("\nBy category:\n")
	if len(s.Categories) == 0 {
		sb.WriteString("  " + Placeholder + "\n")
	} else {
		for _, c := range s.Categories {
			fmt.Fprintf(&sb, "  %s: %s\n", c.Name, c.Value)
		}
	}

	return sb.String()
}

// ActiveLabel возвращает надпись вида "3 active subscription(s)".
func ActiveLabel(n int) string {
	return fmt.Sprintf("%d active subscription(s)", n)
}
