// Package stats реализует агрегирующие представления над списком подписок:
// суммарную месячную стоимость в базовой валюте, разбивку по валютам и по категориям.
//
// Все функции чистые и пересчитываются на каждый запрос; состояние не хранится.
// Цена, которую не удалось распарсить, даёт NaN в затронутом агрегате —
// это осознанно сохранённое поведение, а не защищённый случай.
package stats

import (
	"math"
	"sort"
	"strconv"

	"github.com/subtrackhq/subtrack/internal/models"
)

// CurrencyTotal — сумма цен подписок в одной валюте, без пересчёта курса.
type CurrencyTotal struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// CategoryTotal — сумма цен активных подписок одной категории.
type CategoryTotal struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Summary — агрегированный срез по списку подписок для отображения.
type Summary struct {
	MonthlyTotal string          `json:"monthlyTotal"`
	ActiveCount  int             `json:"activeCount"`
	Currencies   []CurrencyTotal `json:"currencies"`
	Categories   []CategoryTotal `json:"categories"`
}

// ParsePrice разбирает десятичную строку цены.
// Невалидная строка даёт NaN, который дальше течёт по агрегатам.
func ParsePrice(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// FormatAmount форматирует сумму с двумя знаками после запятой.
// NaN форматируется как "NaN".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// MonthlyTotal возвращает суммарную месячную стоимость активных подписок,
// пересчитанную в базовую валюту по таблице rates.
func MonthlyTotal(subs []models.Subscription, rates RateTable) float64 {
	var total float64
	for _, sub := range subs {
		if !sub.Active {
			continue
		}
		total += ParsePrice(sub.PriceMonthly) * rates.Rate(sub.Currency)
	}
	return total
}

// CurrencyTotals группирует все подписки (включая неактивные) по валюте
// и суммирует цены без пересчёта. Результат отсортирован по коду валюты.
func CurrencyTotals(subs []models.Subscription) []CurrencyTotal {
	sums := make(map[string]float64)
	for _, sub := range subs {
		sums[sub.Currency] += ParsePrice(sub.PriceMonthly)
	}

	result := make([]CurrencyTotal, 0, len(sums))
	for currency, amount := range sums {
		result = append(result, CurrencyTotal{
			Currency: currency,
			Amount:   FormatAmount(amount),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Currency < result[j].Currency })
	return result
}

// CategoryBreakdown группирует активные подписки с заданной категорией
// и суммирует цены без пересчёта. Пустой результат означает случай
// "No data available" на стороне отображения. Результат отсортирован
// по названию категории.
func CategoryBreakdown(subs []models.Subscription) []CategoryTotal {
	sums := make(map[string]float64)
	for _, sub := range subs {
		if !sub.Active || sub.Category == nil || *sub.Category == "" {
			continue
		}
		sums[*sub.Category] += ParsePrice(sub.PriceMonthly)
	}

	result := make([]CategoryTotal, 0, len(sums))
	for name, value := range sums {
		result = append(result, CategoryTotal{
			Name:  name,
			Value: FormatAmount(value),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// ActiveCount возвращает количество активных подписок.
func ActiveCount(subs []models.Subscription) int {
	var n int
	for _, sub := range subs {
		if sub.Active {
			n++
		}
	}
	return n
}

// Build собирает Summary по списку подписок и таблице курсов.
func Build(subs []models.Subscription, rates RateTable) Summary {
	return Summary{
		MonthlyTotal: FormatAmount(MonthlyTotal(subs, rates)),
		ActiveCount:  ActiveCount(subs),
		Currencies:   CurrencyTotals(subs),
		Categories:   CategoryBreakdown(subs),
	}
}
