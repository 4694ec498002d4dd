package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/subtrackhq/subtrack/internal/models"
)

func strPtr(s string) *string { return &s }

func sub(name, price, currency string, category *string, active bool) models.Subscription {
	return models.Subscription{
		Name:         name,
		PriceMonthly: price,
		Currency:     currency,
		Category:     category,
		Active:       active,
	}
}

func TestMonthlyTotal(t *testing.T) {
	tests := []struct {
		name string
		subs []models.Subscription
		want string
	}{
		{
			name: "пустой список даёт 0.00",
			subs: nil,
			want: "0.00",
		},
		{
			name: "доллар плюс евро по фиксированному курсу",
			subs: []models.Subscription{
				sub("Netflix", "10", "USD", nil, true),
				sub("Spotify", "10", "EUR", nil, true),
			},
			want: "21.00",
		},
		{
			name: "неактивные подписки не учитываются",
			subs: []models.Subscription{
				sub("Netflix", "15.99", "USD", nil, true),
				sub("Spotify", "9.99", "USD", nil, false),
			},
			want: "15.99",
		},
		{
			name: "неизвестная валюта проходит без пересчёта",
			subs: []models.Subscription{
				sub("VPN", "12.50", "JPY", nil, true),
			},
			want: "12.50",
		},
		{
			name: "нечисловая цена даёт NaN",
			subs: []models.Subscription{
				sub("Netflix", "10", "USD", nil, true),
				sub("Broken", "oops", "USD", nil, true),
			},
			want: "NaN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyTotal(tt.subs, DefaultRates())
			assert.Equal(t, tt.want, FormatAmount(got))
		})
	}
}

func TestMonthlyTotal_CustomRates(t *testing.T) {
	subs := []models.Subscription{
		sub("Netflix", "10", "EUR", nil, true),
	}
	got := MonthlyTotal(subs, FixedRates{"EUR": 2})
	assert.Equal(t, "20.00", FormatAmount(got))
}

func TestCurrencyTotals(t *testing.T) {
	subs := []models.Subscription{
		sub("Netflix", "15.99", "USD", nil, true),
		sub("Spotify", "9.99", "USD", nil, false),
		sub("Deezer", "7.49", "EUR", nil, true),
	}

	got := CurrencyTotals(subs)

	// Неактивные подписки входят в разбивку, курс не применяется.
	assert.Equal(t, []CurrencyTotal{
		{Currency: "EUR", Amount: "7.49"},
		{Currency: "USD", Amount: "25.98"},
	}, got)
}

func TestCategoryBreakdown(t *testing.T) {
	tests := []struct {
		name string
		subs []models.Subscription
		want []CategoryTotal
	}{
		{
			name: "пустой список — нет данных",
			subs: nil,
			want: []CategoryTotal{},
		},
		{
			name: "без категории и неактивные исключаются",
			subs: []models.Subscription{
				sub("Netflix", "15.99", "USD", strPtr("Entertainment"), true),
				sub("HBO", "9.99", "USD", strPtr("Entertainment"), true),
				sub("Spotify", "9.99", "USD", strPtr("Music"), false),
				sub("VPN", "4.99", "USD", nil, true),
			},
			want: []CategoryTotal{
				{Name: "Entertainment", Value: "25.98"},
			},
		},
		{
			name: "категории сортируются по имени",
			subs: []models.Subscription{
				sub("Spotify", "9.99", "USD", strPtr("Music"), true),
				sub("Netflix", "15.99", "USD", strPtr("Entertainment"), true),
			},
			want: []CategoryTotal{
				{Name: "Entertainment", Value: "15.99"},
				{Name: "Music", Value: "9.99"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryBreakdown(tt.subs))
		})
	}
}

func TestActiveCount(t *testing.T) {
	subs := []models.Subscription{
		sub("Netflix", "15.99", "USD", nil, true),
		sub("Spotify", "9.99", "USD", nil, false),
	}
	assert.Equal(t, 1, ActiveCount(subs))
	assert.Equal(t, 0, ActiveCount(nil))
}

func TestBuild(t *testing.T) {
	subs := []models.Subscription{
		sub("Netflix", "15.99", "USD", strPtr("Entertainment"), true),
	}

	got := Build(subs, DefaultRates())

	assert.Equal(t, "15.99", got.MonthlyTotal)
	assert.Equal(t, 1, got.ActiveCount)
	assert.Equal(t, []CurrencyTotal{{Currency: "USD", Amount: "15.99"}}, got.Currencies)
	assert.Equal(t, []CategoryTotal{{Name: "Entertainment", Value: "15.99"}}, got.Categories)
}
