package stats

// RateTable возвращает коэффициент пересчёта валюты в базовую (USD).
// Интерфейс позволяет подменять таблицу курсов в тестах.
type RateTable interface {
	Rate(currency string) float64
}

// FixedRates — таблица фиксированных курсов. Неизвестная валюта
// пересчитывается с коэффициентом 1.
type FixedRates map[string]float64

// Rate возвращает коэффициент для валюты или 1, если валюты нет в таблице.
func (r FixedRates) Rate(currency string) float64 {
	if v, ok := r[currency]; ok {
		return v
	}
	return 1
}

// DefaultRates возвращает встроенную таблицу курсов приложения.
func DefaultRates() FixedRates {
	return FixedRates{
		"USD": 1,
		"EUR": 1.1,
		"GBP": 1.27,
		"PLN": 0.25,
	}
}
