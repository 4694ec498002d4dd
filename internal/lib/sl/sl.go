// Package sl — небольшие помощники для структурированного логирования slog.
package sl

import "log/slog"

// Err оборачивает ошибку в атрибут лога с ключом "error".
//
//	log.Error("failed to create subscription", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Op оборачивает имя операции в атрибут лога с ключом "op".
func Op(op string) slog.Attr {
	return slog.Attr{
		Key:   "op",
		Value: slog.StringValue(op),
	}
}
