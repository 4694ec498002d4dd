// Package cli содержит вспомогательный слой терминального клиента:
// валидацию полей форм до любого сетевого вызова, рендеринг списка
// и сводки, а также хранение токена сессии в файле состояния.
package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
)

var validate = validator.New()

// ValidateName проверяет обязательное название подписки.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}
	return nil
}

// ValidatePrice проверяет, что цена задана и является положительным числом.
func ValidatePrice(price string) error {
	if strings.TrimSpace(price) == "" {
		return errors.New("price is required")
	}
	v, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return errors.New("price must be a number")
	}
	if v <= 0 {
		return errors.New("price must be positive")
	}
	return nil
}

// ValidateEmail проверяет формат почты.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidatePassword проверяет минимальную длину пароля.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

// ValidateSubscriptionForm проверяет форму добавления подписки целиком.
func ValidateSubscriptionForm(name, price string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	return ValidatePrice(price)
}

// ValidateCredentialsForm проверяет форму входа или регистрации.
func ValidateCredentialsForm(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePassword(password)
}
