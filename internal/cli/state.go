package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StatePath возвращает путь к файлу состояния с токеном сессии.
// Переменная SUBTRACK_STATE переопределяет расположение по умолчанию.
func StatePath() (string, error) {
	const op = "cli.StatePath"

	if p := os.Getenv("SUBTRACK_STATE"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return filepath.Join(home, ".subtrack", "token"), nil
}

// SaveToken записывает токен сессии в файл состояния.
func SaveToken(token string) error {
	const op = "cli.SaveToken"

	path, err := StatePath()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// LoadToken читает токен сессии из файла состояния.
// Отсутствие файла не ошибка: возвращается пустая строка.
func LoadToken() (string, error) {
	const op = "cli.LoadToken"

	path, err := StatePath()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// ClearToken удаляет файл состояния. Отсутствие файла не ошибка.
func ClearToken() error {
	const op = "cli.ClearToken"

	path, err := StatePath()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
