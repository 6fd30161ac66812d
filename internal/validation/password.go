package validation

import (
	"fmt"
)

// MaxPasswordBytes - bcrypt учитывает только первые 72 байта.
const MaxPasswordBytes = 72

// ValidatePassword проверяет пароль: непустой и не длиннее MaxPasswordBytes байт.
// Требований к сложности нет.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("пароль обязателен")
	}
	if len(password) > MaxPasswordBytes {
		return fmt.Errorf("пароль должен быть не более %d байт", MaxPasswordBytes)
	}
	return nil
}
