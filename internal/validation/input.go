package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MinUsernameLength    = 3
	MaxUsernameLength    = 30
	MaxEmailLength       = 254
	MinTopicLength       = 1
	MaxTopicLength       = 200
	MaxObjectivesLength  = 5000
	MinTitleLength       = 1
	MaxTitleLength       = 200
	MaxDescriptionLength = 10000
	MaxTagLength         = 50
	MaxSDGTags           = 17
	MaxKeywords          = 50
)

var (
	usernameRegex = regexp.MustCompile(`^[a-z0-9_.-]+$`)
	localRegex    = regexp.MustCompile(`^[a-z0-9._+-]+$`)
	domainRegex   = regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// ValidateUsername проверяет имя пользователя.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("имя пользователя обязательно")
	}

	if err := ValidateLength("имя пользователя", username, MinUsernameLength, MaxUsernameLength); err != nil {
		return err
	}

	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("имя пользователя может содержать только строчные латинские буквы, цифры и символы _ . -")
	}

	return nil
}

// ValidateEmail проверяет формат email. Ожидается уже приведённый к нижнему регистру адрес.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email обязателен")
	}
	if len(email) > MaxEmailLength {
		return fmt.Errorf("email должен быть не более %d символов", MaxEmailLength)
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("некорректный формат email")
	}

	localPart, domainPart := parts[0], parts[1]

	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}
	if !localRegex.MatchString(localPart) {
		return fmt.Errorf("локальная часть email содержит недопустимые символы")
	}
	if !domainRegex.MatchString(domainPart) {
		return fmt.Errorf("доменная часть email имеет некорректный формат")
	}

	return nil
}

// ValidateTopic проверяет тему заявки.
func ValidateTopic(topic string) error {
	if err := ValidateNonEmpty("тема", topic); err != nil {
		return err
	}
	return ValidateLength("тема", topic, MinTopicLength, MaxTopicLength)
}

// ValidateObjectives проверяет текст целей. Пустые цели допустимы.
func ValidateObjectives(objectives string) error {
	return ValidateLength("цели", objectives, 0, MaxObjectivesLength)
}

// ValidateTitle проверяет заголовок конкурса.
func ValidateTitle(title string) error {
	if err := ValidateNonEmpty("заголовок", title); err != nil {
		return err
	}
	return ValidateLength("заголовок", title, MinTitleLength, MaxTitleLength)
}

// ValidateDescription проверяет описание конкурса.
func ValidateDescription(description string) error {
	return ValidateLength("описание", description, 0, MaxDescriptionLength)
}

// ValidateTags проверяет количество и длину тегов. max - ограничение на число тегов.
func ValidateTags(fieldName string, tags []string, max int) error {
	if len(tags) > max {
		return fmt.Errorf("%s: не более %d значений", fieldName, max)
	}
	for _, tag := range tags {
		if utf8.RuneCountInString(tag) > MaxTagLength {
			return fmt.Errorf("%s: значение длиннее %d символов", fieldName, MaxTagLength)
		}
	}
	return nil
}
