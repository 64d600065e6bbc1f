package validation

import (
	"fmt"
	"regexp"
)

// UserPattern определяет допустимый формат идентификатора студента
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 1-32 символа
var UserPattern = regexp.MustCompile(`^[a-zA-Z0-9_]{1,32}$`)

// MaxUserLen максимальная длина идентификатора
const MaxUserLen = 32

// MaxAvatarBytes максимальный размер аватара после декодирования base64
const MaxAvatarBytes = 1 << 20

// ValidateUser проверяет идентификатор студента
func ValidateUser(user string) error {
	if user == "" {
		return fmt.Errorf("user cannot be empty")
	}

	if len(user) > MaxUserLen {
		return fmt.Errorf("user must not exceed %d characters", MaxUserLen)
	}

	if !UserPattern.MatchString(user) {
		return fmt.Errorf("user can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidateAvatar проверяет размер декодированного аватара
func ValidateAvatar(data []byte) error {
	if len(data) > MaxAvatarBytes {
		return fmt.Errorf("avatar must not exceed %d bytes", MaxAvatarBytes)
	}
	return nil
}
