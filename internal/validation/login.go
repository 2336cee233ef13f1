package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// UserPattern определяет допустимый формат логина облака (адрес e-mail)
// Символы '/', '?', '#' запрещены, так как логин подставляется в путь URL
var UserPattern = regexp.MustCompile(`^[^\s@/?#]+@[^\s@/?#]+\.[^\s@/?#.]+$`)

// MaxUserLen максимальная длина адреса e-mail
const MaxUserLen = 254

// ValidateUser проверяет, что логин облака похож на адрес e-mail
func ValidateUser(user string) error {
	if strings.TrimSpace(user) == "" {
		return fmt.Errorf("user cannot be empty")
	}

	if len(user) > MaxUserLen {
		return fmt.Errorf("user must not exceed %d characters", MaxUserLen)
	}

	if !UserPattern.MatchString(user) {
		return fmt.Errorf("user must be the e-mail address of the cloud account")
	}

	return nil
}

// ValidatePassword проверяет, что пароль облака задан
// Требования к сложности задает облако, здесь их не проверяем
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	return nil
}

// ValidateLogin проверяет пару логин/пароль
func ValidateLogin(user, password string) error {
	if err := ValidateUser(user); err != nil {
		return err
	}
	return ValidatePassword(password)
}
