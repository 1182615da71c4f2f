package service

import (
	"fmt"
	"unicode"

	"github.com/send-logistics/internal/config"
)

func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	length := len([]rune(password))
	if length == 0 {
		return badRequest("密码不能为空", nil)
	}
	if policy.MinLength > 0 && policy.MaxLength > 0 && (length < policy.MinLength || length > policy.MaxLength) {
		return badRequest(fmt.Sprintf("密码长度需在%d-%d之间", policy.MinLength, policy.MaxLength), nil)
	}
	if policy.MinLength > 0 && length < policy.MinLength {
		return badRequest(fmt.Sprintf("密码长度不能少于%d", policy.MinLength), nil)
	}
	if policy.MaxLength > 0 && length > policy.MaxLength {
		return badRequest(fmt.Sprintf("密码长度不能超过%d", policy.MaxLength), nil)
	}

	var hasLetter, hasNumber bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasNumber = true
		}
	}
	if policy.RequireLetter && !hasLetter {
		return badRequest("密码必须包含字母", nil)
	}
	if policy.RequireNumber && !hasNumber {
		return badRequest("密码必须包含数字", nil)
	}
	return nil
}
