package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "passw0rd": {},
	"123456": {}, "1234567": {}, "12345678": {}, "123456789": {}, "1234567890": {},
	"qwerty": {}, "qwerty123": {}, "qwertyuiop": {}, "1q2w3e4r": {}, "1qaz2wsx": {},
	"abc123": {}, "letmein": {}, "welcome": {}, "monkey": {}, "dragon": {},
	"sunshine": {}, "iloveyou": {}, "princess": {}, "football": {}, "baseball": {},
	"admin": {}, "admin123": {}, "administrator": {}, "root": {}, "toor": {},
	"master": {}, "secret": {}, "trustno1": {}, "superman": {}, "batman": {},
	"shadow": {}, "michael": {}, "111111": {}, "000000": {}, "654321": {},
}

// PasswordPolicy describes the character requirements of StrongPassword.
type PasswordPolicy struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	MinCharClasses   int
}

// DefaultPasswordPolicy is 8-128 characters with at least three character classes.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:      8,
		MaxLength:      128,
		MinCharClasses: 3,
	}
}

// StrongPassword checks a password against policy.
func StrongPassword(policy PasswordPolicy) func(string) bool {
	return func(s string) bool {
		n := utf8.RuneCountInString(s)
		if n < policy.MinLength || (policy.MaxLength > 0 && n > policy.MaxLength) {
			return false
		}

		var upper, lower, digit, special bool
		for _, r := range s {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			case unicode.IsPunct(r) || unicode.IsSymbol(r):
				special = true
			}
		}

		if (policy.RequireUppercase && !upper) ||
			(policy.RequireLowercase && !lower) ||
			(policy.RequireDigits && !digit) ||
			(policy.RequireSpecial && !special) {
			return false
		}

		classes := 0
		for _, has := range []bool{upper, lower, digit, special} {
			if has {
				classes++
			}
		}
		return classes >= policy.MinCharClasses
	}
}

// NotCommonPassword rejects well known weak passwords, ignoring case.
func NotCommonPassword(s string) bool {
	_, common := commonPasswords[strings.ToLower(s)]
	return !common
}
