package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// words splits s at separators, lower-to-upper transitions and the end of
// upper-case runs followed by a lower-case letter ("HTTPServer" -> HTTP, Server).
func words(s string) []string {
	runes := []rune(s)
	var out []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}

func joinWords(s, sep string, word func(i int, w string) string) string {
	parts := words(s)
	for i, w := range parts {
		parts[i] = word(i, w)
	}
	return strings.Join(parts, sep)
}

// title upper-cases the first letter and lower-cases the rest.
// A Caser is not safe for concurrent use, so one is made per call.
func title(w string) string {
	return cases.Title(language.Und).String(w)
}

func lower(_ int, w string) string { return strings.ToLower(w) }
func upper(_ int, w string) string { return strings.ToUpper(w) }
func titled(_ int, w string) string { return title(w) }

// ToTitle converts to "Title Case".
func ToTitle(s string) string { return joinWords(s, " ", titled) }

// ToCamel converts to "camelCase".
func ToCamel(s string) string {
	return joinWords(s, "", func(i int, w string) string {
		if i == 0 {
			return strings.ToLower(w)
		}
		return title(w)
	})
}

// ToPascal converts to "PascalCase".
func ToPascal(s string) string { return joinWords(s, "", titled) }

// ToSnake converts to "snake_case".
func ToSnake(s string) string { return joinWords(s, "_", lower) }

// ToKebab converts to "kebab-case".
func ToKebab(s string) string { return joinWords(s, "-", lower) }

// ToConstant converts to "CONSTANT_CASE".
func ToConstant(s string) string { return joinWords(s, "_", upper) }

// ToTrain converts to "Train-Case".
func ToTrain(s string) string { return joinWords(s, "-", titled) }

// ToFlat converts to "flatcase".
func ToFlat(s string) string { return joinWords(s, "", lower) }
