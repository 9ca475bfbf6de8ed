package validation

import (
	"fmt"
	"strings"
)

// CleanCPF strips everything but digits from a CPF, accepting both the
// formatted (XXX.XXX.XXX-XX) and the bare 11-digit form.
func CleanCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCPF renders an 11-digit CPF as XXX.XXX.XXX-XX. Inputs that are not
// 11 digits after cleaning are returned unchanged.
func FormatCPF(cpf string) string {
	digits := CleanCPF(cpf)
	if len(digits) != 11 {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", digits[:3], digits[3:6], digits[6:9], digits[9:])
}

// ValidateCPF validates the format and both check digits of a Brazilian CPF.
// It returns the cleaned 11-digit form on success.
func ValidateCPF(cpf string) (string, error) {
	digits := CleanCPF(cpf)

	if len(digits) != 11 {
		return "", fmt.Errorf("cpf must contain 11 digits")
	}

	// Repeated sequences (e.g. 111.111.111-11) pass the check-digit math
	// but are not valid documents.
	if digits == strings.Repeat(string(digits[0]), 11) {
		return "", fmt.Errorf("invalid cpf")
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	d1 := 0
	if rest := sum % 11; rest >= 2 {
		d1 = 11 - rest
	}
	if int(digits[9]-'0') != d1 {
		return "", fmt.Errorf("invalid cpf: first check digit mismatch")
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	d2 := 0
	if rest := sum % 11; rest >= 2 {
		d2 = 11 - rest
	}
	if int(digits[10]-'0') != d2 {
		return "", fmt.Errorf("invalid cpf: second check digit mismatch")
	}

	return digits, nil
}
