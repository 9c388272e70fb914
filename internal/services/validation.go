package services

import (
	"regexp"
	"strings"
)

// cpfPattern is the contractual national-id format: 000.000.000-00.
var cpfPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

func validCPF(cpf string) bool {
	return cpfPattern.MatchString(cpf)
}

// validEmail requires exactly one "@" with non-empty local and domain parts.
func validEmail(email string) bool {
	if strings.Count(email, "@") != 1 {
		return false
	}
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}
