package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	emailTLDRegex = regexp.MustCompile(`^[a-z]{2,24}$`)
)

// maxEmailLen is the RFC 5321 address length ceiling.
const maxEmailLen = 254

// EmailPolicy carries the business-configurable parts of strict email
// validation. The TLD allow-list is a product rule, not a format rule, so it
// lives in data rather than code and can be overridden from configuration.
type EmailPolicy struct {
	AllowedTLDs []string `yaml:"allowed_tlds" json:"allowed_tlds"`
}

// DefaultEmailPolicy returns the TLD allow-list currently accepted at
// registration.
func DefaultEmailPolicy() EmailPolicy {
	return EmailPolicy{
		AllowedTLDs: []string{
			"com", "net", "org", "edu", "gov", "mil", "info",
			"io", "co", "in", "ai", "app", "dev",
		},
	}
}

func (p EmailPolicy) allowsTLD(tld string) bool {
	for _, allowed := range p.AllowedTLDs {
		if tld == allowed {
			return true
		}
	}
	return false
}

// Email validates the relaxed email shape used by login and profile forms:
// required, basic user@domain.tld pattern, at most 254 characters.
func Email(field, value string) Rule {
	return Chain(
		RequiredString(field, value),
		Rule{
			Check: func() bool {
				return emailRegex.MatchString(value)
			},
			Error: ValidationError{
				Field:          field,
				Message:        "must be a valid email address",
				TranslationKey: "validation.email",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		},
		MaxLenString(field, value, maxEmailLen),
	)
}

// StrictEmail validates the registration email shape. On top of the relaxed
// rule it constrains the local part (must start with a letter, no leading,
// trailing or consecutive dots), the domain labels (at most 63 characters,
// not hyphen-bounded) and the TLD (2-24 lowercase letters and a member of the
// policy allow-list).
func StrictEmail(field, value string, policy EmailPolicy) Rule {
	return Chain(
		Email(field, value),
		Rule{
			Check: func() bool {
				return validLocalPart(value)
			},
			Error: ValidationError{
				Field:          field,
				Message:        "email username has an invalid format",
				TranslationKey: "validation.email_local_part",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		},
		Rule{
			Check: func() bool {
				return validDomain(value, policy)
			},
			Error: ValidationError{
				Field:          field,
				Message:        "email domain is not supported",
				TranslationKey: "validation.email_domain",
				TranslationValues: map[string]any{
					"field":        field,
					"allowed_tlds": policy.AllowedTLDs,
				},
			},
		},
	)
}

// EmailLocalPart returns the part before "@", lowercased, or "" when the
// value is not an address. Password rules use it for the personal-info
// containment check.
func EmailLocalPart(value string) string {
	at := strings.Index(value, "@")
	if at <= 0 {
		return ""
	}
	return strings.ToLower(value[:at])
}

func validLocalPart(value string) bool {
	at := strings.Index(value, "@")
	if at <= 0 {
		return false
	}
	local := value[:at]

	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	if strings.Contains(local, "..") {
		return false
	}

	first := local[0]
	return (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')
}

func validDomain(value string, policy EmailPolicy) bool {
	at := strings.LastIndex(value, "@")
	if at < 0 || at == len(value)-1 {
		return false
	}
	domain := value[at+1:]

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" || len(l) > 63 {
			return false
		}
		if strings.HasPrefix(l, "-") || strings.HasSuffix(l, "-") {
			return false
		}
	}

	tld := labels[len(labels)-1]
	if !emailTLDRegex.MatchString(tld) {
		return false
	}
	return policy.allowsTLD(tld)
}

// AllowedTLDsLabel formats the policy allow-list for help text.
func (p EmailPolicy) AllowedTLDsLabel() string {
	return fmt.Sprintf("supported domains: .%s", strings.Join(p.AllowedTLDs, ", ."))
}
