package config

import (
	"errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opdbook/formkit/pkg/validator"
)

// LoadEmailPolicy reads the registration TLD allow-list from a YAML file:
//
//	allowed_tlds:
//	  - com
//	  - org
//	  - in
//
// TLDs are lowercased and deduplicated; an empty or missing list is an error
// so a bad deploy cannot silently reject every registration email.
func LoadEmailPolicy(path string) (validator.EmailPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return validator.EmailPolicy{}, errors.Join(ErrReadingPolicy, err)
	}

	var policy validator.EmailPolicy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return validator.EmailPolicy{}, errors.Join(ErrReadingPolicy, err)
	}

	seen := make(map[string]struct{}, len(policy.AllowedTLDs))
	tlds := make([]string, 0, len(policy.AllowedTLDs))
	for _, tld := range policy.AllowedTLDs {
		tld = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(tld, ".")))
		if tld == "" {
			continue
		}
		if _, dup := seen[tld]; dup {
			continue
		}
		seen[tld] = struct{}{}
		tlds = append(tlds, tld)
	}
	if len(tlds) == 0 {
		return validator.EmailPolicy{}, ErrEmptyPolicy
	}

	return validator.EmailPolicy{AllowedTLDs: tlds}, nil
}
