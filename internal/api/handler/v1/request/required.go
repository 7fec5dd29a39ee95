package request

import (
	"net/url"
	"strings"
)

const msgFieldRequired = "This field is required."

// RequireQuery reports the first of fields that is absent or blank in values.
// The result holds at most one entry.
func RequireQuery(values url.Values, fields ...string) map[string]string {
	for _, field := range fields {
		if strings.TrimSpace(values.Get(field)) == "" {
			return map[string]string{field: msgFieldRequired}
		}
	}
	return nil
}

// RequireBody reports every field that is absent or blank in body.
func RequireBody(body map[string]string, fields ...string) map[string]string {
	var missing map[string]string
	for _, field := range fields {
		if strings.TrimSpace(body[field]) == "" {
			if missing == nil {
				missing = make(map[string]string)
			}
			missing[field] = msgFieldRequired
		}
	}
	return missing
}

// FirstField returns the only key of a RequireQuery result.
func FirstField(missing map[string]string) string {
	for field := range missing {
		return field
	}
	return ""
}
