package middleware

import (
	"strings"

	"game-admin/internal/signature"
)

// SensitiveFieldPatterns match request parameters that must never reach logs
var SensitiveFieldPatterns = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"credential",
	"api_key",
	"apikey",
	"private_key",
}

// RedactParams returns a copy of req with sensitive values masked
func RedactParams(req signature.Request) map[string]interface{} {
	if req == nil {
		return nil
	}

	filtered := make(map[string]interface{}, len(req))
	for key, value := range req {
		if isSensitiveField(key) {
			filtered[key] = "[REDACTED]"
			continue
		}
		filtered[key] = value
	}
	return filtered
}

func isSensitiveField(fieldName string) bool {
	fieldLower := strings.ToLower(fieldName)

	for _, pattern := range SensitiveFieldPatterns {
		if strings.Contains(fieldLower, pattern) {
			return true
		}
	}
	return false
}
