package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// orderClause builds a safe ORDER BY expression from user input
func orderClause(sortField, orderDir string, allowedFields map[string]bool) string {
	return ValidateSortField(sortField, allowedFields, "created_at") + " " + ValidateSortOrder(orderDir)
}

// AdvanceChargeSortFields contains allowed sort fields for advance charges
var AdvanceChargeSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"receipt_number":   true,
	"receipt_date":     true,
	"total_amount":     true,
	"collected_amount": true,
	"status":           true,
}

// MemberSortFields contains allowed sort fields for members
var MemberSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"member_number":   true,
	"name":            true,
	"advance_payment": true,
	"sort":            true,
}
