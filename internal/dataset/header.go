package dataset

import "strings"

const bom = "\ufeff"

// Logical column keys after normalization.
const (
	ColumnName           = "name"
	ColumnType           = "type"
	ColumnFunction       = "function"
	ColumnSwallowingRole = "roleinswallowing"
)

var headerCorrections = map[string]string{
	"fuction":            ColumnFunction,
	"role_in_swallowing": ColumnSwallowingRole,
}

// NormalizeHeader maps a raw header cell to its lookup key.
func NormalizeHeader(header string) string {
	h := strings.TrimSpace(header)
	h = strings.TrimPrefix(h, bom)
	h = strings.TrimSpace(h)
	h = strings.ToLower(h)
	h = strings.ReplaceAll(h, " ", "")

	if fixed, ok := headerCorrections[h]; ok {
		return fixed
	}

	return h
}

// NormalizeRole trims a swallowing role and maps "none" to the empty string.
func NormalizeRole(value string) string {
	v := strings.TrimSpace(value)
	if v == "" || strings.EqualFold(v, "none") {
		return ""
	}
	return v
}
