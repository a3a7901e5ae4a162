package repository

import (
	"strings"
	"testing"
)

func TestUniquenessChecksAreCaseSensitive(t *testing.T) {
	// Duplicate detection must compare the stored values exactly; a LOWER()
	// or ILIKE here would silently change the registration contract.
	for _, query := range []string{usernameOrEmailExistsQuery, usernameTakenByOtherQuery} {
		lowered := strings.ToLower(query)
		if strings.Contains(lowered, "lower(") || strings.Contains(lowered, "ilike") {
			t.Fatalf("uniqueness query must be case-sensitive: %s", query)
		}
	}
}

func TestUsernameTakenByOtherExcludesSelf(t *testing.T) {
	if !strings.Contains(usernameTakenByOtherQuery, "id <> $2") {
		t.Fatal("expected self-exclusion predicate in username uniqueness query")
	}
}

func TestUpdatePreservesUnsetFields(t *testing.T) {
	for _, fragment := range []string{
		`COALESCE(NULLIF($2, ''), username)`,
		`COALESCE(NULLIF($3, ''), password_hash)`,
		`COALESCE(NULLIF($4, ''), profile_image)`,
	} {
		if !strings.Contains(updateUserQuery, fragment) {
			t.Fatalf("expected update query to preserve unset fields via %q", fragment)
		}
	}
}
