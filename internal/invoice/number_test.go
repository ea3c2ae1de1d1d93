package invoice

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext_EmptyTable(t *testing.T) {
	assert.Equal(t, "INV-000001", Next(nil))
	assert.Equal(t, "INV-000001", Next([]string{}))
}

func TestNext_SequentialIssue(t *testing.T) {
	var existing []string
	for k := 1; k <= 12; k++ {
		next := Next(existing)
		assert.Equal(t, fmt.Sprintf("INV-%06d", k), next)
		existing = append(existing, next)
	}
}

func TestNext_IgnoresNonMatchingValues(t *testing.T) {
	existing := []string{"INV-000003", "garbage", "INV-000001"}
	assert.Equal(t, "INV-000004", Next(existing))
}

func TestNext_TracksMaximumNotCount(t *testing.T) {
	// Gaps in the sequence don't matter, only the maximum suffix seen.
	existing := []string{"INV-000001", "INV-000900"}
	assert.Equal(t, "INV-000901", Next(existing))
}

func TestNext_AllMalformed(t *testing.T) {
	existing := []string{"", "INV-", "inv-000005", "REF-000009"}
	assert.Equal(t, "INV-000001", Next(existing))
}

func TestFormatNumber_Padding(t *testing.T) {
	assert.Equal(t, "INV-000007", FormatNumber(7))
	assert.Equal(t, "INV-123456", FormatNumber(123456))
	assert.Equal(t, "INV-1234567", FormatNumber(1234567))
}
