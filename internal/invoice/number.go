package invoice

import (
	"fmt"
	"regexp"
	"strconv"
)

// Invoice numbers look like INV-000042: a fixed prefix and a
// zero-padded decimal suffix that increases by one per registration.
var numberPattern = regexp.MustCompile(`INV-(\d+)`)

// Next derives the next invoice number from every number already
// issued. Values that don't match the INV-<digits> shape are skipped,
// not errors. An empty slice yields INV-000001.
//
// Uniqueness under concurrent callers is not this function's job: the
// caller runs it inside the registration-creation transaction and
// relies on the unique index on invoice_number plus a bounded retry.
func Next(existing []string) string {
	max := 0
	for _, s := range existing {
		m := numberPattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return FormatNumber(max + 1)
}

func FormatNumber(n int) string {
	return fmt.Sprintf("INV-%06d", n)
}
