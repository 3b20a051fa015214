package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// parseRFC3339 decodes a stored timestamp, naming the column in the
// error so scan failures are traceable.
func parseRFC3339(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", column, err)
	}
	return t, nil
}

// appendPagination adds LIMIT/OFFSET clauses for positive values.
// SQLite accepts OFFSET only after a LIMIT, so an offset on its own
// gets LIMIT -1 (unlimited).
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
