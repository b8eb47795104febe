package store

import (
	"fmt"
	"strings"
)

// RunRawQuery is the read-only escape hatch for the report console. It
// executes exactly one SELECT statement and returns the column names plus the
// materialized rows. Anything that is not a single SELECT is rejected before
// it reaches the database.
func (s *Store) RunRawQuery(query string) ([]string, [][]any, error) {
	stmt, err := validateReadOnly(query)
	if err != nil {
		return nil, nil, err
	}
	rows, err := s.db.Raw(stmt).Rows()
	if err != nil {
		return nil, nil, fmt.Errorf("run query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("read columns: %w", err)
	}
	var out [][]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	return cols, out, nil
}

// validateReadOnly strips SQL comments, refuses multi-statement input and
// requires the first keyword to be SELECT. It returns the stripped statement.
// This closes the comment-prefix bypass of a plain prefix check; it is still
// a guard against destructive ad-hoc queries, not a full SQL parser.
func validateReadOnly(query string) (string, error) {
	stmt := stripComments(query)
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return "", ErrReadOnly
	}
	if i := indexOutsideQuotes(stmt, ';'); i >= 0 && strings.TrimSpace(stmt[i+1:]) != "" {
		return "", ErrReadOnly
	}
	fields := strings.Fields(stmt)
	if !strings.EqualFold(fields[0], "select") {
		return "", ErrReadOnly
	}
	return stmt, nil
}

// stripComments removes -- line comments and /* */ block comments while
// leaving single-quoted string literals intact.
func stripComments(query string) string {
	var b strings.Builder
	inString := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		if inString {
			b.WriteByte(c)
			if c == '\'' {
				inString = false
			}
			continue
		}
		switch {
		case c == '\'':
			inString = true
			b.WriteByte(c)
		case c == '-' && i+1 < len(query) && query[i+1] == '-':
			for i < len(query) && query[i] != '\n' {
				i++
			}
			b.WriteByte('\n')
		case c == '/' && i+1 < len(query) && query[i+1] == '*':
			i += 2
			for i+1 < len(query) && !(query[i] == '*' && query[i+1] == '/') {
				i++
			}
			i++ // skip closing slash; loop increment skips the star
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// indexOutsideQuotes returns the index of the first occurrence of c outside
// single-quoted literals, or -1.
func indexOutsideQuotes(s string, c byte) int {
	inString := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			inString = !inString
			continue
		}
		if !inString && s[i] == c {
			return i
		}
	}
	return -1
}
