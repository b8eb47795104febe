package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/rohansood98/ggs-accounting/internal/reporting"
	"github.com/rohansood98/ggs-accounting/internal/store"
)

// runConsole is the read-only report console: the terminal rendition of the
// reporting screen. Input is either the name of a built-in report, the name
// of a saved query, or a raw SELECT statement. Errors are shown and the loop
// continues; nothing here is fatal.
func runConsole(st *store.Store, in io.Reader, out io.Writer) {
	builtins := builtinNames()
	fmt.Fprintln(out, "Report console. Enter a report name or a SELECT statement; 'exit' to quit.")
	fmt.Fprintln(out, "Built-in reports: "+strings.Join(builtins, ", "))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			return
		}
		sql, err := resolveQuery(st, input)
		if err != nil {
			fmt.Fprintln(out, "Error:", err)
			continue
		}
		cols, rows, err := reporting.RunQuery(st, sql)
		if err != nil {
			fmt.Fprintln(out, "Error:", err)
			continue
		}
		printTable(out, cols, rows)
	}
}

// resolveQuery maps a built-in report or saved query name to its SQL and
// passes anything else through untouched.
func resolveQuery(st *store.Store, input string) (string, error) {
	if sql, ok := reporting.BuiltinQueries[input]; ok {
		return sql, nil
	}
	saved, err := st.GetSavedQueries()
	if err != nil {
		return "", err
	}
	for _, q := range saved {
		if strings.EqualFold(q.Name, input) {
			return q.SQL, nil
		}
	}
	return input, nil
}

func builtinNames() []string {
	names := make([]string, 0, len(reporting.BuiltinQueries))
	for name := range reporting.BuiltinQueries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func printTable(out io.Writer, cols []string, rows [][]any) {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(cols, "\t"))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			switch v := cell.(type) {
			case nil:
				cells[i] = ""
			case []byte:
				cells[i] = string(v)
			default:
				cells[i] = fmt.Sprint(v)
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
	fmt.Fprintf(out, "(%d rows)\n", len(rows))
}
