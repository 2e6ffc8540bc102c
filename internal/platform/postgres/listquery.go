package postgres

import (
	"fmt"
	"strings"

	"github.com/phrazzld/itinerary-api/internal/store"
)

// likeEscaper escapes the LIKE metacharacters so that user input matches
// literally. Backslash is PostgreSQL's default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// listQuery accumulates the conjunctive WHERE terms of a paginated listing and
// renders the page query and the matching count query. Placeholders are
// numbered in the order arguments are added.
type listQuery struct {
	table   string
	columns string
	orderBy string
	terms   []string
	args    []any
}

func newListQuery(table, columns, orderBy string) *listQuery {
	return &listQuery{table: table, columns: columns, orderBy: orderBy}
}

func (q *listQuery) bind(v any) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

// contains adds a case-insensitive substring match. An empty value adds nothing.
func (q *listQuery) contains(column, value string) {
	q.containsAny([]string{column}, value)
}

// containsAny adds one term matching value as a substring of any of columns.
func (q *listQuery) containsAny(columns []string, value string) {
	if value == "" || len(columns) == 0 {
		return
	}
	ph := q.bind(likeEscaper.Replace(value))
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = fmt.Sprintf("%s ILIKE '%%' || %s || '%%'", c, ph)
	}
	if len(parts) == 1 {
		q.terms = append(q.terms, parts[0])
		return
	}
	q.terms = append(q.terms, "("+strings.Join(parts, " OR ")+")")
}

// equals adds an exact match.
func (q *listQuery) equals(column string, value any) {
	q.terms = append(q.terms, fmt.Sprintf("%s = %s", column, q.bind(value)))
}

// atLeast adds an inclusive lower bound.
func (q *listQuery) atLeast(column string, value any) {
	q.terms = append(q.terms, fmt.Sprintf("%s >= %s", column, q.bind(value)))
}

func (q *listQuery) where() string {
	if len(q.terms) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.terms, " AND ")
}

// countSQL returns the query counting every row that matches the filters.
func (q *listQuery) countSQL() (string, []any) {
	return "SELECT COUNT(*) FROM " + q.table + q.where(), q.args
}

// selectSQL returns the query for one page of matching rows.
func (q *listQuery) selectSQL(page store.Page) (string, []any) {
	args := make([]any, len(q.args), len(q.args)+2)
	copy(args, q.args)
	args = append(args, page.Size, page.Offset())

	sql := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		q.columns, q.table, q.where(), q.orderBy, len(args)-1, len(args))
	return sql, args
}
