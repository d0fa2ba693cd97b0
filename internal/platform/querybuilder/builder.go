package querybuilder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// PlaceholderFormat selects how bind parameters are rendered.
type PlaceholderFormat int

const (
	// Dollar renders $1, $2, ... (Postgres).
	Dollar PlaceholderFormat = iota
	// Question renders ? (SQLite).
	Question
)

func (f PlaceholderFormat) render(i int) string {
	if f == Question {
		return "?"
	}
	return "$" + strconv.Itoa(i)
}

// sqlWriter accumulates SQL text and bind arguments for one statement,
// including any nested CTEs or subqueries rendered into it.
type sqlWriter struct {
	buf    *bytebufferpool.ByteBuffer
	args   []any
	format PlaceholderFormat
}

func newSQLWriter(format PlaceholderFormat) *sqlWriter {
	return &sqlWriter{buf: bytebufferpool.Get(), format: format}
}

// finish returns the rendered statement and releases the buffer.
func (w *sqlWriter) finish() (string, []any) {
	query := w.buf.String()
	bytebufferpool.Put(w.buf)
	w.buf = nil
	return query, w.args
}

func (w *sqlWriter) bind(value any) {
	w.args = append(w.args, value)
	_, _ = w.buf.WriteString(w.format.render(len(w.args)))
}

func (w *sqlWriter) write(parts ...string) {
	for _, p := range parts {
		_, _ = w.buf.WriteString(p)
	}
}

type Condition interface {
	appendSQL(w *sqlWriter)
}

type eqCondition struct {
	column string
	op     string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, op: " = ", value: value}
}

func Ne(column string, value any) Condition {
	return eqCondition{column: column, op: " <> ", value: value}
}

func (c eqCondition) appendSQL(w *sqlWriter) {
	w.write(c.column, c.op)
	w.bind(c.value)
}

type inCondition struct {
	column string
	values []any
	negate bool
}

// In renders a membership predicate. An empty set matches nothing.
func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

// NotIn renders a negated membership predicate. An empty set matches everything.
func NotIn(column string, values []any) Condition {
	return inCondition{column: column, values: values, negate: true}
}

// InStrings is In over a string slice.
func InStrings(column string, values []string) Condition {
	return In(column, Strings(values))
}

// NotInStrings is NotIn over a string slice.
func NotInStrings(column string, values []string) Condition {
	return NotIn(column, Strings(values))
}

func (c inCondition) appendSQL(w *sqlWriter) {
	if len(c.values) == 0 {
		if c.negate {
			w.write("1=1")
		} else {
			w.write("1=0")
		}
		return
	}

	w.write(c.column)
	if c.negate {
		w.write(" NOT IN (")
	} else {
		w.write(" IN (")
	}
	for i, v := range c.values {
		if i > 0 {
			w.write(", ")
		}
		w.bind(v)
	}
	w.write(")")
}

type betweenCondition struct {
	column string
	lo, hi any
}

// Between renders an inclusive range predicate.
func Between(column string, lo, hi any) Condition {
	return betweenCondition{column: column, lo: lo, hi: hi}
}

func (c betweenCondition) appendSQL(w *sqlWriter) {
	w.write(c.column, " BETWEEN ")
	w.bind(c.lo)
	w.write(" AND ")
	w.bind(c.hi)
}

type subqueryCondition struct {
	column string
	sub    *SelectBuilder
}

// InSelect renders column IN (subquery).
func InSelect(column string, sub *SelectBuilder) Condition {
	return subqueryCondition{column: column, sub: sub}
}

func (c subqueryCondition) appendSQL(w *sqlWriter) {
	w.write(c.column, " IN (")
	c.sub.render(w)
	w.write(")")
}

type isNullCondition struct {
	column string
}

func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func (c isNullCondition) appendSQL(w *sqlWriter) {
	w.write(c.column, " IS NULL")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr renders a raw expression, binding each ? to the next argument.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) appendSQL(w *sqlWriter) {
	next := 0
	for i := 0; i < len(c.expr); i++ {
		if c.expr[i] == '?' && next < len(c.args) {
			w.bind(c.args[next])
			next++
			continue
		}
		_ = w.buf.WriteByte(c.expr[i])
	}
}

type literalCondition struct {
	column string
	op     string
	value  string
}

func EqLiteral(column, value string) Condition {
	return literalCondition{column: column, op: " = ", value: value}
}

func NeLiteral(column, value string) Condition {
	return literalCondition{column: column, op: " <> ", value: value}
}

func (c literalCondition) appendSQL(w *sqlWriter) {
	w.write(c.column, c.op, quoteLiteral(c.value))
}

type cte struct {
	name  string
	query *SelectBuilder
}

type join struct {
	kind  string
	table string
	on    []Condition
}

type SelectBuilder struct {
	with     []cte
	distinct bool
	columns  []string
	table    string
	fromSub  *SelectBuilder
	alias    string
	joins    []join
	where    []Condition
	groupBy  []string
	having   []Condition
	orderBy  []string
	limit    int
	format   PlaceholderFormat
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

// Format sets the placeholder style used by ToSQL. Nested builders
// inherit the format of the statement they are rendered into.
func (b *SelectBuilder) Format(f PlaceholderFormat) *SelectBuilder {
	b.format = f
	return b
}

func (b *SelectBuilder) With(name string, query *SelectBuilder) *SelectBuilder {
	b.with = append(b.with, cte{name: name, query: query})
	return b
}

func (b *SelectBuilder) Distinct() *SelectBuilder {
	b.distinct = true
	return b
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

// FromSelect selects from a derived table.
func (b *SelectBuilder) FromSelect(sub *SelectBuilder, alias string) *SelectBuilder {
	b.fromSub = sub
	b.alias = alias
	return b
}

func (b *SelectBuilder) Join(table string, on ...Condition) *SelectBuilder {
	b.joins = append(b.joins, join{kind: "JOIN", table: table, on: on})
	return b
}

func (b *SelectBuilder) LeftJoin(table string, on ...Condition) *SelectBuilder {
	b.joins = append(b.joins, join{kind: "LEFT JOIN", table: table, on: on})
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) GroupBy(parts ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, parts...)
	return b
}

func (b *SelectBuilder) Having(conditions ...Condition) *SelectBuilder {
	b.having = append(b.having, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) validate() error {
	if len(b.columns) == 0 {
		return fmt.Errorf("select columns are required")
	}
	if b.fromSub == nil && strings.TrimSpace(b.table) == "" {
		return fmt.Errorf("select table is required")
	}
	if b.fromSub != nil && strings.TrimSpace(b.alias) == "" {
		return fmt.Errorf("derived table alias is required")
	}
	for _, c := range b.with {
		if strings.TrimSpace(c.name) == "" || c.query == nil {
			return fmt.Errorf("cte name and query are required")
		}
		if err := c.query.validate(); err != nil {
			return fmt.Errorf("cte %s: %w", c.name, err)
		}
	}
	if b.fromSub != nil {
		if err := b.fromSub.validate(); err != nil {
			return fmt.Errorf("derived table %s: %w", b.alias, err)
		}
	}
	return nil
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if err := b.validate(); err != nil {
		return "", nil, err
	}

	w := newSQLWriter(b.format)
	b.render(w)
	query, args := w.finish()
	return query, args, nil
}

func (b *SelectBuilder) render(w *sqlWriter) {
	if len(b.with) > 0 {
		w.write("WITH ")
		for i, c := range b.with {
			if i > 0 {
				w.write(", ")
			}
			w.write(c.name, " AS (")
			c.query.render(w)
			w.write(")")
		}
		w.write(" ")
	}

	w.write("SELECT ")
	if b.distinct {
		w.write("DISTINCT ")
	}
	w.write(strings.Join(b.columns, ", "), " FROM ")
	if b.fromSub != nil {
		w.write("(")
		b.fromSub.render(w)
		w.write(") ", b.alias)
	} else {
		w.write(b.table)
	}

	for _, j := range b.joins {
		w.write(" ", j.kind, " ", j.table)
		if len(j.on) > 0 {
			w.write(" ON ")
			appendConditions(w, j.on)
		}
	}

	appendClause(w, " WHERE ", b.where)
	if len(b.groupBy) > 0 {
		w.write(" GROUP BY ", strings.Join(b.groupBy, ", "))
	}
	appendClause(w, " HAVING ", b.having)
	if len(b.orderBy) > 0 {
		w.write(" ORDER BY ", strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.write(" LIMIT ", strconv.Itoa(b.limit))
	}
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
	format  PlaceholderFormat
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Format(f PlaceholderFormat) *InsertBuilder {
	b.format = f
	return b
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	w := newSQLWriter(b.format)
	defer func() {
		if w.buf != nil {
			bytebufferpool.Put(w.buf)
		}
	}()
	w.write("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES ")
	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			w.write(", ")
		}
		w.write("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				w.write(", ")
			}
			w.bind(value)
		}
		w.write(")")
	}

	if b.suffix != "" {
		w.write(" ", b.suffix)
	}

	query, args := w.finish()
	return query, args, nil
}

func appendConditions(w *sqlWriter, conditions []Condition) {
	for i, c := range conditions {
		if i > 0 {
			w.write(" AND ")
		}
		c.appendSQL(w)
	}
}

func appendClause(w *sqlWriter, keyword string, conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.write(keyword)
	appendConditions(w, conditions)
}

// Strings converts a string slice into bind arguments.
func Strings(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

func quoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
