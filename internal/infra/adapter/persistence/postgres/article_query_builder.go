package postgres

import (
	"fmt"
	"strings"

	"blog-api/internal/repository"
)

// ArticleQueryBuilder compiles an ArticleFilter into a WHERE clause with
// numbered placeholders. The same clause and argument list drive both the
// COUNT query and the SELECT query, so the reported total always matches the
// filter. Conditions that were not supplied are omitted entirely rather than
// compiled as no-ops.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// predicate is one filter condition before placeholder numbering. A nil
// value marks a literal condition that binds no argument.
type predicate struct {
	column   string
	operator string
	value    any
}

// BuildWhereClause builds the WHERE clause and arguments for the filter.
// Returns an empty clause when no conditions are supplied.
func (qb *ArticleQueryBuilder) BuildWhereClause(f repository.ArticleFilter) (clause string, args []any) {
	var predicates []predicate

	if f.PopularOnly {
		predicates = append(predicates, predicate{column: "popular", operator: "="})
	}
	if f.CategoryID != nil {
		predicates = append(predicates, predicate{column: "category_id", operator: "=", value: *f.CategoryID})
	}
	if f.Search != nil {
		predicates = append(predicates, predicate{column: "title|excerpt", operator: "ILIKE",
			value: "%" + escapeILIKE(*f.Search) + "%"})
	}
	if f.Featured {
		predicates = append(predicates, predicate{column: "featured", operator: "="})
	}
	if f.ExcludeID != nil {
		predicates = append(predicates, predicate{column: "id", operator: "!=", value: *f.ExcludeID})
	}
	if f.CreatedAfter != nil {
		predicates = append(predicates, predicate{column: "created_at", operator: ">", value: *f.CreatedAfter})
	}

	if len(predicates) == 0 {
		return "", nil
	}

	conditions := make([]string, 0, len(predicates))
	for _, p := range predicates {
		switch {
		case p.value == nil:
			conditions = append(conditions, fmt.Sprintf("%s = true", p.column))
		case p.operator == "ILIKE":
			// Substring search matches title or excerpt with one argument.
			n := len(args) + 1
			conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR excerpt ILIKE $%d)", n, n))
			args = append(args, p.value)
		default:
			conditions = append(conditions, fmt.Sprintf("%s %s $%d", p.column, p.operator, len(args)+1))
			args = append(args, p.value)
		}
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// escapeILIKE escapes the LIKE metacharacters so user input matches as a
// literal substring.
func escapeILIKE(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
