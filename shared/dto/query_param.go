package dto

import (
	"fmt"
	"net/http"
	"rentdesk/shared/constant"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// Sort is one ORDER BY term. Column must be a trusted, table-qualified name.
type Sort struct {
	Column string
	Dir    string
}

type QueryParams struct {
	Page  int    `json:"page"  validate:"omitempty"`
	Limit int    `json:"limit" validate:"omitempty"`
	Sorts []Sort `json:"-"`
}

// FromRequest populates paging from the HTTP request.
// When `defaultRequest` is true, Page and Limit fall back to their defaults if absent.
// Ordering is never read from the request; callers set Sorts themselves.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// OrderBy adds a sort term.
func (q *QueryParams) OrderBy(column, dir string) *QueryParams {
	dir = strings.ToUpper(dir)
	if dir != SortDirAsc {
		dir = SortDirDesc
	}

	q.Sorts = append(q.Sorts, Sort{Column: column, Dir: dir})

	return q
}

// OrderClause renders the ORDER BY clause, or an empty string when no sort is set.
func (q *QueryParams) OrderClause() string {
	if len(q.Sorts) == 0 {
		return ""
	}

	terms := make([]string, len(q.Sorts))
	for i, sort := range q.Sorts {
		terms[i] = fmt.Sprintf("%s %s", sort.Column, sort.Dir)
	}

	return "ORDER BY " + strings.Join(terms, ", ")
}

// CacheSuffix identifies the paging window in cache keys.
func (q *QueryParams) CacheSuffix() string {
	return fmt.Sprintf("p%d-l%d", q.Page, q.Limit)
}
