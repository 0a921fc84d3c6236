// Package query turns raw list parameters into a bounded, allow-listed
// description of which posts to read and in what order.
package query

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"wellnessPosts/internal/models"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultSortBy   = "createdAt"
)

const (
	DirectionAsc  = "ASC"
	DirectionDesc = "DESC"
)

// sortColumns is the only source of column names that reach ORDER BY.
var sortColumns = map[string]string{
	"id":        "id",
	"title":     "title",
	"desc":      "description",
	"tag":       "tag",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// Params are list parameters as they arrive on the query string.
type Params struct {
	Page      string
	PageSize  string
	SortBy    string
	SortOrder string
	Keyword   string
	Tag       string
}

type Spec struct {
	Page       int
	PageSize   int
	SortField  string
	SortColumn string
	Direction  string
	Keyword    string
	Tag        string
}

func FromValues(values url.Values) Params {
	return Params{
		Page:      values.Get("page"),
		PageSize:  values.Get("pageSize"),
		SortBy:    values.Get("sortBy"),
		SortOrder: values.Get("sortOrder"),
		Keyword:   values.Get("keyword"),
		Tag:       values.Get("tag"),
	}
}

// Build never fails: every malformed value falls back to its default.
func Build(p Params) Spec {
	spec := Spec{
		Page:       positiveInt(p.Page, DefaultPage),
		PageSize:   positiveInt(p.PageSize, DefaultPageSize),
		SortField:  DefaultSortBy,
		SortColumn: sortColumns[DefaultSortBy],
		Direction:  DirectionDesc,
		Keyword:    p.Keyword,
		Tag:        p.Tag,
	}

	// keeps (page-1)*pageSize inside int64
	if spec.Page > math.MaxInt32 {
		spec.Page = math.MaxInt32
	}

	if spec.PageSize > MaxPageSize {
		spec.PageSize = MaxPageSize
	}

	if column, ok := sortColumns[p.SortBy]; ok {
		spec.SortField = p.SortBy
		spec.SortColumn = column
	}

	if strings.EqualFold(strings.TrimSpace(p.SortOrder), "asc") {
		spec.Direction = DirectionAsc
	}

	return spec
}

func (s Spec) Offset() int {
	return (s.Page - 1) * s.PageSize
}

func (s Spec) Limit() int {
	return s.PageSize
}

// SQL appends the filter, ordering and window to base. Placeholders are
// written as "?" and must be rebound for the target driver.
func (s Spec) SQL(base string) (string, []any) {
	var (
		b     strings.Builder
		where []string
		args  []any
	)

	b.WriteString(base)

	if s.Tag != "" {
		where = append(where, "tag = ?")
		args = append(args, s.Tag)
	}

	if s.Keyword != "" {
		pattern := "%" + escapeLike(strings.ToLower(s.Keyword)) + "%"
		where = append(where, `(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}

	b.WriteString(" ORDER BY ")
	b.WriteString(s.SortColumn)
	b.WriteString(" ")
	b.WriteString(s.Direction)
	if s.SortColumn != "id" {
		b.WriteString(", id ")
		b.WriteString(s.Direction)
	}

	b.WriteString(" LIMIT ? OFFSET ?")
	args = append(args, s.Limit(), s.Offset())

	return b.String(), args
}

// Matches reports whether post passes the tag and keyword filters.
func (s Spec) Matches(post models.Post) bool {
	if s.Tag != "" && (post.Tag == nil || *post.Tag != s.Tag) {
		return false
	}

	if s.Keyword != "" {
		keyword := strings.ToLower(s.Keyword)
		if !strings.Contains(strings.ToLower(post.Title), keyword) &&
			!strings.Contains(strings.ToLower(post.Desc), keyword) {
			return false
		}
	}

	return true
}

// positiveInt reads the leading integer of value ("5abc" is 5, "2.5" is 2)
// and falls back when there is none or it is below 1.
func positiveInt(value string, fallback int) int {
	value = strings.TrimSpace(value)

	end := 0
	if end < len(value) && (value[end] == '+' || value[end] == '-') {
		end++
	}
	digits := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == digits {
		return fallback
	}

	n, err := strconv.Atoi(value[:end])
	if errors.Is(err, strconv.ErrRange) && value[0] != '-' {
		return math.MaxInt
	}
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
