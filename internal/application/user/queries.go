package user

import "strings"

// Query is the base interface for read operations.
type Query interface {
	QueryName() string
}

// Pagination defaults and bounds.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// FilterAll is the presentation-layer sentinel meaning "no filter".
// It is translated to an absent filter during normalization and never
// matched literally against record fields.
const FilterAll = "all"

// GetUserQuery fetches a single user by identifier.
type GetUserQuery struct {
	UserID int
}

func (q GetUserQuery) QueryName() string { return "GetUser" }

// ListUsersQuery is a filtered, paginated list request.
// Zero Page/PageSize mean "use defaults".
type ListUsersQuery struct {
	Search   string
	Status   string
	Role     string
	Page     int
	PageSize int
}

func (q ListUsersQuery) QueryName() string { return "ListUsers" }

// Normalize returns a copy with filters and paging brought into canonical
// form: filter strings are trimmed, with empty and the "all" sentinel both
// collapsing to absent; zero paging fields get the defaults. Search, status
// and role are deliberately treated the same way.
func (q ListUsersQuery) Normalize() ListUsersQuery {
	q.Search = normalizeFilter(q.Search)
	q.Status = normalizeFilter(q.Status)
	q.Role = normalizeFilter(q.Role)

	if q.Page == 0 {
		q.Page = DefaultPage
	}
	if q.PageSize == 0 {
		q.PageSize = DefaultPageSize
	}
	return q
}

func normalizeFilter(v string) string {
	v = strings.TrimSpace(v)
	if v == FilterAll {
		return ""
	}
	return v
}
