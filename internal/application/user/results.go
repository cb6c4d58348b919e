package user

import "github.com/lllypuk/userdeck/internal/domain/user"

// Result is the outcome of a single-user operation.
type Result struct {
	User *user.User
}

// UsersListResult is the outcome of a list query: one page of records plus
// the pagination envelope. Total counts every record matching the filters,
// regardless of the requested page.
type UsersListResult struct {
	Users      []*user.User
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}
