package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/lllypuk/userdeck/internal/application/appcore"
	"github.com/lllypuk/userdeck/internal/domain/user"
)

// ListUsersUseCase turns a filter/search/pagination query into one stable
// page of users plus the invariant total count.
//
// The collection snapshot is processed in store insertion order, which is the
// only ordering applied; the search predicate is an OR across name, email and
// role while the status and role filters AND-compose with it and with each
// other. Pagination happens strictly after filtering, so Total never depends
// on Page or PageSize.
type ListUsersUseCase struct {
	userRepo QueryRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase.
func NewListUsersUseCase(userRepo QueryRepository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

// Execute runs the query and returns the requested page.
func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (UsersListResult, error) {
	query = query.Normalize()

	if err := uc.validate(query); err != nil {
		return UsersListResult{}, fmt.Errorf("validation failed: %w", err)
	}

	all, err := uc.userRepo.ListAll(ctx)
	if err != nil {
		return UsersListResult{}, fmt.Errorf("failed to list users: %w", err)
	}

	filtered := filterUsers(all, query)
	total := len(filtered)

	return UsersListResult{
		Users:      pageSlice(filtered, query.Page, query.PageSize),
		Total:      total,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalPages: totalPages(total, query.PageSize),
	}, nil
}

func (uc *ListUsersUseCase) validate(query ListUsersQuery) error {
	if err := appcore.ValidatePositive("page", query.Page); err != nil {
		return err
	}
	if err := appcore.ValidateRange("pageSize", query.PageSize, 1, MaxPageSize); err != nil {
		return err
	}
	return nil
}

// filterUsers applies search, status and role in sequence, each step
// narrowing the previous one's output.
func filterUsers(users []*user.User, query ListUsersQuery) []*user.User {
	filtered := users

	if query.Search != "" {
		term := strings.ToLower(query.Search)
		filtered = keep(filtered, func(u *user.User) bool {
			return strings.Contains(strings.ToLower(u.Name()), term) ||
				strings.Contains(strings.ToLower(u.Email()), term) ||
				strings.Contains(strings.ToLower(u.Role()), term)
		})
	}

	if query.Status != "" {
		filtered = keep(filtered, func(u *user.User) bool {
			return string(u.Status()) == query.Status
		})
	}

	if query.Role != "" {
		filtered = keep(filtered, func(u *user.User) bool {
			return u.Role() == query.Role
		})
	}

	return filtered
}

func keep(users []*user.User, pred func(*user.User) bool) []*user.User {
	out := make([]*user.User, 0, len(users))
	for _, u := range users {
		if pred(u) {
			out = append(out, u)
		}
	}
	return out
}

// pageSlice cuts [start, end) out of the filtered sequence. Indices past the
// end yield fewer or zero records; a page beyond the range is not an error.
func pageSlice(users []*user.User, page, pageSize int) []*user.User {
	start := (page - 1) * pageSize
	if start >= len(users) {
		return []*user.User{}
	}
	end := start + pageSize
	if end > len(users) {
		end = len(users)
	}
	return users[start:end]
}

// totalPages is ceil(total/pageSize); zero when nothing matched.
func totalPages(total, pageSize int) int {
	return (total + pageSize - 1) / pageSize
}
