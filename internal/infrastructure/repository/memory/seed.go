package memory

import (
	"context"
	"fmt"

	"github.com/lllypuk/userdeck/internal/domain/user"
)

type seedUser struct {
	name       string
	email      string
	role       string
	status     user.Status
	lastLogin  string // empty means never logged in
	dateJoined string
}

// seedUsers is the reference demo data set: 12 records spanning every role
// and status combination the admin screen filters on.
var seedUsers = []seedUser{
	{"John Smith", "john.smith@example.com", "admin", user.StatusActive, "2 hours ago", "Jan 15, 2024"},
	{"Alice Davis", "alice.davis@example.com", "user", user.StatusActive, "1 day ago", "Dec 8, 2023"},
	{"Mike Wilson", "mike.wilson@example.com", "moderator", user.StatusPending, "Never", "Jan 20, 2024"},
	{"Sarah Brown", "sarah.brown@example.com", "editor", user.StatusInactive, "3 weeks ago", "Nov 30, 2023"},
	{"Robert Johnson", "robert.johnson@example.com", "user", user.StatusActive, "5 hours ago", "Oct 12, 2023"},
	{"Emily Chen", "emily.chen@example.com", "user", user.StatusActive, "30 minutes ago", "Feb 3, 2024"},
	{"David Miller", "david.miller@example.com", "admin", user.StatusActive, "1 hour ago", "Sep 15, 2023"},
	{"Lisa Garcia", "lisa.garcia@example.com", "editor", user.StatusInactive, "1 week ago", "Nov 22, 2023"},
	{"Tom Anderson", "tom.anderson@example.com", "moderator", user.StatusPending, "Never", "Feb 10, 2024"},
	{"Maria Rodriguez", "maria.rodriguez@example.com", "user", user.StatusActive, "3 hours ago", "Jan 5, 2024"},
	{"Kevin Thompson", "kevin.thompson@example.com", "user", user.StatusInactive, "2 weeks ago", "Dec 1, 2023"},
	{"Anna White", "anna.white@example.com", "editor", user.StatusActive, "6 hours ago", "Oct 28, 2023"},
}

// SeedDemoData inserts the reference data set into the repository.
func SeedDemoData(ctx context.Context, repo *UserRepository) error {
	for _, s := range seedUsers {
		lastLogin := &s.lastLogin
		if s.lastLogin == "" {
			lastLogin = nil
		}

		u, err := user.NewUser(s.name, s.email, s.role, s.status, lastLogin, s.dateJoined)
		if err != nil {
			return fmt.Errorf("invalid seed record %q: %w", s.email, err)
		}
		if _, err := repo.Insert(ctx, u); err != nil {
			return fmt.Errorf("failed to seed %q: %w", s.email, err)
		}
	}
	return nil
}
