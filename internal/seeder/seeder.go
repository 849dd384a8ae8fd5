// Package seeder populates the in-memory stores with demo data for local
// development. Production deployments sync the directory from the member
// registry instead.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	dirmodels "quorum/internal/directory/models"
	ledgermodels "quorum/internal/ledger/models"
	rostermodels "quorum/internal/roster/models"
)

// MemberStore defines methods for seeding members.
type MemberStore interface {
	Insert(ctx context.Context, m *dirmodels.Member) error
}

// UserStore defines methods for seeding roster users.
type UserStore interface {
	Insert(ctx context.Context, u *rostermodels.User) error
}

// LedgerStore defines methods for seeding the activity trail.
type LedgerStore interface {
	AppendActivity(ctx context.Context, a *ledgermodels.RegistrationActivity) error
	SaveRegistration(ctx context.Context, r *ledgermodels.Registration) error
}

// Seeder populates in-memory stores with demo data.
type Seeder struct {
	members MemberStore
	users   UserStore
	ledger  LedgerStore
	eventID uuid.UUID
	logger  *slog.Logger
}

func New(members MemberStore, users UserStore, ledger LedgerStore, eventID uuid.UUID, logger *slog.Logger) *Seeder {
	return &Seeder{
		members: members,
		users:   users,
		ledger:  ledger,
		eventID: eventID,
		logger:  logger,
	}
}

// SeedAll populates all stores with demo data.
func (s *Seeder) SeedAll(ctx context.Context) error {
	s.logger.Info("seeding demo data...")

	members := DemoMembers()
	for _, m := range members {
		if err := s.members.Insert(ctx, m); err != nil {
			return fmt.Errorf("failed to seed members: %w", err)
		}
	}

	users, err := s.seedUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := s.seedLedger(ctx, members); err != nil {
		return fmt.Errorf("failed to seed ledger: %w", err)
	}

	s.logger.Info("demo data seeded successfully",
		"members", len(members),
		"users", len(users),
	)
	return nil
}

// DemoMembers builds the demo directory snapshot. The same fixture backs the
// static registry source so a manual sync is a no-op in development.
func DemoMembers() []*dirmodels.Member {
	regDate := time.Date(2024, 3, 28, 9, 15, 0, 0, time.UTC)
	attDate := time.Date(2024, 3, 28, 17, 42, 0, 0, time.UTC)

	return []*dirmodels.Member{
		{
			ID:               uuid.MustParse("7b3e3f58-21d4-4b44-88b7-6ef1f7e6a001"),
			NationalID:       "10234567",
			MembershipNumber: "MEM-1001",
			FullName:         "Fatima Al Said",
			Email:            "fatima@example.org",
			Phone:            "+968 9123 0001",
			PassportNumber:   "T0963852",
			IsEligible:       true,
			Memberships: []dirmodels.Membership{
				{ID: uuid.MustParse("a1e6b3c2-0000-4000-8000-000000000001"), CompanyName: "Muscat Trading LLC", Votes: 8, Role: dirmodels.RoleShareholder},
				{ID: uuid.MustParse("a1e6b3c2-0000-4000-8000-000000000002"), CompanyName: "Gulf Ventures SAOC", Votes: 32, Role: dirmodels.RoleBoardDirector},
			},
		},
		{
			ID:               uuid.MustParse("7b3e3f58-21d4-4b44-88b7-6ef1f7e6a002"),
			NationalID:       "10234568",
			CRNumber:         "CR-4410",
			MembershipNumber: "MEM-1002",
			FullName:         "Khalid Al Busaidi",
			Email:            "khalid@example.org",
			IsEligible:       true,
			IsRegistered:     true,
			RegistrationDate: &regDate,
			CRDetails: []dirmodels.CRDetails{
				{ID: uuid.MustParse("b2e6b3c2-0000-4000-8000-000000000001"), CompanyName: "Al Busaidi Holdings", CompanyCRNumber: "CR-4410", Votes: 50, Position: "Chairperson"},
			},
			Memberships: []dirmodels.Membership{
				{ID: uuid.MustParse("a1e6b3c2-0000-4000-8000-000000000003"), CompanyName: "Al Busaidi Holdings", Votes: 12, Role: dirmodels.RoleShareholder},
			},
		},
		{
			ID:               uuid.MustParse("7b3e3f58-21d4-4b44-88b7-6ef1f7e6a003"),
			NationalID:       "10234569",
			MembershipNumber: "MEM-1003",
			FullName:         "Sara Al Ghanim",
			GCCNumber:        "GCC-7731",
			IsEligible:       true,
			IsRegistered:     true,
			IsAttended:       true,
			RegistrationDate: &regDate,
			AttendanceDate:   &attDate,
			TotalVotesTaken:  5,
			Memberships: []dirmodels.Membership{
				{ID: uuid.MustParse("a1e6b3c2-0000-4000-8000-000000000004"), Votes: 5, Role: dirmodels.RoleShareholder, IsAttended: true, AttendedBy: "Sara Al Ghanim"},
			},
		},
		{
			ID:               uuid.MustParse("7b3e3f58-21d4-4b44-88b7-6ef1f7e6a004"),
			NationalID:       "10234570",
			MembershipNumber: "MEM-1004",
			FullName:         "Mohammed Al Dosari",
			IsEligible:       true,
			Memberships: []dirmodels.Membership{
				{ID: uuid.MustParse("a1e6b3c2-0000-4000-8000-000000000005"), Votes: 3, Role: dirmodels.RoleShareholder},
			},
		},
		{
			// lapsed membership, no voting weight
			ID:               uuid.MustParse("7b3e3f58-21d4-4b44-88b7-6ef1f7e6a005"),
			NationalID:       "10234571",
			MembershipNumber: "MEM-1005",
			FullName:         "Huda Al Lawati",
			Memberships: []dirmodels.Membership{
				{ID: uuid.MustParse("a1e6b3c2-0000-4000-8000-000000000006"), Votes: 0, Role: dirmodels.RoleShareholder},
			},
		},
	}
}

// DemoIdPAccounts builds the demo identity provider directory.
func DemoIdPAccounts() []rostermodels.IdPUser {
	return []rostermodels.IdPUser{
		{Username: "amal.s", FullName: "Amal Al Harthy", Email: "amal@example.org"},
		{Username: "khalid.b", FullName: "Khalid Al Busaidi", Email: "khalid.staff@example.org"},
		{Username: "layla.o", FullName: "Layla Al Riyami", Email: "layla@example.org"},
		{Username: "new.hire", FullName: "Nasser Al Abri", Email: "nasser@example.org"},
	}
}

func (s *Seeder) seedUsers(ctx context.Context) ([]*rostermodels.User, error) {
	demoUsers := []struct {
		username string
		fullName string
		email    string
		role     rostermodels.Role
	}{
		{"amal.s", "Amal Al Harthy", "amal@example.org", rostermodels.RoleSuperAdmin},
		{"khalid.b", "Khalid Al Busaidi", "khalid.staff@example.org", rostermodels.RoleAdmin},
		{"layla.o", "Layla Al Riyami", "layla@example.org", rostermodels.RoleNormalUser},
	}

	var users []*rostermodels.User
	for _, u := range demoUsers {
		user := &rostermodels.User{
			ID:       uuid.New(),
			Username: u.username,
			FullName: u.fullName,
			Email:    u.email,
			Role:     u.role,
		}
		if err := s.users.Insert(ctx, user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedLedger(ctx context.Context, members []*dirmodels.Member) error {
	now := time.Now()

	for _, m := range members {
		if !m.IsRegistered && !m.IsAttended {
			continue
		}
		ts := now.Add(-2 * time.Hour)
		if m.RegistrationDate != nil {
			ts = *m.RegistrationDate
		}
		reg := &ledgermodels.Registration{
			ID:              uuid.New(),
			MemberID:        m.ID,
			MemberName:      m.FullName,
			EventID:         s.eventID,
			Action:          ledgermodels.ActionRegister,
			PerformedBy:     "layla.o",
			PerformedByName: "Layla Al Riyami",
			Timestamp:       ts,
		}
		if err := s.ledger.SaveRegistration(ctx, reg); err != nil {
			return err
		}
		activity := &ledgermodels.RegistrationActivity{
			ID:               uuid.New(),
			MemberID:         m.ID,
			MemberName:       m.FullName,
			MemberNationalID: m.NationalID,
			Action:           ledgermodels.ActionRegister,
			PerformedBy:      reg.PerformedBy,
			PerformedByName:  reg.PerformedByName,
			Timestamp:        ts,
			Status:           ledgermodels.StatusSuccess,
		}
		if err := s.ledger.AppendActivity(ctx, activity); err != nil {
			return err
		}
	}
	return nil
}
