package eligibility

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quorum/internal/directory/models"
)

var (
	testEventID   = uuid.MustParse("8e2b32ac-11d1-4c3f-9f07-6a2f7a2b9a01")
	membershipOne = uuid.MustParse("5c9f48a2-3d1e-4b6a-8c2d-0e1f2a3b4c5d")
	membershipTwo = uuid.MustParse("7a1b2c3d-4e5f-4a6b-8c9d-0e1f2a3b4c5e")
)

func testMember() *models.Member {
	start1 := time.Date(2022, 4, 4, 0, 0, 0, 0, time.UTC)
	start2 := time.Date(2022, 6, 25, 0, 0, 0, 0, time.UTC)
	return &models.Member{
		ID:               uuid.New(),
		NationalID:       "123456789",
		MembershipNumber: "MEM-001",
		FullName:         "Ahmed Ali Al-Khalifa",
		IsEligible:       true,
		Memberships: []models.Membership{
			{
				ID:               membershipOne,
				CompanyName:      "First Arab Service Company",
				CompanyCRNumber:  "59131",
				Role:             models.RoleShareholder,
				SharePercentage:  15.5,
				Votes:            8,
				MembershipNumber: "42275",
				StartDate:        &start1,
			},
			{
				ID:               membershipTwo,
				CompanyName:      "ETIHAD AL KHALEEJ REAL ESTATE",
				CompanyCRNumber:  "72101",
				Role:             models.RoleShareholder,
				SharePercentage:  25.0,
				Votes:            32,
				MembershipNumber: "21814",
				StartDate:        &start2,
			},
		},
		CRDetails: []models.CRDetails{
			{ID: uuid.New(), CompanyName: "Bahrain Trading Company", CompanyCRNumber: "CR-001", Position: "Board Director", Votes: 50},
		},
	}
}

func newTestCalculator() *Calculator {
	return NewCalculator(testEventID, "Election 2022")
}

func TestExpandDerivesNames(t *testing.T) {
	calc := newTestCalculator()

	details := calc.Expand(testMember())

	assert.Equal(t, "Ahmed", details.FirstName)
	assert.Equal(t, "Ali Al-Khalifa", details.LastName)
}

func TestExpandKeepsExplicitNames(t *testing.T) {
	calc := newTestCalculator()
	member := testMember()
	member.FirstName = "Custom"
	member.LastName = "Name"

	details := calc.Expand(member)

	assert.Equal(t, "Custom", details.FirstName)
	assert.Equal(t, "Name", details.LastName)
}

func TestExpandSingleWordName(t *testing.T) {
	calc := newTestCalculator()
	member := testMember()
	member.FullName = "Ahmed"

	details := calc.Expand(member)

	assert.Equal(t, "Ahmed", details.FirstName)
	assert.Empty(t, details.LastName)
}

func TestExpandComputesTotals(t *testing.T) {
	calc := newTestCalculator()

	details := calc.Expand(testMember())

	assert.Equal(t, 40, details.TotalVotes)
	assert.Equal(t, 2, details.TotalMemberships)
	assert.Zero(t, details.MembershipTaken)
	assert.Zero(t, details.TotalVotesTaken)
	require.Len(t, details.EligibleMemberships, 2)
	assert.Equal(t, "Ahmed Ali Al-Khalifa", details.EligibleMemberships[0].AttendedBy)
}

func TestExpandFillsEventIdentity(t *testing.T) {
	calc := newTestCalculator()

	details := calc.Expand(testMember())

	assert.Equal(t, testEventID, details.EventID)
	assert.Equal(t, "Election 2022", details.EventName)
	for _, ms := range details.EligibleMemberships {
		assert.Equal(t, testEventID, ms.EventID)
		assert.Equal(t, "Election 2022", ms.EventName)
	}
}

func TestExpandExcludesZeroVoteMemberships(t *testing.T) {
	calc := newTestCalculator()
	member := testMember()
	member.Memberships = append(member.Memberships, models.Membership{
		ID:          uuid.New(),
		CompanyName: "Dormant Holdings",
		Votes:       0,
	})

	details := calc.Expand(member)

	assert.Len(t, details.EligibleMemberships, 2)
	assert.Equal(t, 3, details.TotalMemberships)
	assert.Equal(t, 40, details.TotalVotes)
}

func TestExpandIsIdempotent(t *testing.T) {
	calc := newTestCalculator()
	member := testMember()

	first := calc.Expand(member)
	second := calc.Expand(member)

	assert.Equal(t, first, second, "expanding the same unmodified member twice must be field-for-field identical")
}

func TestExpandDoesNotMutateInput(t *testing.T) {
	calc := newTestCalculator()
	member := testMember()

	_ = calc.Expand(member)

	assert.Empty(t, member.FirstName)
	assert.Equal(t, uuid.Nil, member.EventID)
	assert.Empty(t, member.Memberships[0].AttendedBy)
}

func TestExpandDefaultsAttendanceDateTime(t *testing.T) {
	calc := newTestCalculator()
	member := testMember()
	attended := time.Date(2024, 12, 10, 11, 0, 0, 0, time.UTC)
	member.AttendanceDate = &attended

	details := calc.Expand(member)

	require.NotNil(t, details.AttendanceDateTime)
	assert.Equal(t, attended, *details.AttendanceDateTime)
}
