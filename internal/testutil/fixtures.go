package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rampkit/rampup/internal/catalog"
	"github.com/rampkit/rampup/internal/domain"
)

// Rep options
type RepOption func(*domain.Rep)

func WithRole(role domain.Role) RepOption {
	return func(r *domain.Rep) {
		r.Role = role
	}
}

func WithEmail(email string) RepOption {
	return func(r *domain.Rep) {
		r.Email = email
	}
}

func WithManager(managerID string) RepOption {
	return func(r *domain.Rep) {
		r.ManagerID = &managerID
	}
}

// NewTestRep creates a BDR with sensible defaults, modified by options.
func NewTestRep(name string, opts ...RepOption) *domain.Rep {
	now := time.Now()
	rep := &domain.Rep{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     uuid.New().String()[:8] + "@example.com",
		Role:      domain.RoleBDR,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(rep)
	}
	return rep
}

const testCatalogYAML = `
max_day: 10
days:
  1:
    title: "Orientation"
    focus: "Setup"
    activities: ["Meet the team", "Set up laptop", "Read the playbook"]
  2:
    title: "Tools"
    focus: "CRM"
    activities: ["CRM walkthrough", "Log a test record"]
  5:
    title: "Pitch Certification"
    focus: "Pitch"
    certification: true
    activities: ["Deliver the pitch", "Pass the grading rubric"]
  10:
    title: "Final Review"
    focus: "Review"
    certification: true
    milestone: true
    activities: ["Present ramp recap", "Manager sign-off"]
phases:
  - name: "Week 1"
    start_day: 1
    end_day: 5
    color: "blue"
  - name: "Week 2"
    start_day: 6
    end_day: 10
    color: "green"
certifications:
  5:
    name: "Pitch"
    icon: "🎯"
  10:
    name: "Graduation"
    icon: "🏆"
month2:
  start_day: 6
  end_day: 9
  template:
    title: "Prospecting Block"
    focus: "Outbound"
    activities: ["30 dials", "10 emails"]
`

// NewTestCatalog builds a small 10-day program used across service and
// repository tests. Days 3 and 4 have no entry on purpose.
func NewTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(testCatalogYAML))
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return c
}
