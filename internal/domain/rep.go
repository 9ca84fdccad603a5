package domain

import (
	"fmt"
	"strings"
	"time"
)

// Rep is a tracked individual: a BDR working through the ramp program,
// or a manager/superadmin overseeing one or more BDRs.
type Rep struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	ManagerID *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the minimal invariants required before persisting a rep.
func (r *Rep) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("rep name is required")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("rep email %q is not a valid address", r.Email)
	}
	if !ValidRoles[string(r.Role)] {
		return fmt.Errorf("role %q must be one of bdr, manager, superadmin", r.Role)
	}
	if r.Role == RoleBDR && r.ManagerID != nil && *r.ManagerID == "" {
		return fmt.Errorf("manager ID must be non-empty when set")
	}
	return nil
}

// DisplayID returns a short identifier for display, truncating the UUID.
func (r *Rep) DisplayID() string {
	if len(r.ID) >= 8 {
		return r.ID[:8]
	}
	return r.ID
}
