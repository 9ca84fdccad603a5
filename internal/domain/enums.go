package domain

type Role string

const (
	RoleBDR        Role = "bdr"
	RoleManager    Role = "manager"
	RoleSuperadmin Role = "superadmin"
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[string]bool{
	"bdr": true, "manager": true, "superadmin": true,
}

type ScheduleState string

const (
	ScheduleAhead      ScheduleState = "ahead"
	ScheduleOnTrack    ScheduleState = "on-track"
	ScheduleBehind     ScheduleState = "behind"
	ScheduleNotStarted ScheduleState = "not-started"
)

type EvidenceType string

const (
	EvidenceLink EvidenceType = "link"
	EvidenceFile EvidenceType = "file"
)
