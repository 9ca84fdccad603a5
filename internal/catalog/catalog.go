// Package catalog defines the static ramp program: what each onboarding day
// contains, how days group into phases, and which days are certification
// checkpoints. A Catalog is built once at startup and never mutated.
package catalog

import "fmt"

// DayInfo describes the checklist for one ramp day.
type DayInfo struct {
	Title         string   `yaml:"title"`
	Activities    []string `yaml:"activities"`
	Focus         string   `yaml:"focus"`
	Certification bool     `yaml:"certification,omitempty"`
	Milestone     bool     `yaml:"milestone,omitempty"`
}

// Phase is a named contiguous range of ramp days.
type Phase struct {
	Name     string `yaml:"name"`
	StartDay int    `yaml:"start_day"`
	EndDay   int    `yaml:"end_day"`
	Color    string `yaml:"color"`
	// Week is set for single-week phases, Weeks for multi-week ranges.
	Week  int    `yaml:"week,omitempty"`
	Weeks string `yaml:"weeks,omitempty"`
}

// Contains reports whether day falls in the phase's inclusive range.
func (p Phase) Contains(day int) bool {
	return day >= p.StartDay && day <= p.EndDay
}

// Certification is a graded checkpoint on a specific ramp day.
type Certification struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

// ActivityTarget is the expected outbound volume for a range of days,
// shown on dashboards alongside progress.
type ActivityTarget struct {
	Days     string `yaml:"days"`
	Touches  string `yaml:"touches"`
	Meetings string `yaml:"meetings"`
}

// DaysPerWeek is the number of ramp days in one program week.
const DaysPerWeek = 5

// Catalog is the full program definition. Lookup methods synthesize generic
// entries for days after the explicitly authored range.
type Catalog struct {
	days           map[int]DayInfo
	phases         []Phase
	certifications map[int]Certification
	targets        []ActivityTarget
	maxDay         int
	// Generic templates for days without an explicit entry.
	month2Start, month2End int
	month2                 DayInfo
	month3Start, month3End int
	month3                 DayInfo
}

// Day returns the entry for a ramp day, or nil when the day has no entry:
// day numbers outside 1..MaxDay, or early days missing an explicit
// definition. Days inside the month-2/month-3 windows get a synthesized
// generic entry with the day number substituted into the title.
func (c *Catalog) Day(day int) *DayInfo {
	if info, ok := c.days[day]; ok {
		return &info
	}
	if day >= c.month2Start && day <= c.month2End {
		info := c.month2
		info.Title = fmt.Sprintf("%s - Day %d", info.Title, day)
		return &info
	}
	if day >= c.month3Start && day <= c.month3End {
		info := c.month3
		info.Title = fmt.Sprintf("%s - Day %d", info.Title, day)
		return &info
	}
	return nil
}

// Phase returns the first phase containing the given day, or nil.
func (c *Catalog) Phase(day int) *Phase {
	for i := range c.phases {
		if c.phases[i].Contains(day) {
			return &c.phases[i]
		}
	}
	return nil
}

// Phases returns all phases in program order.
func (c *Catalog) Phases() []Phase {
	return c.phases
}

// Certification returns the checkpoint on the given day, if any.
func (c *Catalog) Certification(day int) (Certification, bool) {
	cert, ok := c.certifications[day]
	return cert, ok
}

// CertificationDays returns the certification day numbers in ascending order.
func (c *Catalog) CertificationDays() []int {
	days := make([]int, 0, len(c.certifications))
	for d := 1; d <= c.maxDay; d++ {
		if _, ok := c.certifications[d]; ok {
			days = append(days, d)
		}
	}
	return days
}

// Targets returns the activity volume targets in program order.
func (c *Catalog) Targets() []ActivityTarget {
	return c.targets
}

// MaxDay returns the last day of the program.
func (c *Catalog) MaxDay() int {
	return c.maxDay
}

// WeekDays returns the ramp day numbers making up the given 1-based program
// week, clipped to MaxDay.
func (c *Catalog) WeekDays(week int) []int {
	start := (week-1)*DaysPerWeek + 1
	var days []int
	for d := start; d < start+DaysPerWeek && d <= c.maxDay; d++ {
		days = append(days, d)
	}
	return days
}

// WeekCount returns the number of program weeks, rounding up.
func (c *Catalog) WeekCount() int {
	return (c.maxDay + DaysPerWeek - 1) / DaysPerWeek
}

func (c *Catalog) validate() error {
	if c.maxDay < 1 {
		return fmt.Errorf("catalog: max day must be at least 1, got %d", c.maxDay)
	}
	for day, info := range c.days {
		if day < 1 || day > c.maxDay {
			return fmt.Errorf("catalog: day %d outside program range 1..%d", day, c.maxDay)
		}
		if len(info.Activities) == 0 {
			return fmt.Errorf("catalog: day %d has no activities", day)
		}
	}
	for _, p := range c.phases {
		if p.StartDay < 1 || p.EndDay > c.maxDay || p.StartDay > p.EndDay {
			return fmt.Errorf("catalog: phase %q has invalid range [%d, %d]", p.Name, p.StartDay, p.EndDay)
		}
	}
	for day := range c.certifications {
		if day < 1 || day > c.maxDay {
			return fmt.Errorf("catalog: certification on day %d outside program range", day)
		}
	}
	return nil
}
