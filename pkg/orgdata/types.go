package orgdata

import "math"

// NoManager is the manager id of an employee that reports to nobody.
const NoManager = -1

// Record is a single generated subordinate.
type Record struct {
	ID        int
	FirstName string
	LastName  string
	Salary    int
	ManagerID int
}

// FullName returns "First Last".
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}

// ManagerRange is an inclusive range of manager ids.
// Min > Max is an empty range, not an error.
type ManagerRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Len returns the number of manager ids in the range, saturating at
// math.MaxInt.
func (m ManagerRange) Len() int {
	if m.Min > m.Max {
		return 0
	}
	n := m.Max - m.Min + 1
	if n <= 0 {
		return math.MaxInt
	}
	return n
}

// Params controls a generation run.
type Params struct {
	StartID   int          `yaml:"start_id"`
	Managers  ManagerRange `yaml:"managers"`
	SalaryMin int          `yaml:"salary_min"`
	SalaryMax int          `yaml:"salary_max"`
}
