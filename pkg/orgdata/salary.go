package orgdata

import "math"

// A manager is expected to earn between these multiples of the average
// salary of the level below.
const (
	MinSalaryRaise = 1.20
	MaxSalaryRaise = 1.50
)

// AverageSalary returns the mean salary rounded half away from zero to two
// decimals. An empty slice averages to zero.
func AverageSalary(records []Record) float64 {
	if len(records) == 0 {
		return 0
	}
	total := 0
	for _, rec := range records {
		total += rec.Salary
	}
	return roundCents(float64(total) / float64(len(records)))
}

// AverageSalaryByLevel maps each level of s to its average salary.
func AverageSalaryByLevel(s *Structure) map[int]float64 {
	out := make(map[int]float64, s.Depth())
	for level := 1; level <= s.Depth(); level++ {
		out[level] = AverageSalary(s.Level(level))
	}
	return out
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Band is the expected salary range for a group of managers.
type Band struct {
	Min float64
	Max float64
}

// BandFor derives the expected range from the salaries of subordinates.
// ok is false when there are no subordinates to compare against.
func BandFor(subordinates []Record) (band Band, ok bool) {
	if len(subordinates) == 0 {
		return Band{}, false
	}
	avg := AverageSalary(subordinates)
	return Band{Min: avg * MinSalaryRaise, Max: avg * MaxSalaryRaise}, true
}

// Categorized splits employees by where their salary falls against a Band.
type Categorized struct {
	Band Band
	// HasBand is false for a level with nobody below it; every employee
	// on such a level is counted as within expectation.
	HasBand bool

	Below  []Record
	Within []Record
	Above  []Record
}

// Categorize sorts employees into below, within and above band. The band
// bounds are inclusive.
func Categorize(band Band, employees []Record) Categorized {
	c := Categorized{Band: band, HasBand: true}
	for _, rec := range employees {
		c.add(rec)
	}
	return c
}

func (c *Categorized) add(rec Record) {
	salary := float64(rec.Salary)
	switch {
	case !c.HasBand:
		c.Within = append(c.Within, rec)
	case salary < c.Band.Min:
		c.Below = append(c.Below, rec)
	case salary > c.Band.Max:
		c.Above = append(c.Above, rec)
	default:
		c.Within = append(c.Within, rec)
	}
}

// Count returns the number of categorized employees.
func (c Categorized) Count() int {
	return len(c.Below) + len(c.Within) + len(c.Above)
}

// Discrepancy returns how far rec's salary is outside the band, as a
// percentage of the nearest bound: negative below, positive above, zero
// within.
func (c Categorized) Discrepancy(rec Record) float64 {
	salary := float64(rec.Salary)
	switch {
	case !c.HasBand:
		return 0
	case salary < c.Band.Min:
		return percentOff(salary, c.Band.Min)
	case salary > c.Band.Max:
		return percentOff(salary, c.Band.Max)
	default:
		return 0
	}
}

func percentOff(salary, bound float64) float64 {
	if bound == 0 {
		return 0
	}
	return (salary/bound - 1) * 100
}
