package orgdata

import (
	"fmt"
	"math/rand/v2"
)

const (
	minSubordinates = 2
	maxSubordinates = 3

	// Salaries are drawn on a grid of this step.
	salaryStep = 100

	// Upper bound on managers used to size the record slice up front.
	maxPreallocManagers = 1 << 16
)

// NewRand returns a PCG-backed source. A zero seed draws the seed from the
// runtime's global source, so runs are not reproducible.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Validate reports whether p can be generated.
func (p Params) Validate() error {
	if p.SalaryMin > p.SalaryMax {
		return fmt.Errorf("%w: salary min %d is greater than max %d", ErrInvalidRange, p.SalaryMin, p.SalaryMax)
	}
	return nil
}

// Generate builds the subordinates for every manager in p.Managers, in
// ascending manager order. An empty manager range yields no records.
func Generate(r *rand.Rand, p Params) ([]Record, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	records := make([]Record, 0, capacityHint(p.Managers))
	nextID := p.StartID

	for managerID := p.Managers.Min; managerID <= p.Managers.Max; managerID++ {
		n := randInt(r, minSubordinates, maxSubordinates)
		for range n {
			records = append(records, Record{
				ID:        nextID,
				FirstName: firstNames[r.IntN(len(firstNames))],
				LastName:  lastNames[r.IntN(len(lastNames))],
				Salary:    randomSalary(r, p.SalaryMin, p.SalaryMax),
				ManagerID: managerID,
			})
			nextID++
		}
		// guard against wrapping when Max is the largest int
		if managerID == p.Managers.Max {
			break
		}
	}

	return records, nil
}

func capacityHint(m ManagerRange) int {
	return min(m.Len(), maxPreallocManagers) * maxSubordinates
}

// randomSalary picks a multiple of salaryStep between the floored bounds.
// Bounds that are not multiples of salaryStep are floored, so the result can
// fall below lo.
func randomSalary(r *rand.Rand, lo, hi int) int {
	return randInt(r, floorDiv(lo, salaryStep), floorDiv(hi, salaryStep)) * salaryStep
}

// randInt returns a uniform int in [lo, hi].
func randInt(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
