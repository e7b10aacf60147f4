package orgdata

import (
	"cmp"
	"slices"
)

// Structure is a read-only view of a dataset as a reporting hierarchy.
//
// Level 1 holds the roots: employees with NoManager, or whose manager is not
// part of the dataset. Level n+1 holds the direct reports of level n.
// Employees only reachable through a reporting cycle are left out of every
// level.
type Structure struct {
	employees []Record
	byManager map[int][]Record
	levels    [][]Record
}

// NewStructure sorts records by id and groups them by manager and by level.
// The input slice is not modified.
func NewStructure(records []Record) *Structure {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int { return cmp.Compare(a.ID, b.ID) })

	s := &Structure{
		employees: sorted,
		byManager: ByManager(sorted),
	}
	s.levels = s.groupByLevel()
	return s
}

// ByManager groups records by manager id, keeping their order.
func ByManager(records []Record) map[int][]Record {
	out := make(map[int][]Record)
	for _, rec := range records {
		out[rec.ManagerID] = append(out[rec.ManagerID], rec)
	}
	return out
}

func (s *Structure) groupByLevel() [][]Record {
	ids := make(map[int]struct{}, len(s.employees))
	for _, rec := range s.employees {
		ids[rec.ID] = struct{}{}
	}

	var roots []Record
	for _, rec := range s.employees {
		if _, ok := ids[rec.ManagerID]; rec.ManagerID == NoManager || !ok {
			roots = append(roots, rec)
		}
	}

	var levels [][]Record
	seen := make(map[int]struct{}, len(s.employees))
	current := roots
	for len(current) > 0 {
		levels = append(levels, current)
		for _, rec := range current {
			seen[rec.ID] = struct{}{}
		}

		var next []Record
		for _, manager := range current {
			for _, sub := range s.byManager[manager.ID] {
				if _, dup := seen[sub.ID]; !dup {
					next = append(next, sub)
				}
			}
		}
		current = next
	}
	return levels
}

// Employees returns the records sorted by id.
func (s *Structure) Employees() []Record {
	return slices.Clone(s.employees)
}

// Subordinates returns the direct reports of managerID.
func (s *Structure) Subordinates(managerID int) []Record {
	return slices.Clone(s.byManager[managerID])
}

// Depth returns the number of levels.
func (s *Structure) Depth() int {
	return len(s.levels)
}

// Level returns the employees on level n, counted from 1. Levels outside
// the hierarchy are empty.
func (s *Structure) Level(n int) []Record {
	if n < 1 || n > len(s.levels) {
		return nil
	}
	return slices.Clone(s.levels[n-1])
}
