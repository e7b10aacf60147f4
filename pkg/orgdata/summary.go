package orgdata

// Summary describes a decoded or generated dataset.
type Summary struct {
	Records    int
	Managers   int
	MinSalary  int
	MaxSalary  int
	MeanSalary float64
}

// Summarize computes a Summary. Zero records give a zero Summary.
func Summarize(records []Record) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	s := Summary{
		Records:   len(records),
		MinSalary: records[0].Salary,
		MaxSalary: records[0].Salary,
	}
	managers := make(map[int]struct{})
	total := 0
	for _, rec := range records {
		managers[rec.ManagerID] = struct{}{}
		total += rec.Salary
		s.MinSalary = min(s.MinSalary, rec.Salary)
		s.MaxSalary = max(s.MaxSalary, rec.Salary)
	}
	s.Managers = len(managers)
	s.MeanSalary = float64(total) / float64(len(records))
	return s
}
