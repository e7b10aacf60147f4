package orgdata

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultReportDepth covers the top level plus four levels of managers
// below it and their direct reports.
const DefaultReportDepth = 6

const levelDelimiter = "--------------------"

// LevelReport is the categorization of one level against the level below.
type LevelReport struct {
	Level int
	Categorized
}

// Report is the salary discrepancy report of a Structure.
type Report struct {
	Levels []LevelReport
}

// NewReport compares every level of s with the average salary of the
// level directly below it.
func NewReport(s *Structure) Report {
	r := Report{Levels: make([]LevelReport, 0, s.Depth())}
	for level := 1; level <= s.Depth(); level++ {
		c := Categorized{}
		if band, ok := BandFor(s.Level(level + 1)); ok {
			c = Categorize(band, s.Level(level))
		} else {
			for _, rec := range s.Level(level) {
				c.add(rec)
			}
		}
		r.Levels = append(r.Levels, LevelReport{Level: level, Categorized: c})
	}
	return r
}

// Write prints the first depth levels in full. Deeper levels are only
// counted, since their reporting lines are too long to be reviewed.
func (r Report) Write(w io.Writer, depth int) error {
	if depth < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}

	bw := bufio.NewWriter(w)
	if len(r.Levels) == 0 {
		fmt.Fprintln(bw, "Report is empty")
		return bw.Flush()
	}

	fmt.Fprintln(bw, "Salary discrepancy report:")
	for i, lr := range r.Levels {
		if i < depth {
			lr.write(bw)
			continue
		}
		fmt.Fprintf(bw, "There are %d employees on level %d with %d manager(s) between them and the top level.\n",
			lr.Count(), lr.Level, lr.Level-2)
	}
	return bw.Flush()
}

func (lr LevelReport) write(w io.Writer) {
	fmt.Fprintf(w, "Level %d\n", lr.Level)
	fmt.Fprintln(w, "Below expectation:")
	for _, rec := range lr.Below {
		fmt.Fprintf(w, "%s (%+.2f%%)\n", rec.FullName(), lr.Discrepancy(rec))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Above expectation:")
	for _, rec := range lr.Above {
		fmt.Fprintf(w, "%s (%+.2f%%)\n", rec.FullName(), lr.Discrepancy(rec))
	}
	fmt.Fprintln(w, levelDelimiter)
	fmt.Fprintln(w)
}

// WriteLevelAverages prints the average salary of every level.
func WriteLevelAverages(w io.Writer, s *Structure) error {
	bw := bufio.NewWriter(w)
	averages := AverageSalaryByLevel(s)
	for level := 1; level <= s.Depth(); level++ {
		fmt.Fprintf(bw, "The average salary of level %d is: %.2f\n", level, averages[level])
	}
	return bw.Flush()
}
