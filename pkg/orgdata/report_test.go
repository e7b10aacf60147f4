package orgdata

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	r := NewReport(NewStructure(hierarchy()))
	require.Len(t, r.Levels, 3)

	top := r.Levels[0]
	assert.Equal(t, 1, top.Level)
	assert.Equal(t, []Record{ceo}, top.Above)

	mid := r.Levels[1]
	assert.Equal(t, []Record{manager1}, mid.Below)
	assert.Equal(t, []Record{manager2}, mid.Above)
	assert.Empty(t, mid.Within)

	bottom := r.Levels[2]
	assert.False(t, bottom.HasBand)
	assert.Len(t, bottom.Within, 4)
	assert.Empty(t, bottom.Below)
	assert.Empty(t, bottom.Above)
}

func TestReportWrite(t *testing.T) {
	r := NewReport(NewStructure(hierarchy()))

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, 2))

	want := `Salary discrepancy report:
Level 1
Below expectation:

Above expectation:
John Doe (+8.70%)
--------------------

Level 2
Below expectation:
Alice Berton (-3.03%)

Above expectation:
Jane Suzuka (+0.85%)
--------------------

There are 4 employees on level 3 with 1 manager(s) between them and the top level.
`
	assert.Equal(t, want, buf.String())
}

func TestReportWriteAllLevels(t *testing.T) {
	r := NewReport(NewStructure(hierarchy()))

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, DefaultReportDepth))
	assert.Contains(t, buf.String(), "Level 3\n")
	assert.NotContains(t, buf.String(), "There are")
}

func TestReportWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReport(NewStructure(nil)).Write(&buf, 1))
	assert.Equal(t, "Report is empty\n", buf.String())
}

func TestReportWriteInvalidDepth(t *testing.T) {
	err := NewReport(NewStructure(hierarchy())).Write(&bytes.Buffer{}, 0)
	assert.True(t, errors.Is(err, ErrInvalidDepth))
}

func TestWriteLevelAverages(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLevelAverages(&buf, NewStructure(hierarchy())))

	want := "The average salary of level 1 is: 15000.00\n" +
		"The average salary of level 2 is: 9200.00\n" +
		"The average salary of level 3 is: 6875.00\n"
	assert.Equal(t, want, buf.String())
}
