package orgdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageSalary(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		want    float64
	}{
		{"empty", nil, 0},
		{"rounds to cents", []Record{manager1, manager2, manager3}, 8466.67},
		{"exact", []Record{manager2, manager3}, 8700},
		{"two reports", []Record{manager4, manager5}, 6650},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AverageSalary(tt.records), 1e-9)
		})
	}
}

func TestAverageSalaryByLevel(t *testing.T) {
	got := AverageSalaryByLevel(NewStructure(hierarchy()))

	require.Len(t, got, 3)
	assert.InDelta(t, 15000, got[1], 1e-9)
	assert.InDelta(t, 9200, got[2], 1e-9)
	assert.InDelta(t, 6875, got[3], 1e-9)
}

func TestBandFor(t *testing.T) {
	band, ok := BandFor([]Record{manager3, manager4, manager5, manager6})
	require.True(t, ok)
	assert.InDelta(t, 8250, band.Min, 1e-6)
	assert.InDelta(t, 10312.5, band.Max, 1e-6)

	_, ok = BandFor(nil)
	assert.False(t, ok)
}

func TestCategorize(t *testing.T) {
	c := Categorize(Band{Min: 8000, Max: 10000}, []Record{ceo, manager1, manager3})

	assert.Equal(t, []Record{manager3}, c.Below)
	assert.Equal(t, []Record{manager1}, c.Within, "bounds are inclusive")
	assert.Equal(t, []Record{ceo}, c.Above)
	assert.Equal(t, 3, c.Count())
}

func TestDiscrepancy(t *testing.T) {
	tests := []struct {
		name string
		band Band
		rec  Record
		want float64
	}{
		{"below", Band{Min: 22080, Max: 27600}, ceo, -32.0652},
		{"slightly below", Band{Min: 8250, Max: 10312.5}, manager1, -3.0303},
		{"slightly above", Band{Min: 8250, Max: 10312.5}, manager2, 0.8485},
		{"within", Band{Min: 5000, Max: 9000}, manager1, 0},
		{"zero band", Band{}, manager1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Categorize(tt.band, []Record{tt.rec})
			assert.InDelta(t, tt.want, c.Discrepancy(tt.rec), 1e-3)
		})
	}
}
