package depreciation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoiro-dev/aoiro/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func pc(acquired time.Time) model.FixedAsset {
	return model.FixedAsset{
		ID:              1,
		Name:            "ノートPC",
		AcquisitionDate: acquired,
		AcquisitionCost: 1_200_000,
		UsefulLife:      5,
		Method:          model.StraightLine,
		Rate:            2000,
		Active:          true,
	}
}

func TestCompute_MidYearAcquisition(t *testing.T) {
	s := Compute([]model.FixedAsset{pc(date(2025, 7, 10))}, 2025)
	require.Len(t, s.Rows, 1)

	row := s.Rows[0]
	assert.Equal(t, int64(240000), row.AnnualDep)
	assert.Equal(t, 6, row.MonthsUsed)
	assert.Equal(t, int64(120000), row.CurrentYearDep)
	assert.Equal(t, int64(120000), row.AccumulatedDepEnd)
	assert.Equal(t, int64(1_080_000), row.BookValueEnd)
	assert.Equal(t, int64(120000), s.Total)
}

func TestCompute_FullYear(t *testing.T) {
	a := pc(date(2024, 7, 10))
	a.AccumulatedDep = 120000
	s := Compute([]model.FixedAsset{a}, 2025)
	require.Len(t, s.Rows, 1)
	assert.Equal(t, 12, s.Rows[0].MonthsUsed)
	assert.Equal(t, int64(240000), s.Rows[0].CurrentYearDep)
	assert.Equal(t, int64(360000), s.Rows[0].AccumulatedDepEnd)
}

func TestCompute_JanuaryAcquisitionIsFullYear(t *testing.T) {
	s := Compute([]model.FixedAsset{pc(date(2025, 1, 5))}, 2025)
	require.Len(t, s.Rows, 1)
	assert.Equal(t, 12, s.Rows[0].MonthsUsed)
	assert.Equal(t, int64(240000), s.Rows[0].CurrentYearDep)
}

func TestCompute_DecemberAcquisition(t *testing.T) {
	s := Compute([]model.FixedAsset{pc(date(2025, 12, 28))}, 2025)
	require.Len(t, s.Rows, 1)
	assert.Equal(t, 1, s.Rows[0].MonthsUsed)
	assert.Equal(t, int64(20000), s.Rows[0].CurrentYearDep)
}

func TestCompute_FinalYearKeepsOneYen(t *testing.T) {
	a := pc(date(2020, 7, 1))
	a.AccumulatedDep = 1_080_000
	s := Compute([]model.FixedAsset{a}, 2025)
	require.Len(t, s.Rows, 1)
	assert.Equal(t, int64(119_999), s.Rows[0].CurrentYearDep)
	assert.Equal(t, int64(1), s.Rows[0].BookValueEnd)
}

func TestCompute_FullyDepreciated(t *testing.T) {
	a := pc(date(2018, 1, 1))
	a.AccumulatedDep = a.AcquisitionCost - 1
	s := Compute([]model.FixedAsset{a}, 2025)
	require.Len(t, s.Rows, 1)
	assert.Zero(t, s.Rows[0].CurrentYearDep)
	assert.Equal(t, int64(1), s.Rows[0].BookValueEnd)
	assert.Zero(t, s.Total)
}

func TestCompute_SkipsFutureAndInactive(t *testing.T) {
	future := pc(date(2026, 2, 1))
	inactive := pc(date(2023, 2, 1))
	inactive.ID = 2
	inactive.Active = false

	s := Compute([]model.FixedAsset{future, inactive}, 2025)
	assert.Empty(t, s.Rows)
	assert.Zero(t, s.Total)
}

func TestCompute_NeverBelowOneYen(t *testing.T) {
	rates := []int{1, 1000, 3334, 5000, 10000}
	costs := []int64{1, 2, 999, 100_000, 7_777_777}
	for _, rate := range rates {
		for _, cost := range costs {
			a := model.FixedAsset{
				Name:            "x",
				AcquisitionDate: date(2015, 3, 1),
				AcquisitionCost: cost,
				UsefulLife:      2,
				Method:          model.StraightLine,
				Rate:            rate,
				Active:          true,
			}
			for year := 2015; year <= 2030; year++ {
				s := Compute([]model.FixedAsset{a}, year)
				require.Len(t, s.Rows, 1)
				row := s.Rows[0]
				assert.GreaterOrEqual(t, row.CurrentYearDep, int64(0))
				if cost > 1 {
					assert.GreaterOrEqual(t, row.BookValueEnd, int64(1), "rate %d cost %d year %d", rate, cost, year)
				}
				a.AccumulatedDep = row.AccumulatedDepEnd
			}
		}
	}
}

func TestCompute_TotalSumsRows(t *testing.T) {
	a := pc(date(2025, 7, 10))
	b := pc(date(2024, 1, 1))
	b.ID = 2
	b.AcquisitionCost = 300_000
	b.Rate = 3334
	s := Compute([]model.FixedAsset{a, b}, 2025)
	require.Len(t, s.Rows, 2)
	assert.Equal(t, s.Rows[0].CurrentYearDep+s.Rows[1].CurrentYearDep, s.Total)
	assert.Equal(t, int64(100_020), s.Rows[1].CurrentYearDep)
}

func TestStatutoryRate(t *testing.T) {
	tests := map[int]int{2: 5000, 3: 3334, 4: 2500, 5: 2000, 6: 1667, 7: 1430, 8: 1250, 9: 1120, 10: 1000, 0: 0}
	for life, want := range tests {
		assert.Equal(t, want, StatutoryRate(life), "life %d", life)
	}
}

func TestValidate(t *testing.T) {
	a, err := Validate(model.FixedAsset{
		Name:            " 複合機 ",
		AcquisitionDate: date(2025, 4, 1),
		AcquisitionCost: 600_000,
		UsefulLife:      5,
	})
	require.NoError(t, err)
	assert.Equal(t, "複合機", a.Name)
	assert.Equal(t, model.StraightLine, a.Method)
	assert.Equal(t, 2000, a.Rate)

	bad := []model.FixedAsset{
		{Name: "", AcquisitionDate: date(2025, 1, 1), AcquisitionCost: 1, UsefulLife: 1},
		{Name: "x", AcquisitionCost: 1, UsefulLife: 1},
		{Name: "x", AcquisitionDate: date(2025, 1, 1), AcquisitionCost: 0, UsefulLife: 1},
		{Name: "x", AcquisitionDate: date(2025, 1, 1), AcquisitionCost: 100, UsefulLife: 0},
		{Name: "x", AcquisitionDate: date(2025, 1, 1), AcquisitionCost: 100, UsefulLife: 1, Rate: 10001},
		{Name: "x", AcquisitionDate: date(2025, 1, 1), AcquisitionCost: 100, UsefulLife: 1, AccumulatedDep: 100},
	}
	for i, b := range bad {
		_, err := Validate(b)
		assert.ErrorIs(t, err, model.ErrInvalidAsset, "case %d", i)
	}

	_, err = Validate(model.FixedAsset{Name: "x", AcquisitionDate: date(2025, 1, 1), AcquisitionCost: 100, UsefulLife: 1, Method: "declining"})
	assert.ErrorIs(t, err, model.ErrUnsupportedMethod)
}
