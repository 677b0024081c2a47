package vitals

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalReading() Reading {
	return Reading{SystolicPressure: 120, DiastolicPressure: 80, HeartRate: 72, Temperature: 37.2, OxygenSaturation: 98}
}

func TestClassify_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		in   Reading
		want []AnomalyLabel
	}{
		{
			name: "all normal",
			in:   Reading{SystolicPressure: 120, DiastolicPressure: 80, HeartRate: 72, Temperature: 37.2, OxygenSaturation: 98},
			want: []AnomalyLabel{},
		},
		{
			name: "temperature 38.5 is boundary normal",
			in:   Reading{SystolicPressure: 145, DiastolicPressure: 95, HeartRate: 105, Temperature: 38.5, OxygenSaturation: 92},
			want: []AnomalyLabel{LabelSystolic, LabelDiastolic, LabelHeartRate, LabelOxygenSaturation},
		},
		{
			name: "all five anomalous",
			in:   Reading{SystolicPressure: 85, DiastolicPressure: 55, HeartRate: 50, Temperature: 39.0, OxygenSaturation: 90},
			want: []AnomalyLabel{LabelSystolic, LabelDiastolic, LabelTemperature, LabelHeartRate, LabelOxygenSaturation},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.in)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_LabelText(t *testing.T) {
	got := Classify(Reading{SystolicPressure: 85, DiastolicPressure: 55, HeartRate: 50, Temperature: 39.0, OxygenSaturation: 90})
	assert.Equal(t, []AnomalyLabel{
		"Abnormal Systolic BP",
		"Abnormal Diastolic BP",
		"Abnormal Temperature",
		"Abnormal Heart Rate",
		"Low SpO2 Level",
	}, got)
}

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		name  string
		tweak func(*Reading)
		want  []AnomalyLabel
	}{
		{"systolic 90", func(r *Reading) { r.SystolicPressure = 90 }, []AnomalyLabel{}},
		{"systolic 140", func(r *Reading) { r.SystolicPressure = 140 }, []AnomalyLabel{}},
		{"systolic 89", func(r *Reading) { r.SystolicPressure = 89 }, []AnomalyLabel{LabelSystolic}},
		{"systolic 141", func(r *Reading) { r.SystolicPressure = 141 }, []AnomalyLabel{LabelSystolic}},
		{"diastolic 60", func(r *Reading) { r.DiastolicPressure = 60 }, []AnomalyLabel{}},
		{"diastolic 90", func(r *Reading) { r.DiastolicPressure = 90 }, []AnomalyLabel{}},
		{"diastolic 59", func(r *Reading) { r.DiastolicPressure = 59 }, []AnomalyLabel{LabelDiastolic}},
		{"diastolic 91", func(r *Reading) { r.DiastolicPressure = 91 }, []AnomalyLabel{LabelDiastolic}},
		{"temperature 36.0", func(r *Reading) { r.Temperature = 36.0 }, []AnomalyLabel{}},
		{"temperature 35.9", func(r *Reading) { r.Temperature = 35.9 }, []AnomalyLabel{LabelTemperature}},
		{"temperature 38.6", func(r *Reading) { r.Temperature = 38.6 }, []AnomalyLabel{LabelTemperature}},
		{"heart rate 60", func(r *Reading) { r.HeartRate = 60 }, []AnomalyLabel{}},
		{"heart rate 100", func(r *Reading) { r.HeartRate = 100 }, []AnomalyLabel{}},
		{"heart rate 59", func(r *Reading) { r.HeartRate = 59 }, []AnomalyLabel{LabelHeartRate}},
		{"heart rate 101", func(r *Reading) { r.HeartRate = 101 }, []AnomalyLabel{LabelHeartRate}},
		{"spo2 95", func(r *Reading) { r.OxygenSaturation = 95 }, []AnomalyLabel{}},
		{"spo2 94", func(r *Reading) { r.OxygenSaturation = 94 }, []AnomalyLabel{LabelOxygenSaturation}},
		{"spo2 100 has no upper bound", func(r *Reading) { r.OxygenSaturation = 100 }, []AnomalyLabel{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := normalReading()
			tc.tweak(&r)
			assert.Equal(t, tc.want, Classify(r))
		})
	}
}

func TestClassify_NormalGridIsEmpty(t *testing.T) {
	for sys := 90; sys <= 140; sys += 10 {
		for dia := 60; dia <= 90; dia += 10 {
			for hr := 60; hr <= 100; hr += 20 {
				for _, temp := range []float64{36.0, 37.0, 38.5} {
					for _, spo2 := range []int{95, 99, 100} {
						r := Reading{SystolicPressure: sys, DiastolicPressure: dia, HeartRate: hr, Temperature: temp, OxygenSaturation: spo2}
						if got := Classify(r); len(got) != 0 {
							t.Fatalf("expected no anomalies for %+v, got %v", r, got)
						}
					}
				}
			}
		}
	}
}

func TestClassify_DeterministicAndConcurrent(t *testing.T) {
	in := Reading{SystolicPressure: 145, DiastolicPressure: 95, HeartRate: 105, Temperature: 38.5, OxygenSaturation: 92}
	want := Classify(in)

	var wg sync.WaitGroup
	results := make([][]AnomalyLabel, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Classify(in)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestThresholds_WithOverridesOnlyCopy(t *testing.T) {
	base := DefaultThresholds()
	custom := base.With(KindOxygenSaturation, AtLeast(92))

	c := NewClassifier(custom)
	r := normalReading()
	r.OxygenSaturation = 93

	assert.Empty(t, c.Classify(r))
	assert.Equal(t, []AnomalyLabel{LabelOxygenSaturation}, Classify(r))

	rule, ok := base.Get(KindOxygenSaturation)
	require.True(t, ok)
	assert.Equal(t, 95.0, *rule.Range.Min)
}

func TestClassifier_IgnoresLaterMutationOfTable(t *testing.T) {
	tbl := DefaultThresholds()
	c := NewClassifier(tbl)

	tbl[0].Label = "mutated"
	*tbl[0].Range.Min = 0
	*tbl[0].Range.Max = 300

	got := c.Classify(Reading{SystolicPressure: 200, DiastolicPressure: 80, HeartRate: 72, Temperature: 37, OxygenSaturation: 98})
	assert.Equal(t, []AnomalyLabel{LabelSystolic}, got)

	exposed := c.Thresholds()
	*exposed[3].Range.Max = 500
	got = c.Classify(Reading{SystolicPressure: 120, DiastolicPressure: 80, HeartRate: 150, Temperature: 37, OxygenSaturation: 98})
	assert.Equal(t, []AnomalyLabel{LabelHeartRate}, got)
}

func TestThresholds_WithDoesNotShareBounds(t *testing.T) {
	base := DefaultThresholds()
	rg := Between(50, 110)
	derived := base.With(KindHeartRate, rg)

	*rg.Max = 999
	*derived[0].Range.Min = 10

	hr, _ := derived.Get(KindHeartRate)
	assert.Equal(t, 110.0, *hr.Range.Max)
	sys, _ := base.Get(KindSystolic)
	assert.Equal(t, 90.0, *sys.Range.Min)
}

func TestThresholds_Validate(t *testing.T) {
	require.NoError(t, DefaultThresholds().Validate())

	bad := DefaultThresholds().With(KindHeartRate, Between(120, 60))
	assert.ErrorIs(t, bad.Validate(), ErrInvalidThresholds)

	dup := append(DefaultThresholds(), Rule{Kind: KindSystolic, Range: Between(1, 2), Label: "x"})
	assert.ErrorIs(t, dup.Validate(), ErrInvalidThresholds)

	unknown := Thresholds{{Kind: "glucose", Range: Between(70, 140), Label: "High glucose"}}
	assert.ErrorIs(t, unknown.Validate(), ErrInvalidThresholds)
}
