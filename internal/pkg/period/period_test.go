package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	cases := []struct {
		input string
		want  time.Month
		ok    bool
	}{
		{"January", time.January, true},
		{"january", time.January, true},
		{"Feb", time.February, true},
		{"12", time.December, true},
		{" March ", time.March, true},
		{"13", 0, false},
		{"Smarch", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := ParseMonth(c.input)
		if !c.ok {
			assert.Error(t, err, c.input)
			continue
		}
		require.NoError(t, err, c.input)
		assert.Equal(t, c.want, got, c.input)
	}
}

func TestPeriod_Days(t *testing.T) {
	assert.Equal(t, 31, Period{Month: time.January, Year: 2025}.Days())
	assert.Equal(t, 28, Period{Month: time.February, Year: 2025}.Days())
	assert.Equal(t, 29, Period{Month: time.February, Year: 2024}.Days())
	assert.Equal(t, 30, Period{Month: time.April, Year: 2025}.Days())
}

func TestPeriod_Before(t *testing.T) {
	mar := Period{Month: time.March, Year: 2025}
	apr := Period{Month: time.April, Year: 2025}
	decPrev := Period{Month: time.December, Year: 2024}

	assert.True(t, mar.Before(apr))
	assert.False(t, apr.Before(mar))
	assert.False(t, mar.Before(mar))
	assert.True(t, decPrev.Before(mar))
}

func TestParse(t *testing.T) {
	p, err := Parse("September", 2025)
	require.NoError(t, err)
	assert.Equal(t, "September", p.MonthName())
	assert.Equal(t, "September 2025", p.String())

	_, err = New(0, 2025)
	assert.Error(t, err)
}
