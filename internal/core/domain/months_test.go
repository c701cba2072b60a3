package domain_test

import (
	"testing"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsMonthName(t *testing.T) {
	for _, m := range domain.MonthNames {
		assert.True(t, domain.IsMonthName(m), m)
	}

	assert.False(t, domain.IsMonthName(""))
	assert.False(t, domain.IsMonthName("january"))
	assert.False(t, domain.IsMonthName("Jan"))
	assert.False(t, domain.IsMonthName("Smarch"))
}

func TestQuarterMonths(t *testing.T) {
	assert.Equal(t, []string{"January", "February", "March"}, domain.QuarterMonths(1))
	assert.Equal(t, []string{"April", "May", "June"}, domain.QuarterMonths(2))
	assert.Equal(t, []string{"July", "August", "September"}, domain.QuarterMonths(3))
	assert.Equal(t, []string{"October", "November", "December"}, domain.QuarterMonths(4))

	assert.Nil(t, domain.QuarterMonths(0))
	assert.Nil(t, domain.QuarterMonths(5))
	assert.Nil(t, domain.QuarterMonths(-1))
}
