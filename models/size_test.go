package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Joaovitor2710/dashboard-ibge/models"
)

func TestClassifySize(t *testing.T) {
	tests := []struct {
		name       string
		population float64
		want       models.SizeCategory
	}{
		{"zero population", 0, models.SizeSmall},
		{"missing coerced to zero", 0, models.SizeSmall},
		{"below first breakpoint", 19999, models.SizeSmall},
		{"exactly 20000 lands in higher bucket", 20000, models.SizeMedium},
		{"mid medium", 50000, models.SizeMedium},
		{"exactly 100000", 100000, models.SizeLarge},
		{"mid large", 250000, models.SizeLarge},
		{"exactly 500000", 500000, models.SizeMetropolis},
		{"megacity", 12000000, models.SizeMetropolis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.ClassifySize(tt.population))
		})
	}
}
