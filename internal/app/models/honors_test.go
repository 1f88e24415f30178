package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForGPA(t *testing.T) {
	thresholds := HonorsThresholds{
		SummaCumLaude: 3.9,
		MagnaCumLaude: 3.85,
		CumLaude:      3.7,
	}

	tests := []struct {
		name string
		gpa  float64
		want HonorsTier
	}{
		{"summa at threshold", 3.9, HonorsSummaCumLaude},
		{"summa above threshold", 4.0, HonorsSummaCumLaude},
		{"magna at threshold", 3.85, HonorsMagnaCumLaude},
		{"magna just below summa", 3.89, HonorsMagnaCumLaude},
		{"cum laude at threshold", 3.7, HonorsCumLaude},
		{"cum laude just below magna", 3.84, HonorsCumLaude},
		{"below cum laude", 3.69, HonorsNone},
		{"average student", 2.85, HonorsNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierForGPA(tt.gpa, thresholds))
		})
	}
}
