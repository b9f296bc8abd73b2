package dashboard

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dikshafoundation/diksha/core"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKG float64
		heightCM float64
		want     BMIResult
		wantErr  []string // offending fields
	}{
		{name: "normal", weightKG: 70, heightCM: 175, want: BMIResult{Value: 22.9, Category: BMINormal}},
		{name: "lower normal bound", weightKG: 50, heightCM: 160, want: BMIResult{Value: 19.5, Category: BMINormal}},
		{name: "underweight", weightKG: 45, heightCM: 170, want: BMIResult{Value: 15.6, Category: BMIUnderweight}},
		{name: "overweight", weightKG: 80, heightCM: 170, want: BMIResult{Value: 27.7, Category: BMIOverweight}},
		{name: "obese", weightKG: 95, heightCM: 165, want: BMIResult{Value: 34.9, Category: BMIObese}},
		{name: "zero height rejected", weightKG: 70, heightCM: 0, wantErr: []string{"height"}},
		{name: "negative weight rejected", weightKG: -1, heightCM: 170, wantErr: []string{"weight"}},
		{name: "both invalid", weightKG: 0, heightCM: -5, wantErr: []string{"weight", "height"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BMI(tt.weightKG, tt.heightCM)
			if tt.wantErr != nil {
				require.Error(t, err)
				vErr, ok := errors.Cause(err).(*core.ValidationError)
				require.True(t, ok)
				var fields []string
				for _, fldErr := range vErr.Fields {
					fields = append(fields, fldErr.Field)
				}
				assert.Equal(t, tt.wantErr, fields)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
