package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSearchCriteria_Validate(t *testing.T) {
	tests := []struct {
		name     string
		criteria SearchCriteria
		wantErr  bool
	}{
		{
			name: "valid criteria",
			criteria: SearchCriteria{
				Origin:        "DEL",
				Destination:   "BOM",
				DepartureDate: "2025-12-15",
				Passengers:    1,
			},
			wantErr: false,
		},
		{
			name: "trending search skips route validation",
			criteria: SearchCriteria{
				Passengers: 1,
			},
			wantErr: false,
		},
		{
			name: "invalid origin code",
			criteria: SearchCriteria{
				Origin:        "DELHI",
				Destination:   "BOM",
				DepartureDate: "2025-12-15",
				Passengers:    1,
			},
			wantErr: true,
		},
		{
			name: "same origin and destination",
			criteria: SearchCriteria{
				Origin:        "DEL",
				Destination:   "DEL",
				DepartureDate: "2025-12-15",
				Passengers:    1,
			},
			wantErr: true,
		},
		{
			name: "malformed date",
			criteria: SearchCriteria{
				Origin:        "DEL",
				Destination:   "BOM",
				DepartureDate: "15-12-2025",
				Passengers:    1,
			},
			wantErr: true,
		},
		{
			name: "impossible date",
			criteria: SearchCriteria{
				Origin:        "DEL",
				Destination:   "BOM",
				DepartureDate: "2025-13-45",
				Passengers:    1,
			},
			wantErr: true,
		},
		{
			name: "zero passengers",
			criteria: SearchCriteria{
				Origin:        "DEL",
				Destination:   "BOM",
				DepartureDate: "2025-12-15",
				Passengers:    0,
			},
			wantErr: true,
		},
		{
			name: "too many passengers",
			criteria: SearchCriteria{
				Origin:        "DEL",
				Destination:   "BOM",
				DepartureDate: "2025-12-15",
				Passengers:    10,
			},
			wantErr: true,
		},
		{
			name: "invalid class",
			criteria: SearchCriteria{
				Origin:        "DEL",
				Destination:   "BOM",
				DepartureDate: "2025-12-15",
				Passengers:    1,
				Class:         "premium",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.criteria.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsInvalidRequest(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchCriteria_SetDefaults(t *testing.T) {
	now := time.Date(2025, 12, 14, 10, 0, 0, 0, time.UTC)

	t.Run("fills passengers, class and date", func(t *testing.T) {
		c := SearchCriteria{Origin: "del", Destination: "bom"}
		c.SetDefaults(now)

		assert.Equal(t, "DEL", c.Origin)
		assert.Equal(t, "BOM", c.Destination)
		assert.Equal(t, 1, c.Passengers)
		assert.Equal(t, "economy", c.Class)
		assert.Equal(t, "2025-12-15", c.DepartureDate, "date defaults to tomorrow")
	})

	t.Run("rewrites dd/mm/yyyy dates", func(t *testing.T) {
		c := SearchCriteria{Origin: "DEL", Destination: "BOM", DepartureDate: "14/10/2025"}
		c.SetDefaults(now)

		assert.Equal(t, "2025-10-14", c.DepartureDate)
	})

	t.Run("single-digit day and month are zero padded", func(t *testing.T) {
		c := SearchCriteria{Origin: "DEL", Destination: "BOM", DepartureDate: "3/4/2026"}
		c.SetDefaults(now)

		assert.Equal(t, "2026-04-03", c.DepartureDate)
	})

	t.Run("keeps existing values", func(t *testing.T) {
		c := SearchCriteria{
			Origin:        "DEL",
			Destination:   "BOM",
			DepartureDate: "2026-01-01",
			Passengers:    3,
			Class:         "business",
		}
		c.SetDefaults(now)

		assert.Equal(t, "2026-01-01", c.DepartureDate)
		assert.Equal(t, 3, c.Passengers)
		assert.Equal(t, "business", c.Class)
	})
}
