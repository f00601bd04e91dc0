package amadeus

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeStatus(t *testing.T, payload string) *statusResponse {
	t.Helper()
	var resp statusResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	return &resp
}

func TestParseStatus_FlightPoints(t *testing.T) {
	resp := decodeStatus(t, `{
		"data": [{
			"flightDesignator": {"carrierCode": "AI", "flightNumber": 101},
			"flightPoints": [
				{
					"iataCode": "DEL",
					"departure": {
						"timings": [
							{"qualifier": "ETD", "value": "2025-01-01T08:20:00"},
							{"qualifier": "STD", "value": "2025-01-01T08:00:00"}
						],
						"terminal": {"code": "T3"}
					}
				},
				{
					"iataCode": "BOM",
					"arrival": {
						"timings": [{"qualifier": "STA", "value": "2025-01-01T10:10:00"}]
					}
				}
			],
			"segments": [{"scheduledSegmentDuration": "PT2H10M"}]
		}]
	}`)

	record := parseStatus(resp)
	require.NotNil(t, record)

	assert.Equal(t, "AI", record.Carrier)
	assert.Equal(t, "101", record.FlightNumber)
	assert.Equal(t, "PT2H10M", record.Duration)
	assert.Equal(t, "scheduled", record.Status)

	require.NotNil(t, record.Departure)
	assert.Equal(t, "DEL", record.Departure.IATACode)
	assert.Equal(t, "2025-01-01T08:00:00", record.Departure.At, "STD entry preferred over ETD")
	assert.Equal(t, "T3", record.Departure.Terminal)

	require.NotNil(t, record.Arrival)
	assert.Equal(t, "BOM", record.Arrival.IATACode)
	assert.Equal(t, "2025-01-01T10:10:00", record.Arrival.At)
}

func TestParseStatus_FlightPointsPreferredOverLegacy(t *testing.T) {
	resp := decodeStatus(t, `{
		"data": [{
			"flightPoints": [
				{"iataCode": "DEL", "departure": {"timings": [{"qualifier": "STD", "value": "2025-01-01T08:00:00"}]}},
				{"iataCode": "BOM", "arrival": {"timings": [{"qualifier": "STA", "value": "2025-01-01T10:00:00"}]}}
			],
			"itineraries": [{
				"duration": "PT9H",
				"segments": [{
					"departure": {"iataCode": "CCU", "at": "2025-01-01T01:00:00"},
					"arrival": {"iataCode": "LHR", "at": "2025-01-01T10:00:00"}
				}]
			}]
		}]
	}`)

	record := parseStatus(resp)
	require.NotNil(t, record)
	assert.Equal(t, "DEL", record.Departure.IATACode)
	assert.Equal(t, "BOM", record.Arrival.IATACode)
}

func TestParseStatus_FlightPointsDurationFromLegs(t *testing.T) {
	resp := decodeStatus(t, `{
		"data": [{
			"flightPoints": [
				{"iataCode": "DEL", "departure": {"timings": [{"qualifier": "STD", "value": "2025-01-01T08:00:00"}]}},
				{"iataCode": "BOM", "arrival": {"timings": [{"qualifier": "STA", "value": "2025-01-01T10:00:00"}]}}
			],
			"legs": [{"scheduledLegDuration": "PT2H"}]
		}]
	}`)

	record := parseStatus(resp)
	require.NotNil(t, record)
	assert.Equal(t, "PT2H", record.Duration)
}

func TestParseStatus_LegacyItineraries(t *testing.T) {
	resp := decodeStatus(t, `{
		"data": [{
			"carrierCode": "6E",
			"number": "204",
			"status": "delayed",
			"itineraries": [{
				"duration": "PT1H30M",
				"segments": [{
					"departure": {"iataCode": "DEL", "at": "2025-01-01T08:00:00", "terminal": "1D"},
					"arrival": {"iataCode": "BOM", "at": "2025-01-01T09:30:00"}
				}]
			}]
		}]
	}`)

	record := parseStatus(resp)
	require.NotNil(t, record)

	assert.Equal(t, "6E", record.Carrier)
	assert.Equal(t, "204", record.FlightNumber)
	assert.Equal(t, "PT1H30M", record.Duration)
	assert.Equal(t, "delayed", record.Status)
	assert.Equal(t, "DEL", record.Departure.IATACode)
	assert.Equal(t, "1D", record.Departure.Terminal)
	assert.Equal(t, "BOM", record.Arrival.IATACode)
}

func TestParseStatus_LegacyDirectFields(t *testing.T) {
	resp := decodeStatus(t, `{
		"data": [{
			"departure": {"airportCode": "BLR", "scheduledTime": "2025-01-01T06:00:00"},
			"arrival": {"airportCode": "MAA", "scheduledTime": "2025-01-01T07:00:00"},
			"duration": "PT1H"
		}]
	}`)

	record := parseStatus(resp)
	require.NotNil(t, record)
	assert.Equal(t, "BLR", record.Departure.IATACode)
	assert.Equal(t, "2025-01-01T06:00:00", record.Departure.At)
	assert.Equal(t, "MAA", record.Arrival.IATACode)
	assert.Equal(t, "PT1H", record.Duration)
	assert.Equal(t, "unknown", record.Status)
}

func TestParseStatus_LegacyUnwrappedPayload(t *testing.T) {
	resp := decodeStatus(t, `{
		"status": "delayed",
		"carrierCode": "AI",
		"number": 101,
		"departure": {"iataCode": "DEL", "at": "2025-01-01T08:00:00", "terminal": "T3"},
		"arrival": {"iataCode": "BOM", "at": "2025-01-01T10:00:00"},
		"duration": "PT2H"
	}`)

	record := parseStatus(resp)
	require.NotNil(t, record)
	assert.Equal(t, "AI", record.Carrier)
	assert.Equal(t, "101", record.FlightNumber)
	assert.Equal(t, "delayed", record.Status)
	assert.Equal(t, "PT2H", record.Duration)
	require.NotNil(t, record.Departure)
	assert.Equal(t, "DEL", record.Departure.IATACode)
	assert.Equal(t, "T3", record.Departure.Terminal)
	require.NotNil(t, record.Arrival)
	assert.Equal(t, "BOM", record.Arrival.IATACode)
}

func TestParseStatus_PayloadLevelStatusFallback(t *testing.T) {
	resp := decodeStatus(t, `{
		"status": "cancelled",
		"data": [{
			"departure": {"iataCode": "DEL", "at": "2025-01-01T08:00:00"}
		}]
	}`)

	record := parseStatus(resp)
	require.NotNil(t, record)
	assert.Equal(t, "cancelled", record.Status)
}

func TestParseStatus_NoUsableRecord(t *testing.T) {
	assert.Nil(t, parseStatus(nil))
	assert.Nil(t, parseStatus(&statusResponse{}))
	assert.Nil(t, parseStatus(decodeStatus(t, `{"data": []}`)))
	assert.Nil(t, parseStatus(decodeStatus(t, `{"data": [{}]}`)))
}
