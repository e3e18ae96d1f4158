package placement

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestColorForCoversEveryBucket(t *testing.T) {
	tests := []struct {
		name      string
		hoursLeft float64
		want      string
	}{
		{"no expiry", math.Inf(1), ColorNoExpiry},
		{"expired at zero", 0, ColorExpired},
		{"negative hours", -5, ColorExpired},
		{"just inside a day", 23.99, ColorCritical},
		{"tiny positive", 0.001, ColorCritical},
		{"exactly 24", 24, ColorWarning},
		{"two days", 48, ColorWarning},
		{"just under 72", 71.99, ColorWarning},
		{"exactly 72", 72, ColorSafe},
		{"far future", 1000, ColorSafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorFor(tt.hoursLeft))
		})
	}
}

func TestColorForIsTotal(t *testing.T) {
	known := map[string]bool{
		ColorNoExpiry: true,
		ColorExpired:  true,
		ColorCritical: true,
		ColorWarning:  true,
		ColorSafe:     true,
	}
	for _, h := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), -1e9, 0, 24, 72, 1e9} {
		assert.True(t, known[ColorFor(h)], "hoursLeft=%v produced an unknown color", h)
	}
}

func TestClassifyNoExpiry(t *testing.T) {
	for _, raw := range []string{"", "N/A", "  N/A  "} {
		info, err := Classify(raw, testNow)
		require.NoError(t, err)
		assert.Equal(t, "No Expiry", info.Text)
		assert.True(t, math.IsInf(info.HoursLeft, 1))
	}
}

func TestClassifyFuture(t *testing.T) {
	future := testNow.Add(50 * time.Hour).Format(time.RFC3339)

	info, err := Classify(future, testNow)
	require.NoError(t, err)
	assert.InDelta(t, 50, info.HoursLeft, 1e-9)
	assert.Equal(t, "Expires in 50 hours", info.Text)
}

func TestClassifyFractionalHoursFloorInText(t *testing.T) {
	future := testNow.Add(50*time.Hour + 30*time.Minute).Format(time.RFC3339)

	info, err := Classify(future, testNow)
	require.NoError(t, err)
	assert.InDelta(t, 50.5, info.HoursLeft, 1e-9)
	assert.Equal(t, "Expires in 50 hours", info.Text)
}

func TestClassifyPast(t *testing.T) {
	past := testNow.Add(-time.Hour).Format(time.RFC3339)

	info, err := Classify(past, testNow)
	require.NoError(t, err)
	assert.Equal(t, "Expired", info.Text)
	assert.Equal(t, 0.0, info.HoursLeft)
}

func TestClassifyUnparseableFallsBackToNoExpiry(t *testing.T) {
	info, err := Classify("next tuesday", testNow)
	require.ErrorIs(t, err, ErrInvalidExpiry)
	assert.Equal(t, "No Expiry", info.Text)
	assert.True(t, math.IsInf(info.HoursLeft, 1))
}

func TestClassifyDateOnlyLayout(t *testing.T) {
	info, err := Classify("2025-06-11", testNow)
	require.NoError(t, err)
	assert.InDelta(t, 9*24+12, info.HoursLeft, 1e-9)
}

func TestPlaceCentersBoxOnPercentagePoint(t *testing.T) {
	left, top, err := Place("50,50", 40, 20, 400, 200)
	require.NoError(t, err)
	assert.Equal(t, 180.0, left)
	assert.Equal(t, 90.0, top)
}

func TestPlaceAcceptsParenthesizedCoordinates(t *testing.T) {
	left, top, err := Place("(25,75)", 10, 10, 400, 200)
	require.NoError(t, err)
	assert.Equal(t, 95.0, left)
	assert.Equal(t, 145.0, top)
}

func TestPlaceDoesNotClampOutOfRange(t *testing.T) {
	left, top, err := Place("150,-10", 0, 0, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, 150.0, left)
	assert.Equal(t, -10.0, top)
}

func TestPlaceRejectsMalformedCoordinates(t *testing.T) {
	for _, centre := range []string{"", "50", "a,b", "50;50", "1,2,3"} {
		_, _, err := Place(centre, 10, 10, 100, 100)
		assert.ErrorIs(t, err, ErrBadCoordinates, "centre=%q", centre)
	}
}

func TestParseCSV(t *testing.T) {
	records := ParseCSV("a,b\n1,2\n3,4")
	require.Len(t, records, 2)
	assert.Equal(t, Record{"a": "1", "b": "2"}, records[0])
	assert.Equal(t, Record{"a": "3", "b": "4"}, records[1])
}

func TestParseCSVIgnoresTrailingBlankLines(t *testing.T) {
	records := ParseCSV("a,b\n1,2\n3,4\n\n")
	assert.Len(t, records, 2)
}

func TestParseCSVShortRowLeavesFieldAbsent(t *testing.T) {
	records := ParseCSV("a,b,c\n1,2")
	require.Len(t, records, 1)

	assert.Equal(t, "1", records[0]["a"])
	_, ok := records[0]["c"]
	assert.False(t, ok)
}

func TestParseCSVTrimsHeadersAndValues(t *testing.T) {
	records := ParseCSV(" a , b \n 1 , 2 ")
	require.Len(t, records, 1)
	assert.Equal(t, Record{"a": "1", "b": "2"}, records[0])
}

func TestParseCSVEmptyInput(t *testing.T) {
	assert.Empty(t, ParseCSV(""))
	assert.Empty(t, ParseCSV("\n\n"))
}

func TestComputeBuildsFullPlacement(t *testing.T) {
	rec := Record{
		FieldItemType:    "medkit",
		FieldItemName:    "Field Medkit",
		FieldCoordinates: "50,50",
		FieldLength:      "40",
		FieldBreadth:     "20",
		FieldExpiryDate:  testNow.Add(10 * time.Hour).Format(time.RFC3339),
	}

	p, err := Compute(rec, 400, 200, testNow)
	require.NoError(t, err)
	assert.Equal(t, "medkit", p.ItemType)
	assert.Equal(t, 180.0, p.LeftPx)
	assert.Equal(t, 90.0, p.TopPx)
	assert.Equal(t, ColorCritical, p.Color)
	assert.InDelta(t, 10, p.TimeInfo.HoursLeft, 1e-9)
}

func TestComputeRejectsUnplaceableRecord(t *testing.T) {
	rec := Record{
		FieldCoordinates: "not-a-point",
		FieldLength:      "40",
		FieldBreadth:     "20",
	}

	_, err := Compute(rec, 400, 200, testNow)
	assert.ErrorIs(t, err, ErrBadCoordinates)
}

func TestComputeRejectsBadDimensions(t *testing.T) {
	rec := Record{
		FieldCoordinates: "50,50",
		FieldLength:      "wide",
		FieldBreadth:     "20",
	}

	_, err := Compute(rec, 400, 200, testNow)
	assert.ErrorIs(t, err, ErrBadDimensions)
}

func TestComputeStillPlacesRecordWithInvalidExpiry(t *testing.T) {
	rec := Record{
		FieldItemType:    "crate",
		FieldCoordinates: "10,10",
		FieldLength:      "10",
		FieldBreadth:     "10",
		FieldExpiryDate:  "someday",
	}

	p, err := Compute(rec, 100, 100, testNow)
	require.ErrorIs(t, err, ErrInvalidExpiry)
	assert.Equal(t, "No Expiry", p.TimeInfo.Text)
	assert.Equal(t, ColorNoExpiry, p.Color)
	assert.Equal(t, 5.0, p.LeftPx)
}
