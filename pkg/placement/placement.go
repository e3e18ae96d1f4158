package placement

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Field names as they appear in the map CSV headers.
const (
	FieldItemType    = "item_type"
	FieldItemName    = "item_name"
	FieldCoordinates = "centre_coordinates"
	FieldLength      = "length"
	FieldBreadth     = "breadth"
	FieldExpiryDate  = "Expiry_Date"
)

var (
	ErrBadCoordinates = errors.New("invalid centre coordinates")
	ErrBadDimensions  = errors.New("invalid item dimensions")
	ErrInvalidExpiry  = errors.New("invalid expiry date")
)

type (
	// Record is one parsed CSV row, keyed by header name. A header whose
	// column was missing from the row is absent from the map.
	Record map[string]string

	// TimeInfo describes the time remaining before an item expires.
	// HoursLeft is +Inf for items without an expiry and 0 for items
	// already expired.
	TimeInfo struct {
		Text      string  `json:"text"`
		HoursLeft float64 `json:"hours_left"`
	}

	// Placement is the computed pixel box and color for one record,
	// ready for rendering. Coordinates are relative to the container's
	// top-left corner and center the item on its percentage position.
	Placement struct {
		ItemType string   `json:"item_type"`
		ItemName string   `json:"item_name"`
		WidthPx  float64  `json:"width_px"`
		HeightPx float64  `json:"height_px"`
		LeftPx   float64  `json:"left_px"`
		TopPx    float64  `json:"top_px"`
		Color    string   `json:"color"`
		TimeInfo TimeInfo `json:"time_info"`
	}
)

// Place converts a "x,y" percentage coordinate into the pixel top-left
// corner of a widthPx x heightPx box centered on that point. Percentages
// outside [0,100] are not clamped; items may land outside the container.
// Coordinates wrapped in parentheses, as written in the original data
// files, are accepted.
func Place(centre string, widthPx, heightPx, containerWidthPx, containerHeightPx float64) (leftPx, topPx float64, err error) {
	x, y, err := parseCentre(centre)
	if err != nil {
		return 0, 0, err
	}

	leftPx = (x/100)*containerWidthPx - widthPx/2
	topPx = (y/100)*containerHeightPx - heightPx/2
	return leftPx, topPx, nil
}

func parseCentre(centre string) (x, y float64, err error) {
	s := strings.TrimSpace(centre)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCoordinates, centre)
	}

	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCoordinates, centre)
	}

	return x, y, nil
}

// Compute builds the full placement for one record against a container
// size, evaluated at now. A record with unusable coordinates or
// dimensions cannot be placed and yields a non-nil error with a zero
// Placement. A record whose expiry date does not parse is still placed:
// it is classified as "No Expiry" and Compute reports ErrInvalidExpiry
// alongside the usable result so callers can log it.
func Compute(rec Record, containerWidthPx, containerHeightPx float64, now time.Time) (Placement, error) {
	width, errW := strconv.ParseFloat(rec[FieldLength], 64)
	height, errH := strconv.ParseFloat(rec[FieldBreadth], 64)
	if errW != nil || errH != nil {
		return Placement{}, fmt.Errorf("%w: length=%q breadth=%q", ErrBadDimensions, rec[FieldLength], rec[FieldBreadth])
	}

	left, top, err := Place(rec[FieldCoordinates], width, height, containerWidthPx, containerHeightPx)
	if err != nil {
		return Placement{}, err
	}

	info, expiryErr := Classify(rec[FieldExpiryDate], now)

	return Placement{
		ItemType: rec[FieldItemType],
		ItemName: rec[FieldItemName],
		WidthPx:  width,
		HeightPx: height,
		LeftPx:   left,
		TopPx:    top,
		Color:    ColorFor(info.HoursLeft),
		TimeInfo: info,
	}, expiryErr
}
