package domain

import (
	"errors"

	"Supply-Map-Dashboard/pkg/placement"
)

var (
	MessageSuccessGetMaps      = "maps retrieved successfully"
	MessageSuccessGetMapItems  = "map items retrieved successfully"
	MessageSuccessGetMapStats  = "map statistics retrieved successfully"
	MessageFailedGetMaps       = "failed to retrieve maps"
	MessageFailedGetMapItems   = "failed to retrieve map items"
	MessageFailedGetMapStats   = "failed to retrieve map statistics"
	MessageFailedContainerSize = "invalid container size"

	ErrMapNotFound      = errors.New("map not found")
	ErrBadContainerSize = errors.New("container size must be positive")
)

type (
	MapResponse struct {
		Name     string `json:"name"`
		ImageURL string `json:"image_url"`
		DataURL  string `json:"data_url"`
	}

	MapItemsResponse struct {
		Map             string                `json:"map"`
		ContainerWidth  float64               `json:"container_width"`
		ContainerHeight float64               `json:"container_height"`
		Items           []placement.Placement `json:"items"`
		SkippedRows     int                   `json:"skipped_rows"`
	}

	MapStatsResponse struct {
		Map           string `json:"map"`
		TotalItems    int    `json:"total_items"`
		NoExpiry      int    `json:"no_expiry"`
		SafeItems     int    `json:"safe_items"`
		WarningItems  int    `json:"warning_items"`
		CriticalItems int    `json:"critical_items"`
		ExpiredItems  int    `json:"expired_items"`
	}
)
