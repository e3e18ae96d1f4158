package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateSupplyRequest = "supply request submitted successfully"
	MessageSuccessGetSupplyRequests   = "supply requests retrieved successfully"
	MessageFailedCreateSupplyRequest  = "failed to submit supply request"
	MessageFailedGetSupplyRequests    = "failed to retrieve supply requests"

	ErrEmptyItemType = errors.New("item type must not be empty")
)

type (
	CreateSupplyRequestRequest struct {
		ItemType string `json:"item_type" validate:"required"`
	}

	SupplyRequestResponse struct {
		ID        string    `json:"id"`
		ItemType  string    `json:"item_type"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}
)
