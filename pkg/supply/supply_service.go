package supply

import (
	"context"
	"fmt"
	"strings"

	"Supply-Map-Dashboard/domain"
	"Supply-Map-Dashboard/entities"
	"Supply-Map-Dashboard/internal/utils"
	"Supply-Map-Dashboard/internal/utils/mailing"
	"Supply-Map-Dashboard/pkg/activity"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const StatusPending = "Pending"

type (
	SupplyService interface {
		CreateSupplyRequest(ctx context.Context, req domain.CreateSupplyRequestRequest) (domain.SupplyRequestResponse, error)
		GetSupplyRequests(ctx context.Context, status string, page, limit int) ([]domain.SupplyRequestResponse, int64, error)
	}

	supplyService struct {
		supplyRepository SupplyRepository
		activityService  activity.ActivityService
	}
)

func NewSupplyService(supplyRepository SupplyRepository, activityService activity.ActivityService) SupplyService {
	return &supplyService{
		supplyRepository: supplyRepository,
		activityService:  activityService,
	}
}

func (s *supplyService) CreateSupplyRequest(ctx context.Context, req domain.CreateSupplyRequestRequest) (domain.SupplyRequestResponse, error) {
	itemType := strings.TrimSpace(req.ItemType)
	if itemType == "" {
		return domain.SupplyRequestResponse{}, domain.ErrEmptyItemType
	}

	request := &entities.SupplyRequest{
		ID:       uuid.New(),
		ItemType: itemType,
		Status:   StatusPending,
	}

	if err := s.supplyRepository.CreateSupplyRequest(ctx, request); err != nil {
		return domain.SupplyRequestResponse{}, err
	}

	if err := s.activityService.Record(ctx, fmt.Sprintf("Supply requested: %s", itemType)); err != nil {
		log.Warnf("failed to record supply request activity: %v", err)
	}

	s.notify(itemType)

	return domain.SupplyRequestResponse{
		ID:        request.ID.String(),
		ItemType:  request.ItemType,
		Status:    request.Status,
		CreatedAt: request.CreatedAt,
	}, nil
}

func (s *supplyService) GetSupplyRequests(ctx context.Context, status string, page, limit int) ([]domain.SupplyRequestResponse, int64, error) {
	requests, count, err := s.supplyRepository.GetSupplyRequests(ctx, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.SupplyRequestResponse
	for _, request := range requests {
		response = append(response, domain.SupplyRequestResponse{
			ID:        request.ID.String(),
			ItemType:  request.ItemType,
			Status:    request.Status,
			CreatedAt: request.CreatedAt,
		})
	}

	return response, count, nil
}

// notify emails the depot contact about a new request. Best effort: the
// request is already persisted, a mail failure only gets logged.
func (s *supplyService) notify(itemType string) {
	notifyEmail := utils.GetConfig("SUPPLY_NOTIFY_EMAIL")
	if notifyEmail == "" {
		return
	}

	subject := "New supply request"
	body := fmt.Sprintf("<p>A new supply request was submitted for: <b>%s</b></p>", itemType)
	if err := mailing.SendMail(notifyEmail, subject, body); err != nil {
		log.Warnf("failed to send supply request notification: %v", err)
	}
}
