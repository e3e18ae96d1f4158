package activity

import (
	"context"
	"time"

	"Supply-Map-Dashboard/domain"
	"Supply-Map-Dashboard/entities"

	"github.com/google/uuid"
)

const logTimestampFormat = "2006-01-02 15:04:05"

type (
	ActivityService interface {
		Record(ctx context.Context, action string) error
		GetLatestLogs(ctx context.Context, limit int) ([]domain.LogEntryResponse, error)
	}

	activityService struct {
		activityRepository ActivityRepository
	}
)

func NewActivityService(activityRepository ActivityRepository) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
	}
}

func (s *activityService) Record(ctx context.Context, action string) error {
	log := &entities.ActivityLog{
		ID:         uuid.New(),
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}

	return s.activityRepository.AddLog(ctx, log)
}

func (s *activityService) GetLatestLogs(ctx context.Context, limit int) ([]domain.LogEntryResponse, error) {
	logs, err := s.activityRepository.GetLatestLogs(ctx, limit)
	if err != nil {
		return nil, err
	}

	response := make([]domain.LogEntryResponse, 0, len(logs))
	for _, log := range logs {
		response = append(response, domain.LogEntryResponse{
			Timestamp: log.OccurredAt.Format(logTimestampFormat),
			Action:    log.Action,
		})
	}

	return response, nil
}
