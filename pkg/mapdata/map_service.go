package mapdata

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"Supply-Map-Dashboard/domain"
	"Supply-Map-Dashboard/pkg/activity"
	"Supply-Map-Dashboard/pkg/placement"

	"github.com/gofiber/fiber/v2/log"
)

type (
	MapService interface {
		GetMaps(ctx context.Context) ([]domain.MapResponse, error)
		GetMapItems(ctx context.Context, name string, containerWidth, containerHeight float64) (domain.MapItemsResponse, error)
		GetMapStats(ctx context.Context, name string) (domain.MapStatsResponse, error)
	}

	mapService struct {
		mapRepository   MapRepository
		activityService activity.ActivityService
	}
)

func NewMapService(mapRepository MapRepository, activityService activity.ActivityService) MapService {
	return &mapService{
		mapRepository:   mapRepository,
		activityService: activityService,
	}
}

func (s *mapService) GetMaps(ctx context.Context) ([]domain.MapResponse, error) {
	sources, err := s.mapRepository.GetMaps(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.MapResponse
	for _, src := range sources {
		imageURL := ""
		if src.ImageFile != "" {
			imageURL = "/maps/" + src.ImageFile
		}
		response = append(response, domain.MapResponse{
			Name:     src.Name,
			ImageURL: imageURL,
			DataURL:  "/data/" + src.DataFile,
		})
	}

	return response, nil
}

// GetMapItems loads a map's records and computes their placements for
// the given container size. Placements are evaluated against the
// current time on every call; nothing is cached between loads. Records
// that cannot be placed are skipped and counted, never fatal.
func (s *mapService) GetMapItems(ctx context.Context, name string, containerWidth, containerHeight float64) (domain.MapItemsResponse, error) {
	if containerWidth <= 0 || containerHeight <= 0 {
		return domain.MapItemsResponse{}, domain.ErrBadContainerSize
	}

	records, err := s.loadRecords(ctx, name)
	if err != nil {
		return domain.MapItemsResponse{}, err
	}

	now := time.Now().UTC()
	items := make([]placement.Placement, 0, len(records))
	skipped := 0

	for i, rec := range records {
		p, err := placement.Compute(rec, containerWidth, containerHeight, now)
		if err != nil {
			if !errors.Is(err, placement.ErrInvalidExpiry) {
				log.Warnf("map %s: skipping row %d: %v", name, i+1, err)
				skipped++
				continue
			}
			log.Warnf("map %s: row %d: %v", name, i+1, err)
		}
		items = append(items, p)
	}

	if err := s.activityService.Record(ctx, fmt.Sprintf("Loaded map: %s", name)); err != nil {
		log.Warnf("failed to record map load activity: %v", err)
	}

	return domain.MapItemsResponse{
		Map:             name,
		ContainerWidth:  containerWidth,
		ContainerHeight: containerHeight,
		Items:           items,
		SkippedRows:     skipped,
	}, nil
}

func (s *mapService) GetMapStats(ctx context.Context, name string) (domain.MapStatsResponse, error) {
	records, err := s.loadRecords(ctx, name)
	if err != nil {
		return domain.MapStatsResponse{}, err
	}

	now := time.Now().UTC()
	stats := domain.MapStatsResponse{Map: name, TotalItems: len(records)}

	for i, rec := range records {
		info, err := placement.Classify(rec[placement.FieldExpiryDate], now)
		if err != nil {
			log.Warnf("map %s: row %d: %v", name, i+1, err)
		}

		switch {
		case math.IsInf(info.HoursLeft, 1):
			stats.NoExpiry++
		case info.HoursLeft <= 0:
			stats.ExpiredItems++
		case info.HoursLeft < 24:
			stats.CriticalItems++
		case info.HoursLeft < 72:
			stats.WarningItems++
		default:
			stats.SafeItems++
		}
	}

	return stats, nil
}

func (s *mapService) loadRecords(ctx context.Context, name string) ([]placement.Record, error) {
	data, err := s.mapRepository.GetMapData(ctx, name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrMapNotFound
		}
		return nil, err
	}

	return placement.ParseCSV(data), nil
}
