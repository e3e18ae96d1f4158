package mapdata

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"Supply-Map-Dashboard/domain"
	"Supply-Map-Dashboard/pkg/placement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingActivityService struct {
	actions []string
}

func (s *recordingActivityService) Record(_ context.Context, action string) error {
	s.actions = append(s.actions, action)
	return nil
}

func (s *recordingActivityService) GetLatestLogs(_ context.Context, _ int) ([]domain.LogEntryResponse, error) {
	return nil, nil
}

func writeTestMap(t *testing.T, dataDir, mapsDir, name, csv string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, name+".csv"), []byte(csv), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(mapsDir, name+".png"), []byte("png"), 0644))
}

func newTestService(t *testing.T) (MapService, *recordingActivityService, string, string) {
	t.Helper()
	mapsDir := t.TempDir()
	dataDir := t.TempDir()
	activitySvc := &recordingActivityService{}
	svc := NewMapService(NewMapRepository(mapsDir, dataDir), activitySvc)
	return svc, activitySvc, mapsDir, dataDir
}

func TestGetMapsPairsDataWithImages(t *testing.T) {
	svc, _, mapsDir, dataDir := newTestService(t)
	writeTestMap(t, dataDir, mapsDir, "warehouse", "item_type,item_name\n")
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "annex.csv"), []byte("item_type\n"), 0644))

	maps, err := svc.GetMaps(context.Background())
	require.NoError(t, err)
	require.Len(t, maps, 2)

	// sorted by name
	assert.Equal(t, "annex", maps[0].Name)
	assert.Empty(t, maps[0].ImageURL) // no image on disk
	assert.Equal(t, "warehouse", maps[1].Name)
	assert.Equal(t, "/maps/warehouse.png", maps[1].ImageURL)
	assert.Equal(t, "/data/warehouse.csv", maps[1].DataURL)
}

func TestGetMapItemsComputesPlacements(t *testing.T) {
	svc, activitySvc, mapsDir, dataDir := newTestService(t)

	future := time.Now().UTC().Add(100 * time.Hour).Format(time.RFC3339)
	csv := "item_type,item_name,centre_coordinates,length,breadth,Expiry_Date\n" +
		"crate,Water Crate,(50,50),40,20," + future + "\n"
	writeTestMap(t, dataDir, mapsDir, "warehouse", csv)

	res, err := svc.GetMapItems(context.Background(), "warehouse", 400, 200)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)

	item := res.Items[0]
	assert.Equal(t, "crate", item.ItemType)
	assert.Equal(t, 180.0, item.LeftPx)
	assert.Equal(t, 90.0, item.TopPx)
	assert.Equal(t, placement.ColorSafe, item.Color)
	assert.Zero(t, res.SkippedRows)

	assert.Contains(t, activitySvc.actions, "Loaded map: warehouse")
}

func TestGetMapItemsSkipsUnplaceableRows(t *testing.T) {
	svc, _, mapsDir, dataDir := newTestService(t)

	csv := "item_type,item_name,centre_coordinates,length,breadth,Expiry_Date\n" +
		"crate,Good,(50,50),10,10,N/A\n" +
		"crate,Bad,not-a-point,10,10,N/A\n" +
		"crate,Short\n"
	writeTestMap(t, dataDir, mapsDir, "warehouse", csv)

	res, err := svc.GetMapItems(context.Background(), "warehouse", 100, 100)
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, 2, res.SkippedRows)
}

func TestGetMapItemsKeepsRowsWithInvalidExpiry(t *testing.T) {
	svc, _, mapsDir, dataDir := newTestService(t)

	csv := "item_type,item_name,centre_coordinates,length,breadth,Expiry_Date\n" +
		"crate,Odd,(10,10),10,10,someday\n"
	writeTestMap(t, dataDir, mapsDir, "warehouse", csv)

	res, err := svc.GetMapItems(context.Background(), "warehouse", 100, 100)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "No Expiry", res.Items[0].TimeInfo.Text)
	assert.Zero(t, res.SkippedRows)
}

func TestGetMapItemsUnknownMap(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.GetMapItems(context.Background(), "nowhere", 100, 100)
	assert.ErrorIs(t, err, domain.ErrMapNotFound)
}

func TestGetMapItemsRejectsTraversal(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.GetMapItems(context.Background(), "../secrets", 100, 100)
	assert.ErrorIs(t, err, domain.ErrMapNotFound)
}

func TestGetMapItemsRejectsBadContainerSize(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.GetMapItems(context.Background(), "warehouse", 0, 100)
	assert.ErrorIs(t, err, domain.ErrBadContainerSize)

	_, err = svc.GetMapItems(context.Background(), "warehouse", 100, -5)
	assert.ErrorIs(t, err, domain.ErrBadContainerSize)
}

func TestGetMapStatsBuckets(t *testing.T) {
	svc, _, mapsDir, dataDir := newTestService(t)

	now := time.Now().UTC()
	csv := "item_type,item_name,centre_coordinates,length,breadth,Expiry_Date\n" +
		"a,NoExpiry,(1,1),1,1,N/A\n" +
		"b,Expired,(1,1),1,1," + now.Add(-time.Hour).Format(time.RFC3339) + "\n" +
		"c,Critical,(1,1),1,1," + now.Add(5*time.Hour).Format(time.RFC3339) + "\n" +
		"d,Warning,(1,1),1,1," + now.Add(48*time.Hour).Format(time.RFC3339) + "\n" +
		"e,Safe,(1,1),1,1," + now.Add(100*time.Hour).Format(time.RFC3339) + "\n"
	writeTestMap(t, dataDir, mapsDir, "warehouse", csv)

	stats, err := svc.GetMapStats(context.Background(), "warehouse")
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalItems)
	assert.Equal(t, 1, stats.NoExpiry)
	assert.Equal(t, 1, stats.ExpiredItems)
	assert.Equal(t, 1, stats.CriticalItems)
	assert.Equal(t, 1, stats.WarningItems)
	assert.Equal(t, 1, stats.SafeItems)
}
