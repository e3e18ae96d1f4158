package mapdata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Image extensions probed when pairing a CSV with its background image.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".svg", ".webp"}

type (
	// MapSource pairs a background image with a CSV of item records,
	// selected by base name. ImageFile is empty when the maps directory
	// holds no matching image.
	MapSource struct {
		Name      string
		ImageFile string
		DataFile  string
	}

	MapRepository interface {
		GetMaps(ctx context.Context) ([]MapSource, error)
		GetMapData(ctx context.Context, name string) (string, error)
	}

	fsMapRepository struct {
		mapsDir string
		dataDir string
	}
)

func NewMapRepository(mapsDir, dataDir string) MapRepository {
	return &fsMapRepository{
		mapsDir: mapsDir,
		dataDir: dataDir,
	}
}

func (r *fsMapRepository) GetMaps(_ context.Context) ([]MapSource, error) {
	dirEntries, err := os.ReadDir(r.dataDir)
	if err != nil {
		return nil, fmt.Errorf("reading data directory %s: %w", r.dataDir, err)
	}

	var maps []MapSource
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		maps = append(maps, MapSource{
			Name:      name,
			ImageFile: r.findImage(name),
			DataFile:  entry.Name(),
		})
	}

	sort.Slice(maps, func(i, j int) bool { return maps[i].Name < maps[j].Name })
	return maps, nil
}

func (r *fsMapRepository) GetMapData(_ context.Context, name string) (string, error) {
	if !validMapName(name) {
		return "", fmt.Errorf("map %q: %w", name, os.ErrNotExist)
	}

	data, err := os.ReadFile(filepath.Join(r.dataDir, name+".csv"))
	if err != nil {
		return "", fmt.Errorf("reading map data for %q: %w", name, err)
	}

	return string(data), nil
}

func (r *fsMapRepository) findImage(name string) string {
	for _, ext := range imageExtensions {
		candidate := name + ext
		if _, err := os.Stat(filepath.Join(r.mapsDir, candidate)); err == nil {
			return candidate
		}
	}
	return ""
}

// validMapName keeps lookups inside the data directory.
func validMapName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
