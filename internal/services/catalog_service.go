package services

import (
	"errors"
	"fmt"
	"log/slog"

	"walletlink/internal/cache"
	"walletlink/internal/models"
	"walletlink/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrIconNotFound    = errors.New("icon not found")
	ErrColorNotFound   = errors.New("color not found")
	ErrInvalidIconType = errors.New("invalid icon type")
	ErrNoIcons         = errors.New("no icons found")
)

const (
	colorsCacheKey = "colors"
	allIconsKey    = "icons:all"
)

// CatalogService serves the seeded icons and colors through a TTL cache
type CatalogService struct {
	repo       repositories.CatalogRepositoryInterface
	colorCache cache.Cache[[]models.Color]
	iconCache  cache.Cache[[]models.Icon]
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

func NewCatalogService(
	repo repositories.CatalogRepositoryInterface,
	colorCache cache.Cache[[]models.Color],
	iconCache cache.Cache[[]models.Icon],
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CatalogServiceInterface {
	return &CatalogService{
		repo:       repo,
		colorCache: colorCache,
		iconCache:  iconCache,
		metrics:    metrics,
		logger:     logger,
	}
}

// ListColors returns every color sorted by name
func (s *CatalogService) ListColors() ([]models.Color, error) {
	if colors, ok := s.colorCache.Get(colorsCacheKey); ok {
		s.recordLookup(true)
		return colors, nil
	}
	s.recordLookup(false)

	colors, err := s.repo.ListColors()
	if err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}

	s.colorCache.Set(colorsCacheKey, colors)
	return colors, nil
}

// ListIcons returns icons sorted by name, optionally restricted to one type
func (s *CatalogService) ListIcons(iconType string) ([]models.Icon, error) {
	if iconType != "" && !models.IsValidIconType(iconType) {
		return nil, ErrInvalidIconType
	}

	key := allIconsKey
	if iconType != "" {
		key = "icons:" + iconType
	}

	icons, ok := s.iconCache.Get(key)
	s.recordLookup(ok)
	if !ok {
		var err error
		icons, err = s.repo.ListIcons(iconType)
		if err != nil {
			return nil, fmt.Errorf("failed to list icons: %w", err)
		}
		s.iconCache.Set(key, icons)
	}

	if len(icons) == 0 {
		return nil, ErrNoIcons
	}
	return icons, nil
}

func (s *CatalogService) GetColor(id uuid.UUID) (*models.Color, error) {
	colors, err := s.ListColors()
	if err != nil {
		return nil, err
	}
	for i := range colors {
		if colors[i].ID == id {
			color := colors[i]
			return &color, nil
		}
	}

	// The cache may predate a reseed.
	color, err := s.repo.GetColorByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrColorNotFound) {
			return nil, ErrColorNotFound
		}
		return nil, fmt.Errorf("failed to get color: %w", err)
	}
	s.colorCache.Delete(colorsCacheKey)
	return color, nil
}

func (s *CatalogService) GetIcon(id uuid.UUID) (*models.Icon, error) {
	icons, err := s.ListIcons("")
	if err != nil && !errors.Is(err, ErrNoIcons) {
		return nil, err
	}
	for i := range icons {
		if icons[i].ID == id {
			icon := icons[i]
			return &icon, nil
		}
	}

	icon, err := s.repo.GetIconByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrIconNotFound) {
			return nil, ErrIconNotFound
		}
		return nil, fmt.Errorf("failed to get icon: %w", err)
	}
	s.iconCache.Purge()
	return icon, nil
}

func (s *CatalogService) recordLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	s.metrics.IncrementCounter(MetricCatalogCacheHit, map[string]string{"result": result})
}
