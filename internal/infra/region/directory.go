// Package region serves the Thai administrative hierarchy from a cached copy
// of the public province dataset.
package region

import (
	"context"
	"log/slog"
	"sync"

	"solarad/config"
	"solarad/internal/domain/entity"
	"solarad/internal/domain/lifecycle"
	"solarad/internal/domain/service"
	"solarad/internal/errors"

	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"
)

const (
	provincesPath = "/api_province.json"
	amphuresPath  = "/api_amphure.json"
	tambonsPath   = "/api_tambon.json"
)

// directory implements service.RegionDirectory. The dataset is fetched once
// and held in memory; it changes on the order of years, so no refresh is
// scheduled.
type directory struct {
	client *resty.Client
	logger *slog.Logger

	mu   sync.RWMutex
	data *entity.RegionData
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewDirectory is the constructor for directory. It warms the cache at
// startup; a failed warm-up is logged and retried lazily on first use so an
// unreachable dataset host does not block boot.
func NewDirectory(params Params) service.RegionDirectory {
	cfg := params.Config.Region

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.FetchTimeout)

	dir := newDirectory(client, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := dir.warm(ctx); err != nil {
				params.Logger.LogAttrs(ctx, slog.LevelWarn, "region data warm-up failed, will retry on demand",
					slog.String("error", err.Error()),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return nil
		},
	})

	return dir
}

func newDirectory(client *resty.Client, logger *slog.Logger) *directory {
	return &directory{
		client: client,
		logger: logger,
	}
}

// warm fetches the full dataset and swaps it into the cache.
func (d *directory) warm(ctx context.Context) error {
	var provinces []entity.Province
	if err := d.fetch(ctx, provincesPath, &provinces); err != nil {
		return err
	}

	var amphures []entity.Amphure
	if err := d.fetch(ctx, amphuresPath, &amphures); err != nil {
		return err
	}

	var tambons []entity.Tambon
	if err := d.fetch(ctx, tambonsPath, &tambons); err != nil {
		return err
	}

	d.mu.Lock()
	d.data = &entity.RegionData{
		Provinces: provinces,
		Amphures:  amphures,
		Tambons:   tambons,
	}
	d.mu.Unlock()

	d.logger.LogAttrs(ctx, slog.LevelInfo, "region data loaded",
		slog.Int("provinces", len(provinces)),
		slog.Int("amphures", len(amphures)),
		slog.Int("tambons", len(tambons)),
	)

	return nil
}

func (d *directory) fetch(ctx context.Context, path string, out any) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetResult(out).
		Get(path)
	if err != nil {
		return errors.Wrapf(err, "failed to fetch %s", path)
	}
	if resp.IsError() {
		return errors.Errorf("failed to fetch %s: status %d", path, resp.StatusCode())
	}

	return nil
}

// ensure returns the cached dataset, loading it first if the warm-up failed.
func (d *directory) ensure(ctx context.Context) (*entity.RegionData, error) {
	d.mu.RLock()
	data := d.data
	d.mu.RUnlock()

	if data != nil {
		return data, nil
	}

	if err := d.warm(ctx); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.data, nil
}

// Provinces returns all provinces ordered by id.
func (d *directory) Provinces(ctx context.Context) ([]entity.Province, error) {
	data, err := d.ensure(ctx)
	if err != nil {
		return nil, err
	}

	return data.Provinces, nil
}

// AmphuresByProvince returns the districts of one province.
func (d *directory) AmphuresByProvince(ctx context.Context, provinceID int) ([]entity.Amphure, error) {
	data, err := d.ensure(ctx)
	if err != nil {
		return nil, err
	}

	amphures := make([]entity.Amphure, 0)
	for _, amphure := range data.Amphures {
		if amphure.ProvinceID == provinceID {
			amphures = append(amphures, amphure)
		}
	}

	return amphures, nil
}

// TambonsByAmphure returns the subdistricts of one district.
func (d *directory) TambonsByAmphure(ctx context.Context, amphureID int) ([]entity.Tambon, error) {
	data, err := d.ensure(ctx)
	if err != nil {
		return nil, err
	}

	tambons := make([]entity.Tambon, 0)
	for _, tambon := range data.Tambons {
		if tambon.AmphureID == amphureID {
			tambons = append(tambons, tambon)
		}
	}

	return tambons, nil
}

// All returns the full hierarchy in one payload.
func (d *directory) All(ctx context.Context) (*entity.RegionData, error) {
	return d.ensure(ctx)
}

// Centroid reports the approximate center of a province by its Thai name.
func (d *directory) Centroid(provinceTH string) (entity.Coordinate, bool) {
	coord, ok := provinceCentroids[provinceTH]

	return coord, ok
}
