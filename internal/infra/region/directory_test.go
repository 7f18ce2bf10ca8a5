package region

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDatasetServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(provincesPath, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"name_th":"กรุงเทพมหานคร","name_en":"Bangkok"},
			{"id":2,"name_th":"สมุทรปราการ","name_en":"Samut Prakan"}
		]`))
	})
	mux.HandleFunc(amphuresPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1001,"name_th":"เขตพระนคร","name_en":"Khet Phra Nakhon","province_id":1},
			{"id":1002,"name_th":"เขตดุสิต","name_en":"Khet Dusit","province_id":1},
			{"id":1101,"name_th":"เมืองสมุทรปราการ","name_en":"Mueang Samut Prakan","province_id":2}
		]`))
	})
	mux.HandleFunc(tambonsPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":100101,"name_th":"พระบรมมหาราชวัง","name_en":"Phra Borom Maha Ratchawang","amphure_id":1001,"zip_code":10200}
		]`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func newTestDirectory(t *testing.T, hits *atomic.Int64) *directory {
	t.Helper()

	server := newDatasetServer(t, hits)
	client := resty.New().SetBaseURL(server.URL).SetTimeout(5 * time.Second)

	return newDirectory(client, slog.Default())
}

func TestDirectory_ProvincesLazyLoad(t *testing.T) {
	var hits atomic.Int64
	dir := newTestDirectory(t, &hits)

	provinces, err := dir.Provinces(context.Background())
	require.NoError(t, err)
	require.Len(t, provinces, 2)
	assert.Equal(t, "กรุงเทพมหานคร", provinces[0].NameTH)
}

func TestDirectory_FetchesOnce(t *testing.T) {
	var hits atomic.Int64
	dir := newTestDirectory(t, &hits)
	ctx := context.Background()

	_, err := dir.Provinces(ctx)
	require.NoError(t, err)
	_, err = dir.All(ctx)
	require.NoError(t, err)
	_, err = dir.AmphuresByProvince(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), hits.Load())
}

func TestDirectory_AmphuresByProvince(t *testing.T) {
	var hits atomic.Int64
	dir := newTestDirectory(t, &hits)

	amphures, err := dir.AmphuresByProvince(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, amphures, 2)

	amphures, err = dir.AmphuresByProvince(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, amphures)
}

func TestDirectory_TambonsByAmphure(t *testing.T) {
	var hits atomic.Int64
	dir := newTestDirectory(t, &hits)

	tambons, err := dir.TambonsByAmphure(context.Background(), 1001)
	require.NoError(t, err)
	require.Len(t, tambons, 1)
	assert.Equal(t, 10200, tambons[0].ZipCode)
}

func TestDirectory_Centroid(t *testing.T) {
	dir := newDirectory(resty.New(), slog.Default())

	coord, ok := dir.Centroid("กรุงเทพมหานคร")
	require.True(t, ok)
	assert.InDelta(t, 13.7563, coord.Lat, 0.0001)
	assert.InDelta(t, 100.5018, coord.Lng, 0.0001)

	_, ok = dir.Centroid("ไม่มีจังหวัดนี้")
	assert.False(t, ok)
}

func TestProvinceCentroids_CoverAllProvinces(t *testing.T) {
	assert.Len(t, provinceCentroids, 77)

	for name, coord := range provinceCentroids {
		assert.NotEmpty(t, name)
		assert.InDelta(t, 13, coord.Lat, 8, "lat out of Thailand for %s", name)
		assert.InDelta(t, 100, coord.Lng, 5, "lng out of Thailand for %s", name)
	}
}
