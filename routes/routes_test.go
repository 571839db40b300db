package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"hotel-assistant/controllers"
	"hotel-assistant/services"
)

type fakeDatasetStore struct {
	dataset *services.Dataset
}

func (f *fakeDatasetStore) Reset() error { return nil }

func (f *fakeDatasetStore) ImportDataset(ds *services.Dataset) (services.ImportReport, error) {
	return services.ImportReport{}, nil
}

func (f *fakeDatasetStore) LoadDataset() (*services.Dataset, error) {
	return f.dataset, nil
}

func testRouter(t *testing.T, dataDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resolver := services.NewResolver(nil, services.NewMemorySlotStore())
	cc := controllers.NewChatController(resolver, services.NewKeywordExtractor())
	hc := controllers.NewHotelController(nil)
	fc := controllers.NewFixtureController(&fakeDatasetStore{
		dataset: services.NewGenerator(1).Generate(),
	}, dataDir)
	return SetupRouter(cc, hc, fc)
}

func TestExportEndpointWritesCSVFiles(t *testing.T) {
	dir := t.TempDir()
	r := testRouter(t, dir)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/fixtures/export", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	files := []string{
		"Hotel.csv", "TypeChambre.csv", "Chambre.csv",
		"Client.csv", "Reservation.csv", "Occupation.csv",
	}
	for _, name := range files {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s after export: %v", name, err)
		}
	}
}

func TestRouterRegistersEndpoints(t *testing.T) {
	r := testRouter(t, t.TempDir())

	want := map[string]string{
		"/api/chat":              http.MethodPost,
		"/api/hotels":            http.MethodGet,
		"/api/hotels/all":        http.MethodGet,
		"/api/hotels/:id":        http.MethodGet,
		"/api/fixtures/generate": http.MethodPost,
		"/api/fixtures/import":   http.MethodPost,
		"/api/fixtures/export":   http.MethodGet,
		"/health":                http.MethodGet,
	}
	got := make(map[string]string)
	for _, route := range r.Routes() {
		got[route.Path] = route.Method
	}
	for path, method := range want {
		if got[path] != method {
			t.Errorf("route %s %s not registered (got %q)", method, path, got[path])
		}
	}
}
