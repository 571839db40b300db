package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"hotel-assistant/services"
	"hotel-assistant/utils"

	"github.com/gin-gonic/gin"
)

// FixtureController exposes the offline dataset tooling over HTTP: generate
// a synthetic dataset, export it to CSV, and import CSVs into the store.
type FixtureController struct {
	store   services.DatasetStore
	dataDir string
}

func NewFixtureController(store services.DatasetStore, dataDir string) *FixtureController {
	return &FixtureController{store: store, dataDir: dataDir}
}

type generateRequest struct {
	Seed int64 `json:"seed"`
}

// Generate builds a dataset from the given seed and writes the CSV files.
func (ctrl *FixtureController) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	ds := services.NewGenerator(req.Seed).Generate()
	store := services.NewCSVStore(ctrl.dataDir)
	if err := store.ExportDataset(ds); err != nil {
		log.Printf("fixtures: export failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "export failed")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"reservations": len(ds.Reservations),
		"occupations":  len(ds.Occupations),
		"dir":          ctrl.dataDir,
	})
}

// Import resets all entity tables and loads the CSV files from the data
// directory. Duplicate reservation/occupation rows are skipped and counted;
// a malformed file aborts the pass.
func (ctrl *FixtureController) Import(c *gin.Context) {
	store := services.NewCSVStore(ctrl.dataDir)
	ds, err := store.ReadDataset()
	if err != nil {
		log.Printf("fixtures: read failed: %v", err)
		utils.JSONError(c, http.StatusBadRequest, "could not read CSV files: "+err.Error())
		return
	}

	if err := ctrl.store.Reset(); err != nil {
		log.Printf("fixtures: reset failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "reset failed")
		return
	}

	report, err := ctrl.store.ImportDataset(ds)
	if err != nil {
		log.Printf("fixtures: import failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "import failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}

// Export dumps the current store contents to CSV files in the data
// directory, so a seeded database can be carried over as fixtures.
func (ctrl *FixtureController) Export(c *gin.Context) {
	ds, err := ctrl.store.LoadDataset()
	if err != nil {
		log.Printf("fixtures: load failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "load failed")
		return
	}

	if err := services.NewCSVStore(ctrl.dataDir).ExportDataset(ds); err != nil {
		log.Printf("fixtures: export failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "export failed")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"reservations": len(ds.Reservations),
		"occupations":  len(ds.Occupations),
		"dir":          ctrl.dataDir,
	})
}
