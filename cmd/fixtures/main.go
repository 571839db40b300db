// Command fixtures generates the synthetic hotel dataset, exports it as CSV
// files, and optionally resets the database and reimports the files. It is
// the offline counterpart of the /api/fixtures endpoints.
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"hotel-assistant/config"
	"hotel-assistant/services"
)

func main() {
	seed := flag.Int64("seed", 1, "seed for the random generator (reproducible runs)")
	dir := flag.String("dir", "./data", "directory for the CSV files")
	doImport := flag.Bool("import", false, "reset the database and import the CSV files after generating")
	importOnly := flag.Bool("import-only", false, "skip generation; import existing CSV files from -dir")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	store := services.NewCSVStore(*dir)

	if !*importOnly {
		ds := services.NewGenerator(*seed).Generate()
		if err := store.ExportDataset(ds); err != nil {
			log.Fatalf("❌ CSV export failed: %v", err)
		}
		log.Printf("✅ CSV files written to %s (%d reservations, %d occupations)",
			*dir, len(ds.Reservations), len(ds.Occupations))
	}

	if !*doImport && !*importOnly {
		return
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}

	ds, err := store.ReadDataset()
	if err != nil {
		log.Fatalf("❌ Could not read CSV files: %v", err)
	}

	importer := services.NewImportService(config.DB)
	if err := importer.Reset(); err != nil {
		log.Fatalf("❌ Table reset failed: %v", err)
	}

	report, err := importer.ImportDataset(ds)
	if err != nil {
		log.Fatalf("❌ Import failed: %v", err)
	}
	log.Printf("✅ Import done: %d hotels, %d room types, %d rooms, %d clients, %d reservations (%d skipped), %d occupations (%d skipped)",
		report.Hotels, report.RoomTypes, report.Rooms, report.Clients,
		report.Reservations, report.SkippedReservations,
		report.Occupations, report.SkippedOccupations)
}
