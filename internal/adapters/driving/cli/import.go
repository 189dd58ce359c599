package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/storage/csvfile"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/services"
)

var importCity string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy city trip files into the trip database",
	Long: `Read the city CSV files from the data directory and store them in the
SQLite trip database (data.database, default <data_dir>/bikeshare.db).

Each import replaces the stored trips of the city. Without --city, cities
whose file is missing are skipped. Set data.backend to
"sqlite" to have the other commands read from the database.`,
	Example: `  bikeshare import
  bikeshare import --city chicago`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importCity, "city", "c", "", "city to import (default all)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	if appSettings == nil {
		return errServicesNotConfigured
	}

	cities := domain.AllCities()
	if importCity != "" {
		city, err := domain.ParseCity(importCity)
		if err != nil {
			return err
		}
		cities = []domain.City{city}
	}

	svc := importService
	if svc == nil {
		store, err := openTripStore(appSettings.Data)
		if err != nil {
			return err
		}
		svc = services.NewImportService(csvfile.NewSource(appSettings.Data), store)
	}

	for _, city := range cities {
		n, err := svc.Import(cmd.Context(), city)
		if err != nil {
			if importCity == "" && errors.Is(err, domain.ErrDatasetUnavailable) {
				cmd.Printf("Skipped %s: %v\n", city, err)
				continue
			}
			return err
		}
		cmd.Printf("Imported %d trips for %s into %s\n", n, city, appSettings.Data.DatabasePath())
	}
	return nil
}
