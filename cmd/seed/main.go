// Command seed dumps the in-memory seed dataset (static catalog, demo users,
// reviews) as JSON fixtures for the frontend demo environment.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"

	"github.com/elinacho/lumiskin-backend/internal/app/repository"
	"github.com/elinacho/lumiskin-backend/pkg/logger"
	"github.com/elinacho/lumiskin-backend/pkg/util"
)

func main() {
	outDir := flag.String("out", "fixtures", "output directory for JSON fixtures")
	flag.Parse()

	logger.Initialize(logger.Config{
		Level:  "info",
		Format: "console",
	})

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatal("Failed to create output directory", err, map[string]interface{}{
			"dir": *outDir,
		})
	}

	demoHash, err := util.HashPassword("lumiskin-demo")
	if err != nil {
		logger.Fatal("Failed to hash demo password", err)
	}

	fixtures := map[string]interface{}{
		"products.json": repository.SeedCatalog(),
		"reviews.json":  repository.SeedReviews(),
		"users.json":    repository.SeedUsers(demoHash),
	}

	for name, data := range fixtures {
		path := filepath.Join(*outDir, name)
		if err := writeJSON(path, data); err != nil {
			logger.Fatal("Failed to write fixture", err, map[string]interface{}{
				"path": path,
			})
		}
		logger.Info("Fixture written", map[string]interface{}{
			"path": path,
		})
	}
}

func writeJSON(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
