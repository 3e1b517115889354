package main

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"asset-tracker/internal/seed"
)

// Writes the built-in sample inventory as plain and gzipped seed files,
// usable with SEED_FILE locally or uploaded under S3_PREFIX.
func main() {
	dataDir := "data/seed"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	for _, filename := range []string{"products.csv", "products.csv.gz"} {
		filePath := filepath.Join(dataDir, filename)

		if err := createSeedFile(filePath); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d products\n", filePath, len(seed.DefaultProducts()))
	}

	fmt.Println("\nSample seed files created successfully!")
	fmt.Println("\nUse one with:")
	fmt.Println("  SEED_FILE=data/seed/products.csv.gz")
}

func createSeedFile(filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	var w io.Writer = file
	if strings.HasSuffix(filePath, ".gz") {
		gzipWriter := gzip.NewWriter(file)
		defer gzipWriter.Close()
		w = gzipWriter
	}

	if err := seed.Write(w, seed.DefaultProducts()); err != nil {
		return fmt.Errorf("failed to write products: %w", err)
	}

	return nil
}
