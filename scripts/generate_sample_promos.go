package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// generateSamplePromos creates sample promo code files for local runs.
// The plain CSV is the default the demo looks for; the gzipped file
// exercises the loader's transparent decompression.
func main() {
	dataDir := "data/promos"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	promos := map[string]map[string]string{
		"promocodes.csv": {
			"SAVE10":   "10",
			"SAVE25":   "25",
			"HALFOFF":  "50",
			"MEMBER5":  "5",
			"CLEAROUT": "75",
		},
		"seasonal.csv.gz": {
			"SUMMER2026": "15",
			"WINTER2026": "20",
		},
	}

	for filename, codes := range promos {
		filePath := filepath.Join(dataDir, filename)

		if err := createPromoFile(filePath, codes); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d codes\n", filePath, len(codes))
	}

	fmt.Println("\nSample promo files created successfully!")
	fmt.Println("Run the demo with PROMO_ENABLED=true PROMO_CODE=SAVE10")
}

func createPromoFile(filePath string, codes map[string]string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	var lines []string
	for code, percent := range codes {
		lines = append(lines, code+","+percent)
	}
	content := strings.Join(lines, "\n") + "\n"

	if strings.HasSuffix(filePath, ".gz") {
		gw := gzip.NewWriter(file)
		defer gw.Close()
		if _, err := gw.Write([]byte(content)); err != nil {
			return fmt.Errorf("failed to write gzip content: %w", err)
		}
		return nil
	}

	if _, err := file.WriteString(content); err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}
	return nil
}
