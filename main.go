package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"discurso-archive/pkg/archiver"
	"discurso-archive/pkg/listing"
)

func main() {
	var (
		baseURL = flag.String("base-url", "https://www.casarosada.gob.ar/informacion/discursos/", "Listing page URL to scrape")
		feedURL = flag.String("feed-url", "", "RSS/Atom feed URL to use for listing instead of the HTML page")
		keyword = flag.String("keyword", "milei", "Keyword to filter speeches by")
		csvPath = flag.String("csv", "", "Archive CSV path (default: data/discursos_<keyword>.csv)")
		pages   = flag.Int("pages", 1, "Number of paginated listing pages to walk")
	)
	flag.Parse()

	// .env is optional; flags and real environment variables still apply
	if err := godotenv.Load(); err != nil {
		log.Printf(".env file not loaded: %v (using environment variables only)", err)
	}

	path := *csvPath
	if path == "" {
		path = filepath.Join("data", fmt.Sprintf("discursos_%s.csv", *keyword))
	}

	var lister listing.Lister
	if *feedURL != "" {
		lister = listing.NewFeedListing(*feedURL)
	} else {
		lister = listing.NewHTMLListing(*baseURL, *pages)
	}

	arch, err := archiver.New(archiver.Config{
		Lister:    lister,
		Processor: archiver.NewHTTPSpeechProcessor(),
		Keyword:   *keyword,
		CSVPath:   path,
	})
	if err != nil {
		log.Fatalf("Failed to configure archiver: %v", err)
	}

	start := time.Now()
	log.Printf("Updating archive %s (keyword=%q)", path, *keyword)
	if err := arch.Run(context.Background()); err != nil {
		log.Fatalf("Archive update failed: %v", err)
	}
	log.Printf("Done. Duration: %s", time.Since(start))
}
