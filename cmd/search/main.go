// Command search runs a one-shot directory query: it decodes an
// address-state string, loads the record feed, and prints the derived
// result set.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/medloop/doctor-directory/internal/adapters/navigation"
	"github.com/medloop/doctor-directory/internal/adapters/urlstate"
	"github.com/medloop/doctor-directory/internal/application/services"
	"github.com/medloop/doctor-directory/internal/infrastructure/clients/doctorapi"
	"github.com/medloop/doctor-directory/pkg/config"
)

func main() {
	var (
		sourceURL = flag.String("source", "", "upstream record feed URL (defaults to SOURCE_URL)")
		address   = flag.String("address", "", `address-state query string, e.g. "specialties=Dentist&sortBy=fees"`)
		suggest   = flag.String("suggest", "", "print suggestions for a partial query instead of searching")
		asJSON    = flag.Bool("json", false, "emit JSON instead of a listing")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	url := cfg.Source.URL
	if *sourceURL != "" {
		url = *sourceURL
	}

	client := doctorapi.NewHTTPClient(url, time.Duration(cfg.Source.TimeoutSeconds)*time.Second)
	navigator := navigation.NewHistoryNavigator(*address)
	directory := services.NewDirectoryService(client, navigator)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := directory.Load(ctx); err != nil {
		log.Fatalf("Failed to load directory: %v", err)
	}

	if *suggest != "" {
		suggestions := directory.Suggest(*suggest)
		if *asJSON {
			printJSON(suggestions)
			return
		}
		for _, s := range suggestions {
			fmt.Printf("%-10s %s (%s)\n", s.Type, s.DisplayText, s.Subtitle)
		}
		return
	}

	results := directory.Results()
	if *asJSON {
		printJSON(results)
		return
	}

	fmt.Printf("%d doctors (address: %q)\n", len(results), urlstate.Encode(directory.Filters()))
	for _, d := range results {
		fmt.Printf("- %s  [%s]  fees=%s exp=%s  %s\n",
			d.Name, d.ConsultationMode, intLabel(d.Fees), intLabel(d.ExperienceYears), d.ClinicName)
	}
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
}

func intLabel(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
