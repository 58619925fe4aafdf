package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"wayfarer/internal/ai"
	"wayfarer/internal/maps"
	"wayfarer/internal/service"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}
	mapsKey := os.Getenv("GOOGLE_API_KEY")

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	geoSvc, err := maps.NewGeoService(mapsKey)
	if err != nil {
		log.Fatalf("Failed to initialize maps: %v", err)
	}
	placesSvc, err := maps.NewPlacesService(mapsKey)
	if err != nil {
		log.Fatalf("Failed to initialize maps: %v", err)
	}
	distanceSvc, err := maps.NewDistanceService(mapsKey)
	if err != nil {
		log.Fatalf("Failed to initialize maps: %v", err)
	}

	planner := service.NewTripPlanner(provider, geoSvc, placesSvc, distanceSvc)

	userMessage := "I want to travel from Paris to Rome next weekend"
	if len(os.Args) > 1 {
		userMessage = strings.Join(os.Args[1:], " ")
	}
	fmt.Printf("User: %s\n", userMessage)

	result := planner.Plan(ctx, userMessage)

	fmt.Printf("Source: %s\n", result.Source)
	fmt.Printf("Destination: %s\n", result.Destination)
	for _, d := range result.Degraded {
		fmt.Printf("Degraded: %s\n", d)
	}
	fmt.Printf("\n%s\n", result.Response)
}
