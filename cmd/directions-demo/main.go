package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"routefinder/internal/ai"
)

func main() {
	start := flag.String("from", "Delhi", "start location")
	end := flag.String("to", "Agra", "end location")
	flag.Parse()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	fmt.Printf("Directions from %s to %s:\n\n", *start, *end)

	text, err := provider.GenerateDirections(ctx, *start, *end)
	if err != nil {
		log.Fatalf("Error generating directions: %v", err)
	}

	fmt.Println(text)
}
