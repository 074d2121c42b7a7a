package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"vibeout/internal/models/response_models"
	"vibeout/pkg/client"
)

func main() {
	_ = godotenv.Load()

	vibe := flag.String("vibe", "", "what kind of outing you're in the mood for")
	location := flag.String("location", "", `where you are, e.g. "New York, NY"`)
	flag.Parse()

	reader := bufio.NewReader(os.Stdin)
	if *vibe == "" {
		*vibe = prompt(reader, "What's the vibe? ")
	}
	if *location == "" {
		*location = prompt(reader, "Where are you? ")
	}

	baseURL := os.Getenv("VIBEOUT_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	sess := client.NewSession(client.New(baseURL))
	sess.OnStep = printStep
	sess.OnVenues = printVenues

	ctx := context.Background()
	if err := sess.SubmitVibe(ctx, *vibe, *location); err != nil {
		if errors.Is(err, client.ErrMissingInput) {
			fmt.Fprintln(os.Stderr, "Both a vibe and a location are required.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Println()
	sess.WaitReveal()

	if sess.State() != client.StatePlanReady {
		return
	}

	answer := prompt(reader, "\nGenerate the full itinerary? [y/N] ")
	if !strings.HasPrefix(strings.ToLower(answer), "y") {
		return
	}

	if err := sess.FetchItinerary(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Couldn't generate the itinerary right now. The plan above still stands.")
		return
	}

	fmt.Println("\nYour itinerary:")
	for _, paragraph := range sess.Itinerary() {
		fmt.Println()
		fmt.Println(paragraph)
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func printStep(step response_models.ThoughtStep) {
	fmt.Printf(" %s %s\n", stepMarker(step.Type), step.Message)
}

func stepMarker(kind string) string {
	switch kind {
	case response_models.StepSuccess:
		return "✓"
	case response_models.StepWarning:
		return "!"
	default:
		return "•"
	}
}

func printVenues(venues []response_models.Venue) {
	fmt.Println("\nYour two stops:")
	for i, v := range venues {
		fmt.Printf("\n%d. %s (%s)\n   %s\n   ★ %s · %s reviews\n",
			i+1, v.Name, v.Category, v.Address,
			client.DisplayRating(v), client.DisplayReviewCount(v))
	}
}
