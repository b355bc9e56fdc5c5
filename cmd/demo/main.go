// Demo runs a handful of sample posts through the engine and renders
// the results as a terminal table. Useful for eyeballing lexicon and
// threshold changes without booting the HTTP server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"social-intel/domain"
	"social-intel/engine"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

var samples = []domain.Post{
	{ID: "demo-1", Content: "Police response was very quick in T.Nagar today. Impressed with Chennai Police!"},
	{ID: "demo-2", Content: "I hate this place. Very dangerous area. Kill you if you come here"},
	{ID: "demo-3", Content: "போலீஸ் நல்லா வேலை செய்யுறாங்க நன்றி"},
	{ID: "demo-4", Content: "चोरी हो गई बहुत डर लग रहा खतरा है"},
	{ID: "demo-5", Content: "పోలీసులు చాలా బాగా పని చేస్తున్నారు ధన్యవాదాలు"},
	{ID: "demo-6", Content: "Weather is pleasant this evening near the beach"},
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	eng := engine.New(log, engine.DefaultBatchWorkers)
	if err := eng.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}

	color.Bold.Println("Text Intelligence Engine: sample analysis")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Post", "Lang", "Sentiment", "Conf", "Hate", "Crime", "Threat"})
	table.SetColWidth(48)

	for _, post := range samples {
		analysis, err := eng.Analyze(post)
		if err != nil {
			fmt.Fprintf(os.Stderr, "analyze %s: %v\n", post.ID, err)
			continue
		}
		table.Append([]string{
			truncate(analysis.Text, 45),
			string(analysis.Language),
			string(analysis.Sentiment.Label),
			fmt.Sprintf("%.2f", analysis.Sentiment.Confidence),
			fmt.Sprintf("%v", analysis.HateSpeech.Detected),
			fmt.Sprintf("%v", analysis.CrimeRelated),
			threatCell(analysis.ThreatLevel),
		})
	}

	table.Render()
}

func threatCell(level domain.ThreatLevel) string {
	switch level {
	case domain.Critical:
		return color.Magenta.Render(string(level))
	case domain.High:
		return color.Red.Render(string(level))
	case domain.Medium:
		return color.Yellow.Render(string(level))
	default:
		return color.Green.Render(string(level))
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
