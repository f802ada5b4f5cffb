// Command heart draws the parametric heart curve in a window.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/heart"
	"github.com/gogpu/heart/display"
	"github.com/gogpu/heart/figure"
)

func main() {
	heart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := heart.Show(display.NewWindow(figure.New())); err != nil {
		log.Fatalf("heart: %v", err)
	}
}
