// Command tessera renders an interface to a PNG. With a YAML style sheet it
// styles a built-in demo tree; without one it falls back to inline styles.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"tessera/pkg/component"
	"tessera/pkg/render"
	"tessera/pkg/script"
	"tessera/pkg/style"
)

func main() {
	width := flag.Int("w", 800, "viewport width in pixels")
	height := flag.Int("h", 600, "viewport height in pixels")
	out := flag.String("o", "out.png", "output PNG path")
	sheetPath := flag.String("styles", "", "YAML style sheet")
	fontPath := flag.String("font", "", "TTF font file for text")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*debug {
		log = log.Level(zerolog.InfoLevel)
	}

	if err := run(*width, *height, *out, *sheetPath, *fontPath, log); err != nil {
		log.Error().Err(err).Msg("render failed")
		os.Exit(1)
	}
	fmt.Printf("Rendered %dx%d interface to %s\n", *width, *height, *out)
}

func run(width, height int, out, sheetPath, fontPath string, log zerolog.Logger) error {
	styles, err := loadStyles(sheetPath)
	if err != nil {
		return err
	}

	metrics, err := render.NewTextMetrics(fontPath)
	if err != nil {
		return err
	}

	ui := component.NewInterface(demoTree(log), styles, metrics, log)

	eng := script.New(log)
	eng.Bind(ui)
	counter, err := eng.Value("counter", `"Clicks: " + (globalThis.clicks || 0)`)
	if err != nil {
		return err
	}
	if n := findNode(ui.Root(), "count"); n != nil {
		n.SetValue(counter)
	}

	ui.Layout(float64(width), float64(height))

	r := render.NewRenderer(width, height)
	if fontPath != "" {
		r.SetFont(fontPath)
	}
	r.Render(ui)
	return r.SavePNG(out)
}

func loadStyles(path string) (*style.Set, error) {
	if path == "" {
		return defaultStyles()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return style.LoadSheet(f)
}

func defaultStyles() (*style.Set, error) {
	rules := []struct {
		key   string
		props map[string]any
	}{
		{"panel", map[string]any{
			"background": "#f2f2f2",
			"padding":    "16px",
		}},
		{"panel > list", map[string]any{
			"width": "60%",
			"gap":   "8px",
		}},
		{"button", map[string]any{
			"width":        "fitContent",
			"height":       "fitContent",
			"padding":      "8px",
			"background":   "#4477cc",
			"color":        "#ffffff",
			"borderRadius": 6,
		}},
		{"button:hover", map[string]any{
			"background": "#5588dd",
		}},
		{"button:active", map[string]any{
			"background": "#335599",
		}},
		{"label.title", map[string]any{
			"font": map[string]any{"size": "24px", "weight": "bold"},
		}},
	}

	sources := make([]style.RuleSource, 0, len(rules))
	for _, r := range rules {
		decl, err := style.ParseDeclaration(r.props)
		if err != nil {
			return nil, err
		}
		sources = append(sources, style.RuleSource{Key: r.key, Decl: decl})
	}
	return style.Compile(sources)
}

func demoTree(log zerolog.Logger) *component.Node {
	title := component.New(component.KindLabel, "title").
		AddClass("title").
		SetText("tessera demo")

	count := component.New(component.KindLabel, "count").
		SetText("Clicks: 0")

	button := component.New(component.KindButton, "more").
		SetText("Click me").
		OnTrigger(func(n *component.Node) {
			log.Info().Str("id", n.ID()).Msg("button triggered")
		})

	list := component.New(component.KindList, "menu").
		Append(title, count, button)

	return component.New(component.KindPanel, "rootPanel").Append(list)
}

func findNode(n *component.Node, id string) *component.Node {
	if n.ID() == id {
		return n
	}
	for _, c := range n.Children() {
		if hit := findNode(c, id); hit != nil {
			return hit
		}
	}
	return nil
}
