package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/leonelquinteros/gotext"

	engineinput "growmaze/pkg/engine/input"
	"growmaze/pkg/game/config"
	"growmaze/pkg/game/gameplay"
	"growmaze/pkg/game/renderer"
	"growmaze/pkg/game/renderer/ebiten"
	"growmaze/pkg/game/renderer/tui"
)

func initGettext(localesDir, lang string) {
	gotext.Configure(localesDir, lang, "default")
}

// initLogging points the standard logger at the configured file. The terminal
// renderer owns the screen, so without a file its diagnostics are discarded.
func initLogging(cfg config.Config) (closeLog func()) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("[APP] [FATAL] cannot open log file %s: %v", cfg.LogFile, err)
		}
		log.SetOutput(f)
		return func() { f.Close() }
	}

	if cfg.Renderer == config.RendererTUI {
		log.SetOutput(io.Discard)
	}
	return func() {}
}

func newRenderer(name string) renderer.Renderer {
	if name == config.RendererEbiten {
		return ebiten.New()
	}
	return tui.New(os.Stdin, os.Stdout)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	flag.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "rendering backend: tui or ebiten")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "maze seed, 0 picks one from the clock")
	flag.StringVar(&cfg.Lang, "lang", cfg.Lang, "language of the game messages, e.g. pt_BR")
	flag.StringVar(&cfg.LocalesDir, "locales", cfg.LocalesDir, "directory holding the message catalogues")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "write diagnostics to this file")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	closeLog := initLogging(cfg)
	defer closeLog()

	initGettext(cfg.LocalesDir, cfg.Lang)

	r := newRenderer(cfg.Renderer)
	if err := r.Init(); err != nil {
		log.Fatalf("[APP] [FATAL] cannot initialize %s renderer: %v", r.Name(), err)
	}
	renderer.SetRenderer(r)

	g := gameplay.BuildSeededGame(cfg.Seed)
	log.Printf("[APP] [INFO] starting with the %s renderer, seed %d", r.Name(), cfg.Seed)

	err = renderer.Current.Run(g, func(intent engineinput.Intent) bool {
		return gameplay.ProcessIntent(g, intent)
	})
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	log.Printf("[APP] [INFO] finished at level %d after %d moves", g.Level(), g.Moves())
}
