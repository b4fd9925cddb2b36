// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-tank-battle/internal/assets"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configPath  = flag.String("config", "", "path to a JSON settings file")
	startInMenu = flag.Bool("menu", false, "start from the title screen instead of the game")
	pprofAddr   = flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
)

type AppGame struct {
	stateMachine   *state.StateMachine
	settings       config.Settings
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > a.settings.MaxDeltaTime {
		deltaTime = a.settings.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.settings.Width, a.settings.Height
}

func main() {
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Printf("WARNING: %v. Using default settings.", err)
		} else {
			settings = loaded
		}
	}

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	sprites := assets.NewSpriteManager(os.DirFS("."))

	sm := state.NewStateMachine()
	if *startInMenu {
		sm.SetState(state.NewMenuState(sm, settings, sprites))
	} else {
		sm.SetState(state.NewGameState(sm, settings, sprites))
	}

	app := &AppGame{
		stateMachine:   sm,
		settings:       settings,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(settings.Title)

	err := ebiten.RunGame(app)
	sprites.Cleanup()
	if err != nil {
		log.Fatal(err)
	}
}
