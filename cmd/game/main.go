package main

import (
	"flag"
	"image/color"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/younwookim/curtain/internal/application/game"
	"github.com/younwookim/curtain/internal/application/scene"
	"github.com/younwookim/curtain/internal/application/scene/gallery"
	"github.com/younwookim/curtain/internal/application/trace"
	"github.com/younwookim/curtain/internal/application/transition"
	"github.com/younwookim/curtain/internal/infrastructure/config"
	"github.com/younwookim/curtain/internal/infrastructure/settings"
	"github.com/younwookim/curtain/internal/infrastructure/watch"
)

// Logical resolutions cycled with the R key to exercise surface
// regeneration.
var resolutions = [][2]int{
	{320, 240},
	{480, 360},
	{640, 480},
}

// App implements ebiten.Game and wires input, config reload and tracing
// around the scene manager.
type App struct {
	manager     *game.SceneManager
	scenes      [2]scene.Scene
	activeIndex int

	screenW int
	screenH int
	dt      float64
	clear   color.RGBA

	transitions *config.TransitionsConfig
	settings    *settings.Manager
	recorder    *trace.Recorder
	watcher     *watch.Watcher
	loader      *config.Loader
	resIndex    int
}

// NewApp creates the demo application.
func NewApp(cfg *config.GameConfig, sm *settings.Manager) *App {
	w, h := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight
	manager := game.NewSceneManager(w, h)

	app := &App{
		manager: manager,
		scenes: [2]scene.Scene{
			gallery.NewOrbit(w, h),
			gallery.NewChecker(w, h),
		},
		screenW:     w,
		screenH:     h,
		dt:          1.0 / float64(cfg.Display.Framerate),
		clear:       cfg.Display.ClearColor.Color(),
		transitions: cfg.Transitions,
		settings:    sm,
	}

	manager.ChangeScene(app.scenes[0])
	return app
}

// Update handles input, config reloads and one manager tick.
// Implements ebiten.Game interface.
func (a *App) Update() error {
	a.pollConfigReload()
	a.handleInput()

	a.manager.Update(a.dt)
	if a.recorder != nil {
		a.recorder.Observe(a.manager.Phase())
	}
	return nil
}

// Draw renders one frame.
// Implements ebiten.Game interface.
func (a *App) Draw(screen *ebiten.Image) {
	a.manager.Draw(screen, a.clear)
}

// Layout returns the logical screen dimensions.
// Implements ebiten.Game interface.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenW, a.screenH
}

func (a *App) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		a.changeWithEffect("fade")
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		a.changeWithEffect("tile")
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		if a.manager.Current() == nil {
			a.manager.ChangeScene(a.nextScene())
			a.activeIndex = 1 - a.activeIndex
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if active := a.manager.Active(); active != nil {
			active.SetPaused(!active.Paused())
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		a.toggleFullscreen()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.cycleResolution()
	}
}

// changeWithEffect requests an animated swap to the other scene.
// Requests during a running pair are skipped.
func (a *App) changeWithEffect(effect string) {
	if a.manager.Current() != nil {
		return
	}

	var out, in transition.Transition
	switch effect {
	case "tile":
		out = transition.NewEvenOddTile(transition.Out, a.transitions.Tile.Duration, a.transitions.Tile.TileSize)
		in = transition.NewEvenOddTile(transition.In, a.transitions.Tile.Duration, a.transitions.Tile.TileSize)
	default:
		out = transition.NewFade(transition.Out, a.transitions.Fade.Duration)
		in = transition.NewFade(transition.In, a.transitions.Fade.Duration)
	}

	a.manager.ChangeSceneWith(a.nextScene(), out, in)
	a.activeIndex = 1 - a.activeIndex

	if a.settings.Settings().Effect != effect {
		a.settings.Settings().Effect = effect
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] failed to save settings: %v", err)
		}
	}
}

func (a *App) nextScene() scene.Scene {
	return a.scenes[1-a.activeIndex]
}

func (a *App) toggleFullscreen() {
	full := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(full)
	a.settings.Settings().Fullscreen = full
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] failed to save settings: %v", err)
	}
}

// cycleResolution changes the logical display size, regenerating every
// live render surface mid-flight included.
func (a *App) cycleResolution() {
	a.resIndex = (a.resIndex + 1) % len(resolutions)
	a.screenW = resolutions[a.resIndex][0]
	a.screenH = resolutions[a.resIndex][1]
	a.manager.NotifyDisplayResized(a.screenW, a.screenH)

	scale := a.settings.Settings().WindowScale
	ebiten.SetWindowSize(a.screenW*scale, a.screenH*scale)
}

// pollConfigReload applies changed transition configs without blocking
// the frame.
func (a *App) pollConfigReload() {
	if a.watcher == nil {
		return
	}
	select {
	case name, ok := <-a.watcher.Events:
		if !ok {
			a.watcher = nil
			return
		}
		cfg, err := a.loader.LoadTransitions()
		if err != nil {
			log.Printf("[App] ignoring config change %s: %v", name, err)
			return
		}
		a.transitions = cfg
		log.Printf("[App] reloaded transition config from %s", name)
	case err, ok := <-a.watcher.Errors:
		if ok {
			log.Printf("[App] config watcher error: %v", err)
		}
	default:
	}
}

func main() {
	// Parse command line flags
	traceFlag := flag.String("trace", "", "Record manager phase trace to file (e.g., -trace trace.yaml)")
	configsFlag := flag.String("configs", "", "Load configs from a directory and live-reload on change")
	flag.Parse()

	// Load configurations, embedded by default
	var loader *config.Loader
	if *configsFlag != "" {
		loader = config.NewLoader(*configsFlag)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			log.Fatalf("Failed to get config subfs: %v", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Open the settings store; run without persistence when unavailable
	store, err := gdata.Open(gdata.Config{AppName: "curtain"})
	if err != nil {
		log.Printf("Warning: settings storage unavailable: %v", err)
		store = nil
	}
	sm := settings.NewManager(store)

	app := NewApp(cfg, sm)
	app.loader = loader

	if *configsFlag != "" {
		watcher, err := watch.New(*configsFlag)
		if err != nil {
			log.Printf("Warning: config watch disabled: %v", err)
		} else {
			app.watcher = watcher
			defer func() { _ = watcher.Close() }()
		}
	}

	if *traceFlag != "" {
		app.recorder = trace.NewRecorder()
	}

	// Set up ebiten
	scale := sm.Settings().WindowScale
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*scale, cfg.Display.ScreenHeight*scale)
	ebiten.SetWindowTitle("Scene Transition Gallery")
	ebiten.SetTPS(cfg.Display.Framerate)
	ebiten.SetFullscreen(sm.Settings().Fullscreen)

	// Run game
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}

	if app.recorder != nil {
		if err := app.recorder.Save(*traceFlag); err != nil {
			log.Printf("Failed to save trace: %v", err)
		} else {
			log.Printf("Trace saved to %s", *traceFlag)
		}
	}
}
