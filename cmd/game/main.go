package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/recycle/internal/application/game"
	"github.com/younwookim/recycle/internal/application/replay"
	"github.com/younwookim/recycle/internal/application/scene/playing"
	"github.com/younwookim/recycle/internal/application/session"
	"github.com/younwookim/recycle/internal/application/system"
	"github.com/younwookim/recycle/internal/infrastructure/config"
	"github.com/younwookim/recycle/internal/infrastructure/leaderboard"
	"github.com/younwookim/recycle/internal/infrastructure/sound"
)

//go:embed configs
var configFS embed.FS

// loadConfig reads the embedded rules, entities and the named stage
func loadConfig(stage string) (*config.GameConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadAll(stage)
}

// scoreBackend is where final scores go and where the results screen reads them
type scoreBackend interface {
	session.Submitter
	leaderboard.Querier
}

func main() {
	// Parse command line flags
	nameFlag := flag.String("name", "Player", "Player name shown on the leaderboard")
	apiFlag := flag.String("api", "", "Leaderboard server URL (e.g., -api http://localhost:3001); empty keeps scores in memory")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or -record auto)")
	replayFlag := flag.String("replay", "", "Play back a recorded file")
	headlessFlag := flag.Bool("headless", false, "Run without a window")
	realtimeFlag := flag.Bool("realtime", false, "In headless mode, run at wall-clock speed")
	botFlag := flag.Bool("bot", false, "Let the autopilot play")
	seedFlag := flag.Int64("seed", 0, "World seed (0 picks one from the clock)")
	stageFlag := flag.String("stage", "park", "Stage to load")
	flag.Parse()

	cfg, err := loadConfig(*stageFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var data *replay.ReplayData
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.Stage != "" && data.Stage != cfg.Stage.ID {
			log.Printf("Replay was recorded on stage %q, playing on %q", data.Stage, cfg.Stage.ID)
		}
	}

	var backend scoreBackend
	var client *leaderboard.Client
	if *apiFlag != "" {
		client = leaderboard.NewClient(*apiFlag, 0)
		backend = client
	} else {
		backend = leaderboard.NewMemoryStore()
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var bot session.IntentSource
	if *botFlag {
		bot = system.NewAutopilot(rand.New(rand.NewSource(seed)))
	}

	if *headlessFlag {
		if data != nil {
			s, err := verifyReplay(cfg, data)
			if err != nil {
				log.Fatalf("Replay check failed: %v", err)
			}
			log.Printf("Replay OK: score %d after %d frames", s.Score(), s.Frame())
			return
		}

		s, err := runHeadless(cfg, session.Options{
			PlayerName: *nameFlag,
			Seed:       seed,
			Submitter:  backend,
		}, bot, *realtimeFlag)
		if err != nil {
			log.Printf("Headless run stopped: %v", err)
		}
		stats := s.Stats()
		log.Printf("Final score: %d (picked %d, correct %d, wrong %d, pecked %d)",
			s.Score(), stats.Picked, stats.Correct, stats.Wrong, stats.Pecked)
		if client != nil {
			client.Wait()
		}
		return
	}

	scene := playing.New(cfg, playing.Options{
		PlayerName:  *nameFlag,
		Seed:        seed,
		Submitter:   backend,
		Leaderboard: backend,
		Cues:        sound.NewCues(),
		RecordPath:  *recordFlag,
		Replay:      data,
		Bot:         bot,
	})

	display := cfg.Rules.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)
	if data != nil {
		g.SetDT(1.0 / float64(display.Framerate))
	}

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if client != nil {
		client.Wait()
	}
	if err != nil {
		log.Fatal(err)
	}
}
