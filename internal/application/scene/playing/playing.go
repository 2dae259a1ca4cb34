// Package playing provides the main gameplay scene.
package playing

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/recycle/internal/application/replay"
	"github.com/younwookim/recycle/internal/application/scene"
	"github.com/younwookim/recycle/internal/application/scene/results"
	"github.com/younwookim/recycle/internal/application/session"
	"github.com/younwookim/recycle/internal/application/system"
	"github.com/younwookim/recycle/internal/domain/entity"
	"github.com/younwookim/recycle/internal/infrastructure/config"
	"github.com/younwookim/recycle/internal/infrastructure/leaderboard"
)

// CuePlayer reacts to gameplay cues, usually with a sound
type CuePlayer interface {
	Play(cue entity.Cue)
}

// Options configures the playing scene
type Options struct {
	PlayerName string
	Seed       int64

	// Submitter receives the final score of every round
	Submitter session.Submitter

	// Leaderboard is shown on the results screen
	Leaderboard leaderboard.Querier

	Cues CuePlayer

	// RecordPath enables input recording; "auto" picks a timestamped name
	RecordPath string

	// Replay plays back a recording instead of reading input
	Replay *replay.ReplayData

	// Bot drives the player instead of the keyboard and mouse
	Bot session.IntentSource
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	opts    Options
	session *session.Session

	input     *system.InputSystem
	readInput func() system.InputState

	recorder *replay.Recorder
	replayer *replay.Replayer

	// final is the last frame of the finished round
	final *session.Snapshot

	colors   palette
	shakeRNG *rand.Rand
	screenW  int
	screenH  int
}

// New creates a new Playing scene and starts its first round
func New(cfg *config.GameConfig, opts Options) *Playing {
	p := &Playing{
		config:   cfg,
		opts:     opts,
		input:    system.NewInputSystem(),
		colors:   make(palette),
		shakeRNG: rand.New(rand.NewSource(time.Now().UnixNano())),
		screenW:  cfg.Rules.Display.ScreenWidth,
		screenH:  cfg.Rules.Display.ScreenHeight,
	}
	p.readInput = p.input.GetInput

	seed := opts.Seed
	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		seed = opts.Replay.Seed
		log.Printf("Replaying %d frames (seed: %d)", p.replayer.TotalFrames(), seed)
	}

	var submitter session.Submitter
	if p.replayer == nil {
		submitter = opts.Submitter
	}
	p.session = session.New(cfg, session.Options{
		PlayerName: opts.PlayerName,
		Seed:       seed,
		Submitter:  submitter,
		OnCue:      p.playCue,
	})

	p.startRecording()
	return p
}

func (p *Playing) playCue(c entity.Cue) {
	if p.opts.Cues != nil {
		p.opts.Cues.Play(c)
	}
}

func (p *Playing) startRecording() {
	if p.opts.RecordPath == "" || p.replayer != nil {
		return
	}
	p.recorder = replay.NewRecorder(p.session.Seed(), p.config.Stage.ID, p.opts.PlayerName)
	log.Printf("Recording enabled: %s (seed: %d)", p.recordFilename(), p.session.Seed())
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	in := p.readInput()
	if in.Quit {
		return nil, ebiten.Termination
	}
	if in.Restart {
		p.restart()
		return nil, nil
	}

	// F5: Save recording manually
	if p.recorder != nil && inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	if p.replayer != nil {
		if !p.replayer.Step(p.session) {
			p.session.End()
		}
	} else {
		p.step(in, dt)
	}

	if p.session.Ended() {
		return p.finish(), nil
	}
	return nil, nil
}

// step applies one frame of live or bot input and feeds wall-clock time to the countdown
func (p *Playing) step(in system.InputState, dt float64) {
	var intent system.Intent
	if p.opts.Bot != nil {
		intent = p.opts.Bot.Next(p.session.World())
	} else {
		intent = system.IntentFor(in)
	}

	p.session.SetIntent(intent)
	p.session.Step()
	ticks := p.session.Advance(time.Duration(dt * float64(time.Second)))

	if p.recorder != nil {
		p.recorder.RecordFrame(intent, ticks)
	}
}

// finish saves the recording and builds the results scene
func (p *Playing) finish() scene.Scene {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.recorder.Finish(p.session.Score())
		p.saveRecording()
	}
	if p.replayer != nil {
		log.Printf("Replay finished: score %d (recorded %d)", p.session.Score(), p.replayer.Data().Score)
	}

	final := p.session.Snapshot()
	p.final = &final

	r := results.New(
		p.session.PlayerName(),
		p.session.Score(),
		p.session.Stats(),
		p.opts.Leaderboard,
		func() scene.Scene {
			p.restart()
			return p
		},
		p.screenW, p.screenH,
	)
	r.SetBackdrop(func(screen *ebiten.Image) {
		p.drawWorld(screen, &final, 0)
	})
	return r
}

// restart begins a new round. A replay starts over from its first frame.
func (p *Playing) restart() {
	p.final = nil
	if p.replayer != nil {
		p.replayer.Reset()
		p.session = session.New(p.config, session.Options{
			PlayerName: p.opts.PlayerName,
			Seed:       p.replayer.Seed(),
			OnCue:      p.playCue,
		})
		return
	}

	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
	}
	p.session.Restart()
	if p.recorder != nil {
		p.recorder = replay.NewRecorder(p.session.Seed(), p.config.Stage.ID, p.opts.PlayerName)
		log.Printf("Recording restarted (seed: %d)", p.session.Seed())
	}
}

func (p *Playing) recordFilename() string {
	if p.opts.RecordPath == "auto" {
		return replay.GenerateFilename()
	}
	return p.opts.RecordPath
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename()
	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
	}
}

// Session returns the round in progress
func (p *Playing) Session() *session.Session {
	return p.session
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
