package sound

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/recycle/internal/domain/entity"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

var gobble = []Note{
	{Freq: 200, Start: 0, Duration: ms(50), Wave: Sawtooth, Volume: 0.2},
	{Freq: 180, Start: ms(60), Duration: ms(50), Wave: Sawtooth, Volume: 0.15},
	{Freq: 220, Start: ms(120), Duration: ms(50), Wave: Sawtooth, Volume: 0.15},
	{Freq: 160, Start: ms(180), Duration: ms(100), Wave: Sawtooth, Volume: 0.1},
}

// patterns lists the notes of every cue
var patterns = map[entity.Cue][]Note{
	entity.CuePickup: {
		{Freq: 440, Duration: ms(100), Wave: Sine, Volume: 0.1},
	},
	entity.CueCorrect: {
		{Freq: 523, Start: 0, Duration: ms(100), Wave: Sine, Volume: 0.15},
		{Freq: 659, Start: ms(50), Duration: ms(100), Wave: Sine, Volume: 0.15},
		{Freq: 784, Start: ms(100), Duration: ms(150), Wave: Sine, Volume: 0.15},
	},
	entity.CueWrong: {
		{Freq: 392, Duration: ms(200), Wave: Square, Volume: 0.1},
	},
	entity.CueGobble:   gobble,
	entity.CueVocalize: gobble,
}

// Pattern returns the notes played for a cue, or nil for an unknown cue
func Pattern(c entity.Cue) []Note {
	return patterns[c]
}

// Cues plays pre-rendered sound cues
type Cues struct {
	players map[entity.Cue]*audio.Player

	// Muted silences Play without releasing the players
	Muted bool
}

// NewCues renders every cue and prepares a player for it.
// ebiten allows a single audio context per process, so an existing one is reused.
func NewCues() *Cues {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}

	c := &Cues{players: make(map[entity.Cue]*audio.Player, len(patterns))}
	for cue, notes := range patterns {
		c.players[cue] = ctx.NewPlayerFromBytes(Render(ctx.SampleRate(), notes))
	}
	return c
}

// Play restarts the cue from the beginning
func (c *Cues) Play(cue entity.Cue) {
	if c == nil || c.Muted {
		return
	}
	p, ok := c.players[cue]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("Failed to rewind %s cue: %v", cue, err)
		return
	}
	p.Play()
}
