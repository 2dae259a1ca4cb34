package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/recycle/internal/application/session"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (FrameInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return FrameInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi, true
}

// Step feeds the next recorded frame to the session: its intent, one
// simulation step and the countdown ticks that followed.
// Returns false once the recording is exhausted.
func (r *Replayer) Step(s *session.Session) bool {
	fi, ok := r.GetInput()
	if !ok {
		return false
	}

	s.SetIntent(fi.Intent())
	s.Step()
	for i := 0; i < fi.T; i++ {
		s.Tick()
	}
	return true
}

// Play runs the whole recording against s as fast as possible
func (r *Replayer) Play(s *session.Session) {
	for r.Step(s) {
	}
}

// Done returns true when every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Data returns the loaded recording
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: the pointer held
// at (x, y) for every frame and one tick every 60 frames.
func CreateTestReplayData(frames int, x, y float64) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		Stage:     "park",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, P: true, PX: x, PY: y}
		if (i+1)%60 == 0 {
			data.Frames[i].T = 1
		}
	}

	return data
}
