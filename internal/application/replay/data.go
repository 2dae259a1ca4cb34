package replay

import (
	"github.com/younwookim/recycle/internal/application/system"
	"github.com/younwookim/recycle/internal/domain/entity"
)

// Version of the replay file format
const Version = "2.0"

// FrameInput records the intent applied on a single frame and the
// countdown ticks that fired right after it
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	L  bool    `json:"l,omitempty"`  // Left
	R  bool    `json:"r,omitempty"`  // Right
	U  bool    `json:"u,omitempty"`  // Up
	D  bool    `json:"d,omitempty"`  // Down
	P  bool    `json:"p,omitempty"`  // Pointer held
	PX float64 `json:"px,omitempty"` // Pointer X
	PY float64 `json:"py,omitempty"` // Pointer Y
	T  int     `json:"t,omitempty"`  // Countdown ticks
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	Player    string       `json:"player,omitempty"`
	StartTime string       `json:"startTime"`
	Score     int          `json:"score"`
	Frames    []FrameInput `json:"frames"`
}

// EncodeIntent stores an intent in frame form
func EncodeIntent(frame int, intent system.Intent) FrameInput {
	fi := FrameInput{F: frame}

	setDir := func(d entity.Direction) {
		switch d {
		case entity.DirLeft:
			fi.L = true
		case entity.DirRight:
			fi.R = true
		case entity.DirUp:
			fi.U = true
		case entity.DirDown:
			fi.D = true
		}
	}

	switch in := intent.(type) {
	case system.MoveTowardIntent:
		fi.P, fi.PX, fi.PY = true, in.X, in.Y
	case *system.MoveTowardIntent:
		if in != nil {
			fi.P, fi.PX, fi.PY = true, in.X, in.Y
		}
	case system.DirectionIntent:
		setDir(in.Dir)
	case system.DirectionsIntent:
		for _, d := range in.Dirs {
			setDir(d)
		}
	}
	return fi
}

// Intent rebuilds the intent recorded for this frame.
// Pointer input wins over keys, as it does live.
func (fi FrameInput) Intent() system.Intent {
	if fi.P {
		return system.MoveTowardIntent{X: fi.PX, Y: fi.PY}
	}
	return system.IntentFor(system.InputState{
		Left:  fi.L,
		Right: fi.R,
		Up:    fi.U,
		Down:  fi.D,
	})
}
