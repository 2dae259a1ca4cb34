package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/recycle/internal/domain/entity"
)

// InputSystem reads keyboard, mouse and touch input from ebiten
type InputSystem struct {
	touchIDs []ebiten.TouchID
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	// Pointer is a held mouse button or an active touch
	Pointer  bool
	PointerX int
	PointerY int

	Restart bool
	Quit    bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	in := InputState{
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.Pointer = true
		in.PointerX, in.PointerY = ebiten.CursorPosition()
	}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		in.Pointer = true
		in.PointerX, in.PointerY = ebiten.TouchPosition(s.touchIDs[0])
	}

	return in
}

// IntentFor converts an input state into a player intent.
// Pointer input wins over keys; no input yields nil.
func IntentFor(in InputState) Intent {
	if in.Pointer {
		return MoveTowardIntent{X: float64(in.PointerX), Y: float64(in.PointerY)}
	}

	var dirs []entity.Direction
	if in.Up {
		dirs = append(dirs, entity.DirUp)
	}
	if in.Down {
		dirs = append(dirs, entity.DirDown)
	}
	if in.Left {
		dirs = append(dirs, entity.DirLeft)
	}
	if in.Right {
		dirs = append(dirs, entity.DirRight)
	}

	switch len(dirs) {
	case 0:
		return nil
	case 1:
		return DirectionIntent{Dir: dirs[0]}
	default:
		return DirectionsIntent{Dirs: dirs}
	}
}
