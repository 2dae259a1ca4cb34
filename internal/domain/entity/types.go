package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// WasteType classifies trash items and bins.
// A deposit is correct iff the item type equals the bin type.
type WasteType string

const (
	WasteRecycle WasteType = "recycle"
	WasteCompost WasteType = "compost"
	WasteTrash   WasteType = "trash"
)

// WasteTypes lists every waste type in bin order
var WasteTypes = []WasteType{WasteRecycle, WasteCompost, WasteTrash}

// Valid returns true if t is one of the known waste types
func (t WasteType) Valid() bool {
	switch t {
	case WasteRecycle, WasteCompost, WasteTrash:
		return true
	default:
		return false
	}
}

// String returns the string representation of the waste type
func (t WasteType) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return string(t)
}

// Direction is the facing direction used for animation
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cue is a gameplay event that has an audible or visible reaction
type Cue int

const (
	CuePickup Cue = iota
	CueCorrect
	CueWrong
	CueGobble
	CueVocalize
)

// String returns the string representation of the cue
func (c Cue) String() string {
	switch c {
	case CuePickup:
		return "pickup"
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	case CueGobble:
		return "gobble"
	case CueVocalize:
		return "vocalize"
	default:
		return "unknown"
	}
}
