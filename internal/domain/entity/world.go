package entity

// World holds every entity of one session and the next entity ID
type World struct {
	nextID EntityID

	Width, Height float64

	Player    *Player
	Trash     []*TrashItem
	Bins      []*Bin
	Obstacles []*Obstacle
	Enemies   []*Enemy
}

// NewWorld creates an empty world of the given canvas size
func NewWorld(width, height float64) *World {
	return &World{
		nextID:    1, // 0 is "nil"
		Width:     width,
		Height:    height,
		Trash:     make([]*TrashItem, 0, 32),
		Bins:      make([]*Bin, 0, 3),
		Obstacles: make([]*Obstacle, 0, 8),
		Enemies:   make([]*Enemy, 0, 4),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// AddTrash places an item in the world
func (w *World) AddTrash(item *TrashItem) {
	w.Trash = append(w.Trash, item)
}

// RemoveTrash removes the item with the given ID, preserving order.
// Returns false if the item is not in the world.
func (w *World) RemoveTrash(id EntityID) bool {
	for i, item := range w.Trash {
		if item.ID == id {
			w.Trash = append(w.Trash[:i], w.Trash[i+1:]...)
			return true
		}
	}
	return false
}

// Solids returns the collision boxes enemies steer around: obstacles first, then bins
func (w *World) Solids() []Rect {
	solids := make([]Rect, 0, len(w.Obstacles)+len(w.Bins))
	for _, o := range w.Obstacles {
		solids = append(solids, o.Rect)
	}
	for _, b := range w.Bins {
		solids = append(solids, b.Rect)
	}
	return solids
}

// Blocked returns true if r overlaps any obstacle or bin
func (w *World) Blocked(r Rect) bool {
	for _, o := range w.Obstacles {
		if Overlaps(r, o.Rect) {
			return true
		}
	}
	for _, b := range w.Bins {
		if Overlaps(r, b.Rect) {
			return true
		}
	}
	return false
}

// BinFor returns the bin accepting the given type, or nil
func (w *World) BinFor(t WasteType) *Bin {
	for _, b := range w.Bins {
		if b.Type == t {
			return b
		}
	}
	return nil
}

// Contains returns true if r lies fully within the canvas
func (w *World) Contains(r Rect) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= w.Width && r.Y+r.H <= w.Height
}
