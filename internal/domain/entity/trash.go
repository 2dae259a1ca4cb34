package entity

// TrashItem is a collectable piece of litter
type TrashItem struct {
	ID EntityID
	Rect
	Type WasteType

	// Visual tags
	Kind        string
	Shape       string
	Color       string
	DetailColor string
	Rotation    float64
}

// Bin accepts deposits. One per waste type, fixed for the session.
type Bin struct {
	Rect
	Type  WasteType
	Label string
	Color string
}

// Accepts returns true if the item belongs in this bin
func (b *Bin) Accepts(item *TrashItem) bool {
	return item != nil && item.Type == b.Type
}

// Obstacle is solid playground equipment
type Obstacle struct {
	Rect
	Kind  string
	Color string
}
