package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player  PlayerConfig           `json:"player"`
	Enemies map[string]EnemyConfig `json:"enemies"`
	Trash   map[string][]TrashKind `json:"trash"` // keyed by waste type
}

type PlayerConfig struct {
	ID     string  `json:"id"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"`
	Color  string  `json:"color"`
}

type EnemyConfig struct {
	ID    string     `json:"id"`
	Color string     `json:"color"`
	Stats EnemyStats `json:"stats"`
}

type EnemyStats struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Speed         float64 `json:"speed"`
	ChaseSpeed    float64 `json:"chaseSpeed"`
	AlertDistance float64 `json:"alertDistance"`
}

// TrashKind is one catalogue entry of a waste type
type TrashKind struct {
	Kind        string `json:"kind"`
	Shape       string `json:"shape"`
	Color       string `json:"color"`
	DetailColor string `json:"detailColor"`
}
