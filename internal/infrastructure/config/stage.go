package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Background  string             `json:"background"`
	PlayerSpawn PositionConfig     `json:"playerSpawn"`
	Bins        []BinConfig        `json:"bins"`
	Obstacles   []ObstacleConfig   `json:"obstacles"`
	Enemies     []EnemySpawnConfig `json:"enemies"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type RectConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type BinConfig struct {
	Type  string     `json:"type"`
	Label string     `json:"label"`
	Color string     `json:"color"`
	Rect  RectConfig `json:"rect"`
}

type ObstacleConfig struct {
	Kind  string     `json:"kind"`
	Color string     `json:"color"`
	Rect  RectConfig `json:"rect"`
}

// EnemySpawnConfig places Count enemies of Type at random positions
type EnemySpawnConfig struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}
