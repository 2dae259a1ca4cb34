package config

// Default returns the built-in park configuration.
// It matches the JSON shipped in cmd/game/configs and lets tests and the
// headless runner start a session without touching the filesystem.
func Default() *GameConfig {
	return &GameConfig{
		Rules:    DefaultRules(),
		Entities: DefaultEntities(),
		Stage:    DefaultStage(),
	}
}

// DefaultRules returns the built-in rules
func DefaultRules() *RulesConfig {
	return &RulesConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Framerate:    60,
			Title:        "Super Recycle Game",
		},
		Session: SessionConfig{
			DurationSeconds: 60,
			StartImmunity:   180,
		},
		Movement: MovementConfig{
			ArriveThreshold:     5,
			Friction:            0.9,
			StopThreshold:       0.1,
			BinOverlapTolerance: 10,
			AnimStep:            0.2,
			AnimFrames:          8,
		},
		EnemyAI: EnemyAIConfig{
			MaxAggression:        0.6,
			AggressionGain:       0.01,
			AggressionDecay:      0.02,
			SatisfiedDecay:       0.05,
			ChaseThreshold:       0.3,
			ChaseBase:            0.7,
			ChaseAggressionScale: 0.3,
			LeadFrames:           10,
			Jitter:               0.5,
			VocalizeChance:       0.005,
			FleeDistance:         80,
			FleeFrames:           90,
			FleeBurst:            2.5,
			FleeSpeed:            1.5,
			PatrolSpeed:          0.8,
			WanderMin:            40,
			WanderMax:            120,
			EdgeMargin:           50,
			AvoidStep:            15,
			AvoidSpreadDeg:       60,
			AnimStep:             0.2,
			AnimFrames:           8,
		},
		Interaction: InteractionConfig{
			CorrectPoints:   10,
			WrongPoints:     1,
			RestockChance:   0.4,
			StrikeImmunity:  90,
			Knockback:       40,
			SatisfiedFrames: 180,
			ScreenShake:     5,
		},
		Spawn: SpawnConfig{
			InitialCount:    18,
			InitialAttempts: 30,
			InitialSize:     24,
			RestockAttempts: 20,
			RestockSize:     20,
			MinX:            150,
			MinY:            50,
			MarginRight:     50,
			MarginBottom:    50,
			MaxRotation:     0.2,
		},
		Effects: EffectsConfig{
			Gravity: 0.2,
			Success: BurstConfig{
				Count: 15, Spread: 8, Lift: -2, Life: 30, MinSize: 2, SizeRange: 4,
				Colors: []string{"#00FF00"},
				Text:   TextPopupConfig{Label: "+10", OffsetY: -20, VY: -2, Life: 60, Size: 16, Color: "#00FF00"},
			},
			Fail: BurstConfig{
				Count: 8, Spread: 6, Life: 20, MinSize: 1, SizeRange: 3,
				Colors: []string{"#FF6600"},
				Text:   TextPopupConfig{Label: "+1", OffsetY: -20, VY: -1, Life: 40, Size: 14, Color: "#FF6600"},
			},
			Peck: BurstConfig{
				Count: 15, Spread: 8, Life: 30, MinSize: 2, SizeRange: 4,
				Colors: []string{"#D2691E", "#8B4513"},
				Text:   TextPopupConfig{Label: "PECKED!", OffsetY: -15, VY: -2, Life: 60, Size: 16, Color: "#F5A623"},
			},
		},
	}
}

// DefaultEntities returns the built-in entity catalogue
func DefaultEntities() *EntitiesConfig {
	return &EntitiesConfig{
		Player: PlayerConfig{ID: "player", Width: 40, Height: 40, Speed: 4, Color: "#4A90E2"},
		Enemies: map[string]EnemyConfig{
			"bushTurkey": {
				ID:    "bushTurkey",
				Color: "#8B4513",
				Stats: EnemyStats{Width: 40, Height: 40, Speed: 2, ChaseSpeed: 3.5, AlertDistance: 150},
			},
		},
		Trash: map[string][]TrashKind{
			"recycle": {
				{Kind: "bottle", Shape: "bottle", Color: "#87CEEB", DetailColor: "#4169E1"},
				{Kind: "can", Shape: "can", Color: "#C0C0C0", DetailColor: "#FF6347"},
				{Kind: "paper", Shape: "paper", Color: "#F5F5DC", DetailColor: "#000080"},
			},
			"compost": {
				{Kind: "banana", Shape: "banana", Color: "#FFD700", DetailColor: "#8B4513"},
				{Kind: "apple", Shape: "apple", Color: "#FF6347", DetailColor: "#228B22"},
				{Kind: "leaves", Shape: "leaves", Color: "#228B22", DetailColor: "#8B4513"},
			},
			"trash": {
				{Kind: "wrapper", Shape: "wrapper", Color: "#FF69B4", DetailColor: "#8A2BE2"},
				{Kind: "gum", Shape: "gum", Color: "#FF1493", DetailColor: "#B22222"},
				{Kind: "chip_bag", Shape: "bag", Color: "#FFD700", DetailColor: "#FF4500"},
			},
		},
	}
}

// DefaultStage returns the built-in park stage
func DefaultStage() *StageConfig {
	return &StageConfig{
		ID:          "park",
		Name:        "City Park",
		Background:  "#90EE90",
		PlayerSpawn: PositionConfig{X: 400, Y: 300},
		Bins: []BinConfig{
			{Type: "recycle", Label: "Recycle", Color: "#4A90E2", Rect: RectConfig{X: 50, Y: 50, W: 60, H: 80}},
			{Type: "compost", Label: "Compost", Color: "#7ED321", Rect: RectConfig{X: 50, Y: 200, W: 60, H: 80}},
			{Type: "trash", Label: "Trash", Color: "#2D5016", Rect: RectConfig{X: 50, Y: 350, W: 60, H: 80}},
		},
		Obstacles: []ObstacleConfig{
			{Kind: "slide", Color: "#FF6B6B", Rect: RectConfig{X: 300, Y: 150, W: 80, H: 100}},
			{Kind: "roundabout", Color: "#4ECDC4", Rect: RectConfig{X: 500, Y: 300, W: 60, H: 60}},
			{Kind: "tree", Color: "#228B22", Rect: RectConfig{X: 200, Y: 250, W: 50, H: 80}},
			{Kind: "tree", Color: "#32CD32", Rect: RectConfig{X: 600, Y: 150, W: 55, H: 85}},
			{Kind: "bench", Color: "#8B4513", Rect: RectConfig{X: 450, Y: 100, W: 80, H: 30}},
		},
		Enemies: []EnemySpawnConfig{
			{Type: "bushTurkey", Count: 4},
		},
	}
}
