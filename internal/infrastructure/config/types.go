package config

// RulesConfig is the root config for rules.json
type RulesConfig struct {
	Display     DisplayConfig     `json:"display"`
	Session     SessionConfig     `json:"session"`
	Movement    MovementConfig    `json:"movement"`
	EnemyAI     EnemyAIConfig     `json:"enemyAI"`
	Interaction InteractionConfig `json:"interaction"`
	Spawn       SpawnConfig       `json:"spawn"`
	Effects     EffectsConfig     `json:"effects"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

type SessionConfig struct {
	DurationSeconds int `json:"durationSeconds"`
	StartImmunity   int `json:"startImmunity"` // frames
}

// MovementConfig tunes the player controller
type MovementConfig struct {
	ArriveThreshold     float64 `json:"arriveThreshold"`
	Friction            float64 `json:"friction"`
	StopThreshold       float64 `json:"stopThreshold"`
	BinOverlapTolerance float64 `json:"binOverlapTolerance"`
	AnimStep            float64 `json:"animStep"`
	AnimFrames          float64 `json:"animFrames"`
}

// EnemyAIConfig tunes the enemy state machine. All timers are in frames.
type EnemyAIConfig struct {
	MaxAggression        float64 `json:"maxAggression"`
	AggressionGain       float64 `json:"aggressionGain"`
	AggressionDecay      float64 `json:"aggressionDecay"`
	SatisfiedDecay       float64 `json:"satisfiedDecay"`
	ChaseThreshold       float64 `json:"chaseThreshold"`
	ChaseBase            float64 `json:"chaseBase"`
	ChaseAggressionScale float64 `json:"chaseAggressionScale"`
	LeadFrames           float64 `json:"leadFrames"`
	Jitter               float64 `json:"jitter"`
	VocalizeChance       float64 `json:"vocalizeChance"`
	FleeDistance         float64 `json:"fleeDistance"`
	FleeFrames           int     `json:"fleeFrames"`
	FleeBurst            float64 `json:"fleeBurst"`
	FleeSpeed            float64 `json:"fleeSpeed"`
	PatrolSpeed          float64 `json:"patrolSpeed"`
	WanderMin            int     `json:"wanderMin"`
	WanderMax            int     `json:"wanderMax"`
	EdgeMargin           float64 `json:"edgeMargin"`
	AvoidStep            float64 `json:"avoidStep"`
	AvoidSpreadDeg       float64 `json:"avoidSpreadDeg"`
	AnimStep             float64 `json:"animStep"`
	AnimFrames           float64 `json:"animFrames"`
}

// InteractionConfig tunes pickup, deposit and strike resolution
type InteractionConfig struct {
	CorrectPoints   int     `json:"correctPoints"`
	WrongPoints     int     `json:"wrongPoints"`
	RestockChance   float64 `json:"restockChance"`
	StrikeImmunity  int     `json:"strikeImmunity"`
	Knockback       float64 `json:"knockback"`
	SatisfiedFrames int     `json:"satisfiedFrames"`
	ScreenShake     int     `json:"screenShake"`
}

// SpawnConfig controls where and how trash appears
type SpawnConfig struct {
	InitialCount    int     `json:"initialCount"`
	InitialAttempts int     `json:"initialAttempts"`
	InitialSize     float64 `json:"initialSize"`
	RestockAttempts int     `json:"restockAttempts"`
	RestockSize     float64 `json:"restockSize"`
	MinX            float64 `json:"minX"`
	MinY            float64 `json:"minY"`
	MarginRight     float64 `json:"marginRight"`
	MarginBottom    float64 `json:"marginBottom"`
	MaxRotation     float64 `json:"maxRotation"`
}

type EffectsConfig struct {
	Gravity float64     `json:"gravity"`
	Success BurstConfig `json:"success"`
	Fail    BurstConfig `json:"fail"`
	Peck    BurstConfig `json:"peck"`
}

// BurstConfig describes a particle burst and its floating text
type BurstConfig struct {
	Count     int             `json:"count"`
	Spread    float64         `json:"spread"` // velocity range per axis is [-spread/2, spread/2)
	Lift      float64         `json:"lift"`   // added to the initial vy
	Life      int             `json:"life"`
	MinSize   float64         `json:"minSize"`
	SizeRange float64         `json:"sizeRange"`
	Colors    []string        `json:"colors"`
	Text      TextPopupConfig `json:"text"`
}

type TextPopupConfig struct {
	Label   string  `json:"label"`
	OffsetY float64 `json:"offsetY"`
	VY      float64 `json:"vy"`
	Life    int     `json:"life"`
	Size    float64 `json:"size"`
	Color   string  `json:"color"`
}
