package constant

// Movement
const (
	// Speed is the distance a UFO travels per frame along its heading
	Speed = 1.0

	// SineWavelength divides x before sin() for the sine strategy
	SineWavelength = 100.0
)

// Spawning
const (
	// SpawnRange is the exclusive upper bound of the per-frame spawn roll
	SpawnRange = 1000.0

	// SpawnThreshold spawns an enemy when the roll is at or above it (~0.6% per frame)
	SpawnThreshold = 994.0

	// SpawnBandStart is the top of the vertical spawn band as a fraction of height
	SpawnBandStart = 0.25

	// SpawnBandSize is the vertical spawn band height as a fraction of height
	SpawnBandSize = 0.5

	// EnemyStrategyCount is the number of strategies an enemy may be spawned with
	EnemyStrategyCount = 3
)

// Player
const (
	PlayerStartX = 100.0
	PlayerStartY = 100.0
)

// Trails
const (
	// TrailCapacity is the number of after-images kept per UFO
	TrailCapacity = 100
)

// Collision
const (
	// CollisionDistance is the center distance below which two UFOs collide
	CollisionDistance = 40.0
)
