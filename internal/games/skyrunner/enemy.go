package skyrunner

// EnemyType is the enemy variant.
type EnemyType int

const (
	EnemyBasic EnemyType = iota
	EnemyAdvanced
	EnemyBoss
	enemyTypeCount
)

// Enemy health bounds.
const (
	minEnemyHealth = 30
	maxEnemyHealth = 300
)

// String returns the type name.
func (t EnemyType) String() string {
	switch t {
	case EnemyBasic:
		return "basic"
	case EnemyAdvanced:
		return "advanced"
	case EnemyBoss:
		return "boss"
	default:
		return "?"
	}
}

// baseHealth returns the starting health for the type.
func (t EnemyType) baseHealth() int {
	switch t {
	case EnemyAdvanced:
		return 150
	case EnemyBoss:
		return 300
	default:
		return 100
	}
}

// Enemy is a hostile craft that patrols vertically and fires leftward.
type Enemy struct {
	Body
	Type     EnemyType
	Health   int
	Cooldown int

	originY     float64
	patrolRange float64
	patrolSpeed float64
	dir         float64
	fireDelay   int
}

// NewEnemy creates an enemy at (x, y).
func NewEnemy(t EnemyType, x, y float64, patrolRange, patrolSpeed float64, fireDelay int) *Enemy {
	health := t.baseHealth()
	if health < minEnemyHealth {
		health = minEnemyHealth
	}
	if health > maxEnemyHealth {
		health = maxEnemyHealth
	}
	return &Enemy{
		Body:        Body{X: x, Y: y, W: 40, H: 30, Active: true},
		Type:        t,
		Health:      health,
		Cooldown:    fireDelay,
		originY:     y,
		patrolRange: patrolRange,
		patrolSpeed: patrolSpeed,
		dir:         1,
		fireDelay:   fireDelay,
	}
}

// Kind implements Entity.
func (e *Enemy) Kind() Kind { return KindEnemy }

// Tick patrols between the bounds around the spawn height and scrolls left.
func (e *Enemy) Tick(scroll float64) {
	e.Y += e.dir * e.patrolSpeed
	if e.Y >= e.originY+e.patrolRange {
		e.Y = e.originY + e.patrolRange
		e.dir = -1
	} else if e.Y <= e.originY-e.patrolRange {
		e.Y = e.originY - e.patrolRange
		e.dir = 1
	}
	e.X -= scroll
	if e.Cooldown > 0 {
		e.Cooldown--
	}
}

// Ready reports whether the enemy's weapon has cooled down.
func (e *Enemy) Ready() bool {
	return e.Active && e.Cooldown <= 0
}

// Fire restarts the cooldown and returns the muzzle position.
func (e *Enemy) Fire() (float64, float64) {
	e.Cooldown = e.fireDelay
	return e.X - 10, e.Y + float64(e.H/2)
}

// TakeDamage subtracts health and reports whether the enemy was destroyed.
func (e *Enemy) TakeDamage(amount int) bool {
	e.Health -= nonNegative(amount)
	if e.Health <= 0 {
		e.Health = 0
		e.Deactivate()
		return true
	}
	return false
}
