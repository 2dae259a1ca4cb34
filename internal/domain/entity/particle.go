package entity

// ParticleKind selects how a particle moves and is drawn
type ParticleKind int

const (
	ParticleSuccess ParticleKind = iota
	ParticleFail
	ParticleFeather
	ParticleText
)

// String returns the string representation of the particle kind
func (k ParticleKind) String() string {
	switch k {
	case ParticleSuccess:
		return "success"
	case ParticleFail:
		return "fail"
	case ParticleFeather:
		return "feather"
	case ParticleText:
		return "text"
	default:
		return "unknown"
	}
}

// Particle is a short-lived visual effect
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Kind    ParticleKind
	Color   string
	Size    float64
	Text    string
	Alpha   float64
}

// IsText returns true for floating text particles
func (p *Particle) IsText() bool {
	return p.Kind == ParticleText
}

// Alive returns true while life remains
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Update advances the particle one frame.
// Text floats; everything else falls under gravity.
func (p *Particle) Update(gravity float64) {
	p.X += p.VX
	p.Y += p.VY
	p.Life--
	if !p.IsText() {
		p.VY += gravity
	}
	if p.MaxLife > 0 {
		p.Alpha = float64(p.Life) / float64(p.MaxLife)
	}
}
