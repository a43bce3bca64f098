package world

import "github.com/gravshot/gravshot/internal/vmath"

// Tuning holds the engine-wide constants. Durations and delays are in frames,
// distances in simulation units. It is loaded once from config and never
// mutated by the simulation.
type Tuning struct {
	ScreenWidth  float64 `toml:"screen_width"`
	ScreenHeight float64 `toml:"screen_height"`

	// Projectiles are dropped once their bounding circle is this far past an edge.
	ProjectileMargin float64 `toml:"projectile_margin"`
	// Adversaries hit a player within their own radius plus this.
	PlayerCollisionRadius float64 `toml:"player_collision_radius"`

	AdversaryMinDist int `toml:"adversary_min_dist"`
	AdversaryMaxDist int `toml:"adversary_max_dist"`

	DustCount         int     `toml:"dust_count"`
	DustRadius        float64 `toml:"dust_radius"`
	DustGravityFactor float64 `toml:"dust_gravity_factor"`
	DustFriction      float64 `toml:"dust_friction"`

	WinDelay     int     `toml:"win_delay"`
	LoseDelay    int     `toml:"lose_delay"`
	WinDuration  int     `toml:"win_duration"`
	LoseDuration int     `toml:"lose_duration"`
	WinRadius    float64 `toml:"win_radius"`
	LoseRadius   float64 `toml:"lose_radius"`
	WinColor     Color   `toml:"win_color"`
	LoseColor    Color   `toml:"lose_color"`

	IntroDuration int     `toml:"intro_duration"`
	IntroRadius   float64 `toml:"intro_radius"`
	IntroColor    Color   `toml:"intro_color"`

	PlayerDeathDuration int     `toml:"player_death_duration"`
	PlayerDeathRadius   float64 `toml:"player_death_radius"`
	PlayerDeathColor    Color   `toml:"player_death_color"`

	AdversaryDeathDuration     int     `toml:"adversary_death_duration"`
	AdversaryDeathRadiusFactor float64 `toml:"adversary_death_radius_factor"`
	AdversaryDeathColor        Color   `toml:"adversary_death_color"`

	// TextDuration is how long the level title fades out, and then how long
	// the instructions take to fade in.
	TextDuration int `toml:"text_duration"`
}

func DefaultTuning() Tuning {
	return Tuning{
		ScreenWidth:  320,
		ScreenHeight: 480,

		ProjectileMargin:      20,
		PlayerCollisionRadius: 10,

		AdversaryMinDist: 280,
		AdversaryMaxDist: 420,

		DustCount:         60,
		DustRadius:        1,
		DustGravityFactor: 0.05,
		DustFriction:      0.97,

		WinDelay:     30,
		LoseDelay:    45,
		WinDuration:  60,
		LoseDuration: 60,
		WinRadius:    400,
		LoseRadius:   400,
		WinColor:     RGBA(255, 255, 255, 64),
		LoseColor:    RGBA(255, 0, 0, 64),

		IntroDuration: 40,
		IntroRadius:   300,
		IntroColor:    RGBA(255, 255, 255, 128),

		PlayerDeathDuration: 30,
		PlayerDeathRadius:   40,
		PlayerDeathColor:    RGBA(0, 192, 255, 255),

		AdversaryDeathDuration:     20,
		AdversaryDeathRadiusFactor: 3,
		AdversaryDeathColor:        RGBA(255, 128, 0, 255),

		TextDuration: 90,
	}
}

func (t *Tuning) Bounds() vmath.Rect {
	return vmath.Screen(t.ScreenWidth, t.ScreenHeight)
}
