package parameter

import (
	"math"

	"github.com/samber/oops"
)

// Profile holds every tunable of the shared world engine
// Each built-in world ships one; config may override individual fields
type Profile struct {
	Name        string             `koanf:"name"`
	Locomotion  LocomotionProfile  `koanf:"locomotion"`
	Interaction InteractionProfile `koanf:"interaction"`
	Transition  TransitionProfile  `koanf:"transition"`
	Camera      CameraProfile      `koanf:"camera"`
	Tour        TourProfile        `koanf:"tour"`
	Hints       HintProfile        `koanf:"hints"`
}

// LocomotionProfile tunes avatar motion
type LocomotionProfile struct {
	MaxSpeed      float64 `koanf:"max_speed"`      // units/sec at full input
	Rate          float64 `koanf:"rate"`           // velocity damping rate k, 1/sec
	IdleThreshold float64 `koanf:"idle_threshold"` // |vx|+|vz| at or below is Idle
	RunThreshold  float64 `koanf:"run_threshold"`  // |vx|+|vz| above is Run
	FacingRate    float64 `koanf:"facing_rate"`
	FacingOffset  float64 `koanf:"facing_offset"` // radians added to the velocity heading
	AvatarRadius  float64 `koanf:"avatar_radius"`
}

// InteractionProfile tunes proximity and object animation
type InteractionProfile struct {
	ActivationRadius float64 `koanf:"activation_radius"`
	OpenRate         float64 `koanf:"open_rate"`
	Epsilon          float64 `koanf:"epsilon"`

	HaloBase float64 `koanf:"halo_base"`
	HaloGain float64 `koanf:"halo_gain"`
	HaloMin  float64 `koanf:"halo_min"`
	HaloMax  float64 `koanf:"halo_max"`

	GlowBase  float64 `koanf:"glow_base"`
	GlowGain  float64 `koanf:"glow_gain"`
	LightBase float64 `koanf:"light_base"`
	LightGain float64 `koanf:"light_gain"`
}

// TransitionProfile tunes the travel sequence
type TransitionProfile struct {
	PullDuration  float64 `koanf:"pull_duration"`  // seconds
	DwellDuration float64 `koanf:"dwell_duration"` // seconds
	ScaleShrink   float64 `koanf:"scale_shrink"`
	ScaleFloor    float64 `koanf:"scale_floor"`
	TravelHeight  float64 `koanf:"travel_height"`
	SpinRate      float64 `koanf:"spin_rate"`
	CloseUpRate   float64 `koanf:"close_up_rate"`

	// Target glow and light ramp with the eased pull
	PullGlowGain  float64 `koanf:"pull_glow_gain"`
	PullLightGain float64 `koanf:"pull_light_gain"`
}

// CameraProfile tunes the follow camera
type CameraProfile struct {
	AnchorXFactor  float64 `koanf:"anchor_x_factor"`
	AnchorHeight   float64 `koanf:"anchor_height"`
	AnchorDistance float64 `koanf:"anchor_distance"`
	FollowRate     float64 `koanf:"follow_rate"`

	LookXFactor float64 `koanf:"look_x_factor"`
	LookHeight  float64 `koanf:"look_height"`
	LookAhead   float64 `koanf:"look_ahead"`

	// Look bias toward the nearest object, disabled when LookBiasRadius is 0
	LookBiasRadius    float64 `koanf:"look_bias_radius"`
	LookObjectXFactor float64 `koanf:"look_object_x_factor"`
	LookObjectHeight  float64 `koanf:"look_object_height"`
	LookBiasX         float64 `koanf:"look_bias_x"`
	LookBiasY         float64 `koanf:"look_bias_y"`
	LookBiasZ         float64 `koanf:"look_bias_z"`
}

// TourProfile tunes the optional auto-walk patrol
type TourProfile struct {
	Available    bool    `koanf:"available"`
	SideOffset   float64 `koanf:"side_offset"` // toward lane center
	Forward      float64 `koanf:"forward"`     // along +z in front of the object
	SpeedFactor  float64 `koanf:"speed_factor"`
	ArriveRadius float64 `koanf:"arrive_radius"`
}

// HintProfile controls the on-screen controls hint and idle status line
type HintProfile struct {
	HideBeyond bool    `koanf:"hide_beyond"`
	HideBelowZ float64 `koanf:"hide_below_z"`
	IdleStatus string  `koanf:"idle_status"`
}

// Validate rejects profiles that would make integration unstable or degenerate
func (p Profile) Validate() error {
	errb := oops.Code("PROFILE_INVALID").With("profile", p.Name)

	positive := []struct {
		name  string
		value float64
	}{
		{"locomotion.max_speed", p.Locomotion.MaxSpeed},
		{"locomotion.rate", p.Locomotion.Rate},
		{"locomotion.facing_rate", p.Locomotion.FacingRate},
		{"locomotion.avatar_radius", p.Locomotion.AvatarRadius},
		{"interaction.activation_radius", p.Interaction.ActivationRadius},
		{"interaction.open_rate", p.Interaction.OpenRate},
		{"interaction.epsilon", p.Interaction.Epsilon},
		{"transition.pull_duration", p.Transition.PullDuration},
		{"transition.dwell_duration", p.Transition.DwellDuration},
		{"transition.scale_floor", p.Transition.ScaleFloor},
		{"transition.close_up_rate", p.Transition.CloseUpRate},
		{"camera.follow_rate", p.Camera.FollowRate},
	}
	for _, f := range positive {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return errb.With("field", f.name).Errorf("%s must be a positive finite number, got %v", f.name, f.value)
		}
	}

	if p.Interaction.Epsilon >= 0.5 {
		return errb.With("field", "interaction.epsilon").Errorf("epsilon must be below 0.5, got %v", p.Interaction.Epsilon)
	}
	if p.Locomotion.RunThreshold < p.Locomotion.IdleThreshold {
		return errb.Errorf("run_threshold %v below idle_threshold %v", p.Locomotion.RunThreshold, p.Locomotion.IdleThreshold)
	}
	if p.Interaction.HaloMin > p.Interaction.HaloMax {
		return errb.Errorf("halo_min %v above halo_max %v", p.Interaction.HaloMin, p.Interaction.HaloMax)
	}
	if p.Transition.ScaleFloor >= 1 {
		return errb.With("field", "transition.scale_floor").Errorf("scale_floor must be below 1, got %v", p.Transition.ScaleFloor)
	}
	if p.Camera.LookBiasRadius < 0 {
		return errb.With("field", "camera.look_bias_radius").Errorf("look_bias_radius must not be negative")
	}
	if p.Tour.Available && (p.Tour.SpeedFactor <= 0 || p.Tour.ArriveRadius <= 0) {
		return errb.With("field", "tour").Errorf("tour requires positive speed_factor and arrive_radius")
	}
	return nil
}

// Shared defaults, each world copies and adjusts
var (
	defaultLocomotion = LocomotionProfile{
		MaxSpeed:      7.2,
		Rate:          9,
		IdleThreshold: 0.09,
		RunThreshold:  5.5,
		FacingRate:    9,
		AvatarRadius:  0.7,
	}

	defaultInteraction = InteractionProfile{
		OpenRate:  8.5,
		Epsilon:   0.01,
		HaloBase:  0.16,
		HaloGain:  0.16,
		HaloMin:   0.14,
		HaloMax:   0.62,
		GlowBase:  0.1,
		GlowGain:  0.28,
		LightBase: 0.24,
		LightGain: 0.7,
	}

	defaultTransition = TransitionProfile{
		PullDuration:  0.85,
		DwellDuration: 0.6,
		ScaleShrink:   0.95,
		ScaleFloor:    0.01,
		TravelHeight:  1.2,
		SpinRate:      8,
		CloseUpRate:   6,
		PullGlowGain:  0.6,
		PullLightGain: 1.4,
	}
)

// CorridorProfile is the door timeline world
func CorridorProfile() Profile {
	p := Profile{
		Name:        "corridor",
		Locomotion:  defaultLocomotion,
		Interaction: defaultInteraction,
		Transition:  defaultTransition,
		Camera: CameraProfile{
			AnchorXFactor:     0.48,
			AnchorHeight:      4.7,
			AnchorDistance:    9.5,
			FollowRate:        5,
			LookXFactor:       0.2,
			LookHeight:        1.5,
			LookAhead:         -5.9,
			LookBiasRadius:    12,
			LookObjectXFactor: 0.5,
			LookBiasX:         1,
			LookBiasZ:         0.4,
		},
		Hints: HintProfile{
			HideBeyond: true,
			HideBelowZ: 3,
			IdleStatus: "Walk forward to discover more timeline doors.",
		},
	}
	p.Locomotion.MaxSpeed = 7.4
	p.Interaction.ActivationRadius = 5
	p.Interaction.OpenRate = 8.6
	return p
}

// GalleryProfile is the statue gallery world
func GalleryProfile() Profile {
	p := Profile{
		Name:        "gallery",
		Locomotion:  defaultLocomotion,
		Interaction: defaultInteraction,
		Transition:  defaultTransition,
		Camera: CameraProfile{
			AnchorXFactor:  0.45,
			AnchorHeight:   5.5,
			AnchorDistance: 12,
			FollowRate:     4.8,
			LookXFactor:    0.35,
			LookHeight:     4.5,
			LookAhead:      2.8,
		},
		Tour: TourProfile{
			Available:    true,
			SideOffset:   2.8,
			Forward:      2.7,
			SpeedFactor:  0.66,
			ArriveRadius: 0.5,
		},
		Hints: HintProfile{IdleStatus: "Walk the gallery or start the tour."},
	}
	p.Locomotion.FacingOffset = math.Pi
	p.Interaction.ActivationRadius = 4.6
	return p
}

// HolodeckProfile is the central console world
func HolodeckProfile() Profile {
	p := Profile{
		Name:        "holodeck",
		Locomotion:  defaultLocomotion,
		Interaction: defaultInteraction,
		Transition:  defaultTransition,
		Camera: CameraProfile{
			AnchorXFactor:     0.4,
			AnchorHeight:      5,
			AnchorDistance:    10,
			FollowRate:        4,
			LookXFactor:       0.2,
			LookHeight:        2.5,
			LookAhead:         -5,
			LookBiasRadius:    12,
			LookObjectXFactor: 1,
			LookObjectHeight:  4,
			LookBiasX:         0.4,
			LookBiasY:         0.4,
			LookBiasZ:         0.3,
		},
		Hints: HintProfile{
			HideBeyond: true,
			HideBelowZ: 8,
			IdleStatus: "Approach the holotable.",
		},
	}
	p.Locomotion.MaxSpeed = 7
	p.Locomotion.FacingOffset = math.Pi
	p.Interaction.ActivationRadius = 12
	return p
}
