package spec

// GameSpec is the root aggregate of the external JSON contract
// It is exchanged with the editor and other collaborators; field names
// and shapes are frozen by that contract
type GameSpec struct {
	Version  string       `json:"version"`
	Metadata Metadata     `json:"metadata"`
	Config   Config       `json:"config"`
	Entities []EntitySpec `json:"entities"`
	Systems  []string     `json:"systems"`
}

type Metadata struct {
	Title       string `json:"title"`
	Genre       string `json:"genre"` // platformer | shooter | puzzle
	Description string `json:"description"`
}

type Config struct {
	Gravity     Vec2Spec   `json:"gravity"`
	WorldBounds BoundsSpec `json:"worldBounds"`
}

type Vec2Spec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type BoundsSpec struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type EntitySpec struct {
	Name       string        `json:"name"`
	Components ComponentSpec `json:"components"`
	Tags       []string      `json:"tags,omitempty"`
}

// ComponentSpec groups the optional component blocks
// Absent blocks mean the entity lacks that component; absent numeric
// fields inside a present block take the documented defaults
type ComponentSpec struct {
	Transform       *TransformSpec       `json:"transform,omitempty"`
	Velocity        *VelocitySpec        `json:"velocity,omitempty"`
	Sprite          *SpriteSpec          `json:"sprite,omitempty"`
	Collider        *ColliderSpec        `json:"collider,omitempty"`
	Input           *InputSpec           `json:"input,omitempty"`
	Health          *HealthSpec          `json:"health,omitempty"`
	AIBehavior      *AIBehaviorSpec      `json:"aiBehavior,omitempty"`
	Animation       *AnimationSpec       `json:"animation,omitempty"`
	Camera          *CameraSpec          `json:"camera,omitempty"`
	ParticleEmitter *ParticleEmitterSpec `json:"particleEmitter,omitempty"`
	Audio           *AudioSpec           `json:"audio,omitempty"`
}

// Pointer fields distinguish "omitted" from explicit zero so the defaults
// table can apply; see defaults.go

type TransformSpec struct {
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Rotation *float64 `json:"rotation,omitempty"`
	ScaleX   *float64 `json:"scaleX,omitempty"`
	ScaleY   *float64 `json:"scaleY,omitempty"`
}

type VelocitySpec struct {
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

type ColorSpec struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type FrameSpec struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type SpriteSpec struct {
	Texture string     `json:"texture"`
	Width   float64    `json:"width"`
	Height  float64    `json:"height"`
	Tint    *ColorSpec `json:"tint,omitempty"`
	Visible *bool      `json:"visible,omitempty"`
	ZIndex  *int       `json:"zIndex,omitempty"`
	Frame   *FrameSpec `json:"frame,omitempty"`
	AnchorX *float64   `json:"anchorX,omitempty"`
	AnchorY *float64   `json:"anchorY,omitempty"`
	FlipX   bool       `json:"flipX,omitempty"`
	FlipY   bool       `json:"flipY,omitempty"`
}

type ColliderSpec struct {
	Shape    string  `json:"shape"` // box | circle
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Radius   float64 `json:"radius,omitempty"`
	IsSensor bool    `json:"isSensor,omitempty"`
	Layer    int     `json:"layer,omitempty"`
}

type InputSpec struct {
	MoveSpeed float64 `json:"moveSpeed"`
	JumpForce float64 `json:"jumpForce"`
}

type HealthSpec struct {
	Current float64 `json:"current"`
	Max     float64 `json:"max"`
}

type AIBehaviorSpec struct {
	Kind         string   `json:"kind"` // chase | patrol | idle
	Target       string   `json:"target,omitempty"`
	DetectRadius *float64 `json:"detectRadius,omitempty"`
	Speed        *float64 `json:"speed,omitempty"`
	PatrolRange  *float64 `json:"patrolRange,omitempty"`
}

type AnimationSpec struct {
	FrameCount    int      `json:"frameCount"`
	FrameDuration *float64 `json:"frameDuration,omitempty"` // seconds
	CurrentFrame  int      `json:"currentFrame,omitempty"`
	Playing       *bool    `json:"playing,omitempty"`
	Loop          *bool    `json:"loop,omitempty"`
}

type CameraSpec struct {
	OffsetX         float64  `json:"offsetX,omitempty"`
	OffsetY         float64  `json:"offsetY,omitempty"`
	Zoom            *float64 `json:"zoom,omitempty"`
	FollowTarget    string   `json:"followTarget,omitempty"`
	FollowSmoothing *float64 `json:"followSmoothing,omitempty"`
	ViewportWidth   float64  `json:"viewportWidth,omitempty"`
	ViewportHeight  float64  `json:"viewportHeight,omitempty"`
	ShakeIntensity  float64  `json:"shakeIntensity,omitempty"`
	ShakeDuration   float64  `json:"shakeDuration,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

type ParticleEmitterSpec struct {
	Rate         *float64   `json:"rate,omitempty"`
	MaxParticles *int       `json:"maxParticles,omitempty"`
	LifetimeMin  *float64   `json:"lifetimeMin,omitempty"`
	LifetimeMax  *float64   `json:"lifetimeMax,omitempty"`
	SizeMin      *float64   `json:"sizeMin,omitempty"`
	SizeMax      *float64   `json:"sizeMax,omitempty"`
	SpeedMin     *float64   `json:"speedMin,omitempty"`
	SpeedMax     *float64   `json:"speedMax,omitempty"`
	AngleMin     *float64   `json:"angleMin,omitempty"`
	AngleMax     *float64   `json:"angleMax,omitempty"`
	StartColor   *ColorSpec `json:"startColor,omitempty"`
	EndColor     *ColorSpec `json:"endColor,omitempty"`
	Gravity      *Vec2Spec  `json:"gravity,omitempty"`
	Emitting     *bool      `json:"emitting,omitempty"`
	Burst        int        `json:"burst,omitempty"`
}

type AudioSpec struct {
	Source      string   `json:"source"`
	Volume      *float64 `json:"volume,omitempty"`
	Pitch       *float64 `json:"pitch,omitempty"`
	Playing     bool     `json:"playing,omitempty"`
	Loop        bool     `json:"loop,omitempty"`
	Spatial     bool     `json:"spatial,omitempty"`
	MaxDistance *float64 `json:"maxDistance,omitempty"`
}
