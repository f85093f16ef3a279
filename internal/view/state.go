package view

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultRotation  = 0.0
	DefaultAzimuth   = 20.0
	DefaultStepSize  = 3.0
	DefaultStepMin   = 0.1
	DefaultStepMax   = 10.0
	DefaultStepScale = 1.5

	// A step above a full turn could not be wrapped back by the rotation keys
	MaxStep = 360.0

	// Azimuth is clamped to ±DefaultAzimuthLimit degrees
	DefaultAzimuthLimit = 80.0
)

// Camera placement applied before the user rotation
var eyeOffset = mgl32.Vec3{-0.5, 0.0, -35.0}

// Limits bounds the adjustable angles
type Limits struct {
	AzimuthLimit float32
	StepMin      float32
	StepMax      float32
	StepScale    float32
}

// DefaultLimits returns the stock limits
func DefaultLimits() Limits {
	return Limits{
		AzimuthLimit: DefaultAzimuthLimit,
		StepMin:      DefaultStepMin,
		StepMax:      DefaultStepMax,
		StepScale:    DefaultStepScale,
	}
}

// State is the whole mutable view: camera angles, step size and drone translation.
// Angles are in degrees.
type State struct {
	Rotation    float32 // around Y, kept in (-180, 180]
	Azimuth     float32 // tilt around X, kept in [-limit, limit]
	StepSize    float32
	Translation mgl32.Vec3

	Limits Limits
}

// New creates a state with the stock initial values
func New() *State {
	return &State{
		Rotation: DefaultRotation,
		Azimuth:  DefaultAzimuth,
		StepSize: DefaultStepSize,
		Limits:   DefaultLimits(),
	}
}

// RotateLeft turns the view by +StepSize around Y
func (s *State) RotateLeft() {
	s.Rotation = WrapDegrees(s.Rotation + s.StepSize)
}

// RotateRight turns the view by -StepSize around Y
func (s *State) RotateRight() {
	s.Rotation = WrapDegrees(s.Rotation - s.StepSize)
}

// WrapDegrees maps any angle into (-180, 180]
func WrapDegrees(a float32) float32 {
	a = float32(math.Mod(float64(a), 360))
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}

// TiltUp raises the azimuth by StepSize
func (s *State) TiltUp() {
	s.Azimuth += s.StepSize
	if s.Azimuth > s.Limits.AzimuthLimit {
		s.Azimuth = s.Limits.AzimuthLimit
	}
}

// TiltDown lowers the azimuth by StepSize
func (s *State) TiltDown() {
	s.Azimuth -= s.StepSize
	if s.Azimuth < -s.Limits.AzimuthLimit {
		s.Azimuth = -s.Limits.AzimuthLimit
	}
}

// GrowStep makes angle steps bigger
func (s *State) GrowStep() {
	s.StepSize *= s.Limits.StepScale
	if s.StepSize > s.Limits.StepMax {
		s.StepSize = s.Limits.StepMax
	}
}

// ShrinkStep makes angle steps smaller
func (s *State) ShrinkStep() {
	s.StepSize /= s.Limits.StepScale
	if s.StepSize < s.Limits.StepMin {
		s.StepSize = s.Limits.StepMin
	}
}

// Translate moves the drone by delta along one axis (0=X, 1=Y, 2=Z).
// Out of range axes are ignored.
func (s *State) Translate(axis int, delta float32) {
	if axis < 0 || axis > 2 {
		return
	}
	s.Translation[axis] += delta
}

// ViewMatrix returns the camera transform: fixed offset, then rotation, then azimuth
func (s *State) ViewMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(eyeOffset[0], eyeOffset[1], eyeOffset[2]).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(s.Rotation))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(s.Azimuth)))
}

// StatusLines describes the state for the on-screen overlay
func (s *State) StatusLines() []string {
	return []string{
		fmt.Sprintf("rotation %6.1f", s.Rotation),
		fmt.Sprintf("azimuth  %6.1f", s.Azimuth),
		fmt.Sprintf("step     %6.2f", s.StepSize),
		fmt.Sprintf("position %.0f %.0f %.0f", s.Translation[0], s.Translation[1], s.Translation[2]),
	}
}
