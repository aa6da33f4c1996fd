package physics

import "math"

// LaunchConditions describes the ball the instant it leaves the club
// face. Values are already the ball's, not the club's: speed in m/s,
// launch angle in degrees above horizontal, backspin in rpm.
type LaunchConditions struct {
	BallSpeed   float64 `yaml:"ball_speed"`   // m/s
	LaunchAngle float64 `yaml:"launch_angle"` // deg
	SpinRate    float64 `yaml:"spin_rate"`    // rpm
}

// Documented domains for launch inputs. 100 m/s is beyond any recorded
// long-drive ball speed; 45° is steeper than any lofted wedge launches.
const (
	MaxBallSpeedMS    = 100.0
	MaxLaunchAngleDeg = 45.0
	MaxSpinRateRPM    = 12000.0
)

// Validate rejects launch values outside their documented domains.
func (l LaunchConditions) Validate() error {
	switch {
	case math.IsNaN(l.BallSpeed) || l.BallSpeed <= 0 || l.BallSpeed > MaxBallSpeedMS:
		return &ValidationError{Field: "ball_speed", Value: l.BallSpeed, Min: 0, Max: MaxBallSpeedMS}
	case math.IsNaN(l.LaunchAngle) || l.LaunchAngle < 0 || l.LaunchAngle > MaxLaunchAngleDeg:
		return &ValidationError{Field: "launch_angle", Value: l.LaunchAngle, Min: 0, Max: MaxLaunchAngleDeg}
	case math.IsNaN(l.SpinRate) || l.SpinRate < 0 || l.SpinRate > MaxSpinRateRPM:
		return &ValidationError{Field: "spin_rate", Value: l.SpinRate, Min: 0, Max: MaxSpinRateRPM}
	}
	return nil
}

// InitialVelocity decomposes speed and angle into the launch velocity
// vector. The shot starts straight down the target line, so Z is zero.
func (l LaunchConditions) InitialVelocity() Vec3 {
	rad := l.LaunchAngle * math.Pi / 180
	return Vec3{
		X: l.BallSpeed * math.Cos(rad),
		Y: l.BallSpeed * math.Sin(rad),
	}
}
