// Package spatial holds the small amount of rotation math the rig needs:
// yaw extraction from an arbitrary orientation and Euler/quaternion
// conversion in degrees, Y-up right-handed, YXZ order.
package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Forward is the facing direction of an identity orientation.
var Forward = mgl64.Vec3{0, 0, -1}

// Up is the world vertical axis.
var Up = mgl64.Vec3{0, 1, 0}

// YawDegrees extracts the heading of q about the vertical axis, discarding
// pitch and roll. The result is in (-180, 180].
func YawDegrees(q mgl64.Quat) float64 {
	f := q.Rotate(Forward)
	x, z := f.X(), f.Z()
	if math.Hypot(x, z) < 1e-9 {
		// Looking straight up or down; the projected forward vector
		// degenerates, so recover the heading from the rotated up axis.
		u := q.Rotate(Up)
		if f.Y() > 0 {
			x, z = -u.X(), -u.Z()
		} else {
			x, z = u.X(), u.Z()
		}
	}
	return NormalizeDegrees(mgl64.RadToDeg(math.Atan2(-x, -z)))
}

// QuatFromEulerDegrees composes a rotation from Euler angles in degrees,
// applied yaw (Y) first, then pitch (X), then roll (Z).
func QuatFromEulerDegrees(pitch, yaw, roll float64) mgl64.Quat {
	qy := mgl64.QuatRotate(mgl64.DegToRad(yaw), mgl64.Vec3{0, 1, 0})
	qx := mgl64.QuatRotate(mgl64.DegToRad(pitch), mgl64.Vec3{1, 0, 0})
	qz := mgl64.QuatRotate(mgl64.DegToRad(roll), mgl64.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz)
}

// EulerDegrees decomposes q into (pitch, yaw, roll) degrees in the same YXZ
// order QuatFromEulerDegrees composes them.
func EulerDegrees(q mgl64.Quat) (pitch, yaw, roll float64) {
	m := q.Normalize().Mat4()

	sp := -m.At(1, 2)
	if sp > 1 {
		sp = 1
	} else if sp < -1 {
		sp = -1
	}
	pitch = mgl64.RadToDeg(math.Asin(sp))

	if math.Abs(sp) > 1-1e-9 {
		// Gimbal lock: roll folds into yaw.
		yaw = mgl64.RadToDeg(math.Atan2(-m.At(2, 0), m.At(0, 0)))
		roll = 0
		return pitch, NormalizeDegrees(yaw), roll
	}

	yaw = mgl64.RadToDeg(math.Atan2(m.At(0, 2), m.At(2, 2)))
	roll = mgl64.RadToDeg(math.Atan2(m.At(1, 0), m.At(1, 1)))
	return NormalizeDegrees(pitch), NormalizeDegrees(yaw), NormalizeDegrees(roll)
}

// NormalizeDegrees maps an angle to (-180, 180].
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
