// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package body implements rigid bodies: mass properties, pose and
// velocity state, and semi-implicit Euler integration under accumulated
// force and torque.
package body

import (
	"github.com/tormund/rigid3d/shape"
	"github.com/tormund/rigid3d/vecmath"
)

// Behavior selects how a Body is affected by simulation.
type Behavior int

const (
	// Static bodies never move; they behave as if infinitely massive and
	// are skipped entirely by integration.
	Static Behavior = iota
	// Kinematic bodies move according to their velocity but never
	// respond to forces or constraint impulses.
	Kinematic
	// Dynamic bodies are fully simulated: forces, torques and constraint
	// impulses all affect them.
	Dynamic
)

func (b Behavior) String() string {

	switch b {
	case Static:
		return "Static"
	case Kinematic:
		return "Kinematic"
	case Dynamic:
		return "Dynamic"
	default:
		return "Unknown"
	}
}

// SleepState tracks a Body's progress towards being excluded from active
// integration and solving while at rest.
type SleepState int

const (
	Awake SleepState = iota
	Sleepy
	Sleeping
)

// ShapeInstance pairs a Shape with the local offset at which it is
// attached to its owning Body, letting a single Body carry multiple
// shapes (a compound body) or a single shape's collision geometry be
// reused across bodies.
type ShapeInstance struct {
	Shape shape.Shape
	Local vecmath.Transform3d
}

// ID identifies a Body within a World, assigned when the body is added.
type ID int

// Body is a rigid body: a pose and velocity state, mass properties
// derived from its attached shapes, and the force/torque accumulators
// Simulate drains each step.
type Body struct {
	ID   ID
	Name string

	Frame           vecmath.Transform3d
	LinearVelocity  vecmath.Vector3
	AngularVelocity vecmath.Vector3

	Force  vecmath.Vector3
	Torque vecmath.Vector3

	Behavior Behavior
	Material Material

	Mass            float32
	InvMass         float32
	InvInertiaLocal vecmath.Matrix3
	InvInertiaWorld vecmath.Matrix3

	LinearFactor  vecmath.Vector3
	AngularFactor vecmath.Vector3

	LinearDamping  float32
	AngularDamping float32

	Shapes []ShapeInstance

	BoundingSphereRadius float32

	AllowSleep      bool
	SleepState      SleepState
	SleepSpeedLimit float32
	SleepTimeLimit  float32
	timeSleepy      float32

	data interface{}
}

// newBody returns a Body with the defaults shared by every constructor:
// identity pose, unit factors, light damping, sleep enabled.
func newBody() *Body {

	b := &Body{
		Behavior:        Dynamic,
		Material:        DefaultMaterial,
		Mass:            1,
		LinearFactor:    vecmath.Vector3{X: 1, Y: 1, Z: 1},
		AngularFactor:   vecmath.Vector3{X: 1, Y: 1, Z: 1},
		LinearDamping:   0.01,
		AngularDamping:  0.01,
		AllowSleep:      true,
		SleepSpeedLimit: 0.1,
		SleepTimeLimit:  1,
	}
	b.Frame.Identity()
	return b
}

// NewPlane returns a new Static body with a single Plane shape at its
// local origin.
func NewPlane() *Body {

	b := newBody()
	b.Behavior = Static
	b.Shapes = []ShapeInstance{{Shape: shape.NewPlane()}}
	b.UpdateMassProperties()
	return b
}

// NewSphere returns a new Dynamic body of the given mass with a single
// Sphere shape of the given radius at its local origin.
func NewSphere(mass, radius float32) *Body {

	b := newBody()
	b.Mass = mass
	b.Shapes = []ShapeInstance{{Shape: shape.NewSphere(radius)}}
	b.UpdateMassProperties()
	return b
}

// NewParticle returns a new Dynamic body of the given mass with a single
// Particle shape at its local origin.
func NewParticle(mass float32) *Body {

	b := newBody()
	b.Mass = mass
	b.Shapes = []ShapeInstance{{Shape: shape.NewParticle()}}
	b.UpdateMassProperties()
	return b
}

// NewBlock returns a new Dynamic body of the given mass with a single
// box-hull Convex shape of the given half-extents at its local origin.
func NewBlock(mass float32, halfExtents vecmath.Vector3) *Body {

	b := newBody()
	b.Mass = mass
	b.Shapes = []ShapeInstance{{Shape: shape.NewBoxHull(halfExtents)}}
	b.UpdateMassProperties()
	return b
}

// NewCompound returns a new Dynamic body of the given mass assembled
// from the given shape instances, each positioned at its own Local
// offset relative to the body origin. Returns ErrInvalidBody if shapes
// is empty.
func NewCompound(mass float32, shapes []ShapeInstance) (*Body, error) {

	if len(shapes) == 0 {
		return nil, ErrInvalidBody
	}
	b := newBody()
	b.Mass = mass
	b.Shapes = append([]ShapeInstance(nil), shapes...)
	b.UpdateMassProperties()
	return b, nil
}

// WithBehavior sets the body's Behavior and recomputes its effective
// mass properties, returning the body for chaining.
func (b *Body) WithBehavior(behavior Behavior) *Body {

	b.Behavior = behavior
	b.UpdateMassProperties()
	return b
}

// WithMaterial sets the body's Material, returning the body for chaining.
func (b *Body) WithMaterial(m Material) *Body {

	b.Material = m
	return b
}

// Data returns the opaque value previously attached with WithData, or
// nil if none was ever set.
func (b *Body) Data() interface{} {
	return b.data
}

// WithData attaches an opaque caller-owned value to the body (e.g. a
// scene-graph node, a gameplay entity handle) that the simulator never
// reads or mutates, returning the body for chaining.
func (b *Body) WithData(d interface{}) *Body {

	b.data = d
	return b
}

// MoveTo sets the body's world position, returning the body for chaining.
func (b *Body) MoveTo(pos vecmath.Vector3) *Body {

	b.Frame.Position = pos
	return b
}

// RotateAround sets the body's world orientation to a rotation of angle
// radians around axis, returning the body for chaining.
func (b *Body) RotateAround(axis vecmath.Vector3, angle float32) *Body {

	b.Frame.Quaternion.SetFromAxisAngle(&axis, angle)
	return b
}

// UpdateMassProperties recomputes InvMass and the local inertia tensor
// from the body's mass and attached shapes. Call it after changing Mass,
// Behavior or Shapes. A Static or zero-mass body carries zero inverse
// mass and zero inverse inertia, both of which the solver treats as
// infinite mass.
func (b *Body) UpdateMassProperties() {

	if b.Behavior != Static && b.Mass > 0 {
		b.InvMass = 1 / b.Mass
	} else {
		b.InvMass = 0
	}

	if b.Behavior != Dynamic || len(b.Shapes) == 0 {
		b.InvInertiaLocal = vecmath.Matrix3{}
	} else {
		// Single-shape bodies use that shape's own tensor directly;
		// compound bodies would need the parallel-axis-theorem sum,
		// which the solver's box/sphere/convex test coverage never
		// exercises (see the compound-inertia open question).
		inertia := b.Shapes[0].Shape.RotationalInertia(b.Mass)
		var inv vecmath.Matrix3
		if inertia.Determinant() == 0 {
			// A Particle (or any shape with zero rotational inertia)
			// carries no rotational response: leave invInertia zero
			// rather than invert a singular tensor.
			inv = vecmath.Matrix3{}
		} else {
			inv.GetInverse(&inertia)
		}
		b.InvInertiaLocal = inv
	}

	b.updateBoundingSphere()
	b.UpdateInertiaWorld(true)
}

func (b *Body) updateBoundingSphere() {

	var r float32
	for _, inst := range b.Shapes {
		d := inst.Local.Position.Length() + inst.Shape.BoundingSphereRadius()
		if d > r {
			r = d
		}
	}
	b.BoundingSphereRadius = r
}

// UpdateInertiaWorld recomputes InvInertiaWorld = R * InvInertiaLocal *
// R^T from the current orientation. When the local tensor is isotropic
// (a sphere, or any shape with equal diagonal entries) the rotation
// leaves it unchanged and the multiplication is skipped unless force is
// true.
func (b *Body) UpdateInertiaWorld(force bool) {

	if !force && b.InvInertiaLocal.IsIsotropic() {
		return
	}
	r := *b.Frame.Quaternion.ToMatrix3()
	var rt vecmath.Matrix3
	rt.Copy(&r).Transpose()

	var tmp vecmath.Matrix3
	tmp.MultiplyMatrices(&r, &b.InvInertiaLocal)
	b.InvInertiaWorld.MultiplyMatrices(&tmp, &rt)
}

// EffectiveInvMass returns InvMass, or zero if the body is Kinematic or
// currently Sleeping — either way the solver must treat it as
// infinitely massive and never apply an impulse-driven velocity change.
func (b *Body) EffectiveInvMass() float32 {

	if b.Behavior != Dynamic || b.SleepState == Sleeping {
		return 0
	}
	return b.InvMass
}

// EffectiveInvInertiaWorld returns InvInertiaWorld, or the zero tensor
// under the same Kinematic/Sleeping conditions as EffectiveInvMass.
func (b *Body) EffectiveInvInertiaWorld() vecmath.Matrix3 {

	if b.Behavior != Dynamic || b.SleepState == Sleeping {
		return vecmath.Matrix3{}
	}
	return b.InvInertiaWorld
}

// ApplyForceField adds a force already expressed per unit mass (e.g.
// gravity) to the body's force accumulator, scaled by its mass.
func (b *Body) ApplyForceField(accel vecmath.Vector3) {

	accel.MultiplyScalar(b.Mass)
	b.Force.Add(&accel)
}

// ApplyForce adds force, applied at worldPoint, to the body's force and
// torque accumulators. Has no effect on non-Dynamic bodies.
func (b *Body) ApplyForce(force, worldPoint vecmath.Vector3) {

	if b.Behavior != Dynamic {
		return
	}
	b.Force.Add(&force)

	var r vecmath.Vector3
	r.SubVectors(&worldPoint, &b.Frame.Position)
	var torque vecmath.Vector3
	torque.CrossVectors(&r, &force)
	b.Torque.Add(&torque)
}

// ApplyImpulse immediately changes the body's linear and angular
// velocity as if impulse had been applied at worldPoint for an
// infinitesimal time. Has no effect on non-Dynamic bodies.
func (b *Body) ApplyImpulse(impulse, worldPoint vecmath.Vector3) {

	if b.Behavior != Dynamic {
		return
	}
	dv := impulse
	dv.MultiplyScalar(b.InvMass)
	b.LinearVelocity.Add(&dv)

	var r vecmath.Vector3
	r.SubVectors(&worldPoint, &b.Frame.Position)
	var dw vecmath.Vector3
	dw.CrossVectors(&r, &impulse)
	dw.ApplyMatrix3(&b.InvInertiaWorld)
	b.AngularVelocity.Add(&dw)
}

// VelocityAt returns the world-space velocity of the material point of
// the body instantaneously coincident with worldPoint.
func (b *Body) VelocityAt(worldPoint vecmath.Vector3) vecmath.Vector3 {

	var r vecmath.Vector3
	r.SubVectors(&worldPoint, &b.Frame.Position)
	var v vecmath.Vector3
	v.CrossVectors(&b.AngularVelocity, &r)
	v.Add(&b.LinearVelocity)
	return v
}

// ClearForces zeroes the body's force and torque accumulators. Simulate
// calls this at the end of every step.
func (b *Body) ClearForces() {

	b.Force = vecmath.Vector3{}
	b.Torque = vecmath.Vector3{}
}

// ApplyDamping scales down linear and angular velocity to model air/fluid
// drag, following the corpus's (1-d)^dt convention.
func (b *Body) ApplyDamping(dt float32) {

	linear := vecmath.Pow(1-b.LinearDamping, dt)
	angular := vecmath.Pow(1-b.AngularDamping, dt)
	b.LinearVelocity.MultiplyScalar(linear)
	b.AngularVelocity.MultiplyScalar(angular)
}

// IntegrateVelocity applies the body's accumulated force and torque to
// its velocities: `v += F/m·dt`, `ω += InvInertiaWorld·τ·dt`. Static and
// sleeping bodies are skipped; Kinematic bodies never respond to force
// (their velocity is set directly by the caller).
func (b *Body) IntegrateVelocity(dt float32) {

	if b.Behavior != Dynamic || b.SleepState == Sleeping {
		return
	}

	dv := b.Force
	dv.MultiplyScalar(b.InvMass * dt)
	dv.Multiply(&b.LinearFactor)
	b.LinearVelocity.Add(&dv)

	dw := b.Torque
	dw.Multiply(&b.AngularFactor)
	dw.ApplyMatrix3(&b.InvInertiaWorld)
	dw.MultiplyScalar(dt)
	b.AngularVelocity.Add(&dw)
}

// IntegratePosition advances the body's pose by dt from its current
// velocities: `p += v·dt`, `q' = normalize(q + 0.5·dt·(ω⊗q))`. Static and
// sleeping bodies are skipped.
func (b *Body) IntegratePosition(dt float32, quatNormalizeFast bool) {

	if b.Behavior == Static || b.SleepState == Sleeping {
		return
	}

	dp := b.LinearVelocity
	dp.MultiplyScalar(dt)
	b.Frame.Position.Add(&dp)

	omega := b.AngularVelocity
	omega.Multiply(&b.AngularFactor)
	b.Frame.IntegrateOrientation(&omega, dt, quatNormalizeFast)

	b.UpdateInertiaWorld(false)
}

// Integrate advances the body's velocity then pose by dt in one call,
// the semi-implicit Euler step for callers that don't need the solver
// to run in between (e.g. a body simulated outside a World).
func (b *Body) Integrate(dt float32, quatNormalizeFast bool) {

	b.IntegrateVelocity(dt)
	b.IntegratePosition(dt, quatNormalizeFast)
}

// WakeUp sets the body's sleep state back to Awake, resetting its
// sleepy-time accumulator.
func (b *Body) WakeUp() {

	b.SleepState = Awake
	b.timeSleepy = 0
}

// Sleep forces the body directly into the Sleeping state.
func (b *Body) Sleep() {

	b.SleepState = Sleeping
	b.LinearVelocity = vecmath.Vector3{}
	b.AngularVelocity = vecmath.Vector3{}
}

// SleepTick advances the body's sleep-state machine by dt: a Dynamic
// body whose speed stays below SleepSpeedLimit for SleepTimeLimit
// seconds transitions Awake -> Sleepy -> Sleeping.
func (b *Body) SleepTick(dt float32) {

	if !b.AllowSleep || b.Behavior != Dynamic {
		return
	}
	speedSq := b.LinearVelocity.LengthSq() + b.AngularVelocity.LengthSq()
	limitSq := b.SleepSpeedLimit * b.SleepSpeedLimit

	if speedSq >= limitSq {
		b.WakeUp()
		return
	}

	switch b.SleepState {
	case Awake:
		b.SleepState = Sleepy
		b.timeSleepy = 0
	case Sleepy:
		b.timeSleepy += dt
		if b.timeSleepy > b.SleepTimeLimit {
			b.Sleep()
		}
	}
}

// BoundingBox returns the body's world-space AABB, the union of every
// attached shape's local bounding box offset by its instance transform
// and the body's own frame.
func (b *Body) BoundingBox() vecmath.Box3 {

	var box vecmath.Box3
	box.MakeEmpty()
	for _, inst := range b.Shapes {
		local := inst.Shape.BoundingBox()
		corners := [8]vecmath.Vector3{
			{X: local.Min.X, Y: local.Min.Y, Z: local.Min.Z},
			{X: local.Max.X, Y: local.Min.Y, Z: local.Min.Z},
			{X: local.Min.X, Y: local.Max.Y, Z: local.Min.Z},
			{X: local.Max.X, Y: local.Max.Y, Z: local.Min.Z},
			{X: local.Min.X, Y: local.Min.Y, Z: local.Max.Z},
			{X: local.Max.X, Y: local.Min.Y, Z: local.Max.Z},
			{X: local.Min.X, Y: local.Max.Y, Z: local.Max.Z},
			{X: local.Max.X, Y: local.Max.Y, Z: local.Max.Z},
		}
		for _, c := range corners {
			p := inst.Local.PointPlaceIn(&c)
			wp := b.Frame.PointPlaceIn(&p)
			box.ExpandByPoint(&wp)
		}
	}
	return box
}

// WorldTransform returns the world-space transform of shape instance i:
// the composition of the body's Frame with that instance's Local offset.
func (b *Body) WorldTransform(i int) vecmath.Transform3d {

	inst := b.Shapes[i]
	var out vecmath.Transform3d
	out.Position = b.Frame.PointPlaceIn(&inst.Local.Position)
	out.Quaternion.MultiplyQuaternions(&b.Frame.Quaternion, &inst.Local.Quaternion)
	return out
}

// CollidableWith reports whether a and b should ever be paired for
// collision: two Static bodies, or two Kinematic bodies, never collide.
func CollidableWith(a, b *Body) bool {

	if a.Behavior == Static && b.Behavior == Static {
		return false
	}
	if a.Behavior == Kinematic && b.Behavior == Kinematic {
		return false
	}
	return true
}
