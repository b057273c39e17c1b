package ecs

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// RayHit is the nearest surface a probe ray reached.
type RayHit struct {
	Distance float64
	Normal   mgl64.Vec3
	Entity   Entity
}

// Prober answers raycasts against the static level geometry. A miss is a
// normal outcome and is reported as ok == false, never as an error.
type Prober interface {
	CastRay(origin, dir mgl64.Vec3, maxDistance float64, exclude Entity) (RayHit, bool)
}

type noProbe struct{}

func (noProbe) CastRay(mgl64.Vec3, mgl64.Vec3, float64, Entity) (RayHit, bool) {
	return RayHit{}, false
}

const rayEpsilon = 1e-9

type staticBox struct {
	entity Entity
	min    mgl64.Vec3
	max    mgl64.Vec3
}

// PhysicsWorld is the probe adapter over the level's static boxes. Chipmunk
// indexes each box by its top-down footprint (x, z); a query collects the
// footprints overlapping the ray's projected bounds and the exact hit is
// then resolved in 3D against each candidate.
type PhysicsWorld struct {
	space *cp.Space
	boxes map[*cp.Shape]staticBox
}

// NewPhysicsWorld creates an empty probe space.
func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		space: cp.NewSpace(),
		boxes: make(map[*cp.Shape]staticBox),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddBox registers an axis-aligned static box owned by e.
func (pw *PhysicsWorld) AddBox(e Entity, center, size mgl64.Vec3) {
	if pw == nil || pw.space == nil {
		return
	}
	half := size.Mul(0.5)
	box := staticBox{entity: e, min: center.Sub(half), max: center.Add(half)}
	bb := cp.BB{L: box.min.X(), B: box.min.Z(), R: box.max.X(), T: box.max.Z()}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	pw.space.AddShape(shape)
	pw.boxes[shape] = box
}

// RemoveOwner drops every box registered for e.
func (pw *PhysicsWorld) RemoveOwner(e Entity) {
	if pw == nil || pw.space == nil {
		return
	}
	for shape, box := range pw.boxes {
		if box.entity != e {
			continue
		}
		pw.space.RemoveShape(shape)
		delete(pw.boxes, shape)
	}
}

// Len reports how many boxes are registered.
func (pw *PhysicsWorld) Len() int {
	if pw == nil {
		return 0
	}
	return len(pw.boxes)
}

// CastRay implements Prober.
func (pw *PhysicsWorld) CastRay(origin, dir mgl64.Vec3, maxDistance float64, exclude Entity) (RayHit, bool) {
	if pw == nil || pw.space == nil || maxDistance <= 0 {
		return RayHit{}, false
	}
	l := dir.Len()
	if l < rayEpsilon {
		return RayHit{}, false
	}
	dir = dir.Mul(1 / l)
	end := origin.Add(dir.Mul(maxDistance))

	query := cp.BB{
		L: math.Min(origin.X(), end.X()) - rayEpsilon,
		B: math.Min(origin.Z(), end.Z()) - rayEpsilon,
		R: math.Max(origin.X(), end.X()) + rayEpsilon,
		T: math.Max(origin.Z(), end.Z()) + rayEpsilon,
	}

	best := RayHit{Distance: math.Inf(1)}
	found := false
	pw.space.BBQuery(query, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		box, ok := pw.boxes[shape]
		if !ok || (exclude.Valid() && box.entity == exclude) {
			return
		}
		t, normal, hit := rayBox(origin, dir, box.min, box.max)
		if !hit || t > maxDistance || t >= best.Distance {
			return
		}
		best = RayHit{Distance: t, Normal: normal, Entity: box.entity}
		found = true
	}, nil)

	if !found {
		return RayHit{}, false
	}
	return best, true
}

// rayBox is a slab test returning the entry distance along a unit dir and
// the normal of the face entered. A ray starting inside reports distance 0
// with the normal facing back along the ray.
func rayBox(origin, dir, min, max mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	enterAxis := -1
	enterSign := 0.0

	for axis := 0; axis < 3; axis++ {
		o, d := origin[axis], dir[axis]
		if math.Abs(d) < rayEpsilon {
			if o < min[axis] || o > max[axis] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		t1 := (min[axis] - o) / d
		t2 := (max[axis] - o) / d
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if t1 > tmin {
			tmin = t1
			enterAxis = axis
			enterSign = sign
		}
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, mgl64.Vec3{}, false
		}
	}

	if tmax < 0 {
		return 0, mgl64.Vec3{}, false
	}
	if tmin < 0 || enterAxis < 0 {
		return 0, dir.Mul(-1), true
	}
	var normal mgl64.Vec3
	normal[enterAxis] = enterSign
	return tmin, normal, true
}
