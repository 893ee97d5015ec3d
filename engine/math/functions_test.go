package math

import "testing"

const tolerance = 1e-4

func TestMat4Mul(t *testing.T) {
	translate := NewMat4Translation(NewVec3(1, 2, 3))
	scale := NewMat4Scale(NewVec3(2, 2, 2))

	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"identity", NewMat4Identity(), NewVec3(4, 5, 6), NewVec3(4, 5, 6)},
		{"translate", translate, NewVec3(1, 1, 1), NewVec3(2, 3, 4)},
		{"scale then translate", scale.Mul(translate), NewVec3(1, 1, 1), NewVec3(3, 4, 5)},
		{"translate then scale", translate.Mul(scale), NewVec3(1, 1, 1), NewVec3(4, 6, 8)},
		{"rotate z quarter turn", NewMat4EulerZ(K_HALF_PI), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Transform(tt.m)
			if !got.Compare(tt.want, tolerance) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMat4EulerZFullTurn(t *testing.T) {
	if got := NewMat4EulerZ(DegToRad(360)); !got.Compare(NewMat4Identity(), tolerance) {
		t.Errorf("full turn should be identity, got %v", got.Data)
	}
}

func TestMat4Inverse(t *testing.T) {
	m := NewMat4Scale(NewVec3(2, 3, 4)).
		Mul(NewMat4EulerY(0.7)).
		Mul(NewMat4Translation(NewVec3(5, -1, 2)))

	if got := m.Inverse().Mul(m); !got.Compare(NewMat4Identity(), tolerance) {
		t.Errorf("inverse(m)*m = %v", got.Data)
	}
	if got := m.Mul(m.Inverse()); !got.Compare(NewMat4Identity(), tolerance) {
		t.Errorf("m*inverse(m) = %v", got.Data)
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	view := NewMat4LookAt(eye, NewVec3Zero(), NewVec3Up())

	if got := eye.Transform(view); !got.Compare(NewVec3Zero(), tolerance) {
		t.Errorf("eye should map to the origin, got %+v", got)
	}
	// The target sits in front of the camera, down the negative z axis.
	if got := NewVec3Zero().Transform(view); !got.Compare(NewVec3(0, 0, -5), tolerance) {
		t.Errorf("target should map to (0,0,-5), got %+v", got)
	}
}

func TestMat4Orthographic(t *testing.T) {
	proj := NewMat4Orthographic(0, 800, 600, 0, -1, 1)

	tests := []struct {
		in, want Vec3
	}{
		{NewVec3(0, 0, 0), NewVec3(-1, 1, 0)},
		{NewVec3(800, 600, 0), NewVec3(1, -1, 0)},
		{NewVec3(400, 300, 0), NewVec3(0, 0, 0)},
	}
	for _, tt := range tests {
		if got := tt.in.Transform(proj); !got.Compare(tt.want, tolerance) {
			t.Errorf("%+v: got %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestQuaternionToMat4MatchesEuler(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3(0, 0, 1), 0.5, true)
	if got, want := q.ToMat4(), NewMat4EulerZ(0.5); !got.Compare(want, tolerance) {
		t.Errorf("got %v, want %v", got.Data, want.Data)
	}
}

func TestTransformLocal(t *testing.T) {
	tr := NewTransformFromPosition(NewVec3(10, 0, 0))
	tr.SetScale(NewVec3(2, 2, 2))

	if got := NewVec3(1, 0, 0).Transform(tr.Local()); !got.Compare(NewVec3(12, 0, 0), tolerance) {
		t.Errorf("got %+v", got)
	}

	parent := NewTransformFromPosition(NewVec3(0, 5, 0))
	tr.Parent = parent
	if got := NewVec3Zero().Transform(tr.World()); !got.Compare(NewVec3(10, 5, 0), tolerance) {
		t.Errorf("world: got %+v", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("clamp out of range")
	}
	if got := Lerp[float32](2, 4, 0.5); got != 3 {
		t.Errorf("lerp = %v", got)
	}
}
