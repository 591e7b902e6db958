package camera

import (
	"math"
	"testing"
)

func TestLookYawWraps(t *testing.T) {
	cam := NewFirstPerson(0, 2, 0)

	// Spin far past a full turn in both directions
	cam.Look(10000, 0)
	if cam.Yaw < 0 || cam.Yaw >= 2*math.Pi {
		t.Errorf("yaw %f escaped [0, 2*pi)", cam.Yaw)
	}

	cam.Look(-30000, 0)
	if cam.Yaw < 0 || cam.Yaw >= 2*math.Pi {
		t.Errorf("yaw %f escaped [0, 2*pi) after reverse spin", cam.Yaw)
	}
}

func TestLookPitchClamps(t *testing.T) {
	cam := NewFirstPerson(0, 2, 0)

	cam.Look(0, -100000) // Mouse far up
	if cam.Pitch != maxPitch {
		t.Errorf("pitch %f, want clamp at %f", cam.Pitch, maxPitch)
	}

	cam.Look(0, 100000) // Mouse far down
	if cam.Pitch != minPitch {
		t.Errorf("pitch %f, want clamp at %f", cam.Pitch, minPitch)
	}
}

func TestForwardRightBasis(t *testing.T) {
	cam := NewFirstPerson(0, 2, 0)

	angles := []struct{ yaw, pitch float32 }{
		{0, 0},
		{math.Pi / 3, 0.4},
		{math.Pi, -0.7},
		{5.1, 1.2},
	}

	for _, a := range angles {
		cam.Yaw, cam.Pitch = a.yaw, a.pitch

		fx, fy, fz := cam.Forward()
		rx, ry, rz := cam.Right()

		fLen := math.Sqrt(float64(fx*fx + fy*fy + fz*fz))
		if math.Abs(fLen-1) > 0.001 {
			t.Errorf("yaw=%f pitch=%f: |forward| = %f, want 1", a.yaw, a.pitch, fLen)
		}
		rLen := math.Sqrt(float64(rx*rx + ry*ry + rz*rz))
		if math.Abs(rLen-1) > 0.001 {
			t.Errorf("yaw=%f pitch=%f: |right| = %f, want 1", a.yaw, a.pitch, rLen)
		}

		dot := float64(fx*rx + fy*ry + fz*rz)
		if math.Abs(dot) > 0.001 {
			t.Errorf("yaw=%f pitch=%f: forward.right = %f, want 0", a.yaw, a.pitch, dot)
		}
		if ry != 0 {
			t.Errorf("right has vertical component %f", ry)
		}
	}
}

func TestForwardAtCardinalYaws(t *testing.T) {
	cam := NewFirstPerson(0, 2, 0)

	// Yaw 0 faces +z, yaw pi/2 faces +x
	cam.Yaw = 0
	fx, _, fz := cam.Forward()
	if math.Abs(float64(fx)) > 0.001 || math.Abs(float64(fz-1)) > 0.001 {
		t.Errorf("yaw 0 forward = (%f, %f), want (0, 1)", fx, fz)
	}

	cam.Yaw = math.Pi / 2
	fx, _, fz = cam.Forward()
	if math.Abs(float64(fx-1)) > 0.001 || math.Abs(float64(fz)) > 0.001 {
		t.Errorf("yaw pi/2 forward = (%f, %f), want (1, 0)", fx, fz)
	}
}

func TestTarget(t *testing.T) {
	cam := NewFirstPerson(3, 2, -4)
	cam.Yaw = 1.1
	cam.Pitch = -0.2

	fx, fy, fz := cam.Forward()
	tx, ty, tz := cam.Target()

	if tx != cam.X+fx || ty != cam.Y+fy || tz != cam.Z+fz {
		t.Errorf("target (%f,%f,%f) is not eye plus forward", tx, ty, tz)
	}
}

func TestMinimapProjectCorners(t *testing.T) {
	m := NewMinimap(1000, 20, 200, 150)

	cases := []struct {
		name   string
		wx, wz float32
		sx, sy float64
	}{
		{"center", 0, 0, 1100, 120},
		{"north-west corner", -150, -150, 1000, 20},
		{"south-east corner", 150, 150, 1200, 220},
	}

	for _, tc := range cases {
		sx, sy := m.Project(tc.wx, tc.wz)
		if math.Abs(float64(sx)-tc.sx) > 0.01 || math.Abs(float64(sy)-tc.sy) > 0.01 {
			t.Errorf("%s projects to (%f, %f), want (%.0f, %.0f)", tc.name, sx, sy, tc.sx, tc.sy)
		}
	}
}

func TestMinimapRoundtrip(t *testing.T) {
	m := NewMinimap(1000, 20, 200, 150)

	points := []struct{ wx, wz float32 }{
		{0, 0},
		{-120, 80},
		{149, -149},
	}

	for _, p := range points {
		sx, sy := m.Project(p.wx, p.wz)
		wx, wz := m.Unproject(sx, sy)
		if math.Abs(float64(wx-p.wx)) > 0.01 || math.Abs(float64(wz-p.wz)) > 0.01 {
			t.Errorf("roundtrip (%f,%f) -> (%f,%f)", p.wx, p.wz, wx, wz)
		}
	}
}

func TestMinimapScaleAndBounds(t *testing.T) {
	m := NewMinimap(0, 0, 200, 150)

	// 300 world units span the full 200 pixels
	if got := m.ScaleLen(300); math.Abs(float64(got-200)) > 0.01 {
		t.Errorf("ScaleLen(300) = %f, want 200", got)
	}

	if !m.OnMap(150, -150, 0) {
		t.Error("corner point reported off map")
	}
	if m.OnMap(151, 0, 0) {
		t.Error("point past the rim reported on map")
	}
	if !m.OnMap(155, 0, 10) {
		t.Error("padded point near the rim reported off map")
	}
}
