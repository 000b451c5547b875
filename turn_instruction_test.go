package osm2ch

import "testing"

func TestDirectionModifierFromAngleBuckets(t *testing.T) {
	cases := []struct {
		angle float64
		want  DirectionModifier
	}{
		{0, UTurn},
		{20, SharpLeft},
		{60, Left},
		{100, SlightLeft},
		{180, Straight},
		{200, SlightRight},
		{250, Right},
		{300, SharpRight},
		{359, SharpRight},
	}
	for _, c := range cases {
		if got := directionModifierFromAngle(c.angle); got != c.want {
			t.Errorf("directionModifierFromAngle(%v) = %v, want %v", c.angle, got, c.want)
		}
	}
}

func TestMirrorModifierIsInvolution(t *testing.T) {
	for m := DirectionModifier(0); m < MaxDirectionModifier; m++ {
		mirrored := mirrorModifier[m]
		if back := mirrorModifier[mirrored]; back != m {
			t.Errorf("mirror(mirror(%v)) = %v, want %v", m, back, m)
		}
	}
	if mirrorModifier[Straight] != Straight {
		t.Errorf("Straight must mirror to itself")
	}
	if mirrorModifier[UTurn] != UTurn {
		t.Errorf("UTurn must mirror to itself")
	}
}

func TestTurnInstructionFromAngle(t *testing.T) {
	if got := turnInstructionFromAngle(0); got.Type != UTurnType || got.Modifier != UTurn {
		t.Errorf("angle 0 must classify as UTurnType/UTurn, got %+v", got)
	}
	if got := turnInstructionFromAngle(180); got.Type != Continue || got.Modifier != Straight {
		t.Errorf("angle 180 must classify as Continue/Straight, got %+v", got)
	}
	if got := turnInstructionFromAngle(60); got.Type != Turn || got.Modifier != Left {
		t.Errorf("angle 60 must classify as Turn/Left, got %+v", got)
	}
}
