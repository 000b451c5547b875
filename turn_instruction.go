package osm2ch

// DirectionModifier is a closed set of turn directions. Matches the
// classic eight-way guidance vocabulary (the instruction "straight" is a
// modifier, not a ninth direction-less case).
type DirectionModifier uint8

const (
	UTurn = DirectionModifier(iota)
	SharpLeft
	Left
	SlightLeft
	Straight
	SlightRight
	Right
	SharpRight
	// MaxDirectionModifier is the count of DirectionModifier values, not a
	// usable value itself. The mirror table's length is checked against it
	// at package init, per the arithmetic identity the analyzer requires.
	MaxDirectionModifier
)

func (d DirectionModifier) String() string {
	return [...]string{"uturn", "sharp left", "left", "slight left", "straight", "slight right", "right", "sharp right"}[d]
}

// mirrorModifier reflects a direction modifier through the left/right
// involution. Straight and U-turn map to themselves.
var mirrorModifier = [...]DirectionModifier{
	UTurn:       UTurn,
	SharpLeft:   SharpRight,
	Left:        Right,
	SlightLeft:  SlightRight,
	Straight:    Straight,
	SlightRight: SlightLeft,
	Right:       Left,
	SharpRight:  SharpLeft,
}

func init() {
	if len(mirrorModifier) != int(MaxDirectionModifier) {
		panic("mirrorModifier table does not cover every DirectionModifier")
	}
}

// directionModifierFromAngle buckets a [0,360) angle (clockwise from the
// reverse of the entry bearing, per IntersectionViewData's convention)
// into a DirectionModifier. Bucket boundaries follow the teacher's own
// angle-bucketing in its movement-classification code, widened from four
// buckets (thru/right/left/uturn) to eight.
func directionModifierFromAngle(angle float64) DirectionModifier {
	switch {
	case angle < angleEpsilon:
		return UTurn
	case angle < 45:
		return SharpLeft
	case angle < 90:
		return Left
	case angle < 135:
		return SlightLeft
	case angle < 180+angleEpsilon:
		return Straight
	case angle < 225:
		return SlightRight
	case angle < 270:
		return Right
	default:
		return SharpRight
	}
}

// TurnType classifies a ConnectedRoad's maneuver coarsely. Instruction
// *text* generation is explicitly out of scope; this is only the
// classification tag a downstream text generator would switch on.
type TurnType uint8

const (
	NoTurn = TurnType(iota)
	Turn
	UTurnType
	Continue
)

func (t TurnType) String() string {
	return [...]string{"no_turn", "turn", "uturn", "continue"}[t]
}

// TurnInstruction pairs a coarse turn type with its direction modifier.
type TurnInstruction struct {
	Type     TurnType
	Modifier DirectionModifier
}

func turnInstructionFromAngle(angle float64) TurnInstruction {
	modifier := directionModifierFromAngle(angle)
	switch modifier {
	case UTurn:
		return TurnInstruction{Type: UTurnType, Modifier: UTurn}
	case Straight:
		return TurnInstruction{Type: Continue, Modifier: Straight}
	default:
		return TurnInstruction{Type: Turn, Modifier: modifier}
	}
}
