package flight

// Phase is the launch state of a body.
type Phase uint8

const (
	Resting         Phase = iota // Pinned at the ground reference, awaiting launch
	PoweredAscent                // Thrust is being supplied
	UnpoweredFlight              // Thrust has ended; coasting or falling
	Landed                       // Terminal
)

func (p Phase) String() string {
	switch p {
	case Resting:
		return "resting"
	case PoweredAscent:
		return "powered_ascent"
	case UnpoweredFlight:
		return "unpowered_flight"
	case Landed:
		return "landed"
	}
	return "unknown"
}

// Event is a transition emitted by a single integration step.
type Event uint8

const (
	EventNone    Event = iota
	EventBurnout       // First step with zero thrust
	EventLanded        // Ground contact; fires exactly once
)

func (e Event) String() string {
	switch e {
	case EventBurnout:
		return "burnout"
	case EventLanded:
		return "landed"
	}
	return "none"
}
