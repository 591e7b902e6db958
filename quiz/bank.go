// Package quiz holds the traffic sign question bank and session scoring.
package quiz

import (
	"math/rand"

	"github.com/pthm-cable/signwalk/components"
)

// Question is one multiple-choice question about a sign kind.
type Question struct {
	ID      string
	Kind    components.SignKind
	Prompt  string
	Options []string
	Answer  int // Index into Options
	Explain string
}

// Check reports whether the chosen option index is the right answer.
func (q Question) Check(choice int) bool {
	return choice == q.Answer
}

// bank is the built-in question set, at least two questions per sign kind.
var bank = []Question{
	{
		ID:     "stop-complete",
		Kind:   components.SignStop,
		Prompt: "What must you do at a stop sign?",
		Options: []string{
			"Slow down and keep rolling",
			"Stop completely, then go when the way is clear",
			"Stop only if other traffic is coming",
			"Sound the horn and drive through",
		},
		Answer:  1,
		Explain: "A stop sign always requires a complete stop, even when the road looks empty.",
	},
	{
		ID:      "stop-shape",
		Kind:    components.SignStop,
		Prompt:  "Which shape is used only for stop signs?",
		Options: []string{"Circle", "Triangle", "Octagon", "Square"},
		Answer:  2,
		Explain: "The octagon is reserved for stop signs so it can be recognized from any angle, even from behind.",
	},
	{
		ID:     "yield-meaning",
		Kind:   components.SignYield,
		Prompt: "What does a yield sign ask you to do?",
		Options: []string{
			"Always come to a full stop",
			"Let crossing traffic go first",
			"Speed up and merge quickly",
			"Turn back the way you came",
		},
		Answer:  1,
		Explain: "Yield means slow down and give way. You only stop when someone else is coming.",
	},
	{
		ID:     "yield-empty",
		Kind:   components.SignYield,
		Prompt: "You reach a yield sign and nobody is around. You should...",
		Options: []string{
			"Stop and wait anyway",
			"Continue carefully without stopping",
			"Wait for a green light",
			"Reverse out of the junction",
		},
		Answer:  1,
		Explain: "Unlike a stop sign, a yield sign lets you continue when the way is clear.",
	},
	{
		ID:     "limit-maximum",
		Kind:   components.SignSpeedLimit,
		Prompt: "The number on a speed limit sign is...",
		Options: []string{
			"The minimum speed allowed",
			"A recommendation",
			"The highest speed allowed",
			"The average traffic speed",
		},
		Answer:  2,
		Explain: "A speed limit is a hard ceiling. In bad weather the safe speed can be much lower.",
	},
	{
		ID:     "limit-slower",
		Kind:   components.SignSpeedLimit,
		Prompt: "Driving slower than the posted limit is...",
		Options: []string{
			"Always against the rules",
			"Fine when conditions call for it",
			"Only allowed at night",
			"Only allowed for trucks",
		},
		Answer:  1,
		Explain: "The limit caps your speed. Rain, fog, or crowds can make a slower speed the right one.",
	},
	{
		ID:     "crosswalk-warning",
		Kind:   components.SignCrosswalk,
		Prompt: "A crosswalk sign warns that...",
		Options: []string{
			"Pedestrians may be crossing ahead",
			"The road is closed",
			"Overtaking is forbidden",
			"Parking is not allowed",
		},
		Answer:  0,
		Explain: "The sign marks a place where people on foot cross the road, so approach ready to stop.",
	},
	{
		ID:     "crosswalk-waiting",
		Kind:   components.SignCrosswalk,
		Prompt: "Someone is waiting at a marked crosswalk. Drivers must...",
		Options: []string{
			"Sound the horn",
			"Pass quickly before they step out",
			"Let them cross",
			"Flash the headlights and continue",
		},
		Answer:  2,
		Explain: "Pedestrians at a marked crossing have priority. Drivers stop and let them over.",
	},
	{
		ID:     "school-children",
		Kind:   components.SignSchoolZone,
		Prompt: "In a school zone you should expect...",
		Options: []string{
			"Heavy trucks",
			"Children near the road",
			"No pedestrians at all",
			"A higher speed limit",
		},
		Answer:  1,
		Explain: "Children are unpredictable near roads, so school zones demand extra care and low speed.",
	},
	{
		ID:     "school-hours",
		Kind:   components.SignSchoolZone,
		Prompt: "Reduced school zone limits usually apply...",
		Options: []string{
			"Only on weekends",
			"Around school hours",
			"Never",
			"Only during summer break",
		},
		Answer:  1,
		Explain: "The lower limit protects children when they actually travel to and from school.",
	},
	{
		ID:     "noentry-meaning",
		Kind:   components.SignNoEntry,
		Prompt: "A no entry sign means...",
		Options: []string{
			"Parking is forbidden",
			"You may not drive in",
			"The road narrows ahead",
			"Cyclists only",
		},
		Answer:  1,
		Explain: "No entry closes the road in your direction. Walking in may be fine, driving in is not.",
	},
	{
		ID:     "noentry-oneway",
		Kind:   components.SignNoEntry,
		Prompt: "No entry signs often stand at...",
		Options: []string{
			"The wrong end of a one-way street",
			"Playground gates",
			"Bus stops",
			"Bridges",
		},
		Answer:  0,
		Explain: "The far end of a one-way street is closed to oncoming cars, and this sign is how it is marked.",
	},
	{
		ID:     "mainroad-priority",
		Kind:   components.SignMainRoad,
		Prompt: "On a main road marked with the priority sign, you...",
		Options: []string{
			"Must yield at every crossing",
			"Have priority over joining traffic",
			"May not turn left",
			"Must stop at each intersection",
		},
		Answer:  1,
		Explain: "The diamond marks a priority road. Traffic joining from side streets gives way to you.",
	},
	{
		ID:     "mainroad-crossing",
		Kind:   components.SignMainRoad,
		Prompt: "You see the main road sign. Crossing traffic...",
		Options: []string{
			"Has priority over you",
			"Must give way to you",
			"Is forbidden",
			"Is always lighter",
		},
		Answer:  1,
		Explain: "Priority flows along the main road, so side road traffic waits for you.",
	},
	{
		ID:     "deadend-meaning",
		Kind:   components.SignDeadEnd,
		Prompt: "A dead end sign means the street...",
		Options: []string{
			"Ends ahead with no through exit",
			"Becomes one-way",
			"Is closed for repairs",
			"Has a speed bump",
		},
		Answer:  0,
		Explain: "The street goes nowhere for vehicles. It is useful to know before you turn in.",
	},
	{
		ID:     "deadend-leaving",
		Kind:   components.SignDeadEnd,
		Prompt: "Driving into a dead end street, you should expect to...",
		Options: []string{
			"Find a highway ramp",
			"Turn around to leave",
			"Cross a bridge",
			"Merge with through traffic",
		},
		Answer:  1,
		Explain: "With no through exit, the only way out is back the way you came.",
	},
}

// Questions returns the bank entries for one sign kind.
func Questions(kind components.SignKind) []Question {
	var out []Question
	for _, q := range bank {
		if q.Kind == kind {
			out = append(out, q)
		}
	}
	return out
}

// PickQuestion draws a random question for the kind. ok is false when the
// bank has no entry for it.
func PickQuestion(rng *rand.Rand, kind components.SignKind) (Question, bool) {
	pool := Questions(kind)
	if len(pool) == 0 {
		return Question{}, false
	}
	return pool[rng.Intn(len(pool))], true
}
