package dialogue

import (
	"guruvela-be/pkg/prediction"
	"guruvela-be/pkg/query"
)

// Flow is the branch a turn takes.
type Flow string

const (
	FlowPrediction Flow = "prediction"
	FlowKnowledge  Flow = "knowledge"
)

// Slot names a value the prediction flow may still be missing.
type Slot string

const (
	SlotRank     Slot = "rank"
	SlotCategory Slot = "category"
	SlotState    Slot = "state"
)

// Decision is the routing verdict for one turn.
type Decision struct {
	Flow     Flow
	Complete bool
	Missing  []Slot
}

// Route decides whether a turn is a prediction or a knowledge-base turn.
// Rank and category are always required; state only when quota depends on
// the candidate's home state.
func Route(slots query.SlotSet, eff Effective, quota string) Decision {
	var missing []Slot
	if eff.Rank == nil {
		missing = append(missing, SlotRank)
	}
	if eff.Category == nil {
		missing = append(missing, SlotCategory)
	}
	if eff.State == "" && prediction.NeedsState(quota, eff.ExamType) {
		missing = append(missing, SlotState)
	}

	complete := len(missing) == 0
	if slots.IsCollegeQuery || complete {
		return Decision{Flow: FlowPrediction, Complete: complete, Missing: missing}
	}
	return Decision{Flow: FlowKnowledge}
}
