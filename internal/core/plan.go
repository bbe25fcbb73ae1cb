package core

import "encoding/json"

// ActionType selects the shape of the answer.
type ActionType string

const (
	// ActionFilter returns the filtered list with no further shaping.
	ActionFilter ActionType = "filter"
	// ActionTopByAmount returns the n largest-amount matches.
	ActionTopByAmount ActionType = "top_by_amount"
)

// Action is the requested answer shape. N is only meaningful for
// ActionTopByAmount.
type Action struct {
	Type ActionType `json:"type"`
	N    int        `json:"n,omitempty"`
}

// FilterAction is the default action.
func FilterAction() Action {
	return Action{Type: ActionFilter}
}

// TopByAmount requests the n largest rounds by parsed amount.
func TopByAmount(n int) Action {
	return Action{Type: ActionTopByAmount, N: n}
}

// FilterPlan is a set of optional predicates. Zero-valued fields are
// unconstrained. Date bounds are inclusive; text filters match as
// case-insensitive substrings.
type FilterPlan struct {
	FromDate      Date
	ToDate        Date
	Company       string
	Round         string
	HQState       string
	HQCity        string
	SmallMolecule TriState
}

// filterPlanWire is the JSON shape of a FilterPlan: unset filters are
// omitted, dates are ISO strings. Key names match the original API.
type filterPlanWire struct {
	FromDate      string `json:"from_date,omitempty"`
	ToDate        string `json:"to_date,omitempty"`
	Company       string `json:"company,omitempty"`
	Round         string `json:"round,omitempty"`
	HQState       string `json:"hq_state,omitempty"`
	HQCity        string `json:"hq_city,omitempty"`
	SmallMolecule string `json:"small_molecule,omitempty"`
}

func (p FilterPlan) MarshalJSON() ([]byte, error) {
	return json.Marshal(filterPlanWire{
		FromDate:      p.FromDate.String(),
		ToDate:        p.ToDate.String(),
		Company:       p.Company,
		Round:         p.Round,
		HQState:       p.HQState,
		HQCity:        p.HQCity,
		SmallMolecule: string(p.SmallMolecule),
	})
}

func (p *FilterPlan) UnmarshalJSON(data []byte) error {
	var w filterPlanWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = FilterPlan{
		Company:       w.Company,
		Round:         w.Round,
		HQState:       w.HQState,
		HQCity:        w.HQCity,
		SmallMolecule: ParseTriState(w.SmallMolecule),
	}
	if d, ok := ParseDate(w.FromDate); ok {
		p.FromDate = d
	}
	if d, ok := ParseDate(w.ToDate); ok {
		p.ToDate = d
	}
	return nil
}

// QueryPlan is the interpreter's output: the original query plus the derived
// predicates and action. It is returned to callers for transparency.
type QueryPlan struct {
	Query   string     `json:"query"`
	Filters FilterPlan `json:"filters"`
	Action  Action     `json:"action"`
}
