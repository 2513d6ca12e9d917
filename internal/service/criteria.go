package service

import (
	"strings"

	"propertyagent/internal/model"
	"propertyagent/internal/utils"
)

// requiredSlots maps each tool to the slots it needs before it may
// execute. ask_clarification is the mechanism for filling missing slots
// and is never blocked by them.
var requiredSlots = map[string][]string{
	model.ToolSearchProperties: {model.SlotAnchorName, model.SlotRadius, model.SlotAreaMin, model.SlotAreaMax},
	model.ToolGeocodeLocation:  {model.SlotAnchorName},
	model.ToolListSchools:      {},
	model.ToolAskClarification: {},
}

// KnownTool reports whether name is one of the fixed tool set.
func KnownTool(name string) bool {
	_, ok := requiredSlots[name]
	return ok
}

// Accumulator holds the search criteria of one conversation, merging
// partial drafts turn over turn. It validates presence only; value
// ranges are checked by the query builder at execution time.
type Accumulator struct {
	criteria model.SearchCriteria
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Merge applies the non-nil fields of draft onto the accumulated state
// and returns a copy of the result. Omitted fields never clobber values
// set on earlier turns; an explicit value always overwrites. Radius and
// area are normalized to miles and square feet using the draft's unit.
func (a *Accumulator) Merge(draft *model.CriteriaDraft) model.SearchCriteria {
	if draft == nil {
		return a.criteria
	}

	if draft.AnchorName != nil && strings.TrimSpace(*draft.AnchorName) != "" {
		name := strings.TrimSpace(*draft.AnchorName)
		a.criteria.AnchorName = &name
	}
	if draft.Radius != nil {
		miles := *draft.Radius
		if unitIs(draft.RadiusUnit, "km") {
			miles *= utils.KmToMiles
		}
		a.criteria.RadiusMiles = &miles
	}
	if draft.AreaMin != nil {
		sqft := *draft.AreaMin
		if unitIs(draft.AreaUnit, "sqm") {
			sqft *= utils.SqmToSqft
		}
		a.criteria.AreaMinSqft = &sqft
	}
	if draft.AreaMax != nil {
		sqft := *draft.AreaMax
		if unitIs(draft.AreaUnit, "sqm") {
			sqft *= utils.SqmToSqft
		}
		a.criteria.AreaMaxSqft = &sqft
	}
	if draft.PropertyType != nil && strings.TrimSpace(*draft.PropertyType) != "" {
		ptype := strings.ToLower(strings.TrimSpace(*draft.PropertyType))
		a.criteria.PropertyType = &ptype
	}

	return a.criteria
}

// Reset clears all accumulated criteria. Criteria are never partially
// cleared.
func (a *Accumulator) Reset() {
	a.criteria = model.SearchCriteria{}
}

// Criteria returns a copy of the current accumulated state.
func (a *Accumulator) Criteria() model.SearchCriteria {
	return a.criteria
}

// MissingFor returns the required slots of tool that are still unset,
// in clarification priority order. Unknown tools have no requirements;
// the router rejects them before slot checking.
func (a *Accumulator) MissingFor(tool string) []string {
	required, ok := requiredSlots[tool]
	if !ok {
		return nil
	}

	need := make(map[string]bool, len(required))
	for _, slot := range required {
		need[slot] = true
	}

	var missing []string
	for _, slot := range model.SlotPriority {
		if !need[slot] {
			continue
		}
		if !a.slotSet(slot) {
			missing = append(missing, slot)
		}
	}
	return missing
}

func (a *Accumulator) slotSet(slot string) bool {
	switch slot {
	case model.SlotAnchorName:
		return a.criteria.AnchorName != nil
	case model.SlotRadius:
		return a.criteria.RadiusMiles != nil
	case model.SlotAreaMin:
		return a.criteria.AreaMinSqft != nil
	case model.SlotAreaMax:
		return a.criteria.AreaMaxSqft != nil
	case model.SlotPropertyType:
		return a.criteria.PropertyType != nil
	}
	return false
}

func unitIs(unit *string, want string) bool {
	return unit != nil && strings.EqualFold(strings.TrimSpace(*unit), want)
}
