package service

import (
	"context"
	"errors"

	"propertyagent/internal/model"
	"propertyagent/internal/utils"
)

// TurnState is the position of the router's per-turn state machine.
// Every turn starts at StateAwaitingTool and runs to StateDone with one
// fully resolved outcome; no router state survives the turn.
type TurnState string

const (
	StateAwaitingTool  TurnState = "AWAITING_TOOL"
	StateCheckingSlots TurnState = "CHECKING_SLOTS"
	StateResolving     TurnState = "RESOLVING"
	StateExecuting     TurnState = "EXECUTING"
	StateClarifying    TurnState = "CLARIFYING"
	StateDone          TurnState = "DONE"
)

// clarificationPrompts holds the question text asked for each missing
// slot, so a CLARIFY outcome is formatter-ready without re-querying.
var clarificationPrompts = map[string]string{
	model.SlotAnchorName:   "Which school do you want to search near?",
	model.SlotRadius:       "What search radius would you like, in miles?",
	model.SlotAreaMin:      "What minimum property area, in square feet?",
	model.SlotAreaMax:      "What maximum property area, in square feet?",
	model.SlotPropertyType: "Any preferred property type, e.g. residential or commercial?",
}

// ParcelStore is the read-only storage surface the router executes
// against. The Postgres repository implements it; tests substitute a
// fake.
type ParcelStore interface {
	SearchParcels(ctx context.Context, spec *model.QuerySpec) ([]model.ParcelHit, error)
	ListSchoolNames(ctx context.Context) ([]string, error)
}

// Router validates oracle-proposed tool calls against the accumulated
// criteria and either executes them or asks for the first missing slot.
// All cross-turn memory lives in the Accumulator; the router itself is
// stateless and safe to share across sessions.
type Router struct {
	resolver *Resolver
	builder  *QueryBuilder
	store    ParcelStore
}

// NewRouter creates a tool router.
func NewRouter(resolver *Resolver, builder *QueryBuilder, store ParcelStore) *Router {
	return &Router{
		resolver: resolver,
		builder:  builder,
		store:    store,
	}
}

// turn carries the in-flight data of a single dispatch through the
// state machine.
type turn struct {
	router   *Router
	ctx      context.Context
	acc      *Accumulator
	call     *model.ToolCall
	state    TurnState
	criteria model.SearchCriteria
	anchor   *model.School
	outcome  *model.ToolOutcome
}

// Dispatch runs one full turn: merge the draft, check slots, resolve
// the anchor when the tool needs one, execute, and package the outcome.
func (r *Router) Dispatch(ctx context.Context, acc *Accumulator, call *model.ToolCall) *model.ToolOutcome {
	t := &turn{
		router: r,
		ctx:    ctx,
		acc:    acc,
		call:   call,
		state:  StateAwaitingTool,
	}
	for t.state != StateDone {
		t.step()
	}
	return t.outcome
}

// step advances the turn by exactly one transition.
func (t *turn) step() {
	switch t.state {
	case StateAwaitingTool:
		t.receiveTool()
	case StateCheckingSlots:
		t.checkSlots()
	case StateClarifying:
		t.emitClarification()
	case StateResolving:
		t.resolveAnchor()
	case StateExecuting:
		t.execute()
	}
}

// receiveTool rejects unrecognized tools, otherwise merges this turn's
// draft so its values count toward slot completeness.
func (t *turn) receiveTool() {
	if t.call == nil || !KnownTool(t.call.Tool) {
		name := ""
		if t.call != nil {
			name = t.call.Tool
		}
		t.finish(&model.ToolOutcome{
			Kind:   model.OutcomeRejected,
			Reason: model.ReasonUnknownTool,
			Detail: name,
		})
		return
	}

	t.acc.Merge(&t.call.Arguments.CriteriaDraft)
	t.state = StateCheckingSlots
}

// checkSlots routes to clarification when required slots are missing,
// to resolution when the tool needs a named anchor, and straight to
// execution otherwise.
func (t *turn) checkSlots() {
	if t.call.Tool == model.ToolAskClarification {
		t.state = StateClarifying
		return
	}

	if missing := t.acc.MissingFor(t.call.Tool); len(missing) > 0 {
		t.state = StateClarifying
		return
	}

	t.criteria = t.acc.Criteria()
	if t.call.Tool == model.ToolSearchProperties || t.call.Tool == model.ToolGeocodeLocation {
		t.state = StateResolving
		return
	}
	t.state = StateExecuting
}

// emitClarification asks for exactly one missing slot, earliest in the
// priority order first. For ask_clarification the oracle may name the
// field and question itself; with nothing missing it falls back to the
// optional property type so the turn still yields a usable prompt.
func (t *turn) emitClarification() {
	slot := ""
	prompt := ""

	if t.call.Tool == model.ToolAskClarification {
		if f := t.call.Arguments.MissingField; f != nil {
			if _, ok := clarificationPrompts[*f]; ok {
				slot = *f
			}
		}
		if q := t.call.Arguments.Question; q != nil && *q != "" {
			prompt = *q
		}
		if slot == "" {
			if missing := t.acc.MissingFor(model.ToolSearchProperties); len(missing) > 0 {
				slot = missing[0]
			} else {
				slot = model.SlotPropertyType
			}
		}
	} else {
		slot = t.acc.MissingFor(t.call.Tool)[0]
	}

	if prompt == "" {
		prompt = clarificationPrompts[slot]
	}

	t.finish(&model.ToolOutcome{
		Kind:        model.OutcomeClarify,
		MissingSlot: slot,
		Prompt:      prompt,
	})
}

// resolveAnchor maps the accumulated anchor name to one catalog record.
// Failure is terminal for the turn: retrying the same text cannot
// succeed.
func (t *turn) resolveAnchor() {
	school, ok := t.router.resolver.Resolve(*t.criteria.AnchorName)
	if !ok {
		t.finish(&model.ToolOutcome{
			Kind:      model.OutcomeError,
			ErrorKind: model.ErrKindAnchorNotFound,
			Detail:    *t.criteria.AnchorName,
		})
		return
	}
	t.anchor = school
	t.state = StateExecuting
}

// execute runs the tool's query and packages the rows.
func (t *turn) execute() {
	switch t.call.Tool {
	case model.ToolSearchProperties:
		t.finish(t.searchParcels())
	case model.ToolGeocodeLocation:
		t.finish(&model.ToolOutcome{
			Kind:   model.OutcomeExecuted,
			Anchor: anchorPayload(t.anchor),
		})
	case model.ToolListSchools:
		names, err := t.router.store.ListSchoolNames(t.ctx)
		if err != nil {
			t.finish(storageError(err))
			return
		}
		t.finish(&model.ToolOutcome{
			Kind:    model.OutcomeExecuted,
			Schools: names,
		})
	}
}

// searchParcels builds and runs the spatial query for the resolved
// anchor.
func (t *turn) searchParcels() *model.ToolOutcome {
	spec, err := t.router.builder.Build(t.anchor, &t.criteria)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			return &model.ToolOutcome{
				Kind:      model.OutcomeError,
				ErrorKind: model.ErrKindValidation,
				Detail:    verr.Detail,
			}
		}
		return storageError(err)
	}

	rows, err := t.router.store.SearchParcels(t.ctx, spec)
	if err != nil {
		return storageError(err)
	}

	return &model.ToolOutcome{
		Kind:   model.OutcomeExecuted,
		Rows:   rows,
		Anchor: anchorPayload(t.anchor),
	}
}

func (t *turn) finish(outcome *model.ToolOutcome) {
	t.outcome = outcome
	t.state = StateDone
}

func anchorPayload(school *model.School) *model.ResolvedAnchor {
	return &model.ResolvedAnchor{
		Name: school.Name,
		Lat:  utils.RoundTo(school.Lat, 6),
		Lon:  utils.RoundTo(school.Lon, 6),
	}
}

func storageError(err error) *model.ToolOutcome {
	return &model.ToolOutcome{
		Kind:      model.OutcomeError,
		ErrorKind: model.ErrKindStorage,
		Detail:    err.Error(),
	}
}
