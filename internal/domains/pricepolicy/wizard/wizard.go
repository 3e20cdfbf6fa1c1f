// Package wizard builds a price policy over three steps: basic information, the conditions
// of its type, and an optional scope. It creates a policy or edits an existing one.
package wizard

//go:generate go run go.uber.org/mock/mockgen -source=./wizard.go -destination=./mocks/wizard_mock.go -package=mocks

import (
	"context"
	"deportur/infras/otel"
	"deportur/internal/domains/pricepolicy/model"
	"deportur/internal/domains/pricepolicy/model/dto"
	"deportur/shared/constant"
	"deportur/shared/failure"
	"deportur/shared/session"
	"deportur/shared/validator"
	"fmt"

	"github.com/rs/zerolog/log"
)

const sessionKey = "price-policy-wizard"

type Step int

const (
	StepBasic Step = iota + 1
	StepConditions
	StepScope
)

func (s Step) Name() string {
	switch s {
	case StepBasic:
		return "basic"
	case StepConditions:
		return "conditions"
	case StepScope:
		return "scope"
	default:
		return "unknown"
	}
}

type State struct {
	Step       Step                  `json:"step"`
	EditingID  *int64                `json:"editing_id,omitempty"`
	Basic      dto.BasicRequest      `json:"basic"`
	Conditions dto.ConditionsRequest `json:"conditions"`
	Scope      dto.ScopeRequest      `json:"scope"`
}

func NewState() State {
	return State{Step: StepBasic}
}

// Gate validates step. Errors are 400 failures naming the field.
func (s *State) Gate(step Step) error {
	switch step {
	case StepBasic:
		return validator.ValidateStruct(&s.Basic) //nolint:wrapcheck
	case StepConditions:
		if err := validator.ValidateStruct(&s.Conditions); err != nil {
			return err //nolint:wrapcheck
		}

		return failure.BadRequest(s.Conditions.Check(model.Type(s.Basic.Type))) //nolint:wrapcheck
	case StepScope:
		return validator.ValidateStruct(&s.Scope) //nolint:wrapcheck
	}

	return nil
}

// Next advances when the current step is valid. The last step stays put.
func (s *State) Next() error {
	if err := s.Gate(s.Step); err != nil {
		return err
	}

	if s.Step < StepScope {
		s.Step++
	}

	return nil
}

func (s *State) Back() {
	if s.Step > StepBasic {
		s.Step--
	}
}

func (s *State) Complete() error {
	for step := StepBasic; step <= StepScope; step++ {
		if err := s.Gate(step); err != nil {
			return err
		}
	}

	return nil
}

// Request merges the steps. Conditions of other policy types are dropped when the request
// is normalized.
func (s *State) Request() dto.PricePolicyRequest {
	return dto.PricePolicyRequest{
		BasicRequest:      s.Basic,
		ConditionsRequest: s.Conditions,
		ScopeRequest:      s.Scope,
	}
}

// ConditionFields lists the condition fields shown for the chosen type.
func (s *State) ConditionFields() []string {
	policyType := model.Type(s.Basic.Type)

	switch {
	case policyType.UsesDateWindow():
		return []string{"fechaInicio", "fechaFin"}
	case policyType.UsesDayRange():
		return []string{"minDias", "maxDias"}
	case policyType.UsesLoyaltyTier():
		return []string{"nivelFidelizacion"}
	default:
		return []string{}
	}
}

type View struct {
	State
	StepName        string   `json:"step_name"`
	ConditionFields []string `json:"condition_fields"`
}

type Policies interface {
	Get(ctx context.Context, id int64) (model.PricePolicy, error)
	Create(ctx context.Context, req dto.PricePolicyRequest) (model.PricePolicy, error)
	Update(ctx context.Context, id int64, req dto.PricePolicyRequest) (model.PricePolicy, error)
}

type Wizard interface {
	Current(ctx context.Context) (View, error)
	Reset(ctx context.Context) error
	Edit(ctx context.Context, id int64) (View, error)
	SetBasic(ctx context.Context, req dto.BasicRequest) (View, error)
	SetConditions(ctx context.Context, req dto.ConditionsRequest) (View, error)
	SetScope(ctx context.Context, req dto.ScopeRequest) (View, error)
	Next(ctx context.Context) (View, error)
	Back(ctx context.Context) (View, error)
	Submit(ctx context.Context) (model.PricePolicy, error)
}

type wizardImpl struct {
	store    session.Store
	policies Policies
	otel     otel.Otel
}

func New(store session.Store, policies Policies, otel otel.Otel) Wizard {
	return &wizardImpl{
		store:    store,
		policies: policies,
		otel:     otel,
	}
}

func (w *wizardImpl) Current(ctx context.Context) (res View, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricePolicyWizard.Current")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, state, err := w.open(ctx)
	if err != nil {
		return res, err
	}

	return view(state), nil
}

func (w *wizardImpl) Reset(ctx context.Context) (err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricePolicyWizard.Reset")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, err := sessionID(ctx)
	if err != nil {
		return err
	}

	if err = w.store.Delete(ctx, sessionID, sessionKey); err != nil {
		log.Error().Err(err).Msg("failed to reset price policy wizard")

		return fmt.Errorf("failed to reset price policy wizard: %w", err)
	}

	return nil
}

// Edit starts the wizard over with the values of an existing policy.
func (w *wizardImpl) Edit(ctx context.Context, id int64) (res View, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricePolicyWizard.Edit")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, err := sessionID(ctx)
	if err != nil {
		return res, err
	}

	policy, err := w.policies.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to load price policy for editing: %w", err)
	}

	req := dto.FromModel(policy)
	state := NewState()
	state.EditingID = &policy.ID
	state.Basic = req.BasicRequest
	state.Conditions = req.ConditionsRequest
	state.Scope = req.ScopeRequest

	return w.save(ctx, sessionID, state)
}

func (w *wizardImpl) SetBasic(ctx context.Context, req dto.BasicRequest) (res View, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricePolicyWizard.SetBasic")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, state, err := w.open(ctx)
	if err != nil {
		return res, err
	}

	req.Normalize()
	state.Basic = req

	return w.save(ctx, sessionID, state)
}

func (w *wizardImpl) SetConditions(ctx context.Context, req dto.ConditionsRequest) (res View, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricePolicyWizard.SetConditions")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, state, err := w.open(ctx)
	if err != nil {
		return res, err
	}

	req.Normalize()
	state.Conditions = req

	return w.save(ctx, sessionID, state)
}

func (w *wizardImpl) SetScope(ctx context.Context, req dto.ScopeRequest) (res View, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricePolicyWizard.SetScope")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, state, err := w.open(ctx)
	if err != nil {
		return res, err
	}

	state.Scope = req

	return w.save(ctx, sessionID, state)
}

func (w *wizardImpl) Next(ctx context.Context) (res View, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricePolicyWizard.Next")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, state, err := w.open(ctx)
	if err != nil {
		return res, err
	}

	if err = state.Next(); err != nil {
		return res, err
	}

	return w.save(ctx, sessionID, state)
}

func (w *wizardImpl) Back(ctx context.Context) (res View, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricePolicyWizard.Back")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, state, err := w.open(ctx)
	if err != nil {
		return res, err
	}

	state.Back()

	return w.save(ctx, sessionID, state)
}

// Submit creates the policy, or updates it when the wizard was opened with Edit, and
// resets the wizard.
func (w *wizardImpl) Submit(ctx context.Context) (res model.PricePolicy, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricePolicyWizard.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, state, err := w.open(ctx)
	if err != nil {
		return res, err
	}

	if err = state.Complete(); err != nil {
		return res, err
	}

	if state.EditingID != nil {
		res, err = w.policies.Update(ctx, *state.EditingID, state.Request())
	} else {
		res, err = w.policies.Create(ctx, state.Request())
	}

	if err != nil {
		return res, fmt.Errorf("failed to submit price policy wizard: %w", err)
	}

	if err = w.store.Delete(ctx, sessionID, sessionKey); err != nil {
		log.Warn().Err(err).Msg("failed to reset price policy wizard after submit")
	}

	return res, nil
}

func (w *wizardImpl) open(ctx context.Context) (string, State, error) {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return constant.Empty, State{}, err
	}

	state := NewState()

	if _, err = w.store.Load(ctx, sessionID, sessionKey, &state); err != nil {
		log.Error().Err(err).Msg("failed to load price policy wizard")

		return constant.Empty, State{}, fmt.Errorf("failed to load price policy wizard: %w", err)
	}

	if state.Step < StepBasic || state.Step > StepScope {
		state.Step = StepBasic
	}

	return sessionID, state, nil
}

func (w *wizardImpl) save(ctx context.Context, sessionID string, state State) (View, error) {
	if err := w.store.Save(ctx, sessionID, sessionKey, state); err != nil {
		log.Error().Err(err).Msg("failed to save price policy wizard")

		return View{}, fmt.Errorf("failed to save price policy wizard: %w", err)
	}

	return view(state), nil
}

func sessionID(ctx context.Context) (string, error) {
	id, err := session.ID(ctx)
	if err != nil {
		return constant.Empty, failure.Unauthorized(err.Error()) //nolint:wrapcheck
	}

	return id, nil
}

func view(state State) View {
	return View{
		State:           state,
		StepName:        state.Step.Name(),
		ConditionFields: state.ConditionFields(),
	}
}
