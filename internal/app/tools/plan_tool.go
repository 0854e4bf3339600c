package tools

import (
	"context"
	"fmt"

	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

// PlanTool writes the user's long-horizon plan (vision + daily system)
// through a domain.ProfileStore. The UI refreshes its plan card whenever the
// turn report says this tool fired.
type PlanTool struct {
	store domain.ProfileStore
}

func NewPlanTool(store domain.ProfileStore) *PlanTool {
	return &PlanTool{store: store}
}

func (t *PlanTool) Name() string {
	return "update_plan"
}

func (t *PlanTool) Spec() domain.ToolSpec {
	return domain.ToolSpec{
		Name:        t.Name(),
		Description: "Save or replace the user's 12-week vision and daily system.",
		Params: []domain.ToolParam{
			{Name: "vision", Type: domain.ParamString, Description: "The measurable 12-week outcome (e.g. 'Lose 6kg of fat in 12 weeks')", Required: true},
			{Name: "system", Type: domain.ParamString, Description: "The daily habit that drives the vision (e.g. 'Do 30 push-ups every day')", Required: true},
		},
	}
}

func (t *PlanTool) Call(ctx context.Context, tctx ToolContext, input map[string]any) (string, error) {
	vision := getString(input, "vision")
	system := getString(input, "system")
	if vision == "" || system == "" {
		return "", fmt.Errorf("update_plan: vision and system are required")
	}

	if err := t.store.SaveProfile(&domain.Profile{Vision: vision, System: system}); err != nil {
		return "", &domain.PersistError{Op: "profile save", Err: err}
	}

	return fmt.Sprintf("Plan updated: %s", vision), nil
}
