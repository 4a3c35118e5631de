package workout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// planGenerator drafts weekly plans using the OpenAI API.
type planGenerator struct {
	client openai.Client
	logger *slog.Logger
}

func newPlanGenerator(apiKey string, logger *slog.Logger) *planGenerator {
	if apiKey == "" {
		return nil
	}
	return &planGenerator{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		logger: logger,
	}
}

// Generate asks the model for a weekly plan constrained by a JSON schema so
// the response always decodes into plan days.
func (pg *planGenerator) Generate(ctx context.Context, req PlanRequest) ([]PlanDay, error) {
	days := req.DaysPerWeek
	if days < 1 {
		days = 3
	}
	groups := req.MuscleGroups
	if len(groups) == 0 {
		groups = defaultMuscleGroups
	}
	goal := req.Goal
	if goal == "" {
		goal = GoalAesthetics
	}

	prompt := fmt.Sprintf(`Draft a weekly gym plan for the goal %q with %d training days per week.
Rotate over these muscle groups: %s.
Assign each training day a weekday name (Monday through Sunday), one muscle group,
and 3 to 5 exercises with sets, reps per set and rest in seconds.
Strength work favors low reps and long rests, aesthetics favors moderate reps and short rests.`,
		goal, days, strings.Join(groups, ", "))

	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "weekly_plan",
		Description: openai.String("A weekly workout plan split over weekdays"),
		Schema:      planJSONSchema{},
		Strict:      openai.Bool(true),
	}

	chat, err := pg.client.Chat.Completions.New(ctx,
		openai.ChatCompletionNewParams{ //nolint:exhaustruct // only need to set a few fields.
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			},
			ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
				OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
					JSONSchema: schemaParam,
				},
			},
			Model: openai.ChatModelGPT4o2024_08_06,
		})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	var decoded struct {
		Days []PlanDay `json:"days"`
	}
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &decoded); err != nil {
		return nil, fmt.Errorf("parse plan response: %w", err)
	}
	if err := validatePlan(decoded.Days); err != nil {
		return nil, fmt.Errorf("validate plan: %w", err)
	}
	return decoded.Days, nil
}

// validatePlan rejects drafts the importer cannot place on the schedule.
func validatePlan(days []PlanDay) error {
	if len(days) == 0 {
		return errors.New("plan has no days")
	}
	weekdays := Weekdays()
	for _, day := range days {
		valid := false
		for _, name := range weekdays {
			if strings.EqualFold(day.Day, name) {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid weekday %q", day.Day)
		}
		if len(day.Exercises) == 0 {
			return fmt.Errorf("day %s has no exercises", day.Day)
		}
		for _, e := range day.Exercises {
			if e.Name == "" || e.Sets < 1 || e.Reps < 1 {
				return fmt.Errorf("day %s has an invalid exercise", day.Day)
			}
		}
	}
	return nil
}

// planJSONSchema emits the JSON schema constraining the model's response.
type planJSONSchema struct{}

func (planJSONSchema) MarshalJSON() ([]byte, error) {
	exercise := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"name", "sets", "reps", "rest"},
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"sets": map[string]any{"type": "integer"},
			"reps": map[string]any{"type": "integer"},
			"rest": map[string]any{"type": "integer"},
		},
	}
	day := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"day", "muscleGroup", "exercises"},
		"properties": map[string]any{
			"day":         map[string]any{"type": "string", "enum": Weekdays()},
			"muscleGroup": map[string]any{"type": "string"},
			"exercises":   map[string]any{"type": "array", "items": exercise},
		},
	}
	schema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"days"},
		"properties": map[string]any{
			"days": map[string]any{"type": "array", "items": day},
		},
	}
	return json.Marshal(schema)
}
