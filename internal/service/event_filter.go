package service

import (
	"encoding/json"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/monastery360/m360-api/internal/domain/model"
	apperrors "github.com/monastery360/m360-api/internal/errors"
)

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// EventFilterServiceOptions groups dependencies for EventFilterService.
type EventFilterServiceOptions struct {
	// Evaluator is optional; the go-jmespath implementation is the default.
	Evaluator JMESPathEvaluator
}

// EventFilterService filters cultural events with JMESPath expressions,
// used by admin content views to build ad hoc slices of the event list
// (e.g. `tickets_required && type == 'workshop'`).
type EventFilterService struct {
	jems JMESPathEvaluator
}

// NewEventFilterService constructs a new EventFilterService.
func NewEventFilterService(opts EventFilterServiceOptions) *EventFilterService {
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	return &EventFilterService{jems: jems}
}

// ValidateExpression checks a filter expression without evaluating it.
func (s *EventFilterService) ValidateExpression(expr string) error {
	if err := s.jems.Validate(expr); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeValidation, "invalid filter expression %q", expr)
	}
	return nil
}

// Filter returns the events for which the expression evaluates truthy.
// Events are evaluated in their JSON form so expressions address the same
// field names the API exposes. An empty expression keeps everything.
func (s *EventFilterService) Filter(events []*model.CulturalEvent, expr string) ([]*model.CulturalEvent, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return events, nil
	}
	if err := s.ValidateExpression(expr); err != nil {
		return nil, err
	}

	out := make([]*model.CulturalEvent, 0, len(events))
	for _, ev := range events {
		doc, err := toJSONDocument(ev)
		if err != nil {
			return nil, fmt.Errorf("encode event %s: %w", ev.ID, err)
		}
		result, err := s.jems.Evaluate(expr, doc)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.ErrCodeValidation, "evaluate filter expression %q", expr)
		}
		if isTruthy(result) {
			out = append(out, ev)
		}
	}
	return out, nil
}

// toJSONDocument round-trips a value through JSON so JMESPath sees plain
// maps and slices.
func toJSONDocument(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
