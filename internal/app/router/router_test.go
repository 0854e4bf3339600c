package router_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindflow-labs/mindflow-agent/internal/adapters/llm"
	"github.com/mindflow-labs/mindflow-agent/internal/app/personas"
	"github.com/mindflow-labs/mindflow-agent/internal/app/router"
	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

func history(text string) []*domain.Message {
	return []*domain.Message{{Role: domain.RoleUser, Text: text}}
}

func TestRouteParsesLabels(t *testing.T) {
	cases := map[string]personas.Persona{
		"STRATEGIST":                      personas.Strategist,
		"healer":                          personas.Healer,
		"The best fit is STARTER.":        personas.Starter,
		"ARCHITECT\n":                     personas.Architect,
		"I would route this to Architect": personas.Architect,
	}

	for reply, want := range cases {
		mock := llm.NewMockClient()
		mock.EnqueueText(reply)

		got, err := router.New(mock).Route(context.Background(), history("hi"))
		require.NoError(t, err)
		assert.Equal(t, want, got, "reply %q", reply)
	}
}

func TestRoutePriorityOrder(t *testing.T) {
	// When multiple labels appear, the fixed priority order decides.
	mock := llm.NewMockClient()
	mock.EnqueueText("HEALER or maybe STRATEGIST")

	got, err := router.New(mock).Route(context.Background(), history("hi"))
	require.NoError(t, err)
	assert.Equal(t, personas.Strategist, got)
}

func TestRouteDefaultsToHealer(t *testing.T) {
	mock := llm.NewMockClient()
	mock.EnqueueText("I cannot decide, sorry")

	got, err := router.New(mock).Route(context.Background(), history("hmm"))
	require.NoError(t, err)
	assert.Equal(t, personas.Healer, got)
}

func TestRouteStrictMode(t *testing.T) {
	mock := llm.NewMockClient()
	mock.EnqueueText("gibberish")

	r := router.New(mock)
	r.Strict = true

	_, err := r.Route(context.Background(), history("hmm"))
	require.Error(t, err)
	assert.ErrorIs(t, err, router.ErrUnrecognizedLabel)
}

func TestRoutePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockClient()
	mock.Fail(errors.New("quota exceeded"))

	_, err := router.New(mock).Route(context.Background(), history("hi"))
	require.Error(t, err)

	var provErr *domain.ProviderError
	assert.ErrorAs(t, err, &provErr)
}

func TestRouteBindsNoTools(t *testing.T) {
	mock := llm.NewMockClient()
	mock.EnqueueText("HEALER")

	_, err := router.New(mock).Route(context.Background(), history("hi"))
	require.NoError(t, err)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Nil(t, calls[0].Tools, "supervisor call must never bind tools")
}
