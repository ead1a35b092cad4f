package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debate-crew/internal/domain/entity"
)

func TestBind_ReplacesPlaceholder(t *testing.T) {
	inputs := entity.RuntimeInputs{"motion": "X is good"}

	result, err := Bind("Motion: {motion}", inputs)

	require.NoError(t, err)
	assert.Equal(t, "Motion: X is good", result)
}

func TestBind_ProposeDescription(t *testing.T) {
	inputs := entity.RuntimeInputs{"motion": "AI will destroy more jobs than it creates"}

	result, err := Bind("You are proposing the motion: {motion}. Come up with a clear argument in favor of the motion.", inputs)

	require.NoError(t, err)
	assert.Equal(t, "You are proposing the motion: AI will destroy more jobs than it creates. Come up with a clear argument in favor of the motion.", result)
}

func TestBind_IdempotentOnResolvedString(t *testing.T) {
	resolved := "No placeholders here. Just text with a colon: and a period."

	result, err := Bind(resolved, entity.RuntimeInputs{})

	require.NoError(t, err)
	assert.Equal(t, resolved, result)
}

func TestBind_MultiplePlaceholders(t *testing.T) {
	inputs := entity.RuntimeInputs{"motion": "cats > dogs", "current_year": "2026"}

	result, err := Bind("In {current_year}, the motion is: {motion}", inputs)

	require.NoError(t, err)
	assert.Equal(t, "In 2026, the motion is: cats > dogs", result)
}

func TestBind_CollectsAllMissingPlaceholders(t *testing.T) {
	_, err := Bind("{motion} and {topic} and again {motion} plus {side}", entity.RuntimeInputs{})

	require.Error(t, err)

	var bindErr *BindError
	require.True(t, errors.As(err, &bindErr))
	assert.Equal(t, []string{"motion", "topic", "side"}, bindErr.Missing)
}

func TestBind_EscapedBraces(t *testing.T) {
	result, err := Bind("literal {{motion}} stays", entity.RuntimeInputs{})

	require.NoError(t, err)
	assert.Equal(t, "literal {motion} stays", result)
}

func TestBind_NonIdentifierBracesPassThrough(t *testing.T) {
	template := `respond with {"verdict": "..."} as JSON`

	result, err := Bind(template, entity.RuntimeInputs{})

	require.NoError(t, err)
	assert.Equal(t, template, result)
}

func TestBind_UnterminatedBraceIsLiteral(t *testing.T) {
	result, err := Bind("open { and nothing else", entity.RuntimeInputs{})

	require.NoError(t, err)
	assert.Equal(t, "open { and nothing else", result)
}
