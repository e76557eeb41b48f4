package assessment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerJSONShape(t *testing.T) {
	// The durable slot stores choice answers as numbers and text
	// answers as strings; older data must keep loading.
	set := AnswerSet{
		"q1":  ChoiceAnswer(2),
		"q30": TextAnswer("rough week"),
	}

	raw, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `{"q1":2,"q30":"rough week"}`, string(raw))

	var decoded AnswerSet
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, set, decoded)
}

func TestAnswerUnmarshalRejectsOtherShapes(t *testing.T) {
	var a Answer
	err := json.Unmarshal([]byte(`{"nested":true}`), &a)
	require.Error(t, err)
}

func TestAnswerEmpty(t *testing.T) {
	assert.True(t, Answer{}.Empty())
	assert.True(t, TextAnswer("").Empty())
	assert.False(t, TextAnswer("note").Empty())
	// Index 0 is a real selection.
	assert.False(t, ChoiceAnswer(0).Empty())
}
