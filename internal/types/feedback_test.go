package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFeedbackRequest_Validate(t *testing.T) {
	score := 0.5
	valid := RecordFeedbackRequest{MatchID: "some-id", FeedbackScore: &score}
	assert.NoError(t, valid.Validate())

	missingID := RecordFeedbackRequest{FeedbackScore: &score}
	assert.Error(t, missingID.Validate())

	missingScore := RecordFeedbackRequest{MatchID: "some-id"}
	assert.Error(t, missingScore.Validate())
}

func TestRecordFeedbackRequest_ZeroScoreIsPresent(t *testing.T) {
	// A client sending feedback_score: 0 must validate; the pointer keeps the
	// explicit zero distinguishable from an omitted field.
	var req RecordFeedbackRequest
	require.NoError(t, json.Unmarshal([]byte(`{"match_id": "m1", "feedback_score": 0}`), &req))
	require.NotNil(t, req.FeedbackScore)
	assert.Equal(t, 0.0, *req.FeedbackScore)
	assert.NoError(t, req.Validate())

	var omitted RecordFeedbackRequest
	require.NoError(t, json.Unmarshal([]byte(`{"match_id": "m1"}`), &omitted))
	assert.Nil(t, omitted.FeedbackScore)
	assert.Error(t, omitted.Validate())
}
