package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "task-tracker.com/task-tracker/internal/models"
)

func TestNewTaskResponse_RendersInLocation(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	task := model.Task{
		ID:       7,
		Deadline: time.Date(2019, 6, 11, 5, 0, 0, 0, time.UTC),
		Title:    "title",
		Memo:     "memo",
	}

	resp := NewTaskResponse(task, jst)

	assert.Equal(t, "2019-06-11T14:00:00+09:00", resp.Deadline)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2019-06-11T05:00:00Z", NewTaskResponse(task, time.UTC).Deadline)

	task.Deadline = time.Date(2019, 6, 11, 5, 0, 0, 500000000, time.UTC)
	assert.Equal(t, "2019-06-11T14:00:00.5+09:00", NewTaskResponse(task, jst).Deadline)
}

func TestNewTaskListResponse_EmptyIsArray(t *testing.T) {
	body, err := json.Marshal(NewTaskListResponse(nil, time.UTC))
	require.NoError(t, err)
	assert.JSONEq(t, `{"events":[]}`, string(body))
}

func TestEnvelopes(t *testing.T) {
	body, err := json.Marshal(NewCreateTaskResponse(3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","message":"registered","id":3}`, string(body))

	body, err = json.Marshal(NewFailureResponse("invalid date format"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"failure","message":"invalid date format"}`, string(body))
}
