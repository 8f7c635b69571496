package validators

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func TestValidateCreateTaskRequest(t *testing.T) {
	tests := []struct {
		name     string
		deadline string
		want     time.Time
		wantErr  bool
	}{
		{name: "offset", deadline: "2019-06-11T14:00:00+09:00", want: time.Date(2019, 6, 11, 5, 0, 0, 0, time.UTC)},
		{name: "zulu", deadline: "2021-01-11T03:34:50Z", want: time.Date(2021, 1, 11, 3, 34, 50, 0, time.UTC)},
		{name: "fractional seconds", deadline: "2021-01-11T03:34:50.5-02:00", want: time.Date(2021, 1, 11, 5, 34, 50, 500000000, time.UTC)},
		{name: "free text", deadline: "invalid format", wantErr: true},
		{name: "empty", deadline: "", wantErr: true},
		{name: "no offset", deadline: "2019-06-11T14:00:00", wantErr: true},
		{name: "date only", deadline: "2019-06-11", wantErr: true},
		{name: "space separator", deadline: "2019-06-11 14:00:00+09:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Deadline: tt.deadline, Title: "title", Memo: "memo"})
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidDateFormat)
				return
			}

			require.NoError(t, err)
			assert.True(t, task.Deadline.Equal(tt.want))
			assert.Equal(t, time.UTC, task.Deadline.Location())
			assert.Equal(t, "title", task.Title)
			assert.Equal(t, "memo", task.Memo)
		})
	}
}

func TestValidateCreateTaskRequest_AcceptsAnyTitleAndMemo(t *testing.T) {
	long := strings.Repeat("x", 10000)

	task, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Deadline: "2019-06-11T14:00:00+09:00", Title: "", Memo: long})
	require.NoError(t, err)
	assert.Empty(t, task.Title)
	assert.Equal(t, long, task.Memo)
}
