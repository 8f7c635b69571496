package validators

import (
	"time"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

// ValidateCreateTaskRequest parses the deadline as RFC 3339, which requires an
// explicit offset or Z, and builds the insert payload with the deadline in UTC.
// Title and memo are taken as-is.
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) (model.NewTask, error) {
	deadline, err := time.Parse(time.RFC3339, r.Deadline)
	if err != nil {
		return model.NewTask{}, apperrors.ErrInvalidDateFormat
	}

	return model.NewTask{
		Deadline: deadline.UTC(),
		Title:    r.Title,
		Memo:     r.Memo,
	}, nil
}
