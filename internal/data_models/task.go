package dto

import (
	"time"

	model "task-tracker.com/task-tracker/internal/models"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"

	MessageRegistered = "registered"
)

type CreateTaskRequest struct {
	Deadline string `json:"deadline"`
	Title    string `json:"title"`
	Memo     string `json:"memo"`
}

type CreateTaskResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type FailureResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type TaskResponse struct {
	ID       int64  `json:"id"`
	Deadline string `json:"deadline"`
	Title    string `json:"title"`
	Memo     string `json:"memo"`
}

type TaskListResponse struct {
	Events []TaskResponse `json:"events"`
}

func NewCreateTaskResponse(id int64) CreateTaskResponse {
	return CreateTaskResponse{
		Status:  StatusSuccess,
		Message: MessageRegistered,
		ID:      id,
	}
}

func NewFailureResponse(message string) FailureResponse {
	return FailureResponse{
		Status:  StatusFailure,
		Message: message,
	}
}

// NewTaskResponse renders the stored UTC deadline in loc, keeping any
// fractional seconds.
func NewTaskResponse(task model.Task, loc *time.Location) TaskResponse {
	return TaskResponse{
		ID:       task.ID,
		Deadline: task.Deadline.In(loc).Format(time.RFC3339Nano),
		Title:    task.Title,
		Memo:     task.Memo,
	}
}

func NewTaskListResponse(tasks []model.Task, loc *time.Location) TaskListResponse {
	events := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		events = append(events, NewTaskResponse(task, loc))
	}
	return TaskListResponse{Events: events}
}
