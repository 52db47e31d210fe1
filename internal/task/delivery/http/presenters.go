package http

import (
	"math"
	"time"

	"github.com/gin-gonic/gin"

	"task-api/internal/task"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// --- Request DTOs ---

type createReq struct {
	Title   string  `json:"title"   binding:"required"`
	Content *string `json:"content" binding:"required"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:   r.Title,
		Content: *r.Content,
	}
}

// ---

type listReq struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// toInput clamps the page to 1 and turns page/limit into an offset window.
// An offset that would overflow saturates at math.MaxInt, which is past every stored row.
func (r listReq) toInput() task.ListTasksInput {
	page := r.Page
	if page < 1 {
		page = defaultPage
	}
	limit := r.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := math.MaxInt
	if page-1 <= math.MaxInt/limit {
		offset = (page - 1) * limit
	}
	return task.ListTasksInput{
		Limit:  limit,
		Offset: offset,
	}
}

// ---

// updateReq fields are pointers so an omitted field stays distinguishable from an empty one.
type updateReq struct {
	ID      string  `json:"-"` // populated from URI param
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (r updateReq) validate() error {
	if r.Title != nil && *r.Title == "" {
		return errEmptyTitle
	}
	return nil
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:      r.ID,
		Title:   task.FromPtr(r.Title),
		Content: task.FromPtr(r.Content),
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func newTaskResp(t task.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
	}
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) gin.H {
	return gin.H{"task": newTaskResp(out.Task)}
}

func (h *handler) newListResp(out task.ListTasksOutput) gin.H {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return gin.H{
		"result": len(tasks),
		"tasks":  tasks,
	}
}

func (h *handler) newDetailResp(out task.DetailTaskOutput) gin.H {
	return gin.H{"task": newTaskResp(out.Task)}
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) gin.H {
	return gin.H{"task": newTaskResp(out.Task)}
}
