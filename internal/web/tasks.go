package web

import (
	"net/http"

	echo "github.com/labstack/echo/v4"

	"github.com/bhr/crm-console/internal/model"
	"github.com/bhr/crm-console/internal/platform"
)

var taskStatuses = []model.TaskStatus{
	model.StatusOpen,
	model.StatusInProgress,
	model.StatusOnHold,
	model.StatusBlocked,
	model.StatusPending,
	model.StatusCompleted,
	model.StatusCancelled,
	model.StatusArchived,
}

type taskListData struct {
	page
	Tasks    []model.Task
	Statuses []model.TaskStatus
	Sort     string
	Dir      string
}

func (h *handlers) taskListPage(c echo.Context) error {
	return h.renderTaskList(c, http.StatusOK, "")
}

func (h *handlers) renderTaskList(c echo.Context, status int, errMsg string) error {
	data := taskListData{
		page:     h.page("task", "Feladatok"),
		Statuses: taskStatuses,
		Sort:     c.QueryParam("sort"),
		Dir:      c.QueryParam("dir"),
	}
	data.Error = errMsg

	r := h.tasks.List(c.Request().Context())
	if r.Ok() {
		data.Tasks = r.Data
		if data.Sort != "" {
			data.Tasks = model.SortTasks(data.Tasks, data.Sort, data.Dir != "desc")
		}
	} else {
		if r.Outcome == platform.ServerError {
			h.logServerError(c, "list tasks", r.Err)
			status = http.StatusInternalServerError
		}
		if data.Error == "" {
			data.Error = r.UserMessage()
		}
	}
	return c.Render(status, "tasks.html", data)
}

func (h *handlers) registerTask(c echo.Context) error {
	taskStatus, _ := model.ParseTaskStatus(c.FormValue("status"))
	req := model.TaskRequest{
		CustomerID:  optString(c.FormValue("customerId")),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Status:      taskStatus,
		Reminder:    formTime(c.FormValue("reminder")),
		DueDate:     formTime(c.FormValue("dueDate")),
	}

	r := h.tasks.Register(c.Request().Context(), req)
	if r.Ok() {
		return c.Redirect(http.StatusFound, "/task")
	}
	if r.Outcome == platform.ServerError {
		h.logServerError(c, "register task", r.Err)
	}
	return h.renderTaskList(c, statusFor(r), r.UserMessage())
}

func (h *handlers) updateTask(c echo.Context) error {
	taskStatus, _ := model.ParseTaskStatus(c.FormValue("status"))
	req := model.TaskUpdateRequest{
		ID:          c.Param("id"),
		CustomerID:  optString(c.FormValue("customerId")),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Status:      taskStatus,
		Reminder:    formTime(c.FormValue("reminder")),
		DueDate:     formTime(c.FormValue("dueDate")),
		CompletedAt: formTime(c.FormValue("completedAt")),
	}

	r := h.tasks.Update(c.Request().Context(), req)
	if r.Ok() {
		return c.Redirect(http.StatusFound, "/task")
	}
	if r.Outcome == platform.ServerError {
		h.logServerError(c, "update task", r.Err)
	}
	return h.renderTaskList(c, statusFor(r), r.UserMessage())
}

func (h *handlers) deleteTask(c echo.Context) error {
	r := h.tasks.Delete(c.Request().Context(), c.Param("id"))
	if r.Ok() {
		return c.Redirect(http.StatusFound, "/task")
	}
	if r.Outcome == platform.ServerError {
		h.logServerError(c, "delete task", r.Err)
	}
	return h.renderTaskList(c, statusFor(r), r.UserMessage())
}

// updateTaskRow serves the inline row editor: JSON in, JSON out.
func (h *handlers) updateTaskRow(c echo.Context) error {
	var req model.TaskUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
	}
	req.ID = c.Param("id")

	r := h.tasks.Update(c.Request().Context(), req)
	switch r.Outcome {
	case platform.Success:
		return c.JSON(http.StatusOK, map[string]any{"task": r.Data})
	case platform.DomainError:
		return c.JSON(http.StatusOK, map[string]any{"errors": r.Domain})
	default:
		h.logServerError(c, "update task row", r.Err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": platform.GenericFailureMessage})
	}
}
