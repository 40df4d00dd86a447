package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/labassistantpro/labassistant/internal/models"
)

func TestTaskLifecycle(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "marie", "curie1898")
	authCookie := loginAndExtractAuthCookie(t, app, "marie", "curie1898")

	createResponse := performJSONRequest(t, app, http.MethodPost, "/api/tasks", authCookie, map[string]any{
		"title":       "Passage cells",
		"description": "flask 3",
		"due_date":    "2026-09-02",
		"frequency":   models.FrequencyOnce,
	})
	defer createResponse.Body.Close()
	if createResponse.StatusCode != http.StatusCreated {
		t.Fatalf("expected task create status 201, got %d", createResponse.StatusCode)
	}

	var created models.Task
	decodeJSONBody(t, createResponse, &created)
	if created.ID == 0 || created.Title != "Passage cells" || created.Completed {
		t.Fatalf("unexpected created task: %+v", created)
	}

	updateResponse := performJSONRequest(t, app, http.MethodPut, fmt.Sprintf("/api/tasks/%d", created.ID), authCookie, map[string]any{
		"title":     "Passage cells",
		"due_date":  "2026-09-03",
		"frequency": models.FrequencyWeekly,
	})
	defer updateResponse.Body.Close()
	if updateResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected task update status 200, got %d", updateResponse.StatusCode)
	}

	listResponse := performJSONRequest(t, app, http.MethodGet, "/api/tasks", authCookie, nil)
	defer listResponse.Body.Close()
	var tasks []models.Task
	decodeJSONBody(t, listResponse, &tasks)
	if len(tasks) != 1 || tasks[0].DueDate != "2026-09-03" || tasks[0].Frequency != models.FrequencyWeekly {
		t.Fatalf("unexpected task list after update: %+v", tasks)
	}

	deleteResponse := performJSONRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", created.ID), authCookie, nil)
	defer deleteResponse.Body.Close()
	if deleteResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected task delete status 200, got %d", deleteResponse.StatusCode)
	}

	emptyResponse := performJSONRequest(t, app, http.MethodGet, "/api/tasks", authCookie, nil)
	defer emptyResponse.Body.Close()
	var remaining []models.Task
	decodeJSONBody(t, emptyResponse, &remaining)
	if len(remaining) != 0 {
		t.Fatalf("expected empty task list after delete, got %+v", remaining)
	}
}

func TestTaskCreateRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "marie", "curie1898")
	authCookie := loginAndExtractAuthCookie(t, app, "marie", "curie1898")

	missingTitle := performJSONRequest(t, app, http.MethodPost, "/api/tasks", authCookie, map[string]any{
		"due_date": "2026-09-02",
	})
	defer missingTitle.Body.Close()
	if missingTitle.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected missing title status 400, got %d", missingTitle.StatusCode)
	}

	badDate := performJSONRequest(t, app, http.MethodPost, "/api/tasks", authCookie, map[string]any{
		"title":    "Passage cells",
		"due_date": "02/09/2026",
	})
	defer badDate.Body.Close()
	if badDate.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected invalid date status 400, got %d", badDate.StatusCode)
	}

	badFrequency := performJSONRequest(t, app, http.MethodPost, "/api/tasks", authCookie, map[string]any{
		"title":     "Passage cells",
		"frequency": "fortnightly",
	})
	defer badFrequency.Body.Close()
	if badFrequency.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected invalid frequency status 400, got %d", badFrequency.StatusCode)
	}
}

func TestAcknowledgeOneOffTaskCompletesIt(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "marie", "curie1898")
	authCookie := loginAndExtractAuthCookie(t, app, "marie", "curie1898")

	task := createTaskViaAPI(t, app, authCookie, map[string]any{
		"title":     "Submit sequencing order",
		"due_date":  "2026-09-02",
		"frequency": models.FrequencyOnce,
	})

	acked := ackTaskViaAPI(t, app, authCookie, task.ID)
	if !acked.Completed {
		t.Fatal("expected one-off task to be completed after acknowledgement")
	}
	if acked.DueDate != "2026-09-02" {
		t.Fatalf("expected one-off due date to stay put, got %q", acked.DueDate)
	}
}

func TestAcknowledgeRecurringTaskAdvancesDueDate(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "marie", "curie1898")
	authCookie := loginAndExtractAuthCookie(t, app, "marie", "curie1898")

	cases := []struct {
		frequency   string
		dueDate     string
		wantDueDate string
	}{
		{models.FrequencyDaily, "2026-01-31", "2026-02-01"},
		{models.FrequencyWeekly, "2026-01-01", "2026-01-08"},
		{models.FrequencyMonthly, "2026-01-01", "2026-01-31"},
	}

	for _, testCase := range cases {
		task := createTaskViaAPI(t, app, authCookie, map[string]any{
			"title":     "Water incubator " + testCase.frequency,
			"due_date":  testCase.dueDate,
			"frequency": testCase.frequency,
		})

		acked := ackTaskViaAPI(t, app, authCookie, task.ID)
		if acked.Completed {
			t.Fatalf("%s: expected recurring task to stay open after acknowledgement", testCase.frequency)
		}
		if acked.DueDate != testCase.wantDueDate {
			t.Fatalf("%s: expected due date %q, got %q", testCase.frequency, testCase.wantDueDate, acked.DueDate)
		}
	}
}

func TestTasksAreIsolatedBetweenUsers(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "marie", "curie1898")
	createTestUser(t, database, "pierre", "radium1903")
	marieCookie := loginAndExtractAuthCookie(t, app, "marie", "curie1898")
	pierreCookie := loginAndExtractAuthCookie(t, app, "pierre", "radium1903")

	task := createTaskViaAPI(t, app, marieCookie, map[string]any{
		"title":    "Label samples",
		"due_date": "2026-09-02",
	})

	foreignList := performJSONRequest(t, app, http.MethodGet, "/api/tasks", pierreCookie, nil)
	defer foreignList.Body.Close()
	var pierreTasks []models.Task
	decodeJSONBody(t, foreignList, &pierreTasks)
	if len(pierreTasks) != 0 {
		t.Fatalf("expected pierre to see no tasks, got %+v", pierreTasks)
	}

	foreignUpdate := performJSONRequest(t, app, http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), pierreCookie, map[string]any{
		"title":     "hijacked",
		"due_date":  "2026-09-02",
		"frequency": models.FrequencyOnce,
	})
	defer foreignUpdate.Body.Close()
	if foreignUpdate.StatusCode != http.StatusNotFound {
		t.Fatalf("expected foreign update status 404, got %d", foreignUpdate.StatusCode)
	}

	foreignDelete := performJSONRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", task.ID), pierreCookie, nil)
	defer foreignDelete.Body.Close()
	if foreignDelete.StatusCode != http.StatusNotFound {
		t.Fatalf("expected foreign delete status 404, got %d", foreignDelete.StatusCode)
	}

	foreignAck := performJSONRequest(t, app, http.MethodPost, fmt.Sprintf("/api/tasks/%d/ack", task.ID), pierreCookie, nil)
	defer foreignAck.Body.Close()
	if foreignAck.StatusCode != http.StatusNotFound {
		t.Fatalf("expected foreign acknowledgement status 404, got %d", foreignAck.StatusCode)
	}
}

func TestTasksOnDateReturnsOpenTasksForThatDay(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "marie", "curie1898")
	authCookie := loginAndExtractAuthCookie(t, app, "marie", "curie1898")

	createTaskViaAPI(t, app, authCookie, map[string]any{
		"title":    "Prepare gels",
		"due_date": "2026-09-02",
	})
	createTaskViaAPI(t, app, authCookie, map[string]any{
		"title":    "Image slides",
		"due_date": "2026-09-03",
	})

	onDate := performJSONRequest(t, app, http.MethodGet, "/api/tasks/on/2026-09-02", authCookie, nil)
	defer onDate.Body.Close()
	if onDate.StatusCode != http.StatusOK {
		t.Fatalf("expected on-date status 200, got %d", onDate.StatusCode)
	}

	var tasks []models.Task
	decodeJSONBody(t, onDate, &tasks)
	if len(tasks) != 1 || tasks[0].Title != "Prepare gels" {
		t.Fatalf("unexpected tasks on 2026-09-02: %+v", tasks)
	}

	badDate := performJSONRequest(t, app, http.MethodGet, "/api/tasks/on/not-a-date", authCookie, nil)
	defer badDate.Body.Close()
	if badDate.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected invalid date status 400, got %d", badDate.StatusCode)
	}
}

func createTaskViaAPI(t *testing.T, app *fiber.App, authCookie string, payload map[string]any) models.Task {
	t.Helper()

	response := performJSONRequest(t, app, http.MethodPost, "/api/tasks", authCookie, payload)
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected task create status 201, got %d", response.StatusCode)
	}

	var task models.Task
	decodeJSONBody(t, response, &task)
	return task
}

func ackTaskViaAPI(t *testing.T, app *fiber.App, authCookie string, taskID uint) models.Task {
	t.Helper()

	response := performJSONRequest(t, app, http.MethodPost, fmt.Sprintf("/api/tasks/%d/ack", taskID), authCookie, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected acknowledgement status 200, got %d", response.StatusCode)
	}

	var task models.Task
	decodeJSONBody(t, response, &task)
	return task
}
