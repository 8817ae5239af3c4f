package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"planboard/models"
	"planboard/store"
)

func TodosHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		var todos []models.Todo
		var err error
		if pid := r.URL.Query().Get("projectId"); pid != "" {
			projectID, convErr := strconv.Atoi(pid)
			if convErr != nil {
				sendError(w, r, http.StatusBadRequest, "InvalidTodo")
				return
			}
			todos, err = Store.TodosByProject(DemoUserID, projectID)
		} else {
			todos, err = Store.Todos(DemoUserID)
		}
		if err != nil {
			log.Printf("Error listing todos: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		if todos == nil {
			todos = []models.Todo{}
		}
		sendJSON(w, http.StatusOK, todos)

	case http.MethodPost:
		var input struct {
			Title             string `json:"title"`
			Description       string `json:"description"`
			Priority          string `json:"priority"`
			EstimatedDuration int    `json:"estimatedDuration"`
			ProjectID         *int   `json:"projectId"`
			DueDate           string `json:"dueDate"`
		}
		if err := decodeBody(r, &input); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidTodo")
			return
		}
		if input.Title == "" {
			sendError(w, r, http.StatusBadRequest, "InvalidTodo")
			return
		}
		switch input.Priority {
		case "":
			input.Priority = models.PriorityMedium
		case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
		default:
			sendError(w, r, http.StatusBadRequest, "InvalidTodo")
			return
		}

		t, err := Store.CreateTodo(models.Todo{
			UserID:            DemoUserID,
			Title:             input.Title,
			Description:       input.Description,
			Priority:          input.Priority,
			EstimatedDuration: input.EstimatedDuration,
			ProjectID:         input.ProjectID,
			DueDate:           input.DueDate,
		})
		if err != nil {
			log.Printf("Error creating todo: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusCreated, t)

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func TodoHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/todos/")
	if !ok {
		sendError(w, r, http.StatusNotFound, "TodoNotFound")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var patch models.TodoPatch
		if err := decodeBody(r, &patch); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidTodo")
			return
		}
		if patch.Priority != nil {
			switch *patch.Priority {
			case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
			default:
				sendError(w, r, http.StatusBadRequest, "InvalidTodo")
				return
			}
		}
		t, err := Store.UpdateTodo(id, patch)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "TodoNotFound")
			return
		}
		if err != nil {
			log.Printf("Error updating todo %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, t)

	case http.MethodDelete:
		err := Store.DeleteTodo(id)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "TodoNotFound")
			return
		}
		if err != nil {
			log.Printf("Error deleting todo %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, deleteResponse{Success: true})

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func ProjectsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		projects, err := Store.Projects(DemoUserID)
		if err != nil {
			log.Printf("Error listing projects: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		if projects == nil {
			projects = []models.Project{}
		}
		sendJSON(w, http.StatusOK, projects)

	case http.MethodPost:
		var input struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Color       string `json:"color"`
		}
		if err := decodeBody(r, &input); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidProject")
			return
		}
		if input.Name == "" {
			sendError(w, r, http.StatusBadRequest, "InvalidProject")
			return
		}

		pr, err := Store.CreateProject(models.Project{
			UserID:      DemoUserID,
			Name:        input.Name,
			Description: input.Description,
			Color:       input.Color,
		})
		if err != nil {
			log.Printf("Error creating project: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusCreated, pr)

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func ProjectHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/projects/")
	if !ok {
		sendError(w, r, http.StatusNotFound, "ProjectNotFound")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var patch models.ProjectPatch
		if err := decodeBody(r, &patch); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidProject")
			return
		}
		pr, err := Store.UpdateProject(id, patch)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "ProjectNotFound")
			return
		}
		if err != nil {
			log.Printf("Error updating project %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, pr)

	case http.MethodDelete:
		// No cascade: todos keep their projectId reference.
		err := Store.DeleteProject(id)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "ProjectNotFound")
			return
		}
		if err != nil {
			log.Printf("Error deleting project %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, deleteResponse{Success: true})

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}
