package handlers

import (
	"errors"
	"log"
	"net/http"

	"planboard/models"
	"planboard/store"
)

// Stored passwords are plain text. The upstream product shipped this way
// despite its "Security Notice" copy; encryption is explicitly out of scope.

func PasswordsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		passwords, err := Store.Passwords(DemoUserID)
		if err != nil {
			log.Printf("Error listing passwords: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		if passwords == nil {
			passwords = []models.Password{}
		}
		sendJSON(w, http.StatusOK, passwords)

	case http.MethodPost:
		var input struct {
			Site     string `json:"site"`
			URL      string `json:"url"`
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
			Notes    string `json:"notes"`
		}
		if err := decodeBody(r, &input); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidPassword")
			return
		}
		if input.Site == "" || input.Password == "" {
			sendError(w, r, http.StatusBadRequest, "InvalidPassword")
			return
		}

		e, err := Store.CreatePassword(models.Password{
			UserID:   DemoUserID,
			Site:     input.Site,
			URL:      input.URL,
			Username: input.Username,
			Email:    input.Email,
			Password: input.Password,
			Notes:    input.Notes,
		})
		if err != nil {
			log.Printf("Error creating password: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusCreated, e)

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func PasswordHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/passwords/")
	if !ok {
		sendError(w, r, http.StatusNotFound, "PasswordNotFound")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var patch models.PasswordPatch
		if err := decodeBody(r, &patch); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidPassword")
			return
		}
		e, err := Store.UpdatePassword(id, patch)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "PasswordNotFound")
			return
		}
		if err != nil {
			log.Printf("Error updating password %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, e)

	case http.MethodDelete:
		err := Store.DeletePassword(id)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "PasswordNotFound")
			return
		}
		if err != nil {
			log.Printf("Error deleting password %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, deleteResponse{Success: true})

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}
