package handlers

import (
	"errors"
	"log"
	"net/http"

	"planboard/models"
	"planboard/store"
)

// Balances and goal progress are computed client-side by summation; the
// server never stores running totals.

func AccountsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		accounts, err := Store.Accounts(DemoUserID)
		if err != nil {
			log.Printf("Error listing accounts: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		if accounts == nil {
			accounts = []models.Account{}
		}
		sendJSON(w, http.StatusOK, accounts)

	case http.MethodPost:
		var input struct {
			Name  string `json:"name"`
			Type  string `json:"type"`
			Color string `json:"color"`
		}
		if err := decodeBody(r, &input); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidAccount")
			return
		}
		if input.Name == "" || input.Type == "" {
			sendError(w, r, http.StatusBadRequest, "InvalidAccount")
			return
		}

		a, err := Store.CreateAccount(models.Account{
			UserID: DemoUserID,
			Name:   input.Name,
			Type:   input.Type,
			Color:  input.Color,
		})
		if err != nil {
			log.Printf("Error creating account: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusCreated, a)

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func AccountHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/accounts/")
	if !ok {
		sendError(w, r, http.StatusNotFound, "AccountNotFound")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var patch models.AccountPatch
		if err := decodeBody(r, &patch); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidAccount")
			return
		}
		a, err := Store.UpdateAccount(id, patch)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "AccountNotFound")
			return
		}
		if err != nil {
			log.Printf("Error updating account %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, a)

	case http.MethodDelete:
		// Transactions keep their accountId; the reference is not enforced.
		err := Store.DeleteAccount(id)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "AccountNotFound")
			return
		}
		if err != nil {
			log.Printf("Error deleting account %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, deleteResponse{Success: true})

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func TransactionsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		transactions, err := Store.Transactions(DemoUserID)
		if err != nil {
			log.Printf("Error listing transactions: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		sendJSON(w, http.StatusOK, transactions)

	case http.MethodPost:
		var input struct {
			AccountID   int     `json:"accountId"`
			Amount      float64 `json:"amount"`
			Type        string  `json:"type"`
			Category    string  `json:"category"`
			Description string  `json:"description"`
			Date        string  `json:"date"`
		}
		if err := decodeBody(r, &input); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidTransaction")
			return
		}
		if input.AccountID == 0 || input.Amount == 0 || input.Date == "" {
			sendError(w, r, http.StatusBadRequest, "InvalidTransaction")
			return
		}
		if input.Type != "income" && input.Type != "expense" {
			sendError(w, r, http.StatusBadRequest, "InvalidTransaction")
			return
		}

		t, err := Store.CreateTransaction(models.Transaction{
			UserID:      DemoUserID,
			AccountID:   input.AccountID,
			Amount:      input.Amount,
			Type:        input.Type,
			Category:    input.Category,
			Description: input.Description,
			Date:        input.Date,
		})
		if err != nil {
			log.Printf("Error creating transaction: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusCreated, t)

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func TransactionHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		month, year, ok := pathMonthYear(pathTail(r, "/api/transactions/"))
		if !ok {
			sendError(w, r, http.StatusNotFound, "TransactionNotFound")
			return
		}
		transactions, err := Store.TransactionsByMonth(DemoUserID, month, year)
		if err != nil {
			log.Printf("Error listing transactions by month: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		sendJSON(w, http.StatusOK, transactions)

	case http.MethodPut:
		id, ok := pathID(r, "/api/transactions/")
		if !ok {
			sendError(w, r, http.StatusNotFound, "TransactionNotFound")
			return
		}
		var patch models.TransactionPatch
		if err := decodeBody(r, &patch); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidTransaction")
			return
		}
		if patch.Type != nil && *patch.Type != "income" && *patch.Type != "expense" {
			sendError(w, r, http.StatusBadRequest, "InvalidTransaction")
			return
		}
		t, err := Store.UpdateTransaction(id, patch)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "TransactionNotFound")
			return
		}
		if err != nil {
			log.Printf("Error updating transaction %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, t)

	case http.MethodDelete:
		id, ok := pathID(r, "/api/transactions/")
		if !ok {
			sendError(w, r, http.StatusNotFound, "TransactionNotFound")
			return
		}
		err := Store.DeleteTransaction(id)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "TransactionNotFound")
			return
		}
		if err != nil {
			log.Printf("Error deleting transaction %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, deleteResponse{Success: true})

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func FinancialGoalsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		goals, err := Store.FinancialGoals(DemoUserID)
		if err != nil {
			log.Printf("Error listing financial goals: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		if goals == nil {
			goals = []models.FinancialGoal{}
		}
		sendJSON(w, http.StatusOK, goals)

	case http.MethodPost:
		var input struct {
			Title        string  `json:"title"`
			TargetAmount float64 `json:"targetAmount"`
			TargetDate   string  `json:"targetDate"`
		}
		if err := decodeBody(r, &input); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidFinancialGoal")
			return
		}
		if input.Title == "" || input.TargetAmount <= 0 {
			sendError(w, r, http.StatusBadRequest, "InvalidFinancialGoal")
			return
		}

		g, err := Store.CreateFinancialGoal(models.FinancialGoal{
			UserID:       DemoUserID,
			Title:        input.Title,
			TargetAmount: input.TargetAmount,
			TargetDate:   input.TargetDate,
		})
		if err != nil {
			log.Printf("Error creating financial goal: %v", err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusCreated, g)

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}

func FinancialGoalHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/financial-goals/")
	if !ok {
		sendError(w, r, http.StatusNotFound, "FinancialGoalNotFound")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var patch models.FinancialGoalPatch
		if err := decodeBody(r, &patch); err != nil {
			sendError(w, r, http.StatusBadRequest, "InvalidFinancialGoal")
			return
		}
		g, err := Store.UpdateFinancialGoal(id, patch)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "FinancialGoalNotFound")
			return
		}
		if err != nil {
			log.Printf("Error updating financial goal %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, g)

	case http.MethodDelete:
		err := Store.DeleteFinancialGoal(id)
		if errors.Is(err, store.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "FinancialGoalNotFound")
			return
		}
		if err != nil {
			log.Printf("Error deleting financial goal %d: %v", id, err)
			sendError(w, r, http.StatusInternalServerError, "InternalServerError")
			return
		}
		sendJSON(w, http.StatusOK, deleteResponse{Success: true})

	default:
		sendError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
	}
}
