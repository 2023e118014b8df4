package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/localflow/localflow-backend/internal/domain"
	"github.com/localflow/localflow-backend/internal/middleware"
	"github.com/localflow/localflow-backend/internal/service"
	"github.com/localflow/localflow-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

// Helper to put a username scope on the request context
func setUsername(c echo.Context, username string) {
	ctx := context.WithValue(c.Request().Context(), middleware.UsernameKey, username)
	c.SetRequest(c.Request().WithContext(ctx))
}

func newTransactionHandler() (*TransactionHandler, *testutil.MockTransactionRepository) {
	transactionRepo := testutil.NewMockTransactionRepository()
	transactionService := service.NewTransactionService(transactionRepo)
	return NewTransactionHandler(transactionService), transactionRepo
}

func TestCreateTransaction_Created(t *testing.T) {
	e := echo.New()
	handler, _ := newTransactionHandler()

	body := `{"date":"2024-05-10","amount":"150.50","type":"expense","category":"Food","note":"Lunch"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setUsername(c, "alice")

	if err := handler.CreateTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rec.Code)
	}

	var response TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.ID != 1 {
		t.Errorf("Expected ID 1, got %d", response.ID)
	}
	if response.Amount != "150.50" {
		t.Errorf("Expected amount '150.50', got %s", response.Amount)
	}
	if response.Category != "Food" {
		t.Errorf("Expected category 'Food', got %s", response.Category)
	}
}

func TestCreateTransaction_InvalidAmountString(t *testing.T) {
	e := echo.New()
	handler, _ := newTransactionHandler()

	body := `{"date":"2024-05-10","amount":"abc","type":"expense","category":"Food"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setUsername(c, "alice")

	if err := handler.CreateTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateTransaction_ValidationFailures(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"negative amount", `{"date":"2024-05-10","amount":"-5","type":"expense","category":"Food"}`, "amount"},
		{"bad date", `{"date":"10/05/2024","amount":"10","type":"expense","category":"Food"}`, "date"},
		{"bad type", `{"date":"2024-05-10","amount":"10","type":"transfer","category":"Food"}`, "type"},
		{"missing category", `{"date":"2024-05-10","amount":"10","type":"expense","category":"  "}`, "category"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			handler, _ := newTransactionHandler()

			req := httptest.NewRequest(http.MethodPost, "/transactions/", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			setUsername(c, "alice")

			if err := handler.CreateTransaction(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", rec.Code)
			}

			var problem ProblemDetails
			if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
				t.Fatalf("Failed to unmarshal problem: %v", err)
			}
			if len(problem.Errors) != 1 || problem.Errors[0].Field != tc.field {
				t.Errorf("Expected a single error on field %s, got %+v", tc.field, problem.Errors)
			}
		})
	}
}

func TestGetTransactions_FlatList(t *testing.T) {
	e := echo.New()
	handler, transactionRepo := newTransactionHandler()

	transactionRepo.AddTransaction("alice", &domain.Transaction{ID: 1, Date: "2024-05-10", Amount: decimal.NewFromInt(100), Type: domain.TransactionTypeExpense, Category: "Food"})
	transactionRepo.AddTransaction("alice", &domain.Transaction{ID: 2, Date: "2024-05-11", Amount: decimal.NewFromInt(200), Type: domain.TransactionTypeIncome, Category: "Salary"})

	req := httptest.NewRequest(http.MethodGet, "/transactions/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setUsername(c, "alice")

	if err := handler.GetTransactions(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response []TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 2 {
		t.Errorf("Expected 2 transactions, got %d", len(response))
	}
}

func TestGetTransactions_FilterParams(t *testing.T) {
	e := echo.New()
	handler, transactionRepo := newTransactionHandler()

	transactionRepo.AddTransaction("alice", &domain.Transaction{ID: 1, Date: "2024-05-09", Amount: decimal.NewFromInt(100), Type: domain.TransactionTypeExpense, Category: "Food"})
	transactionRepo.AddTransaction("alice", &domain.Transaction{ID: 2, Date: "2024-05-10", Amount: decimal.NewFromInt(200), Type: domain.TransactionTypeIncome, Category: "Salary"})
	transactionRepo.AddTransaction("alice", &domain.Transaction{ID: 3, Date: "2024-05-10", Amount: decimal.NewFromInt(300), Type: domain.TransactionTypeExpense, Category: "Transport"})

	req := httptest.NewRequest(http.MethodGet, "/transactions/?startDate=2024-05-10&endDate=2024-05-10&type=expense", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setUsername(c, "alice")

	if err := handler.GetTransactions(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 1 || response[0].ID != 3 {
		t.Errorf("Expected only transaction 3, got %+v", response)
	}
}

func TestGetTransactions_BadQueryParams(t *testing.T) {
	cases := []string{
		"/transactions/?startDate=bogus",
		"/transactions/?endDate=2024-13-01",
		"/transactions/?type=transfer",
		"/transactions/?page=0",
		"/transactions/?pageSize=-1",
	}

	for _, target := range cases {
		e := echo.New()
		handler, _ := newTransactionHandler()

		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		setUsername(c, "alice")

		if err := handler.GetTransactions(c); err != nil {
			t.Fatalf("%s: expected no error, got %v", target, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", target, rec.Code)
		}
	}
}

func TestGetTransactions_EmptyListIsJSONArray(t *testing.T) {
	e := echo.New()
	handler, _ := newTransactionHandler()

	req := httptest.NewRequest(http.MethodGet, "/transactions/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setUsername(c, "alice")

	if err := handler.GetTransactions(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("Expected empty JSON array, got %q", rec.Body.String())
	}
}

func TestDeleteTransaction_NoContent(t *testing.T) {
	e := echo.New()
	handler, transactionRepo := newTransactionHandler()

	transactionRepo.AddTransaction("alice", &domain.Transaction{ID: 7, Date: "2024-05-10", Amount: decimal.NewFromInt(100), Type: domain.TransactionTypeExpense, Category: "Food"})

	req := httptest.NewRequest(http.MethodDelete, "/transactions/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")
	setUsername(c, "alice")

	if err := handler.DeleteTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	e := echo.New()
	handler, _ := newTransactionHandler()

	req := httptest.NewRequest(http.MethodDelete, "/transactions/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")
	setUsername(c, "alice")

	if err := handler.DeleteTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestDeleteTransaction_OtherUsersRecordIsInvisible(t *testing.T) {
	e := echo.New()
	handler, transactionRepo := newTransactionHandler()

	transactionRepo.AddTransaction("alice", &domain.Transaction{ID: 7, Date: "2024-05-10", Amount: decimal.NewFromInt(100), Type: domain.TransactionTypeExpense, Category: "Food"})

	req := httptest.NewRequest(http.MethodDelete, "/transactions/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")
	setUsername(c, "bob")

	if err := handler.DeleteTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 across user scopes, got %d", rec.Code)
	}
	if len(transactionRepo.Transactions["alice"]) != 1 {
		t.Error("Another user's record must survive")
	}
}
