package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	accountDomain "lenme-backend/internal/domain/account"
	"lenme-backend/internal/testutil/accountmock"
	uc "lenme-backend/internal/usecase/account"
)

func TestCreateAccount_Success(t *testing.T) {
	e := newEchoWithValidator()
	h := NewAccountHandler(uc.NewUsecase(&accountmock.Repo{
		CreateFn: func(ctx context.Context, a *accountDomain.Account) error { return nil },
	}))

	c, rec := postJSON(e, "/api/lending/user/", mustJSON(map[string]any{
		"username":  "alice",
		"user_type": "lender",
		"balance":   "6000.00",
	}))
	if err := h.CreateAccount(c); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", rec.Code, rec.Body.String())
	}

	var got uc.AccountDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got.AccountID) != 32 || got.Role != "lender" {
		t.Fatalf("unexpected dto: %+v", got)
	}
	if got.Balance.StringFixed(2) != "6000.00" {
		t.Fatalf("balance=%s", got.Balance)
	}
}

func TestCreateAccount_DefaultsToZeroBalance(t *testing.T) {
	e := newEchoWithValidator()
	h := NewAccountHandler(uc.NewUsecase(&accountmock.Repo{
		CreateFn: func(ctx context.Context, a *accountDomain.Account) error { return nil },
	}))

	c, rec := postJSON(e, "/api/lending/user/", mustJSON(map[string]any{
		"username":  "bob",
		"user_type": "borrower",
	}))
	if err := h.CreateAccount(c); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", rec.Code, rec.Body.String())
	}
	var got uc.AccountDTO
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if !got.Balance.IsZero() {
		t.Fatalf("balance=%s, want 0", got.Balance)
	}
}

func TestCreateAccount_RejectsUnknownRole(t *testing.T) {
	e := newEchoWithValidator()
	h := NewAccountHandler(uc.NewUsecase(&accountmock.Repo{
		CreateFn: func(ctx context.Context, a *accountDomain.Account) error {
			t.Fatal("Create must not be called")
			return nil
		},
	}))

	c, rec := postJSON(e, "/api/lending/user/", mustJSON(map[string]any{
		"username":  "mallory",
		"user_type": "admin",
	}))
	if err := h.CreateAccount(c); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "Role", "one of") {
		t.Fatalf("missing user_type detail: %+v", er.Details)
	}
}

func TestGetAccount_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := NewAccountHandler(uc.NewUsecase(&accountmock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/lending/user/x/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("account_id")
	c.SetParamValues(strings.Repeat("e", 32))

	if err := h.GetAccount(c); err != nil {
		t.Fatalf("GetAccount error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
