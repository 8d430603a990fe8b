package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"instacash-backend/internal/adapters/persistence/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// In-memory repositories backing the handler tests. They mirror the
// gorm-backed implementations closely enough to drive the real services.

type memCustomerRepo struct {
	customers   map[uint]*models.Customer
	collaterals map[uint][]*models.Collateral
	nextID      uint
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{
		customers:   make(map[uint]*models.Customer),
		collaterals: make(map[uint][]*models.Collateral),
	}
}

func (r *memCustomerRepo) Create(_ context.Context, customer *models.Customer) error {
	r.nextID++
	customer.ID = r.nextID
	r.customers[customer.ID] = customer
	return nil
}

func (r *memCustomerRepo) CreateWithCollateral(ctx context.Context, customer *models.Customer, collateral *models.Collateral) error {
	if err := r.Create(ctx, customer); err != nil {
		return err
	}
	if collateral != nil {
		collateral.CustomerID = customer.ID
		r.collaterals[customer.ID] = append(r.collaterals[customer.ID], collateral)
	}
	return nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id uint) (*models.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return customer, nil
}

func (r *memCustomerRepo) ExistsByIDNumber(_ context.Context, idNumber string) (bool, error) {
	for _, c := range r.customers {
		if c.IDNumber == idNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *memCustomerRepo) GetCollaterals(_ context.Context, customerID uint) ([]*models.Collateral, error) {
	return r.collaterals[customerID], nil
}

type memLoanRepo struct {
	loans []*models.Loan
}

func (r *memLoanRepo) Create(_ context.Context, loan *models.Loan) error {
	loan.ID = uint(len(r.loans) + 1)
	r.loans = append(r.loans, loan)
	return nil
}

func (r *memLoanRepo) ListByCustomerID(_ context.Context, customerID uint) ([]*models.Loan, error) {
	var out []*models.Loan
	for _, l := range r.loans {
		if l.CustomerID == customerID {
			out = append(out, l)
		}
	}
	return out, nil
}

type memUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uint]*models.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	return err == nil, nil
}

func (r *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

type memResetRepo struct {
	resets []*models.PasswordReset
	users  *memUserRepo
}

func (r *memResetRepo) Create(_ context.Context, reset *models.PasswordReset) error {
	reset.ID = uint(len(r.resets) + 1)
	r.resets = append(r.resets, reset)
	return nil
}

func (r *memResetRepo) GetUnusedByTokenHash(_ context.Context, tokenHash string) (*models.PasswordReset, error) {
	for _, reset := range r.resets {
		if reset.TokenHash == tokenHash && !reset.IsUsed {
			return reset, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memResetRepo) Consume(_ context.Context, reset *models.PasswordReset, newPasswordHash string) error {
	if user, ok := r.users.users[reset.UserID]; ok {
		user.PasswordHash = newPasswordHash
	}
	for _, stored := range r.resets {
		if stored.ID == reset.ID {
			stored.IsUsed = true
		}
	}
	return nil
}

func (r *memResetRepo) DeleteExpired(_ context.Context) (int64, error) {
	var kept []*models.PasswordReset
	var purged int64
	for _, reset := range r.resets {
		if reset.IsUsed || reset.IsExpired() {
			purged++
			continue
		}
		kept = append(kept, reset)
	}
	r.resets = kept
	return purged, nil
}

// jsonRequest builds a JSON POST/GET request for app.Test
func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// decodeBody decodes a JSON object response body
func decodeBody(t *testing.T, res *http.Response) map[string]interface{} {
	t.Helper()

	defer res.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body
}
