package services

import (
	"context"
	"testing"

	"instacash-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomerInput() *RegisterCustomerInput {
	return &RegisterCustomerInput{
		FirstName: "Jane",
		LastName:  "Doe",
		IDNumber:  "ID-100",
		Address:   "12 Acacia Ave",
		Gender:    "female",
		DOB:       "1990-05-20",
	}
}

func TestRegisterCustomer(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepoStub()
	svc := NewCustomerService(repo)

	customer, err := svc.Register(ctx, validCustomerInput())
	require.NoError(t, err)
	assert.NotZero(t, customer.ID)
	assert.Equal(t, "ID-100", customer.IDNumber)
	assert.Empty(t, repo.collaterals[customer.ID])
}

func TestRegisterCustomerWithCollateral(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepoStub()
	svc := NewCustomerService(repo)

	fsv := 150000.0
	input := validCustomerInput()
	input.Collateral = "land"
	input.ForcedSaleValue = &fsv

	customer, err := svc.Register(ctx, input)
	require.NoError(t, err)

	collaterals := repo.collaterals[customer.ID]
	require.Len(t, collaterals, 1)
	assert.Equal(t, "land", collaterals[0].CollateralType)
	assert.Equal(t, fsv, collaterals[0].ForcedSaleValue)
	assert.Equal(t, customer.ID, collaterals[0].CustomerID)
}

func TestRegisterCustomerRejections(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepoStub()
	svc := NewCustomerService(repo)

	badDate := validCustomerInput()
	badDate.DOB = "20/05/1990"
	_, err := svc.Register(ctx, badDate)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	negative := validCustomerInput()
	fsv := -1.0
	negative.Collateral = "land"
	negative.ForcedSaleValue = &fsv
	_, err = svc.Register(ctx, negative)
	assert.ErrorIs(t, err, domain.ErrNegativeValue)

	assert.Empty(t, repo.customers)
}

func TestRegisterCustomerDuplicateIDNumber(t *testing.T) {
	ctx := context.Background()
	repo := newCustomerRepoStub()
	svc := NewCustomerService(repo)

	first, err := svc.Register(ctx, validCustomerInput())
	require.NoError(t, err)

	_, err = svc.Register(ctx, validCustomerInput())
	assert.ErrorIs(t, err, domain.ErrCustomerExists)

	// first record untouched
	assert.Len(t, repo.customers, 1)
	assert.Equal(t, "Jane", repo.customers[first.ID].FirstName)
}
