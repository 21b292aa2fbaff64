package impl

import (
	"context"
	"testing"

	"pushcart/internal/domain/entity"
	"pushcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	vendorRepo   *fakeVendorRepo
	feedbackRepo *fakeFeedbackRepo
	txManager    *fakeTxManager
	txVendors    *fakeVendorRepo
	txLocations  *fakeLocationRepo
}

func createTestAdminService() adminServiceFixtures {
	vendorRepo := newFakeVendorRepo()
	feedbackRepo := &fakeFeedbackRepo{}

	txVendors := newFakeVendorRepo()
	txLocations := newFakeLocationRepo()
	txManager := &fakeTxManager{
		factory: &fakeRepoFactory{
			vendorRepo:   txVendors,
			locationRepo: txLocations,
			productRepo:  &fakeProductRepo{},
		},
	}

	svc := NewAdminService(AdminServiceParams{
		VendorRepo:   vendorRepo,
		FeedbackRepo: feedbackRepo,
		TxManager:    txManager,
	})

	return adminServiceFixtures{
		service:      svc,
		vendorRepo:   vendorRepo,
		feedbackRepo: feedbackRepo,
		txManager:    txManager,
		txVendors:    txVendors,
		txLocations:  txLocations,
	}
}

func TestAdminService_ListPendingVendors_Success(t *testing.T) {
	fx := createTestAdminService()

	pending := []*entity.Vendor{
		{ID: uuid.New(), VendorName: "Ravi Vegetables"},
		{ID: uuid.New(), VendorName: "Meena Flowers"},
	}
	fx.vendorRepo.pending = pending

	vendors, err := fx.service.ListPendingVendors(context.Background())

	require.NoError(t, err)
	assert.Equal(t, pending, vendors)
}

func TestAdminService_ApproveVendor_Success(t *testing.T) {
	fx := createTestAdminService()

	vendorID := uuid.New()
	fx.vendorRepo.add(&entity.Vendor{ID: vendorID, VendorName: "Ravi Vegetables"})

	err := fx.service.ApproveVendor(context.Background(), vendorID)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{vendorID}, fx.vendorRepo.approved)
	assert.True(t, fx.vendorRepo.vendors[vendorID].IsApproved)
}

func TestAdminService_ApproveVendor_RepoError(t *testing.T) {
	fx := createTestAdminService()
	fx.vendorRepo.setApprovalErr = errors.New("connection reset")

	err := fx.service.ApproveVendor(context.Background(), uuid.New())

	require.Error(t, err)
}

func TestAdminService_RemoveVendor_DeletesAndDeactivatesInOneTransaction(t *testing.T) {
	fx := createTestAdminService()

	vendorID := uuid.New()
	err := fx.service.RemoveVendor(context.Background(), vendorID)

	require.NoError(t, err)
	assert.Equal(t, 1, fx.txManager.executed)
	assert.Equal(t, []uuid.UUID{vendorID}, fx.txVendors.deleted)
	assert.Equal(t, []uuid.UUID{vendorID}, fx.txLocations.inactive)
}

func TestAdminService_RemoveVendor_RollsBackOnDeleteError(t *testing.T) {
	fx := createTestAdminService()
	fx.txVendors.deleteErr = errors.New("constraint violation")

	err := fx.service.RemoveVendor(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Empty(t, fx.txLocations.inactive, "location untouched when the delete fails")
}

func TestAdminService_RemoveVendor_TxError(t *testing.T) {
	fx := createTestAdminService()
	fx.txManager.execErr = errors.New("begin failed")

	err := fx.service.RemoveVendor(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Empty(t, fx.txVendors.deleted)
}

func TestAdminService_ListFeedback_DefaultLimit(t *testing.T) {
	fx := createTestAdminService()
	fx.feedbackRepo.recent = []*entity.Feedback{{ID: uuid.New(), Message: "great app"}}

	feedback, err := fx.service.ListFeedback(context.Background(), 0)

	require.NoError(t, err)
	assert.Len(t, feedback, 1)
	assert.Equal(t, defaultFeedbackLimit, fx.feedbackRepo.lastLimit)
}

func TestAdminService_ListFeedback_ExplicitLimit(t *testing.T) {
	fx := createTestAdminService()

	_, err := fx.service.ListFeedback(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, 10, fx.feedbackRepo.lastLimit)
}
