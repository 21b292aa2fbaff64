package impl

import (
	"context"
	"io"
	"time"

	"pushcart/internal/domain/entity"
	"pushcart/internal/domain/repository"
	"pushcart/internal/domain/service"
	"pushcart/internal/errors"

	"github.com/google/uuid"
)

// Hand-rolled fakes shared by the service tests in this package. Each fake
// records the calls the service makes and returns canned errors when its
// corresponding err field is set.

type fakeVendorRepo struct {
	vendors map[uuid.UUID]*entity.Vendor
	pending []*entity.Vendor

	created  []*entity.Vendor
	updated  []*entity.Vendor
	approved []uuid.UUID
	deleted  []uuid.UUID

	createErr      error
	findErr        error
	updateErr      error
	setApprovalErr error
	deleteErr      error
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: make(map[uuid.UUID]*entity.Vendor)}
}

func (f *fakeVendorRepo) add(vendor *entity.Vendor) {
	f.vendors[vendor.ID] = vendor
}

func (f *fakeVendorRepo) CreateVendor(_ context.Context, vendor *entity.Vendor) error {
	if f.createErr != nil {
		return f.createErr
	}
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	f.created = append(f.created, vendor)
	f.vendors[vendor.ID] = vendor

	return nil
}

func (f *fakeVendorRepo) FindVendorByID(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	vendor, ok := f.vendors[id]
	if !ok {
		return nil, repository.ErrVendorNotFound
	}

	return vendor, nil
}

func (f *fakeVendorRepo) FindVendorByEmail(_ context.Context, email string) (*entity.Vendor, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, vendor := range f.vendors {
		if vendor.Email == email {
			return vendor, nil
		}
	}

	return nil, repository.ErrVendorNotFound
}

func (f *fakeVendorRepo) FindApprovedVendors(_ context.Context) ([]*entity.Vendor, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	approved := make([]*entity.Vendor, 0, len(f.vendors))
	for _, vendor := range f.vendors {
		if vendor.IsApproved {
			approved = append(approved, vendor)
		}
	}

	return approved, nil
}

func (f *fakeVendorRepo) FindPendingVendors(_ context.Context) ([]*entity.Vendor, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	return f.pending, nil
}

func (f *fakeVendorRepo) UpdateVendor(_ context.Context, vendor *entity.Vendor) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, vendor)
	f.vendors[vendor.ID] = vendor

	return nil
}

func (f *fakeVendorRepo) SetApproval(_ context.Context, id uuid.UUID, approved bool) error {
	if f.setApprovalErr != nil {
		return f.setApprovalErr
	}
	if approved {
		f.approved = append(f.approved, id)
	}
	if vendor, ok := f.vendors[id]; ok {
		vendor.IsApproved = approved
	}

	return nil
}

func (f *fakeVendorRepo) DeleteVendor(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	delete(f.vendors, id)

	return nil
}

type fakeLocationRepo struct {
	locations map[uuid.UUID]*entity.VendorLocation
	active    []*entity.VendorLocation

	upserts  []*entity.VendorLocation
	inactive []uuid.UUID

	upsertErr error
	markErr   error
	findErr   error
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: make(map[uuid.UUID]*entity.VendorLocation)}
}

func (f *fakeLocationRepo) UpsertLocation(_ context.Context, location *entity.VendorLocation) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, location)
	f.locations[location.VendorID] = location

	return nil
}

func (f *fakeLocationRepo) MarkInactive(_ context.Context, vendorID uuid.UUID) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.inactive = append(f.inactive, vendorID)
	if location, ok := f.locations[vendorID]; ok {
		location.IsActive = false
	}

	return nil
}

func (f *fakeLocationRepo) FindLocationByVendor(_ context.Context, vendorID uuid.UUID) (*entity.VendorLocation, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	location, ok := f.locations[vendorID]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}

	return location, nil
}

func (f *fakeLocationRepo) FindActiveLocations(_ context.Context) ([]*entity.VendorLocation, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	return f.active, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
	created   []*entity.Customer
	createErr error
	findErr   error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) add(customer *entity.Customer) {
	f.customers[customer.ID] = customer
}

func (f *fakeCustomerRepo) CreateCustomer(_ context.Context, customer *entity.Customer) error {
	if f.createErr != nil {
		return f.createErr
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	f.created = append(f.created, customer)
	f.customers[customer.ID] = customer

	return nil
}

func (f *fakeCustomerRepo) FindCustomerByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	customer, ok := f.customers[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}

	return customer, nil
}

func (f *fakeCustomerRepo) FindCustomerByEmail(_ context.Context, email string) (*entity.Customer, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, customer := range f.customers {
		if customer.Email == email {
			return customer, nil
		}
	}

	return nil, repository.ErrCustomerNotFound
}

type fakeProductRepo struct {
	products []*entity.Product

	created []*entity.Product
	updated []*entity.Product
	deleted []uuid.UUID

	createErr error
	findErr   error
	updateErr error
	deleteErr error
}

func (f *fakeProductRepo) CreateProduct(_ context.Context, product *entity.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	f.created = append(f.created, product)
	f.products = append(f.products, product)

	return nil
}

func (f *fakeProductRepo) FindProductsByVendor(_ context.Context, vendorID uuid.UUID) ([]*entity.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var owned []*entity.Product
	for _, product := range f.products {
		if product.VendorID == vendorID {
			owned = append(owned, product)
		}
	}

	return owned, nil
}

func (f *fakeProductRepo) UpdateProduct(_ context.Context, product *entity.Product) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, product)

	return nil
}

func (f *fakeProductRepo) DeleteProduct(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)

	return nil
}

type fakeFeedbackRepo struct {
	created   []*entity.Feedback
	recent    []*entity.Feedback
	lastLimit int

	createErr error
	findErr   error
}

func (f *fakeFeedbackRepo) CreateFeedback(_ context.Context, feedback *entity.Feedback) error {
	if f.createErr != nil {
		return f.createErr
	}
	if feedback.ID == uuid.Nil {
		feedback.ID = uuid.New()
	}
	f.created = append(f.created, feedback)

	return nil
}

func (f *fakeFeedbackRepo) FindRecentFeedback(_ context.Context, limit int) ([]*entity.Feedback, error) {
	f.lastLimit = limit
	if f.findErr != nil {
		return nil, f.findErr
	}

	return f.recent, nil
}

type fakeEventPublisher struct {
	events     []*service.LocationEvent
	publishErr error
}

func (f *fakeEventPublisher) PublishLocationEvent(_ context.Context, event *service.LocationEvent) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.events = append(f.events, event)

	return nil
}

func (f *fakeEventPublisher) Close() error {
	return nil
}

type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}

	return "hashed:" + password, nil
}

func (f *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct {
	issuedRoles []entity.Roles
	ttl         time.Duration
	generateErr error
}

func (f *fakeTokenService) GenerateAccessToken(accountID uuid.UUID, roles entity.Roles) (string, error) {
	if f.generateErr != nil {
		return "", f.generateErr
	}
	f.issuedRoles = append(f.issuedRoles, roles)

	return "token-" + accountID.String(), nil
}

func (f *fakeTokenService) ValidateAccessToken(string) (*service.Claims, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTokenService) AccessTokenDuration() time.Duration {
	if f.ttl == 0 {
		return 15 * time.Minute
	}

	return f.ttl
}

type arrivalAlert struct {
	vendorID   uuid.UUID
	vendorName string
	message    string
}

type fakeAlertService struct {
	alerts  []arrivalAlert
	sendErr error
}

func (f *fakeAlertService) SendArrivalAlert(_ context.Context, vendorID uuid.UUID, vendorName, message string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.alerts = append(f.alerts, arrivalAlert{vendorID: vendorID, vendorName: vendorName, message: message})

	return nil
}

type fakePhotoStore struct {
	savedVendor      uuid.UUID
	savedContentType string
	saveErr          error
}

func (f *fakePhotoStore) SavePhoto(_ context.Context, vendorID uuid.UUID, contentType string, r io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.savedVendor = vendorID
	f.savedContentType = contentType
	_, _ = io.Copy(io.Discard, r)

	return "/photos/vendors/" + vendorID.String() + "/photo.png", nil
}

type fakeQRCodeService struct {
	png         []byte
	generateErr error
}

func (f *fakeQRCodeService) GenerateProfileQR(uuid.UUID) ([]byte, error) {
	if f.generateErr != nil {
		return nil, f.generateErr
	}

	return f.png, nil
}

func (f *fakeQRCodeService) ParseProfileQR(string) (uuid.UUID, error) {
	return uuid.Nil, errors.New("not implemented")
}

// fakeRepoFactory hands out the same fakes the test already holds, so
// assertions can inspect what ran inside the transaction.
type fakeRepoFactory struct {
	vendorRepo   *fakeVendorRepo
	locationRepo *fakeLocationRepo
	productRepo  *fakeProductRepo
}

func (f *fakeRepoFactory) NewVendorRepository() repository.VendorRepository {
	return f.vendorRepo
}

func (f *fakeRepoFactory) NewVendorLocationRepository() repository.VendorLocationRepository {
	return f.locationRepo
}

func (f *fakeRepoFactory) NewProductRepository() repository.ProductRepository {
	return f.productRepo
}

type fakeTxManager struct {
	factory  *fakeRepoFactory
	executed int
	execErr  error
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if f.execErr != nil {
		return f.execErr
	}
	f.executed++

	return fn(f.factory)
}
