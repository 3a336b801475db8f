package services_test

import (
	"log/slog"
	"testing"

	"walletlink/internal/dto"
	"walletlink/internal/models"
	"walletlink/internal/repositories"
	"walletlink/internal/repositories/repository_mocks"
	"walletlink/internal/services"
	"walletlink/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	categoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	catalog         *service_mocks.MockCatalogServiceInterface
	service         services.CategoryServiceInterface

	familyID uuid.UUID
	admin    models.Actor
	member   models.Actor
	sibling  models.Actor
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.catalog = service_mocks.NewMockCatalogServiceInterface(s.ctrl)

	s.service = services.NewCategoryService(s.categoryRepo, s.transactionRepo, s.catalog, services.NoopMetrics{}, slog.Default())

	s.familyID = uuid.New()
	s.admin = models.Actor{UserID: uuid.New(), FamilyID: s.familyID, Role: models.RoleAdmin}
	s.member = models.Actor{UserID: uuid.New(), FamilyID: s.familyID, Role: models.RoleMember}
	s.sibling = models.Actor{UserID: uuid.New(), FamilyID: s.familyID, Role: models.RoleMember}
}

func (s *CategoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryServiceTestSuite) category(owner models.Actor, shared bool) *models.Category {
	return &models.Category{
		ID:       uuid.New(),
		Name:     gofakeit.Word(),
		Shared:   shared,
		UserID:   owner.UserID,
		FamilyID: owner.FamilyID,
		IconID:   uuid.New(),
		ColorID:  uuid.New(),
	}
}

func (s *CategoryServiceTestSuite) TestCreateCategory_Success() {
	icon := &models.Icon{ID: uuid.New(), Type: models.IconTypeCategory}
	color := &models.Color{ID: uuid.New()}
	req := &dto.CreateCategoryRequest{Name: " Groceries ", Shared: true, IconID: icon.ID, ColorID: color.ID}

	s.catalog.EXPECT().GetIcon(icon.ID).Return(icon, nil)
	s.catalog.EXPECT().GetColor(color.ID).Return(color, nil)
	s.categoryRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(category *models.Category) error {
		s.Equal("Groceries", category.Name)
		s.True(category.Shared)
		s.Equal(s.member.UserID, category.UserID)
		s.Equal(s.familyID, category.FamilyID)
		return nil
	})

	category, err := s.service.CreateCategory(s.member, req)

	s.Require().NoError(err)
	s.Equal(icon, category.Icon)
	s.Equal(color, category.Color)
}

func (s *CategoryServiceTestSuite) TestCreateCategory_UnknownIcon() {
	req := &dto.CreateCategoryRequest{Name: "Fun", IconID: uuid.New(), ColorID: uuid.New()}

	s.catalog.EXPECT().GetIcon(req.IconID).Return(nil, services.ErrIconNotFound)

	_, err := s.service.CreateCategory(s.member, req)

	s.ErrorIs(err, services.ErrIconNotFound)
}

func (s *CategoryServiceTestSuite) TestListCategories() {
	visible := []models.Category{*s.category(s.member, false), *s.category(s.sibling, true)}

	s.categoryRepo.EXPECT().ListVisible(s.member.UserID, s.familyID).Return(visible, nil)

	categories, err := s.service.ListCategories(s.member)

	s.NoError(err)
	s.Len(categories, 2)
}

func (s *CategoryServiceTestSuite) TestUpdateCategory_Owner() {
	category := s.category(s.member, false)
	name := "Renamed"
	shared := true

	s.categoryRepo.EXPECT().GetByID(category.ID).Return(category, nil)
	s.categoryRepo.EXPECT().Update(gomock.Any()).Return(nil)

	updated, err := s.service.UpdateCategory(s.member, category.ID, &dto.UpdateCategoryRequest{Name: &name, Shared: &shared})

	s.Require().NoError(err)
	s.Equal("Renamed", updated.Name)
	s.True(updated.Shared)
}

func (s *CategoryServiceTestSuite) TestUpdateCategory_AdminManagesMemberCategory() {
	category := s.category(s.member, false)
	name := "Pocket money"

	s.categoryRepo.EXPECT().GetByID(category.ID).Return(category, nil)
	s.categoryRepo.EXPECT().Update(gomock.Any()).Return(nil)

	_, err := s.service.UpdateCategory(s.admin, category.ID, &dto.UpdateCategoryRequest{Name: &name})

	s.NoError(err)
}

func (s *CategoryServiceTestSuite) TestUpdateCategory_SharedButNotOwned() {
	category := s.category(s.sibling, true)
	name := "Hijacked"

	s.categoryRepo.EXPECT().GetByID(category.ID).Return(category, nil)

	_, err := s.service.UpdateCategory(s.member, category.ID, &dto.UpdateCategoryRequest{Name: &name})

	s.ErrorIs(err, services.ErrCategoryNotAccessible)
}

func (s *CategoryServiceTestSuite) TestUpdateCategory_PrivateOfSiblingIsHidden() {
	category := s.category(s.sibling, false)
	name := "Peek"

	s.categoryRepo.EXPECT().GetByID(category.ID).Return(category, nil)

	_, err := s.service.UpdateCategory(s.member, category.ID, &dto.UpdateCategoryRequest{Name: &name})

	s.ErrorIs(err, services.ErrCategoryNotFound)
}

func (s *CategoryServiceTestSuite) TestUpdateCategory_OtherFamilyHidden() {
	category := s.category(models.Actor{UserID: uuid.New(), FamilyID: uuid.New()}, true)
	name := "Peek"

	s.categoryRepo.EXPECT().GetByID(category.ID).Return(category, nil)

	_, err := s.service.UpdateCategory(s.admin, category.ID, &dto.UpdateCategoryRequest{Name: &name})

	s.ErrorIs(err, services.ErrCategoryNotFound)
}

func (s *CategoryServiceTestSuite) TestUpdateCategory_UnknownColor() {
	category := s.category(s.member, false)
	colorID := uuid.New()

	s.categoryRepo.EXPECT().GetByID(category.ID).Return(category, nil)
	s.catalog.EXPECT().GetColor(colorID).Return(nil, services.ErrColorNotFound)

	_, err := s.service.UpdateCategory(s.member, category.ID, &dto.UpdateCategoryRequest{ColorID: &colorID})

	s.ErrorIs(err, services.ErrColorNotFound)
}

func (s *CategoryServiceTestSuite) TestUpdateCategory_Missing() {
	id := uuid.New()
	s.categoryRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrCategoryNotFound)

	_, err := s.service.UpdateCategory(s.member, id, &dto.UpdateCategoryRequest{})

	s.ErrorIs(err, services.ErrCategoryNotFound)
}

func (s *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	category := s.category(s.member, false)

	s.categoryRepo.EXPECT().GetByID(category.ID).Return(category, nil)
	s.transactionRepo.EXPECT().CountByCategory(category.ID).Return(int64(0), nil)
	s.categoryRepo.EXPECT().Delete(category.ID).Return(nil)

	s.NoError(s.service.DeleteCategory(s.member, category.ID))
}

func (s *CategoryServiceTestSuite) TestDeleteCategory_AdminRemovesPrivateMemberCategory() {
	category := s.category(s.member, false)

	s.categoryRepo.EXPECT().GetByID(category.ID).Return(category, nil)
	s.transactionRepo.EXPECT().CountByCategory(category.ID).Return(int64(0), nil)
	s.categoryRepo.EXPECT().Delete(category.ID).Return(nil)

	s.NoError(s.service.DeleteCategory(s.admin, category.ID))
}

func (s *CategoryServiceTestSuite) TestDeleteCategory_InUse() {
	category := s.category(s.member, false)

	s.categoryRepo.EXPECT().GetByID(category.ID).Return(category, nil)
	s.transactionRepo.EXPECT().CountByCategory(category.ID).Return(int64(2), nil)

	err := s.service.DeleteCategory(s.member, category.ID)

	s.ErrorIs(err, services.ErrCategoryHasTransactions)
}
