package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/myanimeverse/animeverse_backend/internal/apperrors"
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	portsrepo "github.com/myanimeverse/animeverse_backend/internal/core/ports/repositories"
	portssvc "github.com/myanimeverse/animeverse_backend/internal/core/ports/services"
	"github.com/myanimeverse/animeverse_backend/internal/core/services"
	"github.com/myanimeverse/animeverse_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PostRepository ---
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) FindPostByID(ctx context.Context, postID int64) (*domain.Post, error) {
	args := m.Called(ctx, postID)
	var post *domain.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*domain.Post)
	}
	return post, args.Error(1)
}

func (m *MockPostRepository) FindPostWithAuthor(ctx context.Context, postID int64) (*domain.PostWithAuthor, error) {
	args := m.Called(ctx, postID)
	var post *domain.PostWithAuthor
	if args.Get(0) != nil {
		post = args.Get(0).(*domain.PostWithAuthor)
	}
	return post, args.Error(1)
}

func (m *MockPostRepository) FindPosts(ctx context.Context, category string) ([]domain.PostWithAuthor, error) {
	args := m.Called(ctx, category)
	var posts []domain.PostWithAuthor
	if args.Get(0) != nil {
		posts = args.Get(0).([]domain.PostWithAuthor)
	}
	return posts, args.Error(1)
}

func (m *MockPostRepository) FindPostsByOwner(ctx context.Context, ownerID string) ([]domain.PostWithAuthor, error) {
	args := m.Called(ctx, ownerID)
	var posts []domain.PostWithAuthor
	if args.Get(0) != nil {
		posts = args.Get(0).([]domain.PostWithAuthor)
	}
	return posts, args.Error(1)
}

func (m *MockPostRepository) SavePost(ctx context.Context, post domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) UpdatePost(ctx context.Context, post domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) DeletePost(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portsrepo.PostRepositoryFacade = (*MockPostRepository)(nil)

// --- Test Suite ---
type PostServiceTestSuite struct {
	suite.Suite
	mockPostRepo    *MockPostRepository
	mockUserRepo    *MockUserRepository
	mockCounterRepo *MockCounterRepository
	service         portssvc.PostSvcFacade

	owner *domain.User
}

func (suite *PostServiceTestSuite) SetupTest() {
	suite.mockPostRepo = new(MockPostRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCounterRepo = new(MockCounterRepository)
	suite.service = services.NewPostService(suite.mockPostRepo, suite.mockUserRepo, suite.mockCounterRepo)

	suite.owner = &domain.User{ID: uuid.NewString(), UserID: 7, Username: "lightfan"}
}

// --- CreatePost Tests ---

func (suite *PostServiceTestSuite) TestCreatePost_Success() {
	ctx := context.Background()
	req := dto.CreatePostRequest{
		Title:       "Death Note",
		Description: "A notebook that kills",
		Picture:     "1700000000000-cover.png",
		Genres:      []string{"Thriller", "Supernatural"},
		Category:    "Series",
	}

	suite.mockUserRepo.On("FindUserByPublicID", ctx, suite.owner.UserID).Return(suite.owner, nil).Once()
	suite.mockCounterRepo.On("Next", ctx, portsrepo.CounterPosts).Return(int64(21), nil).Once()
	suite.mockPostRepo.On("SavePost", ctx, mock.MatchedBy(func(post domain.Post) bool {
		return post.PostID == 21 && post.OwnerID == suite.owner.ID && post.Title == req.Title
	})).Return(nil).Once()

	postID, err := suite.service.CreatePost(ctx, req, suite.owner.UserID)

	suite.Require().NoError(err)
	suite.Equal(int64(21), postID)
	suite.mockPostRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockCounterRepo.AssertExpectations(suite.T())
}

func (suite *PostServiceTestSuite) TestCreatePost_SessionOutlivedAccount() {
	ctx := context.Background()
	req := dto.CreatePostRequest{Title: "t", Description: "d", Picture: "p"}

	suite.mockUserRepo.On("FindUserByPublicID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	postID, err := suite.service.CreatePost(ctx, req, 99)

	suite.Require().Error(err)
	suite.Zero(postID)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(401, appErr.Code)
	suite.Equal("User not found. Please login again.", appErr.Message)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *PostServiceTestSuite) TestCreatePost_IDConflict() {
	ctx := context.Background()
	req := dto.CreatePostRequest{Title: "t", Description: "d", Picture: "p"}

	suite.mockUserRepo.On("FindUserByPublicID", ctx, suite.owner.UserID).Return(suite.owner, nil).Once()
	suite.mockCounterRepo.On("Next", ctx, portsrepo.CounterPosts).Return(int64(21), nil).Once()
	suite.mockPostRepo.On("SavePost", ctx, mock.AnythingOfType("domain.Post")).Return(apperrors.ErrDuplicate).Once()

	postID, err := suite.service.CreatePost(ctx, req, suite.owner.UserID)

	suite.Require().Error(err)
	suite.Zero(postID)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(409, appErr.Code)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

// --- ListPosts Tests ---

func (suite *PostServiceTestSuite) TestListPosts_AllMeansNoFilter() {
	ctx := context.Background()
	expected := []domain.PostWithAuthor{{Post: domain.Post{PostID: 1}}, {Post: domain.Post{PostID: 2}}}

	suite.mockPostRepo.On("FindPosts", ctx, "").Return(expected, nil).Once()

	posts, err := suite.service.ListPosts(ctx, "All")

	suite.Require().NoError(err)
	suite.Equal(expected, posts)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

func (suite *PostServiceTestSuite) TestListPosts_CategoryFilter() {
	ctx := context.Background()
	expected := []domain.PostWithAuthor{{Post: domain.Post{PostID: 3, Category: "Movies"}}}

	suite.mockPostRepo.On("FindPosts", ctx, "Movies").Return(expected, nil).Once()

	posts, err := suite.service.ListPosts(ctx, "Movies")

	suite.Require().NoError(err)
	suite.Equal(expected, posts)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

// --- GetPost Tests ---

func (suite *PostServiceTestSuite) TestGetPost_NotFound() {
	ctx := context.Background()

	suite.mockPostRepo.On("FindPostWithAuthor", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	post, err := suite.service.GetPost(ctx, 404)

	suite.Require().Error(err)
	suite.Nil(post)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(404, appErr.Code)
	suite.Equal("Post not found", appErr.Message)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

// --- ReplacePost Tests ---

func (suite *PostServiceTestSuite) TestReplacePost_Success() {
	ctx := context.Background()
	req := dto.CreatePostRequest{Title: "New Title", Description: "New Desc", Picture: "new.png"}
	existing := &domain.Post{PostID: 21, Title: "Old", OwnerID: suite.owner.ID}
	updated := &domain.PostWithAuthor{Post: domain.Post{PostID: 21, Title: "New Title"}, Username: suite.owner.Username}

	suite.mockUserRepo.On("FindUserByPublicID", ctx, suite.owner.UserID).Return(suite.owner, nil).Once()
	suite.mockPostRepo.On("FindPostByID", ctx, int64(21)).Return(existing, nil).Once()
	suite.mockPostRepo.On("UpdatePost", ctx, mock.MatchedBy(func(post domain.Post) bool {
		return post.PostID == 21 && post.Title == "New Title"
	})).Return(nil).Once()
	suite.mockPostRepo.On("FindPostWithAuthor", ctx, int64(21)).Return(updated, nil).Once()

	post, err := suite.service.ReplacePost(ctx, 21, req, suite.owner.UserID)

	suite.Require().NoError(err)
	suite.Equal(updated, post)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

func (suite *PostServiceTestSuite) TestReplacePost_NotOwner() {
	ctx := context.Background()
	req := dto.CreatePostRequest{Title: "t", Description: "d", Picture: "p"}
	existing := &domain.Post{PostID: 21, OwnerID: uuid.NewString()}

	suite.mockUserRepo.On("FindUserByPublicID", ctx, suite.owner.UserID).Return(suite.owner, nil).Once()
	suite.mockPostRepo.On("FindPostByID", ctx, int64(21)).Return(existing, nil).Once()

	post, err := suite.service.ReplacePost(ctx, 21, req, suite.owner.UserID)

	suite.Require().Error(err)
	suite.Nil(post)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(403, appErr.Code)
	suite.Equal("Unauthorized: You can only update your own posts", appErr.Message)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

// --- PatchPost Tests ---

func (suite *PostServiceTestSuite) TestPatchPost_EmptyPatch() {
	ctx := context.Background()

	post, err := suite.service.PatchPost(ctx, 21, dto.PatchPostRequest{}, suite.owner.UserID)

	suite.Require().Error(err)
	suite.Nil(post)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
	suite.Equal("No valid fields provided for update", appErr.Message)
}

func (suite *PostServiceTestSuite) TestPatchPost_PartialUpdate() {
	ctx := context.Background()
	newTitle := "Patched Title"
	req := dto.PatchPostRequest{Title: &newTitle}
	existing := &domain.Post{PostID: 21, Title: "Old", Description: "Keep", OwnerID: suite.owner.ID}
	updated := &domain.PostWithAuthor{Post: domain.Post{PostID: 21, Title: newTitle, Description: "Keep"}}

	suite.mockUserRepo.On("FindUserByPublicID", ctx, suite.owner.UserID).Return(suite.owner, nil).Once()
	suite.mockPostRepo.On("FindPostByID", ctx, int64(21)).Return(existing, nil).Once()
	suite.mockPostRepo.On("UpdatePost", ctx, mock.MatchedBy(func(post domain.Post) bool {
		return post.Title == newTitle && post.Description == "Keep"
	})).Return(nil).Once()
	suite.mockPostRepo.On("FindPostWithAuthor", ctx, int64(21)).Return(updated, nil).Once()

	post, err := suite.service.PatchPost(ctx, 21, req, suite.owner.UserID)

	suite.Require().NoError(err)
	suite.Equal(updated, post)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

// --- DeletePost Tests ---

func (suite *PostServiceTestSuite) TestDeletePost_Success() {
	ctx := context.Background()
	existing := &domain.Post{PostID: 21, OwnerID: suite.owner.ID}

	suite.mockUserRepo.On("FindUserByPublicID", ctx, suite.owner.UserID).Return(suite.owner, nil).Once()
	suite.mockPostRepo.On("FindPostByID", ctx, int64(21)).Return(existing, nil).Once()
	suite.mockPostRepo.On("DeletePost", ctx, int64(21)).Return(nil).Once()

	err := suite.service.DeletePost(ctx, 21, suite.owner.UserID)

	suite.Require().NoError(err)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

func (suite *PostServiceTestSuite) TestDeletePost_NotOwner() {
	ctx := context.Background()
	existing := &domain.Post{PostID: 21, OwnerID: uuid.NewString()}

	suite.mockUserRepo.On("FindUserByPublicID", ctx, suite.owner.UserID).Return(suite.owner, nil).Once()
	suite.mockPostRepo.On("FindPostByID", ctx, int64(21)).Return(existing, nil).Once()

	err := suite.service.DeletePost(ctx, 21, suite.owner.UserID)

	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(403, appErr.Code)
	suite.Equal("You can only delete your own posts", appErr.Message)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

// --- ListMyPosts Tests ---

func (suite *PostServiceTestSuite) TestListMyPosts_Success() {
	ctx := context.Background()
	expected := []domain.PostWithAuthor{{Post: domain.Post{PostID: 8, OwnerID: suite.owner.ID}}}

	suite.mockUserRepo.On("FindUserByPublicID", ctx, suite.owner.UserID).Return(suite.owner, nil).Once()
	suite.mockPostRepo.On("FindPostsByOwner", ctx, suite.owner.ID).Return(expected, nil).Once()

	posts, err := suite.service.ListMyPosts(ctx, suite.owner.UserID)

	suite.Require().NoError(err)
	suite.Equal(expected, posts)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

func TestPostServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostServiceTestSuite))
}
