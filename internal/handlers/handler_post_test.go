package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/myanimeverse/animeverse_backend/internal/apperrors"
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	portssvc "github.com/myanimeverse/animeverse_backend/internal/core/ports/services"
	"github.com/myanimeverse/animeverse_backend/internal/dto"
	"github.com/myanimeverse/animeverse_backend/internal/handlers"
	"github.com/myanimeverse/animeverse_backend/internal/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PostService ---
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPosts(ctx context.Context, category string) ([]domain.PostWithAuthor, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PostWithAuthor), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID int64) (*domain.PostWithAuthor, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostWithAuthor), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, req dto.CreatePostRequest, actingUserID int64) (int64, error) {
	args := m.Called(ctx, req, actingUserID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostService) ReplacePost(ctx context.Context, postID int64, req dto.CreatePostRequest, actingUserID int64) (*domain.PostWithAuthor, error) {
	args := m.Called(ctx, postID, req, actingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostWithAuthor), args.Error(1)
}

func (m *MockPostService) PatchPost(ctx context.Context, postID int64, req dto.PatchPostRequest, actingUserID int64) (*domain.PostWithAuthor, error) {
	args := m.Called(ctx, postID, req, actingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostWithAuthor), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID int64, actingUserID int64) error {
	args := m.Called(ctx, postID, actingUserID)
	return args.Error(0)
}

func (m *MockPostService) ListMyPosts(ctx context.Context, actingUserID int64) ([]domain.PostWithAuthor, error) {
	args := m.Called(ctx, actingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PostWithAuthor), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PostSvcFacade = (*MockPostService)(nil)

// --- Test Suite ---
type PostHandlerTestSuite struct {
	suite.Suite
	rig             *sessionRig
	mockPostService *MockPostService
}

func (suite *PostHandlerTestSuite) SetupTest() {
	suite.rig = newSessionRig()
	suite.mockPostService = new(MockPostService)

	authRequired := middleware.SessionAuthMiddleware(suite.rig.sessions)
	handlers.RegisterPostRoutes(suite.rig.router, suite.mockPostService, authRequired)
}

func (suite *PostHandlerTestSuite) jsonRequest(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	return suite.rig.do(req)
}

// --- Public Read Tests ---

func (suite *PostHandlerTestSuite) TestListPosts_ReturnsBareArray() {
	now := time.Now().UTC()
	posts := []domain.PostWithAuthor{
		{Post: domain.Post{PostID: 2, Title: "Newer", CreatedAt: now, UpdatedAt: now}, Username: "misa"},
		{Post: domain.Post{PostID: 1, Title: "Older", CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)}, Username: "lightfan"},
	}
	suite.mockPostService.On("ListPosts", mock.Anything, "").Return(posts, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	w := suite.rig.do(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.PostResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal(int64(2), resp[0].PostID)
	suite.Equal("misa", resp[0].Username)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestListPosts_CategoryQueryPassedThrough() {
	suite.mockPostService.On("ListPosts", mock.Anything, "Movies").Return([]domain.PostWithAuthor{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/posts?category=Movies", nil)
	w := suite.rig.do(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestGetPost_NotFound() {
	suite.mockPostService.On("GetPost", mock.Anything, int64(404)).
		Return(nil, apperrors.NewNotFoundError("Post not found")).Once()

	req := httptest.NewRequest(http.MethodGet, "/posts/404", nil)
	w := suite.rig.do(req)

	suite.Equal(http.StatusNotFound, w.Code)
	var resp handlers.MessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Post not found", resp.Message)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestGetPost_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/posts/not-a-number", nil)
	w := suite.rig.do(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.MessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Invalid post ID", resp.Message)
}

// --- Session Gate Tests ---

func (suite *PostHandlerTestSuite) TestCreatePost_NoSession() {
	w := suite.jsonRequest(http.MethodPost, "/createpost", gin.H{
		"title":       "t",
		"description": "d",
		"picture":     "p.png",
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
	var resp handlers.MessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Unauthorized: login required", resp.Message)
}

// --- Authenticated Mutation Tests ---

func (suite *PostHandlerTestSuite) TestCreatePost_Success() {
	cookie := suite.rig.login(7, "lightfan")
	suite.Require().NotNil(cookie)

	suite.mockPostService.On("CreatePost", mock.Anything, mock.MatchedBy(func(req dto.CreatePostRequest) bool {
		return req.Title == "Death Note" && req.Category == "Series"
	}), int64(7)).Return(int64(21), nil).Once()

	w := suite.jsonRequest(http.MethodPost, "/createpost", gin.H{
		"title":       "Death Note",
		"description": "A notebook that kills",
		"picture":     "1700000000000-cover.png",
		"category":    "Series",
	}, cookie)

	suite.Equal(http.StatusCreated, w.Code)
	var resp handlers.PostMutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal("Post created successfully", resp.Message)
	suite.Equal(int64(21), resp.PostID)
	suite.Nil(resp.Post)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestReplacePost_ReturnsUpdatedPost() {
	cookie := suite.rig.login(7, "lightfan")
	suite.Require().NotNil(cookie)

	updated := &domain.PostWithAuthor{Post: domain.Post{PostID: 21, Title: "New Title"}, Username: "lightfan"}
	suite.mockPostService.On("ReplacePost", mock.Anything, int64(21), mock.AnythingOfType("dto.CreatePostRequest"), int64(7)).
		Return(updated, nil).Once()

	w := suite.jsonRequest(http.MethodPut, "/posts/21", gin.H{
		"title":       "New Title",
		"description": "New Desc",
		"picture":     "new.png",
	}, cookie)

	suite.Equal(http.StatusOK, w.Code)
	var resp handlers.PostMutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Post updated successfully", resp.Message)
	suite.Require().NotNil(resp.Post)
	suite.Equal("New Title", resp.Post.Title)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestReplacePost_NotOwner() {
	cookie := suite.rig.login(8, "misa")
	suite.Require().NotNil(cookie)

	suite.mockPostService.On("ReplacePost", mock.Anything, int64(21), mock.AnythingOfType("dto.CreatePostRequest"), int64(8)).
		Return(nil, apperrors.NewForbiddenError("Unauthorized: You can only update your own posts")).Once()

	w := suite.jsonRequest(http.MethodPut, "/posts/21", gin.H{
		"title":       "Hijack",
		"description": "d",
		"picture":     "p.png",
	}, cookie)

	suite.Equal(http.StatusForbidden, w.Code)
	var resp handlers.MessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Unauthorized: You can only update your own posts", resp.Message)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestPatchPost_EmptyBody() {
	cookie := suite.rig.login(7, "lightfan")
	suite.Require().NotNil(cookie)

	suite.mockPostService.On("PatchPost", mock.Anything, int64(21), mock.MatchedBy(func(req dto.PatchPostRequest) bool {
		return req.IsEmpty()
	}), int64(7)).Return(nil, apperrors.NewBadRequestError("No valid fields provided for update")).Once()

	w := suite.jsonRequest(http.MethodPatch, "/posts/21", gin.H{}, cookie)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.MessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("No valid fields provided for update", resp.Message)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestDeletePost_Success() {
	cookie := suite.rig.login(7, "lightfan")
	suite.Require().NotNil(cookie)

	suite.mockPostService.On("DeletePost", mock.Anything, int64(21), int64(7)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/posts/21", nil)
	req.AddCookie(cookie)
	w := suite.rig.do(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp handlers.MessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal("Post deleted successfully", resp.Message)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestListMyPosts_Envelope() {
	cookie := suite.rig.login(7, "lightfan")
	suite.Require().NotNil(cookie)

	posts := []domain.PostWithAuthor{
		{Post: domain.Post{PostID: 5, Title: "Mine"}, Username: "lightfan"},
	}
	suite.mockPostService.On("ListMyPosts", mock.Anything, int64(7)).Return(posts, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/my-posts", nil)
	req.AddCookie(cookie)
	w := suite.rig.do(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp handlers.MyPostsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(1, resp.Count)
	suite.Require().Len(resp.Posts, 1)
	suite.Equal(int64(5), resp.Posts[0].PostID)
	suite.mockPostService.AssertExpectations(suite.T())
}

func TestPostHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PostHandlerTestSuite))
}
