package services

import (
	"bookmarks-api/database"
	"bookmarks-api/fixtures"
	"bookmarks-api/models"
	"bookmarks-api/validator"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==================== MOCKS ====================

// MockBookmarkRepository is a mock implementation of BookmarkRepository interface
type MockBookmarkRepository struct {
	mock.Mock
}

var _ BookmarkRepository = (*MockBookmarkRepository)(nil)

func (m *MockBookmarkRepository) GetAll(ctx context.Context, h database.Runner) ([]models.Bookmark, error) {
	args := m.Called(ctx, h)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) GetByID(ctx context.Context, h database.Runner, id int64) (*models.Bookmark, error) {
	args := m.Called(ctx, h, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) Insert(ctx context.Context, h database.Runner, req models.CreateBookmarkRequest) (*models.Bookmark, error) {
	args := m.Called(ctx, h, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) Update(ctx context.Context, h database.Runner, id int64, patch models.BookmarkPatch) (int64, error) {
	args := m.Called(ctx, h, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookmarkRepository) Delete(ctx context.Context, h database.Runner, id int64) (int64, error) {
	args := m.Called(ctx, h, id)
	return args.Get(0).(int64), args.Error(1)
}

// ==================== HELPERS ====================

func newTestService() (*BookmarkService, *MockBookmarkRepository) {
	repo := new(MockBookmarkRepository)
	return NewBookmarkService((*database.DB)(nil), repo, validator.New()), repo
}

func assertValidation(t *testing.T, err error, message string) {
	t.Helper()
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "expected ValidationError, got %v", err)
	assert.Equal(t, message, validationErr.Message)
}

var errStorage = &database.StorageError{Op: "select bookmarks", Err: errors.New("connection lost")}

// ==================== TESTS ====================

func TestBookmarkService_List(t *testing.T) {
	t.Run("Returns repository rows", func(t *testing.T) {
		svc, repo := newTestService()
		rows := fixtures.MakeBookmarksArray()
		repo.On("GetAll", mock.Anything, mock.Anything).Return(rows, nil)

		got, err := svc.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, rows, got)
		repo.AssertExpectations(t)
	})

	t.Run("Propagates storage errors", func(t *testing.T) {
		svc, repo := newTestService()
		repo.On("GetAll", mock.Anything, mock.Anything).Return(nil, errStorage)

		_, err := svc.List(context.Background())

		assert.ErrorIs(t, err, errStorage)
	})
}

func TestBookmarkService_Get(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc, repo := newTestService()
		b := fixtures.MakeBookmarksArray()[1]
		repo.On("GetByID", mock.Anything, mock.Anything, int64(2)).Return(&b, nil)

		got, err := svc.Get(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, &b, got)
	})

	t.Run("Not found", func(t *testing.T) {
		svc, repo := newTestService()
		repo.On("GetByID", mock.Anything, mock.Anything, int64(1000)).Return(nil, nil)

		_, err := svc.Get(context.Background(), 1000)

		assert.ErrorIs(t, err, ErrBookmarkNotFound)
	})
}

func TestBookmarkService_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateBookmarkRequest
		wantMsg string
	}{
		{
			name:    "Missing title",
			req:     models.CreateBookmarkRequest{URL: "http://example.com"},
			wantMsg: MsgInvalidTitle,
		},
		{
			name:    "Missing title and url reports title",
			req:     models.CreateBookmarkRequest{},
			wantMsg: MsgInvalidTitle,
		},
		{
			name:    "Missing url",
			req:     models.CreateBookmarkRequest{Title: "Bookmark Title"},
			wantMsg: MsgInvalidURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()

			_, err := svc.Create(context.Background(), tt.req)

			assertValidation(t, err, tt.wantMsg)
			repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("Valid request is inserted", func(t *testing.T) {
		svc, repo := newTestService()
		req := models.CreateBookmarkRequest{Title: "Bookmark Title", URL: "http://example.com"}
		created := &models.Bookmark{ID: 1, Title: req.Title, URL: req.URL}
		repo.On("Insert", mock.Anything, mock.Anything, req).Return(created, nil)

		got, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, created, got)
		repo.AssertExpectations(t)
	})
}

func TestBookmarkService_Update(t *testing.T) {
	existing := fixtures.MakeBookmarksArray()[2]

	t.Run("Missing bookmark is checked before the body", func(t *testing.T) {
		svc, repo := newTestService()
		repo.On("GetByID", mock.Anything, mock.Anything, int64(1000)).Return(nil, nil)

		err := svc.Update(context.Background(), 1000, models.BookmarkPatch{})

		assert.ErrorIs(t, err, ErrBookmarkNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Empty patch", func(t *testing.T) {
		svc, repo := newTestService()
		repo.On("GetByID", mock.Anything, mock.Anything, int64(3)).Return(&existing, nil)

		err := svc.Update(context.Background(), 3, models.BookmarkPatch{})

		assertValidation(t, err, MsgEmptyPatch)
	})

	t.Run("Clearing title is rejected", func(t *testing.T) {
		svc, repo := newTestService()
		repo.On("GetByID", mock.Anything, mock.Anything, int64(3)).Return(&existing, nil)

		err := svc.Update(context.Background(), 3, models.BookmarkPatch{Title: models.Null[string]()})

		assertValidation(t, err, MsgInvalidTitle)
	})

	t.Run("Empty url is rejected", func(t *testing.T) {
		svc, repo := newTestService()
		repo.On("GetByID", mock.Anything, mock.Anything, int64(3)).Return(&existing, nil)

		err := svc.Update(context.Background(), 3, models.BookmarkPatch{URL: models.Some("")})

		assertValidation(t, err, MsgInvalidURL)
	})

	t.Run("Applies patch", func(t *testing.T) {
		svc, repo := newTestService()
		patch := models.BookmarkPatch{Title: models.Some("Updated BING")}
		repo.On("GetByID", mock.Anything, mock.Anything, int64(3)).Return(&existing, nil)
		repo.On("Update", mock.Anything, mock.Anything, int64(3), patch).Return(int64(1), nil)

		err := svc.Update(context.Background(), 3, patch)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Row vanished before update", func(t *testing.T) {
		svc, repo := newTestService()
		patch := models.BookmarkPatch{Rating: models.Some(5)}
		repo.On("GetByID", mock.Anything, mock.Anything, int64(3)).Return(&existing, nil)
		repo.On("Update", mock.Anything, mock.Anything, int64(3), patch).Return(int64(0), nil)

		err := svc.Update(context.Background(), 3, patch)

		assert.ErrorIs(t, err, ErrBookmarkNotFound)
	})
}

func TestBookmarkService_Delete(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		svc, repo := newTestService()
		repo.On("Delete", mock.Anything, mock.Anything, int64(1)).Return(int64(1), nil)

		assert.NoError(t, svc.Delete(context.Background(), 1))
	})

	t.Run("Not found", func(t *testing.T) {
		svc, repo := newTestService()
		repo.On("Delete", mock.Anything, mock.Anything, int64(1000)).Return(int64(0), nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), 1000), ErrBookmarkNotFound)
	})

	t.Run("Storage error", func(t *testing.T) {
		svc, repo := newTestService()
		repo.On("Delete", mock.Anything, mock.Anything, int64(1)).Return(int64(0), errStorage)

		err := svc.Delete(context.Background(), 1)

		var storageErr *database.StorageError
		assert.True(t, errors.As(err, &storageErr))
	})
}
