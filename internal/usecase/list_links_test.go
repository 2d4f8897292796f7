package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListLinks_Sorting(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	// порядок хранилища: новые первыми
	stored := []model.Link{
		{ID: 3, ShortCode: "ccc", Title: ptr("banana"), ClickCount: 1, IsActive: true, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 2, ShortCode: "bbb", Title: nil, ClickCount: 10, IsActive: false, CreatedAt: base.Add(time.Hour)},
		{ID: 1, ShortCode: "aaa", Title: ptr("apple"), ClickCount: 5, IsActive: true, CreatedAt: base},
	}

	tests := []struct {
		name     string
		sort     string
		expected []string
	}{
		{name: "Default", sort: "", expected: []string{"ccc", "bbb", "aaa"}},
		{name: "Newest", sort: "date-newest", expected: []string{"ccc", "bbb", "aaa"}},
		{name: "Oldest", sort: "date-oldest", expected: []string{"aaa", "bbb", "ccc"}},
		{name: "Title ascending", sort: "title-asc", expected: []string{"aaa", "ccc", "bbb"}},
		{name: "Title descending", sort: "title-desc", expected: []string{"bbb", "ccc", "aaa"}},
		{name: "Clicks high", sort: "clicks-high", expected: []string{"bbb", "aaa", "ccc"}},
		{name: "Clicks low", sort: "clicks-low", expected: []string{"ccc", "aaa", "bbb"}},
		{name: "Active first", sort: "active", expected: []string{"ccc", "aaa", "bbb"}},
		{name: "Inactive first", sort: "inactive", expected: []string{"bbb", "ccc", "aaa"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usecase, repo, _, _ := newTestUsecase(t)

			repo.EXPECT().
				GetLinksByUserID(mock.Anything, "user-1").
				Return(stored, nil).
				Once()

			links, err := usecase.ListLinks(context.Background(), "user-1", tt.sort)
			require.NoError(t, err)

			codes := make([]string, 0, len(links))
			for _, link := range links {
				codes = append(codes, link.ShortCode)
			}
			assert.Equal(t, tt.expected, codes)
		})
	}

	// исходный срез не изменяется
	assert.Equal(t, "ccc", stored[0].ShortCode)
}

func TestListLinks_InvalidSort(t *testing.T) {
	usecase, _, _, _ := newTestUsecase(t)

	_, err := usecase.ListLinks(context.Background(), "user-1", "random")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "sort", validationErr.Field)
}

func TestListLinks_Errors(t *testing.T) {
	t.Run("Unauthorized", func(t *testing.T) {
		usecase, _, _, _ := newTestUsecase(t)

		_, err := usecase.ListLinks(context.Background(), "", "")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Storage failure", func(t *testing.T) {
		usecase, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().
			GetLinksByUserID(mock.Anything, "user-1").
			Return(nil, errors.New("timeout")).
			Once()

		_, err := usecase.ListLinks(context.Background(), "user-1", "")
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})
}
