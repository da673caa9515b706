package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestItemSvc — хелпер: сервис с валидацией поверх мока репозитория
func newTestItemSvc(t *testing.T) (ItemService, *mock.MockItemRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)

	return NewItemService(repo, logger.Nop()), repo
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestItemService_List(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	items := []models.Item{{ID: 1, Title: "Buy milk"}, {ID: 2, Title: "Pay rent", Completed: true}}
	repo.EXPECT().ListAll(ctx).Return(items, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestItemService_List_StoreUnavailable(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().ListAll(ctx).Return(nil, store.ErrStoreUnavailable)

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestItemService_Create_Success(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	create := models.ItemCreate{Title: "Buy milk", Priority: models.PriorityLow}
	repo.EXPECT().Create(ctx, create).Return(models.Item{ID: 1, Title: "Buy milk", Priority: models.PriorityLow}, nil)

	item, err := svc.Create(ctx, create)
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)
}

func TestItemService_Create_ValidationStopsBeforeStore(t *testing.T) {
	tests := []struct {
		name    string
		create  models.ItemCreate
		wantErr error
	}{
		{name: "empty title", create: models.ItemCreate{}, wantErr: validators.ErrEmptyTitle},
		{name: "blank title", create: models.ItemCreate{Title: "   "}, wantErr: validators.ErrEmptyTitle},
		{name: "bad priority", create: models.ItemCreate{Title: "x", Priority: "Urgent"}, wantErr: validators.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// repo has no expectations: any call fails the test
			svc, _ := newTestItemSvc(t)

			_, err := svc.Create(context.Background(), tt.create)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, validators.ErrInvalidItem)
		})
	}
}

// ── Get / Update / Complete ──────────────────────────────────────────────────

func TestItemService_Get_InvalidID(t *testing.T) {
	svc, _ := newTestItemSvc(t)

	_, err := svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, validators.ErrInvalidID)
}

func TestItemService_Get_NotFound(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, int64(9)).Return(models.Item{}, store.ErrItemNotFound)

	_, err := svc.Get(ctx, 9)
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestItemService_Update_EmptyIsForwarded(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().Update(ctx, int64(3), models.ItemUpdate{}).Return(models.Item{ID: 3, Title: "x"}, nil)

	item, err := svc.Update(ctx, 3, models.ItemUpdate{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), item.ID)
}

func TestItemService_Update_BlankTitle(t *testing.T) {
	svc, _ := newTestItemSvc(t)
	blank := ""

	_, err := svc.Update(context.Background(), 3, models.ItemUpdate{Title: &blank})
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}

func TestItemService_Complete(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().Update(ctx, int64(2), models.MarkCompleted()).
		Return(models.Item{ID: 2, Title: "Pay rent", Completed: true}, nil).
		Times(2)

	for range 2 {
		item, err := svc.Complete(ctx, 2)
		require.NoError(t, err)
		assert.True(t, item.Completed)
	}
}

func TestItemService_Complete_NotFound(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().Update(ctx, int64(2), gomock.Any()).Return(models.Item{}, store.ErrItemNotFound)

	_, err := svc.Complete(ctx, 2)
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestItemService_Delete(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Delete(ctx, int64(4)).Return(true, nil),
		repo.EXPECT().Delete(ctx, int64(4)).Return(false, nil),
	)

	deleted, err := svc.Delete(ctx, 4)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, 4)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestItemService_Delete_Error(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	boom := errors.New("disk I/O error")
	repo.EXPECT().Delete(ctx, int64(4)).Return(false, boom)

	deleted, err := svc.Delete(ctx, 4)
	assert.False(t, deleted)
	assert.ErrorIs(t, err, boom)
}

// ── NewServices ──────────────────────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	storages := store.NewUnavailableStorages(errors.New("no file"))

	services, err := NewServices(storages, config.App{Version: "1.0.0"}, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, services.ItemService)
	require.NotNil(t, services.AppInfoService)

	_, err = services.ItemService.List(context.Background())
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}
