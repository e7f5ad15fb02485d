package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roundtable/contract"
	"roundtable/domain"
	apperrors "roundtable/errors"
	"roundtable/mocks"
)

func registered(h, name, model string) domain.Participant {
	return domain.Participant{
		Handle: domain.Handle(h),
		Meta:   domain.DisplayMeta{Name: name, ModelID: model},
	}
}

func Test_Resolve_provisions_once_and_memoizes(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockIBackend(ctrl)
	backend.EXPECT().
		CreateDeskRecord(gomock.Any(), gomock.Any()).
		Return("desk-42", nil).
		Times(1)

	resolver := NewDeskResolver(backend, slog.Default())
	resolver.Register(registered("ada", "Ada", "model-a"))

	first, err := resolver.Resolve(context.Background(), "ada")
	req.NoError(err)
	second, err := resolver.Resolve(context.Background(), "ada")
	req.NoError(err)

	req.Equal("desk-42", first)
	req.Equal(first, second)

	h, ok := resolver.HandleFor("desk-42")
	req.True(ok)
	req.Equal(domain.Handle("ada"), h)
}

func Test_Resolve_concurrent_calls_provision_a_single_desk(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockIBackend(ctrl)
	backend.EXPECT().
		CreateDeskRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.DisplayMeta) (string, error) {
			time.Sleep(20 * time.Millisecond)
			return "desk-1", nil
		}).
		Times(1)

	resolver := NewDeskResolver(backend, slog.Default())
	resolver.Register(registered("ada", "Ada", "model-a"))

	var wg sync.WaitGroup
	results := make([]string, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := resolver.Resolve(context.Background(), "ada")
			assert.NoError(t, err)
			results[i] = id
		}(i)
	}
	wg.Wait()

	for _, id := range results {
		req.Equal("desk-1", id)
	}
}

func Test_Resolve_failure_is_not_memoized(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockIBackend(ctrl)
	gomock.InOrder(
		backend.EXPECT().
			CreateDeskRecord(gomock.Any(), gomock.Any()).
			Return("", fmt.Errorf("backend down")),
		backend.EXPECT().
			CreateDeskRecord(gomock.Any(), gomock.Any()).
			Return("desk-7", nil),
	)

	resolver := NewDeskResolver(backend, slog.Default())
	resolver.Register(registered("bob", "Bob", "model-b"))

	_, err := resolver.Resolve(context.Background(), "bob")
	req.Error(err)

	id, err := resolver.Resolve(context.Background(), "bob")
	req.NoError(err)
	req.Equal("desk-7", id)
}

func Test_Resolve_rejects_unregistered_handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := NewDeskResolver(mocks.NewMockIBackend(ctrl), slog.Default())

	_, err := resolver.Resolve(context.Background(), "ghost")
	require.Error(t, err)
}

func Test_Resolve_rejects_invalid_display_meta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No CreateDeskRecord expectation: validation must fail first.
	resolver := NewDeskResolver(mocks.NewMockIBackend(ctrl), slog.Default())
	resolver.Register(domain.Participant{
		Handle: "nameless",
		Meta:   domain.DisplayMeta{ModelID: "model-x"},
	})

	_, err := resolver.Resolve(context.Background(), "nameless")
	require.ErrorIs(t, err, apperrors.ErrInvalidDeskMeta)
}

func Test_Resolve_drops_non_image_avatar(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	avatar := filepath.Join(t.TempDir(), "avatar.png")
	req.NoError(os.WriteFile(avatar, []byte("definitely not an image"), 0o600))

	var seen domain.DisplayMeta
	backend := mocks.NewMockIBackend(ctrl)
	backend.EXPECT().
		CreateDeskRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, meta domain.DisplayMeta) (string, error) {
			seen = meta
			return "desk-9", nil
		})

	resolver := NewDeskResolver(backend, slog.Default())
	resolver.Register(domain.Participant{
		Handle: "eve",
		Meta:   domain.DisplayMeta{Name: "Eve", ModelID: "model-e", Avatar: avatar},
	})

	_, err := resolver.Resolve(context.Background(), "eve")
	req.NoError(err)
	req.Empty(seen.Avatar)
}

func Test_HandleForName_refuses_ambiguous_names(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := NewDeskResolver(mocks.NewMockIBackend(ctrl), slog.Default())
	resolver.Register(registered("ada", "Ada", "model-a"))
	resolver.Register(registered("ada2", "Ada", "model-b"))
	resolver.Register(registered("bob", "Bob", "model-b"))

	_, ok := resolver.HandleForName("Ada")
	req.False(ok)

	h, ok := resolver.HandleForName("Bob")
	req.True(ok)
	req.Equal(domain.Handle("bob"), h)
}

var _ contract.IResolver = (*DeskResolver)(nil)
