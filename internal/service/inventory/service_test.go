package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiermedia/AdBookingService/internal/domain"
	channelRepo "github.com/premiermedia/AdBookingService/internal/infra/storage/channel"
	"github.com/premiermedia/AdBookingService/internal/service/inventory/models"
	"github.com/premiermedia/AdBookingService/pkg/ptr"
)

type fakeChannelRepo struct {
	channels map[string]*domain.Channel
	deleted  []string
}

func (f *fakeChannelRepo) List(_ context.Context, typeFilter *domain.ChannelType) ([]*domain.Channel, error) {
	var out []*domain.Channel
	for _, ch := range f.channels {
		if typeFilter == nil || ch.Type == *typeFilter {
			out = append(out, ch)
		}
	}
	return out, nil
}

func (f *fakeChannelRepo) GetByID(_ context.Context, id string) (*domain.Channel, error) {
	ch, ok := f.channels[id]
	if !ok {
		return nil, channelRepo.ErrChannelNotFound
	}
	c := *ch
	return &c, nil
}

func (f *fakeChannelRepo) Create(_ context.Context, ch *domain.Channel) (*domain.Channel, error) {
	if _, ok := f.channels[ch.ID]; ok {
		return nil, channelRepo.ErrChannelExists
	}
	f.channels[ch.ID] = ch
	return ch, nil
}

func (f *fakeChannelRepo) Update(_ context.Context, ch *domain.Channel) error {
	if _, ok := f.channels[ch.ID]; !ok {
		return channelRepo.ErrChannelNotFound
	}
	f.channels[ch.ID] = ch
	return nil
}

func (f *fakeChannelRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.channels[id]; !ok {
		return channelRepo.ErrChannelNotFound
	}
	delete(f.channels, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeBookingRepo struct {
	counts map[string]int
}

func (f *fakeBookingRepo) CountByChannel(_ context.Context, channelID string) (int, error) {
	return f.counts[channelID], nil
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) InvalidateCalendars(context.Context) {
	f.calls++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(channels map[string]*domain.Channel, counts map[string]int) (*Service, *fakeChannelRepo, *fakeInvalidator) {
	if channels == nil {
		channels = make(map[string]*domain.Channel)
	}
	repo := &fakeChannelRepo{channels: channels}
	invalidator := &fakeInvalidator{}
	svc := NewService(repo, &fakeBookingRepo{counts: counts}, invalidator, nopLogger{})
	return svc, repo, invalidator
}

func TestCreate_ValidChannel(t *testing.T) {
	svc, _, invalidator := newTestService(nil, nil)

	resp, err := svc.Create(context.Background(), &models.CreateChannelRequest{
		ID:            "email-pg",
		Name:          "Daily Briefing",
		Type:          "ADS_IN_ESEND",
		TotalCapacity: 1,
		Unit:          "slots",
		Cadence:       "fri",
	})
	require.NoError(t, err)

	assert.Equal(t, "email-pg", resp.ID)
	assert.Equal(t, "fri", resp.Cadence)
	assert.Equal(t, 1, invalidator.calls)
}

func TestCreate_DuplicateID(t *testing.T) {
	svc, _, _ := newTestService(map[string]*domain.Channel{
		"email-pg": {ID: "email-pg", Type: domain.TypeAdsInESend},
	}, nil)

	_, err := svc.Create(context.Background(), &models.CreateChannelRequest{
		ID:   "email-pg",
		Name: "Duplicate",
		Type: "ADS_IN_ESEND",
	})
	require.ErrorIs(t, err, ErrChannelExists)
}

func TestCreate_RejectsUnknownType(t *testing.T) {
	svc, _, _ := newTestService(nil, nil)

	_, err := svc.Create(context.Background(), &models.CreateChannelRequest{
		ID:   "x",
		Name: "X",
		Type: "PRINT",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_CapacityTakesImmediateEffect(t *testing.T) {
	svc, repo, invalidator := newTestService(map[string]*domain.Channel{
		"audio-pop": {ID: "audio-pop", Name: "Pop", Type: domain.TypeAudio, TotalCapacity: 100},
	}, nil)

	resp, err := svc.Update(context.Background(), "audio-pop", &models.UpdateChannelRequest{
		TotalCapacity: ptr.Ptr(50),
	})
	require.NoError(t, err)

	assert.Equal(t, 50, resp.TotalCapacity)
	assert.Equal(t, 50, repo.channels["audio-pop"].TotalCapacity)
	assert.Equal(t, 1, invalidator.calls)
}

func TestDelete_RefusedWhenReferenced(t *testing.T) {
	svc, repo, _ := newTestService(map[string]*domain.Channel{
		"email-pg": {ID: "email-pg", Type: domain.TypeAdsInESend},
	}, map[string]int{"email-pg": 3})

	err := svc.Delete(context.Background(), "email-pg")

	require.ErrorIs(t, err, ErrChannelInUse)
	assert.Empty(t, repo.deleted)
}

func TestDelete_UnreferencedChannel(t *testing.T) {
	svc, repo, invalidator := newTestService(map[string]*domain.Channel{
		"email-pg": {ID: "email-pg", Type: domain.TypeAdsInESend},
	}, nil)

	err := svc.Delete(context.Background(), "email-pg")

	require.NoError(t, err)
	assert.Equal(t, []string{"email-pg"}, repo.deleted)
	assert.Equal(t, 1, invalidator.calls)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _, _ := newTestService(nil, nil)

	err := svc.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, ErrChannelNotFound)
}
