package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tokengate/ticketing-service/internal/domain"
	"github.com/tokengate/ticketing-service/internal/repository"
)

func newEventService() (*EventService, *fakeEventRepo, *fakeTemplateRepo) {
	users := newFakeUserRepo()
	events := newFakeEventRepo()
	templates := newFakeTemplateRepo()
	logger := zap.NewNop()
	identity := NewIdentityService(users, logger)
	return NewEventService(events, templates, identity, logger), events, templates
}

func TestCreateEvent(t *testing.T) {
	svc, _, _ := newEventService()

	start := time.Now().Add(time.Hour)
	event, err := svc.CreateEvent(context.Background(), EventCreateInput{
		OrganizerWallet: testWalletA,
		Name:            "Summer Fest",
		StartDate:       start,
		EndDate:         start.Add(4 * time.Hour),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.NotEmpty(t, event.OrganizerID)
	assert.Equal(t, 0, event.TotalSold)
}

func TestCreateEventRejectsInvertedWindow(t *testing.T) {
	svc, _, _ := newEventService()

	start := time.Now()
	_, err := svc.CreateEvent(context.Background(), EventCreateInput{
		OrganizerWallet: testWalletA,
		Name:            "Summer Fest",
		StartDate:       start,
		EndDate:         start,
	})
	assert.Error(t, err)
}

func TestPublishEvent(t *testing.T) {
	svc, _, _ := newEventService()

	start := time.Now()
	event, err := svc.CreateEvent(context.Background(), EventCreateInput{
		OrganizerWallet: testWalletA,
		Name:            "Summer Fest",
		StartDate:       start,
		EndDate:         start.Add(time.Hour),
	})
	require.NoError(t, err)
	require.NoError(t, svc.PublishEvent(context.Background(), event.ID))

	listed, err := svc.ListEvents(context.Background(), repository.EventFilter{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, event.ID, listed[0].ID)
}

func TestCreateTemplate(t *testing.T) {
	svc, _, _ := newEventService()

	start := time.Now()
	event, err := svc.CreateEvent(context.Background(), EventCreateInput{
		OrganizerWallet: testWalletA,
		Name:            "Summer Fest",
		StartDate:       start,
		EndDate:         start.Add(time.Hour),
	})
	require.NoError(t, err)

	template, err := svc.CreateTemplate(context.Background(), TemplateCreateInput{
		EventID:     event.ID,
		Name:        "VIP",
		TotalSupply: 50,
		TierRank:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, template.SoldCount)

	templates, err := svc.ListTemplates(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Len(t, templates, 1)
}

func TestCreateTemplateUnknownEvent(t *testing.T) {
	svc, _, _ := newEventService()

	_, err := svc.CreateTemplate(context.Background(), TemplateCreateInput{
		EventID:     "missing",
		Name:        "VIP",
		TotalSupply: 50,
	})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
