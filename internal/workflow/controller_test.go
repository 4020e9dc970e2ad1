package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/amlds-dept/activity-reporter/pkg/errors"
)

type sectionStub struct {
	activityID int64
	idSets     int
	loads      []int64
	saves      int
	loadErr    error
}

func (s *sectionStub) SetActivityID(activityID int64) {
	s.activityID = activityID
	s.idSets++
}

func (s *sectionStub) Load(ctx context.Context, activityID int64) error {
	if s.loadErr != nil {
		return s.loadErr
	}
	s.loads = append(s.loads, activityID)
	return nil
}

func (s *sectionStub) Save(ctx context.Context) error {
	s.saves++
	return nil
}

func TestControllerRefusesLeavingGeneralInfoUnsaved(t *testing.T) {
	c := NewController(nil)

	err := c.Navigate(context.Background(), SectionSpeakerDetails)
	require.Error(t, err)
	assert.True(t, appErrors.IsKind(err, appErrors.KindValidation))
	assert.Equal(t, SectionGeneralInfo, c.Current())

	// Staying on general info is always allowed.
	assert.NoError(t, c.Navigate(context.Background(), SectionGeneralInfo))
}

func TestControllerNavigatesAfterBroadcast(t *testing.T) {
	c := NewController(nil)
	speakers := &sectionStub{}
	require.NoError(t, c.Register(SectionSpeakerDetails, speakers))

	c.Broadcast(7)
	require.NoError(t, c.Navigate(context.Background(), SectionSpeakerDetails))
	assert.Equal(t, SectionSpeakerDetails, c.Current())
	assert.Equal(t, []int64{7}, speakers.loads)
}

func TestControllerBroadcastReachesAllSectionsOnce(t *testing.T) {
	c := NewController(nil)
	general := &sectionStub{}
	photos := &sectionStub{}
	require.NoError(t, c.Register(SectionGeneralInfo, general))
	require.NoError(t, c.Register(SectionPhotos, photos))

	c.Broadcast(7)
	c.Broadcast(7)

	assert.Equal(t, int64(7), general.activityID)
	assert.Equal(t, int64(7), photos.activityID)
	assert.Equal(t, 1, general.idSets)
	assert.Equal(t, 1, photos.idSets)
	assert.Equal(t, int64(7), c.Context().ActivityID())
}

func TestControllerBroadcastIgnoresZero(t *testing.T) {
	c := NewController(nil)
	general := &sectionStub{}
	require.NoError(t, c.Register(SectionGeneralInfo, general))

	c.Broadcast(0)
	assert.Zero(t, general.idSets)
	assert.Zero(t, c.Context().ActivityID())
}

func TestControllerRegisterUnknownSection(t *testing.T) {
	c := NewController(nil)
	assert.Error(t, c.Register(Section("attendance"), &sectionStub{}))
}

func TestControllerSaveCurrent(t *testing.T) {
	c := NewController(nil)
	general := &sectionStub{}
	require.NoError(t, c.Register(SectionGeneralInfo, general))

	require.NoError(t, c.SaveCurrent(context.Background()))
	assert.Equal(t, 1, general.saves)
}

func TestSectionOrderCoversAllKnownSections(t *testing.T) {
	assert.Len(t, SectionOrder, 8)
	for _, section := range SectionOrder {
		assert.True(t, section.Known())
		assert.NotEmpty(t, section.Title())
	}
	assert.False(t, Section("attendance").Known())
}
