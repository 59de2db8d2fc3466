package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tonematch/internal/classifier"
	"github.com/Veraticus/tonematch/internal/common"
	"github.com/Veraticus/tonematch/internal/model"
)

func testImage() model.Image {
	return model.Image{
		Name:   "face.jpg",
		Format: "jpeg",
		Source: model.SourceFile,
		Data:   []byte{0xff, 0xd8, 0xff},
		Width:  640,
		Height: 480,
	}
}

func warmRecord() model.ToneRecord {
	return model.ToneRecord{Tone: "Medium", Undertone: model.UndertoneWarm, Confidence: 88}
}

func TestEngine_StartsIdle(t *testing.T) {
	snap := New().Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.Record)
	assert.Nil(t, snap.Recommendations)
	assert.False(t, snap.HasError())
}

func TestEngine_ResolvesRecommendations(t *testing.T) {
	tests := []struct {
		name      string
		undertone model.Undertone
		want      []model.Season
	}{
		{name: "warm", undertone: model.UndertoneWarm, want: []model.Season{model.SeasonSpring, model.SeasonAutumn}},
		{name: "cool", undertone: model.UndertoneCool, want: []model.Season{model.SeasonSummer, model.SeasonWinter}},
		{name: "neutral", undertone: model.UndertoneNeutral, want: model.Seasons()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			record := model.ToneRecord{Tone: "Tan", Undertone: tt.undertone, Confidence: 80}

			snap, err := e.Analyze(context.Background(), classifier.NewMockClassifier(record), testImage())
			require.NoError(t, err)

			assert.Equal(t, StateResolved, snap.State)
			require.NotNil(t, snap.Record)
			assert.Equal(t, record, *snap.Record)
			require.NotNil(t, snap.Recommendations)
			assert.Equal(t, tt.want, snap.Recommendations.Recommended)
			require.Len(t, snap.Recommendations.All, 4)
			for _, p := range snap.Recommendations.All {
				assert.NotEmpty(t, p.Colors, p.Name)
			}
			require.NotNil(t, snap.Image)
			assert.Equal(t, "face.jpg", snap.Image.Name)
		})
	}
}

func TestEngine_EmptyImageDoesNotTransition(t *testing.T) {
	e := New()
	mock := classifier.NewMockClassifier(warmRecord())

	snap, err := e.Analyze(context.Background(), mock, model.Image{})
	assert.ErrorIs(t, err, common.ErrNoImage)
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, uint64(0), snap.Generation)
	assert.Zero(t, mock.CallCount())

	assert.False(t, e.Fail(common.ErrNoImage))
	assert.Equal(t, StateIdle, e.Snapshot().State)
	assert.False(t, e.Snapshot().HasError())
}

func TestEngine_ClassifierFailureReturnsToIdle(t *testing.T) {
	e := New()
	failing := classifier.NewFailingClassifier(common.ErrClassificationFailed)

	snap, err := e.Analyze(context.Background(), failing, testImage())
	assert.ErrorIs(t, err, common.ErrClassificationFailed)
	assert.Equal(t, StateIdle, snap.State)
	assert.True(t, snap.HasError())
	assert.NotEmpty(t, snap.ErrorMessage)
	assert.Nil(t, snap.Record)
	assert.Nil(t, snap.Recommendations)
	assert.Equal(t, 1, failing.CallCount())
}

func TestEngine_InvalidRecordFails(t *testing.T) {
	e := New()
	gen, err := e.Begin(testImage())
	require.NoError(t, err)

	applied := e.Complete(gen, model.ToneRecord{Tone: "Tan", Undertone: "olive", Confidence: 50}, nil)
	assert.True(t, applied)

	snap := e.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.ErrorIs(t, snap.Err, common.ErrClassificationFailed)
}

func TestEngine_StaleResultIgnored(t *testing.T) {
	e := New()

	first, err := e.Begin(testImage())
	require.NoError(t, err)
	second, err := e.Begin(testImage())
	require.NoError(t, err)
	assert.Greater(t, second, first)

	assert.False(t, e.Complete(first, warmRecord(), nil))
	assert.Equal(t, StateAnalyzing, e.Snapshot().State)

	cool := model.ToneRecord{Tone: "Deep", Undertone: model.UndertoneCool, Confidence: 90}
	assert.True(t, e.Complete(second, cool, nil))
	assert.False(t, e.Complete(second, warmRecord(), nil), "a generation settles once")

	snap := e.Snapshot()
	assert.Equal(t, StateResolved, snap.State)
	assert.Equal(t, model.UndertoneCool, snap.Record.Undertone)
}

func TestEngine_ResetMakesRunningAnalysisStale(t *testing.T) {
	e := New()
	gen, err := e.Begin(testImage())
	require.NoError(t, err)

	e.Reset()
	assert.False(t, e.Complete(gen, warmRecord(), nil))

	snap := e.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.Image)
	assert.Nil(t, snap.Record)
}

func TestEngine_AcquisitionFailure(t *testing.T) {
	e := New()
	_, err := e.Analyze(context.Background(), classifier.NewMockClassifier(warmRecord()), testImage())
	require.NoError(t, err)

	assert.True(t, e.Fail(errors.Join(common.ErrAcquisitionFailed, errors.New("camera unplugged"))))

	snap := e.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Contains(t, snap.ErrorMessage, "Could not get a photo")
	assert.Nil(t, snap.Image)
	assert.Nil(t, snap.Record)
}

func TestEngine_NewAnalysisClearsError(t *testing.T) {
	e := New()
	_, err := e.Analyze(context.Background(), classifier.NewFailingClassifier(common.ErrClassificationFailed), testImage())
	require.Error(t, err)

	snap, err := e.Analyze(context.Background(), classifier.NewMockClassifier(warmRecord()), testImage())
	require.NoError(t, err)
	assert.False(t, snap.HasError())
	assert.Equal(t, StateResolved, snap.State)
}

func TestEngine_CancelledClassification(t *testing.T) {
	e := New()
	mock := classifier.NewMockClassifier(warmRecord())
	mock.Delay = 10 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap, err := e.Analyze(ctx, mock, testImage())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateIdle, snap.State)
}

func TestEngine_NeverStuckAnalyzing(t *testing.T) {
	e := New()
	mocks := []Classifier{
		classifier.NewMockClassifier(warmRecord()),
		classifier.NewFailingClassifier(common.ErrClassificationFailed),
		classifier.NewMockClassifier(model.ToneRecord{}),
	}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(c Classifier) {
			defer wg.Done()
			_, _ = e.Analyze(context.Background(), c, testImage())
		}(mocks[i%len(mocks)])
	}
	wg.Wait()

	assert.NotEqual(t, StateAnalyzing, e.Snapshot().State)
	assert.Equal(t, uint64(30), e.Snapshot().Generation)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "analyzing", StateAnalyzing.String())
	assert.Equal(t, "resolved", StateResolved.String())
	assert.Equal(t, "state(7)", State(7).String())
}
