package detection

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palay-protector/internal/classifier"
	historydomain "palay-protector/internal/history/domain"
	historyrepo "palay-protector/internal/history/repository"
	telemetrydomain "palay-protector/internal/telemetry/domain"
)

type stubClassifier struct {
	result *classifier.Result
	err    error
	calls  int
}

func (s *stubClassifier) Infer(ctx context.Context, image []byte) (*classifier.Result, error) {
	s.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.result, s.err
}

type flakyHistory struct {
	*historyrepo.MemoryRepository
	failLabel string
}

func (f *flakyHistory) Append(ctx context.Context, r *historydomain.Record) error {
	if r.Label == f.failLabel {
		return errors.New("disk full")
	}
	return f.MemoryRepository.Append(ctx, r)
}

type stubArchive struct {
	err   error
	calls int
}

func (a *stubArchive) Store(ctx context.Context, accountID string, image []byte) (string, error) {
	a.calls++
	if a.err != nil {
		return "", a.err
	}
	return "scans/" + accountID + "/x.jpg", nil
}

type captureEmitter struct {
	mu     sync.Mutex
	events []*telemetrydomain.Event
	done   chan struct{}
}

func (c *captureEmitter) Emit(ctx context.Context, e *telemetrydomain.Event) error {
	c.mu.Lock()
	c.events = append(c.events, e)
	c.mu.Unlock()
	c.done <- struct{}{}
	return nil
}

var jpeg = []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0x10, 'J', 'F', 'I', 'F'}

func TestClassify_RiceBlastIsRecordedAndListedFirst(t *testing.T) {
	ctx := context.Background()
	history := historyrepo.NewMemoryRepository()
	t0 := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, history.Append(ctx, &historydomain.Record{ID: "older", AccountID: "ana", CreatedAt: t0, Label: "Brown Spot", Confidence: 40}))

	c := &stubClassifier{result: &classifier.Result{Predictions: []classifier.Prediction{{Class: "Rice Blast", Confidence: 0.87}}}}
	p := NewPipeline(c, history, Options{RecordHealthy: true})
	p.nowF = func() time.Time { return t0.Add(time.Hour) }

	out, err := p.Classify(ctx, jpeg, "ana")
	require.NoError(t, err)
	require.Len(t, out.Records, 1)
	assert.False(t, out.Healthy)
	assert.NoError(t, out.Failed)
	assert.Equal(t, "Rice Blast", out.Records[0].Label)
	assert.InDelta(t, 87.0, out.Records[0].Confidence, 1e-9)

	list, err := history.ListByAccount(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Rice Blast", list[0].Label)
	assert.InDelta(t, 87.0, list[0].Confidence, 1e-9)
}

func TestClassify_MultiplePredictionsShareTimestamp(t *testing.T) {
	ctx := context.Background()
	history := historyrepo.NewMemoryRepository()
	c := &stubClassifier{result: &classifier.Result{Predictions: []classifier.Prediction{
		{Class: "Rice Blast", Confidence: 0.6},
		{Class: "Brown Spot", Confidence: 0.3},
	}}}
	out, err := NewPipeline(c, history, Options{}).Classify(ctx, jpeg, "ana")
	require.NoError(t, err)
	require.Len(t, out.Records, 2)
	assert.True(t, out.Records[0].CreatedAt.Equal(out.Records[1].CreatedAt))
	assert.NotEqual(t, out.Records[0].ID, out.Records[1].ID)

	list, err := history.ListByAccount(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Rice Blast", list[0].Label, "one scan's predictions stay in classifier order")
	assert.Equal(t, "Brown Spot", list[1].Label)
}

func TestClassify_NoPredictions(t *testing.T) {
	tests := []struct {
		name          string
		recordHealthy bool
		wantRecords   int
	}{
		{"healthy recorded", true, 1},
		{"healthy not recorded", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			history := historyrepo.NewMemoryRepository()
			c := &stubClassifier{result: &classifier.Result{}}
			out, err := NewPipeline(c, history, Options{RecordHealthy: tt.recordHealthy}).Classify(ctx, jpeg, "ana")
			require.NoError(t, err)
			assert.True(t, out.Healthy)
			list, _ := history.ListByAccount(ctx, "ana")
			require.Len(t, list, tt.wantRecords)
			if tt.wantRecords == 1 {
				assert.Equal(t, historydomain.HealthyLabel, list[0].Label)
				assert.Equal(t, 100.0, list[0].Confidence)
			}
		})
	}
}

func TestClassify_InvalidImage(t *testing.T) {
	c := &stubClassifier{result: &classifier.Result{}}
	p := NewPipeline(c, historyrepo.NewMemoryRepository(), Options{MaxImageBytes: 4})

	_, err := p.Classify(context.Background(), nil, "ana")
	assert.ErrorIs(t, err, ErrInvalidImage)
	_, err = p.Classify(context.Background(), jpeg, "ana")
	assert.ErrorIs(t, err, ErrInvalidImage)
	assert.Equal(t, 0, c.calls, "classifier must not be called for invalid images")
}

func TestClassify_ClassifierFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	history := historyrepo.NewMemoryRepository()
	c := &stubClassifier{err: errors.New("timeout")}
	_, err := NewPipeline(c, history, Options{RecordHealthy: true}).Classify(ctx, jpeg, "ana")
	assert.ErrorIs(t, err, ErrClassifier)
	list, _ := history.ListByAccount(ctx, "ana")
	assert.Empty(t, list)
}

func TestClassify_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	history := historyrepo.NewMemoryRepository()
	c := &stubClassifier{result: &classifier.Result{Predictions: []classifier.Prediction{{Class: "Rice Blast", Confidence: 0.9}}}}
	_, err := NewPipeline(c, history, Options{}).Classify(ctx, jpeg, "ana")
	assert.ErrorIs(t, err, ErrClassifier)
	assert.ErrorIs(t, err, context.Canceled)
	list, _ := history.ListByAccount(context.Background(), "ana")
	assert.Empty(t, list)
}

func TestClassify_PartialAppendFailure(t *testing.T) {
	ctx := context.Background()
	history := &flakyHistory{MemoryRepository: historyrepo.NewMemoryRepository(), failLabel: "Brown Spot"}
	c := &stubClassifier{result: &classifier.Result{Predictions: []classifier.Prediction{
		{Class: "Brown Spot", Confidence: 0.5},
		{Class: "Rice Blast", Confidence: 0.4},
	}}}
	out, err := NewPipeline(c, history, Options{}).Classify(ctx, jpeg, "ana")
	require.NoError(t, err)
	assert.Error(t, out.Failed)
	assert.Equal(t, 1, out.FailedCount)
	require.Len(t, out.Records, 1)
	assert.Equal(t, "Rice Blast", out.Records[0].Label)
	list, _ := history.ListByAccount(ctx, "ana")
	assert.Len(t, list, 1)
}

func TestClassify_ArchiveFailureDoesNotFailClassification(t *testing.T) {
	arch := &stubArchive{err: errors.New("bucket missing")}
	c := &stubClassifier{result: &classifier.Result{}}
	out, err := NewPipeline(c, historyrepo.NewMemoryRepository(), Options{Archive: arch}).Classify(context.Background(), jpeg, "ana")
	require.NoError(t, err)
	assert.Equal(t, 1, arch.calls)
	assert.Empty(t, out.ArchiveKey)

	ok := &stubArchive{}
	out, err = NewPipeline(c, historyrepo.NewMemoryRepository(), Options{Archive: ok}).Classify(context.Background(), jpeg, "ana")
	require.NoError(t, err)
	assert.Equal(t, "scans/ana/x.jpg", out.ArchiveKey)
}

func TestClassify_EmitsCompletedEvent(t *testing.T) {
	em := &captureEmitter{done: make(chan struct{}, 1)}
	c := &stubClassifier{result: &classifier.Result{Predictions: []classifier.Prediction{{Class: "Tungro", Confidence: 0.7}}}}
	_, err := NewPipeline(c, historyrepo.NewMemoryRepository(), Options{Events: em}).Classify(context.Background(), jpeg, "ana")
	require.NoError(t, err)

	select {
	case <-em.done:
	case <-time.After(2 * time.Second):
		t.Fatal("no telemetry event emitted")
	}
	em.mu.Lock()
	defer em.mu.Unlock()
	require.Len(t, em.events, 1)
	assert.Equal(t, telemetrydomain.EventDetectionCompleted, em.events[0].EventType)
	assert.Equal(t, "ana", em.events[0].AccountID)
	assert.Contains(t, string(em.events[0].Metadata), `"Tungro"`)
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 87.0, Percent(0.87), 1e-9)
	assert.Equal(t, 0.0, Percent(-0.2))
	assert.Equal(t, 100.0, Percent(1.3))
	assert.Equal(t, 0.0, Percent(math.NaN()))
}
