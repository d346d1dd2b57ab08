// Package detection runs a submitted leaf image through the classifier and records the results
// in the account's history.
package detection

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"palay-protector/internal/classifier"
	historydomain "palay-protector/internal/history/domain"
	"palay-protector/internal/telemetry"
	telemetrydomain "palay-protector/internal/telemetry/domain"
)

// Sentinel errors; the session handler maps them to gRPC codes.
var (
	ErrInvalidImage = errors.New("invalid image")
	ErrClassifier   = errors.New("classifier unavailable")
)

const (
	// DefaultMaxImageBytes caps submitted images when no limit is configured.
	DefaultMaxImageBytes = 10 << 20
	tracerName           = "palay-protector/detection"
)

// HistoryAppender is the minimal history repository needed by the pipeline.
type HistoryAppender interface {
	Append(ctx context.Context, r *historydomain.Record) error
}

// Archiver keeps a copy of submitted images. Optional.
type Archiver interface {
	Store(ctx context.Context, accountID string, image []byte) (string, error)
}

// Options configure a Pipeline.
type Options struct {
	// MaxImageBytes rejects larger images; <= 0 uses DefaultMaxImageBytes.
	MaxImageBytes int
	// RecordHealthy writes one "healthy" record at 100% when the classifier finds nothing.
	RecordHealthy bool
	// Archive, when set, receives every valid image before inference. Failures are only logged.
	Archive Archiver
	// Events receives a detection_completed event per classification. May be nil.
	Events telemetry.EventEmitter
}

// Outcome is the result of one classification.
type Outcome struct {
	// Records holds the records that were stored, in prediction order.
	Records []*historydomain.Record
	// Healthy is true when the classifier returned no predictions.
	Healthy bool
	// Failed joins the errors of appends that did not succeed; nil when all were stored.
	Failed error
	// FailedCount is the number of records that could not be stored.
	FailedCount int
	// ArchiveKey is the object key of the archived image, if any.
	ArchiveKey string
}

// Pipeline validates, archives, classifies and records images.
type Pipeline struct {
	classifier classifier.Classifier
	history    HistoryAppender
	opts       Options
	tracer     trace.Tracer
	nowF       func() time.Time
}

// NewPipeline returns a Pipeline with the given dependencies.
func NewPipeline(c classifier.Classifier, history HistoryAppender, opts Options) *Pipeline {
	if opts.MaxImageBytes <= 0 {
		opts.MaxImageBytes = DefaultMaxImageBytes
	}
	return &Pipeline{
		classifier: c,
		history:    history,
		opts:       opts,
		tracer:     otel.Tracer(tracerName),
		nowF:       time.Now,
	}
}

// Classify runs image through the classifier and appends one record per prediction for accountID.
// Classifier failures write nothing and return ErrClassifier. Append failures do not stop the
// remaining appends; they are reported in Outcome.Failed. ctx cancellation aborts the classifier call.
func (p *Pipeline) Classify(ctx context.Context, image []byte, accountID string) (*Outcome, error) {
	ctx, span := p.tracer.Start(ctx, "detection.Classify", trace.WithAttributes(
		attribute.Int("image.bytes", len(image)),
	))
	defer span.End()

	if len(image) == 0 {
		return nil, fail(span, fmt.Errorf("%w: image is empty", ErrInvalidImage))
	}
	if len(image) > p.opts.MaxImageBytes {
		return nil, fail(span, fmt.Errorf("%w: image exceeds %d bytes", ErrInvalidImage, p.opts.MaxImageBytes))
	}

	out := &Outcome{}
	if p.opts.Archive != nil {
		key, err := p.opts.Archive.Store(ctx, accountID, image)
		if err != nil {
			log.Printf("detection: archive failed for account %s: %v", accountID, err)
		} else {
			out.ArchiveKey = key
		}
	}

	result, err := p.classifier.Infer(ctx, image)
	if err != nil {
		return nil, fail(span, fmt.Errorf("%w: %w", ErrClassifier, err))
	}
	if result == nil {
		result = &classifier.Result{}
	}

	now := p.nowF().UTC()
	var records []*historydomain.Record
	if len(result.Predictions) == 0 {
		out.Healthy = true
		if p.opts.RecordHealthy {
			records = append(records, p.newRecord(accountID, now, historydomain.HealthyLabel, 100))
		}
	}
	for _, pred := range result.Predictions {
		records = append(records, p.newRecord(accountID, now, pred.Class, Percent(pred.Confidence)))
	}

	var errs []error
	for _, rec := range records {
		if err := p.history.Append(ctx, rec); err != nil {
			errs = append(errs, fmt.Errorf("append %q: %w", rec.Label, err))
			continue
		}
		out.Records = append(out.Records, rec)
	}
	out.Failed = errors.Join(errs...)
	out.FailedCount = len(errs)
	if out.Failed != nil {
		log.Printf("detection: %d of %d records not stored for account %s: %v", len(errs), len(records), accountID, out.Failed)
		span.RecordError(out.Failed)
	}

	span.SetAttributes(
		attribute.Int("detection.predictions", len(result.Predictions)),
		attribute.Int("detection.stored", len(out.Records)),
		attribute.Bool("detection.healthy", out.Healthy),
	)
	p.emit(ctx, accountID, result, out)
	return out, nil
}

func (p *Pipeline) newRecord(accountID string, at time.Time, label string, confidence float64) *historydomain.Record {
	return &historydomain.Record{
		ID:         uuid.New().String(),
		AccountID:  accountID,
		CreatedAt:  at,
		Label:      label,
		Confidence: confidence,
	}
}

type completedMetadata struct {
	Predictions int      `json:"predictions"`
	Stored      int      `json:"stored"`
	Failed      int      `json:"failed"`
	Healthy     bool     `json:"healthy"`
	Labels      []string `json:"labels,omitempty"`
	Archived    bool     `json:"archived"`
}

func (p *Pipeline) emit(ctx context.Context, accountID string, result *classifier.Result, out *Outcome) {
	if p.opts.Events == nil {
		return
	}
	meta := completedMetadata{
		Predictions: len(result.Predictions),
		Stored:      len(out.Records),
		Failed:      out.FailedCount,
		Healthy:     out.Healthy,
		Archived:    out.ArchiveKey != "",
	}
	for _, pred := range result.Predictions {
		meta.Labels = append(meta.Labels, pred.Class)
	}
	event := telemetrydomain.NewEvent(telemetrydomain.EventDetectionCompleted, "detection", meta)
	event.AccountID = accountID
	telemetry.EmitAsync(p.opts.Events, ctx, event)
}

// Percent converts a classifier fraction to a percentage clamped to [0, 100]. NaN maps to 0.
func Percent(fraction float64) float64 {
	if math.IsNaN(fraction) {
		return 0
	}
	return math.Max(0, math.Min(100, fraction*100))
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
