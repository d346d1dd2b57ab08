// Package classifier calls the hosted rice-leaf disease model.
package classifier

import "context"

// Prediction is one class the model found in the image. Confidence is a fraction in [0, 1].
type Prediction struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}

// Result is the model output for one image. No predictions means no disease was found.
type Result struct {
	Predictions []Prediction `json:"predictions"`
}

// Classifier infers disease classes from image bytes.
type Classifier interface {
	Infer(ctx context.Context, image []byte) (*Result, error)
}
