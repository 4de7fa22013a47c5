// Package insight produces a short natural-language status message for the
// dashboard from the current production workspace. One Provider interface
// covers both the deterministic local stub and the hosted generative model;
// configuration picks which one runs.
package insight

import (
	"context"

	"go.uber.org/zap"

	"github.com/mmsports/backoffice/internal/domain/models"
)

// Snapshot is the input every provider derives its message from.
type Snapshot struct {
	Workspace  models.Workspace `json:"currentProduction"`
	StaffCount int              `json:"staffCount"`
}

// Provider generates the insight text.
type Provider interface {
	ProductionInsight(ctx context.Context, snap Snapshot) (string, error)
}

// Fallback is returned whenever a provider fails. No retry, no backoff.
const Fallback = "উপাত্ত বিশ্লেষণ করা সম্ভব হচ্ছে না এই মুহূর্তে। তবে আপনার ফ্যাক্টরির কাজ সচল রয়েছে।"

// Generate runs the provider and degrades to the canned fallback on any
// error, logging the cause. The caller always receives usable text.
func Generate(ctx context.Context, p Provider, snap Snapshot, logger *zap.Logger) string {
	if logger == nil {
		logger = zap.NewNop()
	}

	text, err := p.ProductionInsight(ctx, snap)
	if err != nil {
		logger.Warn("insight provider failed, using fallback", zap.Error(err))
		return Fallback
	}
	if text == "" {
		return Fallback
	}
	return text
}
