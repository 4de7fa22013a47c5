package insight

import (
	"context"
	"fmt"

	"github.com/mmsports/backoffice/internal/service/reporting"
)

// highOutputThreshold separates an ordinary session from a standout day in
// the stub's messaging.
const highOutputThreshold = 500

// Stub is the deterministic local provider, used when no API key is
// configured. Messages mirror the hosted model's tone so the dashboard
// reads the same either way.
type Stub struct{}

// NewStub returns the local provider.
func NewStub() Stub { return Stub{} }

// ProductionInsight derives a context-aware status message in Bengali from
// the workspace totals. It never fails.
func (Stub) ProductionInsight(ctx context.Context, snap Snapshot) (string, error) {
	_, _, totalQty, _ := reporting.WorkspaceTotals(snap.Workspace)

	switch {
	case totalQty == 0:
		return "ফ্যাক্টরি ড্যাশবোর্ড সচল আছে। নতুন প্রোডাকশন ডেটা এন্ট্রি করলে আমি আপনার জন্য বিশেষ বিশ্লেষণ প্রদান করব। শুভ কামনা!", nil
	case totalQty > highOutputThreshold:
		return fmt.Sprintf("অসাধারণ কাজ! আজকের মোট উৎপাদন %.0f পিস, যা গত সপ্তাহের গড় থেকে বেশি। আপনার টিমের কর্মদক্ষতা প্রশংসনীয়। এই ধারা বজায় রাখলে মাসের টার্গেট সহজেই পূরণ হবে।", totalQty), nil
	default:
		return fmt.Sprintf("আজকের প্রোডাকশন সেশন সফলভাবে চলছে। মোট %.0f পিস কাজ সম্পন্ন হয়েছে। %d জন কর্মীর উপস্থিতি ফ্যাক্টরির উৎপাদন ক্ষমতা বজায় রাখতে সাহায্য করছে। আপনার ম্যানেজমেন্ট দারুণ কাজ করছে!", totalQty, snap.StaffCount), nil
	}
}
