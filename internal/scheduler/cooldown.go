package scheduler

import "time"

const (
	// CooldownWindow is the hard block after a completed sync.
	CooldownWindow = 15 * time.Minute
	// ConfirmationWindow bounds the band in which chronological platforms
	// need explicit user confirmation before re-syncing.
	ConfirmationWindow = 30 * time.Minute
)

// CooldownVerdict is the result of evaluating a campaign's sync recency.
type CooldownVerdict int

const (
	// CooldownClear means the campaign may sync without restriction.
	CooldownClear CooldownVerdict = iota
	// CooldownBlocked means the campaign synced too recently and must wait.
	CooldownBlocked
	// CooldownNeedsConfirmation means the sync may proceed only with explicit
	// user confirmation, which consumes quota.
	CooldownNeedsConfirmation
)

// CooldownResult carries the verdict plus the timing facts behind it.
type CooldownResult struct {
	Verdict         CooldownVerdict
	LastSyncAt      *time.Time
	MinutesAgo      int
	NextAvailableAt time.Time
}

// EvaluateCooldown applies the recency policy to a campaign's last completed
// sync. A campaign that has never synced is always clear. Inside the hard
// window every campaign is blocked. In the confirmation band, campaigns
// whose platform set includes a chronological feed need confirmation;
// non-chronological sets are clear because their result ordering is not
// recency-derived.
func EvaluateCooldown(lastSyncAt *time.Time, hasChronological bool, now time.Time) CooldownResult {
	if lastSyncAt == nil {
		return CooldownResult{Verdict: CooldownClear}
	}

	elapsed := now.Sub(*lastSyncAt)
	result := CooldownResult{
		LastSyncAt:      lastSyncAt,
		MinutesAgo:      int(elapsed.Minutes()),
		NextAvailableAt: lastSyncAt.Add(CooldownWindow),
	}

	switch {
	case elapsed < CooldownWindow:
		result.Verdict = CooldownBlocked
	case elapsed < ConfirmationWindow && hasChronological:
		result.Verdict = CooldownNeedsConfirmation
	default:
		result.Verdict = CooldownClear
	}

	return result
}
