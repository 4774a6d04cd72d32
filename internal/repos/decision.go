package repos

// Decide moves an inspected record to StateEligible or StateNotEligible.
// reachable is consulted only when a pull would otherwise be considered; an
// unreachable primary remote records DiagnosticRemoteUnreachable.
func Decide(record *Record, policy SyncPolicy, reachable func() bool) {
	record.State = StateNotEligible
	record.PullOutcome = PullNotEligible

	if record.Errored() || record.Behind == 0 || record.PrimaryRemote == "" || !policy.Enabled() {
		return
	}

	if !reachable() {
		record.addDiagnostic(DiagnosticRemoteUnreachable)
		return
	}

	onPrimary := record.OnPrimaryBranch()
	if (policy.PullOnPrimary && onPrimary) || (policy.PullOnNonPrimary && !onPrimary) {
		record.State = StateEligible
		record.PullOutcome = PullNotAttempted
	}
}
