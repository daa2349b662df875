package smoke

import (
	"fmt"
)

// verifySignups checks that every successful signup is visible in the roster.
func verifySignups(roster map[string]Activity, assignments []assignment) error {
	for _, a := range assignments {
		activity, ok := roster[a.Activity]
		if !ok {
			return fmt.Errorf("activity %q missing from roster", a.Activity)
		}
		if !containsParticipant(activity.Participants, a.Email) {
			return fmt.Errorf("%s not listed as participant of %q", a.Email, a.Activity)
		}
	}
	return nil
}

// verifyRestored checks that the roster matches its pre-test participant lists.
func verifyRestored(before, after map[string]Activity) error {
	if len(before) != len(after) {
		return fmt.Errorf("activity count changed: %d before, %d after", len(before), len(after))
	}

	for name, want := range before {
		got, ok := after[name]
		if !ok {
			return fmt.Errorf("activity %q missing after test", name)
		}
		if len(got.Participants) != len(want.Participants) {
			return fmt.Errorf("participant count for %q changed: %d before, %d after",
				name, len(want.Participants), len(got.Participants))
		}
		for i, email := range want.Participants {
			if got.Participants[i] != email {
				return fmt.Errorf("participant order for %q changed at index %d: %q before, %q after",
					name, i, email, got.Participants[i])
			}
		}
	}
	return nil
}

func containsParticipant(participants []string, email string) bool {
	for _, p := range participants {
		if p == email {
			return true
		}
	}
	return false
}
