package cli

import (
	"testing"

	"github.com/valter-silva-au/tasklite/pkg/models"
)

func TestFilterCommand_ShowsWithoutArgs(t *testing.T) {
	newCLITestStore(t)

	if err := filterCmd.RunE(filterCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFilterCommand_SetsFilter(t *testing.T) {
	store := newCLITestStore(t)

	if err := filterCmd.RunE(filterCmd, []string{"pending"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Filter() != models.FilterPending {
		t.Fatalf("filter not set: %s", store.Filter())
	}
}

func TestFilterCommand_RejectsInvalidValue(t *testing.T) {
	store := newCLITestStore(t)

	if err := filterCmd.RunE(filterCmd, []string{"bogus"}); err == nil {
		t.Fatal("expected error for invalid filter")
	}
	if store.Filter() != models.FilterAll {
		t.Fatalf("filter changed on rejected set: %s", store.Filter())
	}
}
