package listflags

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestAddAllFlag(t *testing.T) {
	var all bool
	cmd := &cobra.Command{Use: "list"}
	AddAllFlag(cmd, &all)

	if err := cmd.Flags().Parse([]string{"--all"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if !all {
		t.Fatal("expected --all to set target")
	}
}

func TestAddAllFlagWithoutTarget(t *testing.T) {
	cmd := &cobra.Command{Use: "list"}
	AddAllFlag(cmd, nil)

	if cmd.Flags().Lookup("all") == nil {
		t.Fatal("expected --all flag to be registered")
	}
}

func TestAddJSONFlag(t *testing.T) {
	var asJSON bool
	cmd := &cobra.Command{Use: "show"}
	AddJSONFlag(cmd, &asJSON)

	if err := cmd.Flags().Parse([]string{"--json"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if !asJSON {
		t.Fatal("expected --json to set target")
	}
}
