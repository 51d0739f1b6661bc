package checkpoint

import (
	"encoding/json"
	"testing"

	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

func TestSnapshotSpeciesRoundTripsThroughJSON(t *testing.T) {
	want := []kmctypes.Species{0, 1, 2, 1, 0}

	raw, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got []kmctypes.Species
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("species[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSchemaDeclaresCheckpointTable(t *testing.T) {
	if schema == "" {
		t.Fatal("schema constant is empty")
	}
	const want = "engine_checkpoints"
	if !contains(schema, want) {
		t.Errorf("schema does not mention table %q", want)
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
