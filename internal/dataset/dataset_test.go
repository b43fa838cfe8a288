package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/leadscope/leadscope-go/internal/model"
)

func TestLoadFile_EmbeddedDefault(t *testing.T) {
	ds, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile embedded: %v", err)
	}
	if len(ds.Leads) == 0 {
		t.Fatal("embedded dataset is empty")
	}
	if ds.Version == "" {
		t.Error("dataset version is empty")
	}
	for _, l := range ds.Leads {
		if len(l.RecentViews) == 0 {
			t.Errorf("lead %s has no recent views", l.Handle)
		}
	}
}

func TestLoadFile_CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.json")
	payload := `[{"channelName":"Test","handle":"@test","niche":"Tech","country":"US","subscribers":1000,"recentViews":[10,20]}]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(ds.Leads) != 1 || ds.Leads[0].Handle != "@test" {
		t.Errorf("unexpected leads: %+v", ds.Leads)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile("/nonexistent/leads.json"); err == nil {
		t.Error("expected error for missing file, got none")
	}
}

func TestValidate_EmptyViewHistory(t *testing.T) {
	leads := []model.Lead{
		{ChannelName: "A", Handle: "@a", Subscribers: 100, RecentViews: []int64{1}},
		{ChannelName: "B", Handle: "@b", Subscribers: 100, RecentViews: nil},
	}
	err := Validate(leads)
	if !errors.Is(err, ErrEmptyViewHistory) {
		t.Errorf("err = %v, want ErrEmptyViewHistory", err)
	}
}

func TestValidate_DuplicateHandle(t *testing.T) {
	leads := []model.Lead{
		{Handle: "@a", RecentViews: []int64{1}},
		{Handle: "@a", RecentViews: []int64{2}},
	}
	err := Validate(leads)
	if !errors.Is(err, ErrDuplicateHandle) {
		t.Errorf("err = %v, want ErrDuplicateHandle", err)
	}
}

func TestValidate_MissingHandle(t *testing.T) {
	leads := []model.Lead{{ChannelName: "No Handle", RecentViews: []int64{1}}}
	if err := Validate(leads); err == nil {
		t.Error("expected error for missing handle, got none")
	}
}

func TestValidate_EmptyDataset(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Error("expected error for empty dataset, got none")
	}
}
