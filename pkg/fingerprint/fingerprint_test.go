package fingerprint

import "testing"

func TestSHA256Hex(t *testing.T) {
	// Known vector: SHA256("")
	got := SHA256Hex(nil)
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got != want {
		t.Errorf("SHA256Hex(nil) = %s, want %s", got, want)
	}
}

func TestDataset_StableAndShort(t *testing.T) {
	a := Dataset([]byte(`[{"handle":"@a"}]`))
	b := Dataset([]byte(`[{"handle":"@a"}]`))
	if a != b {
		t.Errorf("same bytes produced different versions: %s vs %s", a, b)
	}
	if len(a) != 12 {
		t.Errorf("version length = %d, want 12", len(a))
	}

	c := Dataset([]byte(`[{"handle":"@b"}]`))
	if c == a {
		t.Errorf("different bytes produced the same version: %s", c)
	}
}
