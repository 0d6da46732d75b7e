package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "armies.json")
	st := NewJSONStore(path)

	roster := map[string]int{"Osito": 3, "Fulo": 1}
	if err := st.Save("BENEVOLENT", roster); err != nil {
		t.Fatal(err)
	}
	got, err := st.Load("BENEVOLENT")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got["Osito"] != 3 || got["Fulo"] != 1 {
		t.Errorf("loaded %v, want %v", got, roster)
	}
}

func TestJSONStore_SidesAreIndependent(t *testing.T) {
	st := NewJSONStore(filepath.Join(t.TempDir(), "armies.json"))
	st.Save("BENEVOLENT", map[string]int{"Osito": 1})
	st.Save("MALEVOLENT", map[string]int{"Trolli": 4})

	good, _ := st.Load("BENEVOLENT")
	evil, _ := st.Load("MALEVOLENT")
	if good["Osito"] != 1 || len(good) != 1 {
		t.Errorf("good roster %v", good)
	}
	if evil["Trolli"] != 4 || len(evil) != 1 {
		t.Errorf("evil roster %v", evil)
	}
}

func TestJSONStore_DropsNonPositiveCounts(t *testing.T) {
	st := NewJSONStore(filepath.Join(t.TempDir(), "armies.json"))
	st.Save("BENEVOLENT", map[string]int{"Osito": 0, "Fulo": -2, "Cari": 5})
	got, err := st.Load("BENEVOLENT")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got["Cari"] != 5 {
		t.Errorf("loaded %v, want only Cari", got)
	}
}

func TestJSONStore_MissingFileReadsEmpty(t *testing.T) {
	st := NewJSONStore(filepath.Join(t.TempDir(), "nope.json"))
	got, err := st.Load("BENEVOLENT")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("missing file loaded %v, want empty", got)
	}
}

func TestJSONStore_CorruptFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "armies.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	st := NewJSONStore(path)
	got, err := st.Load("BENEVOLENT")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("corrupt file loaded %v, want empty", got)
	}
	// And saving over it recovers the file.
	if err := st.Save("BENEVOLENT", map[string]int{"Osito": 1}); err != nil {
		t.Fatal(err)
	}
	got, _ = st.Load("BENEVOLENT")
	if got["Osito"] != 1 {
		t.Errorf("post-recovery roster %v", got)
	}
}

func TestJSONStore_SaveOverwritesSide(t *testing.T) {
	st := NewJSONStore(filepath.Join(t.TempDir(), "armies.json"))
	st.Save("BENEVOLENT", map[string]int{"Osito": 1, "Fulo": 2})
	st.Save("BENEVOLENT", map[string]int{"Cari": 3})
	got, _ := st.Load("BENEVOLENT")
	if len(got) != 1 || got["Cari"] != 3 {
		t.Errorf("second save did not replace the side: %v", got)
	}
}
