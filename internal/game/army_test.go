package game

import "testing"

func mustRace(t *testing.T, name string) Race {
	t.Helper()
	r, ok := FindRace(name)
	if !ok {
		t.Fatalf("race %q missing from catalog", name)
	}
	return r
}

func TestArmy_SetUnitsClampsNegative(t *testing.T) {
	army := NewArmy(Benevolent)
	osito := mustRace(t, "Osito")
	if err := army.SetUnits(osito, 5); err != nil {
		t.Fatal(err)
	}
	if err := army.SetUnits(osito, -3); err != nil {
		t.Fatal(err)
	}
	if got := army.Units(osito); got != 0 {
		t.Errorf("count after negative set = %d, want 0", got)
	}
	if got := army.TotalUnits(); got != 0 {
		t.Errorf("total units %d, want 0", got)
	}
}

func TestArmy_ZeroCountDropsEntry(t *testing.T) {
	army := NewArmy(Benevolent)
	fulo := mustRace(t, "Fulo")
	army.SetUnits(fulo, 4)
	army.SetUnits(fulo, 0)
	if snap := army.Snapshot(); len(snap) != 0 {
		t.Errorf("snapshot after zeroing = %v, want empty", snap)
	}
}

func TestArmy_RejectsWrongAlignment(t *testing.T) {
	army := NewArmy(Benevolent)
	trolli := mustRace(t, "Trolli")
	if err := army.SetUnits(trolli, 2); err == nil {
		t.Error("expected an error placing an evil race in the good army")
	}
}

func TestArmy_TotalPower(t *testing.T) {
	army := NewArmy(Benevolent)
	army.SetUnits(mustRace(t, "Osito"), 3)    // 3 * 1
	army.SetUnits(mustRace(t, "Fulo"), 2)     // 2 * 5
	army.SetUnits(mustRace(t, "Principe"), 1) // 1 * 2
	if got := army.TotalPower(); got != 15 {
		t.Errorf("total power %d, want 15", got)
	}
	if got := army.TotalUnits(); got != 6 {
		t.Errorf("total units %d, want 6", got)
	}
}

func TestRace_PowerNegativeTroops(t *testing.T) {
	r := mustRace(t, "Trolli")
	if got := r.Power(-10); got != 0 {
		t.Errorf("power of negative troops = %d, want 0", got)
	}
}

func TestRacesFor_SplitsCatalog(t *testing.T) {
	good := RacesFor(Benevolent)
	evil := RacesFor(Malevolent)
	if len(good) != 5 || len(evil) != 5 {
		t.Errorf("catalog split %d/%d, want 5/5", len(good), len(evil))
	}
	for _, r := range good {
		if r.Alignment != Benevolent {
			t.Errorf("%s listed on the wrong side", r.Name)
		}
	}
}

func TestFindRace_CaseInsensitive(t *testing.T) {
	if _, ok := FindRace("  hoggin "); !ok {
		t.Error("expected to find Hoggin ignoring case and spacing")
	}
	if _, ok := FindRace("nosuch"); ok {
		t.Error("found a race that does not exist")
	}
}
