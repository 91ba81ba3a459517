package intake

import "testing"

func mapGetter(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestBuildFamilyOrderAndDefaults(t *testing.T) {
	form := map[string]string{
		"fam_1_fullname":      "Tom",
		"fam_1_dob":           "2010-03-04",
		"fam_1_vulnerability": "Minor",
		"fam_2_fullname":      "Amy",
	}

	family := BuildFamily("2", mapGetter(form))
	if len(family) != 2 {
		t.Fatalf("expected 2 records, got %d", len(family))
	}

	if family[0].FullName != "Tom" || family[1].FullName != "Amy" {
		t.Errorf("wrong order: got %q, %q", family[0].FullName, family[1].FullName)
	}
	if family[0].DOB != "04/03/2010" {
		t.Errorf("expected normalized dob, got %q", family[0].DOB)
	}
	if family[0].Vulnerability != "Minor" {
		t.Errorf("expected explicit vulnerability kept, got %q", family[0].Vulnerability)
	}
	if family[1].Vulnerability != "N/A" {
		t.Errorf("expected vulnerability default N/A, got %q", family[1].Vulnerability)
	}
	if family[1].FatherName != "" || family[1].DOB != "" {
		t.Errorf("expected empty defaults, got %+v", family[1])
	}
}

func TestBuildFamilyZeroAndBadCount(t *testing.T) {
	for _, count := range []string{"0", "", "abc", "-3"} {
		if family := BuildFamily(count, mapGetter(nil)); len(family) != 0 {
			t.Errorf("count %q: expected empty family, got %d records", count, len(family))
		}
	}
}

func TestBuildFamilyCountExceedsFields(t *testing.T) {
	form := map[string]string{"fam_1_fullname": "Tom"}

	family := BuildFamily("3", mapGetter(form))
	if len(family) != 3 {
		t.Fatalf("expected 3 records, got %d", len(family))
	}
	if family[0].FullName != "Tom" {
		t.Errorf("expected first record populated, got %q", family[0].FullName)
	}
	for i, fam := range family[1:] {
		if fam.FullName != "" || fam.Vulnerability != "N/A" {
			t.Errorf("record %d: expected default record, got %+v", i+2, fam)
		}
	}
}
