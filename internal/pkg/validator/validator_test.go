package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "2023/01/01", "", "yesterday"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	for month := 1; month <= 12; month++ {
		if !IsValidMonth(month) {
			t.Errorf("IsValidMonth(%d) = false, want true", month)
		}
	}
	for _, month := range []int{0, -1, 13, 100} {
		if IsValidMonth(month) {
			t.Errorf("IsValidMonth(%d) = true, want false", month)
		}
	}
}

func TestIsValidYear(t *testing.T) {
	for _, year := range []int{2000, 2026, 2100} {
		if !IsValidYear(year) {
			t.Errorf("IsValidYear(%d) = false, want true", year)
		}
	}
	for _, year := range []int{1999, 2101, 0, -2026} {
		if IsValidYear(year) {
			t.Errorf("IsValidYear(%d) = true, want false", year)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"present", "absent", "half-day", "leave"}
	if !IsInSlice("present", statuses) {
		t.Error("IsInSlice(present) = false, want true")
	}
	if IsInSlice("Present", statuses) {
		t.Error("IsInSlice(Present) = true, want false")
	}
	if IsInSlice("", statuses) {
		t.Error("IsInSlice(\"\") = true, want false")
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP001", "EMP-001", "A1B", "EMPLOYEE-2026-001"}
	invalid := []string{"emp001", "EM", "EMP 001", "", "EMPLOYEE-CODE-IS-TOO-LONG"}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "must be between 1 and 12"},
		{Field: "year", Message: "must be between 2000 and 2100"},
	}
	want := "month: must be between 1 and 12; year: must be between 2000 and 2100"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["month"] == "" || m["year"] == "" {
		t.Errorf("ToMap() = %v, want two entries", m)
	}
}
