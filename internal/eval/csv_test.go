package eval

import "testing"

func TestParseCSVTransposesRowsIntoColumns(t *testing.T) {
	mat, err := parseCSV("1,2,3\n4,5,6\n7,8,9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mat.Rows() != 3 || mat.Cols() != 3 {
		t.Fatalf("expected 3x3, got %dx%d", mat.Rows(), mat.Cols())
	}
	if mat.At(0, 0) != 1 || mat.At(0, 1) != 4 || mat.At(0, 2) != 7 {
		t.Errorf("expected row 0 = [1 4 7], got [%v %v %v]", mat.At(0, 0), mat.At(0, 1), mat.At(0, 2))
	}
}

func TestParseCSVRejectsMismatchedRowWidth(t *testing.T) {
	if _, err := parseCSV("1,2,3\n4,5"); err == nil {
		t.Fatal("expected an error for a short second row")
	}
}

func TestParseCSVRejectsUnparseableValue(t *testing.T) {
	if _, err := parseCSV("1,abc,3"); err == nil {
		t.Fatal("expected an error for a non-numeric cell")
	}
}

func TestParseCSVSkipsBlankLines(t *testing.T) {
	mat, err := parseCSV("1,2\n\n3,4\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mat.Rows() != 2 || mat.Cols() != 2 {
		t.Fatalf("expected 2x2 (blank lines skipped), got %dx%d", mat.Rows(), mat.Cols())
	}
}
