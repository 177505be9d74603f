package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var csvRows = []string{
	"organism,drug,year,n,p10,p25,median,p75,p90",
	"Escherichia coli,Tigecycline,2011,120,0.5,0.75,1.0,1.5,2.0",
	"Escherichia coli,Tigecycline,2010,98,0.25,0.4,0.5,0.8,1.0",
	"Staphylococcus aureus,tigecycline,2010.0,64,0.12,0.2,0.25,0.4,0.5",
	"Klebsiella aerogenes,Meropenem,2012,77,0.06,0.1,0.12,0.2,0.25",
}

func writeTable(t *testing.T, rows []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mic_percentiles.csv")
	if err := os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoadParsesRecords(t *testing.T) {
	recs, err := Load(writeTable(t, csvRows))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(recs) != 4 {
		t.Fatalf("records = %d, want 4", len(recs))
	}
	first := recs[0]
	if first.Organism != "Escherichia coli" || first.Drug != "Tigecycline" {
		t.Fatalf("first record pair = %q, %q", first.Organism, first.Drug)
	}
	if first.Year != 2011 || first.P10 != 0.5 || first.Median != 1.0 || first.P90 != 2.0 {
		t.Fatalf("first record values = %+v", first)
	}
	// integral float years ("2010.0") must parse
	if recs[2].Year != 2010 {
		t.Fatalf("float year = %d, want 2010", recs[2].Year)
	}
}

func TestLoadHeaderCaseInsensitive(t *testing.T) {
	rows := []string{
		"Organism,Drug,YEAR,P10,Median,P90",
		"Escherichia coli,Tigecycline,2010,0.25,0.5,1.0",
	}
	recs, err := Load(writeTable(t, rows))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(recs) != 1 || recs[0].Median != 0.5 {
		t.Fatalf("records = %+v", recs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "open table") {
		t.Fatalf("error = %v", err)
	}
}

func TestLoadMissingColumns(t *testing.T) {
	rows := []string{
		"organism,drug,year",
		"Escherichia coli,Tigecycline,2010",
	}
	_, err := Load(writeTable(t, rows))
	if err == nil {
		t.Fatalf("expected error for missing columns")
	}
	for _, col := range []string{"p10", "median", "p90"} {
		if !strings.Contains(err.Error(), col) {
			t.Fatalf("error %v does not name column %s", err, col)
		}
	}
}

func TestLoadBadNumberNamesRow(t *testing.T) {
	rows := []string{
		"organism,drug,year,p10,median,p90",
		"Escherichia coli,Tigecycline,2010,0.25,0.5,1.0",
		"Escherichia coli,Tigecycline,2011,not-a-number,1.0,2.0",
	}
	_, err := Load(writeTable(t, rows))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), "row 3") || !strings.Contains(err.Error(), "p10") {
		t.Fatalf("error = %v", err)
	}
}

func TestLoadEmptyOrganismRejected(t *testing.T) {
	rows := []string{
		"organism,drug,year,p10,median,p90",
		",Tigecycline,2010,0.25,0.5,1.0",
	}
	_, err := Load(writeTable(t, rows))
	if err == nil || !strings.Contains(err.Error(), "row 2") {
		t.Fatalf("error = %v", err)
	}
}
