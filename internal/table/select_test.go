package table

import (
	"errors"
	"testing"
)

func fixtureRecords() []Record {
	// deliberately unsorted years
	return []Record{
		{Organism: "Escherichia coli", Drug: "Tigecycline", Year: 2011, P10: 0.5, Median: 1.0, P90: 2.0},
		{Organism: "Staphylococcus aureus", Drug: "tigecycline", Year: 2010, P10: 0.12, Median: 0.25, P90: 0.5},
		{Organism: "Escherichia coli", Drug: "Tigecycline", Year: 2010, P10: 0.25, Median: 0.5, P90: 1.0},
		{Organism: "Enterococcus faecium", Drug: "TIGECYCLINE", Year: 2012, P10: 0.03, Median: 0.06, P90: 0.12},
		{Organism: "Klebsiella aerogenes", Drug: "Meropenem", Year: 2012, P10: 0.06, Median: 0.12, P90: 0.25},
	}
}

func TestExactSortsByYear(t *testing.T) {
	rows, err := Exact(fixtureRecords(), "Escherichia coli", "Tigecycline")
	if err != nil {
		t.Fatalf("Exact: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Year != 2010 || rows[1].Year != 2011 {
		t.Fatalf("years = %d, %d, want ascending", rows[0].Year, rows[1].Year)
	}
}

func TestExactIsCaseSensitive(t *testing.T) {
	_, err := Exact(fixtureRecords(), "Escherichia coli", "tigecycline")
	var nde *NoDataError
	if !errors.As(err, &nde) {
		t.Fatalf("err = %v, want NoDataError", err)
	}
}

func TestExactAbsentPair(t *testing.T) {
	_, err := Exact(fixtureRecords(), "Haemophilus influenzae", "Tigecycline")
	var nde *NoDataError
	if !errors.As(err, &nde) {
		t.Fatalf("err = %v, want NoDataError", err)
	}
	if nde.Organism != "Haemophilus influenzae" || nde.Drug != "Tigecycline" {
		t.Fatalf("NoDataError = %+v", nde)
	}
}

func TestMatchDrugCaseInsensitive(t *testing.T) {
	jobs := MatchDrug(fixtureRecords(), "Tigecycline")
	if len(jobs) != 3 {
		t.Fatalf("jobs = %d, want 3", len(jobs))
	}
	// first-seen order, original drug spelling preserved
	if jobs[0].Organism != "Escherichia coli" || jobs[0].Drug != "Tigecycline" {
		t.Fatalf("job 0 = %s, %s", jobs[0].Organism, jobs[0].Drug)
	}
	if jobs[1].Organism != "Staphylococcus aureus" || jobs[1].Drug != "tigecycline" {
		t.Fatalf("job 1 = %s, %s", jobs[1].Organism, jobs[1].Drug)
	}
	if jobs[2].Organism != "Enterococcus faecium" || jobs[2].Drug != "TIGECYCLINE" {
		t.Fatalf("job 2 = %s, %s", jobs[2].Organism, jobs[2].Drug)
	}
	// rows within a job are year-ascending
	ec := jobs[0].Rows
	if len(ec) != 2 || ec[0].Year != 2010 || ec[1].Year != 2011 {
		t.Fatalf("job 0 rows = %+v", ec)
	}
}

func TestMatchDrugNoMatches(t *testing.T) {
	jobs := MatchDrug(fixtureRecords(), "Colistin")
	if len(jobs) != 0 {
		t.Fatalf("jobs = %d, want 0", len(jobs))
	}
}

func TestPairsCoverage(t *testing.T) {
	pairs := Pairs(fixtureRecords())
	if len(pairs) != 4 {
		t.Fatalf("pairs = %d, want 4", len(pairs))
	}
	ec := pairs[0]
	if ec.Organism != "Escherichia coli" || ec.FirstYear != 2010 || ec.LastYear != 2011 || ec.Rows != 2 {
		t.Fatalf("pair 0 = %+v", ec)
	}
}

func TestSortByYearStable(t *testing.T) {
	rows := []Record{
		{Organism: "A", Drug: "X", Year: 2010, Median: 1},
		{Organism: "A", Drug: "X", Year: 2009, Median: 2},
		{Organism: "A", Drug: "X", Year: 2010, Median: 3},
	}
	SortByYear(rows)
	if rows[0].Year != 2009 {
		t.Fatalf("first year = %d", rows[0].Year)
	}
	if rows[1].Median != 1 || rows[2].Median != 3 {
		t.Fatalf("duplicate years reordered: %+v", rows)
	}
}
