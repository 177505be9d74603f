package table

import (
	"sort"
	"strings"
)

// Job is one (organism, drug) pair selected for rendering, with its rows
// sorted ascending by year.
type Job struct {
	Organism string
	Drug     string
	Rows     []Record
}

// PairInfo summarizes the year coverage of one (organism, drug) pair.
type PairInfo struct {
	Organism  string
	Drug      string
	FirstYear int
	LastYear  int
	Rows      int
}

// Exact selects rows matching organism and drug with case-sensitive
// equality, sorted ascending by year. Zero matches is a NoDataError.
func Exact(recs []Record, organism, drug string) ([]Record, error) {
	var rows []Record
	for _, r := range recs {
		if r.Organism == organism && r.Drug == drug {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return nil, &NoDataError{Organism: organism, Drug: drug}
	}
	SortByYear(rows)
	return rows, nil
}

// MatchDrug selects rows whose drug name equals pattern case-insensitively
// and groups them into one Job per distinct (organism, drug) pair, in
// first-seen order. Zero matches yields zero jobs.
func MatchDrug(recs []Record, pattern string) []Job {
	type key struct{ organism, drug string }
	byPair := make(map[key]int)
	var jobs []Job
	for _, r := range recs {
		if !strings.EqualFold(r.Drug, pattern) {
			continue
		}
		k := key{r.Organism, r.Drug}
		i, ok := byPair[k]
		if !ok {
			i = len(jobs)
			byPair[k] = i
			jobs = append(jobs, Job{Organism: r.Organism, Drug: r.Drug})
		}
		jobs[i].Rows = append(jobs[i].Rows, r)
	}
	for i := range jobs {
		SortByYear(jobs[i].Rows)
	}
	return jobs
}

// Pairs lists every distinct (organism, drug) pair in the table with its
// year span and row count, in first-seen order.
func Pairs(recs []Record) []PairInfo {
	type key struct{ organism, drug string }
	byPair := make(map[key]int)
	var pairs []PairInfo
	for _, r := range recs {
		k := key{r.Organism, r.Drug}
		i, ok := byPair[k]
		if !ok {
			i = len(pairs)
			byPair[k] = i
			pairs = append(pairs, PairInfo{Organism: r.Organism, Drug: r.Drug, FirstYear: r.Year, LastYear: r.Year})
		}
		p := &pairs[i]
		if r.Year < p.FirstYear {
			p.FirstYear = r.Year
		}
		if r.Year > p.LastYear {
			p.LastYear = r.Year
		}
		p.Rows++
	}
	return pairs
}

// SortByYear sorts rows ascending by year, in place. The sort is stable so
// duplicate years keep their input order.
func SortByYear(rows []Record) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
}
