// Package onoma provides batch analytics over a static baby-names dataset.
//
// Usage:
//
//	records, _ := dataset.LoadFile("names.csv")
//	view := dataset.NewView(records)
//	mapping := regions.Normalize(regions.Default())
//
//	top, _ := reports.TopNamesByGender(view)
//	byRegion, _ := reports.BirthsByRegion(view, mapping)
//
// Every view is a pure function of the loaded records: the engine package
// supplies the aggregation primitives (group-sum, dense rank, lag per
// partition) and the reports package composes them into the analytical
// views. Nothing mutates the dataset after load, so the full suite can run
// concurrently over one snapshot (reports.Suite).
package onoma
