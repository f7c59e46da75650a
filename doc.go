// Package xlsxgen generates Office Open XML SpreadsheetML (.xlsx) files
// from typed in-memory records. Callers describe a Book as an ordered list
// of Sheets, each Sheet backed by a homogeneous record type R and a list
// of Columns that know how to extract and transform an R into a cell
// value; Book.Write (or Book.WriteContext) loads each sheet's data exactly
// once, builds the eight mandatory OOXML package parts, and assembles them
// through a pure-code STORE-mode ZIP writer into an atomically-written
// file.
//
// The library does not read .xlsx files, evaluate formulas, or embed
// images/charts/pivot tables — see the package-level Non-goals in
// SPEC_FULL.md.
package xlsxgen
