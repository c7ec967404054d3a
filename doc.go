// Package acoesbr builds a daily snapshot of a short list of Brazilian
// stocks (B3) from a market data provider.
//
// The snapshot is a linear pipeline:
//   - Ticker list: a fixed base list and an extra list, normalized and
//     deduplicated (see [Tickers]).
//   - Fetch: a single batched query to a [Provider], with per-ticker
//     fault isolation (see [Fetch]).
//   - Table: one [Row] per ticker with derived fields (day change, dividend
//     yield in percent, and a demo "opportunity" heuristic, see [Classify]).
//
// Rendering to the terminal lives in the renderer package, and the export
// to a spreadsheet file in the spreadsheet package. The yahoo package
// provides the Yahoo Finance implementation of [Provider].
//
// The opportunity label is a demo heuristic. It is not an investment
// recommendation.
package acoesbr
