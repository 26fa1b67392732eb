// SPDX-License-Identifier: MIT
// Package: report
//
// Package report decodes a raw LP solution back into human-meaningful
// production tables.
//
// Two views are derived from a solved plan:
//
//   - the recipe table: every process whose execution rate survives the
//     display threshold (10^-Digits), sorted busiest first;
//   - the resource table: produced / consumed / excess per-time rates for
//     every resource the plan touches, computed from the clipped-positive,
//     clipped-negative and raw rate matrices, noise rows dropped.
//
// Render writes the full textual report (solver status header plus both
// tables). Everything here is a pure single-pass transform: the same
// solution with the same options always yields byte-identical output.
package report
