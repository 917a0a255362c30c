// Package fixed implements integer-only tensor kernels for fixed-point inference.
//
// # Overview
//
// Every kernel is a free generic function over caller-owned, row-major
// flat slices. Shapes and scale parameters are passed on every call and are
// trusted: kernels do not validate lengths, never allocate, never log and
// never return errors. Invalid input produces wrong numbers, not failures.
// Use package diag to check a call's parameters ahead of time.
//
// # Scale parameters
//
// shrA, shrB and shrC are integer divisors that align the fixed-point scale
// of each operand before values are combined. They are applied with Go's
// truncating division, so a negative value rounds toward zero exactly as a
// C integer division would. demote is applied last and brings the result to
// the output type's scale. H1 and H2 split the depth of the pairwise
// reduction used by MatMul and Conv (see TreeSum).
//
// # Type parameters
//
// A and B are the operand element types, T is the accumulator type used for
// intermediate values and C is the output element type. Intermediates are
// stored back into T after every step, so narrow accumulators wrap exactly
// like the fixed-width reference pipeline does.
//
// # Build tags
//
//   - seedot_saturate: narrow with saturation instead of wrapping.
//   - seedot_fastapprox: piecewise-linear integer TanH and Sigmoid instead of
//     the float path.
package fixed
