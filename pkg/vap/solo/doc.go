// Package solo contains single-value, synchronous primitives that operate
// on Result[E, A]. These functions form the core building blocks for
// error-accumulating validation without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[E, A]
// - Validate/AndValidate/ValidateAll: apply checks producing message payloads
// - Map: transform the valid value (In -> Out), invalid passes through
// - Apply: apply a validated function to a validated argument, merging
//   payloads when either or both operands are invalid
// - DoubleMap: transform both the valid value and the error payload
// - Finally: reduce to a concrete value via valid/invalid handlers
package solo
