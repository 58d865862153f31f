// Package dirs computes and reverses the two path transforms layup applies
// to a component's files: the originally shared directory (a common prefix
// stripped at publish time and restored on materialization) and the wrapper
// directory (a synthetic folder inserted so a component's own descriptor
// cannot collide with the generated one).
//
// Key components:
//   - CalcSharedDir: deepest common directory prefix across a component's
//     files and all dependency source paths
//   - CalcWrapDir: whether the synthetic wrapper directory is required
//   - ClassifyOrigin: effective provenance from prior tracking state
//   - Resolver: fans the calculations out across a component plus its full
//     dependency set and reconciles duplicates
//   - ApplyShared / StripWrap / Revert: per-path transform application
//
// Everything here is a pure computation over immutable snapshots; reading
// the tracking store and object store happens at each computation's boundary
// and nothing is written. Deciding how files reach disk belongs to the
// engine.
package dirs
