// Package errors provides structured errors for the godbound-api service.
//
// Every error carries a Code, a user-facing message, an optional cause and
// optional metadata. Codes map onto gRPC status codes at the transport edge.
//
// Creating errors:
//
//	err := errors.NotFoundf("subject %s not found", id)
//	err := errors.UnknownCategoryf("attribute %q is not on this sheet", name).
//	    WithMeta("subject_id", id)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load subject")
//	}
//
// Checking:
//
//	if errors.IsUnknownCategory(err) {
//	    // abort the request, tell the user the sheet is out of date
//	}
//
// # Layer guidelines
//
// Repositories return NotFound/AlreadyExists with ids in metadata and wrap
// storage failures. Engines return UnknownCategory and InvalidModifier before
// any die is drawn. Orchestrators validate inputs, check preconditions and
// wrap repository errors. Handlers convert with ToGRPCError.
package errors
