// Package errors provides the structured error type shared by every layer of
// one-piece-api.
//
// There are three kinds of failure in the system and each maps onto a code:
//   - Parse problems in data packs are user-facing and recoverable. They are
//     carried as problem.Problem values and only become an *Error (code
//     INVALID_ARGUMENT) at the boundary that reports them.
//   - Duplicate static registrations are programmer errors. Registries panic
//     with an ALREADY_EXISTS *Error during setup.
//   - Faults raised while a reward or experience source is applied are
//     INTERNAL errors. The skill service logs them and skips the behavior.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("category not found")
//	err := errors.InvalidArgumentf("invalid identifier: %q", raw)
//
// Adding metadata:
//
//	err := errors.NotFound("node not found").
//	    WithMeta("category_id", categoryID.String()).
//	    WithMeta("node_id", nodeID.String())
//
// Wrapping errors:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save progress")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
//	code := errors.GetCode(err)
//	os.Exit(code.ExitCode())
//
// # Validation Errors
//
// Configuration structs validate through the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("data_dir", cfg.DataDir, vb)
//	errors.ValidateEnum("store", cfg.Store, []string{"memory", "redis", "bolt"}, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
