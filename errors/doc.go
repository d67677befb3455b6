/*
Package errors provides semantic error types for the BridgeKit library.

The package defines the two error scenarios the factory core can produce,
with specific types that can be checked using the standard errors.Is()
function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound        = errors.New("no factory registered")
	    ErrInvalidArgument = errors.New("invalid argument")
	)

Usage:

	// Check error type
	pub, err := factory.CreatePublisher(node, "pkg/Msg", "/topic", 10, false)
	if err != nil {
	    if errors.IsNotFound(err) {
	        // The type was never linked in; skip this topic.
	        return nil
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewNotFoundError("publisher", "pkg/Msg")
	err := errors.NewValidationError("topic", "must not be empty")

A missing registration is recoverable by design: one unbridged topic must
never take down the rest of the bridge. Errors raised inside registered
factory functions are propagated to the caller untouched and are not part
of this taxonomy.
*/
package errors
