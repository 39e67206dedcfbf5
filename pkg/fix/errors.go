package fix

import "errors"

// ErrStaleSnapshot indicates a batch was applied against a buffer that
// no longer matches the snapshot the batch was built for. The batch is
// rejected as a unit; partial application is never observable.
var ErrStaleSnapshot = errors.New("buffer does not match batch snapshot")
