package flatbush

import "errors"

const packageName = "flatbush: "

// ErrCapacityExceeded is returned by Insert once numItems items have
// already been inserted and the index has not yet been built.
var ErrCapacityExceeded = textErr("numItems capacity exceeded")

// ErrAlreadyBuilt is returned by Insert once Build has run.
var ErrAlreadyBuilt = textErr("insert after build")

// ErrIncomplete is returned by Build if fewer than numItems items have
// been inserted.
var ErrIncomplete = textErr("build called before numItems items were inserted")

func textErr(text string) error {
	return errors.New(packageName + text)
}

func textPanic(text string) {
	panic(packageName + text)
}
