package ordlist

import "errors"

// ErrKeyExists is returned by Insert when a key equal to the argument,
// under the list's comparator, is already stored.
var ErrKeyExists = errors.New("ordlist: key already exists")
