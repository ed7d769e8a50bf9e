package repository

import "errors"

// ErrDuplicateReceiptNumber reports a receipt number collision on sale
// creation. Callers regenerate the number and retry.
var ErrDuplicateReceiptNumber = errors.New("duplicate receipt number")
