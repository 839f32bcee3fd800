package ledger

import "errors"

var ErrUnknownAccount = errors.New("unknown_account")
