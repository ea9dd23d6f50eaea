package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")
var ErrFileTooLarge = errors.New("file too large")
var ErrMissingFile = errors.New("missing file")

var ErrToRetrievePathArg = errors.New("error to retrieve path argument")
var ErrFailedToGetUID = errors.New("failed to get uid from context")
var ErrMissingToken = errors.New("missing token")
