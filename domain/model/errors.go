package model

import "errors"

var (
	ErrEndpointNotFound = errors.New("endpoint not found")
	ErrEndpointInvalid  = errors.New("endpoint invalid")
)

var (
	ErrIngressNotFound      = errors.New("ingress not found")
	ErrActionInProgress     = errors.New("action already in progress")
	ErrConfigurationInvalid = errors.New("configuration invalid")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrStorageClassNotFound = errors.New("storage class not found")
	ErrAccessModeUnknown    = errors.New("unknown access mode")
)
