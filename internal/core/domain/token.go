package domain

import "errors"

var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token")
var ErrUnauthenticated = errors.New("user not authenticated")
