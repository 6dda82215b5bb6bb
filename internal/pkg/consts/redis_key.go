package consts

const (
	TokenBlacklistKey = "auth:token:revoked:"
)
